package pipeline

import "errors"

// Failure classes for the publish run. Everything here aborts the run except
// ErrPersistenceFailure, which is logged and swallowed because by the time
// the ledger append runs the post is already live. Sanitizer failures
// (generator.ErrMalformedResponse / ErrIncompleteResponse) propagate through
// the generation stages unchanged.
var (
	ErrEmptyCandidateSet  = errors.New("no usable title candidates")
	ErrSynthesisFailure   = errors.New("image synthesis failed")
	ErrPublicationFailure = errors.New("post submission failed")
	ErrPersistenceFailure = errors.New("history append failed")
)
