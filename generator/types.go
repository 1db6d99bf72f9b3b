package generator

// Draft is the sanitized article content, ready for layout and publication.
// Title comes from the orchestrator's candidate selection; Body and Excerpt
// come from the model output after sanitization. All three must be non-empty
// before a draft leaves this package.
type Draft struct {
	Title   string
	Body    string
	Excerpt string
}
