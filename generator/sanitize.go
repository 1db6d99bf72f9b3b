package generator

import (
	"errors"
	"fmt"
	"strings"

	"github.com/tidwall/gjson"
)

// Model output is untrusted text: it may fence the JSON in code blocks,
// surround it with prose, or contain raw control characters that break a
// strict parser. ExtractFields and ExtractTitles recover the embedded object
// or fail with one of these errors.
var (
	// ErrMalformedResponse means no parseable JSON object could be located.
	ErrMalformedResponse = errors.New("malformed model response")
	// ErrIncompleteResponse means the object parsed but a required field is
	// missing or not the expected type.
	ErrIncompleteResponse = errors.New("incomplete model response")
)

const previewLimit = 160

// ExtractFields recovers the single JSON object embedded in raw and returns
// the values of the required keys. Every required key must be present and a
// string; an empty string is allowed, absence is not.
func ExtractFields(raw string, required ...string) (map[string]string, error) {
	obj, err := extractObject(raw)
	if err != nil {
		return nil, err
	}
	fields := make(map[string]string, len(required))
	for _, key := range required {
		v := obj.Get(key)
		if !v.Exists() || v.Type != gjson.String {
			return nil, fmt.Errorf("%w: field %q missing or not a string", ErrIncompleteResponse, key)
		}
		fields[key] = v.String()
	}
	return fields, nil
}

// ExtractTitles recovers the "titles" array from raw model output. The model
// is asked for five titles but the count is not guaranteed; non-string
// elements are dropped. A missing or non-array "titles" field is an
// incomplete response, an empty array is not (the caller decides what an
// empty candidate set means).
func ExtractTitles(raw string) ([]string, error) {
	obj, err := extractObject(raw)
	if err != nil {
		return nil, err
	}
	v := obj.Get("titles")
	if !v.Exists() || !v.IsArray() {
		return nil, fmt.Errorf("%w: field \"titles\" missing or not an array", ErrIncompleteResponse)
	}
	var titles []string
	for _, el := range v.Array() {
		if el.Type == gjson.String {
			titles = append(titles, el.String())
		}
	}
	return titles, nil
}

// extractObject locates and validates the JSON object inside raw. The first
// "{" and last "}" are assumed to bound the single intended object; nested
// braces inside string values are fine because bounding is positional, not a
// structural parse.
func extractObject(raw string) (gjson.Result, error) {
	clean := strings.ReplaceAll(raw, "```json", "")
	clean = strings.ReplaceAll(clean, "```", "")

	start := strings.Index(clean, "{")
	end := strings.LastIndex(clean, "}")
	if start == -1 || end == -1 || end < start {
		return gjson.Result{}, fmt.Errorf("%w: no JSON object in %d bytes of output", ErrMalformedResponse, len(raw))
	}

	candidate := stripControlChars(clean[start : end+1])
	if !gjson.Valid(candidate) {
		return gjson.Result{}, fmt.Errorf("%w: invalid JSON in %d bytes of output (preview %q)",
			ErrMalformedResponse, len(raw), preview(candidate))
	}
	return gjson.Parse(candidate), nil
}

// stripControlChars removes U+0000–U+001F and U+007F–U+009F. Some models leak
// raw control characters into string values, which strict parsers reject.
// Printable content is untouched.
func stripControlChars(s string) string {
	return strings.Map(func(r rune) rune {
		if r < 0x20 || (r >= 0x7F && r <= 0x9F) {
			return -1
		}
		return r
	}, s)
}

func preview(s string) string {
	if len(s) <= previewLimit {
		return s
	}
	return s[:previewLimit] + "..."
}
