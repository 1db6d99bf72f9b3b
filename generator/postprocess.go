package generator

import (
	"bytes"
	"regexp"

	"github.com/yuin/goldmark"
)

var htmlTagRe = regexp.MustCompile(`<[a-zA-Z][^>]*>`)

// NormalizeBody ensures the draft body is HTML. The prompt demands an HTML
// body, but some models answer in Markdown anyway; if no HTML tag is present
// the body is converted so downstream block segmentation always sees HTML.
func NormalizeBody(body string) (string, error) {
	if htmlTagRe.MatchString(body) {
		return body, nil
	}
	var buf bytes.Buffer
	if err := goldmark.Convert([]byte(body), &buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}
