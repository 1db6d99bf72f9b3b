package publisher

import (
	"regexp"
	"strings"
)

// The block editor merges or mangles content that arrives as one flat HTML
// string. SegmentBlocks splits the body into discrete heading/paragraph
// blocks separated by blank lines, which the editor maps onto its own block
// structure. This is a best-effort split, not an HTML parser: tag balance
// and nesting are not validated.
var (
	blockOpenRe   = regexp.MustCompile(`(?i)<(?:h2|h3|p)[\s>]`)
	blockPrefixRe = regexp.MustCompile(`(?i)^<(?:h2|h3|p)[\s>]`)
)

// SegmentBlocks splits flat HTML at every heading-2/3 or paragraph opening
// tag without consuming the delimiter. Empty chunks are dropped; stray text
// the model emitted outside any tag is wrapped in a paragraph. Output chunks
// are joined with blank lines, preserving all non-whitespace content in
// order.
func SegmentBlocks(input string) string {
	locs := blockOpenRe.FindAllStringIndex(input, -1)

	bounds := []int{0}
	for _, loc := range locs {
		if loc[0] != 0 {
			bounds = append(bounds, loc[0])
		}
	}
	bounds = append(bounds, len(input))

	var blocks []string
	for i := 0; i+1 < len(bounds); i++ {
		chunk := strings.TrimSpace(input[bounds[i]:bounds[i+1]])
		if chunk == "" {
			continue
		}
		if !blockPrefixRe.MatchString(chunk) {
			chunk = "<p>" + chunk + "</p>"
		}
		blocks = append(blocks, chunk)
	}

	return strings.Join(blocks, "\n\n")
}
