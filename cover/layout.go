package cover

import "strings"

// Canvas geometry for the featured image. CharsPerLine is tuned empirically
// for this canvas and font size; wrapping is by character count, not pixel
// measurement, which holds up because the font class is near fixed-width at
// this size.
const (
	CanvasWidth  = 1920
	CanvasHeight = 1080
	FontSize     = 90
	LineHeight   = 1.2
)

// Line is one wrapped row of the title with its vertical offset from the
// canvas anchor, in em units (already scaled by the line-height multiple).
type Line struct {
	Text   string
	Offset float64
}

var xmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	"'", "&apos;",
	`"`, "&quot;",
)

// EscapeXML replaces the five XML-significant characters with entities.
// Escaping happens before wrapping so entity sequences travel inside whole
// words and can never be split across lines.
func EscapeXML(s string) string {
	return xmlEscaper.Replace(s)
}

// WrapText greedily packs whitespace-separated words into lines strictly
// under charsPerLine, then assigns offsets that center the whole block on
// the anchor: for N lines the first sits at -((N-1)*LineHeight)/2 and each
// next line is LineHeight below, so the block's geometric center coincides
// with the anchor for any N. A single word longer than the limit gets a line
// of its own.
func WrapText(text string, charsPerLine int) []Line {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}

	lines := []string{words[0]}
	for _, word := range words[1:] {
		current := lines[len(lines)-1]
		if len(current)+len(word)+1 < charsPerLine {
			lines[len(lines)-1] = current + " " + word
		} else {
			lines = append(lines, word)
		}
	}

	n := len(lines)
	out := make([]Line, n)
	for i, text := range lines {
		out[i] = Line{
			Text:   text,
			Offset: (float64(i) - float64(n-1)/2) * LineHeight,
		}
	}
	return out
}

// LayoutTitle escapes and wraps a raw title in one step.
func LayoutTitle(title string, charsPerLine int) []Line {
	return WrapText(EscapeXML(title), charsPerLine)
}
