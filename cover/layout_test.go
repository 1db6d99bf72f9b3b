package cover

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEscapeXML(t *testing.T) {
	in := `Tom & Jerry's <Guide> to "Go"`
	want := `Tom &amp; Jerry&apos;s &lt;Guide&gt; to &quot;Go&quot;`
	assert.Equal(t, want, EscapeXML(in))
}

func TestWrapText_LongTitleScenario(t *testing.T) {
	title := "A Very Long Example Title That Needs Wrapping Across Several Lines"

	lines := WrapText(title, 30)
	require.Greater(t, len(lines), 1, "title should wrap into multiple lines")
	for _, line := range lines {
		// No line may exceed the limit unless a single word alone does.
		if len(line.Text) >= 30 {
			assert.NotContains(t, line.Text, " ", "overlong line %q must be a single word", line.Text)
		}
	}
}

func TestWrapText_RoundTrip(t *testing.T) {
	tests := []struct {
		name  string
		title string
		limit int
	}{
		{name: "short title one line", title: "Hello World", limit: 30},
		{name: "wraps at limit", title: "Building a simple DAO with Solidity step by step", limit: 20},
		{name: "single word", title: "Microfrontends", limit: 30},
		{name: "word longer than limit", title: "a supercalifragilisticexpialidocious word", limit: 10},
		{name: "escaped entities stay whole", title: EscapeXML(`Go & Rust <compared>`), limit: 12},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lines := WrapText(tt.title, tt.limit)
			require.NotEmpty(t, lines, "any non-empty string must yield at least one line")

			parts := make([]string, len(lines))
			for i, line := range lines {
				parts[i] = line.Text
			}
			assert.Equal(t, strings.Join(strings.Fields(tt.title), " "), strings.Join(parts, " "))
		})
	}
}

func TestWrapText_EntitiesNeverSplit(t *testing.T) {
	lines := WrapText(EscapeXML(`A & B & C & D & E & F & G`), 8)
	for _, line := range lines {
		ampersands := strings.Count(line.Text, "&")
		assert.Equal(t, ampersands, strings.Count(line.Text, "&amp;"),
			"line %q contains a broken entity", line.Text)
	}
}

func TestWrapText_VerticalCentering(t *testing.T) {
	for _, title := range []string{
		"One",
		"Two words here",
		"A Very Long Example Title That Needs Wrapping Across Several Lines",
	} {
		lines := WrapText(title, 12)
		n := len(lines)

		if n == 1 {
			assert.Zero(t, lines[0].Offset, "single line sits exactly on the anchor")
			continue
		}

		assert.InDelta(t, -(float64(n-1)*LineHeight)/2, lines[0].Offset, 1e-9)
		for i := 1; i < n; i++ {
			assert.InDelta(t, LineHeight, lines[i].Offset-lines[i-1].Offset, 1e-9)
		}

		// Block center must coincide with the anchor regardless of N.
		var sum float64
		for _, line := range lines {
			sum += line.Offset
		}
		assert.True(t, math.Abs(sum/float64(n)) < 1e-9, "block center drifted: %f", sum/float64(n))
	}
}

func TestWrapText_EmptyInput(t *testing.T) {
	assert.Nil(t, WrapText("", 30))
	assert.Nil(t, WrapText("   ", 30))
}
