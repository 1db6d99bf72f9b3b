package cover

import (
	"bytes"
	"fmt"
	"html"
	"image"
	"image/jpeg"
	"os"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/draw"
	"golang.org/x/image/font"
)

const jpegQuality = 90

// Renderer composites wrapped title lines over a fixed background canvas.
// The background and font are loaded once at construction; a render call is
// pure drawing plus JPEG encoding.
type Renderer struct {
	background image.Image
	face       font.Face
}

// NewRenderer loads the background image and TTF font. The background is
// scaled to the canvas size up front if its dimensions differ.
func NewRenderer(backgroundPath, fontPath string) (*Renderer, error) {
	img, err := gg.LoadImage(backgroundPath)
	if err != nil {
		return nil, fmt.Errorf("could not load background image: %w", err)
	}
	if b := img.Bounds(); b.Dx() != CanvasWidth || b.Dy() != CanvasHeight {
		img = scaleToCanvas(img)
	}

	face, err := loadFontFace(fontPath, FontSize)
	if err != nil {
		return nil, fmt.Errorf("could not load title font: %w", err)
	}

	return &Renderer{background: img, face: face}, nil
}

// Render draws the lines centered per line and centered as a block around
// the canvas midpoint, returning JPEG bytes. Line text arrives XML-escaped
// from the layout step; entities are resolved back to glyphs before drawing.
func (r *Renderer) Render(lines []Line) ([]byte, error) {
	dc := gg.NewContext(CanvasWidth, CanvasHeight)
	dc.DrawImage(r.background, 0, 0)
	dc.SetFontFace(r.face)
	dc.SetRGB(0.2, 0.2, 0.2)

	cx := float64(CanvasWidth) / 2
	cy := float64(CanvasHeight) / 2
	for _, line := range lines {
		y := cy + line.Offset*FontSize
		dc.DrawStringAnchored(html.UnescapeString(line.Text), cx, y, 0.5, 0.5)
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, dc.Image(), &jpeg.Options{Quality: jpegQuality}); err != nil {
		return nil, fmt.Errorf("failed to encode JPEG: %w", err)
	}
	return buf.Bytes(), nil
}

func scaleToCanvas(img image.Image) image.Image {
	dst := image.NewRGBA(image.Rect(0, 0, CanvasWidth, CanvasHeight))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Over, nil)
	return dst
}

func loadFontFace(fontPath string, size float64) (font.Face, error) {
	fontBytes, err := os.ReadFile(fontPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read font file: %w", err)
	}
	parsedFont, err := truetype.Parse(fontBytes)
	if err != nil {
		return nil, fmt.Errorf("failed to parse TTF: %w", err)
	}
	return truetype.NewFace(parsedFont, &truetype.Options{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	}), nil
}
