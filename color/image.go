package color

import (
	"fmt"
	"image"
	stdcolor "image/color"
	"math"
	"os"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

const (
	imageWidth   = 1200
	imageHeight  = 800
	baseFontSize = 28
	// The gradient blend strip occupies the bottom quarter of the image.
	gradientRatio = 0.25
)

// PaletteImage configures rendering of a color sequence to an image.
type PaletteImage struct {
	Colors []Color

	// Title drawn across the top of the color bars, if non-empty.
	Title string

	// Optional path to a TTF file for labels. When empty, a built-in
	// bitmap face is used.
	FontPath string

	ShowHexCodes  bool
	ShowRGBValues bool
}

// ToRGBA converts the color to the standard library's RGBA.
func (c Color) ToRGBA() stdcolor.RGBA {
	r, g, b := c.RGB()
	return stdcolor.RGBA{R: r, G: g, B: b, A: 255}
}

// GeneratePaletteImage renders the palette as vertical color bars with
// optional hex/RGB labels and a gradient blend strip along the bottom.
func GeneratePaletteImage(cfg PaletteImage) (image.Image, error) {
	numColors := len(cfg.Colors)
	if numColors == 0 {
		return nil, fmt.Errorf("no colors provided")
	}

	dc := gg.NewContext(imageWidth, imageHeight)
	dc.SetColor(stdcolor.White)
	dc.Clear()

	face, err := loadFace(cfg.FontPath, labelFontSize(numColors))
	if err != nil {
		return nil, err
	}
	dc.SetFontFace(face)

	barHeight := float64(imageHeight) * (1 - gradientRatio)
	barWidth := float64(imageWidth) / float64(numColors)

	for i, c := range cfg.Colors {
		x := float64(i) * barWidth

		dc.SetColor(c.ToRGBA())
		dc.DrawRectangle(x, 0, barWidth, barHeight)
		dc.Fill()

		dc.SetColor(contrastColor(c))

		labelY := barHeight * 0.45
		lineHeight := float64(labelFontSize(numColors)) * 1.5

		if cfg.ShowHexCodes {
			drawCentered(dc, c.Hex(), x, barWidth, labelY)
			labelY += lineHeight
		}
		if cfg.ShowRGBValues {
			r, g, b := c.RGB()
			drawCentered(dc, fmt.Sprintf("%d, %d, %d", r, g, b), x, barWidth, labelY)
		}
	}

	if cfg.Title != "" {
		dc.SetColor(contrastColor(cfg.Colors[0]))
		drawCentered(dc, cfg.Title, 0, float64(imageWidth), float64(labelFontSize(numColors))*2)
	}

	drawGradientStrip(dc, cfg.Colors, barHeight, float64(imageHeight)-barHeight)

	return dc.Image(), nil
}

// labelFontSize shrinks the label font as the bar count grows, with a
// floor so text stays legible.
func labelFontSize(numColors int) int {
	size := baseFontSize
	if numColors > 5 {
		size = baseFontSize * 5 / numColors
		if size < 14 {
			size = 14
		}
	}
	return size
}

// loadFace parses a TTF from disk when a path is configured, falling
// back to the built-in bitmap face otherwise.
func loadFace(path string, size int) (font.Face, error) {
	if path == "" {
		return basicfont.Face7x13, nil
	}

	fontBytes, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load font: %w", err)
	}
	f, err := truetype.Parse(fontBytes)
	if err != nil {
		return nil, fmt.Errorf("failed to parse font: %w", err)
	}
	return truetype.NewFace(f, &truetype.Options{Size: float64(size)}), nil
}

func drawCentered(dc *gg.Context, text string, x, width, y float64) {
	textWidth, _ := dc.MeasureString(text)
	dc.DrawString(text, x+(width-textWidth)/2, y)
}

// drawGradientStrip paints a horizontal blend between adjacent palette
// colors across the full image width.
func drawGradientStrip(dc *gg.Context, colors []Color, y, height float64) {
	if len(colors) == 1 {
		dc.SetColor(colors[0].ToRGBA())
		dc.DrawRectangle(0, y, float64(imageWidth), height)
		dc.Fill()
		return
	}

	segments := len(colors) - 1
	for x := 0; x < imageWidth; x++ {
		pos := float64(x) / float64(imageWidth) * float64(segments)
		i := int(pos)
		if i >= segments {
			i = segments - 1
		}
		t := pos - float64(i)

		dc.SetColor(lerpRGB(colors[i], colors[i+1], t))
		dc.DrawRectangle(float64(x), y, 1, height)
		dc.Fill()
	}
}

// lerpRGB blends two colors channel-wise in RGB space.
func lerpRGB(a, b Color, t float64) stdcolor.RGBA {
	ar, ag, ab := a.RGB()
	br, bg, bb := b.RGB()
	lerp := func(x, y uint8) uint8 {
		return uint8(math.Round(float64(x) + (float64(y)-float64(x))*t))
	}
	return stdcolor.RGBA{R: lerp(ar, br), G: lerp(ag, bg), B: lerp(ab, bb), A: 255}
}

// contrastColor returns white or black, whichever reads better against
// the given color.
func contrastColor(c Color) stdcolor.Color {
	r, g, b := c.RGB()
	rf := float64(r) / 255
	gf := float64(g) / 255
	bf := float64(b) / 255

	luminance := 0.2126*math.Pow(rf, 2.2) + 0.7152*math.Pow(gf, 2.2) + 0.0722*math.Pow(bf, 2.2)
	if luminance > 0.5 {
		return stdcolor.Black
	}
	return stdcolor.White
}
