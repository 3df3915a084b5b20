// Package palette orchestrates base-color selection, harmony expansion,
// and analysis into complete palette records, and serializes them.
package palette

import (
	"image"

	"github.com/watzon/huegen/color"
)

// Palette is a generated color palette. It is assembled once by the
// Generator and read-only afterwards; the color sequence is never
// empty and its length matches the harmony type's resolved count.
type Palette struct {
	Colors      []color.Color
	Type        color.HarmonyType
	Temperature color.Temperature
	Analysis    color.Analysis
}

// HexCodes returns the hex string of every color in order.
func (p *Palette) HexCodes() []string {
	codes := make([]string, len(p.Colors))
	for i, c := range p.Colors {
		codes[i] = c.Hex()
	}
	return codes
}

// ImageOptions controls rendering of a palette to an image.
type ImageOptions struct {
	Title      string
	FontPath   string
	HideLabels bool
}

// ToImage renders the palette's colors to an image.
func (p *Palette) ToImage(opts ImageOptions) (image.Image, error) {
	return color.GeneratePaletteImage(color.PaletteImage{
		Colors:        p.Colors,
		Title:         opts.Title,
		FontPath:      opts.FontPath,
		ShowHexCodes:  !opts.HideLabels,
		ShowRGBValues: !opts.HideLabels,
	})
}
