// Package color implements the HSV color model, harmony expansion, and
// palette analysis used by huegen.
package color

import (
	"fmt"
	"math"
	"strings"
)

// Color is an immutable color in HSV space. The RGB byte representation
// is computed once at construction and cached, so accessors never
// re-derive it.
type Color struct {
	h float64 // degrees, [0,360)
	s float64 // [0,1]
	v float64 // [0,1]

	r, g, b uint8
}

// FromHSV constructs a Color from hue (degrees), saturation, and value.
// The hue is normalized into [0,360) via modulo before validation, so
// callers may pass results of hue arithmetic (e.g. base+180) directly.
func FromHSV(h, s, v float64) (Color, error) {
	h = normalizeHue(h)
	if math.IsNaN(h) || math.IsInf(h, 0) {
		return Color{}, validationErrorf("hue must be a finite number, got %v", h)
	}
	if s < 0 || s > 1 || math.IsNaN(s) {
		return Color{}, validationErrorf("saturation must be in [0,1], got %v", s)
	}
	if v < 0 || v > 1 || math.IsNaN(v) {
		return Color{}, validationErrorf("value must be in [0,1], got %v", v)
	}

	r, g, b := hsvToRGB(h, s, v)
	return Color{
		h: h, s: s, v: v,
		r: channelByte(r),
		g: channelByte(g),
		b: channelByte(b),
	}, nil
}

// FromRGB constructs a Color from RGB channels as floats in [0,1].
// Byte-valued channels are available afterwards through RGB.
func FromRGB(r, g, b float64) (Color, error) {
	for _, c := range [3]float64{r, g, b} {
		if c < 0 || c > 1 || math.IsNaN(c) {
			return Color{}, validationErrorf("rgb channels must be in [0,1], got (%v, %v, %v)", r, g, b)
		}
	}

	h, s, v := rgbToHSV(r, g, b)
	return Color{
		h: h, s: s, v: v,
		r: channelByte(r),
		g: channelByte(g),
		b: channelByte(b),
	}, nil
}

// FromHex constructs a Color from a hex string like "#1A2B3C" or "1a2b3c".
func FromHex(hex string) (Color, error) {
	hex = strings.TrimPrefix(hex, "#")
	if len(hex) != 6 {
		return Color{}, validationErrorf("hex color must have 6 digits, got %q", hex)
	}

	var r, g, b uint8
	if _, err := fmt.Sscanf(strings.ToLower(hex), "%02x%02x%02x", &r, &g, &b); err != nil {
		return Color{}, validationErrorf("invalid hex color %q: %v", hex, err)
	}
	return FromRGB(float64(r)/255, float64(g)/255, float64(b)/255)
}

// HSV returns the hue (degrees), saturation, and value.
func (c Color) HSV() (h, s, v float64) {
	return c.h, c.s, c.v
}

// Hue returns the hue in degrees, [0,360).
func (c Color) Hue() float64 { return c.h }

// Saturation returns the saturation, [0,1].
func (c Color) Saturation() float64 { return c.s }

// Value returns the HSV value, [0,1].
func (c Color) Value() float64 { return c.v }

// RGB returns the cached 8-bit channel values.
func (c Color) RGB() (r, g, b uint8) {
	return c.r, c.g, c.b
}

// Hex returns the color as an uppercase "#RRGGBB" string derived from
// the cached RGB bytes.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02X%02X%02X", c.r, c.g, c.b)
}

// RotateHue returns a new Color with the hue shifted by degrees
// (mod 360), keeping saturation and value.
func (c Color) RotateHue(degrees float64) Color {
	h := normalizeHue(c.h + degrees)
	r, g, b := hsvToRGB(h, c.s, c.v)
	return Color{
		h: h, s: c.s, v: c.v,
		r: channelByte(r),
		g: channelByte(g),
		b: channelByte(b),
	}
}

// normalizeHue wraps a hue in degrees into [0,360).
func normalizeHue(h float64) float64 {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	return h
}

func channelByte(c float64) uint8 {
	return uint8(math.Round(c * 255))
}

// hsvToRGB converts HSV (hue in degrees, s/v in [0,1]) to RGB floats in
// [0,1] using the standard six-sector algorithm.
func hsvToRGB(h, s, v float64) (r, g, b float64) {
	if s == 0 {
		return v, v, v
	}

	sector := h / 60
	i := int(sector) % 6
	f := sector - math.Floor(sector)

	p := v * (1 - s)
	q := v * (1 - s*f)
	t := v * (1 - s*(1-f))

	switch i {
	case 0:
		return v, t, p
	case 1:
		return q, v, p
	case 2:
		return p, v, t
	case 3:
		return p, q, v
	case 4:
		return t, p, v
	default:
		return v, p, q
	}
}

// rgbToHSV converts RGB floats in [0,1] to HSV with hue in degrees.
func rgbToHSV(r, g, b float64) (h, s, v float64) {
	max := math.Max(r, math.Max(g, b))
	min := math.Min(r, math.Min(g, b))
	delta := max - min

	v = max
	if max > 0 {
		s = delta / max
	}
	if delta == 0 {
		return 0, s, v
	}

	switch max {
	case r:
		h = (g - b) / delta
		if g < b {
			h += 6
		}
	case g:
		h = (b-r)/delta + 2
	case b:
		h = (r-g)/delta + 4
	}
	return h * 60, s, v
}
