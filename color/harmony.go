package color

import "math"

// HarmonyType selects the rule used to expand a base color into a
// harmonic sequence.
type HarmonyType int

const (
	Complementary HarmonyType = iota
	Triadic
	Analogous
	SplitComplementary
	Tetradic
	Monochromatic
)

// Span of the analogous fan in degrees, centered on the base hue.
const analogousSpan = 60.0

// Monochromatic value ramp: values run from base-monoValueSpread/2 to
// base+monoValueSpread/2, clamped to [0,1].
const monoValueSpread = 0.8

// HarmonyTypes returns every harmony type in declaration order.
func HarmonyTypes() []HarmonyType {
	return []HarmonyType{
		Complementary,
		Triadic,
		Analogous,
		SplitComplementary,
		Tetradic,
		Monochromatic,
	}
}

// String returns the serialized name of the harmony type.
func (t HarmonyType) String() string {
	switch t {
	case Complementary:
		return "complementary"
	case Triadic:
		return "triadic"
	case Analogous:
		return "analogous"
	case SplitComplementary:
		return "split_complementary"
	case Tetradic:
		return "tetradic"
	case Monochromatic:
		return "monochromatic"
	default:
		return "unknown"
	}
}

// DisplayName returns a human-readable name for titles and logs.
func (t HarmonyType) DisplayName() string {
	switch t {
	case Complementary:
		return "Complementary"
	case Triadic:
		return "Triadic"
	case Analogous:
		return "Analogous"
	case SplitComplementary:
		return "Split Complementary"
	case Tetradic:
		return "Tetradic"
	case Monochromatic:
		return "Monochromatic"
	default:
		return "Unknown"
	}
}

// ParseHarmonyType resolves a serialized harmony type name.
func ParseHarmonyType(name string) (HarmonyType, error) {
	for _, t := range HarmonyTypes() {
		if t.String() == name {
			return t, nil
		}
	}
	return 0, validationErrorf("unknown harmony type %q", name)
}

// honorsHint reports whether the type uses the numColors hint; the
// remaining types have a canonical fixed count.
func (t HarmonyType) honorsHint() bool {
	return t == Analogous || t == Monochromatic
}

// ResolvedCount returns the number of colors the type produces for a
// given hint. Fixed-count types ignore the hint; hint types use
// max(numColors, 2).
func (t HarmonyType) ResolvedCount(numColors int) (int, error) {
	if t.honorsHint() {
		if numColors < 1 {
			return 0, validationErrorf("%s harmony needs a positive color count, got %d", t, numColors)
		}
		if numColors < 2 {
			return 2, nil
		}
		return numColors, nil
	}

	if numColors < 0 {
		return 0, validationErrorf("color count must not be negative, got %d", numColors)
	}
	switch t {
	case Complementary:
		return 2, nil
	case Triadic, SplitComplementary:
		return 3, nil
	case Tetradic:
		return 4, nil
	default:
		return 0, validationErrorf("unknown harmony type %d", int(t))
	}
}

// CanonicalOffsets returns the hue offsets in degrees, relative to the
// first color of the sequence, that the type produces for n colors.
// Monochromatic has no hue offsets; all entries are zero.
func (t HarmonyType) CanonicalOffsets(n int) []float64 {
	switch t {
	case Complementary:
		return []float64{0, 180}
	case Triadic:
		return []float64{0, 120, 240}
	case SplitComplementary:
		return []float64{0, 150, 210}
	case Tetradic:
		return []float64{0, 60, 180, 240}
	case Analogous:
		return analogousOffsets(n)
	default:
		return make([]float64, n)
	}
}

// analogousOffsets spreads n hues evenly across the analogous span.
// A single color degenerates to a zero offset rather than dividing by
// zero in the spacing formula.
func analogousOffsets(n int) []float64 {
	if n == 1 {
		return []float64{0}
	}
	offsets := make([]float64, n)
	step := analogousSpan / float64(n-1)
	for i := range offsets {
		offsets[i] = float64(i) * step
	}
	return offsets
}

// Harmony expands a base color into the harmonic sequence for the given
// type. numColors is advisory: fixed-count types validate it is
// non-negative but otherwise ignore it, while analogous and
// monochromatic resolve it to max(numColors, 2).
//
// For every type except monochromatic, saturation and value are carried
// over from the base and only the hue moves. Monochromatic holds hue
// and saturation fixed and ramps the value across monoValueSpread,
// clamped to [0,1].
func Harmony(base Color, t HarmonyType, numColors int) ([]Color, error) {
	n, err := t.ResolvedCount(numColors)
	if err != nil {
		return nil, err
	}

	if t == Monochromatic {
		return monochromaticRamp(base, n)
	}

	offsets := t.CanonicalOffsets(n)
	if t == Analogous {
		// The analogous fan is centered on the base hue: shift the
		// rebased offsets left so the middle of the span lands on it.
		colors := make([]Color, n)
		for i, off := range offsets {
			colors[i] = base.RotateHue(off - analogousSpan/2)
		}
		return colors, nil
	}

	colors := make([]Color, n)
	for i, off := range offsets {
		colors[i] = base.RotateHue(off)
	}
	return colors, nil
}

func monochromaticRamp(base Color, n int) ([]Color, error) {
	h, s, v := base.HSV()
	step := monoValueSpread / float64(n-1)

	colors := make([]Color, n)
	for i := range colors {
		vi := clamp01(v - monoValueSpread/2 + float64(i)*step)
		c, err := FromHSV(h, s, vi)
		if err != nil {
			return nil, err
		}
		colors[i] = c
	}
	return colors, nil
}

func clamp01(x float64) float64 {
	return math.Max(0, math.Min(1, x))
}
