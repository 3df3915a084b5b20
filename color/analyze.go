package color

import "math"

// Analysis holds the quantitative descriptors of a color sequence.
type Analysis struct {
	// Brightness is the mean perceptual luma of the sequence, [0,1].
	Brightness float64
	// Temperature classifies the circular mean hue as warm, cool, or
	// neutral.
	Temperature Temperature
	// ContrastRatio compares the brightest and darkest color by luma;
	// always >= 1.
	ContrastRatio float64
	// HarmonyScore measures how closely the sequence matches the
	// canonical offsets of its declared harmony type, [0,1].
	HarmonyScore float64
}

// Luma returns the Rec. 601 luma of the color, [0,1].
func Luma(c Color) float64 {
	r, g, b := c.RGB()
	return (0.299*float64(r) + 0.587*float64(g) + 0.114*float64(b)) / 255
}

// Analyze computes the descriptors of a color sequence generated for
// (or declared as) the given harmony type. It is a pure function of its
// inputs; the sequence must not be empty.
func Analyze(colors []Color, t HarmonyType) (Analysis, error) {
	if len(colors) == 0 {
		return Analysis{}, validationErrorf("cannot analyze an empty color sequence")
	}

	minLuma, maxLuma := math.Inf(1), math.Inf(-1)
	var lumaSum float64
	for _, c := range colors {
		l := Luma(c)
		lumaSum += l
		minLuma = math.Min(minLuma, l)
		maxLuma = math.Max(maxLuma, l)
	}

	return Analysis{
		Brightness:    lumaSum / float64(len(colors)),
		Temperature:   ClassifyHue(circularMeanHue(colors)),
		ContrastRatio: (maxLuma + 0.05) / (minLuma + 0.05),
		HarmonyScore:  harmonyScore(colors, t),
	}, nil
}

// circularMeanHue averages hues on the circle so that sequences
// straddling 0° (e.g. 350° and 10°) resolve correctly.
func circularMeanHue(colors []Color) float64 {
	var sin, cos float64
	for _, c := range colors {
		rad := c.Hue() * math.Pi / 180
		sin += math.Sin(rad)
		cos += math.Cos(rad)
	}
	return normalizeHue(math.Atan2(sin, cos) * 180 / math.Pi)
}

// hueDistance is the shortest-arc angular distance between two hues,
// [0,180].
func hueDistance(a, b float64) float64 {
	d := math.Abs(normalizeHue(a) - normalizeHue(b))
	if d > 180 {
		d = 360 - d
	}
	return d
}

// harmonyScore scores the sequence against the canonical offsets of the
// declared type. Offsets are measured from the first color, so the
// score is 1 for a sequence the harmony expansion produced itself.
func harmonyScore(colors []Color, t HarmonyType) float64 {
	if t == Monochromatic {
		return monochromaticScore(colors)
	}
	if len(colors) == 1 {
		return 1
	}

	expected := t.CanonicalOffsets(len(colors))
	base := colors[0].Hue()

	var deviation float64
	for i, c := range colors {
		exp := expected[min(i, len(expected)-1)]
		actual := normalizeHue(c.Hue() - base)
		deviation += hueDistance(actual, exp)
	}
	mean := deviation / float64(len(colors))
	return clamp01(1 - mean/180)
}

// monochromaticScore substitutes saturation constancy and linear value
// spacing for hue deviation: the expected ramp starts at the first
// color's value and climbs by the canonical step, clamped at 1.
func monochromaticScore(colors []Color) float64 {
	n := len(colors)
	if n == 1 {
		return 1
	}

	step := monoValueSpread / float64(n-1)
	baseSat := colors[0].Saturation()
	v0 := colors[0].Value()

	var deviation float64
	for i, c := range colors {
		expectedV := clamp01(v0 + float64(i)*step)
		deviation += math.Abs(c.Value()-expectedV) + math.Abs(c.Saturation()-baseSat)
	}
	mean := deviation / float64(2*n)
	return clamp01(1 - mean)
}
