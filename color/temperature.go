package color

import "math/rand"

// Temperature is a color temperature preference or classification.
type Temperature int

const (
	// Neutral places no restriction on the hue; it is also the label
	// for hues that are neither warm nor cool.
	Neutral Temperature = iota
	Warm
	Cool
)

// String returns the serialized name of the temperature.
func (t Temperature) String() string {
	switch t {
	case Warm:
		return "warm"
	case Cool:
		return "cool"
	default:
		return "neutral"
	}
}

// ParseTemperature resolves a temperature name. The empty string and
// "none" mean no preference and map to Neutral.
func ParseTemperature(name string) (Temperature, error) {
	switch name {
	case "warm":
		return Warm, nil
	case "cool":
		return Cool, nil
	case "neutral", "none", "":
		return Neutral, nil
	default:
		return 0, validationErrorf("unknown temperature %q", name)
	}
}

// Warm hues cover reds through yellows; the range wraps through 0.
const (
	warmHueMax  = 60.0  // upper edge of the [0,60] segment
	warmHueWrap = 330.0 // lower edge of the [330,360) segment
	coolHueMin  = 150.0
	coolHueMax  = 270.0
)

// Base colors are drawn from a sub-range of the unit square so a seed
// color is never near-black, near-white, or near-gray.
const (
	baseSaturationMin = 0.5
	baseSaturationMax = 0.9
	baseValueMin      = 0.6
	baseValueMax      = 0.95
)

// Selector draws base colors consistent with a temperature preference.
// Each Selector owns its random source; concurrent callers should each
// construct their own.
type Selector struct {
	rand *rand.Rand
}

// NewSelector creates a Selector drawing from r.
func NewSelector(r *rand.Rand) *Selector {
	return &Selector{rand: r}
}

// BaseHue draws a hue uniformly from the range for the preference:
// warm [0,60] ∪ [330,360), cool [150,270], neutral the full wheel.
func (s *Selector) BaseHue(pref Temperature) float64 {
	switch pref {
	case Warm:
		// The warm arc is 90° wide; fold the part past 60 onto the
		// wrapped segment so the union is sampled uniformly.
		h := s.rand.Float64() * (warmHueMax + (360 - warmHueWrap))
		if h > warmHueMax {
			h = h - warmHueMax + warmHueWrap
		}
		return h
	case Cool:
		return coolHueMin + s.rand.Float64()*(coolHueMax-coolHueMin)
	default:
		return s.rand.Float64() * 360
	}
}

// BaseColor draws a full base color for the preference, with
// saturation and value taken from the pleasant sub-range constants.
func (s *Selector) BaseColor(pref Temperature) Color {
	h := s.BaseHue(pref)
	sat := baseSaturationMin + s.rand.Float64()*(baseSaturationMax-baseSaturationMin)
	val := baseValueMin + s.rand.Float64()*(baseValueMax-baseValueMin)

	c, err := FromHSV(h, sat, val)
	if err != nil {
		// Unreachable: every draw above is inside the valid ranges.
		panic(err)
	}
	return c
}

// isWarmHue reports whether a hue falls in the warm arc.
func isWarmHue(h float64) bool {
	return (h >= 0 && h <= warmHueMax) || h >= warmHueWrap
}

// isCoolHue reports whether a hue falls in the cool arc.
func isCoolHue(h float64) bool {
	return h >= coolHueMin && h <= coolHueMax
}

// ClassifyHue labels a hue as warm, cool, or neutral using the same
// ranges the Selector draws from.
func ClassifyHue(h float64) Temperature {
	h = normalizeHue(h)
	switch {
	case isWarmHue(h):
		return Warm
	case isCoolHue(h):
		return Cool
	default:
		return Neutral
	}
}
