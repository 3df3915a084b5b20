package palette

import (
	"fmt"
	"math/rand"

	"github.com/watzon/huegen/color"
)

// Generator produces palettes. It owns its random source, so two
// generators built with the same seed yield identical sequences;
// concurrent callers should each construct their own Generator.
type Generator struct {
	rand     *rand.Rand
	selector *color.Selector
	types    []color.HarmonyType
}

// Option configures a Generator.
type Option func(*Generator)

// WithSeed makes the generator deterministic.
func WithSeed(seed int64) Option {
	return func(g *Generator) {
		g.rand = rand.New(rand.NewSource(seed))
	}
}

// WithRand supplies an explicit random source, e.g. a shared one in
// tests.
func WithRand(r *rand.Rand) Option {
	return func(g *Generator) {
		g.rand = r
	}
}

// NewGenerator creates a palette generator. Without options it draws
// fresh, non-reproducible randomness per call.
func NewGenerator(opts ...Option) *Generator {
	g := &Generator{types: color.HarmonyTypes()}
	for _, opt := range opts {
		opt(g)
	}
	if g.rand == nil {
		g.rand = rand.New(rand.NewSource(rand.Int63()))
	}
	g.selector = color.NewSelector(g.rand)
	return g
}

// Generate draws a base color for the temperature preference, expands
// it into the harmony sequence, analyzes it, and assembles the palette
// record. Any validation failure propagates unchanged; no partial
// palette is returned.
func (g *Generator) Generate(pref color.Temperature, t color.HarmonyType, numColors int) (*Palette, error) {
	// Resolve the count up front so an invalid hint fails before any
	// randomness is consumed.
	if _, err := t.ResolvedCount(numColors); err != nil {
		return nil, err
	}

	base := g.selector.BaseColor(pref)
	return g.assemble(base, pref, t, numColors)
}

// GenerateFromBase builds a palette from an explicit base color,
// bypassing temperature selection. The palette's temperature preference
// is recorded as neutral.
func (g *Generator) GenerateFromBase(base color.Color, t color.HarmonyType, numColors int) (*Palette, error) {
	return g.assemble(base, color.Neutral, t, numColors)
}

// GenerateRandom builds a palette with a random harmony type and no
// temperature preference.
func (g *Generator) GenerateRandom(numColors int) (*Palette, error) {
	t := g.types[g.rand.Intn(len(g.types))]
	return g.Generate(color.Neutral, t, numColors)
}

func (g *Generator) assemble(base color.Color, pref color.Temperature, t color.HarmonyType, numColors int) (*Palette, error) {
	colors, err := color.Harmony(base, t, numColors)
	if err != nil {
		return nil, fmt.Errorf("failed to expand %s harmony: %w", t, err)
	}

	analysis, err := color.Analyze(colors, t)
	if err != nil {
		return nil, fmt.Errorf("failed to analyze palette: %w", err)
	}

	return &Palette{
		Colors:      colors,
		Type:        t,
		Temperature: pref,
		Analysis:    analysis,
	}, nil
}
