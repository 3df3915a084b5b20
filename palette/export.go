package palette

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"

	"github.com/watzon/huegen/color"
)

// ColorRecord is the serialized form of a single color. The HSV floats
// are the authoritative representation: decoding reconstructs the color
// from them, so a round trip reproduces equivalent Color values.
type ColorRecord struct {
	Hex string    `json:"hex"`
	RGB RGBRecord `json:"rgb"`
	HSV HSVRecord `json:"hsv"`
}

// RGBRecord holds 8-bit RGB channels.
type RGBRecord struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// HSVRecord holds the HSV components: hue in degrees, saturation and
// value in [0,1].
type HSVRecord struct {
	H float64 `json:"h"`
	S float64 `json:"s"`
	V float64 `json:"v"`
}

// AnalysisRecord is the serialized palette analysis.
type AnalysisRecord struct {
	Brightness    float64 `json:"brightness"`
	Temperature   string  `json:"temperature"`
	ContrastRatio float64 `json:"contrast_ratio"`
	HarmonyScore  float64 `json:"harmony_score"`
}

// Record is the serialized form of one palette.
type Record struct {
	ID          string         `json:"id"`
	HarmonyType string         `json:"harmony_type"`
	Temperature string         `json:"temperature"`
	Colors      []ColorRecord  `json:"colors"`
	Analysis    AnalysisRecord `json:"analysis"`
}

// Document is a collection of palette records written in one export.
type Document struct {
	GeneratedAt time.Time `json:"generated_at"`
	Palettes    []Record  `json:"palettes"`
}

// Record serializes the palette, assigning it a fresh ID.
func (p *Palette) Record() Record {
	colors := make([]ColorRecord, len(p.Colors))
	for i, c := range p.Colors {
		h, s, v := c.HSV()
		r, g, b := c.RGB()
		colors[i] = ColorRecord{
			Hex: c.Hex(),
			RGB: RGBRecord{R: r, G: g, B: b},
			HSV: HSVRecord{H: h, S: s, V: v},
		}
	}

	return Record{
		ID:          uuid.NewString(),
		HarmonyType: p.Type.String(),
		Temperature: p.Temperature.String(),
		Colors:      colors,
		Analysis: AnalysisRecord{
			Brightness:    p.Analysis.Brightness,
			Temperature:   p.Analysis.Temperature.String(),
			ContrastRatio: p.Analysis.ContrastRatio,
			HarmonyScore:  p.Analysis.HarmonyScore,
		},
	}
}

// Palette reconstructs an equivalent palette from the record, rebuilding
// each color from its HSV components and recomputing the analysis.
func (r Record) Palette() (*Palette, error) {
	t, err := color.ParseHarmonyType(r.HarmonyType)
	if err != nil {
		return nil, err
	}
	pref, err := color.ParseTemperature(r.Temperature)
	if err != nil {
		return nil, err
	}

	colors := make([]color.Color, len(r.Colors))
	for i, cr := range r.Colors {
		c, err := color.FromHSV(cr.HSV.H, cr.HSV.S, cr.HSV.V)
		if err != nil {
			return nil, fmt.Errorf("invalid color %d in record %s: %w", i, r.ID, err)
		}
		colors[i] = c
	}

	analysis, err := color.Analyze(colors, t)
	if err != nil {
		return nil, fmt.Errorf("invalid record %s: %w", r.ID, err)
	}

	return &Palette{
		Colors:      colors,
		Type:        t,
		Temperature: pref,
		Analysis:    analysis,
	}, nil
}

// NewDocument assembles a document from palettes, stamping the current
// time.
func NewDocument(palettes []*Palette) Document {
	doc := Document{
		GeneratedAt: time.Now().UTC(),
		Palettes:    make([]Record, len(palettes)),
	}
	for i, p := range palettes {
		doc.Palettes[i] = p.Record()
	}
	return doc
}

// WriteDocument writes the document as indented JSON.
func WriteDocument(w io.Writer, doc Document) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("failed to encode palette document: %w", err)
	}
	return nil
}

// ReadDocument parses a document previously written by WriteDocument.
func ReadDocument(r io.Reader) (Document, error) {
	var doc Document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return Document{}, fmt.Errorf("failed to decode palette document: %w", err)
	}
	return doc, nil
}
