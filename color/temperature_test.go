package color

import (
	"math/rand"
	"testing"
)

func TestParseTemperature(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Temperature
		wantErr bool
	}{
		{name: "warm", input: "warm", want: Warm},
		{name: "cool", input: "cool", want: Cool},
		{name: "neutral", input: "neutral", want: Neutral},
		{name: "none means no preference", input: "none", want: Neutral},
		{name: "empty means no preference", input: "", want: Neutral},
		{name: "unknown", input: "tepid", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseTemperature(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseTemperature(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err == nil && got != tt.want {
				t.Errorf("ParseTemperature(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestBaseHueRanges(t *testing.T) {
	sel := NewSelector(rand.New(rand.NewSource(1)))

	const draws = 500
	for i := 0; i < draws; i++ {
		if h := sel.BaseHue(Warm); !isWarmHue(h) {
			t.Fatalf("warm draw %v outside warm ranges", h)
		}
		if h := sel.BaseHue(Cool); h < coolHueMin || h > coolHueMax {
			t.Fatalf("cool draw %v outside [%v,%v]", h, coolHueMin, coolHueMax)
		}
		if h := sel.BaseHue(Neutral); h < 0 || h >= 360 {
			t.Fatalf("neutral draw %v outside [0,360)", h)
		}
	}
}

func TestBaseHueWarmCoversWrappedSegment(t *testing.T) {
	sel := NewSelector(rand.New(rand.NewSource(7)))

	var low, wrapped bool
	for i := 0; i < 2000; i++ {
		h := sel.BaseHue(Warm)
		if h <= warmHueMax {
			low = true
		}
		if h >= warmHueWrap {
			wrapped = true
		}
	}
	if !low || !wrapped {
		t.Errorf("warm draws did not cover both segments: low=%v wrapped=%v", low, wrapped)
	}
}

func TestBaseColorSubRange(t *testing.T) {
	sel := NewSelector(rand.New(rand.NewSource(3)))

	for i := 0; i < 200; i++ {
		c := sel.BaseColor(Cool)
		if s := c.Saturation(); s < baseSaturationMin || s > baseSaturationMax {
			t.Fatalf("saturation %v outside [%v,%v]", s, baseSaturationMin, baseSaturationMax)
		}
		if v := c.Value(); v < baseValueMin || v > baseValueMax {
			t.Fatalf("value %v outside [%v,%v]", v, baseValueMin, baseValueMax)
		}
		if !isCoolHue(c.Hue()) {
			t.Fatalf("hue %v outside the cool range", c.Hue())
		}
	}
}

func TestClassifyHue(t *testing.T) {
	tests := []struct {
		hue  float64
		want Temperature
	}{
		{hue: 0, want: Warm},
		{hue: 30, want: Warm},
		{hue: 60, want: Warm},
		{hue: 345, want: Warm},
		{hue: 150, want: Cool},
		{hue: 200, want: Cool},
		{hue: 270, want: Cool},
		{hue: 100, want: Neutral},
		{hue: 300, want: Neutral},
		{hue: 61, want: Neutral},
		{hue: 400, want: Warm}, // normalized to 40
	}

	for _, tt := range tests {
		if got := ClassifyHue(tt.hue); got != tt.want {
			t.Errorf("ClassifyHue(%v) = %v, want %v", tt.hue, got, tt.want)
		}
	}
}
