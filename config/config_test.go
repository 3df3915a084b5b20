package config

import "testing"

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.OutputDir != "." {
		t.Errorf("OutputDir = %q, want %q", cfg.OutputDir, ".")
	}
	if cfg.MaxWidth != 1600 || cfg.MaxHeight != 1600 {
		t.Errorf("max dimensions = %dx%d, want 1600x1600", cfg.MaxWidth, cfg.MaxHeight)
	}
	if cfg.Schedule == "" {
		t.Error("Schedule is empty")
	}
}

func TestFromEnv(t *testing.T) {
	t.Setenv("HUEGEN_OUTPUT_DIR", "/tmp/palettes")
	t.Setenv("HUEGEN_FONT", "/usr/share/fonts/test.ttf")
	t.Setenv("HUEGEN_MAX_WIDTH", "800")
	t.Setenv("HUEGEN_MAX_HEIGHT", "not-a-number")

	cfg := FromEnv()
	if cfg.OutputDir != "/tmp/palettes" {
		t.Errorf("OutputDir = %q, want /tmp/palettes", cfg.OutputDir)
	}
	if cfg.FontPath != "/usr/share/fonts/test.ttf" {
		t.Errorf("FontPath = %q", cfg.FontPath)
	}
	if cfg.MaxWidth != 800 {
		t.Errorf("MaxWidth = %d, want 800", cfg.MaxWidth)
	}
	// Invalid values fall back to the default.
	if cfg.MaxHeight != 1600 {
		t.Errorf("MaxHeight = %d, want default 1600", cfg.MaxHeight)
	}
}

func TestBuilders(t *testing.T) {
	cfg := DefaultConfig().
		WithOutputDir("out").
		WithFontPath("font.ttf").
		WithSchedule("@hourly")

	if cfg.OutputDir != "out" || cfg.FontPath != "font.ttf" || cfg.Schedule != "@hourly" {
		t.Errorf("builders did not apply: %+v", cfg)
	}
}
