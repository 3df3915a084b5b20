// Package config holds runtime configuration for the huegen CLI.
package config

import (
	"os"
	"strconv"
)

// Config holds all configuration for palette generation and output.
type Config struct {
	// Output directory for generated images and palette data
	OutputDir string

	// Maximum dimensions of saved palette images; larger renders are
	// downscaled to fit
	MaxWidth  int
	MaxHeight int

	// Optional TTF font used for image labels
	FontPath string

	// Cron expression used by the daemon command
	Schedule string
}

// DefaultConfig returns a new Config with default values.
func DefaultConfig() *Config {
	return &Config{
		OutputDir: ".",
		MaxWidth:  1600,
		MaxHeight: 1600,
		Schedule:  "0 */6 * * *",
	}
}

// FromEnv returns a Config with defaults overridden by HUEGEN_*
// environment variables.
func FromEnv() *Config {
	cfg := DefaultConfig()
	if dir := os.Getenv("HUEGEN_OUTPUT_DIR"); dir != "" {
		cfg.OutputDir = dir
	}
	if font := os.Getenv("HUEGEN_FONT"); font != "" {
		cfg.FontPath = font
	}
	if schedule := os.Getenv("HUEGEN_SCHEDULE"); schedule != "" {
		cfg.Schedule = schedule
	}
	if w, err := strconv.Atoi(os.Getenv("HUEGEN_MAX_WIDTH")); err == nil && w > 0 {
		cfg.MaxWidth = w
	}
	if h, err := strconv.Atoi(os.Getenv("HUEGEN_MAX_HEIGHT")); err == nil && h > 0 {
		cfg.MaxHeight = h
	}
	return cfg
}

// WithOutputDir sets the output directory.
func (c *Config) WithOutputDir(dir string) *Config {
	c.OutputDir = dir
	return c
}

// WithFontPath sets the label font path.
func (c *Config) WithFontPath(path string) *Config {
	c.FontPath = path
	return c
}

// WithSchedule sets the daemon cron expression.
func (c *Config) WithSchedule(schedule string) *Config {
	c.Schedule = schedule
	return c
}
