package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/spf13/cobra"

	"github.com/watzon/huegen/color"
	"github.com/watzon/huegen/palette"
)

var (
	scheduleExpr string

	daemonCmd = &cobra.Command{
		Use:   "daemon",
		Short: "Regenerate a random palette set on a cron schedule",
		Long: `Daemon runs forever, rebuilding the full set of harmony palettes in the
output directory on a cron schedule. The schedule honors the TZ
environment variable.`,
		RunE: runDaemon,
	}
)

func init() {
	daemonCmd.Flags().StringVar(&scheduleExpr, "schedule", "", "cron expression (default from config)")
}

func runDaemon(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()
	if scheduleExpr != "" {
		cfg.WithSchedule(scheduleExpr)
	}

	// Get timezone from environment or default to UTC
	location, err := time.LoadLocation(os.Getenv("TZ"))
	if err != nil {
		logger.Warn("invalid timezone, defaulting to UTC", "tz", os.Getenv("TZ"))
		location = time.UTC
	}

	if err := os.MkdirAll(cfg.OutputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	regenerate := func() {
		logger.Info("regenerating palette set", "output", cfg.OutputDir)

		gen := palette.NewGenerator()
		palettes := generateAll(gen, color.Neutral, color.HarmonyTypes(), cfg)
		if len(palettes) == 0 {
			logger.Error("no palettes could be generated")
			return
		}

		if err := writeDocument(palettes, filepath.Join(cfg.OutputDir, jsonName)); err != nil {
			logger.Error("failed to write palette document", "error", err)
		}
	}

	c := cron.New(cron.WithLocation(location))
	if _, err := c.AddFunc(cfg.Schedule, regenerate); err != nil {
		return fmt.Errorf("failed to schedule palette generation: %w", err)
	}

	// Build an initial set so the output directory is never empty
	// while waiting for the first tick.
	regenerate()

	logger.Info("daemon started", "schedule", cfg.Schedule, "timezone", location.String())
	c.Start()

	// Keep the program running
	for {
		time.Sleep(time.Hour)
	}
}
