// Package cli provides the command-line interface for huegen.
package cli

import (
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/watzon/huegen/config"
)

var (
	logger hclog.Logger

	verbose   bool
	outputDir string
	fontPath  string

	// rootCmd represents the base command when called without any
	// subcommands
	rootCmd = &cobra.Command{
		Use:   "huegen",
		Short: "A color harmony palette generator",
		Long: `Huegen generates color palettes that follow classical color-harmony
rules (complementary, triadic, analogous, split-complementary, tetradic,
monochromatic), scores each palette for brightness, temperature,
contrast, and harmony quality, and renders the results to images and a
JSON document.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := hclog.Info
			if verbose {
				level = hclog.Debug
			}
			logger = hclog.New(&hclog.LoggerOptions{
				Name:   "huegen",
				Output: os.Stderr,
				Level:  level,
			})
		},
	}
)

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().StringVarP(&outputDir, "output", "o", "", "output directory for images and palette data")
	rootCmd.PersistentFlags().StringVar(&fontPath, "font", "", "TTF font used for image labels")

	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(daemonCmd)
}

// loadConfig merges environment configuration with command-line flags.
func loadConfig() *config.Config {
	cfg := config.FromEnv()
	if outputDir != "" {
		cfg.WithOutputDir(outputDir)
	}
	if fontPath != "" {
		cfg.WithFontPath(fontPath)
	}
	return cfg
}
