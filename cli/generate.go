package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/watzon/huegen/color"
	"github.com/watzon/huegen/config"
	"github.com/watzon/huegen/imaging"
	"github.com/watzon/huegen/palette"
)

var (
	harmonyName     string
	temperatureName string
	numColors       int
	seed            int64
	jsonName        string
	noLabels        bool

	generateCmd = &cobra.Command{
		Use:   "generate",
		Short: "Generate harmony palettes and save images plus palette data",
		Long: `Generate builds a palette for one harmony type, or for every type when
--harmony is "all". Each palette is rendered to a PNG in the output
directory and the full set is written to a single JSON document.`,
		RunE: runGenerate,
	}
)

func init() {
	generateCmd.Flags().StringVar(&harmonyName, "harmony", "all", "harmony type to generate, or \"all\"")
	generateCmd.Flags().StringVar(&temperatureName, "temperature", "neutral", "temperature preference (warm, cool, neutral)")
	generateCmd.Flags().IntVarP(&numColors, "colors", "n", 5, "number of colors for harmonies that honor a count")
	generateCmd.Flags().Int64Var(&seed, "seed", 0, "seed for reproducible palettes")
	generateCmd.Flags().StringVar(&jsonName, "json", "palette_data.json", "file name of the JSON palette document")
	generateCmd.Flags().BoolVar(&noLabels, "no-labels", false, "omit hex and RGB labels from images")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()

	pref, err := color.ParseTemperature(temperatureName)
	if err != nil {
		return err
	}

	types, err := resolveTypes(harmonyName)
	if err != nil {
		return err
	}

	var opts []palette.Option
	if cmd.Flags().Changed("seed") {
		opts = append(opts, palette.WithSeed(seed))
	}
	gen := palette.NewGenerator(opts...)

	if err := os.MkdirAll(cfg.OutputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	palettes := generateAll(gen, pref, types, cfg)
	if len(palettes) == 0 {
		return fmt.Errorf("no palettes could be generated")
	}

	jsonPath := filepath.Join(cfg.OutputDir, jsonName)
	if err := writeDocument(palettes, jsonPath); err != nil {
		return err
	}

	logger.Info("generated palettes", "count", len(palettes), "data", jsonPath)
	return nil
}

// generateAll builds and saves one palette per type. A failure for one
// harmony type is logged and does not prevent the remaining types from
// being attempted.
func generateAll(gen *palette.Generator, pref color.Temperature, types []color.HarmonyType, cfg *config.Config) []*palette.Palette {
	handler := imaging.NewHandler(cfg)

	var palettes []*palette.Palette
	for _, t := range types {
		logger.Info("generating palette", "harmony", t.String())

		p, err := gen.Generate(pref, t, numColors)
		if err != nil {
			logger.Error("failed to generate palette", "harmony", t.String(), "error", err)
			continue
		}

		imgPath := filepath.Join(cfg.OutputDir, fmt.Sprintf("palette_%s.png", t))
		if err := savePaletteImage(handler, p, cfg.FontPath, imgPath); err != nil {
			logger.Error("failed to save palette image", "harmony", t.String(), "error", err)
			continue
		}

		logger.Debug("saved palette image",
			"path", imgPath,
			"colors", p.HexCodes(),
			"harmony_score", p.Analysis.HarmonyScore)
		palettes = append(palettes, p)
	}
	return palettes
}

func savePaletteImage(handler *imaging.Handler, p *palette.Palette, fontPath, path string) error {
	img, err := p.ToImage(palette.ImageOptions{
		Title:      fmt.Sprintf("%s Color Harmony", p.Type.DisplayName()),
		FontPath:   fontPath,
		HideLabels: noLabels,
	})
	if err != nil {
		return err
	}
	return handler.SavePNG(img, path)
}

func writeDocument(palettes []*palette.Palette, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer f.Close()

	return palette.WriteDocument(f, palette.NewDocument(palettes))
}

// resolveTypes maps the --harmony flag to the list of types to build.
func resolveTypes(name string) ([]color.HarmonyType, error) {
	if name == "all" {
		return color.HarmonyTypes(), nil
	}
	t, err := color.ParseHarmonyType(name)
	if err != nil {
		return nil, err
	}
	return []color.HarmonyType{t}, nil
}
