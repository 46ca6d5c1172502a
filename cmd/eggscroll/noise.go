package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/eggscroll/internal/config"
	"github.com/vovakirdan/eggscroll/internal/core"
	"github.com/vovakirdan/eggscroll/internal/noise"
	"github.com/vovakirdan/eggscroll/internal/platform/tui"
	"github.com/vovakirdan/eggscroll/internal/terrain"
)

var (
	flagNoiseRows    int
	flagNoiseCols    int
	flagNoiseStep    float64
	flagNoiseBackend string
	flagNoiseBlue    bool
)

var noiseCmd = &cobra.Command{
	Use:   "noise",
	Short: "Preview a terrain noise field",
	Long: `Render the noise field a world is built from, one shade per cell.
Dark cells are low values, bright cells high ones.

Examples:
  eggscroll noise
  eggscroll noise --seed 42 --blue
  eggscroll noise --rows 20 --cols 40 --step 0.2
  eggscroll noise --backend simplex`,
	Run: runNoise,
}

func init() {
	defaults := config.DefaultPlatformerConfig().Terrain
	noiseCmd.Flags().IntVar(&flagNoiseRows, "rows", defaults.Rows, "Lattice rows")
	noiseCmd.Flags().IntVar(&flagNoiseCols, "cols", defaults.Cols, "Lattice columns")
	noiseCmd.Flags().Float64Var(&flagNoiseStep, "step", defaults.Step, "Sampling step in lattice units")
	noiseCmd.Flags().StringVar(&flagNoiseBackend, "backend", defaults.Backend, "Noise backend: lattice, perlin, simplex")
	noiseCmd.Flags().BoolVar(&flagNoiseBlue, "blue", false, "Shade on the blue channel like the water")
}

func runNoise(_ *cobra.Command, _ []string) {
	logger := log.NewWithOptions(os.Stderr, log.Options{Prefix: "noise"})

	backend, err := noise.ParseBackend(flagNoiseBackend)
	if err != nil {
		logger.Error("bad backend", "error", err)
		os.Exit(1)
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	field, err := terrain.GenerateField(backend, flagNoiseRows, flagNoiseCols, flagNoiseStep, seed)
	if err != nil {
		logger.Error("cannot generate field", "error", err)
		os.Exit(1)
	}

	lo, hi, mean := field.Summary()
	logger.Info("field generated",
		"backend", backend,
		"seed", seed,
		"rows", field.Rows(),
		"cols", field.Cols(),
		"min", fmt.Sprintf("%.3f", lo),
		"max", fmt.Sprintf("%.3f", hi),
		"mean", fmt.Sprintf("%.3f", mean),
	)

	scale := terrain.Grayscale
	if flagNoiseBlue {
		scale = terrain.BlueScale
	}

	screen := fieldPreview(field, scale, terminalConfig())
	fmt.Println(tui.RenderScreen(screen))
}

// fieldPreview sizes the preview to the terminal, never larger than the
// field. One line is left for the shell prompt.
func fieldPreview(field noise.Array, scale func(float64) core.RGB, cfg core.RuntimeConfig) *core.Screen {
	cols := min(field.Cols(), cfg.ScreenW)
	rows := min(field.Rows(), max(cfg.ScreenH-1, 1))
	return tui.FieldScreen(field, scale, cols, rows)
}
