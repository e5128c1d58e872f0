package main

import (
	"fmt"
	"log/slog"

	"github.com/pkg/profile"
	"github.com/spf13/cobra"

	"github.com/Jprebys/pictoro-go/internal/config"
	"github.com/Jprebys/pictoro-go/internal/gridio"
	"github.com/Jprebys/pictoro-go/internal/obslog"
	"github.com/Jprebys/pictoro-go/internal/raster"
	"github.com/Jprebys/pictoro-go/pkg/wfc"
)

var solveCmd = &cobra.Command{
	Use:   "solve",
	Short: "Synthesize an output grid from an example grid",
	RunE:  runSolve,
}

var (
	flagConfigPath string
	flagN          int
	flagWidth      int
	flagHeight     int
	flagSeed       int64
	flagExample    string
	flagOut        string
	flagHeuristic  string
	flagCPUProfile bool
	flagMemProfile bool
)

func init() {
	solveCmd.Flags().StringVar(&flagConfigPath, "config", "", "config file (default: built-in defaults)")
	solveCmd.Flags().IntVar(&flagN, "n", 0, "pattern window size (overrides config)")
	solveCmd.Flags().IntVar(&flagWidth, "width", 0, "output width in symbols (overrides config)")
	solveCmd.Flags().IntVar(&flagHeight, "height", 0, "output height in symbols (overrides config)")
	solveCmd.Flags().Int64Var(&flagSeed, "seed", 0, "PRNG seed (overrides config; with neither set, the seed comes from the wall clock)")
	solveCmd.Flags().StringVar(&flagExample, "example", "", "path to the example grid file (required)")
	solveCmd.Flags().StringVar(&flagOut, "out", "out.ppm", "output PPM path")
	solveCmd.Flags().StringVar(&flagHeuristic, "heuristic", "", "observer strategy: first or entropy (overrides config)")
	solveCmd.Flags().BoolVar(&flagCPUProfile, "cpuprofile", false, "capture a CPU profile to ./cpu.pprof")
	solveCmd.Flags().BoolVar(&flagMemProfile, "memprofile", false, "capture a memory profile to ./mem.pprof")
	solveCmd.MarkFlagRequired("example")
}

func runSolve(cmd *cobra.Command, args []string) error {
	cfg := config.Defaults()
	if flagConfigPath != "" {
		loaded, err := config.Load(flagConfigPath)
		if err == nil {
			cfg = loaded
		}
	}

	flags := cmd.Flags()
	if flags.Changed("n") {
		cfg.N = flagN
	}
	if flags.Changed("width") {
		cfg.OutputWidth = flagWidth
	}
	if flags.Changed("height") {
		cfg.OutputHeight = flagHeight
	}
	if flags.Changed("seed") {
		s := flagSeed
		cfg.Seed = &s
	}
	if flags.Changed("heuristic") {
		cfg.Heuristic = flagHeuristic
	}

	logger, err := obslog.Setup(cfg.LogLevel, cfg.LogFile)
	if err != nil {
		return fmt.Errorf("setting up logging: %w", err)
	}

	if flagCPUProfile {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	} else if flagMemProfile {
		defer profile.Start(profile.MemProfile, profile.ProfilePath(".")).Stop()
	}

	grid, err := gridio.LoadGrid(flagExample)
	if err != nil {
		return fmt.Errorf("loading example grid: %w", err)
	}
	logger.Info("loaded example grid", "rows", grid.Rows, "cols", grid.Cols)

	opts := &wfc.Options{Seed: cfg.Seed}
	switch cfg.Heuristic {
	case "entropy":
		opts.Heuristic = wfc.LowestEntropy{}
	default:
		opts.Heuristic = wfc.FirstUncollapsed{}
	}

	out, err := wfc.Solve(grid, cfg.N, cfg.OutputWidth, cfg.OutputHeight, opts)
	if err != nil {
		return fmt.Errorf("solving: %w", err)
	}
	logger.Info("solve complete", "output_width", cfg.OutputWidth, "output_height", cfg.OutputHeight)

	pal := raster.BuildPalette(grid)
	frame := raster.FrameFromSymbolGrid(out, pal)
	if err := frame.SavePPM(flagOut); err != nil {
		return fmt.Errorf("saving output: %w", err)
	}

	logger.Info("wrote output", "path", flagOut, slog.String("level", cfg.LogLevel))
	return nil
}
