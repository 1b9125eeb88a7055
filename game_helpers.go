package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/sheikhrachel/gol-frames/export"
	"github.com/sheikhrachel/gol-frames/model"
	"github.com/sheikhrachel/gol-frames/utils"
)

const clearScreen = "\033[H\033[2J"

var (
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
)

// errMissingArgs is returned when a required setting comes from neither a
// flag nor the config file
var errMissingArgs = errors.New("grid size, steps and threshold are required")

// resolveConfig merges the config file, if any, with explicitly set flags
// and validates the result
func resolveConfig(cmd *cobra.Command, opts options) (utils.Config, error) {
	var (
		cfg   = utils.DefaultConfig()
		err   error
		flags = cmd.Flags()
	)

	if opts.configFile != "" {
		if cfg, err = utils.LoadConfig(opts.configFile); err != nil {
			return cfg, err
		}
	} else {
		for _, name := range []string{"grid-size", "steps", "threshold"} {
			if !flags.Changed(name) {
				return cfg, errors.Wrapf(errMissingArgs, "[resolveConfig] missing --%s", name)
			}
		}
	}

	if flags.Changed("grid-size") {
		cfg.GridSize = opts.gridSize
	}
	if flags.Changed("steps") {
		cfg.Steps = opts.steps
	}
	if flags.Changed("threshold") {
		cfg.Threshold = opts.threshold
	}
	if flags.Changed("seed") {
		seed := opts.seed
		cfg.Seed = &seed
	}
	if flags.Changed("out") {
		cfg.OutputDir = opts.outputDir
	}
	if flags.Changed("workers") {
		cfg.Workers = opts.workers
	}
	if flags.Changed("render") {
		cfg.Render = opts.render
	}
	if opts.legacyBoundary {
		cfg.Boundary = model.BoundaryLegacy.String()
	}
	if opts.stopWhenStagnant {
		cfg.StopWhenStagnant = true
	}
	if opts.noPool {
		cfg.UseMemoryPool = false
	}

	if err = cfg.Validate(); err != nil {
		return cfg, errors.Wrap(err, "[resolveConfig]")
	}
	return cfg, nil
}

// simulation bundles everything one run needs
type simulation struct {
	grid     *model.Grid
	engine   *model.Engine
	pool     *model.GridPool
	exporter *model.TerminalRenderer
	png      *export.PNGExporter
	seed     int64
}

// initializeSimulation seeds the first generation and builds the engine and
// exporters described by cfg
func initializeSimulation(cfg utils.Config, out io.Writer) (*simulation, error) {
	boundary, err := cfg.BoundaryPolicy()
	if err != nil {
		return nil, err
	}

	imgCfg, err := cfg.ExportConfig()
	if err != nil {
		return nil, err
	}
	png, err := export.NewPNGExporter(imgCfg)
	if err != nil {
		return nil, err
	}

	seed := time.Now().UnixNano()
	if cfg.Seed != nil {
		seed = *cfg.Seed
	}

	grid, err := model.NewGrid(cfg.GridSize, cfg.Threshold, model.NewRandomSource(seed), model.WithBoundary(boundary))
	if err != nil {
		return nil, errors.Wrap(err, "[initializeSimulation]")
	}

	var pool *model.GridPool
	if cfg.UseMemoryPool {
		pool = model.NewGridPool()
	}

	return &simulation{
		grid:     grid,
		engine:   model.NewEngine(model.WithWorkers(cfg.Workers), model.WithPool(pool)),
		pool:     pool,
		exporter: &model.TerminalRenderer{Out: out},
		png:      png,
		seed:     seed,
	}, nil
}

// runSimulation exports each generation and advances the grid cfg.Steps
// times. A failed step or export aborts the run; the failing generation is
// never written.
func runSimulation(ctx context.Context, cfg utils.Config, out io.Writer, logger *slog.Logger) (*utils.Stats, error) {
	sim, err := initializeSimulation(cfg, out)
	if err != nil {
		return nil, err
	}

	logger.Debug("simulation initialized",
		"grid_size", cfg.GridSize,
		"steps", cfg.Steps,
		"threshold", cfg.Threshold,
		"seed", sim.seed,
		"workers", sim.engine.Workers(),
		"boundary", sim.grid.Boundary().String(),
		"render", cfg.Render,
		"pool", cfg.UseMemoryPool,
	)

	var (
		stats    = utils.NewStats()
		history  = model.NewHistory()
		progress *utils.ProgressBar
		grid     = sim.grid
		last     = time.Now()
	)
	if !cfg.RendersTerminal() {
		progress = utils.NewProgressBar(out, cfg.Steps)
	}

	for no := range cfg.Steps {
		population := grid.CountAlive()
		stats.Update(no+1, population, time.Since(last))
		last = time.Now()

		if err = exportGeneration(cfg, sim, grid, no, stats); err != nil {
			return stats, err
		}

		if cfg.StopWhenStagnant {
			if period, stagnant := history.Repeats(grid); stagnant {
				logger.Info("grid stagnated", "generation", no, "period", period, "population", population)
				fmt.Fprintf(out, "\nStopping at generation %d: pattern repeats with period %d\n", no, period)
				break
			}
			history.Record(grid)
		}

		next, err := sim.engine.Step(ctx, grid)
		if err != nil {
			return stats, errors.Wrapf(err, "[runSimulation] generation %d", no)
		}
		model.GridToPool(grid, sim.pool)
		grid = next

		if progress != nil {
			progress.SetPosition(no + 1)
		} else if cfg.FrameDelay > 0 {
			select {
			case <-ctx.Done():
				return stats, errors.Wrap(ctx.Err(), "[runSimulation] interrupted")
			case <-time.After(cfg.FrameDelay):
			}
		}
	}

	if progress != nil {
		progress.Finish("simulation finished")
	} else {
		fmt.Fprintln(out, statusStyle.Render("simulation finished"))
	}
	fmt.Fprint(out, stats.Summary())

	return stats, nil
}

// exportGeneration hands one generation to every configured exporter
func exportGeneration(cfg utils.Config, sim *simulation, grid *model.Grid, no int, stats *utils.Stats) error {
	if cfg.RendersPNG() {
		if err := sim.png.Save(export.FrameName(cfg.OutputDir, no), grid); err != nil {
			return errors.Wrapf(err, "[exportGeneration] generation %d", no)
		}
	}

	if cfg.RendersTerminal() {
		displayGameStatus(sim.exporter.Out, no, grid, stats)
		if err := sim.exporter.Display(grid); err != nil {
			return errors.Wrapf(err, "[exportGeneration] generation %d", no)
		}
	}
	return nil
}

// displayGameStatus shows the current generation above the terminal frame
func displayGameStatus(out io.Writer, generation int, grid *model.Grid, stats *utils.Stats) {
	density := 0.0
	if grid.Len() > 0 {
		density = float64(grid.CountAlive()) / float64(grid.Len()) * 100
	}

	fmt.Fprint(out, clearScreen)
	fmt.Fprintln(out, statusStyle.Render(fmt.Sprintf(
		"Gen: %d | Living: %d | Density: %.1f%% | %.1f gen/sec",
		generation, grid.CountAlive(), density, stats.GenerationsPerSecond,
	)))
}
