package main

import (
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

// options collects command-line flags before they are merged into a config
type options struct {
	configFile       string
	gridSize         int
	steps            int
	threshold        float64
	seed             int64
	outputDir        string
	workers          int
	render           string
	legacyBoundary   bool
	stopWhenStagnant bool
	noPool           bool
	verbose          bool
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:   "gol-frames",
		Short: "Conway's Game of Life rendered to one PNG per generation",
		Example: "  gol-frames -g 50 -s 20 -t 0.3\n" +
			"  gol-frames --config gol.yaml --render terminal",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd, opts)
			if err != nil {
				fmt.Fprintln(cmd.ErrOrStderr(), errorStyle.Render(err.Error()))
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			logger := newLogger(cmd, opts.verbose)
			if _, err = runSimulation(ctx, cfg, cmd.OutOrStdout(), logger); err != nil {
				fmt.Fprintln(cmd.ErrOrStderr(), errorStyle.Render(err.Error()))
				return err
			}
			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.configFile, "config", "c", "", "YAML config file")
	flags.IntVarP(&opts.gridSize, "grid-size", "g", 0, "size of the square grid on which the game unfolds")
	flags.IntVarP(&opts.steps, "steps", "s", 0, "number of simulation steps")
	flags.Float64VarP(&opts.threshold, "threshold", "t", 0, "random initialization threshold in [0.0, 1.0]")
	flags.Int64Var(&opts.seed, "seed", 0, "random seed (time based when unset)")
	flags.StringVarP(&opts.outputDir, "out", "o", "", "directory for PNG frames")
	flags.IntVarP(&opts.workers, "workers", "w", 0, "concurrent workers per step (0 = number of CPUs)")
	flags.StringVar(&opts.render, "render", "", "png, terminal, both or none")
	flags.BoolVar(&opts.legacyBoundary, "legacy-boundary", false, "never count the first cell as a neighbor and allow row-end wrap, as older renders did")
	flags.BoolVar(&opts.stopWhenStagnant, "stop-when-stagnant", false, "end early once the grid settles into a still life or short cycle")
	flags.BoolVar(&opts.noPool, "no-pool", false, "allocate every generation instead of recycling buffers")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "log diagnostics to stderr")

	return cmd
}

func newLogger(cmd *cobra.Command, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
}
