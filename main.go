package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/beka-birhanu/vinom-maze/config"
	"github.com/beka-birhanu/vinom-maze/logger"
	"github.com/beka-birhanu/vinom-maze/service"
	"github.com/beka-birhanu/vinom-maze/service/i"
	"github.com/spf13/cobra"
)

// newRootCmd builds the vinom-maze command. Defaults come from config.Envs.
func newRootCmd(runnerLogger i.Logger) *cobra.Command {
	var (
		seed          int64
		maxIterations int
		format        string
		output        string
	)

	cmd := &cobra.Command{
		Use:   "vinom-maze [width height]",
		Short: "Generate a random maze and find a path through it",
		Long: `Carves a random perfect maze, searches it from start to end and prints
the result. A single argument produces a square maze.`,
		Args:          cobra.MaximumNArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			width, height, err := parseDimensions(args, config.Envs.MazeWidth, config.Envs.MazeHeight)
			if err != nil {
				return err
			}

			runner, err := service.NewMazeRunner(&service.Config{
				Seed:          seed,
				MaxIterations: maxIterations,
				Logger:        runnerLogger,
			})
			if err != nil {
				return err
			}

			report, err := runner.Run(width, height)
			if err != nil {
				return err
			}

			payload, err := runner.Encode(report, format)
			if err != nil {
				return err
			}

			if output == "" {
				_, err = cmd.OutOrStdout().Write(payload)
				return err
			}
			if err := os.WriteFile(output, payload, 0o644); err != nil {
				return fmt.Errorf("writing %s: %w", output, err)
			}
			runnerLogger.Info(fmt.Sprintf("run %s: wrote %s", report.ID, output))
			return nil
		},
	}

	cmd.Flags().Int64Var(&seed, "seed", config.Envs.Seed, "random seed, 0 picks one from the clock")
	cmd.Flags().IntVar(&maxIterations, "max-iterations", config.Envs.MaxIterations, "solver iteration cap, 0 uses 4*width*height+4")
	cmd.Flags().StringVar(&format, "format", config.Envs.Format, "output format: text, png or pb")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default stdout)")

	return cmd
}

func parseDimensions(args []string, width, height int) (int, int, error) {
	if len(args) == 0 {
		return width, height, nil
	}

	dims := make([]int, len(args))
	for n, arg := range args {
		v, err := strconv.Atoi(arg)
		if err != nil {
			return 0, 0, fmt.Errorf("invalid dimension %q: %w", arg, err)
		}
		dims[n] = v
	}

	if len(dims) == 1 {
		return dims[0], dims[0], nil
	}
	return dims[0], dims[1], nil
}

func main() {
	appLogger, _ := logger.New("APP", config.ColorGreen, os.Stderr)

	runnerLogger, err := logger.New("MAZE-RUNNER", config.ColorCyan, os.Stderr)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating runner logger: %v", err))
		os.Exit(1)
	}

	if err := newRootCmd(runnerLogger).Execute(); err != nil {
		appLogger.Error(err.Error())
		os.Exit(1)
	}
}
