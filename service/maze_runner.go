package service

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/beka-birhanu/vinom-maze/maze"
	pb "github.com/beka-birhanu/vinom-maze/pb_encoder"
	"github.com/beka-birhanu/vinom-maze/render"
	"github.com/beka-birhanu/vinom-maze/service/i"
	"github.com/beka-birhanu/vinom-maze/solver"
	"github.com/google/uuid"
)

const (
	minDimension = 3 // Minimum maze dimension (width or height) accepted from callers.

	FormatText     = "text"
	FormatPNG      = "png"
	FormatProtobuf = "pb"
)

var (
	ErrNotBigEnoughDimension = errors.New("dimension is not big enough")
	ErrUnknownFormat         = errors.New("unknown output format")
	ErrMissingLogger         = errors.New("logger is required")
)

// Report describes one generate-and-solve run.
type Report struct {
	ID       uuid.UUID     // Identifies the run in logs.
	Seed     int64         // Seed the maze was carved with.
	Maze     *maze.Maze    // Solved maze, path cells marked visited.
	Result   solver.Result // Solver outcome.
	Duration time.Duration // Wall time of generation plus solving.
}

// Config holds the collaborators of a MazeRunner.
type Config struct {
	MazeFactory   func(width, height int, rng *rand.Rand) (*maze.Maze, error) // Defaults to maze.New.
	Seed          int64                                                       // 0 seeds every run from the clock.
	MaxIterations int                                                         // Solver iteration cap; 0 keeps the solver default.
	Logger        i.Logger
}

// MazeRunner generates mazes, solves them and encodes the result.
type MazeRunner struct {
	mazeFactory   func(int, int, *rand.Rand) (*maze.Maze, error)
	seed          int64
	maxIterations int
	encoders      map[string]i.MazeEncoder
	logger        i.Logger
}

// NewMazeRunner creates a MazeRunner from c.
func NewMazeRunner(c *Config) (*MazeRunner, error) {
	if c.Logger == nil {
		return nil, ErrMissingLogger
	}

	factory := c.MazeFactory
	if factory == nil {
		factory = maze.New
	}

	return &MazeRunner{
		mazeFactory:   factory,
		seed:          c.Seed,
		maxIterations: c.MaxIterations,
		encoders: map[string]i.MazeEncoder{
			FormatText:     &render.Text{},
			FormatPNG:      &render.PNG{},
			FormatProtobuf: &pb.Protobuf{},
		},
		logger: c.Logger,
	}, nil
}

// Run generates a width x height maze and solves it.
// Both dimensions must be at least 3.
func (r *MazeRunner) Run(width, height int) (*Report, error) {
	if width < minDimension || height < minDimension {
		return nil, fmt.Errorf("%w: %dx%d, minimum is %d", ErrNotBigEnoughDimension, width, height, minDimension)
	}

	report := &Report{ID: uuid.New(), Seed: r.seed}
	if report.Seed == 0 {
		report.Seed = time.Now().UnixNano()
	}

	began := time.Now()
	m, err := r.mazeFactory(width, height, rand.New(rand.NewSource(report.Seed)))
	if err != nil {
		r.logger.Error(fmt.Sprintf("run %s: creating maze: %s", report.ID, err))
		return nil, err
	}
	report.Maze = m

	start, _ := m.Start()
	end, _ := m.End()
	r.logger.Info(fmt.Sprintf("run %s: generated %dx%d maze (seed %d) from %v to %v", report.ID, width, height, report.Seed, start, end))

	var opts []solver.Option
	if r.maxIterations > 0 {
		opts = append(opts, solver.WithMaxIterations(r.maxIterations))
	}
	result, err := solver.New(opts...).Solve(m)
	report.Result = result
	report.Duration = time.Since(began)
	if err != nil {
		r.logger.Error(fmt.Sprintf("run %s: solving maze after %d iterations: %s", report.ID, result.Iterations, err))
		return report, err
	}

	r.logger.Info(fmt.Sprintf("run %s: solved in %d iterations, %d expansions, path length %d (%s)",
		report.ID, result.Iterations, result.Expansions, len(result.Path), report.Duration))
	return report, nil
}

// Encode serializes the report's maze in the named format.
func (r *MazeRunner) Encode(report *Report, format string) ([]byte, error) {
	encoder, ok := r.encoders[format]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}

	payload, err := encoder.MarshalMaze(report.Maze)
	if err != nil {
		r.logger.Error(fmt.Sprintf("run %s: encoding %s: %s", report.ID, format, err))
		return nil, err
	}

	if len(payload) == 0 {
		r.logger.Warning(fmt.Sprintf("run %s: %s encoder produced no output", report.ID, format))
	}
	return payload, nil
}
