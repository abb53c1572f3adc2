// Package solver finds the route through a maze.Maze with an incremental
// best-first search tree.
//
// Each iteration selects the cheapest live node of the tree (F = G + H, with
// H the Manhattan distance to the end), asks it for one more move and grows
// the tree by a single node. Nodes that can no longer branch are marked as
// dead ends and skipped from then on. Once the end is reached the path is
// retraced through parent links and marked on the maze.
package solver

import (
	"errors"
	"fmt"

	"github.com/beka-birhanu/vinom-maze/maze"
)

var (
	ErrUnsolvable  = errors.New("maze could not be solved")
	ErrNoStart     = errors.New("maze has no start cell")
	ErrNoEnd       = errors.New("maze has no end cell")
	ErrUnknownNode = errors.New("unknown search node")
	ErrRootExists  = errors.New("search tree already has a root")
)

// Result contains the outcome of a solve.
type Result struct {
	Path       []maze.Position // start to end, inclusive
	Iterations int             // selection rounds run
	Expansions int             // nodes added below the root
	Found      bool
}

// Options defines parameters for the solve loop.
type Options struct {
	// MaxIterations caps the selection rounds; zero or less means 4*w*h + 4.
	MaxIterations int
}

// Option is a function that modifies Options.
type Option func(*Options)

// WithMaxIterations caps the number of selection rounds of a solve.
func WithMaxIterations(n int) Option {
	return func(options *Options) { options.MaxIterations = n }
}

// Solver drives the search tree over a maze.
type Solver struct {
	opts Options
	tree *Tree
}

// New creates a Solver with the given options applied.
func New(options ...Option) *Solver {
	s := &Solver{}
	for _, option := range options {
		option(&s.opts)
	}
	return s
}

// Tree returns the search tree of the last Solve call, or nil before the first.
func (s *Solver) Tree() *Tree {
	return s.tree
}

// Solve searches m from its start to its end. Every explored position and
// every position of the final path is marked visited on m.
func (s *Solver) Solve(m *maze.Maze) (Result, error) {
	start, ok := m.Start()
	if !ok {
		return Result{}, ErrNoStart
	}
	end, ok := m.End()
	if !ok {
		return Result{}, ErrNoEnd
	}

	s.tree = NewTree()
	if _, err := s.tree.SetRoot(NewNode(start, m)); err != nil {
		return Result{}, err
	}
	m.MarkVisited(start)

	if start == end {
		return Result{Path: []maze.Position{start}, Found: true}, nil
	}

	limit := s.iterationLimit(m)
	result := Result{}
	for result.Iterations < limit {
		result.Iterations++

		node, ok := s.tree.FindBestValid()
		if !ok {
			return result, fmt.Errorf("%w: every node is a dead end after %d iterations", ErrUnsolvable, result.Iterations)
		}

		next, ok := s.tree.ComputeNextMove(node, m)
		if !ok {
			continue
		}

		m.MarkVisited(next)
		if next == end {
			result.Path = append(s.tree.Retrace(node), end)
			result.Found = true
			for _, p := range result.Path {
				m.MarkVisited(p)
			}
			return result, nil
		}

		if _, err := s.tree.Insert(node, NewNode(next, m)); err != nil {
			return result, err
		}
		result.Expansions++
	}

	return result, fmt.Errorf("%w: iteration limit %d reached", ErrUnsolvable, limit)
}

func (s *Solver) iterationLimit(m *maze.Maze) int {
	if s.opts.MaxIterations > 0 {
		return s.opts.MaxIterations
	}
	return 4*m.Width()*m.Height() + 4
}
