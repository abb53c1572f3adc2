// Package render turns a finished maze into something a person can look at.
package render

import (
	"github.com/beka-birhanu/vinom-maze/maze"
	"github.com/beka-birhanu/vinom-maze/service/i"
)

var _ i.MazeEncoder = &Text{}

// Text renders the maze as an ASCII wall grid.
type Text struct{}

// ContentType implements i.MazeEncoder.
func (t *Text) ContentType() string {
	return "text/plain; charset=utf-8"
}

// MarshalMaze implements i.MazeEncoder.
func (t *Text) MarshalMaze(m *maze.Maze) ([]byte, error) {
	return []byte(m.String()), nil
}
