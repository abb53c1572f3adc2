package i

import "github.com/beka-birhanu/vinom-maze/maze"

// MazeEncoder serializes a finished maze for an outside consumer.
type MazeEncoder interface {
	// MarshalMaze encodes the maze, including its visited markers.
	MarshalMaze(m *maze.Maze) ([]byte, error)
	// ContentType names the encoding, e.g. "text/plain".
	ContentType() string
}

// MazeDecoder rebuilds a maze from bytes produced by the matching MazeEncoder.
type MazeDecoder interface {
	UnmarshalMaze(b []byte) (*maze.Maze, error)
}
