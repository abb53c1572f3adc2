// Package pb encodes finished mazes in protobuf wire format.
//
// The layout matches this schema:
//
//	message Maze {
//	  uint32 width  = 1;
//	  uint32 height = 2;
//	  repeated Cell cells = 3; // row-major, height*width entries
//	}
//
//	message Cell {
//	  uint32 access  = 1; // bit per open direction: N=1, S=2, E=4, W=8
//	  bool   visited = 2;
//	  bool   start   = 3;
//	  bool   end     = 4;
//	}
package pb

import (
	"errors"
	"fmt"

	"github.com/beka-birhanu/vinom-maze/maze"
	"github.com/beka-birhanu/vinom-maze/service/i"
	"google.golang.org/protobuf/encoding/protowire"
)

var (
	_ i.MazeEncoder = &Protobuf{}
	_ i.MazeDecoder = &Protobuf{}
)

var ErrMalformedMaze = errors.New("malformed maze payload")

const (
	mazeWidthField  protowire.Number = 1
	mazeHeightField protowire.Number = 2
	mazeCellsField  protowire.Number = 3

	cellAccessField  protowire.Number = 1
	cellVisitedField protowire.Number = 2
	cellStartField   protowire.Number = 3
	cellEndField     protowire.Number = 4
)

// Protobuf encodes and decodes mazes in the wire format described above.
type Protobuf struct{}

// ContentType implements i.MazeEncoder.
func (p *Protobuf) ContentType() string {
	return "application/x-protobuf"
}

// MarshalMaze implements i.MazeEncoder.
func (p *Protobuf) MarshalMaze(m *maze.Maze) ([]byte, error) {
	var b []byte
	b = protowire.AppendTag(b, mazeWidthField, protowire.VarintType)
	b = protowire.AppendVarint(b, uint64(m.Width()))
	b = protowire.AppendTag(b, mazeHeightField, protowire.VarintType)
	b = protowire.AppendVarint(b, uint64(m.Height()))

	for y := 0; y < m.Height(); y++ {
		for x := 0; x < m.Width(); x++ {
			cell, err := m.Cell(maze.Position{X: x, Y: y})
			if err != nil {
				return nil, err
			}
			b = protowire.AppendTag(b, mazeCellsField, protowire.BytesType)
			b = protowire.AppendBytes(b, marshalCell(cell))
		}
	}

	return b, nil
}

// UnmarshalMaze implements i.MazeDecoder.
func (p *Protobuf) UnmarshalMaze(b []byte) (*maze.Maze, error) {
	var width, height uint64
	var cells []maze.Cell

	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return nil, fmt.Errorf("%w: %v", ErrMalformedMaze, protowire.ParseError(n))
		}
		b = b[n:]

		switch {
		case num == mazeWidthField && typ == protowire.VarintType:
			width, n = protowire.ConsumeVarint(b)
		case num == mazeHeightField && typ == protowire.VarintType:
			height, n = protowire.ConsumeVarint(b)
		case num == mazeCellsField && typ == protowire.BytesType:
			var raw []byte
			raw, n = protowire.ConsumeBytes(b)
			if n >= 0 {
				cell, err := unmarshalCell(raw)
				if err != nil {
					return nil, err
				}
				cells = append(cells, cell)
			}
		default:
			n = protowire.ConsumeFieldValue(num, typ, b)
		}
		if n < 0 {
			return nil, fmt.Errorf("%w: %v", ErrMalformedMaze, protowire.ParseError(n))
		}
		b = b[n:]
	}

	// Division keeps huge dimensions from wrapping the product.
	count := uint64(len(cells))
	if width == 0 || height == 0 || count%width != 0 || count/width != height {
		return nil, fmt.Errorf("%w: %d cells for %dx%d", ErrMalformedMaze, len(cells), width, height)
	}

	grid := make([][]maze.Cell, height)
	for y := range grid {
		grid[y] = cells[uint64(y)*width : uint64(y+1)*width]
	}
	return maze.FromGrid(grid)
}

func marshalCell(c maze.Cell) []byte {
	var b []byte
	if c.Access != 0 {
		b = protowire.AppendTag(b, cellAccessField, protowire.VarintType)
		b = protowire.AppendVarint(b, uint64(c.Access))
	}
	for _, f := range []struct {
		num protowire.Number
		set bool
	}{
		{cellVisitedField, c.Visited},
		{cellStartField, c.Start},
		{cellEndField, c.End},
	} {
		if f.set {
			b = protowire.AppendTag(b, f.num, protowire.VarintType)
			b = protowire.AppendVarint(b, protowire.EncodeBool(true))
		}
	}
	return b
}

func unmarshalCell(b []byte) (maze.Cell, error) {
	var c maze.Cell
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return c, fmt.Errorf("%w: %v", ErrMalformedMaze, protowire.ParseError(n))
		}
		b = b[n:]

		if typ != protowire.VarintType {
			n = protowire.ConsumeFieldValue(num, typ, b)
			if n < 0 {
				return c, fmt.Errorf("%w: %v", ErrMalformedMaze, protowire.ParseError(n))
			}
			b = b[n:]
			continue
		}

		v, n := protowire.ConsumeVarint(b)
		if n < 0 {
			return c, fmt.Errorf("%w: %v", ErrMalformedMaze, protowire.ParseError(n))
		}
		b = b[n:]

		switch num {
		case cellAccessField:
			if v > 0xF {
				return c, fmt.Errorf("%w: access bits %#x", ErrMalformedMaze, v)
			}
			c.Access = maze.DirectionSet(v)
		case cellVisitedField:
			c.Visited = protowire.DecodeBool(v)
		case cellStartField:
			c.Start = protowire.DecodeBool(v)
		case cellEndField:
			c.End = protowire.DecodeBool(v)
		}
	}
	return c, nil
}
