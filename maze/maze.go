/*
Package maze provides tools for creating and querying rectangular perfect mazes.

A Maze is generated with a randomized iterative depth-first carving walk: every cell is
reached exactly once, so the open walls form a spanning tree and any two cells are joined
by exactly one simple path. The cell where carving starts is marked as the start, and the
first dead end met during the walk is marked as the end.

After generation the maze is read-only except for the Visited markers that a solver sets
to highlight the explored route.
*/
package maze

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"time"
)

var (
	ErrInvalidDimensions = errors.New("invalid maze dimensions")
	ErrOutOfBounds       = errors.New("position is out of the maze")
	ErrInvalidGrid       = errors.New("invalid maze grid")
)

// Maze is a rectangular grid of cells whose open walls form a spanning tree.
type Maze struct {
	width  int
	height int
	grid   [][]Cell // grid[y][x]
	start  Position
	end    Position
}

// New initializes a new maze of the given dimensions and carves its layout using rng.
// A nil rng is replaced with a time-seeded source.
func New(width, height int, rng *rand.Rand) (*Maze, error) {
	if width < 1 || height < 1 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	m := &Maze{
		width:  width,
		height: height,
		grid:   newGrid(width, height),
	}
	m.generateMaze(rng)
	return m, nil
}

// FromGrid rebuilds a maze from existing cells, indexed grid[y][x].
// The grid must be rectangular, have symmetric walls with no opening to the
// outside, and contain exactly one start and one end cell.
func FromGrid(grid [][]Cell) (*Maze, error) {
	height := len(grid)
	if height == 0 || len(grid[0]) == 0 {
		return nil, fmt.Errorf("%w: empty grid", ErrInvalidDimensions)
	}
	width := len(grid[0])

	m := &Maze{
		width:  width,
		height: height,
		grid:   newGrid(width, height),
	}

	starts, ends := 0, 0
	for y, row := range grid {
		if len(row) != width {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrInvalidDimensions, y, len(row), width)
		}
		for x, cell := range row {
			m.grid[y][x] = cell
			if cell.Start {
				starts++
				m.start = Position{X: x, Y: y}
			}
			if cell.End {
				ends++
				m.end = Position{X: x, Y: y}
			}
		}
	}

	if starts != 1 || ends != 1 {
		return nil, fmt.Errorf("%w: found %d start and %d end cells", ErrInvalidGrid, starts, ends)
	}

	for y := range m.grid {
		for x := range m.grid[y] {
			pos := Position{X: x, Y: y}
			for _, d := range m.grid[y][x].Access.Directions() {
				next := pos.Step(d)
				if !m.InBound(next) {
					return nil, fmt.Errorf("%w: %v opens %s to the outside", ErrInvalidGrid, pos, d)
				}
				if !m.cell(next).IsOpen(d.Opposite()) {
					return nil, fmt.Errorf("%w: wall between %v and %v is one-sided", ErrInvalidGrid, pos, next)
				}
			}
		}
	}

	return m, nil
}

func newGrid(width, height int) [][]Cell {
	grid := make([][]Cell, height)
	for i := range grid {
		grid[i] = make([]Cell, width)
	}
	return grid
}

// generateMaze carves passages with an explicit-stack depth-first walk.
func (m *Maze) generateMaze(rng *rand.Rand) {
	m.start = Position{X: rng.Intn(m.width), Y: rng.Intn(m.height)}
	startCell := m.cell(m.start)
	startCell.Visited = true
	startCell.Start = true

	stack := []Position{m.start}
	endFound := false

	for len(stack) > 0 {
		cur := stack[len(stack)-1]

		unvisited := m.unvisitedNeighbors(cur)
		if len(unvisited) > 0 {
			next := unvisited[rng.Intn(len(unvisited))]
			m.openWall(cur, next)
			m.cell(next).Visited = true
			stack = append(stack, next)
			continue
		}

		// First dead end becomes the end cell; later ones are left alone.
		if !endFound {
			m.cell(cur).End = true
			m.end = cur
			endFound = true
		}
		stack = stack[:len(stack)-1]
	}

	m.ClearVisited()
}

// unvisitedNeighbors returns the in-bound neighbors of pos not yet reached by the carving walk.
func (m *Maze) unvisitedNeighbors(pos Position) []Position {
	var result []Position
	for _, n := range m.Neighbors(pos) {
		if !m.cell(n).Visited {
			result = append(result, n)
		}
	}
	return result
}

// openWall removes the wall between two adjacent cells on both sides.
func (m *Maze) openWall(from, to Position) {
	d, ok := DirectionTo(from, to)
	if !ok {
		return
	}
	m.cell(from).open(d)
	m.cell(to).open(d.Opposite())
}

// cell returns a pointer to the in-bound cell at pos.
func (m *Maze) cell(pos Position) *Cell {
	return &m.grid[pos.Y][pos.X]
}

// Width returns the number of columns.
func (m *Maze) Width() int {
	return m.width
}

// Height returns the number of rows.
func (m *Maze) Height() int {
	return m.height
}

// InBound reports whether pos lies inside the maze.
func (m *Maze) InBound(pos Position) bool {
	return pos.X >= 0 && pos.X < m.width && pos.Y >= 0 && pos.Y < m.height
}

// Cell returns a copy of the cell at pos.
func (m *Maze) Cell(pos Position) (Cell, error) {
	if !m.InBound(pos) {
		return Cell{}, fmt.Errorf("%w: %v", ErrOutOfBounds, pos)
	}
	return *m.cell(pos), nil
}

// Start returns the position of the start cell.
func (m *Maze) Start() (Position, bool) {
	return m.find(func(c *Cell) bool { return c.Start }, m.start)
}

// End returns the position of the end cell.
func (m *Maze) End() (Position, bool) {
	return m.find(func(c *Cell) bool { return c.End }, m.end)
}

// find checks the cached position first and falls back to a grid scan.
func (m *Maze) find(match func(*Cell) bool, cached Position) (Position, bool) {
	if m.InBound(cached) && match(m.cell(cached)) {
		return cached, true
	}
	for y := range m.grid {
		for x := range m.grid[y] {
			if match(&m.grid[y][x]) {
				return Position{X: x, Y: y}, true
			}
		}
	}
	return Position{}, false
}

// Access returns the open directions of the cell at pos.
func (m *Maze) Access(pos Position) (DirectionSet, bool) {
	if !m.InBound(pos) {
		return 0, false
	}
	return m.cell(pos).Access, true
}

// DistanceToEnd returns the Manhattan distance from pos to the end cell.
func (m *Maze) DistanceToEnd(pos Position) (int, bool) {
	if !m.InBound(pos) {
		return 0, false
	}
	end, ok := m.End()
	if !ok {
		return 0, false
	}
	return pos.Manhattan(end), true
}

// Neighbors returns the in-bound 4-neighbors of pos in N, S, E, W order.
func (m *Maze) Neighbors(pos Position) []Position {
	var result []Position
	for _, d := range Directions {
		if n := pos.Step(d); m.InBound(n) {
			result = append(result, n)
		}
	}
	return result
}

// OpenNeighbors returns the neighbors of pos reachable through an open wall.
func (m *Maze) OpenNeighbors(pos Position) []Position {
	access, ok := m.Access(pos)
	if !ok {
		return nil
	}
	var result []Position
	for _, d := range access.Directions() {
		if n := pos.Step(d); m.InBound(n) {
			result = append(result, n)
		}
	}
	return result
}

// CanMove reports whether from and to are adjacent and joined by an open wall.
func (m *Maze) CanMove(from, to Position) bool {
	if !m.InBound(from) || !m.InBound(to) || from.Manhattan(to) != 1 {
		return false
	}
	d, _ := DirectionTo(from, to)
	return m.cell(from).IsOpen(d) && m.cell(to).IsOpen(d.Opposite())
}

// MarkVisited flags the cell at pos as visited. Out-of-bound positions are ignored.
func (m *Maze) MarkVisited(pos Position) {
	if !m.InBound(pos) {
		return
	}
	m.cell(pos).Visited = true
}

// ClearVisited resets every Visited flag.
func (m *Maze) ClearVisited() {
	for y := range m.grid {
		for x := range m.grid[y] {
			m.grid[y][x].Visited = false
		}
	}
}

// String provides a textual representation of the maze.
// S marks the start, E the end and * every visited cell.
func (m *Maze) String() string {
	var output strings.Builder

	// Top boundary
	output.WriteString("+" + strings.Repeat("---+", m.width) + "\n")

	for y := 0; y < m.height; y++ {
		// Cell rows
		cellRow := "|"
		for x := 0; x < m.width; x++ {
			cell := m.grid[y][x]
			cellRow += " " + cellMark(cell) + " "
			if cell.IsOpen(East) {
				cellRow += " "
			} else {
				cellRow += "|"
			}
		}
		output.WriteString(cellRow + "\n")

		// Wall rows
		wallRow := "+"
		for x := 0; x < m.width; x++ {
			if m.grid[y][x].IsOpen(South) {
				wallRow += "   +"
			} else {
				wallRow += "---+"
			}
		}
		output.WriteString(wallRow + "\n")
	}

	return output.String()
}

func cellMark(c Cell) string {
	switch {
	case c.Start:
		return "S"
	case c.End:
		return "E"
	case c.Visited:
		return "*"
	default:
		return " "
	}
}
