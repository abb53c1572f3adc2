package maze

// Position is a 0-based cell coordinate; X is the column, Y the row.
type Position struct {
	X int
	Y int
}

// Direction is one of the four axis-aligned moves between adjacent cells.
type Direction uint8

const (
	North Direction = iota
	South
	East
	West
)

// Directions lists every direction in the order neighbors are reported.
var Directions = [4]Direction{North, South, East, West}

var deltas = map[Direction]Position{
	North: {X: 0, Y: -1},
	South: {X: 0, Y: 1},
	East:  {X: 1, Y: 0},
	West:  {X: -1, Y: 0},
}

// Opposite returns the direction pointing back.
func (d Direction) Opposite() Direction {
	switch d {
	case North:
		return South
	case South:
		return North
	case East:
		return West
	default:
		return East
	}
}

func (d Direction) String() string {
	switch d {
	case North:
		return "North"
	case South:
		return "South"
	case East:
		return "East"
	case West:
		return "West"
	}
	return "Unknown"
}

// Step returns the position one cell away in direction d.
// The result may be out of any maze's bounds.
func (p Position) Step(d Direction) Position {
	delta := deltas[d]
	return Position{X: p.X + delta.X, Y: p.Y + delta.Y}
}

// Manhattan returns |dx| + |dy| between p and other.
func (p Position) Manhattan(other Position) int {
	return absDiff(p.X, other.X) + absDiff(p.Y, other.Y)
}

// DirectionTo returns the direction from src toward the 4-adjacent dst.
// It reports false when src == dst. For positions that are not adjacent the
// result follows the dominant axis and carries no further meaning.
func DirectionTo(src, dst Position) (Direction, bool) {
	dx, dy := dst.X-src.X, dst.Y-src.Y
	switch {
	case dx == 0 && dy == 0:
		return 0, false
	case absDiff(dx, 0) >= absDiff(dy, 0):
		if dx > 0 {
			return East, true
		}
		return West, true
	case dy > 0:
		return South, true
	default:
		return North, true
	}
}

// DirectionSet is a bit set of directions whose walls are open.
type DirectionSet uint8

// Has reports whether d is in the set.
func (s DirectionSet) Has(d Direction) bool {
	return s&(1<<d) != 0
}

// Add returns the set with d included.
func (s DirectionSet) Add(d Direction) DirectionSet {
	return s | 1<<d
}

// Len returns the number of directions in the set.
func (s DirectionSet) Len() int {
	n := 0
	for _, d := range Directions {
		if s.Has(d) {
			n++
		}
	}
	return n
}

// Directions returns the members of the set in N, S, E, W order.
func (s DirectionSet) Directions() []Direction {
	var dirs []Direction
	for _, d := range Directions {
		if s.Has(d) {
			dirs = append(dirs, d)
		}
	}
	return dirs
}

func absDiff(a, b int) int {
	if a > b {
		return a - b
	}
	return b - a
}
