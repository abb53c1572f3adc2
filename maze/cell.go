package maze

// Cell represents a single cell in a maze grid.
// It records which walls are open and the markers used by rendering.
type Cell struct {
	// Access holds the directions whose wall is open.
	Access DirectionSet
	// Visited is generation bookkeeping while carving and a path marker afterwards.
	Visited bool
	// Start marks the cell where carving began.
	Start bool
	// End marks the first dead end met while carving.
	End bool
}

// IsOpen reports whether the wall on side d is open.
func (c *Cell) IsOpen(d Direction) bool {
	return c.Access.Has(d)
}

// open opens the wall on side d.
func (c *Cell) open(d Direction) {
	c.Access = c.Access.Add(d)
}
