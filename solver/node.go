package solver

import "github.com/beka-birhanu/vinom-maze/maze"

// NodeID addresses a node inside its Tree.
type NodeID int

// NoParent is the parent of a root node.
const NoParent NodeID = -1

// Node is one explored position of the search tree.
type Node struct {
	Position maze.Position
	G        int  // depth from the root
	H        int  // Manhattan distance to the end, fixed at creation
	F        int  // G + H
	DeadEnd  bool // once set, never cleared

	parent   NodeID
	children []NodeID
}

// NewNode creates a detached node at pos scored against m's end cell.
// H (and so F) is 0 when m has no end or pos lies outside m; Solve checks
// for the end before creating any node.
func NewNode(pos maze.Position, m *maze.Maze) Node {
	h, _ := m.DistanceToEnd(pos)
	return Node{
		Position: pos,
		H:        h,
		F:        h,
		parent:   NoParent,
	}
}

// Parent returns the parent's ID, or NoParent for the root.
func (n *Node) Parent() NodeID {
	return n.parent
}

// Children returns a copy of the child IDs in discovery order.
func (n *Node) Children() []NodeID {
	children := make([]NodeID, len(n.children))
	copy(children, n.children)
	return children
}

func (n *Node) markDeadEnd() {
	n.DeadEnd = true
}
