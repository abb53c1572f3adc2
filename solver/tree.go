package solver

import (
	"fmt"

	"github.com/beka-birhanu/vinom-maze/maze"
)

// Tree is an incremental exploration tree stored as an arena of nodes.
// Nodes are only ever added; a node's lifetime is the tree's.
type Tree struct {
	nodes []*Node
}

// NewTree returns an empty tree.
func NewTree() *Tree {
	return &Tree{}
}

// Len returns the number of nodes in the tree.
func (t *Tree) Len() int {
	return len(t.nodes)
}

// Root returns the root's ID; false when the tree is empty.
func (t *Tree) Root() (NodeID, bool) {
	if len(t.nodes) == 0 {
		return NoParent, false
	}
	return 0, true
}

// SetRoot seeds an empty tree with n.
func (t *Tree) SetRoot(n Node) (NodeID, error) {
	if len(t.nodes) > 0 {
		return NoParent, ErrRootExists
	}
	n.parent = NoParent
	n.children = nil
	n.G = 0
	n.F = n.H
	t.nodes = append(t.nodes, &n)
	return 0, nil
}

// Node returns the node stored under id.
func (t *Tree) Node(id NodeID) (*Node, error) {
	if id < 0 || int(id) >= len(t.nodes) {
		return nil, fmt.Errorf("%w: %d", ErrUnknownNode, id)
	}
	return t.nodes[id], nil
}

// Insert attaches child under parent, setting its depth and score.
func (t *Tree) Insert(parent NodeID, child Node) (NodeID, error) {
	p, err := t.Node(parent)
	if err != nil {
		return NoParent, err
	}

	child.parent = parent
	child.children = nil
	child.G = p.G + 1
	child.F = child.G + child.H

	id := NodeID(len(t.nodes))
	t.nodes = append(t.nodes, &child)
	p.children = append(p.children, id)
	return id, nil
}

// Walk visits nodes in pre-order (a node, then each child subtree in
// discovery order) until fn returns false.
func (t *Tree) Walk(fn func(NodeID, *Node) bool) {
	root, ok := t.Root()
	if !ok {
		return
	}

	stack := []NodeID{root}
	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		n := t.nodes[id]
		if !fn(id, n) {
			return
		}
		for i := len(n.children) - 1; i >= 0; i-- {
			stack = append(stack, n.children[i])
		}
	}
}

// FindBestValid returns the non-dead-end node with the lowest F.
// Every node is considered, including descendants of dead ends; ties go to
// the first node met in pre-order.
func (t *Tree) FindBestValid() (NodeID, bool) {
	best, found := NoParent, false
	bestF := 0

	t.Walk(func(id NodeID, n *Node) bool {
		if n.DeadEnd {
			return true
		}
		if !found || n.F < bestF {
			best, bestF, found = id, n.F, true
		}
		return true
	})

	return best, found
}

// ComputeNextMove picks the next position to explore from node id.
//
// Candidates are the open neighbors of the node's position that are neither
// an existing child nor the parent. The one closest to the end wins, with
// N, S, E, W order breaking ties. When fewer than two candidates remain the
// node is marked as a dead end, since it cannot branch again after this move.
//
// The count is taken after excluding the parent and children. Counting the
// raw open neighbors instead keeps a corridor node with one child alive
// while it has nothing left to offer, so FindBestValid would keep returning
// it and the search would never finish. With this rule each node yields at
// most one move per open wall, bounding a solve by 2*w*h expansions.
func (t *Tree) ComputeNextMove(id NodeID, m *maze.Maze) (maze.Position, bool) {
	n, err := t.Node(id)
	if err != nil {
		return maze.Position{}, false
	}

	excluded := make(map[maze.Position]struct{}, len(n.children)+1)
	for _, c := range n.children {
		excluded[t.nodes[c].Position] = struct{}{}
	}
	if n.parent != NoParent {
		excluded[t.nodes[n.parent].Position] = struct{}{}
	}

	var candidates []maze.Position
	for _, next := range m.OpenNeighbors(n.Position) {
		if _, skip := excluded[next]; !skip {
			candidates = append(candidates, next)
		}
	}

	if len(candidates) < 2 {
		n.markDeadEnd()
	}
	if len(candidates) == 0 {
		return maze.Position{}, false
	}

	best := candidates[0]
	bestDist, _ := m.DistanceToEnd(best)
	for _, c := range candidates[1:] {
		if d, _ := m.DistanceToEnd(c); d < bestDist {
			best, bestDist = c, d
		}
	}
	return best, true
}

// Retrace returns the positions from the root down to id.
func (t *Tree) Retrace(id NodeID) []maze.Position {
	var path []maze.Position
	for cur := id; cur != NoParent; {
		n, err := t.Node(cur)
		if err != nil {
			return nil
		}
		path = append(path, n.Position)
		cur = n.parent
	}

	// reverse path
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}
