package solver

import (
	"testing"

	"github.com/beka-birhanu/vinom-maze/maze"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type passage [2]maze.Position

// buildMaze creates a width x height maze with only the given passages open.
func buildMaze(t *testing.T, width, height int, start, end maze.Position, passages ...passage) *maze.Maze {
	t.Helper()

	grid := make([][]maze.Cell, height)
	for y := range grid {
		grid[y] = make([]maze.Cell, width)
	}
	for _, p := range passages {
		d, ok := maze.DirectionTo(p[0], p[1])
		require.True(t, ok)
		grid[p[0].Y][p[0].X].Access = grid[p[0].Y][p[0].X].Access.Add(d)
		grid[p[1].Y][p[1].X].Access = grid[p[1].Y][p[1].X].Access.Add(d.Opposite())
	}
	grid[start.Y][start.X].Start = true
	grid[end.Y][end.X].End = true

	m, err := maze.FromGrid(grid)
	require.NoError(t, err)
	return m
}

func pos(x, y int) maze.Position {
	return maze.Position{X: x, Y: y}
}

// corridor is a single row with start at the west end and end at the east end.
func corridor(t *testing.T, width int) *maze.Maze {
	var passages []passage
	for x := 0; x+1 < width; x++ {
		passages = append(passages, passage{pos(x, 0), pos(x+1, 0)})
	}
	return buildMaze(t, width, 1, pos(0, 0), pos(width-1, 0), passages...)
}

// plus is a 3x3 maze whose center opens to its four arms; the end is the east arm.
func plus(t *testing.T) *maze.Maze {
	center := pos(1, 1)
	return buildMaze(t, 3, 3, center, pos(2, 1),
		passage{center, pos(1, 0)},
		passage{center, pos(1, 2)},
		passage{center, pos(2, 1)},
		passage{center, pos(0, 1)},
	)
}

func TestNewNode(t *testing.T) {
	m := corridor(t, 5)
	n := NewNode(pos(1, 0), m)

	assert.Equal(t, pos(1, 0), n.Position)
	assert.Equal(t, 0, n.G)
	assert.Equal(t, 3, n.H)
	assert.Equal(t, 3, n.F)
	assert.False(t, n.DeadEnd)
	assert.Equal(t, NoParent, n.Parent())
	assert.Empty(t, n.Children())

	outside := NewNode(pos(-1, 0), m)
	assert.Equal(t, 0, outside.H)
	assert.Equal(t, 0, outside.F)
}

func TestTree_Insert(t *testing.T) {
	m := corridor(t, 5)
	tree := NewTree()

	_, ok := tree.Root()
	assert.False(t, ok)

	root, err := tree.SetRoot(NewNode(pos(0, 0), m))
	require.NoError(t, err)

	_, err = tree.SetRoot(NewNode(pos(1, 0), m))
	assert.ErrorIs(t, err, ErrRootExists)

	child, err := tree.Insert(root, NewNode(pos(1, 0), m))
	require.NoError(t, err)
	grandchild, err := tree.Insert(child, NewNode(pos(2, 0), m))
	require.NoError(t, err)

	for _, id := range []NodeID{child, grandchild} {
		n, err := tree.Node(id)
		require.NoError(t, err)
		parent, err := tree.Node(n.Parent())
		require.NoError(t, err)

		assert.Equal(t, parent.G+1, n.G)
		assert.Equal(t, n.G+n.H, n.F)
		assert.Contains(t, parent.Children(), id)
	}

	assert.Equal(t, 3, tree.Len())
	assert.Equal(t, []maze.Position{pos(0, 0), pos(1, 0), pos(2, 0)}, tree.Retrace(grandchild))

	_, err = tree.Insert(NodeID(42), NewNode(pos(3, 0), m))
	assert.ErrorIs(t, err, ErrUnknownNode)
	_, err = tree.Node(NoParent)
	assert.ErrorIs(t, err, ErrUnknownNode)
}

func TestTree_FindBestValid(t *testing.T) {
	m := corridor(t, 5)

	t.Run("empty tree", func(t *testing.T) {
		_, ok := NewTree().FindBestValid()
		assert.False(t, ok)
	})

	t.Run("lowest f wins, ties go to pre-order", func(t *testing.T) {
		tree := NewTree()
		root, _ := tree.SetRoot(NewNode(pos(0, 0), m))  // F = 4
		a, _ := tree.Insert(root, NewNode(pos(3, 0), m)) // F = 1 + 1
		a1, _ := tree.Insert(a, NewNode(pos(4, 0), m))  // F = 2 + 0
		b, _ := tree.Insert(root, NewNode(pos(3, 0), m)) // F = 1 + 1
		_, _ = tree.Insert(root, NewNode(pos(1, 0), m)) // F = 1 + 3

		best, ok := tree.FindBestValid()
		require.True(t, ok)
		assert.Equal(t, a, best)

		// descendants of a dead end are still candidates
		na, _ := tree.Node(a)
		na.markDeadEnd()
		best, _ = tree.FindBestValid()
		assert.Equal(t, a1, best)

		na1, _ := tree.Node(a1)
		na1.markDeadEnd()
		best, _ = tree.FindBestValid()
		assert.Equal(t, b, best)
	})

	t.Run("all dead ends", func(t *testing.T) {
		tree := NewTree()
		root, _ := tree.SetRoot(NewNode(pos(0, 0), m))
		n, _ := tree.Node(root)
		n.markDeadEnd()

		_, ok := tree.FindBestValid()
		assert.False(t, ok)
	})
}

func TestTree_ComputeNextMove(t *testing.T) {
	t.Run("only open neighbor is the parent", func(t *testing.T) {
		m := corridor(t, 3)
		tree := NewTree()
		root, _ := tree.SetRoot(NewNode(pos(1, 0), m))
		leaf, _ := tree.Insert(root, NewNode(pos(0, 0), m))

		_, ok := tree.ComputeNextMove(leaf, m)
		assert.False(t, ok)

		n, _ := tree.Node(leaf)
		assert.True(t, n.DeadEnd)
	})

	t.Run("closest candidate first, dead end on the last one", func(t *testing.T) {
		m := plus(t)
		tree := NewTree()
		root, _ := tree.SetRoot(NewNode(pos(1, 1), m))
		n, _ := tree.Node(root)

		// east arm is the end; the other arms tie and follow N, S, W order
		want := []maze.Position{pos(2, 1), pos(1, 0), pos(1, 2), pos(0, 1)}
		for i, p := range want {
			next, ok := tree.ComputeNextMove(root, m)
			require.True(t, ok)
			assert.Equal(t, p, next)
			assert.Equal(t, i == len(want)-1, n.DeadEnd, "dead end after move %d", i)

			_, err := tree.Insert(root, NewNode(next, m))
			require.NoError(t, err)
		}

		_, ok := tree.ComputeNextMove(root, m)
		assert.False(t, ok)
		assert.True(t, n.DeadEnd)
	})

	t.Run("corridor node is a dead end once its single move is handed out", func(t *testing.T) {
		m := corridor(t, 4)
		tree := NewTree()
		root, _ := tree.SetRoot(NewNode(pos(0, 0), m))
		mid, _ := tree.Insert(root, NewNode(pos(1, 0), m))

		next, ok := tree.ComputeNextMove(mid, m)
		require.True(t, ok)
		assert.Equal(t, pos(2, 0), next)

		n, _ := tree.Node(mid)
		assert.True(t, n.DeadEnd)
	})

	t.Run("unknown node", func(t *testing.T) {
		m := corridor(t, 2)
		_, ok := NewTree().ComputeNextMove(0, m)
		assert.False(t, ok)
	})
}

func TestTree_Walk(t *testing.T) {
	m := corridor(t, 5)
	tree := NewTree()
	root, _ := tree.SetRoot(NewNode(pos(0, 0), m))
	a, _ := tree.Insert(root, NewNode(pos(1, 0), m))
	b, _ := tree.Insert(root, NewNode(pos(2, 0), m))
	a1, _ := tree.Insert(a, NewNode(pos(3, 0), m))

	var order []NodeID
	tree.Walk(func(id NodeID, _ *Node) bool {
		order = append(order, id)
		return true
	})
	assert.Equal(t, []NodeID{root, a, a1, b}, order)

	order = order[:0]
	tree.Walk(func(id NodeID, _ *Node) bool {
		order = append(order, id)
		return len(order) < 2
	})
	assert.Equal(t, []NodeID{root, a}, order)
}
