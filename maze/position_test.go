package maze

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDirectionTo(t *testing.T) {
	src := Position{X: 2, Y: 2}
	cases := map[Direction]Position{
		North: {X: 2, Y: 1},
		South: {X: 2, Y: 3},
		East:  {X: 3, Y: 2},
		West:  {X: 1, Y: 2},
	}
	for want, dst := range cases {
		got, ok := DirectionTo(src, dst)
		assert.True(t, ok)
		assert.Equal(t, want, got)
		assert.Equal(t, dst, src.Step(want))

		back, _ := DirectionTo(dst, src)
		assert.Equal(t, want.Opposite(), back)
	}

	_, ok := DirectionTo(src, src)
	assert.False(t, ok)
}

func TestDirectionSet(t *testing.T) {
	var s DirectionSet
	assert.Zero(t, s.Len())
	assert.Empty(t, s.Directions())

	s = s.Add(West).Add(North).Add(West)
	assert.Equal(t, 2, s.Len())
	assert.True(t, s.Has(North))
	assert.False(t, s.Has(East))
	assert.Equal(t, []Direction{North, West}, s.Directions())
}

func TestManhattan(t *testing.T) {
	assert.Equal(t, 7, Position{X: 1, Y: 5}.Manhattan(Position{X: 4, Y: 1}))
	assert.Zero(t, Position{X: 3, Y: 3}.Manhattan(Position{X: 3, Y: 3}))
}
