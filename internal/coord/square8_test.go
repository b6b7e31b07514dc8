package coord_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mitchelldurbincs/hexland/internal/coord"
)

func TestSquare8_Distance(t *testing.T) {
	tests := []struct {
		name     string
		from     coord.Coord
		to       coord.Coord
		expected int64
	}{
		{"Same", coord.New(5, 5), coord.New(5, 5), 0},
		{"Adjacent_Horizontal", coord.New(5, 5), coord.New(6, 5), 1},
		{"Adjacent_Vertical", coord.New(5, 5), coord.New(5, 6), 1},
		{"Far", coord.New(0, 0), coord.New(3, 4), 7},
		{"Negative", coord.New(-2, -3), coord.New(2, 3), 10},
		{"Extremes", coord.New(-2147483648, 0), coord.New(2147483647, 0), 4294967295},
	}

	var sq coord.Square8
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, sq.Distance(tt.from, tt.to))
			// Distance should be symmetric
			assert.Equal(t, tt.expected, sq.Distance(tt.to, tt.from), "Distance not symmetric")
		})
	}
}

// Square8 distance is still Manhattan, so a diagonal neighbour is 2 away
// even though it is adjacent. This pins the current behaviour.
func TestSquare8_DistanceDisagreesWithAdjacencyOnDiagonals(t *testing.T) {
	var sq coord.Square8
	origin := coord.Zero()

	for n := range sq.Adjacent(origin) {
		diagonal := n.X != 0 && n.Y != 0
		if diagonal {
			assert.Equal(t, int64(2), sq.Distance(origin, n), "neighbour %s", n)
		} else {
			assert.Equal(t, int64(1), sq.Distance(origin, n), "neighbour %s", n)
		}
	}
}

func TestSquare8_Index(t *testing.T) {
	var sq coord.Square8
	assert.Equal(t, uint64(0), sq.Index(coord.New(0, 0)))
	assert.Equal(t, uint64(1), sq.Index(coord.New(0, -1)))
	assert.Equal(t, coord.SpiralIndex(coord.New(100, -100)), sq.Index(coord.New(100, -100)))
}

func TestSquare8_Adjacent(t *testing.T) {
	var sq coord.Square8

	expected := []coord.Coord{
		{X: 0, Y: -1},
		{X: 1, Y: -1},
		{X: 1, Y: 0},
		{X: 1, Y: 1},
		{X: 0, Y: 1},
		{X: -1, Y: 1},
		{X: -1, Y: 0},
		{X: -1, Y: -1},
	}
	assert.Equal(t, expected, coord.Neighbours(sq, coord.Zero()))

	// Offsets are the same around any base
	base := coord.New(10, -20)
	got := coord.Neighbours(sq, base)
	for i, off := range expected {
		assert.Equal(t, base.Add(off), got[i])
	}
}

func TestSquare8_AdjacentMatchesIndexOrder(t *testing.T) {
	var sq coord.Square8
	i := uint64(1)
	for n := range sq.Adjacent(coord.Zero()) {
		assert.Equal(t, i, sq.Index(n))
		i++
	}
	assert.Equal(t, uint64(9), i)
}

func TestSquare8_AdjacentIsRestartable(t *testing.T) {
	var sq coord.Square8
	seq := sq.Adjacent(coord.New(3, 3))

	first := collect(seq)
	second := collect(seq)
	assert.Equal(t, first, second)
	assert.Len(t, first, 8)
}

func TestSquare8_AdjacentStopsEarly(t *testing.T) {
	var sq coord.Square8
	count := 0
	for n := range sq.Adjacent(coord.Zero()) {
		assert.NotEqual(t, coord.Zero(), n)
		count++
		if count == 3 {
			break
		}
	}
	assert.Equal(t, 3, count)
}

func BenchmarkSquare8_Neighbours(b *testing.B) {
	var sq coord.Square8
	c := coord.New(50, 50)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = coord.Neighbours(sq, c)
	}
}
