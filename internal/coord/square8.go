package coord

import (
	"iter"

	"github.com/mitchelldurbincs/hexland/internal/common"
)

// Square8 is a square grid where each tile is adjacent to all the others
// that share an edge or a corner with it.
type Square8 struct{}

var square8Digits = []uint64{1, 2, 3, 4, 5, 6, 7, 8}

// Distance is the Manhattan distance, so a diagonal step counts as 2 even
// though Square8 adjacency treats it as a single move.
// TODO: switch to the D&D 3.5 alternating diagonal distance.
func (Square8) Distance(a, b Coord) int64 {
	return common.Abs(int64(a.X)-int64(b.X)) + common.Abs(int64(a.Y)-int64(b.Y))
}

// Index is the spiral-order index.
func (Square8) Index(c Coord) uint64 {
	return SpiralIndex(c)
}

// Adjacent yields the 8 surrounding tiles clockwise from north.
func (Square8) Adjacent(c Coord) iter.Seq[Coord] {
	return adjacentByDigits(c, square8Digits)
}
