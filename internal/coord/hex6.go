package coord

import (
	"iter"

	"github.com/mitchelldurbincs/hexland/internal/common"
)

// Hex6 is a hexagonal grid in axial co-ordinates, with X as q and Y as r.
// Each tile has six neighbours.
type Hex6 struct{}

// The axial neighbours are the 3x3 block minus the (1,1) and (-1,-1)
// corners, kept in spiral digit order.
var hex6Digits = []uint64{1, 2, 3, 5, 6, 7}

// Distance is the number of hex steps between a and b.
func (Hex6) Distance(a, b Coord) int64 {
	dq := int64(a.X) - int64(b.X)
	dr := int64(a.Y) - int64(b.Y)
	return (common.Abs(dq) + common.Abs(dr) + common.Abs(dq+dr)) / 2
}

// Index is the spiral-order index.
func (Hex6) Index(c Coord) uint64 {
	return SpiralIndex(c)
}

// Adjacent yields the 6 neighbouring hexes.
func (Hex6) Adjacent(c Coord) iter.Seq[Coord] {
	return adjacentByDigits(c, hex6Digits)
}
