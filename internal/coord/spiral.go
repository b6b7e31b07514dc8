package coord

import (
	"fmt"

	"github.com/mitchelldurbincs/hexland/internal/common"
)

const (
	// SpiralIndexLimit is 9^20. Every index below it maps back to a
	// coordinate without wrapping.
	SpiralIndexLimit uint64 = 12157665459056928801

	// MaxSpiralComponent is the largest absolute component value for which
	// SpiralIndex and SpiralCoord round-trip. Beyond it the index wraps
	// modulo 2^64.
	MaxSpiralComponent int32 = 1743392200
)

// spiralOffsets walks clockwise from north. It is the only place the
// spiral shape is defined; adjacency enumeration uses the same order.
var spiralOffsets = [9]Coord{
	{X: 0, Y: 0},
	{X: 0, Y: -1},
	{X: 1, Y: -1},
	{X: 1, Y: 0},
	{X: 1, Y: 1},
	{X: 0, Y: 1},
	{X: -1, Y: 1},
	{X: -1, Y: 0},
	{X: -1, Y: -1},
}

// digitOffset turns a digit 0..8 into an offset between (-1,-1) and (1,1).
func digitOffset(d uint64) (Coord, bool) {
	if d >= uint64(len(spiralOffsets)) {
		return Coord{}, false
	}
	return spiralOffsets[d], true
}

// offsetDigit is the inverse of digitOffset.
func offsetDigit(c Coord) (uint64, bool) {
	if c.X < -1 || c.X > 1 || c.Y < -1 || c.Y > 1 {
		return 0, false
	}
	// (y+1)*3 + (x+1) addresses the 3x3 block row by row
	return uint64(offsetDigits[(c.Y+1)*3+c.X+1]), true
}

var offsetDigits = func() [9]uint8 {
	var t [9]uint8
	for d, o := range spiralOffsets {
		t[(o.Y+1)*3+o.X+1] = uint8(d)
	}
	return t
}()

// SpiralIndex gives c its spiral-order index. The origin is 0 and each
// base-9 digit of the index places the coordinate within one 3x3 block of
// the level below, so nearby coordinates tend to get nearby indices.
func SpiralIndex(c Coord) uint64 {
	x, y := int64(c.X), int64(c.Y)
	var index uint64
	weight := uint64(1)
	for x != 0 || y != 0 {
		here := Coord{
			X: int32(common.FloorMod(x+1, 3) - 1),
			Y: int32(common.FloorMod(y+1, 3) - 1),
		}
		d, ok := offsetDigit(here)
		if !ok {
			panic(fmt.Sprintf("coord: digit coordinate %s out of range", here))
		}

		x = common.FloorDiv(x+1, 3)
		y = common.FloorDiv(y+1, 3)
		index += d * weight
		weight *= 9
	}
	return index
}

// SpiralCoord generates the coordinate with the given spiral-order index.
func SpiralCoord(index uint64) Coord {
	var x, y int64
	weight := int64(1)
	for index != 0 {
		o, ok := digitOffset(index % 9)
		if !ok {
			panic(fmt.Sprintf("coord: spiral digit %d out of range", index%9))
		}

		x += int64(o.X) * weight
		y += int64(o.Y) * weight
		index /= 9
		weight *= 3
	}
	return Coord{X: int32(x), Y: int32(y)}
}
