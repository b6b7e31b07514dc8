package coord

import "iter"

// CoordSystem is what every grid topology can do.
type CoordSystem interface {
	// Distance between two coords, which is always >= 0 but may be less
	// than the sum of the distances between the coords in between them.
	Distance(a, b Coord) int64

	// Index gives each coord a unique index. Coords closer to the origin
	// get smaller indices and adjacent coords are often put together.
	Index(c Coord) uint64

	// Adjacent yields the coords adjacent to c, never c itself. The sequence
	// is finite and may be ranged over more than once.
	Adjacent(c Coord) iter.Seq[Coord]
}

// Neighbours collects the coords adjacent to c.
func Neighbours[S CoordSystem](sys S, c Coord) []Coord {
	var out []Coord
	for n := range sys.Adjacent(c) {
		out = append(out, n)
	}
	return out
}

// IsAdjacent reports whether b is one of the coords adjacent to a in sys.
func IsAdjacent[S CoordSystem](sys S, a, b Coord) bool {
	for n := range sys.Adjacent(a) {
		if n == b {
			return true
		}
	}
	return false
}

// adjacentByDigits yields base plus the spiral offset of each digit, in the
// order given.
func adjacentByDigits(base Coord, digits []uint64) iter.Seq[Coord] {
	return func(yield func(Coord) bool) {
		for _, d := range digits {
			o, ok := digitOffset(d)
			if !ok {
				panic("coord: adjacency digit out of range")
			}
			if !yield(base.Add(o)) {
				return
			}
		}
	}
}
