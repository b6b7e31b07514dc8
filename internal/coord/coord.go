// Package coord describes tile co-ordinates, the co-ordinate systems that
// give them meaning, and the spiral-order index shared between them.
package coord

import "fmt"

// Coord is a tile co-ordinate.
//
// Arithmetic wraps on int32 overflow, exactly like Go's native int32
// operations, on every code path.
type Coord struct {
	X, Y int32
}

// New creates a new coordinate.
func New(x, y int32) Coord {
	return Coord{X: x, Y: y}
}

// Zero returns the origin.
func Zero() Coord {
	return Coord{}
}

// Add returns the componentwise sum of c and other
func (c Coord) Add(other Coord) Coord {
	return Coord{X: c.X + other.X, Y: c.Y + other.Y}
}

// AddAssign accumulates other into c in place.
func (c *Coord) AddAssign(other Coord) {
	c.X += other.X
	c.Y += other.Y
}

// Mul scales both components by k.
func (c Coord) Mul(k int32) Coord {
	return Coord{X: c.X * k, Y: c.Y * k}
}

func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}
