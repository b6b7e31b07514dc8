package testutil

import (
	"math/rand"

	"github.com/mitchelldurbincs/hexland/internal/coord"
)

// SampleCoords covers the origin, every quadrant and both axes, plus
// values near the round-trip limit of the spiral index.
var SampleCoords = []coord.Coord{
	{X: 0, Y: 0},
	{X: 0, Y: -1},
	{X: 1, Y: 1},
	{X: -1, Y: -1},
	{X: 3, Y: 4},
	{X: -7, Y: 2},
	{X: 5, Y: -7},
	{X: 100, Y: -100},
	{X: -12345, Y: 67890},
	{X: coord.MaxSpiralComponent, Y: coord.MaxSpiralComponent},
	{X: -coord.MaxSpiralComponent, Y: -coord.MaxSpiralComponent},
	{X: coord.MaxSpiralComponent, Y: -coord.MaxSpiralComponent},
}

// RandomCoord returns a coordinate with both components in [-bound, bound].
func RandomCoord(rng *rand.Rand, bound int32) coord.Coord {
	span := int64(bound)*2 + 1
	return coord.New(
		int32(rng.Int63n(span)-int64(bound)),
		int32(rng.Int63n(span)-int64(bound)),
	)
}

// RandomCoords returns n coordinates from RandomCoord.
func RandomCoords(rng *rand.Rand, n int, bound int32) []coord.Coord {
	out := make([]coord.Coord, n)
	for i := range out {
		out[i] = RandomCoord(rng, bound)
	}
	return out
}
