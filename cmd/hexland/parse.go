package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mitchelldurbincs/hexland/internal/coord"
)

// parseCoord accepts "(x,y)" and "x,y", with optional spaces.
func parseCoord(s string) (coord.Coord, error) {
	t := strings.TrimSpace(s)
	t = strings.TrimPrefix(t, "(")
	t = strings.TrimSuffix(t, ")")

	xs, ys, ok := strings.Cut(t, ",")
	if !ok {
		return coord.Coord{}, fmt.Errorf("coordinate %q: want (x,y)", s)
	}
	x, err := strconv.ParseInt(strings.TrimSpace(xs), 10, 32)
	if err != nil {
		return coord.Coord{}, fmt.Errorf("coordinate %q: x: %w", s, err)
	}
	y, err := strconv.ParseInt(strings.TrimSpace(ys), 10, 32)
	if err != nil {
		return coord.Coord{}, fmt.Errorf("coordinate %q: y: %w", s, err)
	}
	return coord.New(int32(x), int32(y)), nil
}

func parseCoords(args []string) ([]coord.Coord, error) {
	cs := make([]coord.Coord, 0, len(args))
	for _, a := range args {
		c, err := parseCoord(a)
		if err != nil {
			return nil, err
		}
		cs = append(cs, c)
	}
	return cs, nil
}

func parseIndex(s string) (uint64, error) {
	i, err := strconv.ParseUint(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("index %q: %w", s, err)
	}
	return i, nil
}
