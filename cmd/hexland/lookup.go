package main

import (
	"context"
	"fmt"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/mitchelldurbincs/hexland/internal/coord"
	"github.com/mitchelldurbincs/hexland/internal/grpc/coordserver"
)

// lookup answers coordinate questions either in-process or through a
// running server.
type lookup interface {
	Index(ctx context.Context, c coord.Coord) (uint64, error)
	CoordAt(ctx context.Context, index uint64) (coord.Coord, error)
	Distance(ctx context.Context, a, b coord.Coord) (int64, error)
	Adjacent(ctx context.Context, cs ...coord.Coord) ([]coord.Coord, error)
}

type localLookup struct {
	sys coord.CoordSystem
}

func (l localLookup) Index(_ context.Context, c coord.Coord) (uint64, error) {
	return l.sys.Index(c), nil
}

// CoordAt inverts the spiral index, which every registered topology uses.
func (l localLookup) CoordAt(_ context.Context, index uint64) (coord.Coord, error) {
	if index >= coord.SpiralIndexLimit {
		return coord.Coord{}, fmt.Errorf("index %d is beyond %d", index, coord.SpiralIndexLimit-1)
	}
	return coord.SpiralCoord(index), nil
}

func (l localLookup) Distance(_ context.Context, a, b coord.Coord) (int64, error) {
	return l.sys.Distance(a, b), nil
}

func (l localLookup) Adjacent(_ context.Context, cs ...coord.Coord) ([]coord.Coord, error) {
	var out []coord.Coord
	for _, c := range cs {
		out = append(out, coord.Neighbours(l.sys, c)...)
	}
	return out, nil
}

// open returns the lookup selected by the global flags and a function to
// release it.
func (o *rootOptions) open() (lookup, func(), error) {
	if o.addr == "" {
		sys, err := o.system()
		if err != nil {
			return nil, nil, err
		}
		return localLookup{sys: sys}, func() {}, nil
	}

	// The server answers with its own topology
	if o.topology != "" {
		return nil, nil, fmt.Errorf("--topology cannot be combined with --addr")
	}

	conn, err := grpc.NewClient(o.addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, nil, fmt.Errorf("connecting to %s: %w", o.addr, err)
	}
	return coordserver.NewClient(conn), func() { conn.Close() }, nil
}
