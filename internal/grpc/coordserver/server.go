package coordserver

import (
	"context"

	"github.com/rs/zerolog"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/wrapperspb"

	"github.com/mitchelldurbincs/hexland/internal/coord"
	"github.com/mitchelldurbincs/hexland/internal/coordwire"
)

// Server implements CoordService over a single co-ordinate system chosen
// at startup.
type Server struct {
	sys      coord.CoordSystem
	maxBatch int
}

var _ CoordServiceServer = (*Server)(nil)

// NewServer creates a server answering for sys. Adjacent calls with more
// than maxBatch coordinates are rejected.
func NewServer(sys coord.CoordSystem, maxBatch int) *Server {
	return &Server{sys: sys, maxBatch: maxBatch}
}

// Index returns the index of one coordinate
func (s *Server) Index(ctx context.Context, req *wrapperspb.BytesValue) (*wrapperspb.UInt64Value, error) {
	c, err := coordwire.UnmarshalCoord(req.GetValue())
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "invalid coordinate: %v", err)
	}

	idx := s.sys.Index(c)
	zerolog.Ctx(ctx).Debug().
		Stringer("coord", c).
		Uint64("index", idx).
		Msg("Indexed coordinate")

	return wrapperspb.UInt64(idx), nil
}

// CoordAt returns the coordinate with the given spiral-order index. It
// inverts coord.SpiralIndex directly, so it assumes the served topology
// indexes by spiral order, as every registered one does.
func (s *Server) CoordAt(ctx context.Context, req *wrapperspb.UInt64Value) (*wrapperspb.BytesValue, error) {
	if req.GetValue() >= coord.SpiralIndexLimit {
		return nil, status.Errorf(codes.OutOfRange, "index %d is beyond %d", req.GetValue(), coord.SpiralIndexLimit-1)
	}
	c := coord.SpiralCoord(req.GetValue())
	return wrapperspb.Bytes(coordwire.MarshalCoord(c)), nil
}

// Distance returns the distance between a pair of coordinates
func (s *Server) Distance(ctx context.Context, req *wrapperspb.BytesValue) (*wrapperspb.Int64Value, error) {
	cs, err := coordwire.UnmarshalCoords(req.GetValue())
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "invalid coordinates: %v", err)
	}
	if len(cs) != 2 {
		return nil, status.Errorf(codes.InvalidArgument, "distance needs exactly 2 coordinates, got %d", len(cs))
	}
	return wrapperspb.Int64(s.sys.Distance(cs[0], cs[1])), nil
}

// Adjacent returns the neighbours of every requested coordinate
func (s *Server) Adjacent(ctx context.Context, req *wrapperspb.BytesValue) (*wrapperspb.BytesValue, error) {
	cs, err := coordwire.UnmarshalCoords(req.GetValue())
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "invalid coordinates: %v", err)
	}
	if len(cs) > s.maxBatch {
		return nil, status.Errorf(codes.InvalidArgument, "at most %d coordinates per call, got %d", s.maxBatch, len(cs))
	}

	var out []coord.Coord
	for _, c := range cs {
		out = append(out, coord.Neighbours(s.sys, c)...)
	}

	zerolog.Ctx(ctx).Debug().
		Int("requested", len(cs)).
		Int("neighbours", len(out)).
		Msg("Listed adjacent coordinates")

	return wrapperspb.Bytes(coordwire.MarshalCoords(out)), nil
}
