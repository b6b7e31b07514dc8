package coordserver

import (
	"context"
	"fmt"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/wrapperspb"

	"github.com/mitchelldurbincs/hexland/internal/coord"
	"github.com/mitchelldurbincs/hexland/internal/coordwire"
)

// Client calls CoordService and speaks in coordinates rather than
// wire messages.
type Client struct {
	cc grpc.ClientConnInterface
}

// NewClient wraps an established connection.
func NewClient(cc grpc.ClientConnInterface) *Client {
	return &Client{cc: cc}
}

func (c *Client) Index(ctx context.Context, at coord.Coord) (uint64, error) {
	out := new(wrapperspb.UInt64Value)
	if err := c.cc.Invoke(ctx, IndexMethod, wrapperspb.Bytes(coordwire.MarshalCoord(at)), out); err != nil {
		return 0, err
	}
	return out.GetValue(), nil
}

func (c *Client) CoordAt(ctx context.Context, index uint64) (coord.Coord, error) {
	out := new(wrapperspb.BytesValue)
	if err := c.cc.Invoke(ctx, CoordAtMethod, wrapperspb.UInt64(index), out); err != nil {
		return coord.Coord{}, err
	}
	return coordwire.UnmarshalCoord(out.GetValue())
}

func (c *Client) Distance(ctx context.Context, a, b coord.Coord) (int64, error) {
	out := new(wrapperspb.Int64Value)
	in := wrapperspb.Bytes(coordwire.MarshalCoords([]coord.Coord{a, b}))
	if err := c.cc.Invoke(ctx, DistanceMethod, in, out); err != nil {
		return 0, err
	}
	return out.GetValue(), nil
}

// Adjacent returns the neighbours of each coordinate, concatenated in
// input order.
func (c *Client) Adjacent(ctx context.Context, cs ...coord.Coord) ([]coord.Coord, error) {
	out := new(wrapperspb.BytesValue)
	if err := c.cc.Invoke(ctx, AdjacentMethod, wrapperspb.Bytes(coordwire.MarshalCoords(cs)), out); err != nil {
		return nil, err
	}
	ns, err := coordwire.UnmarshalCoords(out.GetValue())
	if err != nil {
		return nil, fmt.Errorf("decoding adjacent response: %w", err)
	}
	return ns, nil
}
