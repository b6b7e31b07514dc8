// Package coordwire encodes coordinates as protobuf wire-format messages:
//
//	message Coord { sint32 x = 1; sint32 y = 2; }
//	message CoordList { repeated Coord coords = 1; }
//
// Zero components are omitted, so the origin encodes to an empty message.
package coordwire

import (
	"fmt"
	"math"

	"google.golang.org/protobuf/encoding/protowire"

	"github.com/mitchelldurbincs/hexland/internal/coord"
)

const (
	fieldX      protowire.Number = 1
	fieldY      protowire.Number = 2
	fieldCoords protowire.Number = 1
)

// AppendCoord appends the encoding of c to b.
func AppendCoord(b []byte, c coord.Coord) []byte {
	if c.X != 0 {
		b = protowire.AppendTag(b, fieldX, protowire.VarintType)
		b = protowire.AppendVarint(b, protowire.EncodeZigZag(int64(c.X)))
	}
	if c.Y != 0 {
		b = protowire.AppendTag(b, fieldY, protowire.VarintType)
		b = protowire.AppendVarint(b, protowire.EncodeZigZag(int64(c.Y)))
	}
	return b
}

// MarshalCoord encodes a single coordinate.
func MarshalCoord(c coord.Coord) []byte {
	return AppendCoord(nil, c)
}

// UnmarshalCoord decodes a single coordinate. Unknown fields are skipped.
func UnmarshalCoord(b []byte) (coord.Coord, error) {
	var c coord.Coord
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return coord.Coord{}, fmt.Errorf("%w: %v", ErrMalformed, protowire.ParseError(n))
		}
		b = b[n:]

		if (num == fieldX || num == fieldY) && typ == protowire.VarintType {
			v, n := protowire.ConsumeVarint(b)
			if n < 0 {
				return coord.Coord{}, fmt.Errorf("%w: field %d: %v", ErrMalformed, num, protowire.ParseError(n))
			}
			b = b[n:]

			val := protowire.DecodeZigZag(v)
			if val < math.MinInt32 || val > math.MaxInt32 {
				return coord.Coord{}, fmt.Errorf("%w: field %d = %d", ErrOutOfRange, num, val)
			}
			if num == fieldX {
				c.X = int32(val)
			} else {
				c.Y = int32(val)
			}
			continue
		}

		n = protowire.ConsumeFieldValue(num, typ, b)
		if n < 0 {
			return coord.Coord{}, fmt.Errorf("%w: field %d: %v", ErrMalformed, num, protowire.ParseError(n))
		}
		b = b[n:]
	}
	return c, nil
}

// MarshalCoords encodes a list of coordinates, preserving order.
func MarshalCoords(cs []coord.Coord) []byte {
	var b []byte
	var scratch []byte
	for _, c := range cs {
		scratch = AppendCoord(scratch[:0], c)
		b = protowire.AppendTag(b, fieldCoords, protowire.BytesType)
		b = protowire.AppendBytes(b, scratch)
	}
	return b
}

// UnmarshalCoords decodes a list written by MarshalCoords.
func UnmarshalCoords(b []byte) ([]coord.Coord, error) {
	var out []coord.Coord
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return nil, fmt.Errorf("%w: %v", ErrMalformed, protowire.ParseError(n))
		}
		b = b[n:]

		if num == fieldCoords && typ == protowire.BytesType {
			raw, n := protowire.ConsumeBytes(b)
			if n < 0 {
				return nil, fmt.Errorf("%w: coord %d: %v", ErrMalformed, len(out), protowire.ParseError(n))
			}
			b = b[n:]

			c, err := UnmarshalCoord(raw)
			if err != nil {
				return nil, fmt.Errorf("coord %d: %w", len(out), err)
			}
			out = append(out, c)
			continue
		}

		n = protowire.ConsumeFieldValue(num, typ, b)
		if n < 0 {
			return nil, fmt.Errorf("%w: field %d: %v", ErrMalformed, num, protowire.ParseError(n))
		}
		b = b[n:]
	}
	return out, nil
}
