// hexland inspects and serves tile co-ordinates.
//
// Usage:
//
//	hexland index (X,Y)...          - Spiral-order index of coordinates
//	hexland coord INDEX...          - Coordinate with each index
//	hexland adjacent (X,Y)          - Neighbours of a coordinate
//	hexland distance (X,Y) (X,Y)    - Distance between two coordinates
//	hexland spiral N                - The first N coordinates in index order
//	hexland serve                   - Start the gRPC coordinate service
//
// Coordinates are written "(x,y)" or "x,y". Negative values need the
// parenthesised form so they are not mistaken for flags.
//
// Global flags:
//
//	--config <path>     - Config file (default: ./config.yaml if present)
//	--topology <name>   - square8 or hex6, overriding grid.topology
//	--addr <host:port>  - Query a running server instead of computing locally
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
