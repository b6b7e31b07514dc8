package coord

import "errors"

var (
	ErrUnknownTopology = errors.New("unknown topology")
)
