package coordwire

import "errors"

var (
	ErrMalformed  = errors.New("malformed coordinate encoding")
	ErrOutOfRange = errors.New("coordinate component out of int32 range")
)
