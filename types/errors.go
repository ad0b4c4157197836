package types

import "errors"

// ErrInvalidArgument is the single validation failure kind raised by value
// constructors across the library. Check with errors.Is.
var ErrInvalidArgument = errors.New("invalid argument")
