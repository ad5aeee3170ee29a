package codec

import "errors"

// Sentinel errors raised by the dispatcher. The root bitstruct package
// wraps these with its public error categories.
var (
	// ErrArity covers too few positional values, a missing dict key, or
	// too few names in a name list.
	ErrArity = errors.New("codec: arity error")

	// ErrBuffer covers a destination buffer too small for PackInto, or
	// source data too short for Unpack with allowTruncated == false.
	ErrBuffer = errors.New("codec: buffer error")

	// ErrOffset covers a negative bit offset.
	ErrOffset = errors.New("codec: negative bit offset")
)
