package bitstream

import "errors"

// Sentinel errors returned by the bitstream cursors. Callers in lib/codec
// and the root bitstruct package wrap these with the public error
// categories (range, buffer, offset, ...) via fmt.Errorf("...: %w", ...).
var (
	// ErrBitCount is returned when a bit count passed to WriteU64Bits or
	// ReadU64Bits falls outside [0, 64], or when WriteRepeatedBit is given
	// a negative length.
	ErrBitCount = errors.New("bitstream: bit count must be between 0 and 64")

	// ErrShortBuffer is returned when the underlying buffer has no room
	// for the requested write or read at the current cursor position.
	ErrShortBuffer = errors.New("bitstream: buffer too small")

	// ErrNegativeOffset is returned by Seek when the resulting cursor
	// position would be negative.
	ErrNegativeOffset = errors.New("bitstream: negative bit offset")
)
