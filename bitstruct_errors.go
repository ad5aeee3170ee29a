package bitstruct

import "errors"

// Sentinel errors, one per category from the error-handling taxonomy.
// Every error this package returns wraps one of these via fmt.Errorf's
// %w, so callers can test with errors.Is regardless of which internal
// package actually detected the problem.
var (
	// ErrFormat covers a bad kind character, missing width, or
	// zero-width field, detected while compiling a format string.
	ErrFormat = errors.New("bitstruct: format error")

	// ErrWidth covers a kind-specific width outside its legal range.
	ErrWidth = errors.New("bitstruct: width error")

	// ErrArity covers too few positional values, a missing dict key, or
	// too few names in a name list.
	ErrArity = errors.New("bitstruct: arity error")

	// ErrRange covers an integer value that does not fit in its field.
	ErrRange = errors.New("bitstruct: range error")

	// ErrType covers a value not convertible to its field kind.
	ErrType = errors.New("bitstruct: type error")

	// ErrBuffer covers data too short for unpack, a destination buffer
	// too small for PackInto, or a byteswap group running past the end
	// of the buffer.
	ErrBuffer = errors.New("bitstruct: buffer error")

	// ErrOffset covers a negative bit offset.
	ErrOffset = errors.New("bitstruct: offset error")
)
