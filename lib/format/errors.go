package format

import "errors"

// Sentinel errors raised while compiling a format string. The root
// bitstruct package wraps these with its public error categories.
var (
	// ErrSyntax covers a bad kind character, a missing width, or a
	// width that overflows the parser's implementation limit.
	ErrSyntax = errors.New("format: syntax error")
)
