package bitstruct

import (
	"errors"
	"fmt"

	"github.com/go-bitstruct/bitstruct/lib/bitstream"
	"github.com/go-bitstruct/bitstruct/lib/byteswap"
	"github.com/go-bitstruct/bitstruct/lib/codec"
	"github.com/go-bitstruct/bitstruct/lib/field"
	"github.com/go-bitstruct/bitstruct/lib/format"
)

// classify wraps an internal error from lib/bitstream, lib/field,
// lib/format, lib/codec, or lib/byteswap with the matching public sentinel, so callers
// only ever need to check against the seven errors in
// bitstruct_errors.go regardless of which layer detected the problem.
func classify(err error) error {
	if err == nil {
		return nil
	}
	switch {
	case errors.Is(err, format.ErrSyntax),
		errors.Is(err, field.ErrUnknownKind),
		errors.Is(err, field.ErrZeroWidth):
		return fmt.Errorf("%w: %v", ErrFormat, err)
	case errors.Is(err, field.ErrBadWidth):
		return fmt.Errorf("%w: %v", ErrWidth, err)
	case errors.Is(err, codec.ErrArity):
		return fmt.Errorf("%w: %v", ErrArity, err)
	case errors.Is(err, field.ErrRange):
		return fmt.Errorf("%w: %v", ErrRange, err)
	case errors.Is(err, field.ErrType), errors.Is(err, field.ErrShort):
		return fmt.Errorf("%w: %v", ErrType, err)
	case errors.Is(err, codec.ErrBuffer), errors.Is(err, bitstream.ErrShortBuffer), errors.Is(err, byteswap.ErrBuffer):
		return fmt.Errorf("%w: %v", ErrBuffer, err)
	case errors.Is(err, codec.ErrOffset), errors.Is(err, bitstream.ErrNegativeOffset):
		return fmt.Errorf("%w: %v", ErrOffset, err)
	case errors.Is(err, bitstream.ErrBitCount):
		return fmt.Errorf("%w: %v", ErrWidth, err)
	default:
		return err
	}
}
