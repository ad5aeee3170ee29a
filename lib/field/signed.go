package field

import (
	"fmt"

	"github.com/go-bitstruct/bitstruct/lib/bitstream"
)

// packSigned range-checks value against [-2^(n-1), 2^(n-1)-1], masks it to
// n bits and emits it. For n == 64 the masking step is skipped — the value
// already fits in 64 bits by construction.
func packSigned(w *bitstream.Writer, v any, f *Field) error {
	value, err := toInt64(v)
	if err != nil {
		return err
	}
	if value < f.lowerBound || value > f.upperBound {
		return fmt.Errorf("%w: %d not in [%d, %d] for s%d", ErrRange, value, f.lowerBound, f.upperBound, f.Width)
	}
	bits := uint64(value)
	if f.Width < 64 {
		bits &= (uint64(1) << uint(f.Width)) - 1
	}
	return w.WriteU64Bits(bits, f.Width)
}

// unpackSigned reads n raw bits and sign-extends if the top bit is set:
// v |= ^((1<<n) - 1), interpreted as a 64-bit two's complement value.
func unpackSigned(r *bitstream.Reader, f *Field) (any, error) {
	value, err := r.ReadU64Bits(f.Width)
	if err != nil {
		return nil, err
	}
	if f.Width < 64 {
		signBit := uint64(1) << uint(f.Width-1)
		if value&signBit != 0 {
			value |= ^((signBit << 1) - 1)
		}
	}
	return int64(value), nil
}
