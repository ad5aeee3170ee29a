package field

import (
	"fmt"

	"github.com/go-bitstruct/bitstruct/lib/bitstream"
)

// packUnsigned range-checks value against [0, 2^n-1] and emits its low n
// bits. For n == 64 the upper bound is the maximum representable value,
// so any uint64 passes.
func packUnsigned(w *bitstream.Writer, v any, f *Field) error {
	value, err := toUint64(v)
	if err != nil {
		return err
	}
	if value > f.maxUnsigned {
		return fmt.Errorf("%w: %d exceeds max %d for u%d", ErrRange, value, f.maxUnsigned, f.Width)
	}
	return w.WriteU64Bits(value, f.Width)
}

// unpackUnsigned reads n bits and returns them as an unsigned value.
func unpackUnsigned(r *bitstream.Reader, f *Field) (any, error) {
	value, err := r.ReadU64Bits(f.Width)
	if err != nil {
		return nil, err
	}
	return value, nil
}
