package field

import "github.com/go-bitstruct/bitstruct/lib/bitstream"

// packBool emits the truthiness of v as a 1- to 64-bit unsigned value.
func packBool(w *bitstream.Writer, v any, f *Field) error {
	b, err := toBool(v)
	if err != nil {
		return err
	}
	var value uint64
	if b {
		value = 1
	}
	return w.WriteU64Bits(value, f.Width)
}

// unpackBool reads n bits and returns true if any bit is set.
func unpackBool(r *bitstream.Reader, f *Field) (any, error) {
	value, err := r.ReadU64Bits(f.Width)
	if err != nil {
		return nil, err
	}
	return value != 0, nil
}
