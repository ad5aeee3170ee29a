package field

import (
	"fmt"

	"github.com/go-bitstruct/bitstruct/lib/bitstream"
)

// packRaw emits the first Width/8 bytes of v. A shorter value is an
// error; a longer one is silently truncated to the field width in bytes.
func packRaw(w *bitstream.Writer, v any, f *Field) error {
	data, err := toBytes(v)
	if err != nil {
		return err
	}
	n := f.Width / 8
	if len(data) < n {
		return fmt.Errorf("%w: raw value has %d bytes, field needs %d", ErrShort, len(data), n)
	}
	return w.WriteBytes(data[:n])
}

// unpackRaw reads Width/8 bytes and returns them as-is.
func unpackRaw(r *bitstream.Reader, f *Field) (any, error) {
	return r.ReadBytes(f.Width / 8)
}
