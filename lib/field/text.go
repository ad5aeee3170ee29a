package field

import (
	"fmt"

	"github.com/go-bitstruct/bitstruct/lib/bitstream"
)

// packText encodes v to UTF-8 and emits the first Width/8 bytes. A value
// shorter than the field is an error; a longer value is silently
// truncated to the field width in bytes.
func packText(w *bitstream.Writer, v any, f *Field) error {
	s, err := toString(v)
	if err != nil {
		return err
	}
	n := f.Width / 8
	data := []byte(s)
	if len(data) < n {
		return fmt.Errorf("%w: text has %d bytes, field needs %d", ErrShort, len(data), n)
	}
	return w.WriteBytes(data[:n])
}

// unpackText reads Width/8 bytes and interprets them as UTF-8 text.
func unpackText(r *bitstream.Reader, f *Field) (any, error) {
	data, err := r.ReadBytes(f.Width / 8)
	if err != nil {
		return nil, err
	}
	return string(data), nil
}
