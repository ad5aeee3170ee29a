package field

import "github.com/go-bitstruct/bitstruct/lib/bitstream"

// packPad emits Width copies of the padding bit (0 for 'p', 1 for 'P'),
// ignoring any input value. Padding bits are opaque: unpack never
// produces a value for them regardless of what was written here.
func packPad(w *bitstream.Writer, f *Field, bit int) error {
	return w.WriteRepeatedBit(bit, f.Width)
}
