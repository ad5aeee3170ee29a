// Package codec drives a compiled format.Descriptor across a
// bitstream.Writer or bitstream.Reader, one field at a time, pulling
// values from a Source or pushing them to a Sink. It is the layer that
// turns a flat field list plus a value conduit into the eight public
// pack/unpack operations.
package codec

import (
	"github.com/go-bitstruct/bitstruct/lib/bitstream"
	"github.com/go-bitstruct/bitstruct/lib/format"
)

// Pack allocates a fresh buffer sized to the descriptor and packs source
// into it starting at bit 0.
func Pack(d *format.Descriptor, source Source) ([]byte, error) {
	buf := make([]byte, (d.TotalBits+7)/8)
	w := bitstream.NewWriter(buf)
	if err := drivePack(d, w, source); err != nil {
		return nil, err
	}
	return buf, nil
}

// PackInto packs source into buf starting at bitOffset, preserving every
// bit of buf outside [bitOffset, bitOffset+d.TotalBits).
func PackInto(d *format.Descriptor, buf []byte, bitOffset int, source Source) error {
	if bitOffset < 0 {
		return ErrOffset
	}
	if len(buf)*8 < bitOffset+d.TotalBits {
		return ErrBuffer
	}
	w := bitstream.NewWriter(buf)
	if err := w.Seek(bitOffset); err != nil {
		return err
	}
	bounds, err := w.Save(bitOffset, d.TotalBits)
	if err != nil {
		return err
	}
	defer bounds.Restore()
	return drivePack(d, w, source)
}

func drivePack(d *format.Descriptor, w *bitstream.Writer, source Source) error {
	for i := range d.Fields {
		f := &d.Fields[i]
		if f.Kind.IsPadding() {
			if err := f.Pack(w, nil); err != nil {
				return err
			}
			continue
		}
		v, err := source.Next()
		if err != nil {
			return err
		}
		if err := f.Pack(w, v); err != nil {
			return err
		}
	}
	return nil
}

// Unpack reads descriptor's fields out of data starting at bitOffset,
// pushing each non-padding value into sink. When allowTruncated is false,
// running out of bits mid-field is an error; when true, unpacking stops
// and returns the values produced so far. The same per-field remaining-
// bits check drives both branches and both calling conventions
// (positional and dict), so truncation behaves identically either way.
func Unpack(d *format.Descriptor, data []byte, bitOffset int, allowTruncated bool, sink Sink) error {
	if bitOffset < 0 {
		return ErrOffset
	}
	r := bitstream.NewReader(data)
	if err := r.Seek(bitOffset); err != nil {
		return err
	}

	avail := 8 * len(data)
	for i := range d.Fields {
		f := &d.Fields[i]
		if r.Tell()+f.Width > avail {
			if allowTruncated {
				return nil
			}
			return ErrBuffer
		}
		v, err := f.Unpack(r)
		if err != nil {
			return err
		}
		if !f.Kind.IsPadding() {
			if err := sink.Emit(v); err != nil {
				return err
			}
		}
	}
	return nil
}
