// Package bitstruct packs and unpacks fixed-layout binary structures
// described by a compact format string, in the spirit of Python's
// bitstruct: bit-precise signed/unsigned/float/bool fields, UTF-8 text,
// raw bytes, and padding, MSB-first within each byte and big-endian
// across bytes.
//
// Format strings are a sequence of kind-plus-width tokens, optionally
// separated by whitespace: "u8u8u16" is three unsigned fields of 8, 8,
// and 16 bits. See lib/format for the full grammar.
package bitstruct

import (
	"github.com/go-bitstruct/bitstruct/lib/codec"
	"github.com/go-bitstruct/bitstruct/lib/format"
)

// Pack compiles format and packs values, in order, into a freshly
// allocated buffer sized to exactly fit the format's total bit width.
func Pack(format string, values ...any) ([]byte, error) {
	d, err := compileDescriptor(format)
	if err != nil {
		return nil, err
	}
	out, err := codec.Pack(d, codec.NewSliceSource(values))
	return out, classify(err)
}

// Unpack compiles format and reads its fields out of data starting at
// bit 0. If allowTruncated is false, data shorter than the format's
// total bit width is a buffer error; if true, unpacking stops at the
// first field that doesn't fully fit and returns the values read so far.
func Unpack(format string, data []byte, allowTruncated bool) ([]any, error) {
	d, err := compileDescriptor(format)
	if err != nil {
		return nil, err
	}
	sink := codec.NewSliceSink()
	if err := codec.Unpack(d, data, 0, allowTruncated, sink); err != nil {
		return nil, classify(err)
	}
	return sink.Values(), nil
}

// PackInto compiles format and packs values into buf starting at
// bitOffset, preserving every bit of buf outside the written range.
func PackInto(format string, buf []byte, bitOffset int, values ...any) error {
	d, err := compileDescriptor(format)
	if err != nil {
		return err
	}
	return classify(codec.PackInto(d, buf, bitOffset, codec.NewSliceSource(values)))
}

// UnpackFrom compiles format and reads its fields out of data starting
// at bitOffset.
func UnpackFrom(format string, data []byte, bitOffset int, allowTruncated bool) ([]any, error) {
	d, err := compileDescriptor(format)
	if err != nil {
		return nil, err
	}
	sink := codec.NewSliceSink()
	if err := codec.Unpack(d, data, bitOffset, allowTruncated, sink); err != nil {
		return nil, classify(err)
	}
	return sink.Values(), nil
}

// PackDict compiles format and packs values, looked up by name in the
// order given by names, into a freshly allocated buffer.
func PackDict(format string, names []string, values map[string]any) ([]byte, error) {
	d, err := compileDescriptor(format)
	if err != nil {
		return nil, err
	}
	out, err := codec.Pack(d, codec.NewDictSource(names, values))
	return out, classify(err)
}

// UnpackDict compiles format and reads its fields out of data starting
// at bit 0, returning a map keyed by names in declared field order.
func UnpackDict(format string, names []string, data []byte, allowTruncated bool) (map[string]any, error) {
	d, err := compileDescriptor(format)
	if err != nil {
		return nil, err
	}
	sink := codec.NewDictSink(names)
	if err := codec.Unpack(d, data, 0, allowTruncated, sink); err != nil {
		return nil, classify(err)
	}
	return sink.Values(), nil
}

// PackIntoDict compiles format and packs values into buf starting at
// bitOffset, preserving every bit of buf outside the written range.
func PackIntoDict(format string, names []string, buf []byte, bitOffset int, values map[string]any) error {
	d, err := compileDescriptor(format)
	if err != nil {
		return err
	}
	return classify(codec.PackInto(d, buf, bitOffset, codec.NewDictSource(names, values)))
}

// UnpackFromDict compiles format and reads its fields out of data
// starting at bitOffset, returning a map keyed by names.
func UnpackFromDict(format string, names []string, data []byte, bitOffset int, allowTruncated bool) (map[string]any, error) {
	d, err := compileDescriptor(format)
	if err != nil {
		return nil, err
	}
	sink := codec.NewDictSink(names)
	if err := codec.Unpack(d, data, bitOffset, allowTruncated, sink); err != nil {
		return nil, classify(err)
	}
	return sink.Values(), nil
}

// SizeInBits compiles format and returns the sum of its field widths.
func SizeInBits(format string) (int, error) {
	d, err := compileDescriptor(format)
	if err != nil {
		return 0, err
	}
	return d.TotalBits, nil
}

// ByteSwap reverses data in place, in groups whose sizes are given by the
// digits of sizes (each one of 1, 2, 4, 8), and also returns data.
func ByteSwap(sizes string, data []byte) ([]byte, error) {
	out, err := byteSwap(sizes, data)
	return out, classify(err)
}

// Compile precompiles format (and, optionally, a name list for the dict
// calling convention) into a handle that can be packed and unpacked
// repeatedly without re-parsing the format string each time.
func Compile(format string, names []string) (*codec.CompiledFormat, error) {
	h, err := codec.Compile(format, names)
	return h, classify(err)
}

func compileDescriptor(f string) (*format.Descriptor, error) {
	d, err := format.Compile(f)
	if err != nil {
		return nil, classify(err)
	}
	return d, nil
}
