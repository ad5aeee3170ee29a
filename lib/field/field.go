// Package field implements the per-kind codecs that sit directly on top of
// lib/bitstream: signed/unsigned/float/bool integers, UTF-8 text, raw
// bytes, and zero/one padding. A Field is a tagged variant (Kind, Width)
// with cached numeric bounds; Pack/Unpack dispatch to the matching codec
// with a switch, which keeps the inner loop in lib/codec a jump table with
// no heap allocation per field.
package field

import (
	"fmt"
	"math"

	"github.com/go-bitstruct/bitstruct/lib/bitstream"
)

// Kind identifies which codec a Field uses.
type Kind uint8

const (
	Signed Kind = iota
	Unsigned
	Float
	Bool
	Text
	Raw
	PadZero
	PadOne
)

// IsPadding reports whether k produces no output value on unpack.
func (k Kind) IsPadding() bool {
	return k == PadZero || k == PadOne
}

func (k Kind) String() string {
	switch k {
	case Signed:
		return "signed"
	case Unsigned:
		return "unsigned"
	case Float:
		return "float"
	case Bool:
		return "bool"
	case Text:
		return "text"
	case Raw:
		return "raw"
	case PadZero:
		return "pad-zero"
	case PadOne:
		return "pad-one"
	default:
		return "unknown"
	}
}

// Field is one compiled (kind, width) record, plus cached range bounds
// used during packing of signed/unsigned integers.
type Field struct {
	Kind  Kind
	Width int

	// lowerBound/upperBound bound a Signed field's legal value range:
	// [lowerBound, upperBound]. Unused for other kinds.
	lowerBound int64
	upperBound int64

	// maxUnsigned bounds an Unsigned field's legal value range:
	// [0, maxUnsigned]. For Width == 64 this is math.MaxUint64.
	maxUnsigned uint64
}

// New validates (kindChar, width) against the per-kind constraints in the
// data model and returns a compiled Field with its numeric bounds
// pre-computed.
func New(kindChar byte, width int) (Field, error) {
	var f Field

	switch kindChar {
	case 's':
		f.Kind = Signed
	case 'u':
		f.Kind = Unsigned
	case 'f':
		f.Kind = Float
	case 'b':
		f.Kind = Bool
	case 't':
		f.Kind = Text
	case 'r':
		f.Kind = Raw
	case 'p':
		f.Kind = PadZero
	case 'P':
		f.Kind = PadOne
	default:
		return f, fmt.Errorf("%w: %q", ErrUnknownKind, string(kindChar))
	}

	if width <= 0 {
		return f, ErrZeroWidth
	}

	switch f.Kind {
	case Signed, Unsigned, Bool:
		if width > 64 {
			return f, fmt.Errorf("%w: %s%d (must be 1-64)", ErrBadWidth, string(kindChar), width)
		}
	case Float:
		if width != 16 && width != 32 && width != 64 {
			return f, fmt.Errorf("%w: f%d (must be 16, 32 or 64)", ErrBadWidth, width)
		}
	case Text, Raw:
		if width%8 != 0 {
			return f, fmt.Errorf("%w: %s%d (must be a multiple of 8)", ErrBadWidth, string(kindChar), width)
		}
	case PadZero, PadOne:
		// any positive width, already checked above.
	}

	f.Width = width

	switch f.Kind {
	case Signed:
		if width == 64 {
			f.lowerBound = math.MinInt64
			f.upperBound = math.MaxInt64
		} else {
			f.lowerBound = -(int64(1) << uint(width-1))
			f.upperBound = (int64(1) << uint(width-1)) - 1
		}
	case Unsigned:
		if width == 64 {
			f.maxUnsigned = math.MaxUint64
		} else {
			f.maxUnsigned = (uint64(1) << uint(width)) - 1
		}
	}

	return f, nil
}

// Pack writes v into w according to f's kind. Padding kinds ignore v.
func (f *Field) Pack(w *bitstream.Writer, v any) error {
	switch f.Kind {
	case Signed:
		return packSigned(w, v, f)
	case Unsigned:
		return packUnsigned(w, v, f)
	case Float:
		return packFloat(w, v, f)
	case Bool:
		return packBool(w, v, f)
	case Text:
		return packText(w, v, f)
	case Raw:
		return packRaw(w, v, f)
	case PadZero:
		return packPad(w, f, 0)
	case PadOne:
		return packPad(w, f, 1)
	default:
		return fmt.Errorf("field: unreachable kind %v", f.Kind)
	}
}

// Unpack reads one value from r according to f's kind. Padding kinds
// return (nil, nil) after skipping their bits.
func (f *Field) Unpack(r *bitstream.Reader) (any, error) {
	switch f.Kind {
	case Signed:
		return unpackSigned(r, f)
	case Unsigned:
		return unpackUnsigned(r, f)
	case Float:
		return unpackFloat(r, f)
	case Bool:
		return unpackBool(r, f)
	case Text:
		return unpackText(r, f)
	case Raw:
		return unpackRaw(r, f)
	case PadZero, PadOne:
		return nil, r.Seek(f.Width)
	default:
		return nil, fmt.Errorf("field: unreachable kind %v", f.Kind)
	}
}
