package field

import (
	"math"
	"math/bits"

	"github.com/go-bitstruct/bitstruct/lib/bitstream"
)

// packFloat dispatches on the field width: f16 goes through the IEEE-754
// half-precision codec below and WriteBytes; f32 bitcasts through WriteU32;
// f64 bitcasts through WriteU64Bits(·, 64).
func packFloat(w *bitstream.Writer, v any, f *Field) error {
	value, err := toFloat64(v)
	if err != nil {
		return err
	}
	switch f.Width {
	case 16:
		bits16 := encodeFloat16(value)
		return w.WriteBytes([]byte{byte(bits16 >> 8), byte(bits16)})
	case 32:
		return w.WriteU32(math.Float32bits(float32(value)))
	case 64:
		return w.WriteU64Bits(math.Float64bits(value), 64)
	default:
		return ErrBadWidth // unreachable: width validated at New
	}
}

func unpackFloat(r *bitstream.Reader, f *Field) (any, error) {
	switch f.Width {
	case 16:
		buf, err := r.ReadBytes(2)
		if err != nil {
			return nil, err
		}
		bits16 := uint16(buf[0])<<8 | uint16(buf[1])
		return decodeFloat16(bits16), nil
	case 32:
		bits32, err := r.ReadU32()
		if err != nil {
			return nil, err
		}
		return float64(math.Float32frombits(bits32)), nil
	case 64:
		bits64, err := r.ReadU64()
		if err != nil {
			return nil, err
		}
		return math.Float64frombits(bits64), nil
	default:
		return nil, ErrBadWidth // unreachable: width validated at New
	}
}

// encodeFloat16 converts a float64 to its nearest IEEE-754 binary16
// representation (sign 1 / exponent 5 / mantissa 10), round-to-nearest-even,
// going through float32 first since that's the precision the input is
// assumed to carry. No ecosystem library in the retrieved pack exposes an
// f16 codec, so this is hand-rolled against the bit layout directly.
func encodeFloat16(f float64) uint16 {
	bits32 := math.Float32bits(float32(f))
	sign := uint16((bits32 >> 16) & 0x8000)
	rawExp := int32((bits32 >> 23) & 0xff)
	mant := bits32 & 0x7fffff

	if rawExp == 0xff {
		if mant != 0 {
			return sign | 0x7e00 // NaN, payload collapsed to the quiet bit
		}
		return sign | 0x7c00 // Inf
	}

	exp := rawExp - 127

	switch {
	case exp > 15:
		return sign | 0x7c00 // overflow -> Inf
	case exp >= -14:
		e := uint16(exp+15) << 10
		half := uint16(mant >> 13)
		round := mant & 0x1fff
		if round > 0x1000 || (round == 0x1000 && half&1 == 1) {
			half++
			if half == 0x400 {
				half = 0
				e += 0x400
			}
		}
		if e >= 0x7c00 {
			return sign | 0x7c00
		}
		return sign | e | half
	case exp >= -25:
		shift := uint(-exp - 1)
		full := mant | 0x800000
		half := uint16(full >> shift)
		roundBit := uint32(1) << (shift - 1)
		if full&roundBit != 0 && (full&(roundBit-1) != 0 || half&1 == 1) {
			half++
		}
		return sign | half
	default:
		return sign // too small even for a subnormal half
	}
}

// decodeFloat16 converts a binary16 bit pattern to float64.
func decodeFloat16(bits16 uint16) float64 {
	sign := uint32(bits16&0x8000) << 16
	exp := (bits16 >> 10) & 0x1f
	mant := uint32(bits16 & 0x3ff)

	var bits32 uint32
	switch {
	case exp == 0:
		if mant == 0 {
			bits32 = sign
		} else {
			l := bits.Len32(mant)
			frac := (mant - (1 << uint(l-1))) << uint(24-l)
			bits32 = sign | uint32(l+102)<<23 | frac
		}
	case exp == 0x1f:
		if mant == 0 {
			bits32 = sign | 0x7f800000
		} else {
			bits32 = sign | 0x7f800000 | 0x400000 | (mant << 13)
		}
	default:
		bits32 = sign | uint32(int32(exp)-15+127)<<23 | (mant << 13)
	}

	return float64(math.Float32frombits(bits32))
}
