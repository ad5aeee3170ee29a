// Package byteswap implements the group-wise byte reversal helper: for
// each digit in a sizes string, reverse that many consecutive bytes and
// advance. It operates purely at byte granularity; no bit cursor is
// involved, unlike every other package in this module.
package byteswap

import "fmt"

// Apply reverses data in place according to sizes, a string of digits
// each in {1, 2, 4, 8}, and also returns data for chaining. Digit 1 is a
// no-op group. Running off the end of data, or an unrecognized digit, is
// an error; Apply does not partially modify data past the point of error
// beyond the groups already swapped.
func Apply(sizes string, data []byte) ([]byte, error) {
	offset := 0
	for i := 0; i < len(sizes); i++ {
		d := sizes[i]
		var size int
		switch d {
		case '1':
			size = 1
		case '2':
			size = 2
		case '4':
			size = 4
		case '8':
			size = 8
		default:
			return nil, fmt.Errorf("%w: unrecognized group size %q", ErrBuffer, string(d))
		}
		if offset+size > len(data) {
			return nil, fmt.Errorf("%w: group of %d bytes at offset %d runs past end of buffer", ErrBuffer, size, offset)
		}
		reverse(data[offset : offset+size])
		offset += size
	}
	return data, nil
}

func reverse(b []byte) {
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
}
