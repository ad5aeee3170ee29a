package format

import (
	"fmt"
	"math"

	"github.com/go-bitstruct/bitstruct/lib/field"
)

// Compile tokenizes format and builds a Descriptor. It performs two
// passes in spirit: tokenize collects (kind, width) pairs, then each pair
// is turned into a field.Field (which validates the width for its own
// kind and precomputes numeric bounds).
func Compile(format string) (*Descriptor, error) {
	tokens, err := tokenize(format)
	if err != nil {
		return nil, err
	}

	fields := make([]field.Field, 0, len(tokens))
	totalBits := 0
	nonPadding := 0

	for _, tok := range tokens {
		f, err := field.New(tok.kind, tok.width)
		if err != nil {
			return nil, fmt.Errorf("format: field %q%d: %w", string(tok.kind), tok.width, err)
		}
		if !f.Kind.IsPadding() {
			nonPadding++
		}
		totalBits += f.Width
		fields = append(fields, f)
	}

	return &Descriptor{
		TotalBits:       totalBits,
		FieldCount:      len(fields),
		NonPaddingCount: nonPadding,
		Fields:          fields,
	}, nil
}

// token is one raw (kind, width) pair read from the format string, before
// the width has been validated against its kind's constraints.
type token struct {
	kind  byte
	width int
}

// tokenize implements the grammar:
//
//	format := (WS* field)* WS*
//	field  := kind digit+
//	kind   := one of s u f b t r p P
func tokenize(s string) ([]token, error) {
	var tokens []token
	i, n := 0, len(s)

	for i < n {
		if isSpace(s[i]) {
			i++
			continue
		}

		kind := s[i]
		if !isValidKind(kind) {
			return nil, fmt.Errorf("%w: unrecognized field type %q", ErrSyntax, string(kind))
		}
		i++

		start := i
		width := 0
		for i < n && s[i] >= '0' && s[i] <= '9' {
			if width > math.MaxInt/100 {
				return nil, fmt.Errorf("%w: field width overflow", ErrSyntax)
			}
			width = width*10 + int(s[i]-'0')
			i++
		}
		if i == start {
			return nil, fmt.Errorf("%w: missing width after %q", ErrSyntax, string(kind))
		}

		tokens = append(tokens, token{kind: kind, width: width})
	}

	return tokens, nil
}

func isSpace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	}
	return false
}

func isValidKind(b byte) bool {
	switch b {
	case 's', 'u', 'f', 'b', 't', 'r', 'p', 'P':
		return true
	}
	return false
}
