// Package format compiles a bitstruct format string into a Descriptor: a
// flat, immutable list of field records plus the totals the dispatcher and
// compiled handles need (total bit width, field count, non-padding count).
package format

import "github.com/go-bitstruct/bitstruct/lib/field"

// Descriptor is the compiled schema produced by Compile. It is immutable
// after construction and safe to share across goroutines.
type Descriptor struct {
	TotalBits       int
	FieldCount      int
	NonPaddingCount int
	Fields          []field.Field
}
