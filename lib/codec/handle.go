package codec

import (
	"encoding/json"

	"github.com/go-bitstruct/bitstruct/lib/format"
)

// CompiledFormat is a reusable handle around one compiled format string,
// for callers that pack or unpack the same layout many times and want to
// pay the tokenize/validate cost once. names is nil for a positional
// handle; non-nil selects the dict calling convention for every method.
//
// A CompiledFormat holds no mutable state after Compile returns, so its
// methods are safe to call concurrently from multiple goroutines against
// one shared handle. PackInto still writes into the caller's buffer, so
// concurrent PackInto calls against the same backing array are not safe —
// that is a property of the buffer, not of CompiledFormat.
type CompiledFormat struct {
	descriptor *format.Descriptor
	names      []string
	raw        string
}

// Compile tokenizes raw once and returns a handle for repeated use. names
// may be nil for the positional calling convention, or a slice with at
// least descriptor.NonPaddingCount entries for the dict convention.
func Compile(raw string, names []string) (*CompiledFormat, error) {
	d, err := format.Compile(raw)
	if err != nil {
		return nil, err
	}
	return &CompiledFormat{descriptor: d, names: names, raw: raw}, nil
}

// SizeInBits returns the fixed packed width of the compiled format.
func (c *CompiledFormat) SizeInBits() int {
	return c.descriptor.TotalBits
}

// Clone returns an independent copy of c. Since a CompiledFormat holds no
// mutable state, this only needs to give the copy its own names slice so
// a caller mutating one handle's names can never affect the other's.
func (c *CompiledFormat) Clone() *CompiledFormat {
	var names []string
	if c.names != nil {
		names = make([]string, len(c.names))
		copy(names, c.names)
	}
	return &CompiledFormat{descriptor: c.descriptor, names: names, raw: c.raw}
}

// Pack packs values into a freshly allocated buffer. For a handle
// compiled with names, pass a single map[string]any instead of a
// positional value list.
func (c *CompiledFormat) Pack(values ...any) ([]byte, error) {
	return Pack(c.descriptor, c.source(values))
}

// Unpack reads the compiled format out of data starting at bit 0. For a
// handle compiled with names, the result is a map[string]any; otherwise
// it is a []any in field order.
func (c *CompiledFormat) Unpack(data []byte, allowTruncated bool) (any, error) {
	sink := c.sink()
	if err := Unpack(c.descriptor, data, 0, allowTruncated, sink); err != nil {
		return nil, err
	}
	return sink.valuesAny(), nil
}

// PackInto packs values into buf starting at bitOffset.
func (c *CompiledFormat) PackInto(buf []byte, bitOffset int, values ...any) error {
	return PackInto(c.descriptor, buf, bitOffset, c.source(values))
}

// UnpackFrom reads the compiled format out of data starting at bitOffset.
// For a handle compiled with names, the result is a map[string]any;
// otherwise it is a []any in field order.
func (c *CompiledFormat) UnpackFrom(data []byte, bitOffset int, allowTruncated bool) (any, error) {
	sink := c.sink()
	if err := Unpack(c.descriptor, data, bitOffset, allowTruncated, sink); err != nil {
		return nil, err
	}
	return sink.valuesAny(), nil
}

// source builds the positional source for values, unless the handle was
// compiled with names, in which case values must be a single map[string]any.
func (c *CompiledFormat) source(values []any) Source {
	if c.names == nil {
		return NewSliceSource(values)
	}
	if len(values) == 1 {
		if m, ok := values[0].(map[string]any); ok {
			return NewDictSource(c.names, m)
		}
	}
	return NewDictSource(c.names, nil)
}

// valuesSink is the common shape of sliceSink and dictSink: a Sink that
// can also hand back its accumulated result as an any, so sink() can
// return either concrete type behind one interface.
type valuesSink interface {
	Sink
	valuesAny() any
}

// sink builds the sink matching the handle's calling convention, mirroring
// source(): a dictSink when the handle was compiled with names, a
// sliceSink otherwise.
func (c *CompiledFormat) sink() valuesSink {
	if c.names == nil {
		return NewSliceSink()
	}
	return NewDictSink(c.names)
}

// serializedFormat is the on-the-wire shape MarshalText/UnmarshalText use,
// covering both the format string and, if present, the name list — the
// two pieces spec.md §4.6 requires a CompiledFormat's serialization to
// carry.
type serializedFormat struct {
	Format string   `json:"format"`
	Names  []string `json:"names,omitempty"`
}

// MarshalText serializes the handle as its original format string plus
// its name list (if any), so a dict-mode CompiledFormat can round-trip
// through config or storage without reverting to the positional
// convention.
func (c *CompiledFormat) MarshalText() ([]byte, error) {
	return json.Marshal(serializedFormat{Format: c.raw, Names: c.names})
}

// UnmarshalText recompiles the handle from the format string and name
// list previously produced by MarshalText.
func (c *CompiledFormat) UnmarshalText(b []byte) error {
	var s serializedFormat
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	d, err := format.Compile(s.Format)
	if err != nil {
		return err
	}
	c.descriptor = d
	c.raw = s.Format
	c.names = s.Names
	return nil
}
