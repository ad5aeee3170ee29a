package codec

import "fmt"

// Source and Sink realize the value conduit: Source is pulled from by the
// dispatcher while packing, Sink is pushed to while unpacking. Padding
// fields never touch either side. Each concrete pair (slice/dict) is the
// conduit for one of the two calling conventions the public API offers.
type Source interface {
	Next() (any, error)
}

type Sink interface {
	Emit(v any) error
}

// sliceSource pulls values in order from a positional argument list. Next
// returns ErrArity once the list is exhausted, which is how "too few
// values" surfaces without a separate up-front length check.
type sliceSource struct {
	values []any
	i      int
}

func NewSliceSource(values []any) Source {
	return &sliceSource{values: values}
}

func (s *sliceSource) Next() (any, error) {
	if s.i >= len(s.values) {
		return nil, fmt.Errorf("%w: too few values for format", ErrArity)
	}
	v := s.values[s.i]
	s.i++
	return v, nil
}

// sliceSink appends each emitted value to a positional result list.
type sliceSink struct {
	values []any
}

func NewSliceSink() *sliceSink {
	return &sliceSink{}
}

func (s *sliceSink) Emit(v any) error {
	s.values = append(s.values, v)
	return nil
}

func (s *sliceSink) Values() []any {
	return s.values
}

// valuesAny returns Values as any, so CompiledFormat can hold a sliceSink
// and a dictSink behind one interface despite their differing result types.
func (s *sliceSink) valuesAny() any {
	return s.Values()
}

// dictSource pulls values out of a name/value map in the order given by
// names. A name missing from values, or a names list shorter than the
// descriptor's non-padding field count, is an arity error.
type dictSource struct {
	names  []string
	values map[string]any
	i      int
}

func NewDictSource(names []string, values map[string]any) Source {
	return &dictSource{names: names, values: values}
}

func (d *dictSource) Next() (any, error) {
	if d.i >= len(d.names) {
		return nil, fmt.Errorf("%w: too few names for format", ErrArity)
	}
	name := d.names[d.i]
	d.i++
	v, ok := d.values[name]
	if !ok {
		return nil, fmt.Errorf("%w: missing key %q", ErrArity, name)
	}
	return v, nil
}

// dictSink writes each emitted value under the next name in names into a
// fresh map, in the same order the descriptor's non-padding fields appear.
type dictSink struct {
	names  []string
	values map[string]any
	i      int
}

func NewDictSink(names []string) *dictSink {
	return &dictSink{names: names, values: make(map[string]any, len(names))}
}

func (d *dictSink) Emit(v any) error {
	if d.i >= len(d.names) {
		return fmt.Errorf("%w: too few names for format", ErrArity)
	}
	d.values[d.names[d.i]] = v
	d.i++
	return nil
}

func (d *dictSink) Values() map[string]any {
	return d.values
}

// valuesAny returns Values as any, so CompiledFormat can hold a sliceSink
// and a dictSink behind one interface despite their differing result types.
func (d *dictSink) valuesAny() any {
	return d.Values()
}
