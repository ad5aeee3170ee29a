package field

import "errors"

// Sentinel errors for field construction and value conversion. lib/format
// and lib/codec wrap these with the public error categories (format,
// width, range, type) via fmt.Errorf("...: %w", ...).
var (
	// ErrUnknownKind is returned for a format field kind character that
	// isn't one of s, u, f, b, t, r, p, P.
	ErrUnknownKind = errors.New("field: unknown kind")

	// ErrZeroWidth is returned for a field with width 0.
	ErrZeroWidth = errors.New("field: zero-width field not allowed")

	// ErrBadWidth is returned when a field's width is out of range for
	// its kind (e.g. f33, s65, t12).
	ErrBadWidth = errors.New("field: width out of range for kind")

	// ErrRange is returned when a value does not fit the field's bit
	// width during pack.
	ErrRange = errors.New("field: value out of range")

	// ErrType is returned when a value cannot be converted to the
	// field's kind during pack.
	ErrType = errors.New("field: value has wrong type")

	// ErrShort is returned when a text or raw value is shorter than the
	// field's declared byte width.
	ErrShort = errors.New("field: value shorter than field width")
)
