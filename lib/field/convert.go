package field

import "fmt"

// toInt64 converts a conduit value to int64 for signed fields. Any Go
// integer kind is accepted so callers aren't forced to use exactly int64.
func toInt64(v any) (int64, error) {
	switch n := v.(type) {
	case int:
		return int64(n), nil
	case int8:
		return int64(n), nil
	case int16:
		return int64(n), nil
	case int32:
		return int64(n), nil
	case int64:
		return n, nil
	case uint:
		return int64(n), nil
	case uint8:
		return int64(n), nil
	case uint16:
		return int64(n), nil
	case uint32:
		return int64(n), nil
	case uint64:
		return int64(n), nil
	default:
		return 0, fmt.Errorf("%w: expected integer, got %T", ErrType, v)
	}
}

// toUint64 converts a conduit value to uint64 for unsigned fields.
func toUint64(v any) (uint64, error) {
	switch n := v.(type) {
	case int:
		return uint64(n), nil
	case int8:
		return uint64(n), nil
	case int16:
		return uint64(n), nil
	case int32:
		return uint64(n), nil
	case int64:
		return uint64(n), nil
	case uint:
		return uint64(n), nil
	case uint8:
		return uint64(n), nil
	case uint16:
		return uint64(n), nil
	case uint32:
		return uint64(n), nil
	case uint64:
		return n, nil
	default:
		return 0, fmt.Errorf("%w: expected integer, got %T", ErrType, v)
	}
}

// toFloat64 converts a conduit value to float64 for float fields.
func toFloat64(v any) (float64, error) {
	switch n := v.(type) {
	case float32:
		return float64(n), nil
	case float64:
		return n, nil
	case int:
		return float64(n), nil
	case int64:
		return float64(n), nil
	default:
		return 0, fmt.Errorf("%w: expected real number, got %T", ErrType, v)
	}
}

// toBool converts a conduit value to its truthiness for bool fields.
// Non-bool values are rejected rather than guessed at, matching the
// strictness of the other conversions.
func toBool(v any) (bool, error) {
	b, ok := v.(bool)
	if !ok {
		return false, fmt.Errorf("%w: expected bool, got %T", ErrType, v)
	}
	return b, nil
}

// toString converts a conduit value to string for text fields.
func toString(v any) (string, error) {
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("%w: expected string, got %T", ErrType, v)
	}
	return s, nil
}

// toBytes converts a conduit value to []byte for raw fields.
func toBytes(v any) ([]byte, error) {
	b, ok := v.([]byte)
	if !ok {
		return nil, fmt.Errorf("%w: expected []byte, got %T", ErrType, v)
	}
	return b, nil
}
