package values

import "fmt"

// ConversionError reports a failed typed extraction.
type ConversionError struct {
	// Want is the kind the accessor expected
	Want Kind

	// Got is the kind the value actually holds
	Got Kind
}

// Error implements the error interface.
func (e *ConversionError) Error() string {
	return fmt.Sprintf("value is not a %s (got %s)", e.Want, e.Got)
}

// AsString extracts a text value. Symbols convert too, since both carry
// plain text.
func AsString(v Value) (string, error) {
	switch t := v.(type) {
	case String:
		return string(t), nil
	case Symbol:
		return string(t), nil
	default:
		return "", &ConversionError{Want: KindString, Got: v.Kind()}
	}
}

// AsInt extracts an integer value.
func AsInt(v Value) (int64, error) {
	if t, ok := v.(Integer); ok {
		return int64(t), nil
	}
	return 0, &ConversionError{Want: KindInteger, Got: v.Kind()}
}

// AsDecimal extracts a decimal value.
func AsDecimal(v Value) (float64, error) {
	if t, ok := v.(Decimal); ok {
		return float64(t), nil
	}
	return 0, &ConversionError{Want: KindDecimal, Got: v.Kind()}
}

// AsBoolean extracts a boolean value.
func AsBoolean(v Value) (bool, error) {
	if t, ok := v.(Boolean); ok {
		return bool(t), nil
	}
	return false, &ConversionError{Want: KindBoolean, Got: v.Kind()}
}

// AsSymbol extracts a symbol value. Strings do not convert; use AsString for
// the lenient direction.
func AsSymbol(v Value) (string, error) {
	if t, ok := v.(Symbol); ok {
		return string(t), nil
	}
	return "", &ConversionError{Want: KindSymbol, Got: v.Kind()}
}

// AsArray extracts an array value.
func AsArray(v Value) (Array, error) {
	if t, ok := v.(Array); ok {
		return t, nil
	}
	return nil, &ConversionError{Want: KindArray, Got: v.Kind()}
}

// AsMap extracts a map value.
func AsMap(v Value) (Map, error) {
	if t, ok := v.(Map); ok {
		return t, nil
	}
	return nil, &ConversionError{Want: KindMap, Got: v.Kind()}
}

// AsRange extracts a range value.
func AsRange(v Value) (Range, error) {
	if t, ok := v.(Range); ok {
		return t, nil
	}
	return Range{}, &ConversionError{Want: KindRange, Got: v.Kind()}
}

// AsMeasurement extracts a measurement value.
func AsMeasurement(v Value) (Measurement, error) {
	if t, ok := v.(Measurement); ok {
		return t, nil
	}
	return Measurement{}, &ConversionError{Want: KindMeasurement, Got: v.Kind()}
}
