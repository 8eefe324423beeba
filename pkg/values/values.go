package values

import (
	"sort"
	"strconv"
	"strings"
)

// Kind identifies which concrete value type a Value holds.
type Kind int

const (
	KindString Kind = iota
	KindInteger
	KindDecimal
	KindBoolean
	KindSymbol
	KindArray
	KindMap
	KindRange
	KindMeasurement
)

// String returns the lowercase name of the kind.
func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindInteger:
		return "integer"
	case KindDecimal:
		return "decimal"
	case KindBoolean:
		return "boolean"
	case KindSymbol:
		return "symbol"
	case KindArray:
		return "array"
	case KindMap:
		return "map"
	case KindRange:
		return "range"
	case KindMeasurement:
		return "measurement"
	default:
		return "unknown"
	}
}

// Value is the closed union of property value types. Only the nine kinds
// defined in this package implement it.
type Value interface {
	Kind() Kind
	String() string
	isValue()
}

// String is a text value. Rendered quoted.
type String string

// Integer is a 64-bit signed integer value.
type Integer int64

// Decimal is a 64-bit floating point value.
type Decimal float64

// Boolean is a true/false value.
type Boolean bool

// Symbol is an identifier-like atom. Unlike String it renders unquoted.
type Symbol string

// Array is an ordered sequence of values.
type Array []Value

// Map associates unique string keys with values.
type Map map[string]Value

// Range is a numeric range with optional inclusive bounds. A nil bound means
// unbounded on that side.
type Range struct {
	Lower *float64 `json:"lower"`
	Upper *float64 `json:"upper"`
}

// Measurement pairs a numeric magnitude with a unit string, e.g. 5 "kg".
type Measurement struct {
	Magnitude float64 `json:"magnitude"`
	Unit      string  `json:"unit"`
}

func (String) Kind() Kind      { return KindString }
func (Integer) Kind() Kind     { return KindInteger }
func (Decimal) Kind() Kind     { return KindDecimal }
func (Boolean) Kind() Kind     { return KindBoolean }
func (Symbol) Kind() Kind      { return KindSymbol }
func (Array) Kind() Kind       { return KindArray }
func (Map) Kind() Kind         { return KindMap }
func (Range) Kind() Kind       { return KindRange }
func (Measurement) Kind() Kind { return KindMeasurement }

func (String) isValue()      {}
func (Integer) isValue()     {}
func (Decimal) isValue()     {}
func (Boolean) isValue()     {}
func (Symbol) isValue()      {}
func (Array) isValue()       {}
func (Map) isValue()         {}
func (Range) isValue()       {}
func (Measurement) isValue() {}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}

func (s String) String() string  { return `"` + string(s) + `"` }
func (i Integer) String() string { return strconv.FormatInt(int64(i), 10) }
func (d Decimal) String() string { return formatFloat(float64(d)) }
func (b Boolean) String() string { return strconv.FormatBool(bool(b)) }
func (s Symbol) String() string  { return string(s) }

func (a Array) String() string {
	var sb strings.Builder
	sb.WriteString("[")
	for i, item := range a {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(item.String())
	}
	sb.WriteString("]")
	return sb.String()
}

// String renders map entries in sorted key order so output is deterministic.
func (m Map) String() string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var sb strings.Builder
	sb.WriteString("{")
	for i, k := range keys {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(k)
		sb.WriteString(": ")
		sb.WriteString(m[k].String())
	}
	sb.WriteString("}")
	return sb.String()
}

func (r Range) String() string {
	switch {
	case r.Lower != nil && r.Upper != nil:
		return formatFloat(*r.Lower) + ".." + formatFloat(*r.Upper)
	case r.Lower != nil:
		return formatFloat(*r.Lower) + ".."
	case r.Upper != nil:
		return ".." + formatFloat(*r.Upper)
	default:
		return ".."
	}
}

func (m Measurement) String() string {
	return formatFloat(m.Magnitude) + m.Unit
}

// Bound returns a pointer to f, for building Range bounds inline.
func Bound(f float64) *float64 { return &f }

// Equal reports whether two values are structurally equal: same kind and
// same contents, recursively for arrays and maps.
func Equal(a, b Value) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if a.Kind() != b.Kind() {
		return false
	}
	switch av := a.(type) {
	case String:
		return av == b.(String)
	case Integer:
		return av == b.(Integer)
	case Decimal:
		return av == b.(Decimal)
	case Boolean:
		return av == b.(Boolean)
	case Symbol:
		return av == b.(Symbol)
	case Array:
		bv := b.(Array)
		if len(av) != len(bv) {
			return false
		}
		for i := range av {
			if !Equal(av[i], bv[i]) {
				return false
			}
		}
		return true
	case Map:
		bv := b.(Map)
		if len(av) != len(bv) {
			return false
		}
		for k, v := range av {
			other, ok := bv[k]
			if !ok || !Equal(v, other) {
				return false
			}
		}
		return true
	case Range:
		bv := b.(Range)
		return boundsEqual(av.Lower, bv.Lower) && boundsEqual(av.Upper, bv.Upper)
	case Measurement:
		bv := b.(Measurement)
		return av.Magnitude == bv.Magnitude && av.Unit == bv.Unit
	default:
		return false
	}
}

func boundsEqual(a, b *float64) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}
