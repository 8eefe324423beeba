package values

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKindNames(t *testing.T) {
	tests := []struct {
		value Value
		kind  Kind
		name  string
	}{
		{String("a"), KindString, "string"},
		{Integer(1), KindInteger, "integer"},
		{Decimal(1.5), KindDecimal, "decimal"},
		{Boolean(true), KindBoolean, "boolean"},
		{Symbol("sym"), KindSymbol, "symbol"},
		{Array{Integer(1)}, KindArray, "array"},
		{Map{"k": Integer(1)}, KindMap, "map"},
		{Range{}, KindRange, "range"},
		{Measurement{Magnitude: 5, Unit: "kg"}, KindMeasurement, "measurement"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.value.Kind() != tt.kind {
				t.Errorf("Kind() = %v, want %v", tt.value.Kind(), tt.kind)
			}
			if tt.kind.String() != tt.name {
				t.Errorf("Kind.String() = %q, want %q", tt.kind.String(), tt.name)
			}
		})
	}
}

func TestAccessors(t *testing.T) {
	t.Run("AsString accepts strings and symbols", func(t *testing.T) {
		s, err := AsString(String("Alice"))
		require.NoError(t, err)
		assert.Equal(t, "Alice", s)

		s, err = AsString(Symbol("n"))
		require.NoError(t, err)
		assert.Equal(t, "n", s)
	})

	t.Run("AsInt", func(t *testing.T) {
		i, err := AsInt(Integer(42))
		require.NoError(t, err)
		assert.Equal(t, int64(42), i)
	})

	t.Run("AsDecimal", func(t *testing.T) {
		f, err := AsDecimal(Decimal(3.14))
		require.NoError(t, err)
		assert.Equal(t, 3.14, f)
	})

	t.Run("AsBoolean", func(t *testing.T) {
		b, err := AsBoolean(Boolean(true))
		require.NoError(t, err)
		assert.True(t, b)
	})

	t.Run("AsSymbol rejects plain strings", func(t *testing.T) {
		_, err := AsSymbol(String("not a symbol"))
		require.Error(t, err)
	})

	t.Run("AsArray and AsMap", func(t *testing.T) {
		arr, err := AsArray(Array{Integer(1), Integer(2)})
		require.NoError(t, err)
		assert.Len(t, arr, 2)

		m, err := AsMap(Map{"k": String("v")})
		require.NoError(t, err)
		assert.Len(t, m, 1)
	})

	t.Run("AsRange and AsMeasurement", func(t *testing.T) {
		r, err := AsRange(Range{Lower: Bound(1), Upper: Bound(10)})
		require.NoError(t, err)
		assert.Equal(t, 1.0, *r.Lower)

		m, err := AsMeasurement(Measurement{Magnitude: 5, Unit: "kg"})
		require.NoError(t, err)
		assert.Equal(t, "kg", m.Unit)
	})
}

func TestConversionError(t *testing.T) {
	_, err := AsString(Integer(1))
	require.Error(t, err)

	var convErr *ConversionError
	require.True(t, errors.As(err, &convErr))
	assert.Equal(t, KindString, convErr.Want)
	assert.Equal(t, KindInteger, convErr.Got)
	assert.Equal(t, "value is not a string (got integer)", convErr.Error())
}

func TestEqual(t *testing.T) {
	tests := []struct {
		name string
		a, b Value
		want bool
	}{
		{"equal strings", String("a"), String("a"), true},
		{"different strings", String("a"), String("b"), false},
		{"string vs symbol", String("a"), Symbol("a"), false},
		{"equal integers", Integer(1), Integer(1), true},
		{"equal decimals", Decimal(1.5), Decimal(1.5), true},
		{"equal booleans", Boolean(true), Boolean(true), true},
		{"equal arrays", Array{Integer(1), String("x")}, Array{Integer(1), String("x")}, true},
		{"arrays differ in order", Array{Integer(1), Integer(2)}, Array{Integer(2), Integer(1)}, false},
		{"equal maps", Map{"a": Integer(1), "b": Integer(2)}, Map{"b": Integer(2), "a": Integer(1)}, true},
		{"maps differ in value", Map{"a": Integer(1)}, Map{"a": Integer(2)}, false},
		{"equal ranges", Range{Lower: Bound(1), Upper: Bound(2)}, Range{Lower: Bound(1), Upper: Bound(2)}, true},
		{"open vs closed range", Range{Lower: Bound(1)}, Range{Lower: Bound(1), Upper: Bound(2)}, false},
		{"equal measurements", Measurement{5, "kg"}, Measurement{5, "kg"}, true},
		{"measurements differ in unit", Measurement{5, "kg"}, Measurement{5, "m"}, false},
		{"nested structures", Array{Map{"k": Array{Integer(1)}}}, Array{Map{"k": Array{Integer(1)}}}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Equal(tt.a, tt.b))
		})
	}
}

func TestStringRendering(t *testing.T) {
	tests := []struct {
		name  string
		value Value
		want  string
	}{
		{"string is quoted", String("Alice"), `"Alice"`},
		{"symbol is bare", Symbol("n"), "n"},
		{"integer", Integer(42), "42"},
		{"decimal", Decimal(3.14), "3.14"},
		{"boolean", Boolean(true), "true"},
		{"array", Array{Integer(1), String("x")}, `[1, "x"]`},
		{"map keys are sorted", Map{"b": Integer(2), "a": Integer(1)}, "{a: 1, b: 2}"},
		{"closed range", Range{Lower: Bound(1), Upper: Bound(10)}, "1..10"},
		{"lower-only range", Range{Lower: Bound(1)}, "1.."},
		{"upper-only range", Range{Upper: Bound(10)}, "..10"},
		{"unbounded range", Range{}, ".."},
		{"measurement", Measurement{Magnitude: 5, Unit: "kg"}, "5kg"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.value.String())
		})
	}
}
