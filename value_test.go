// FILE: lixenwraith/cliconf/value_test.go
package cliconf

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestParseValue tests raw text parsing for every kind
func TestParseValue(t *testing.T) {
	t.Run("Scalars", func(t *testing.T) {
		tests := []struct {
			kind Kind
			raw  string
			want any
		}{
			{KindBool, "true", true},
			{KindBool, "FALSE", false},
			{KindBool, "True", true},
			{KindBool, "1", true},
			{KindBool, "0", false},
			{KindString, "hello world", "hello world"},
			{KindString, "", ""},
			{KindInt64, "42", int64(42)},
			{KindInt64, "-7", int64(-7)},
			{KindInt64, "+3", int64(3)},
			{KindInt64, "9223372036854775807", int64(9223372036854775807)},
			{KindInt128, "170141183460469231731687303715884105727", Int128{Hi: 1<<63 - 1, Lo: ^uint64(0)}},
			{KindInt128, "-1", Int128{Hi: -1, Lo: ^uint64(0)}},
			{KindFloat64, "2.5", 2.5},
			{KindFloat64, "-1e3", -1000.0},
		}

		for _, tt := range tests {
			v, err := ParseValue(tt.kind, tt.raw, "")
			require.NoError(t, err, "%s %q", tt.kind, tt.raw)
			assert.Equal(t, tt.kind, v.Kind())
			assert.Equal(t, tt.want, v.Interface(), "%s %q", tt.kind, tt.raw)
		}
	})

	t.Run("ScalarFailures", func(t *testing.T) {
		tests := []struct {
			kind Kind
			raw  string
		}{
			{KindBool, "yes"},
			{KindBool, ""},
			{KindInt64, "3.0"},
			{KindInt64, "abc"},
			{KindInt64, "9223372036854775808"},
			{KindInt64, " 1"},
			{KindInt128, "170141183460469231731687303715884105728"},
			{KindInt128, "0x10"},
			{KindFloat64, "pi"},
		}

		for _, tt := range tests {
			_, err := ParseValue(tt.kind, tt.raw, "")
			assert.ErrorIs(t, err, ErrParse, "%s %q", tt.kind, tt.raw)
		}
	})

	t.Run("Arrays", func(t *testing.T) {
		v, err := ParseValue(KindStringArray, "aria,scott", "")
		require.NoError(t, err)
		assert.Equal(t, []string{"aria", "scott"}, v.Interface())

		v, err = ParseValue(KindInt64Array, "1;-2;3", ";")
		require.NoError(t, err)
		assert.Equal(t, []int64{1, -2, 3}, v.Interface())

		v, err = ParseValue(KindFloat64Array, "0.5,1", ",")
		require.NoError(t, err)
		assert.Equal(t, []float64{0.5, 1}, v.Interface())

		v, err = ParseValue(KindInt128Array, "1::-1", "::")
		require.NoError(t, err)
		assert.Equal(t, []Int128{Int128FromInt64(1), Int128FromInt64(-1)}, v.Interface())
	})

	t.Run("EmptyArray", func(t *testing.T) {
		for _, kind := range []Kind{KindStringArray, KindInt64Array, KindInt128Array, KindFloat64Array} {
			v, err := ParseValue(kind, "", ",")
			require.NoError(t, err)
			assert.Equal(t, kind, v.Kind())
			assert.Equal(t, 0, v.Len())
		}
	})

	t.Run("EmptyElementsKept", func(t *testing.T) {
		v, err := ParseValue(KindStringArray, "a,,b", ",")
		require.NoError(t, err)
		assert.Equal(t, []string{"a", "", "b"}, v.Interface())
	})

	t.Run("ArrayFailsAtomically", func(t *testing.T) {
		v, err := ParseValue(KindInt64Array, "1,two,3", ",")
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrParse))
		assert.Contains(t, err.Error(), "element 1")
		assert.Equal(t, Value{}, v)
	})
}

// TestValueFormat tests that formatted values parse back to themselves
func TestValueFormat(t *testing.T) {
	values := []Value{
		Bool(true),
		Bool(false),
		String("hola"),
		Int64(-12),
		Int128Value(Int128{Hi: 5, Lo: 1}),
		Float64(0.1),
		Float64(1e21),
		StringArray("a", "b"),
		Int64Array(1, 2, 3),
		Int128Array(Int128FromInt64(-3), Int128{Hi: 1}),
		Float64Array(1.5, -2),
	}

	for _, delim := range []string{",", ":", " | "} {
		for _, v := range values {
			raw := v.Format(delim)
			parsed, err := ParseValue(v.Kind(), raw, delim)
			require.NoError(t, err, "%s %q", v.Kind(), raw)
			assert.Equal(t, v, parsed, "%s %q", v.Kind(), raw)
		}
	}

	assert.Equal(t, "1,2,3", Int64Array(1, 2, 3).String())
	assert.Equal(t, "true", Bool(true).String())
}

// TestValueImmutability tests that constructors and accessors copy slices
func TestValueImmutability(t *testing.T) {
	src := []string{"a", "b"}
	v := StringArray(src...)
	src[0] = "changed"

	got := v.Interface().([]string)
	assert.Equal(t, []string{"a", "b"}, got)

	got[1] = "changed"
	assert.Equal(t, []string{"a", "b"}, v.Interface())
}

// TestAppendValue tests array concatenation
func TestAppendValue(t *testing.T) {
	a := StringArray("aria")
	b := StringArray("scott", "ben")

	joined := appendValue(a, b)
	assert.Equal(t, []string{"aria", "scott", "ben"}, joined.Interface())
	assert.Equal(t, []string{"aria"}, a.Interface())

	assert.Panics(t, func() { appendValue(Int64(1), Int64(2)) })
}

// TestKind tests kind metadata
func TestKind(t *testing.T) {
	assert.Equal(t, "[]int128", KindInt128Array.String())
	assert.Equal(t, "Kind(42)", Kind(42).String())

	assert.True(t, KindFloat64Array.IsArray())
	assert.False(t, KindFloat64.IsArray())

	assert.Equal(t, KindInt64, KindInt64Array.Elem())
	assert.Equal(t, KindBool, KindBool.Elem())

	var zero Value
	assert.Equal(t, KindBool, zero.Kind())
	assert.Equal(t, false, zero.Interface())
}

// TestCoerceValue tests conversion of decoder-native values
func TestCoerceValue(t *testing.T) {
	t.Run("NativeScalars", func(t *testing.T) {
		v, err := CoerceValue(KindBool, true, ",")
		require.NoError(t, err)
		assert.Equal(t, true, v.Interface())

		v, err = CoerceValue(KindInt64, json.Number("12"), ",")
		require.NoError(t, err)
		assert.Equal(t, int64(12), v.Interface())

		v, err = CoerceValue(KindInt64, float64(3), ",")
		require.NoError(t, err)
		assert.Equal(t, int64(3), v.Interface())

		v, err = CoerceValue(KindInt64, float64(1<<53), ",")
		require.NoError(t, err)
		assert.Equal(t, int64(1<<53), v.Interface())

		v, err = CoerceValue(KindInt64, int(7), ",")
		require.NoError(t, err)
		assert.Equal(t, int64(7), v.Interface())

		v, err = CoerceValue(KindInt128, json.Number("-170141183460469231731687303715884105728"), ",")
		require.NoError(t, err)
		assert.Equal(t, Int128{Hi: -1 << 63}, v.Interface())

		v, err = CoerceValue(KindFloat64, int64(2), ",")
		require.NoError(t, err)
		assert.Equal(t, 2.0, v.Interface())

		v, err = CoerceValue(KindFloat64, json.Number("0.25"), ",")
		require.NoError(t, err)
		assert.Equal(t, 0.25, v.Interface())
	})

	t.Run("StringsAreParsed", func(t *testing.T) {
		v, err := CoerceValue(KindInt64Array, "4;5", ";")
		require.NoError(t, err)
		assert.Equal(t, []int64{4, 5}, v.Interface())

		v, err = CoerceValue(KindBool, "false", ",")
		require.NoError(t, err)
		assert.Equal(t, false, v.Interface())
	})

	t.Run("NativeArrays", func(t *testing.T) {
		v, err := CoerceValue(KindStringArray, []any{"a", "b"}, ",")
		require.NoError(t, err)
		assert.Equal(t, []string{"a", "b"}, v.Interface())

		v, err = CoerceValue(KindInt64Array, []any{int64(1), "2", json.Number("3")}, ",")
		require.NoError(t, err)
		assert.Equal(t, []int64{1, 2, 3}, v.Interface())

		v, err = CoerceValue(KindFloat64Array, []float64{1, 2}, ",")
		require.NoError(t, err)
		assert.Equal(t, []float64{1, 2}, v.Interface())

		v, err = CoerceValue(KindStringArray, []any{}, ",")
		require.NoError(t, err)
		assert.Equal(t, []string{}, v.Interface())
	})

	t.Run("Failures", func(t *testing.T) {
		tests := []struct {
			kind Kind
			v    any
		}{
			{KindBool, int64(1)},
			{KindString, int64(1)},
			{KindInt64, 3.5},
			{KindInt64, true},
			{KindInt64, json.Number("1e400")},
			{KindFloat64, false},
			{KindStringArray, map[string]any{"a": 1}},
			{KindInt64Array, int64(4)},
			{KindInt64Array, []any{int64(1), "x"}},
			{KindInt64, 9007199254740994.0},
			{KindInt128, -1e26},
			{KindInt64Array, []any{1e20}},
			{KindInt64, nil},
		}

		for _, tt := range tests {
			_, err := CoerceValue(tt.kind, tt.v, ",")
			assert.ErrorIs(t, err, ErrParse, "%s %#v", tt.kind, tt.v)
		}
	})
}
