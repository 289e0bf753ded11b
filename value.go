// FILE: lixenwraith/cliconf/value.go
package cliconf

import (
	"encoding/json"
	"fmt"
	"math"
	"math/big"
	"reflect"
	"strconv"
	"strings"
)

// DefaultDelimiter separates array elements when a flag sets no delimiter of its own.
const DefaultDelimiter = ","

// Kind is the closed set of value shapes a flag can hold.
type Kind int

const (
	KindBool Kind = iota
	KindString
	KindInt64
	KindInt128
	KindFloat64
	KindStringArray
	KindInt64Array
	KindInt128Array
	KindFloat64Array
)

var kindNames = [...]string{
	KindBool:         "bool",
	KindString:       "string",
	KindInt64:        "int64",
	KindInt128:       "int128",
	KindFloat64:      "float64",
	KindStringArray:  "[]string",
	KindInt64Array:   "[]int64",
	KindInt128Array:  "[]int128",
	KindFloat64Array: "[]float64",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// IsArray reports whether k holds an ordered sequence.
func (k Kind) IsArray() bool {
	return k >= KindStringArray && k <= KindFloat64Array
}

// Elem returns the scalar kind of an array kind, or k itself for scalars.
func (k Kind) Elem() Kind {
	switch k {
	case KindStringArray:
		return KindString
	case KindInt64Array:
		return KindInt64
	case KindInt128Array:
		return KindInt128
	case KindFloat64Array:
		return KindFloat64
	default:
		return k
	}
}

// Value is an immutable tagged union holding exactly one payload matching its Kind.
// The zero Value is a false KindBool.
type Value struct {
	kind Kind

	b    bool
	s    string
	i    int64
	i128 Int128
	f    float64

	strs   []string
	ints   []int64
	i128s  []Int128
	floats []float64
}

func Bool(b bool) Value          { return Value{kind: KindBool, b: b} }
func String(s string) Value      { return Value{kind: KindString, s: s} }
func Int64(n int64) Value        { return Value{kind: KindInt64, i: n} }
func Int128Value(n Int128) Value { return Value{kind: KindInt128, i128: n} }
func Float64(f float64) Value    { return Value{kind: KindFloat64, f: f} }

func StringArray(v ...string) Value {
	return Value{kind: KindStringArray, strs: cloneSlice(v)}
}

func Int64Array(v ...int64) Value {
	return Value{kind: KindInt64Array, ints: cloneSlice(v)}
}

func Int128Array(v ...Int128) Value {
	return Value{kind: KindInt128Array, i128s: cloneSlice(v)}
}

func Float64Array(v ...float64) Value {
	return Value{kind: KindFloat64Array, floats: cloneSlice(v)}
}

// cloneSlice copies v into a fresh non-nil slice.
func cloneSlice[T any](v []T) []T {
	out := make([]T, len(v))
	copy(out, v)
	return out
}

// Kind returns the value's kind.
func (v Value) Kind() Kind { return v.kind }

// Len returns the number of elements of an array value, and 0 for scalars.
func (v Value) Len() int {
	switch v.kind {
	case KindStringArray:
		return len(v.strs)
	case KindInt64Array:
		return len(v.ints)
	case KindInt128Array:
		return len(v.i128s)
	case KindFloat64Array:
		return len(v.floats)
	default:
		return 0
	}
}

// Interface returns the payload as a plain Go value.
// Array payloads are copies.
func (v Value) Interface() any {
	switch v.kind {
	case KindBool:
		return v.b
	case KindString:
		return v.s
	case KindInt64:
		return v.i
	case KindInt128:
		return v.i128
	case KindFloat64:
		return v.f
	case KindStringArray:
		return cloneSlice(v.strs)
	case KindInt64Array:
		return cloneSlice(v.ints)
	case KindInt128Array:
		return cloneSlice(v.i128s)
	case KindFloat64Array:
		return cloneSlice(v.floats)
	default:
		panic(fmt.Sprintf("cliconf: invalid kind %d", int(v.kind)))
	}
}

// appendValue concatenates two array values of the same kind.
func appendValue(a, b Value) Value {
	switch a.kind {
	case KindStringArray:
		return Value{kind: a.kind, strs: append(cloneSlice(a.strs), b.strs...)}
	case KindInt64Array:
		return Value{kind: a.kind, ints: append(cloneSlice(a.ints), b.ints...)}
	case KindInt128Array:
		return Value{kind: a.kind, i128s: append(cloneSlice(a.i128s), b.i128s...)}
	case KindFloat64Array:
		return Value{kind: a.kind, floats: append(cloneSlice(a.floats), b.floats...)}
	default:
		panic(fmt.Sprintf("cliconf: cannot append to %s value", a.kind))
	}
}

// String renders the value as raw text, joining arrays with DefaultDelimiter.
func (v Value) String() string {
	return v.Format(DefaultDelimiter)
}

// Format renders the value as raw text that ParseValue accepts for the same kind.
// Arrays are joined with delim.
func (v Value) Format(delim string) string {
	if delim == "" {
		delim = DefaultDelimiter
	}
	switch v.kind {
	case KindBool:
		return strconv.FormatBool(v.b)
	case KindString:
		return v.s
	case KindInt64:
		return strconv.FormatInt(v.i, 10)
	case KindInt128:
		return v.i128.String()
	case KindFloat64:
		return formatFloat(v.f)
	case KindStringArray:
		return strings.Join(v.strs, delim)
	case KindInt64Array:
		return joinFormatted(v.ints, delim, func(n int64) string { return strconv.FormatInt(n, 10) })
	case KindInt128Array:
		return joinFormatted(v.i128s, delim, Int128.String)
	case KindFloat64Array:
		return joinFormatted(v.floats, delim, formatFloat)
	default:
		return ""
	}
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}

func joinFormatted[T any](items []T, delim string, format func(T) string) string {
	parts := make([]string, len(items))
	for i, item := range items {
		parts[i] = format(item)
	}
	return strings.Join(parts, delim)
}

// ParseValue parses raw text into a Value of the given kind.
//
// Booleans accept "true"/"false" in any case, plus "1" and "0".
// Integers are optionally signed decimal. Arrays are split on delim
// (DefaultDelimiter when empty) and every element is parsed as the element
// kind; an empty raw string yields an empty array. A failing element fails
// the whole value.
func ParseValue(kind Kind, raw, delim string) (Value, error) {
	if !kind.IsArray() {
		return parseScalar(kind, raw)
	}
	if delim == "" {
		delim = DefaultDelimiter
	}

	var parts []string
	if raw != "" {
		parts = strings.Split(raw, delim)
	}

	elems := make([]Value, 0, len(parts))
	for i, part := range parts {
		elem, err := parseScalar(kind.Elem(), part)
		if err != nil {
			return Value{}, fmt.Errorf("element %d of %q: %w", i, raw, err)
		}
		elems = append(elems, elem)
	}
	return collect(kind, elems), nil
}

func parseScalar(kind Kind, raw string) (Value, error) {
	switch kind {
	case KindBool:
		switch strings.ToLower(raw) {
		case "true", "1":
			return Bool(true), nil
		case "false", "0":
			return Bool(false), nil
		}
	case KindString:
		return String(raw), nil
	case KindInt64:
		if n, err := strconv.ParseInt(raw, 10, 64); err == nil {
			return Int64(n), nil
		}
	case KindInt128:
		if n, err := ParseInt128(raw); err == nil {
			return Int128Value(n), nil
		}
	case KindFloat64:
		if f, err := strconv.ParseFloat(raw, 64); err == nil {
			return Float64(f), nil
		}
	default:
		return Value{}, fmt.Errorf("%w: %s is not a scalar kind", ErrParse, kind)
	}
	return Value{}, fmt.Errorf("%w: cannot parse %q as %s", ErrParse, raw, kind)
}

// collect builds an array value of kind from scalar element values.
func collect(kind Kind, elems []Value) Value {
	out := Value{kind: kind}
	switch kind {
	case KindStringArray:
		out.strs = make([]string, len(elems))
		for i, e := range elems {
			out.strs[i] = e.s
		}
	case KindInt64Array:
		out.ints = make([]int64, len(elems))
		for i, e := range elems {
			out.ints[i] = e.i
		}
	case KindInt128Array:
		out.i128s = make([]Int128, len(elems))
		for i, e := range elems {
			out.i128s[i] = e.i128
		}
	case KindFloat64Array:
		out.floats = make([]float64, len(elems))
		for i, e := range elems {
			out.floats[i] = e.f
		}
	}
	return out
}

// CoerceValue converts a decoder-native value into a Value of the given kind.
//
// Strings go through ParseValue. Native booleans, integers, floats,
// json.Number and slices produced by JSON, TOML and YAML decoders are
// accepted when they represent the kind exactly: integral floats for
// integer kinds, any number for Float64, and element-wise for arrays.
func CoerceValue(kind Kind, v any, delim string) (Value, error) {
	if s, ok := v.(string); ok {
		return ParseValue(kind, s, delim)
	}
	if !kind.IsArray() {
		return coerceScalar(kind, v)
	}

	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return Value{}, fmt.Errorf("%w: cannot use %T as %s", ErrParse, v, kind)
	}
	elems := make([]Value, 0, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		elem, err := coerceScalar(kind.Elem(), rv.Index(i).Interface())
		if err != nil {
			return Value{}, fmt.Errorf("element %d: %w", i, err)
		}
		elems = append(elems, elem)
	}
	return collect(kind, elems), nil
}

func coerceScalar(kind Kind, v any) (Value, error) {
	if s, ok := v.(string); ok {
		return parseScalar(kind, s)
	}

	switch kind {
	case KindBool:
		if b, ok := v.(bool); ok {
			return Bool(b), nil
		}
	case KindInt64:
		if n, ok := asBigInt(v); ok && n.IsInt64() {
			return Int64(n.Int64()), nil
		}
	case KindInt128:
		if n, ok := asBigInt(v); ok {
			if i, err := Int128FromBig(n); err == nil {
				return Int128Value(i), nil
			}
		}
	case KindFloat64:
		if f, ok := asFloat(v); ok {
			return Float64(f), nil
		}
	}
	return Value{}, fmt.Errorf("%w: cannot use %v (%T) as %s", ErrParse, v, v, kind)
}

// maxExactFloatInt bounds the integers a float64 holds exactly.
const maxExactFloatInt = 1 << 53

// asBigInt extracts an exact integer from native numeric types.
func asBigInt(v any) (*big.Int, bool) {
	if n, ok := v.(json.Number); ok {
		return new(big.Int).SetString(n.String(), 10)
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return big.NewInt(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return new(big.Int).SetUint64(rv.Uint()), true
	case reflect.Float32, reflect.Float64:
		// Integers past 2^53 are no longer exact in a float
		f := rv.Float()
		if math.IsInf(f, 0) || math.IsNaN(f) || f != math.Trunc(f) || math.Abs(f) > maxExactFloatInt {
			return nil, false
		}
		n, _ := new(big.Float).SetFloat64(f).Int(nil)
		return n, true
	}
	return nil, false
}

func asFloat(v any) (float64, bool) {
	if n, ok := v.(json.Number); ok {
		f, err := n.Float64()
		return f, err == nil
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Float32, reflect.Float64:
		return rv.Float(), true
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(rv.Uint()), true
	}
	return 0, false
}
