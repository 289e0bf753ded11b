// FILE: lixenwraith/cliconf/accessor.go
package cliconf

import "fmt"

// valueSource is implemented by both Registry and Resolved.
type valueSource interface {
	Value(name string) (Value, error)
}

// mustKind fetches name from src and asserts its kind. Asking for an unknown
// flag or for the wrong kind is a programming error, so both panic.
func mustKind(src valueSource, name string, kind Kind) Value {
	v, err := src.Value(name)
	if err != nil {
		panic(fmt.Errorf("cliconf: %w", err))
	}
	if v.kind != kind {
		panic(fmt.Errorf("cliconf: %w: flag %q is %s, not %s", ErrKindMismatch, name, v.kind, kind))
	}
	return v
}

// Bool returns the value of a KindBool flag.
// It panics if the flag is unknown or of another kind; the same holds for
// every typed accessor below.
func (r *Registry) Bool(name string) bool { return mustKind(r, name, KindBool).b }

// String returns the value of a KindString flag.
func (r *Registry) String(name string) string { return mustKind(r, name, KindString).s }

// Int64 returns the value of a KindInt64 flag.
func (r *Registry) Int64(name string) int64 { return mustKind(r, name, KindInt64).i }

// Int128 returns the value of a KindInt128 flag.
func (r *Registry) Int128(name string) Int128 { return mustKind(r, name, KindInt128).i128 }

// Float64 returns the value of a KindFloat64 flag.
func (r *Registry) Float64(name string) float64 { return mustKind(r, name, KindFloat64).f }

// StringArray returns a copy of the value of a KindStringArray flag.
func (r *Registry) StringArray(name string) []string {
	return cloneSlice(mustKind(r, name, KindStringArray).strs)
}

// Int64Array returns a copy of the value of a KindInt64Array flag.
func (r *Registry) Int64Array(name string) []int64 {
	return cloneSlice(mustKind(r, name, KindInt64Array).ints)
}

// Int128Array returns a copy of the value of a KindInt128Array flag.
func (r *Registry) Int128Array(name string) []Int128 {
	return cloneSlice(mustKind(r, name, KindInt128Array).i128s)
}

// Float64Array returns a copy of the value of a KindFloat64Array flag.
func (r *Registry) Float64Array(name string) []float64 {
	return cloneSlice(mustKind(r, name, KindFloat64Array).floats)
}

func (c *Resolved) Bool(name string) bool       { return mustKind(c, name, KindBool).b }
func (c *Resolved) String(name string) string   { return mustKind(c, name, KindString).s }
func (c *Resolved) Int64(name string) int64     { return mustKind(c, name, KindInt64).i }
func (c *Resolved) Int128(name string) Int128   { return mustKind(c, name, KindInt128).i128 }
func (c *Resolved) Float64(name string) float64 { return mustKind(c, name, KindFloat64).f }

func (c *Resolved) StringArray(name string) []string {
	return cloneSlice(mustKind(c, name, KindStringArray).strs)
}

func (c *Resolved) Int64Array(name string) []int64 {
	return cloneSlice(mustKind(c, name, KindInt64Array).ints)
}

func (c *Resolved) Int128Array(name string) []Int128 {
	return cloneSlice(mustKind(c, name, KindInt128Array).i128s)
}

func (c *Resolved) Float64Array(name string) []float64 {
	return cloneSlice(mustKind(c, name, KindFloat64Array).floats)
}
