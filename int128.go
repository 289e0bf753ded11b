// FILE: lixenwraith/cliconf/int128.go
package cliconf

import (
	"fmt"
	"math/big"
)

var (
	minInt128 = new(big.Int).Neg(new(big.Int).Lsh(big.NewInt(1), 127))
	maxInt128 = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 127), big.NewInt(1))
	lowMask   = new(big.Int).SetUint64(^uint64(0))
)

// Int128 is a signed 128-bit integer in two's complement form.
// The represented value is Hi*2^64 + Lo. The zero value is 0.
type Int128 struct {
	Hi int64
	Lo uint64
}

// Int128FromInt64 widens n to 128 bits.
func Int128FromInt64(n int64) Int128 {
	return Int128{Hi: n >> 63, Lo: uint64(n)}
}

// Int128FromBig converts b, failing if it lies outside the 128-bit signed range.
func Int128FromBig(b *big.Int) (Int128, error) {
	if b.Cmp(minInt128) < 0 || b.Cmp(maxInt128) > 0 {
		return Int128{}, fmt.Errorf("value %s out of 128-bit range", b.String())
	}
	lo := new(big.Int).And(b, lowMask).Uint64()
	hi := new(big.Int).Rsh(b, 64).Int64()
	return Int128{Hi: hi, Lo: lo}, nil
}

// ParseInt128 parses optionally signed decimal text.
func ParseInt128(s string) (Int128, error) {
	b, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return Int128{}, fmt.Errorf("invalid syntax: %q", s)
	}
	return Int128FromBig(b)
}

// Big returns the value as a math/big integer.
func (i Int128) Big() *big.Int {
	b := new(big.Int).Lsh(big.NewInt(i.Hi), 64)
	return b.Add(b, new(big.Int).SetUint64(i.Lo))
}

// Int64 returns the value and whether it fits in 64 bits.
func (i Int128) Int64() (int64, bool) {
	n := int64(i.Lo)
	return n, i.Hi == n>>63
}

// String formats the value in decimal.
func (i Int128) String() string {
	if n, ok := i.Int64(); ok {
		return fmt.Sprintf("%d", n)
	}
	return i.Big().String()
}

// MarshalText implements encoding.TextMarshaler.
func (i Int128) MarshalText() ([]byte, error) {
	return []byte(i.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (i *Int128) UnmarshalText(text []byte) error {
	v, err := ParseInt128(string(text))
	if err != nil {
		return err
	}
	*i = v
	return nil
}
