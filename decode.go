// FILE: lixenwraith/cliconf/decode.go
package cliconf

import (
	"fmt"
	"math/big"
	"reflect"

	"github.com/go-viper/mapstructure/v2"
)

// TagName is the struct tag Scan uses to map fields to flag names.
const TagName = "flag"

// Scan decodes the resolved values into target, which must be a non-nil
// pointer to a struct or map. Fields are matched by their `flag` tag, or by
// name ignoring case and '-'/'_' separators, so ExtraNames receives
// "extra-names". String flags can fill time.Duration fields and any
// encoding.TextUnmarshaler; Int128 flags can fill *big.Int fields.
func (c *Resolved) Scan(target any) error {
	rv := reflect.ValueOf(target)
	if rv.Kind() != reflect.Ptr || rv.IsNil() {
		return fmt.Errorf("scan target must be non-nil pointer, got %T", target)
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:     target,
		TagName:    TagName,
		DecodeHook: getDecodeHook(),
		MatchName: func(mapKey, fieldName string) bool {
			return normalizeFieldName(mapKey) == normalizeFieldName(fieldName)
		},
	})
	if err != nil {
		return fmt.Errorf("decoder creation failed: %w", err)
	}

	if err := decoder.Decode(c.Map()); err != nil {
		return fmt.Errorf("failed to scan configuration into %T: %w", target, err)
	}
	return nil
}

// Scan is shorthand for r.Resolved().Scan(target).
func (r *Registry) Scan(target any) error {
	return r.Resolved().Scan(target)
}

// getDecodeHook returns the composite decode hook for all type conversions
func getDecodeHook() mapstructure.DecodeHookFunc {
	return mapstructure.ComposeDecodeHookFunc(
		int128ToBigIntHookFunc(),
		mapstructure.StringToTimeDurationHookFunc(),
		mapstructure.TextUnmarshallerHookFunc(),
	)
}

// int128ToBigIntHookFunc handles Int128 to big.Int conversion
func int128ToBigIntHookFunc() mapstructure.DecodeHookFunc {
	return func(f reflect.Type, t reflect.Type, data any) (any, error) {
		if f != reflect.TypeOf(Int128{}) {
			return data, nil
		}
		switch t {
		case reflect.TypeOf(&big.Int{}):
			return data.(Int128).Big(), nil
		case reflect.TypeOf(big.Int{}):
			return *data.(Int128).Big(), nil
		}
		return data, nil
	}
}
