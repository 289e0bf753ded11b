// FILE: lixenwraith/cliconf/flag.go
package cliconf

import (
	"fmt"
	"strings"
)

// Flag is an immutable declaration of one configurable item.
// Its default value fixes the flag's kind for its whole lifetime.
type Flag struct {
	name         string
	shorthand    rune
	defaultValue Value
	description  string
	delimiter    string
	envName      string
}

// FlagOption customizes a Flag at construction time.
type FlagOption func(*Flag)

// WithShorthand sets a single-character alternate spelling, used as "-c".
func WithShorthand(c rune) FlagOption {
	return func(f *Flag) {
		f.shorthand = c
	}
}

// WithDescription attaches documentation text. It has no effect on resolution.
func WithDescription(desc string) FlagOption {
	return func(f *Flag) {
		f.description = desc
	}
}

// WithDelimiter sets the separator used to split array values given as text.
func WithDelimiter(delim string) FlagOption {
	return func(f *Flag) {
		f.delimiter = delim
	}
}

// NewFlag declares a flag named name whose kind is the kind of defaultValue.
// Names are lowercase ASCII letters, digits, '-' and '_', starting with a letter.
// Shorthands must be an ASCII letter or digit.
func NewFlag(name string, defaultValue Value, opts ...FlagOption) (*Flag, error) {
	if !isValidFlagName(name) {
		return nil, fmt.Errorf("%w: name %q must be lowercase letters, digits, '-' or '_'", ErrInvalidFlag, name)
	}

	f := &Flag{
		name:         name,
		defaultValue: defaultValue,
		delimiter:    DefaultDelimiter,
	}
	for _, opt := range opts {
		opt(f)
	}

	if f.shorthand != 0 && !isValidShorthand(f.shorthand) {
		return nil, fmt.Errorf("%w: shorthand %q of flag %q must be A-Z, a-z or 0-9", ErrInvalidFlag, f.shorthand, name)
	}
	if f.delimiter == "" {
		f.delimiter = DefaultDelimiter
	}
	f.envName = EnvName(name)

	return f, nil
}

// MustFlag is like NewFlag but panics on an invalid declaration.
func MustFlag(name string, defaultValue Value, opts ...FlagOption) *Flag {
	f, err := NewFlag(name, defaultValue, opts...)
	if err != nil {
		panic(fmt.Sprintf("cliconf: %v", err))
	}
	return f
}

func (f *Flag) Name() string        { return f.name }
func (f *Flag) Shorthand() rune     { return f.shorthand }
func (f *Flag) Default() Value      { return f.defaultValue }
func (f *Flag) Kind() Kind          { return f.defaultValue.Kind() }
func (f *Flag) Description() string { return f.description }
func (f *Flag) Delimiter() string   { return f.delimiter }

// EnvName returns the environment variable consulted for this flag.
func (f *Flag) EnvName() string { return f.envName }

// parse parses raw text against the flag's kind and delimiter.
func (f *Flag) parse(raw string) (Value, error) {
	return ParseValue(f.Kind(), raw, f.delimiter)
}

// EnvName derives an environment variable name from a flag name:
// upper-cased, with every non-alphanumeric character replaced by '_'.
// "hello-name" becomes "HELLO_NAME".
func EnvName(name string) string {
	var b strings.Builder
	b.Grow(len(name))
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z':
			b.WriteRune(r - 'a' + 'A')
		case (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9'):
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	return b.String()
}

// isValidFlagName checks the flag name grammar.
func isValidFlagName(s string) bool {
	if len(s) == 0 || s[0] < 'a' || s[0] > 'z' {
		return false
	}
	for _, r := range s[1:] {
		isLower := r >= 'a' && r <= 'z'
		isDigit := r >= '0' && r <= '9'
		if !(isLower || isDigit || r == '-' || r == '_') {
			return false
		}
	}
	return true
}

func isValidShorthand(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9')
}
