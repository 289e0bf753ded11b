// FILE: lixenwraith/cliconf/resolved.go
package cliconf

import (
	"fmt"
	"io"
	"strings"

	"github.com/BurntSushi/toml"
)

// Resolved is a read-only snapshot of a registry after Load. It holds a value
// for every registered flag and the positional arguments, and is safe to
// share between goroutines.
type Resolved struct {
	order       []string
	values      map[string]Value
	sources     map[string]Source
	positionals []string
}

// Value returns the resolved value of the named flag.
func (c *Resolved) Value(name string) (Value, error) {
	v, ok := c.values[name]
	if !ok {
		return Value{}, fmt.Errorf("%w: --%s", ErrUnknownFlag, name)
	}
	return v, nil
}

// Source reports which layer produced the named flag's value.
func (c *Resolved) Source(name string) (Source, error) {
	s, ok := c.sources[name]
	if !ok {
		return "", fmt.Errorf("%w: --%s", ErrUnknownFlag, name)
	}
	return s, nil
}

// Names returns the flag names in registration order.
func (c *Resolved) Names() []string {
	return cloneSlice(c.order)
}

// Positionals returns the positional arguments in encounter order.
func (c *Resolved) Positionals() []string {
	return cloneSlice(c.positionals)
}

// Map returns the resolved payloads keyed by flag name.
func (c *Resolved) Map() map[string]any {
	out := make(map[string]any, len(c.values))
	for name, v := range c.values {
		out[name] = v.Interface()
	}
	return out
}

// Debug returns a formatted listing of every flag with its value and source.
func (c *Resolved) Debug() string {
	var b strings.Builder
	b.WriteString("Configuration Debug Info:\n")
	for _, name := range c.order {
		v := c.values[name]
		fmt.Fprintf(&b, "  %s (%s): %s [%s]\n", name, v.Kind(), v.String(), c.sources[name])
	}
	if len(c.positionals) > 0 {
		fmt.Fprintf(&b, "Positionals: %s\n", strings.Join(c.positionals, " "))
	}
	return b.String()
}

// WriteTOML writes the resolved values to w as a flat TOML document that
// ReadConfigFile can load back.
func (c *Resolved) WriteTOML(w io.Writer) error {
	if err := toml.NewEncoder(w).Encode(c.Map()); err != nil {
		return fmt.Errorf("failed to encode configuration as TOML: %w", err)
	}
	return nil
}
