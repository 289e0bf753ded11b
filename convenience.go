// File: lixenwraith/cliconf/convenience.go
package cliconf

import (
	"fmt"
	"os"
)

// Quick registers flags, loads the given config files (missing ones are
// skipped), the process environment and os.Args[1:], in one call.
// This is the recommended way to initialize configuration for most applications
func Quick(flags []*Flag, configFiles ...string) (*Registry, error) {
	b := NewBuilder().
		WithFlags(flags...).
		WithEnviron(os.Environ()).
		WithArgs(os.Args[1:])
	for _, path := range configFiles {
		b.WithConfigFile(path)
	}
	return b.Build()
}

// MustQuick is like Quick but panics on error
func MustQuick(flags []*Flag, configFiles ...string) *Registry {
	reg, err := Quick(flags, configFiles...)
	if err != nil {
		panic(fmt.Sprintf("config initialization failed: %v", err))
	}
	return reg
}
