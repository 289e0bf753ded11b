// File: lixenwraith/cliconf/builder.go
package cliconf

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
)

// ValidatorFunc defines the signature for a function that can validate a resolved configuration.
// It runs after a successful load and should return an error if validation fails.
type ValidatorFunc func(c *Resolved) error

// Builder provides a fluent interface for building configurations from the
// process environment. It performs the I/O that Registry.Load leaves to the
// caller: reading config files, the environment and os.Args.
type Builder struct {
	opts       []Option
	flags      []*Flag
	files      []fileSource
	env        map[string]string
	args       []string
	err        error
	validators []ValidatorFunc
}

// fileSource is a pending config file location. Home-relative paths and
// discovery are resolved in Build, against the builder's environment.
type fileSource struct {
	path      string
	home      bool
	discovery *FileDiscoveryOptions
}

// NewBuilder creates a new configuration builder
func NewBuilder() *Builder {
	return &Builder{
		args:       os.Args[1:],
		validators: make([]ValidatorFunc, 0),
	}
}

// WithFlags registers flags, in order
func (b *Builder) WithFlags(flags ...*Flag) *Builder {
	b.flags = append(b.flags, flags...)
	return b
}

// WithFlag declares and registers a single flag
func (b *Builder) WithFlag(name string, defaultValue Value, opts ...FlagOption) *Builder {
	f, err := NewFlag(name, defaultValue, opts...)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}
	return b.WithFlags(f)
}

// WithConfigFile adds a configuration file location; missing files are skipped
func (b *Builder) WithConfigFile(path string) *Builder {
	b.files = append(b.files, fileSource{path: path})
	return b
}

// WithHomeConfigFile adds a configuration file location relative to the home directory
func (b *Builder) WithHomeConfigFile(relPath string) *Builder {
	b.files = append(b.files, fileSource{path: relPath, home: true})
	return b
}

// WithEnv sets the environment snapshot; by default os.Environ() is used
func (b *Builder) WithEnv(env map[string]string) *Builder {
	b.env = env
	return b
}

// WithEnviron sets the environment from an os.Environ style list
func (b *Builder) WithEnviron(environ []string) *Builder {
	b.env = EnvMap(environ)
	return b
}

// WithArgs sets the command-line arguments, excluding the program name
func (b *Builder) WithArgs(args []string) *Builder {
	b.args = args
	return b
}

// WithLogger sets the logger receiving debug traces
func (b *Builder) WithLogger(logger *slog.Logger) *Builder {
	b.opts = append(b.opts, WithLogger(logger))
	return b
}

// WithHomeDir overrides home directory resolution
func (b *Builder) WithHomeDir(fn func() (string, error)) *Builder {
	b.opts = append(b.opts, WithHomeDir(fn))
	return b
}

// WithValidator adds a validation function that runs at the end of the build process
// Multiple validators can be added and are executed in the order they are added
func (b *Builder) WithValidator(fn ValidatorFunc) *Builder {
	if fn != nil {
		b.validators = append(b.validators, fn)
	}
	return b
}

// Build creates the Registry, loads all sources and runs the validators
func (b *Builder) Build() (*Registry, error) {
	if b.err != nil {
		return nil, b.err
	}

	reg := New(b.opts...)
	for _, f := range b.flags {
		if err := reg.Add(f); err != nil {
			return nil, err
		}
	}

	env := b.env
	if env == nil {
		env = EnvMap(os.Environ())
	}

	// Files are applied in the order their With* calls were made
	for _, src := range b.files {
		switch {
		case src.discovery != nil:
			path, found, err := discoverWithRegistry(reg, *src.discovery, env, b.args)
			if err != nil {
				return nil, err
			}
			if found {
				reg.AddConfigFile(path)
			}
		case src.home:
			if err := reg.AddHomeConfigFile(src.path); err != nil {
				return nil, err
			}
		default:
			reg.AddConfigFile(src.path)
		}
	}

	if err := reg.LoadFiles(env, b.args); err != nil {
		return nil, err
	}

	resolved := reg.Resolved()
	var validationErrs []error
	for _, validator := range b.validators {
		if err := validator(resolved); err != nil {
			validationErrs = append(validationErrs, err)
		}
	}
	if err := errors.Join(validationErrs...); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return reg, nil
}

// MustBuild is like Build but panics on error
func (b *Builder) MustBuild() *Registry {
	reg, err := b.Build()
	if err != nil {
		panic(fmt.Sprintf("config build failed: %v", err))
	}
	return reg
}

// BuildAndScan builds and decodes the final configuration into the provided target struct pointer
func (b *Builder) BuildAndScan(target any) (*Registry, error) {
	reg, err := b.Build()
	if err != nil {
		return nil, err
	}

	if err := reg.Scan(target); err != nil {
		return nil, fmt.Errorf("failed to scan final config into target: %w", err)
	}
	return reg, nil
}
