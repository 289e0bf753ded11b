// FILE: lixenwraith/cliconf/registry.go
package cliconf

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
)

// Registry is an ordered collection of flags together with the configuration
// file locations to read and the values resolved by Load.
//
// Registration happens once at program setup. Load then resolves every flag
// exactly once; afterwards the registry is meant to be read only.
type Registry struct {
	flags     []*Flag
	byName    map[string]int
	byShort   map[rune]int
	files     []string
	values    []Value  // resolved value per flag, indexed like flags
	sources   []Source // layer that produced values[i]
	positions []string
	loaded    bool

	logger  *slog.Logger
	homeDir func() (string, error)

	mutex sync.RWMutex // Protects concurrent access
}

// Option configures a Registry.
type Option func(*Registry)

// WithLogger routes debug traces of the resolution process to logger.
// The registry is silent by default and never logs errors itself.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Registry) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// WithHomeDir replaces the home directory lookup used by AddHomeConfigFile.
func WithHomeDir(fn func() (string, error)) Option {
	return func(r *Registry) {
		if fn != nil {
			r.homeDir = fn
		}
	}
}

// New creates an empty Registry.
func New(opts ...Option) *Registry {
	r := &Registry{
		byName:  make(map[string]int),
		byShort: make(map[rune]int),
		logger:  slog.New(slog.DiscardHandler),
		homeDir: os.UserHomeDir,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Add registers a flag. It fails with ErrDuplicateFlag if the flag's name or
// shorthand is already taken.
func (r *Registry) Add(f *Flag) error {
	if f == nil {
		return fmt.Errorf("%w: nil flag", ErrInvalidFlag)
	}

	r.mutex.Lock()
	defer r.mutex.Unlock()

	if _, exists := r.byName[f.name]; exists {
		return fmt.Errorf("%w: name %q already registered", ErrDuplicateFlag, f.name)
	}
	if f.shorthand != 0 {
		if idx, exists := r.byShort[f.shorthand]; exists {
			return fmt.Errorf("%w: shorthand %q already used by flag %q", ErrDuplicateFlag, f.shorthand, r.flags[idx].name)
		}
	}

	idx := len(r.flags)
	r.flags = append(r.flags, f)
	r.byName[f.name] = idx
	if f.shorthand != 0 {
		r.byShort[f.shorthand] = idx
	}
	r.values = append(r.values, f.defaultValue)
	r.sources = append(r.sources, SourceDefault)

	return nil
}

// MustAdd is like Add but panics on error.
func (r *Registry) MustAdd(flags ...*Flag) *Registry {
	for _, f := range flags {
		if err := r.Add(f); err != nil {
			panic(fmt.Sprintf("cliconf: %v", err))
		}
	}
	return r
}

// AddConfigFile appends a configuration file location. Files are applied
// in the order they were added.
func (r *Registry) AddConfigFile(path string) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	r.files = append(r.files, path)
}

// AddHomeConfigFile appends a configuration file location relative to the
// user's home directory.
func (r *Registry) AddHomeConfigFile(relPath string) error {
	home, err := r.homeDir()
	if err != nil {
		return fmt.Errorf("%w: cannot resolve %q: %v", ErrNoHomeDir, relPath, err)
	}
	if home == "" {
		return fmt.Errorf("%w: cannot resolve %q: empty home directory", ErrNoHomeDir, relPath)
	}
	r.AddConfigFile(filepath.Join(home, relPath))
	return nil
}

// ConfigFiles returns the registered configuration file locations in order.
func (r *Registry) ConfigFiles() []string {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	return cloneSlice(r.files)
}

// Flags returns the registered flags in registration order.
func (r *Registry) Flags() []*Flag {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	return cloneSlice(r.flags)
}

// Lookup returns the flag registered under name.
func (r *Registry) Lookup(name string) (*Flag, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	idx, ok := r.byName[name]
	if !ok {
		return nil, fmt.Errorf("%w: --%s", ErrUnknownFlag, name)
	}
	return r.flags[idx], nil
}

// LookupShorthand returns the flag registered with shorthand c.
func (r *Registry) LookupShorthand(c rune) (*Flag, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	idx, ok := r.byShort[c]
	if !ok {
		return nil, fmt.Errorf("%w: -%c", ErrUnknownFlag, c)
	}
	return r.flags[idx], nil
}

// Value returns the current value of the named flag: its default before Load,
// its resolved value after.
func (r *Registry) Value(name string) (Value, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	idx, ok := r.byName[name]
	if !ok {
		return Value{}, fmt.Errorf("%w: --%s", ErrUnknownFlag, name)
	}
	return r.values[idx], nil
}

// Source reports which layer produced the named flag's current value.
func (r *Registry) Source(name string) (Source, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	idx, ok := r.byName[name]
	if !ok {
		return "", fmt.Errorf("%w: --%s", ErrUnknownFlag, name)
	}
	return r.sources[idx], nil
}

// Positionals returns the arguments that were neither flags nor flag values.
func (r *Registry) Positionals() []string {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	return cloneSlice(r.positions)
}

// Loaded reports whether the last Load call completed successfully.
func (r *Registry) Loaded() bool {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	return r.loaded
}

// Resolved returns an immutable snapshot of the current values.
func (r *Registry) Resolved() *Resolved {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	res := &Resolved{
		order:       make([]string, len(r.flags)),
		values:      make(map[string]Value, len(r.flags)),
		sources:     make(map[string]Source, len(r.flags)),
		positionals: cloneSlice(r.positions),
	}
	for i, f := range r.flags {
		res.order[i] = f.name
		res.values[f.name] = r.values[i]
		res.sources[f.name] = r.sources[i]
	}
	return res
}

// lookup and lookupShorthand expect the caller to hold the mutex.
func (r *Registry) lookup(name string) (int, bool) {
	idx, ok := r.byName[name]
	return idx, ok
}

func (r *Registry) lookupShorthand(c rune) (int, bool) {
	idx, ok := r.byShort[c]
	return idx, ok
}
