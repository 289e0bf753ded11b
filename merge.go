// FILE: lixenwraith/cliconf/merge.go
package cliconf

import (
	"fmt"
)

// FileLayer is the already-decoded content of one configuration file: a flat
// mapping from flag name to raw value. Values are usually strings; the native
// booleans, numbers and lists produced by JSON, TOML or YAML decoders are
// accepted as well (see CoerceValue).
type FileLayer struct {
	Location string
	Values   map[string]any
}

// Load resolves every flag from its default, the file layers, the environment
// and the command-line arguments, in that order of increasing precedence.
//
// File layers are applied in slice order; keys naming no registered flag and
// keys holding nil are ignored. Each flag is looked up in env under its EnvName. args must not
// include the program name. For array flags, the first occurrence on the
// command line replaces the lower layers and later occurrences append.
//
// Load performs no I/O. On failure it returns a *ConfigError and the registry
// is left partially applied; callers must not use it.
func (r *Registry) Load(files []FileLayer, env map[string]string, args []string) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	r.loaded = false
	r.positions = nil
	for i, f := range r.flags {
		r.values[i] = f.defaultValue
		r.sources[i] = SourceDefault
	}

	for _, layer := range files {
		if err := r.applyFile(layer); err != nil {
			return err
		}
	}

	if err := r.applyEnv(env); err != nil {
		return err
	}

	if err := r.applyArgs(args); err != nil {
		return err
	}

	r.loaded = true
	return nil
}

// applyFile overwrites flags named in one file layer, in registration order.
func (r *Registry) applyFile(layer FileLayer) error {
	applied := 0
	for i, f := range r.flags {
		raw, exists := layer.Values[f.name]
		if !exists || raw == nil {
			// A key with no value ("name:" in YAML, null in JSON) counts as absent
			continue
		}
		v, err := CoerceValue(f.Kind(), raw, f.delimiter)
		if err != nil {
			return &ConfigError{Flag: f.name, Source: SourceFile, Location: layer.Location, Raw: fmt.Sprint(raw), Err: err}
		}
		r.set(i, v, SourceFile)
		applied++
	}

	r.logger.Debug("Applied config file", "path", layer.Location, "flags", applied)
	return nil
}

// applyEnv overwrites flags whose environment variable is present in env.
func (r *Registry) applyEnv(env map[string]string) error {
	applied := 0
	for i, f := range r.flags {
		raw, exists := env[f.envName]
		if !exists {
			continue
		}
		v, err := f.parse(raw)
		if err != nil {
			return &ConfigError{Flag: f.name, Source: SourceEnv, Location: f.envName, Raw: raw, Err: err}
		}
		r.set(i, v, SourceEnv)
		applied++
	}

	r.logger.Debug("Applied environment", "flags", applied)
	return nil
}

// applyArgs tokenizes args and applies each assignment in encounter order.
func (r *Registry) applyArgs(args []string) error {
	assignments, positionals, err := r.tokenize(args)
	if err != nil {
		return err
	}

	appending := make(map[int]bool)
	for _, a := range assignments {
		idx := r.byName[a.Flag.name]
		v, err := a.Flag.parse(a.Raw)
		if err != nil {
			return &ConfigError{Flag: a.Flag.name, Source: SourceCLI, Location: a.Token, Raw: a.Raw, Err: err}
		}
		if a.Flag.Kind().IsArray() && appending[idx] {
			v = appendValue(r.values[idx], v)
		}
		appending[idx] = true
		r.set(idx, v, SourceCLI)
	}
	r.positions = positionals

	r.logger.Debug("Applied command line", "assignments", len(assignments), "positionals", len(positionals))
	return nil
}

// set stores a resolved value. Values always carry the flag's own kind.
func (r *Registry) set(idx int, v Value, source Source) {
	if v.kind != r.flags[idx].Kind() {
		panic(fmt.Sprintf("cliconf: %s value for %s flag %q", v.kind, r.flags[idx].Kind(), r.flags[idx].name))
	}
	r.values[idx] = v
	r.sources[idx] = source
}
