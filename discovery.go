// FILE: lixenwraith/cliconf/discovery.go
package cliconf

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// FileDiscoveryOptions configures automatic config file discovery
type FileDiscoveryOptions struct {
	// Base name of config file (without extension)
	Name string

	// Extensions to try (in order)
	Extensions []string

	// Custom search paths (in addition to defaults)
	Paths []string

	// Environment variable to check for explicit path
	EnvVar string

	// Name of a registered String flag holding an explicit path (e.g., "config").
	// Only consulted by Builder; ignored when no such flag is registered.
	CLIFlag string

	// Whether to search in XDG config directories
	UseXDG bool

	// Whether to search in current directory
	UseCurrentDir bool
}

// DefaultDiscoveryOptions returns sensible defaults
func DefaultDiscoveryOptions(appName string) FileDiscoveryOptions {
	return FileDiscoveryOptions{
		Name:          appName,
		Extensions:    []string{".json", ".toml", ".yaml", ".yml"},
		EnvVar:        EnvName(appName) + "_CONFIG",
		CLIFlag:       "config",
		UseXDG:        true,
		UseCurrentDir: true,
	}
}

// DiscoverConfigFile returns the first existing config file described by opts,
// reading the process environment. An explicit path in opts.EnvVar wins over
// the search. The second result is false when nothing was found, which is not
// an error.
func DiscoverConfigFile(opts FileDiscoveryOptions) (string, bool) {
	return discoverConfigFile(opts, os.Getenv)
}

// WithFileDiscovery adds the config file found by discovery at this position
// in the file order. Discovery runs in Build: a path given on the command line
// through opts.CLIFlag wins, then opts.EnvVar in the builder's environment,
// then the search paths.
func (b *Builder) WithFileDiscovery(opts FileDiscoveryOptions) *Builder {
	b.files = append(b.files, fileSource{discovery: &opts})
	return b
}

// discoverWithRegistry resolves discovery for Builder using its environment
// snapshot and the registered CLIFlag.
func discoverWithRegistry(reg *Registry, opts FileDiscoveryOptions, env map[string]string, args []string) (string, bool, error) {
	path, found, err := cliConfigPath(reg, opts.CLIFlag, args)
	if err != nil || found {
		return path, found, err
	}

	path, found = discoverConfigFile(opts, func(key string) string { return env[key] })
	return path, found, nil
}

// cliConfigPath returns the last value given on the command line for the
// named flag. An unregistered flag yields nothing.
func cliConfigPath(reg *Registry, name string, args []string) (string, bool, error) {
	if name == "" {
		return "", false, nil
	}
	f, err := reg.Lookup(name)
	if err != nil {
		return "", false, nil
	}
	if f.Kind() != KindString {
		return "", false, fmt.Errorf("%w: config path flag %q is %s, not %s", ErrKindMismatch, name, f.Kind(), KindString)
	}

	assignments, _, err := reg.Tokenize(args)
	if err != nil {
		return "", false, err
	}

	var path string
	for _, a := range assignments {
		if a.Flag == f {
			path = a.Raw
		}
	}
	return path, path != "", nil
}

func discoverConfigFile(opts FileDiscoveryOptions, getenv func(string) string) (string, bool) {
	if opts.EnvVar != "" {
		if path := getenv(opts.EnvVar); path != "" {
			return path, true
		}
	}

	// Build search paths
	var searchPaths []string
	searchPaths = append(searchPaths, opts.Paths...)
	if opts.UseCurrentDir {
		if cwd, err := os.Getwd(); err == nil {
			searchPaths = append(searchPaths, cwd)
		}
	}
	if opts.UseXDG {
		searchPaths = append(searchPaths, getXDGConfigPaths(opts.Name, getenv)...)
	}

	for _, dir := range searchPaths {
		for _, ext := range opts.Extensions {
			path := filepath.Join(dir, opts.Name+ext)
			if stat, err := os.Stat(path); err == nil && !stat.IsDir() {
				return path, true
			}
		}
	}

	return "", false
}

// getXDGConfigPaths returns XDG-compliant config search paths
func getXDGConfigPaths(appName string, getenv func(string) string) []string {
	var paths []string

	// XDG_CONFIG_HOME
	if xdgHome := getenv("XDG_CONFIG_HOME"); xdgHome != "" {
		paths = append(paths, filepath.Join(xdgHome, appName))
	} else if home := getenv("HOME"); home != "" {
		paths = append(paths, filepath.Join(home, ".config", appName))
	}

	// XDG_CONFIG_DIRS
	if xdgDirs := getenv("XDG_CONFIG_DIRS"); xdgDirs != "" {
		for _, dir := range filepath.SplitList(xdgDirs) {
			paths = append(paths, filepath.Join(dir, appName))
		}
	} else {
		paths = append(paths,
			filepath.Join("/etc/xdg", appName),
			filepath.Join("/etc", strings.ToLower(appName)),
		)
	}

	return paths
}
