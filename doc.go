// File: lixenwraith/cliconf/doc.go

// Package cliconf resolves command-line program configuration from
// configuration files, environment variables and command-line arguments into
// one set of typed flag values.
//
// Features:
//   - Nine closed value kinds: bool, string, int64, int128, float64 and arrays of the last four scalars
//   - Fixed precedence with per-flag kind coercion
//   - Long names (--name) and single-character shorthands (-n)
//   - Delimiter-based array decoding for environment and argument values
//   - Positional argument extraction with a "--" terminator
//   - JSON (with comments), TOML and YAML configuration files
//   - Source tracking to see where values originated
//   - Decoding of resolved values into a tagged struct
//
// Quick Start:
//
//	reg := cliconf.New()
//	reg.MustAdd(
//	    cliconf.MustFlag("spanish", cliconf.Bool(false)),
//	    cliconf.MustFlag("name", cliconf.String("world"), cliconf.WithShorthand('n')),
//	    cliconf.MustFlag("repeat", cliconf.Int64(1), cliconf.WithShorthand('r')),
//	    cliconf.MustFlag("extra-names", cliconf.StringArray(), cliconf.WithShorthand('N')),
//	)
//	reg.AddConfigFile("greet.json")
//
//	if err := reg.LoadFiles(cliconf.EnvMap(os.Environ()), os.Args[1:]); err != nil {
//	    log.Fatal(err)
//	}
//
//	name := reg.String("name")
//	repeat := reg.Int64("repeat")
//
// Precedence (highest to lowest):
//  1. Command-line arguments (--name=john, -n john)
//  2. Environment variables (NAME=john; "extra-names" reads EXTRA_NAMES)
//  3. Configuration files, later files overriding earlier ones
//  4. Default values
//
// Registry.Load is the pure core: it takes already decoded file layers, an
// environment mapping and the argument list, and performs no I/O. LoadFiles,
// Builder and Quick add the file and process plumbing around it.
//
// Array flags split text values on their delimiter (default ","). On the
// command line the first occurrence of an array flag replaces lower layers
// and repeated occurrences append: "-N aria -N scott" yields [aria scott].
//
// Typed accessors such as Registry.String panic when used against a flag of
// a different kind; that is a programming error, not a user error.
package cliconf
