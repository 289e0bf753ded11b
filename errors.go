// FILE: lixenwraith/cliconf/errors.go
package cliconf

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidFlag is returned when a flag name or shorthand does not match the allowed grammar.
	ErrInvalidFlag = errors.New("invalid flag")
	// ErrDuplicateFlag is returned when a flag's name or shorthand is already registered.
	ErrDuplicateFlag = errors.New("duplicate flag")
	// ErrUnknownFlag is returned when a name, shorthand or argument refers to no registered flag.
	ErrUnknownFlag = errors.New("unknown flag")
	// ErrParse is returned when raw text does not match the grammar of the flag's kind.
	ErrParse = errors.New("parse error")
	// ErrMissingFlagValue is returned when a non-boolean flag on the command line has no value.
	ErrMissingFlagValue = errors.New("missing flag value")
	// ErrKindMismatch is raised by typed accessors used against a flag of another kind.
	ErrKindMismatch = errors.New("kind mismatch")
	// ErrConfigNotFound is returned when a configuration file does not exist.
	ErrConfigNotFound = errors.New("configuration file not found")
	// ErrNoHomeDir is returned when a home-relative config file cannot be resolved.
	ErrNoHomeDir = errors.New("home directory unavailable")
	// ErrUnsupportedFormat is returned for configuration files of unknown format.
	ErrUnsupportedFormat = errors.New("unsupported configuration format")
)

// ConfigError describes a failure while applying one source layer during Load.
// It unwraps to one of the package sentinels, so errors.Is can be used on it.
type ConfigError struct {
	Flag     string // flag name, or the offending token for unknown flags
	Source   Source // layer being applied
	Location string // config file path for SourceFile, env var name for SourceEnv
	Raw      string // offending raw text, if any
	Err      error
}

func (e *ConfigError) Error() string {
	switch {
	case e.Location != "" && e.Raw != "":
		return fmt.Sprintf("%s source %q: flag %q with value %q: %v", e.Source, e.Location, e.Flag, e.Raw, e.Err)
	case e.Location != "":
		return fmt.Sprintf("%s source %q: flag %q: %v", e.Source, e.Location, e.Flag, e.Err)
	case e.Raw != "":
		return fmt.Sprintf("%s source: flag %q with value %q: %v", e.Source, e.Flag, e.Raw, e.Err)
	default:
		return fmt.Sprintf("%s source: flag %q: %v", e.Source, e.Flag, e.Err)
	}
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}
