// FILE: lixenwraith/cliconf/source.go
package cliconf

// Source identifies the precedence layer a resolved value came from.
// Layers are applied in the order default, file, env, cli; later layers win.
type Source string

const (
	// SourceDefault represents the flag's registered default value
	SourceDefault Source = "default"
	// SourceFile represents values loaded from a configuration file
	SourceFile Source = "file"
	// SourceEnv represents values loaded from environment variables
	SourceEnv Source = "env"
	// SourceCLI represents values loaded from command-line arguments
	SourceCLI Source = "cli"
)

// Precedence lists the layers from lowest to highest priority.
var Precedence = []Source{SourceDefault, SourceFile, SourceEnv, SourceCLI}
