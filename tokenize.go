// FILE: lixenwraith/cliconf/tokenize.go
package cliconf

import "strings"

// Assignment is one flag reference found on the command line.
type Assignment struct {
	Flag  *Flag
	Raw   string // value text; "true" for a bare boolean switch
	Token string // argument that named the flag, e.g. "--name" or "-n"
}

// Tokenize splits args into flag assignments and positional arguments
// without changing the registry.
//
// Recognized forms:
//   - "--name value", "--name=value", "-n value", "-n=value"
//   - boolean switches "--name" and "-n", which never consume the next
//     argument; "--name=false" sets a boolean explicitly
//   - bundled shorthands "-abc", where all but the last must be booleans
//   - "--" ends flag parsing; every later argument is positional
//   - a lone "-" is positional
//
// A non-boolean flag takes the next argument as its value even if it starts
// with '-', so "--offset -3" works. Unregistered "--x" or "-x" fail with
// ErrUnknownFlag.
func (r *Registry) Tokenize(args []string) ([]Assignment, []string, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	return r.tokenize(args)
}

// tokenize expects the caller to hold the mutex.
func (r *Registry) tokenize(args []string) ([]Assignment, []string, error) {
	var (
		assignments []Assignment
		positionals = []string{}
		terminated  bool
	)

	for i := 0; i < len(args); i++ {
		arg := args[i]

		switch {
		case terminated:
			positionals = append(positionals, arg)

		case arg == "--":
			terminated = true

		case arg == "-" || !strings.HasPrefix(arg, "-"):
			positionals = append(positionals, arg)

		case strings.HasPrefix(arg, "--"):
			name, inline, hasInline := strings.Cut(arg[2:], "=")
			idx, ok := r.lookup(name)
			if !ok {
				return nil, nil, &ConfigError{Flag: "--" + name, Source: SourceCLI, Err: ErrUnknownFlag}
			}
			a, consumed, err := takeValue(r.flags[idx], "--"+name, inline, hasInline, args, i)
			if err != nil {
				return nil, nil, err
			}
			assignments = append(assignments, a)
			i += consumed

		default:
			shorts, inline, hasInline := strings.Cut(arg[1:], "=")
			bundle := []rune(shorts)
			if len(bundle) == 0 {
				return nil, nil, &ConfigError{Flag: arg, Source: SourceCLI, Err: ErrUnknownFlag}
			}
			for j, c := range bundle {
				token := "-" + string(c)
				idx, ok := r.lookupShorthand(c)
				if !ok {
					return nil, nil, &ConfigError{Flag: token, Source: SourceCLI, Err: ErrUnknownFlag}
				}
				f := r.flags[idx]

				if j < len(bundle)-1 {
					// Only switches may appear before the end of a bundle
					if f.Kind() != KindBool {
						return nil, nil, &ConfigError{Flag: f.name, Source: SourceCLI, Location: token, Err: ErrMissingFlagValue}
					}
					assignments = append(assignments, Assignment{Flag: f, Raw: "true", Token: token})
					continue
				}

				a, consumed, err := takeValue(f, token, inline, hasInline, args, i)
				if err != nil {
					return nil, nil, err
				}
				assignments = append(assignments, a)
				i += consumed
			}
		}
	}

	return assignments, positionals, nil
}

// takeValue resolves the value text of the flag referenced by args[i] and
// reports how many following arguments it consumed.
func takeValue(f *Flag, token, inline string, hasInline bool, args []string, i int) (Assignment, int, error) {
	a := Assignment{Flag: f, Token: token}
	switch {
	case hasInline:
		a.Raw = inline
		return a, 0, nil
	case f.Kind() == KindBool:
		a.Raw = "true"
		return a, 0, nil
	case i+1 < len(args):
		a.Raw = args[i+1]
		return a, 1, nil
	default:
		return a, 0, &ConfigError{Flag: f.name, Source: SourceCLI, Location: token, Err: ErrMissingFlagValue}
	}
}
