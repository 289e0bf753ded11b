// FILE: lixenwraith/cliconf/cmd/greet/main.go
// Greeter demonstrating file, environment and command-line configuration
package main

import (
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/lixenwraith/cliconf"
)

// Options mirrors the registered flags for Scan
type Options struct {
	Spanish    bool
	Name       string
	Repeat     int
	ExtraNames []string
	Verbose    bool
	Config     string
}

func main() {
	builder := cliconf.NewBuilder().
		WithFlag("spanish", cliconf.Bool(false),
			cliconf.WithDescription("Greet in Spanish")).
		WithFlag("name", cliconf.String("world"),
			cliconf.WithShorthand('n'),
			cliconf.WithDescription("The person we want to greet")).
		WithFlag("repeat", cliconf.Int64(1),
			cliconf.WithShorthand('r'),
			cliconf.WithDescription("How many times to greet")).
		WithFlag("extra-names", cliconf.StringArray(),
			cliconf.WithShorthand('N'),
			cliconf.WithDelimiter(","),
			cliconf.WithDescription("More people to greet")).
		WithFlag("verbose", cliconf.Bool(false),
			cliconf.WithShorthand('v'),
			cliconf.WithDescription("Print where each value came from")).
		WithFlag("config", cliconf.String(""),
			cliconf.WithShorthand('c'),
			cliconf.WithDescription("Config file to use instead of the discovered one")).
		WithHomeConfigFile(".greet.json").
		WithFileDiscovery(cliconf.DefaultDiscoveryOptions("greet")).
		WithValidator(func(c *cliconf.Resolved) error {
			if c.Int64("repeat") < 0 {
				return fmt.Errorf("repeat must not be negative, got %d", c.Int64("repeat"))
			}
			return nil
		})

	if os.Getenv("GREET_DEBUG") != "" {
		builder.WithLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	var opts Options
	reg, err := builder.BuildAndScan(&opts)
	if err != nil {
		log.Fatal("Failed to load config: ", err)
	}

	if opts.Verbose {
		fmt.Fprint(os.Stderr, reg.Resolved().Debug())
	}

	and, hello := "and", "Hello"
	if opts.Spanish {
		and, hello = "y", "Hola"
	}

	for i := 0; i < opts.Repeat; i++ {
		fmt.Printf("%s, %s!\n", hello, opts.Name)
		for _, name := range opts.ExtraNames {
			fmt.Printf(" %s %s, %s!\n", and, hello, name)
		}
	}

	for _, arg := range reg.Positionals() {
		fmt.Printf("(ignored argument %q)\n", arg)
	}
}
