// i18n-check compares the translation keys used in source code with the
// keys declared in locale files.
//
// Usage:
//
//	i18n-check [global flags] [subcommand]
//
// Without a subcommand it runs "check", which exits with status 1 when a
// locale file lacks a key used in code, cannot be parsed, or when there
// are no locale files at all. Run "i18n-check --help" for the flags.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/urfave/cli/v2"
)

func newApp(stdout, stderr io.Writer) *cli.App {
	return &cli.App{
		Name:  "i18n-check",
		Usage: "Report translation keys missing from or unused in locale files",
		Flags: globalFlags(),
		Commands: []*cli.Command{
			checkCommand(),
			missingCommand(),
			extraCommand(),
			keysCommand(),
			referencesCommand(),
			dynamicCommand(),
		},
		Before: func(c *cli.Context) error {
			if c.Bool("no-color") {
				color.NoColor = true
			}
			return setupLogging(c.Bool("verbose"))
		},
		Action:    runCheck,
		Writer:    stdout,
		ErrWriter: stderr,
	}
}

func main() {
	if err := newApp(os.Stdout, os.Stderr).Run(os.Args); err != nil {
		if !errors.Is(err, errChecksFailed) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}
