package main

import (
	"io"

	"github.com/urfave/cli/v2"
)

func extraCommand() *cli.Command {
	return &cli.Command{
		Name:   "extra",
		Usage:  "Keys declared in each locale file but not used in code",
		Action: runExtra,
	}
}

func runExtra(c *cli.Context) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}
	return reportExtra(cfg, c.App.Writer)
}

// reportExtra lists the keys each locale file declares without any use in
// code. Extra keys never fail the run.
func reportExtra(cfg *config, w io.Writer) error {
	run, err := runChecks(cfg)
	if err != nil {
		return err
	}
	return reportPerLocale(cfg, run, w, "extra keys", func(r comparisonResult) []string {
		return r.Extra
	})
}
