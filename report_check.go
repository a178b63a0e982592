package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/urfave/cli/v2"
)

func checkCommand() *cli.Command {
	return &cli.Command{
		Name:   "check",
		Usage:  "Fail when a locale file lacks a key used in code (default)",
		Action: runCheck,
	}
}

func runCheck(c *cli.Context) error {
	if c.Args().Present() {
		return fmt.Errorf("unknown subcommand: %s", c.Args().First())
	}
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}
	return reportCheck(cfg, c.App.Writer)
}

// reportCheck runs the full reconciliation and prints the report. It
// returns errChecksFailed when the verdict is a failure.
func reportCheck(cfg *config, w io.Writer) error {
	if cfg.Format == "text" {
		printBanner(w)
	}

	run, err := runChecks(cfg)
	if errors.Is(err, errNoLocaleFiles) {
		if cfg.Format == "json" {
			if err := writeJSON(w, checkReport{Error: err.Error(), Locales: []localeReport{}}); err != nil {
				return err
			}
		} else {
			printConfigError(w, err)
			printVerdict(w, false)
		}
		return errChecksFailed
	}
	if err != nil {
		return err
	}

	if cfg.Format == "json" {
		if err := writeJSON(w, newCheckReport(run)); err != nil {
			return err
		}
	} else {
		if len(run.CodeKeys) == 0 {
			printNoCodeKeys(w, cfg.CodeDir)
			return nil
		}
		for _, r := range run.Results {
			printLocaleResult(w, r)
		}
		printVerdict(w, run.passed())
	}

	if !run.passed() {
		return errChecksFailed
	}
	return nil
}
