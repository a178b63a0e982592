package main

import (
	"fmt"
	"io"

	"github.com/urfave/cli/v2"
)

func missingCommand() *cli.Command {
	return &cli.Command{
		Name:   "missing",
		Usage:  "Keys used in code but absent from each locale file",
		Action: runMissing,
	}
}

func runMissing(c *cli.Context) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}
	return reportMissing(cfg, c.App.Writer)
}

// reportMissing lists the missing keys of every locale file and fails if
// any locale lacks a key or could not be loaded.
func reportMissing(cfg *config, w io.Writer) error {
	run, err := runChecks(cfg)
	if err != nil {
		return err
	}
	if err := reportPerLocale(cfg, run, w, "missing keys", func(r comparisonResult) []string {
		return r.Missing
	}); err != nil {
		return err
	}
	if !run.passed() {
		return errChecksFailed
	}
	return nil
}

func reportPerLocale(cfg *config, run *checkRun, w io.Writer, label string, pick func(comparisonResult) []string) error {
	if cfg.Format == "json" {
		// Keyed by file name: en.json and en.yaml may sit side by side.
		byFile := make(map[string][]string, len(run.Results))
		for _, r := range run.Results {
			byFile[r.File] = pick(r)
		}
		return writeJSON(w, byFile)
	}

	if len(run.CodeKeys) == 0 {
		printNoCodeKeys(w, cfg.CodeDir)
		return nil
	}
	for _, r := range run.Results {
		if r.Err != nil {
			errorColor.Fprintf(w, "%s: %v\n", r.File, r.Err)
			continue
		}
		if err := outputStrings(w, pick(r), cfg.Format, fmt.Sprintf("%s in %s", label, r.File)); err != nil {
			return err
		}
	}
	return nil
}
