package main

import (
	"fmt"
	"io"

	"github.com/urfave/cli/v2"
)

func referencesCommand() *cli.Command {
	return &cli.Command{
		Name:   "references",
		Usage:  "Where each key is used in source code (file:line)",
		Action: runReferences,
	}
}

func runReferences(c *cli.Context) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}
	return reportReferences(cfg, c.App.Writer)
}

func reportReferences(cfg *config, w io.Writer) error {
	scan, err := extractKeys(cfg.scanOptions())
	if err != nil {
		return err
	}
	logAnomalies(scan.Anomalies)

	refs := make(map[string][]keyReference, len(scan.References))
	for k, locations := range scan.References {
		if !cfg.Ignore.ignored(k) {
			refs[k] = locations
		}
	}

	if cfg.Format == "json" {
		return writeJSON(w, refs)
	}

	for _, k := range sortedKeys(refs) {
		fmt.Fprintf(w, "%s:\n", k)
		for _, loc := range refs[k] {
			fmt.Fprintf(w, "  %s\n", loc)
		}
	}
	return nil
}
