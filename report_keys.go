package main

import (
	"io"

	"github.com/urfave/cli/v2"
)

func keysCommand() *cli.Command {
	return &cli.Command{
		Name:   "keys",
		Usage:  "Translation keys referenced in source code",
		Action: runKeys,
	}
}

func runKeys(c *cli.Context) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}
	return reportKeys(cfg, c.App.Writer)
}

func reportKeys(cfg *config, w io.Writer) error {
	scan, err := extractKeys(cfg.scanOptions())
	if err != nil {
		return err
	}
	logAnomalies(scan.Anomalies)
	return outputStrings(w, cfg.Ignore.apply(scan.Keys).sorted(), cfg.Format, "translation keys")
}
