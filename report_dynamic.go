package main

import (
	"fmt"
	"io"

	"github.com/urfave/cli/v2"
)

func dynamicCommand() *cli.Command {
	return &cli.Command{
		Name:   "dynamic",
		Usage:  "t() call sites whose key is not a plain literal (invisible to check)",
		Action: runDynamic,
	}
}

func runDynamic(c *cli.Context) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}
	return reportDynamic(cfg, c.App.Writer)
}

type dynamicReportEntry struct {
	Call   string `json:"call"`
	Source string `json:"source"`
}

// reportDynamic lists the call sites the key scanner cannot resolve, such
// as t(key) or t('prefix.' + name). They never affect the check verdict.
func reportDynamic(cfg *config, w io.Writer) error {
	scan, err := extractKeys(cfg.scanOptions())
	if err != nil {
		return err
	}
	logAnomalies(scan.Anomalies)

	entries := make([]dynamicReportEntry, 0, len(scan.Dynamic))
	for _, d := range scan.Dynamic {
		entries = append(entries, dynamicReportEntry{Call: d.Call, Source: d.Ref.String()})
	}

	if cfg.Format == "json" {
		return writeJSON(w, entries)
	}

	if len(entries) == 0 {
		fmt.Fprintln(w, "No dynamic t() calls found.")
		return nil
	}

	fmt.Fprintf(w, "Found %d dynamic t() calls:\n\n", len(entries))
	for _, e := range entries {
		fmt.Fprintf(w, "  %s\n", e.Call)
		fmt.Fprintf(w, "    source: %s\n", e.Source)
	}
	return nil
}
