package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/fatih/color"
)

var (
	errorColor   = color.New(color.FgRed, color.Bold)
	warnColor    = color.New(color.FgYellow)
	successColor = color.New(color.FgGreen, color.Bold)
)

// writeJSON writes v as indented JSON.
func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// outputStrings prints a list of strings in text or JSON format.
func outputStrings(w io.Writer, items []string, format, label string) error {
	if format == "json" {
		if items == nil {
			items = []string{}
		}
		return writeJSON(w, items)
	}

	if len(items) == 0 {
		fmt.Fprintf(w, "No %s found.\n", label)
		return nil
	}

	fmt.Fprintf(w, "Found %d %s:\n", len(items), label)
	for _, item := range items {
		fmt.Fprintf(w, "  %s\n", item)
	}
	return nil
}

func printBanner(w io.Writer) {
	fmt.Fprintln(w, "Checking i18n keys...")
}

func printNoCodeKeys(w io.Writer, dir string) {
	warnColor.Fprintf(w, "! No i18n keys found in %s. Nothing to validate; check the --code-dir and --ext settings.\n", dir)
}

func printConfigError(w io.Writer, err error) {
	errorColor.Fprintf(w, "✗ ERROR: %v\n", err)
}

// printLocaleResult prints the section of the report for one locale file.
func printLocaleResult(w io.Writer, r comparisonResult) {
	fmt.Fprintf(w, "  - Checking '%s'...\n", r.Locale)
	if r.Err != nil {
		errorColor.Fprintf(w, "    ✗ ERROR: '%s' could not be loaded: %v\n", r.File, r.Err)
		return
	}
	if len(r.Missing) > 0 {
		errorColor.Fprintf(w, "    ✗ Missing keys in '%s':\n", r.File)
		for _, k := range r.Missing {
			fmt.Fprintf(w, "      - %s\n", k)
		}
	}
	if len(r.Extra) > 0 {
		warnColor.Fprintf(w, "    ! Extra keys in '%s' (possibly stale or unused):\n", r.File)
		for _, k := range r.Extra {
			fmt.Fprintf(w, "      - %s\n", k)
		}
	}
}

func printVerdict(w io.Writer, ok bool) {
	fmt.Fprintln(w)
	if ok {
		successColor.Fprintln(w, "✓ All i18n keys are present in every locale file.")
		return
	}
	errorColor.Fprintln(w, "✗ i18n validation failed. Fix the keys before committing.")
}

// checkReport is the JSON form of a check run.
type checkReport struct {
	Passed   bool           `json:"passed"`
	CodeKeys int            `json:"codeKeys"`
	Error    string         `json:"error,omitempty"`
	Locales  []localeReport `json:"locales"`
}

type localeReport struct {
	Locale  string   `json:"locale"`
	File    string   `json:"file"`
	Missing []string `json:"missing"`
	Extra   []string `json:"extra"`
	Error   string   `json:"error,omitempty"`
}

func newCheckReport(run *checkRun) checkReport {
	report := checkReport{
		Passed:   run.passed(),
		CodeKeys: len(run.CodeKeys),
		Locales:  make([]localeReport, 0, len(run.Results)),
	}
	for _, r := range run.Results {
		lr := localeReport{Locale: r.Locale, File: r.File, Missing: r.Missing, Extra: r.Extra}
		if r.Err != nil {
			lr.Error = r.Err.Error()
		}
		report.Locales = append(report.Locales, lr)
	}
	return report
}
