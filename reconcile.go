package main

import (
	"path/filepath"
)

// comparisonResult is the outcome of checking one locale file against the
// keys used in code. Missing and Extra are sorted.
type comparisonResult struct {
	Locale  string
	File    string
	Missing []string
	Extra   []string
	Err     error
}

// failed reports whether the result fails the run. Extra keys only warn.
func (r comparisonResult) failed() bool {
	return len(r.Missing) > 0 || r.Err != nil
}

// compareKeys returns the keys used in code but not declared, and the keys
// declared but not used.
func compareKeys(code, declared keySet) (missing, extra []string) {
	return code.minus(declared), declared.minus(code)
}

// reconcile checks each locale file in order. A file that cannot be read
// or parsed is reported as missing every code key.
func reconcile(code keySet, files []localeFile, ignore keyFilter) []comparisonResult {
	code = ignore.apply(code)
	results := make([]comparisonResult, 0, len(files))
	for _, f := range files {
		results = append(results, checkLocale(code, f, ignore))
	}
	return results
}

func checkLocale(code keySet, f localeFile, ignore keyFilter) comparisonResult {
	res := comparisonResult{Locale: f.Name, File: filepath.Base(f.Path)}
	declared, err := loadLocaleKeys(f.Path)
	if err != nil {
		res.Err = err
		res.Missing = code.sorted()
		res.Extra = []string{}
		return res
	}
	res.Missing, res.Extra = compareKeys(code, ignore.apply(declared))
	log.Debugw("checked locale", "locale", f.Name, "declared", len(declared), "missing", len(res.Missing), "extra", len(res.Extra))
	return res
}

// passed is the verdict over all results.
func passed(results []comparisonResult) bool {
	for _, r := range results {
		if r.failed() {
			return false
		}
	}
	return true
}

// checkRun is one full reconciliation: the code keys and, unless there were
// none, a result per locale file.
type checkRun struct {
	CodeKeys keySet
	Results  []comparisonResult
}

func (r *checkRun) passed() bool {
	return passed(r.Results)
}

// runChecks locates the locale files, extracts the code keys and compares
// them. Having no locale files is an error even when no keys are used.
// Having no code keys skips the comparison and passes.
func runChecks(cfg *config) (*checkRun, error) {
	files, err := findLocaleFiles(cfg.LocalesDir)
	if err != nil {
		return nil, err
	}
	scan, err := extractKeys(cfg.scanOptions())
	if err != nil {
		return nil, err
	}
	logAnomalies(scan.Anomalies)
	log.Debugw("scanned sources", "dir", cfg.CodeDir, "files", scan.Files, "keys", len(scan.Keys))

	run := &checkRun{CodeKeys: cfg.Ignore.apply(scan.Keys)}
	if len(run.CodeKeys) == 0 {
		return run, nil
	}
	run.Results = reconcile(run.CodeKeys, files, cfg.Ignore)
	return run, nil
}
