package main

import (
	logging "github.com/ipfs/go-log/v2"
)

const logName = "i18n-check"

var log = logging.Logger(logName)

// setupLogging sets the level of the i18n-check logger. Diagnostics go to
// stderr so they never mix with the report on stdout.
func setupLogging(verbose bool) error {
	level := "warn"
	if verbose {
		level = "debug"
	}
	return logging.SetLogLevel(logName, level)
}

// logAnomalies reports source files the scanner had to skip.
func logAnomalies(anomalies []scanAnomaly) {
	for _, a := range anomalies {
		log.Warnw("skipped source file", "file", a.File, "error", a.Err)
	}
}
