package main

import (
	"errors"
	"fmt"
)

var (
	// errNoLocaleFiles means the locales directory holds nothing to check.
	errNoLocaleFiles = errors.New("no locale files found")
	// errChecksFailed is returned once a failing report has been printed.
	errChecksFailed = errors.New("i18n checks failed")
)

// parseError reports a locale file whose contents are not a valid document.
type parseError struct {
	Path string
	Err  error
}

func (e *parseError) Error() string {
	return fmt.Sprintf("parsing %s: %v", e.Path, e.Err)
}

func (e *parseError) Unwrap() error { return e.Err }

// missingFileError reports a locale file that disappeared after it was listed.
type missingFileError struct {
	Path string
	Err  error
}

func (e *missingFileError) Error() string {
	return fmt.Sprintf("locale file %s not found", e.Path)
}

func (e *missingFileError) Unwrap() error { return e.Err }
