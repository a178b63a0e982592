package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

const (
	defaultCodeDir    = "src"
	defaultLocalesDir = "src/i18n/locales"
	projectFile       = ".i18n-check.env"
)

// localeFile is a locale document found in the locales directory. Name is
// the file name without its extension.
type localeFile struct {
	Name string
	Path string
}

// projectRoot returns the absolute project root: dir when given, otherwise
// the current directory.
func projectRoot(dir string) (string, error) {
	if dir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", err
		}
		dir = wd
	}
	return filepath.Abs(dir)
}

// resolvePath returns p as an absolute path, relative paths being taken
// from root.
func resolvePath(root, p string) string {
	if filepath.IsAbs(p) {
		return filepath.Clean(p)
	}
	return filepath.Join(root, p)
}

// findLocaleFiles returns the locale documents directly inside dir, sorted
// by file name. Subdirectories and files of unknown type are ignored.
func findLocaleFiles(dir string) ([]localeFile, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w in %s: directory does not exist", errNoLocaleFiles, dir)
		}
		return nil, fmt.Errorf("%w in %s: %w", errNoLocaleFiles, dir, err)
	}
	var files []localeFile
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		ext := filepath.Ext(e.Name())
		if _, ok := localeDecoders[ext]; !ok {
			continue
		}
		files = append(files, localeFile{
			Name: strings.TrimSuffix(e.Name(), ext),
			Path: filepath.Join(dir, e.Name()),
		})
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("%w in %s", errNoLocaleFiles, dir)
	}
	return files, nil
}
