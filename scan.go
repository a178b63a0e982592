package main

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// keyReference records where a translation key is used.
type keyReference struct {
	File string `json:"file"`
	Line int    `json:"line"`
}

func (r keyReference) String() string {
	return fmt.Sprintf("%s:%d", r.File, r.Line)
}

// dynamicCall is a t() call site whose argument is not a plain key literal.
type dynamicCall struct {
	Ref  keyReference
	Call string
}

// scanAnomaly is a source file that could not be read or decoded.
type scanAnomaly struct {
	File string
	Err  error
}

// Patterns for finding translation key references in source code.
var (
	// t('key') or t("key") where the literal is the only argument. No
	// boundary is required before "t", so xt('a.b') matches as well.
	keyPattern = regexp.MustCompile(`t\(['"]([a-zA-Z0-9._]+)['"]\)`)
	// Start of a t( call, also this.t( and $t(.
	callPattern = regexp.MustCompile(`(?:^|[^a-zA-Z0-9_])t\(`)
	// Argument of a call that keyPattern understands.
	literalArgPattern = regexp.MustCompile(`^['"][a-zA-Z0-9._]+['"]\)`)
)

type scanOptions struct {
	Root       string
	Extensions []string
	SkipDirs   []string
	Workers    int
}

type scanResult struct {
	Keys       keySet
	References map[string][]keyReference
	Dynamic    []dynamicCall
	Anomalies  []scanAnomaly
	Files      int
}

// fileScan holds what was found in a single source file.
type fileScan struct {
	refs    map[string][]keyReference
	dynamic []dynamicCall
}

// scanSourceFiles walks the source tree and returns file paths matching the
// given extensions. Only a failure to read root itself is returned as an
// error; unreadable subdirectories are reported as anomalies.
func scanSourceFiles(root string, exts, skipDirs []string) ([]string, []scanAnomaly, error) {
	var files []string
	var anomalies []scanAnomaly
	extSet := make(map[string]bool, len(exts))
	for _, e := range exts {
		extSet[e] = true
	}
	skip := make(map[string]bool, len(skipDirs))
	for _, d := range skipDirs {
		skip[d] = true
	}
	err := filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			if path == root {
				return err
			}
			anomalies = append(anomalies, scanAnomaly{File: path, Err: err})
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		name := d.Name()
		if d.IsDir() {
			if path != root && skip[name] {
				return filepath.SkipDir
			}
			return nil
		}
		if extSet[filepath.Ext(name)] {
			files = append(files, path)
		}
		return nil
	})
	return files, anomalies, err
}

// extractKeys scans every eligible source file under opts.Root for
// translation keys.
func extractKeys(opts scanOptions) (*scanResult, error) {
	info, err := os.Stat(opts.Root)
	if err != nil {
		return nil, fmt.Errorf("scanning %s: %w", opts.Root, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("scanning %s: not a directory", opts.Root)
	}

	// WalkDir does not descend into a symlinked root, so walk its target.
	walkRoot, err := filepath.EvalSymlinks(opts.Root)
	if err != nil {
		return nil, fmt.Errorf("scanning %s: %w", opts.Root, err)
	}
	files, anomalies, err := scanSourceFiles(walkRoot, opts.Extensions, opts.SkipDirs)
	if err != nil {
		return nil, fmt.Errorf("scanning %s: %w", opts.Root, err)
	}
	// Anomalies name files under the configured root, not the link target.
	underRoot := func(path string) string {
		return filepath.Join(opts.Root, filepath.FromSlash(relPath(walkRoot, path)))
	}
	for i := range anomalies {
		anomalies[i].File = underRoot(anomalies[i].File)
	}

	res := &scanResult{
		Keys:       make(keySet),
		References: make(map[string][]keyReference),
		Anomalies:  anomalies,
		Files:      len(files),
	}

	var mu sync.Mutex
	merge := func(found *fileScan) {
		mu.Lock()
		defer mu.Unlock()
		for key, refs := range found.refs {
			res.Keys.add(key)
			res.References[key] = append(res.References[key], refs...)
		}
		res.Dynamic = append(res.Dynamic, found.dynamic...)
	}
	fail := func(file string, err error) {
		mu.Lock()
		defer mu.Unlock()
		res.Anomalies = append(res.Anomalies, scanAnomaly{File: underRoot(file), Err: err})
	}

	var g errgroup.Group
	g.SetLimit(max(opts.Workers, 1))
	for _, file := range files {
		file := file
		g.Go(func() error {
			data, err := os.ReadFile(file)
			if err != nil {
				fail(file, err)
				return nil
			}
			text, err := decodeText(data)
			if err != nil {
				fail(file, err)
				return nil
			}
			merge(scanContent(relPath(walkRoot, file), text))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("scanning %s: %w", opts.Root, err)
	}

	for _, refs := range res.References {
		sortReferences(refs)
	}
	sort.Slice(res.Dynamic, func(i, j int) bool {
		return referenceLess(res.Dynamic[i].Ref, res.Dynamic[j].Ref)
	})
	sort.Slice(res.Anomalies, func(i, j int) bool {
		return res.Anomalies[i].File < res.Anomalies[j].File
	})
	return res, nil
}

// scanContent finds key literals and dynamic call sites in one file.
func scanContent(file, text string) *fileScan {
	found := &fileScan{refs: make(map[string][]keyReference)}

	line, offset := 1, 0
	for _, m := range keyPattern.FindAllStringSubmatchIndex(text, -1) {
		line += strings.Count(text[offset:m[0]], "\n")
		offset = m[0]
		key := text[m[2]:m[3]]
		found.refs[key] = append(found.refs[key], keyReference{File: file, Line: line})
	}

	for i, l := range strings.Split(text, "\n") {
		for _, loc := range callPattern.FindAllStringIndex(l, -1) {
			rest := l[loc[1]:]
			if literalArgPattern.MatchString(rest) {
				continue
			}
			found.dynamic = append(found.dynamic, dynamicCall{
				Ref:  keyReference{File: file, Line: i + 1},
				Call: "t(" + callArgument(rest) + ")",
			})
		}
	}
	return found
}

// callArgument returns the text up to the parenthesis closing a call, or
// the rest of the line when the call spans lines.
func callArgument(rest string) string {
	depth := 0
	for i, c := range rest {
		switch c {
		case '(':
			depth++
		case ')':
			if depth == 0 {
				return truncate(strings.TrimSpace(rest[:i]), 60)
			}
			depth--
		}
	}
	return truncate(strings.TrimSpace(rest), 60) + " ..."
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n]) + "..."
}

// decodeText validates data as UTF-8 and strips a leading byte order mark.
func decodeText(data []byte) (string, error) {
	t := transform.Chain(encoding.UTF8Validator, unicode.UTF8BOM.NewDecoder())
	out, _, err := transform.Bytes(t, data)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

func relPath(root, path string) string {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return path
	}
	return filepath.ToSlash(rel)
}

func referenceLess(a, b keyReference) bool {
	if a.File != b.File {
		return a.File < b.File
	}
	return a.Line < b.Line
}

func sortReferences(refs []keyReference) {
	sort.Slice(refs, func(i, j int) bool {
		return referenceLess(refs[i], refs[j])
	})
}
