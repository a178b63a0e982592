package main

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gobwas/glob"
	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"
)

// config is everything a run needs. It is resolved once at the command-line
// boundary; nothing below it looks at the working directory.
type config struct {
	Root       string
	CodeDir    string
	LocalesDir string
	Extensions []string
	SkipDirs   []string
	Ignore     keyFilter
	Jobs       int
	Format     string
}

func (c *config) scanOptions() scanOptions {
	return scanOptions{
		Root:       c.CodeDir,
		Extensions: c.Extensions,
		SkipDirs:   c.SkipDirs,
		Workers:    c.Jobs,
	}
}

func globalFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "root",
			Usage:   "Project root (default: current directory)",
			EnvVars: []string{"I18N_ROOT"},
		},
		&cli.StringFlag{
			Name:    "code-dir",
			Usage:   "Directory scanned for t() calls, relative to --root",
			Value:   defaultCodeDir,
			EnvVars: []string{"I18N_CODE_DIR"},
		},
		&cli.StringFlag{
			Name:    "locales-dir",
			Usage:   "Directory holding the locale files, relative to --root",
			Value:   defaultLocalesDir,
			EnvVars: []string{"I18N_LOCALES_DIR"},
		},
		&cli.StringSliceFlag{
			Name:    "ext",
			Usage:   "Source file extensions to scan",
			Value:   cli.NewStringSlice(".js", ".jsx", ".ts", ".tsx"),
			EnvVars: []string{"I18N_EXTENSIONS"},
		},
		&cli.StringSliceFlag{
			Name:    "skip-dir",
			Usage:   "Directory names never descended into; dist and vendor are skipped by default, pass --skip-dir '' to scan everything",
			Value:   cli.NewStringSlice("node_modules", ".git", "dist", "vendor"),
			EnvVars: []string{"I18N_SKIP_DIRS"},
		},
		&cli.StringSliceFlag{
			Name:    "ignore",
			Usage:   "Glob of keys left out of the comparison (* stays within a segment, ** crosses dots)",
			EnvVars: []string{"I18N_IGNORE"},
		},
		&cli.IntFlag{
			Name:    "jobs",
			Usage:   "Number of source files scanned in parallel",
			Value:   1,
			EnvVars: []string{"I18N_JOBS"},
		},
		&cli.StringFlag{
			Name:    "format",
			Usage:   "Output format: text, json",
			Value:   "text",
			EnvVars: []string{"I18N_FORMAT"},
		},
		&cli.BoolFlag{
			Name:    "no-color",
			Usage:   "Disable coloured output",
			EnvVars: []string{"I18N_NO_COLOR"},
		},
		&cli.BoolFlag{
			Name:    "verbose",
			Usage:   "Log debug information to stderr",
			EnvVars: []string{"I18N_VERBOSE"},
		},
	}
}

// loadConfig resolves the run configuration. Precedence, lowest first:
// flag defaults, the project file in the root, the environment, flags.
func loadConfig(c *cli.Context) (*config, error) {
	root, err := projectRoot(c.String("root"))
	if err != nil {
		return nil, err
	}
	file, err := readProjectFile(root)
	if err != nil {
		return nil, err
	}

	cfg := &config{
		Root:       root,
		CodeDir:    resolvePath(root, stringSetting(c, file, "code-dir", "I18N_CODE_DIR")),
		LocalesDir: resolvePath(root, stringSetting(c, file, "locales-dir", "I18N_LOCALES_DIR")),
		Extensions: normalizeExtensions(listSetting(c, file, "ext", "I18N_EXTENSIONS")),
		SkipDirs:   listSetting(c, file, "skip-dir", "I18N_SKIP_DIRS"),
		Format:     stringSetting(c, file, "format", "I18N_FORMAT"),
		Jobs:       c.Int("jobs"),
	}

	if v, ok := file["I18N_JOBS"]; ok && !c.IsSet("jobs") {
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return nil, fmt.Errorf("%s: invalid I18N_JOBS %q", projectFile, v)
		}
		cfg.Jobs = n
	}
	if cfg.Jobs < 1 {
		return nil, fmt.Errorf("--jobs must be at least 1, got %d", cfg.Jobs)
	}
	if cfg.Format != "text" && cfg.Format != "json" {
		return nil, fmt.Errorf("unknown format %q (want text or json)", cfg.Format)
	}
	if len(cfg.Extensions) == 0 {
		return nil, fmt.Errorf("no source file extensions configured")
	}

	cfg.Ignore, err = compileKeyFilter(listSetting(c, file, "ignore", "I18N_IGNORE"))
	if err != nil {
		return nil, err
	}
	return cfg, nil
}

// readProjectFile reads the optional dotenv-style settings file in root.
func readProjectFile(root string) (map[string]string, error) {
	path := filepath.Join(root, projectFile)
	values, err := godotenv.Read(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return map[string]string{}, nil
		}
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	log.Debugw("loaded project settings", "file", path, "count", len(values))
	return values, nil
}

func stringSetting(c *cli.Context, file map[string]string, name, env string) string {
	if c.IsSet(name) {
		return c.String(name)
	}
	if v, ok := file[env]; ok {
		return strings.TrimSpace(v)
	}
	return c.String(name)
}

func listSetting(c *cli.Context, file map[string]string, name, env string) []string {
	if c.IsSet(name) {
		return splitList(c.StringSlice(name))
	}
	if v, ok := file[env]; ok {
		return splitList([]string{v})
	}
	return splitList(c.StringSlice(name))
}

// splitList flattens comma separated values and drops empty entries.
func splitList(values []string) []string {
	var out []string
	for _, v := range values {
		for _, part := range strings.Split(v, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}

func normalizeExtensions(exts []string) []string {
	out := make([]string, 0, len(exts))
	for _, e := range exts {
		if !strings.HasPrefix(e, ".") {
			e = "." + e
		}
		out = append(out, e)
	}
	return out
}

// keyFilter drops keys matching any of its patterns.
type keyFilter []glob.Glob

func compileKeyFilter(patterns []string) (keyFilter, error) {
	var f keyFilter
	for _, p := range patterns {
		g, err := glob.Compile(p, '.')
		if err != nil {
			return nil, fmt.Errorf("invalid ignore pattern %q: %w", p, err)
		}
		f = append(f, g)
	}
	return f, nil
}

func (f keyFilter) ignored(key string) bool {
	for _, g := range f {
		if g.Match(key) {
			return true
		}
	}
	return false
}

// apply returns the keys of s not matched by the filter.
func (f keyFilter) apply(s keySet) keySet {
	if len(f) == 0 {
		return s
	}
	out := make(keySet, len(s))
	for k := range s {
		if !f.ignored(k) {
			out.add(k)
		}
	}
	return out
}
