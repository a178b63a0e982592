package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/require"
)

func init() {
	color.NoColor = true
}

// writeFiles creates files below root from a path -> contents map.
func writeFiles(t *testing.T, root string, files map[string]string) {
	t.Helper()
	for name, contents := range files {
		path := filepath.Join(root, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	}
}

// newProject lays out a project with the default src and locales layout.
func newProject(t *testing.T, files map[string]string) string {
	t.Helper()
	root := t.TempDir()
	writeFiles(t, root, files)
	return root
}

// runApp runs the command line against args and returns stdout and the
// error returned by the app.
func runApp(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	app := newApp(&stdout, &stderr)
	err := app.Run(append([]string{"i18n-check", "--no-color"}, args...))
	return stdout.String(), err
}

// testConfig returns the default configuration for a project root.
func testConfig(root string) *config {
	return &config{
		Root:       root,
		CodeDir:    filepath.Join(root, defaultCodeDir),
		LocalesDir: filepath.Join(root, defaultLocalesDir),
		Extensions: []string{".js", ".jsx", ".ts", ".tsx"},
		SkipDirs:   []string{"node_modules", ".git", "dist", "vendor"},
		Jobs:       1,
		Format:     "text",
	}
}
