package main

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"
)

// parseConfig runs loadConfig behind the global flags with the given
// command line.
func parseConfig(t *testing.T, args ...string) (*config, error) {
	t.Helper()
	var cfg *config
	var loadErr error
	app := &cli.App{
		Flags: globalFlags(),
		Action: func(c *cli.Context) error {
			cfg, loadErr = loadConfig(c)
			return nil
		},
	}
	require.NoError(t, app.Run(append([]string{"i18n-check"}, args...)))
	return cfg, loadErr
}

func TestLoadConfigDefaults(t *testing.T) {
	root := t.TempDir()
	cfg, err := parseConfig(t, "--root", root)
	require.NoError(t, err)

	assert.Equal(t, root, cfg.Root)
	assert.Equal(t, filepath.Join(root, "src"), cfg.CodeDir)
	assert.Equal(t, filepath.Join(root, "src", "i18n", "locales"), cfg.LocalesDir)
	assert.Equal(t, []string{".js", ".jsx", ".ts", ".tsx"}, cfg.Extensions)
	assert.Equal(t, []string{"node_modules", ".git", "dist", "vendor"}, cfg.SkipDirs)
	assert.Empty(t, cfg.Ignore)
	assert.Equal(t, 1, cfg.Jobs)
	assert.Equal(t, "text", cfg.Format)
}

func TestLoadConfigFlags(t *testing.T) {
	root := t.TempDir()
	abs := filepath.Join(t.TempDir(), "locales")
	cfg, err := parseConfig(t,
		"--root", root,
		"--code-dir", "app",
		"--locales-dir", abs,
		"--ext", "vue,.ts",
		"--ext", "svelte",
		"--ignore", "legacy.**",
		"--jobs", "4",
		"--format", "json",
	)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(root, "app"), cfg.CodeDir)
	assert.Equal(t, abs, cfg.LocalesDir)
	assert.Equal(t, []string{".vue", ".ts", ".svelte"}, cfg.Extensions)
	assert.Len(t, cfg.Ignore, 1)
	assert.Equal(t, 4, cfg.Jobs)
	assert.Equal(t, "json", cfg.Format)
}

func TestLoadConfigProjectFile(t *testing.T) {
	root := newProject(t, map[string]string{
		projectFile: "# i18n-check settings\n" +
			"I18N_CODE_DIR=app\n" +
			"I18N_LOCALES_DIR=app/locales\n" +
			"I18N_EXTENSIONS=.vue,.js\n" +
			"I18N_JOBS=3\n" +
			"I18N_IGNORE=\"debug.*\"\n",
	})

	t.Run("file overrides defaults", func(t *testing.T) {
		cfg, err := parseConfig(t, "--root", root)
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(root, "app"), cfg.CodeDir)
		assert.Equal(t, filepath.Join(root, "app", "locales"), cfg.LocalesDir)
		assert.Equal(t, []string{".vue", ".js"}, cfg.Extensions)
		assert.Equal(t, 3, cfg.Jobs)
		assert.True(t, cfg.Ignore.ignored("debug.banner"))
	})

	t.Run("environment overrides file", func(t *testing.T) {
		t.Setenv("I18N_CODE_DIR", "web")
		cfg, err := parseConfig(t, "--root", root)
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(root, "web"), cfg.CodeDir)
	})

	t.Run("flags override file", func(t *testing.T) {
		cfg, err := parseConfig(t, "--root", root, "--code-dir", "lib", "--jobs", "2")
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(root, "lib"), cfg.CodeDir)
		assert.Equal(t, 2, cfg.Jobs)
	})
}

func TestLoadConfigInvalid(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"unknown format", []string{"--format", "xml"}},
		{"zero jobs", []string{"--jobs", "0"}},
		{"bad ignore glob", []string{"--ignore", "[oops"}},
		{"no extensions", []string{"--ext", ","}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := parseConfig(t, append([]string{"--root", t.TempDir()}, tc.args...)...)
			assert.Error(t, err)
		})
	}
}

func TestLoadConfigInvalidProjectJobs(t *testing.T) {
	root := newProject(t, map[string]string{projectFile: "I18N_JOBS=many\n"})
	_, err := parseConfig(t, "--root", root)
	assert.Error(t, err)
}

func TestSplitList(t *testing.T) {
	assert.Equal(t, []string{"a", "b", "c"}, splitList([]string{"a, b", " ", "c,"}))
	assert.Nil(t, splitList(nil))
}

func TestLoadConfigEmptySkipDirScansEverything(t *testing.T) {
	cfg, err := parseConfig(t, "--root", t.TempDir(), "--skip-dir", "")
	require.NoError(t, err)
	assert.Empty(t, cfg.SkipDirs)
}
