package config

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// load runs Load without picking up a .env file from the working directory.
func load(t *testing.T, args ...string) (*Config, error) {
	t.Helper()
	args = append([]string{"--env-file", filepath.Join(t.TempDir(), "none.env")}, args...)
	return Load(NewFlagSet("test"), args)
}

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := load(t)
	require.NoError(t, err)

	assert.Equal(t, "learncards.db", cfg.DB)
	assert.Equal(t, "localhost:8080", cfg.Addr)
	assert.Equal(t, "repos", cfg.Repos)
	assert.Empty(t, cfg.Sources)
	assert.False(t, cfg.Shuffle)
	assert.Equal(t, 0.5, cfg.Swipe.Ratio)
	assert.Equal(t, 50.0, cfg.Swipe.Speed)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
}

func TestLoadPrecedence(t *testing.T) {
	path := writeTemp(t, "learncards.yaml", strings.Join([]string{
		"db: from-file.db",
		"addr: 0.0.0.0:9000",
		"shuffle: true",
		"sources:",
		"  - ./decks",
		"swipe:",
		"  ratio: 0.3",
		"log:",
		"  level: debug",
	}, "\n"))

	t.Setenv("LEARNCARDS_DB", "from-env.db")
	t.Setenv("LEARNCARDS_SWIPE_SPEED", "120")

	cfg, err := load(t, "--config", path, "--db", "from-flag.db")
	require.NoError(t, err)

	assert.Equal(t, "from-flag.db", cfg.DB, "flags beat env and file")
	assert.Equal(t, "0.0.0.0:9000", cfg.Addr, "file beats flag defaults")
	assert.True(t, cfg.Shuffle)
	assert.Equal(t, []string{"./decks"}, cfg.Sources)
	assert.Equal(t, 0.3, cfg.Swipe.Ratio)
	assert.Equal(t, 120.0, cfg.Swipe.Speed, "env beats flag defaults")
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoadEnvSources(t *testing.T) {
	t.Setenv("LEARNCARDS_SOURCES", "./a, https://example.com/decks.git,")
	t.Setenv("LEARNCARDS_LOG_FORMAT", "json")

	cfg, err := load(t)
	require.NoError(t, err)
	assert.Equal(t, []string{"./a", "https://example.com/decks.git"}, cfg.Sources)
	assert.Equal(t, "json", cfg.Log.Format)
}

func TestLoadDotEnv(t *testing.T) {
	envFile := writeTemp(t, ".env", "LEARNCARDS_REPOS=/tmp/learncards-repos\n")
	t.Cleanup(func() { _ = os.Unsetenv("LEARNCARDS_REPOS") })

	cfg, err := Load(NewFlagSet("test"), []string{"--env-file", envFile})
	require.NoError(t, err)
	assert.Equal(t, "/tmp/learncards-repos", cfg.Repos)
}

func TestLoadFlagsAndPositionals(t *testing.T) {
	fs := NewFlagSet("test")
	name := fs.String("name", "", "deck name")

	cfg, err := Load(fs, []string{"--env-file", "", "--sources", "x,y", "--name", "Spanish", "import", "es.csv"})
	require.NoError(t, err)
	assert.Equal(t, []string{"x", "y"}, cfg.Sources)
	assert.Equal(t, "Spanish", *name)
	assert.Equal(t, []string{"import", "es.csv"}, fs.Args())
}

func TestLoadValidation(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"bad log level", []string{"--log-level", "loud"}},
		{"bad log format", []string{"--log-format", "xml"}},
		{"ratio out of range", []string{"--swipe-ratio", "1.5"}},
		{"negative speed", []string{"--swipe-speed", "-1"}},
		{"zero speed", []string{"--swipe-speed", "0"}},
		{"empty db", []string{"--db", ""}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := load(t, tt.args...)
			assert.Error(t, err)
		})
	}
}

func TestLoadMissingConfigFile(t *testing.T) {
	_, err := load(t, "--config", filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := Log{Level: "warn", Format: "json"}.NewLogger(&buf)

	logger.Info("hidden")
	logger.Warn("shown", "deck", 3)

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, `"msg":"shown"`)
	assert.Contains(t, out, `"deck":3`)
}
