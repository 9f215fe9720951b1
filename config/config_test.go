package config_test

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvsearch/config"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "lvsearch.yaml")
	require.NoError(t, os.WriteFile(p, []byte(body), 0o600))

	return p
}

func TestLoad(t *testing.T) {
	p := writeFile(t, `
algorithm: astar
state_space: maps/istra.txt
heuristic: maps/istra_h.txt
check_consistent: true
timeout: 1500ms
max_expansions: 100
log:
  level: debug
  format: json
`)
	cfg, err := config.Load(p)
	require.NoError(t, err)
	assert.Equal(t, "astar", cfg.Algorithm)
	assert.Equal(t, "maps/istra.txt", cfg.StateSpace)
	assert.True(t, cfg.CheckConsistent)
	assert.False(t, cfg.CheckOptimistic)
	assert.Equal(t, 1500*time.Millisecond, cfg.Timeout)
	assert.Equal(t, 100, cfg.MaxExpansions)
	assert.Equal(t, config.LogConfig{Level: "debug", Format: "json"}, cfg.Log)
	require.NoError(t, cfg.Validate())
}

func TestLoad_DefaultsAndErrors(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)

	// keys absent from the file keep their defaults
	cfg, err = config.Load(writeFile(t, "state_space: s.txt\n"))
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.Log.Level)

	cfg, err = config.Load(writeFile(t, ""))
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)

	_, err = config.Load(writeFile(t, "algorithm: bfs\nunknown_key: 1\n"))
	assert.Error(t, err)

	_, err = config.Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestValidate(t *testing.T) {
	base := func() config.Config {
		c := config.Default()
		c.StateSpace = "s.txt"
		return c
	}

	tests := []struct {
		name   string
		mutate func(*config.Config)
		field  string // failing struct field
		ok     bool
	}{
		{"minimal", func(*config.Config) {}, "", true},
		{"bfs", func(c *config.Config) { c.Algorithm = "bfs" }, "", true},
		{"bad algorithm", func(c *config.Config) { c.Algorithm = "dfs" }, "Algorithm", false},
		{"missing space", func(c *config.Config) { c.StateSpace = "" }, "StateSpace", false},
		{"negative timeout", func(c *config.Config) { c.Timeout = -time.Second }, "Timeout", false},
		{"negative limit", func(c *config.Config) { c.MaxExpansions = -1 }, "MaxExpansions", false},
		{"bad level", func(c *config.Config) { c.Log.Level = "trace" }, "Level", false},
		{"bad format", func(c *config.Config) { c.Log.Format = "xml" }, "Format", false},
		{"astar", func(c *config.Config) { c.Algorithm = "astar" }, "", true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c := base()
			tc.mutate(&c)
			err := c.Validate()
			if tc.ok {
				assert.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, config.ErrInvalidConfig)
			var verrs validator.ValidationErrors
			require.ErrorAs(t, err, &verrs)
			assert.Equal(t, tc.field, verrs[0].Field())
		})
	}
}

func TestNeedsHeuristic(t *testing.T) {
	c := config.Default()
	assert.False(t, c.NeedsHeuristic())
	c.Algorithm = "ucs"
	assert.False(t, c.NeedsHeuristic())
	c.CheckConsistent = true
	assert.True(t, c.NeedsHeuristic())
	c = config.Default()
	c.Algorithm = "astar"
	assert.True(t, c.NeedsHeuristic())
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	log := config.NewLogger(config.LogConfig{Level: "warn", Format: "json"}, &buf)
	log.Info("hidden")
	log.Warn("shown", "k", 1)

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "shown", rec["msg"])
	assert.Equal(t, "WARN", rec["level"])

	buf.Reset()
	log = config.NewLogger(config.LogConfig{Level: "nonsense"}, &buf)
	log.Debug("hidden")
	log.Info("text")
	assert.Contains(t, buf.String(), "msg=text")
	assert.NotContains(t, buf.String(), "hidden")
}
