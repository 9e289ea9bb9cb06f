package config

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "data", cfg.DataDir)
	assert.Equal(t, 70, cfg.Threshold)
	assert.Equal(t, 30*time.Second, cfg.HTTPTimeout)
	assert.Equal(t, 300*time.Millisecond, cfg.Throttle)
	assert.Equal(t, "console", cfg.LogFormat)
	assert.Empty(t, cfg.RedisURL)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("RB_DATA_DIR", "/tmp/rb")
	t.Setenv("RB_THRESHOLD", "100")
	t.Setenv("RB_THROTTLE", "1s")
	t.Setenv("RB_LOG_FORMAT", "json")
	t.Setenv("RB_REDIS_URL", "redis://localhost:6379/0")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/rb", cfg.DataDir)
	assert.Equal(t, 100, cfg.Threshold)
	assert.Equal(t, time.Second, cfg.Throttle)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, "redis://localhost:6379/0", cfg.RedisURL)
}

func TestLoad_RejectsInvalidValues(t *testing.T) {
	cases := map[string]string{
		"RB_THRESHOLD":  "0",
		"RB_LOG_FORMAT": "xml",
		"RB_LOG_LEVEL":  "verbose",
		"RB_OTC_URL":    "not a url",
	}
	for key, value := range cases {
		t.Run(key, func(t *testing.T) {
			t.Setenv(key, value)
			_, err := Load()
			assert.Error(t, err)
		})
	}
}

func TestLoad_RejectsUnparseableDuration(t *testing.T) {
	t.Setenv("RB_HTTP_TIMEOUT", "soon")
	_, err := Load()
	assert.Error(t, err)
}

func TestPaths(t *testing.T) {
	p := NewPaths("out")
	assert.Equal(t, filepath.Join("out", "rb_rushing_2001_2024_rb70_names.csv"), p.RB70Names)
	assert.Equal(t, filepath.Join("out", "rb_analysis_master.csv"), p.Master)
	assert.Equal(t, filepath.Join("out", "espn_team_stats_2019.json"), p.TeamStatsSeason(2019))
}
