package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Parallel()

	cfg, err := Load("")
	require.NoError(t, err)

	require.Equal(t, 8080, cfg.Server.Port)
	require.Equal(t, "info", cfg.Logging.Level)
	require.Equal(t, 10, cfg.Scrape.MaxPagesPerSite)
	require.False(t, cfg.Scrape.RespectRobots)
	require.Equal(t, 50*time.Millisecond, cfg.Scrape.Pacing())
	require.Equal(t, 10*time.Second, cfg.Scrape.PlainTimeout())
	require.Equal(t, 15*time.Second, cfg.Scrape.RenderTimeout())
	require.Equal(t, 30*time.Second, cfg.Scrape.IdleTimeout())
	require.Equal(t, 2048, cfg.Budget.MemoryMiB)
	require.Equal(t, 1024, cfg.Budget.CPUUnits)
}

func TestLoadWithFileOverrides(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	configYAML := `
server:
  port: 9090
logging:
  level: debug
  development: true
scrape:
  user_agent: custom-agent/2.0
  respect_robots: true
  max_pages_per_site: 25
  pacing_ms: 100
budget:
  memory_mib: 4096
  cpu_units: 2048
db:
  dsn: postgres://localhost/enrich
storage:
  gcs_bucket: captures-bucket
pubsub:
  project_id: proj
  subscription: enrich-jobs
`
	require.NoError(t, os.WriteFile(path, []byte(configYAML), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	require.Equal(t, 9090, cfg.Server.Port)
	require.True(t, cfg.Logging.Development)
	require.Equal(t, "custom-agent/2.0", cfg.Scrape.UserAgent)
	require.True(t, cfg.Scrape.RespectRobots)
	require.Equal(t, 25, cfg.Scrape.MaxPagesPerSite)
	require.Equal(t, 100*time.Millisecond, cfg.Scrape.Pacing())
	require.Equal(t, 4096, cfg.Budget.MemoryMiB)
	require.Equal(t, "postgres://localhost/enrich", cfg.DB.DSN)
	require.Equal(t, "captures-bucket", cfg.Storage.GCSBucket)
	require.Equal(t, "enrich-jobs", cfg.PubSub.Subscription)
}

func TestConfigValidateErrors(t *testing.T) {
	t.Parallel()

	base := Config{
		Server: ServerConfig{Port: 8080},
		Scrape: ScrapeConfig{MaxPagesPerSite: 10},
		Budget: BudgetConfig{MemoryMiB: 2048, CPUUnits: 1024},
	}

	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"invalid port", func(c *Config) { c.Server.Port = 0 }, "server.port"},
		{"invalid page budget", func(c *Config) { c.Scrape.MaxPagesPerSite = 0 }, "scrape.max_pages_per_site"},
		{"negative pacing", func(c *Config) { c.Scrape.PacingMs = -1 }, "scrape.pacing_ms"},
		{"invalid memory", func(c *Config) { c.Budget.MemoryMiB = 0 }, "budget.memory_mib"},
		{"invalid cpu", func(c *Config) { c.Budget.CPUUnits = 0 }, "budget.cpu_units"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			cfg := base
			tc.mutate(&cfg)
			err := cfg.Validate()
			require.Error(t, err)
			require.True(t, strings.Contains(err.Error(), tc.want), err.Error())
		})
	}
}
