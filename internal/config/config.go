// Package config loads and validates service configuration via Viper.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config captures all service configuration knobs loaded via Viper.
type Config struct {
	Server  ServerConfig  `mapstructure:"server"`
	Logging LoggingConfig `mapstructure:"logging"`
	Scrape  ScrapeConfig  `mapstructure:"scrape"`
	Budget  BudgetConfig  `mapstructure:"budget"`
	DB      DBConfig      `mapstructure:"db"`
	Storage StorageConfig `mapstructure:"storage"`
	PubSub  PubSubConfig  `mapstructure:"pubsub"`
}

// ServerConfig controls the operational HTTP server.
type ServerConfig struct {
	Port int `mapstructure:"port"`
}

// LoggingConfig toggles zap development features.
type LoggingConfig struct {
	Level       string `mapstructure:"level"`
	Development bool   `mapstructure:"development"`
}

// ScrapeConfig governs the per-business crawl pipeline.
type ScrapeConfig struct {
	UserAgent        string `mapstructure:"user_agent"`
	RespectRobots    bool   `mapstructure:"respect_robots"`
	MaxPagesPerSite  int    `mapstructure:"max_pages_per_site"`
	PacingMs         int    `mapstructure:"pacing_ms"`
	PlainTimeoutSec  int    `mapstructure:"plain_timeout_seconds"`
	RenderTimeoutSec int    `mapstructure:"render_timeout_seconds"`
	IdleTimeoutSec   int    `mapstructure:"idle_timeout_seconds"`
}

// BudgetConfig declares the resource allocation the parallelism formula
// derives from.
type BudgetConfig struct {
	MemoryMiB int `mapstructure:"memory_mib"`
	CPUUnits  int `mapstructure:"cpu_units"`
}

// DBConfig controls access to the business record database.
type DBConfig struct {
	DSN             string        `mapstructure:"dsn"`
	MaxConns        int32         `mapstructure:"max_conns"`
	MinConns        int32         `mapstructure:"min_conns"`
	MaxConnLifetime time.Duration `mapstructure:"max_conn_lifetime"`
}

// StorageConfig sets the bucket for capture objects.
type StorageConfig struct {
	GCSBucket string `mapstructure:"gcs_bucket"`
}

// PubSubConfig identifies the job intake subscription.
type PubSubConfig struct {
	ProjectID    string `mapstructure:"project_id"`
	Subscription string `mapstructure:"subscription"`
}

// Load builds a Config from disk/environment.
func Load(path string) (Config, error) {
	v := viper.New()
	v.SetEnvPrefix("ENRICH")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8080)
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.development", false)
	v.SetDefault("scrape.user_agent", "leadscout-enrich/1.0")
	v.SetDefault("scrape.respect_robots", false)
	v.SetDefault("scrape.max_pages_per_site", 10)
	v.SetDefault("scrape.pacing_ms", 50)
	v.SetDefault("scrape.plain_timeout_seconds", 10)
	v.SetDefault("scrape.render_timeout_seconds", 15)
	v.SetDefault("scrape.idle_timeout_seconds", 30)
	v.SetDefault("budget.memory_mib", 2048)
	v.SetDefault("budget.cpu_units", 1024)
	v.SetDefault("db.max_conns", 4)
	v.SetDefault("db.min_conns", 0)
}

// Validate enforces required values and reasonable limits.
func (c Config) Validate() error {
	if c.Server.Port <= 0 {
		return fmt.Errorf("server.port must be > 0")
	}
	if c.Scrape.MaxPagesPerSite <= 0 {
		return fmt.Errorf("scrape.max_pages_per_site must be > 0")
	}
	if c.Scrape.PacingMs < 0 {
		return fmt.Errorf("scrape.pacing_ms must be >= 0")
	}
	if c.Budget.MemoryMiB <= 0 {
		return fmt.Errorf("budget.memory_mib must be > 0")
	}
	if c.Budget.CPUUnits <= 0 {
		return fmt.Errorf("budget.cpu_units must be > 0")
	}
	return nil
}

// PlainTimeout returns the tier-1 fetch timeout.
func (c ScrapeConfig) PlainTimeout() time.Duration {
	return time.Duration(c.PlainTimeoutSec) * time.Second
}

// RenderTimeout returns the DOM-ready render timeout.
func (c ScrapeConfig) RenderTimeout() time.Duration {
	return time.Duration(c.RenderTimeoutSec) * time.Second
}

// IdleTimeout returns the network-idle render timeout.
func (c ScrapeConfig) IdleTimeout() time.Duration {
	return time.Duration(c.IdleTimeoutSec) * time.Second
}

// Pacing returns the delay inserted between successive fetches on one site.
func (c ScrapeConfig) Pacing() time.Duration {
	return time.Duration(c.PacingMs) * time.Millisecond
}
