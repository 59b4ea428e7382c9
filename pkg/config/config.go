package config

import (
	"fmt"
	"net/url"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

//go:generate go run ../../cmd/schema/main.go schema.json

// Config holds the application configuration
type Config struct {
	Server    ServerConfig    `yaml:"server" json:"server" jsonschema:"description=Server configuration"`
	Upstream  UpstreamConfig  `yaml:"upstream" json:"upstream" jsonschema:"description=Upstream data services"`
	Database  DatabaseConfig  `yaml:"database" json:"database" jsonschema:"description=Fetch log database configuration"`
	Retention RetentionConfig `yaml:"retention" json:"retention" jsonschema:"description=Fetch log retention"`
}

// ServerConfig holds http server settings
type ServerConfig struct {
	Listen  string        `yaml:"listen" json:"listen" jsonschema:"default=:8080,description=HTTP server listen address"`
	Timeout time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=30s,description=HTTP server timeout"`
	BaseURL string        `yaml:"base_url" json:"base_url" jsonschema:"default=http://localhost:8080,description=Base URL for RSS and calendar links"`
}

// UpstreamConfig holds addresses and timeouts of the upstream services
type UpstreamConfig struct {
	OpenF1URL    string        `yaml:"openf1_url" json:"openf1_url" jsonschema:"default=https://api.openf1.org/v1,description=Live session data service"`
	JolpicaURL   string        `yaml:"jolpica_url" json:"jolpica_url" jsonschema:"default=https://api.jolpi.ca/ergast/f1,description=Historical results service"`
	RelayURL     string        `yaml:"relay_url" json:"relay_url" jsonschema:"default=https://api.allorigins.win/raw?url=,description=URL-forwarding relay prefix for news feeds"`
	NewsURL      string        `yaml:"news_url" json:"news_url" jsonschema:"default=https://www.formula1.com/en/latest/all.xml,description=Latest news feed"`
	TechnicalURL string        `yaml:"technical_url" json:"technical_url" jsonschema:"default=https://www.autosport.com/rss/f1/news/,description=Technical news feed"`
	NewsTimeout  time.Duration `yaml:"news_timeout" json:"news_timeout" jsonschema:"default=10s,description=News feed request timeout"`
	APITimeout   time.Duration `yaml:"api_timeout" json:"api_timeout" jsonschema:"default=0s,description=Data service request timeout (0 means no timeout)"`
	UserAgent    string        `yaml:"user_agent" json:"user_agent" jsonschema:"default=Apex/1.0,description=User agent for HTTP requests"`
	Season       int           `yaml:"season" json:"season" jsonschema:"minimum=1950,description=Season shown on the home page (defaults to the current year)"`
}

// DatabaseConfig holds fetch log database settings
type DatabaseConfig struct {
	DSN             string `yaml:"dsn" json:"dsn" jsonschema:"default=file:apex.db?cache=shared&mode=rwc,description=Database connection string"`
	MaxOpenConns    int    `yaml:"max_open_conns" json:"max_open_conns" jsonschema:"default=10,description=Maximum number of open connections"`
	MaxIdleConns    int    `yaml:"max_idle_conns" json:"max_idle_conns" jsonschema:"default=5,description=Maximum number of idle connections"`
	ConnMaxLifetime int    `yaml:"conn_max_lifetime" json:"conn_max_lifetime" jsonschema:"default=3600,description=Connection maximum lifetime in seconds"`
}

// RetentionConfig holds fetch log retention settings
type RetentionConfig struct {
	MaxAge     time.Duration `yaml:"max_age" json:"max_age" jsonschema:"default=168h,description=Fetch records older than this are pruned"`
	Interval   time.Duration `yaml:"interval" json:"interval" jsonschema:"default=1h,description=How often to prune the fetch log"`
	QueueSize  int           `yaml:"queue_size" json:"queue_size" jsonschema:"default=100,description=Pending fetch records, the rest is dropped"`
	MaxWorkers int           `yaml:"max_workers" json:"max_workers" jsonschema:"default=2,description=Concurrent fetch log writers"`
}

// Load reads configuration from a YAML file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // file path comes from CLI flag
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	// expand environment variables
	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	cfg.setDefaults()

	// validate configuration
	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	// verify against embedded schema
	if err := VerifyAgainstEmbeddedSchema(&cfg); err != nil {
		// log warning but don't fail - schema validation is supplementary
		fmt.Printf("warning: schema validation failed: %v\n", err)
	}

	return &cfg, nil
}

// Default returns configuration with all defaults applied, used when no config file is given
func Default() *Config {
	cfg := &Config{}
	cfg.setDefaults()
	return cfg
}

func (c *Config) setDefaults() {
	// set defaults for server
	if c.Server.Listen == "" {
		c.Server.Listen = ":8080"
	}
	if c.Server.Timeout == 0 {
		c.Server.Timeout = 30 * time.Second
	}
	if c.Server.BaseURL == "" {
		c.Server.BaseURL = "http://localhost:8080"
	}

	// set defaults for upstream
	if c.Upstream.OpenF1URL == "" {
		c.Upstream.OpenF1URL = "https://api.openf1.org/v1"
	}
	if c.Upstream.JolpicaURL == "" {
		c.Upstream.JolpicaURL = "https://api.jolpi.ca/ergast/f1"
	}
	if c.Upstream.RelayURL == "" {
		c.Upstream.RelayURL = "https://api.allorigins.win/raw?url="
	}
	if c.Upstream.NewsURL == "" {
		c.Upstream.NewsURL = "https://www.formula1.com/en/latest/all.xml"
	}
	if c.Upstream.TechnicalURL == "" {
		c.Upstream.TechnicalURL = "https://www.autosport.com/rss/f1/news/"
	}
	if c.Upstream.NewsTimeout == 0 {
		c.Upstream.NewsTimeout = 10 * time.Second
	}
	if c.Upstream.UserAgent == "" {
		c.Upstream.UserAgent = "Apex/1.0"
	}

	// set defaults for database
	if c.Database.DSN == "" {
		c.Database.DSN = "file:apex.db?cache=shared&mode=rwc&_txlock=immediate"
	}
	if c.Database.MaxOpenConns == 0 {
		c.Database.MaxOpenConns = 10
	}
	if c.Database.MaxIdleConns == 0 {
		c.Database.MaxIdleConns = 5
	}
	if c.Database.ConnMaxLifetime == 0 {
		c.Database.ConnMaxLifetime = 3600
	}

	// set defaults for retention
	if c.Retention.MaxAge == 0 {
		c.Retention.MaxAge = 7 * 24 * time.Hour
	}
	if c.Retention.Interval == 0 {
		c.Retention.Interval = time.Hour
	}
	if c.Retention.QueueSize == 0 {
		c.Retention.QueueSize = 100
	}
	if c.Retention.MaxWorkers == 0 {
		c.Retention.MaxWorkers = 2
	}
}

// validate checks configuration for correctness
func validate(cfg *Config) error {
	// validate server config
	if cfg.Server.Timeout < time.Second {
		return fmt.Errorf("server timeout must be at least 1 second")
	}

	// validate upstream config
	for name, u := range map[string]string{
		"upstream.openf1_url":    cfg.Upstream.OpenF1URL,
		"upstream.jolpica_url":   cfg.Upstream.JolpicaURL,
		"upstream.news_url":      cfg.Upstream.NewsURL,
		"upstream.technical_url": cfg.Upstream.TechnicalURL,
	} {
		if err := checkURL(u); err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
	}
	if cfg.Upstream.NewsTimeout < 100*time.Millisecond {
		return fmt.Errorf("upstream.news_timeout must be at least 100ms")
	}
	// data services have no timeout unless one is set
	if cfg.Upstream.APITimeout < 0 || (cfg.Upstream.APITimeout > 0 && cfg.Upstream.APITimeout < 100*time.Millisecond) {
		return fmt.Errorf("upstream.api_timeout must be 0 or at least 100ms")
	}
	if cfg.Upstream.Season < 0 || (cfg.Upstream.Season > 0 && cfg.Upstream.Season < 1950) {
		return fmt.Errorf("upstream.season must be 1950 or later")
	}

	// validate retention config
	if cfg.Retention.MaxAge < time.Minute {
		return fmt.Errorf("retention.max_age must be at least 1 minute")
	}
	if cfg.Retention.Interval < time.Second {
		return fmt.Errorf("retention.interval must be at least 1 second")
	}
	if cfg.Retention.QueueSize < 1 || cfg.Retention.MaxWorkers < 1 {
		return fmt.Errorf("retention.queue_size and retention.max_workers must be positive")
	}

	return nil
}

func checkURL(u string) error {
	parsed, err := url.Parse(u)
	if err != nil {
		return fmt.Errorf("invalid url %q: %w", u, err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return fmt.Errorf("url %q must be http or https", u)
	}
	return nil
}

// GetServerConfig returns server configuration
func (c *Config) GetServerConfig() (listen string, timeout time.Duration) {
	return c.Server.Listen, c.Server.Timeout
}
