package config

import (
	"errors"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DefaultEndpoint is the deployed GraphQL API.
const DefaultEndpoint = "https://d17b6fxjdiiak5.cloudfront.net/graphql"

// Config is the application's configuration model.
// It captures the API endpoint, the session store location, and metrics.
type Config struct {
	API     APIConfig     `yaml:"api"`
	Session SessionConfig `yaml:"session"`
	Metrics MetricsConfig `yaml:"metrics"`
}

type APIConfig struct {
	// GraphQL endpoint URL. If empty, read from env XCLONE_ENDPOINT.
	Endpoint string `yaml:"endpoint"`
}

type SessionConfig struct {
	// Path of the SQLite database holding the bearer token.
	DBPath string `yaml:"dbPath"`
}

type MetricsConfig struct {
	// Listen address for /metrics, e.g. ":9090". Empty disables the server.
	Addr string `yaml:"addr"`
}

// Default returns a sensible default configuration.
func Default() Config {
	return Config{
		API:     APIConfig{Endpoint: DefaultEndpoint},
		Session: SessionConfig{DBPath: "./xclone.db"},
		Metrics: MetricsConfig{Addr: ""},
	}
}

// ResolveEnv fills in config fields from environment variables if not set.
func (c *Config) ResolveEnv() {
	if c.API.Endpoint == "" {
		c.API.Endpoint = os.Getenv("XCLONE_ENDPOINT")
	}
	if c.API.Endpoint == "" {
		c.API.Endpoint = DefaultEndpoint
	}
	if c.Session.DBPath == "" {
		c.Session.DBPath = os.Getenv("XCLONE_SESSION_DB")
	}
	if c.Session.DBPath == "" {
		c.Session.DBPath = "./xclone.db"
	}
	if c.Metrics.Addr == "" {
		c.Metrics.Addr = os.Getenv("METRICS_ADDR")
	}
}

// Load reads YAML config from path.
func Load(path string) (Config, error) {
	var cfg Config
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, err
	}
	cfg.ResolveEnv()
	return cfg, nil
}

// Save writes YAML config to path, creating directories as needed.
func Save(path string, cfg Config) error {
	if path == "" {
		return errors.New("empty path")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	b, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, b, 0o644)
}
