package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Duration makes time.Duration YAML-friendly ("10m", "2s").
type Duration time.Duration

func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var raw string
	if err := value.Decode(&raw); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(raw)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", raw, err)
	}
	*d = Duration(parsed)
	return nil
}

func (d Duration) Std() time.Duration {
	return time.Duration(d)
}

// ElasticConfig locates the catalogue index.
type ElasticConfig struct {
	Addresses []string `yaml:"addresses"`
	Index     string   `yaml:"index"`
}

// Config holds user options for the cover-scan subsystem.
type Config struct {
	Elastic      ElasticConfig `yaml:"elastic"`
	CacheTTL     Duration      `yaml:"cache_ttl"`
	DisplayDelay Duration      `yaml:"display_delay"`
}

// Default returns a config with sensible defaults.
func Default() *Config {
	return &Config{
		Elastic: ElasticConfig{
			Addresses: []string{"http://localhost:9200"},
			Index:     "bookshelf",
		},
		CacheTTL:     Duration(10 * time.Minute),
		DisplayDelay: Duration(2 * time.Second),
	}
}

// Load reads a YAML config file over the defaults, then applies environment
// overrides.  An empty path just gives defaults plus environment.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	if addr := os.Getenv("BOOKSHELF_ES_ADDRESSES"); addr != "" {
		cfg.Elastic.Addresses = strings.Split(addr, ",")
	}
	cfg.Elastic.Index = getEnv("BOOKSHELF_ES_INDEX", cfg.Elastic.Index)

	return cfg, nil
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
