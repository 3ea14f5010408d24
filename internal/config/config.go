// Package config assembles runtime configuration for a scratchrank run.
//
// Values are layered, lowest precedence first: built-in defaults, an
// optional YAML file named by SCRATCHRANK_CONFIG, then environment
// variables with the SCRATCHRANK_ prefix (SCRATCHRANK_DELAY,
// SCRATCHRANK_DATA_DIR, ...). CLI flags override on top of this in the
// cli package.
package config

import (
	"errors"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix is the environment variable prefix for all settings
const EnvPrefix = "SCRATCHRANK_"

// Config holds every tunable of a run
type Config struct {
	BaseURL    string        `koanf:"base_url"`
	PrizesPath string        `koanf:"prizes_path"`
	EndingPath string        `koanf:"ending_path"`
	Timeout    time.Duration `koanf:"timeout"`
	Delay      time.Duration `koanf:"delay"`
	DataDir    string        `koanf:"data_dir"`
	ReportName string        `koanf:"report_name"`
	Verbose    bool          `koanf:"verbose"`
}

// New returns the built-in defaults.
func New() *Config {
	return &Config{
		BaseURL:    "https://nclottery.com",
		PrizesPath: "/scratch-off-prizes-remaining",
		EndingPath: "/scratch-off-games-ending",
		Timeout:    30 * time.Second,
		Delay:      500 * time.Millisecond,
		DataDir:    ".",
		ReportName: "index.html",
	}
}

// Load builds a Config by layering defaults, optional file, and env.
// Order of precedence (low -> high):
//  1. defaults (New())
//  2. file (YAML) if SCRATCHRANK_CONFIG is set
//  3. env (prefix SCRATCHRANK_)
func Load() (*Config, error) {
	base := New()

	k := koanf.New(".")

	if path := os.Getenv(EnvPrefix + "CONFIG"); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, err
		}
	}

	// Map env keys like SCRATCHRANK_DATA_DIR -> data_dir (flat keys),
	// preserving underscores to match the koanf tags on the struct.
	envProvider := env.Provider(EnvPrefix, ".", func(s string) string {
		s = strings.ToLower(s)
		return strings.TrimPrefix(s, strings.ToLower(EnvPrefix))
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, err
	}

	cfg := *base
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, err
	}

	if cfg.BaseURL == "" {
		return nil, errors.New("base_url must not be empty")
	}
	if cfg.Timeout <= 0 {
		return nil, errors.New("timeout must be positive")
	}
	return &cfg, nil
}

// PrizesURL is the absolute prizes-remaining listing URL.
func (c *Config) PrizesURL() string {
	return c.BaseURL + c.PrizesPath
}

// EndingURL is the absolute games-ending listing URL.
func (c *Config) EndingURL() string {
	return c.BaseURL + c.EndingPath
}

// RetryWait is the pause between failed fetch attempts, fixed at twice
// the pacing delay.
func (c *Config) RetryWait() time.Duration {
	return c.Delay * 2
}
