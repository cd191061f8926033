package main

import (
	"os"
	"path/filepath"

	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"
)

// Config represents the solverbench configuration file
// (~/.config/solverbench/config.yaml). All numeric fields are pointers so
// we can distinguish "not set" from zero values.
type Config struct {
	Size   *int64 `yaml:"size"`
	Cols   *int64 `yaml:"cols"`
	Lanes  *int64 `yaml:"lanes"`
	Runs   *int64 `yaml:"runs"`
	Warmup *int64 `yaml:"warmup"`
	Seed   *int64 `yaml:"seed"`

	Dtype string `yaml:"dtype"`

	LogLevel  string `yaml:"log_level"`
	LogFormat string `yaml:"log_format"`
}

func configPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "solverbench", "config.yaml")
}

// loadConfig reads the config file. Returns a zero Config if the file
// doesn't exist or fails to parse.
func loadConfig() Config {
	return loadConfigFrom(configPath())
}

func loadConfigFrom(path string) Config {
	if path == "" {
		return Config{}
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}
	}
	return cfg
}

// applyBenchConfig applies config file defaults to bench command variables
// when the corresponding CLI flag was not explicitly set.
func applyBenchConfig(c *cli.Command, cfg Config) {
	if cfg.Size != nil && !c.IsSet("size") {
		size = *cfg.Size
	}
	if cfg.Cols != nil && !c.IsSet("cols") {
		cols = *cfg.Cols
	}
	if cfg.Lanes != nil && !c.IsSet("lanes") {
		lanes = *cfg.Lanes
	}
	if cfg.Runs != nil && !c.IsSet("runs") {
		benchRuns = *cfg.Runs
	}
	if cfg.Warmup != nil && !c.IsSet("warmup") {
		warmupRuns = *cfg.Warmup
	}
	if cfg.Seed != nil && !c.IsSet("seed") {
		seed = *cfg.Seed
	}
	if cfg.Dtype != "" && !c.IsSet("dtype") {
		dtype = cfg.Dtype
	}
	if cfg.LogLevel != "" && !c.IsSet("log-level") {
		logLevel = cfg.LogLevel
	}
	if cfg.LogFormat != "" && !c.IsSet("log-format") {
		logFormat = cfg.LogFormat
	}
}
