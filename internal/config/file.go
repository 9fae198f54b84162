package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// FileConfig mirrors AppConfig for YAML configuration files. Zero values
// mean "not set" and leave the corresponding AppConfig field untouched.
type FileConfig struct {
	Host      string   `yaml:"host"`
	Port      int      `yaml:"port"`
	DataDir   string   `yaml:"data_dir"`
	DBURL     string   `yaml:"db_url"`
	LogLevel  string   `yaml:"log_level"`
	LogFormat string   `yaml:"log_format"`
	APIKeys   []string `yaml:"api_keys"`
	PageSize  int      `yaml:"page_size"`
}

// LoadFromFile reads a YAML configuration file.
func LoadFromFile(path string) (FileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return FileConfig{}, fmt.Errorf("read config file: %w", err)
	}

	var cfg FileConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return FileConfig{}, fmt.Errorf("parse config file %s: %w", path, err)
	}
	return cfg, nil
}

// Overlay applies the non-zero file values on top of an existing config.
func (f FileConfig) Overlay(cfg AppConfig) AppConfig {
	if f.Host != "" {
		cfg = applyOption(cfg, WithHost(f.Host))
	}
	if f.Port != 0 {
		cfg = applyOption(cfg, WithPort(f.Port))
	}
	if f.DataDir != "" {
		cfg = applyOption(cfg, WithDataDir(f.DataDir))
	}
	if f.DBURL != "" {
		cfg = applyOption(cfg, WithDBURL(f.DBURL))
	}
	if f.LogLevel != "" {
		cfg = applyOption(cfg, WithLogLevel(f.LogLevel))
	}
	if f.LogFormat != "" {
		cfg = applyOption(cfg, WithLogFormat(parseLogFormat(f.LogFormat)))
	}
	if len(f.APIKeys) > 0 {
		cfg = applyOption(cfg, WithAPIKeys(f.APIKeys))
	}
	if f.PageSize > 0 {
		cfg = applyOption(cfg, WithPageSize(f.PageSize))
	}
	return cfg
}
