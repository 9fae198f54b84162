package config

import (
	"strings"

	"github.com/kelseyhightower/envconfig"
)

// envPrefix is the prefix for all environment variables.
const envPrefix = "todoer"

// EnvConfig holds all environment-based configuration.
// Field names map to environment variables with the TODOER_ prefix
// (e.g. TODOER_DB_URL). Unset variables stay at their zero value so the
// defaults from NewAppConfig (and any YAML file values) are preserved.
type EnvConfig struct {
	// Host is the server host to bind to.
	// Env: TODOER_HOST (default: 0.0.0.0)
	Host string `envconfig:"HOST"`

	// Port is the server port to listen on.
	// Env: TODOER_PORT (default: 8080)
	Port int `envconfig:"PORT"`

	// DataDir is the data directory path.
	// Env: TODOER_DATA_DIR
	// Default: ~/.todoer
	DataDir string `envconfig:"DATA_DIR"`

	// DBURL is the database connection URL.
	// Env: TODOER_DB_URL
	// Default: sqlite:///{data_dir}/todoer.db
	DBURL string `envconfig:"DB_URL"`

	// LogLevel is the log verbosity level.
	// Env: TODOER_LOG_LEVEL (default: INFO)
	LogLevel string `envconfig:"LOG_LEVEL"`

	// LogFormat is the log output format (pretty or json).
	// Env: TODOER_LOG_FORMAT (default: pretty)
	LogFormat string `envconfig:"LOG_FORMAT"`

	// APIKeys is a comma-separated list of valid API keys. When empty,
	// mutating API endpoints accept unauthenticated requests.
	// Env: TODOER_API_KEYS
	APIKeys string `envconfig:"API_KEYS"`

	// PageSize is the default page size for list endpoints.
	// Env: TODOER_PAGE_SIZE (default: 50)
	PageSize int `envconfig:"PAGE_SIZE"`

	// ConfigFile is an optional YAML configuration file. Values from the
	// file are applied before environment overrides.
	// Env: TODOER_CONFIG_FILE
	ConfigFile string `envconfig:"CONFIG_FILE"`
}

// LoadFromEnv loads configuration from TODOER_-prefixed environment variables.
func LoadFromEnv() (EnvConfig, error) {
	return LoadFromEnvWithPrefix(envPrefix)
}

// LoadFromEnvWithPrefix loads configuration with a custom prefix.
func LoadFromEnvWithPrefix(prefix string) (EnvConfig, error) {
	var cfg EnvConfig
	if err := envconfig.Process(prefix, &cfg); err != nil {
		return EnvConfig{}, err
	}
	return cfg, nil
}

// ToAppConfig converts EnvConfig to AppConfig.
func (e EnvConfig) ToAppConfig() AppConfig {
	return e.applyTo(NewAppConfig())
}

// applyTo overlays the set environment values on top of an existing config.
func (e EnvConfig) applyTo(cfg AppConfig) AppConfig {
	if e.Host != "" {
		cfg = applyOption(cfg, WithHost(e.Host))
	}
	if e.Port != 0 {
		cfg = applyOption(cfg, WithPort(e.Port))
	}
	if e.DataDir != "" {
		cfg = applyOption(cfg, WithDataDir(e.DataDir))
	}
	if e.DBURL != "" {
		cfg = applyOption(cfg, WithDBURL(e.DBURL))
	}
	if e.LogLevel != "" {
		cfg = applyOption(cfg, WithLogLevel(e.LogLevel))
	}
	if e.LogFormat != "" {
		cfg = applyOption(cfg, WithLogFormat(parseLogFormat(e.LogFormat)))
	}
	if e.APIKeys != "" {
		cfg = applyOption(cfg, WithAPIKeys(ParseAPIKeys(e.APIKeys)))
	}
	if e.PageSize > 0 {
		cfg = applyOption(cfg, WithPageSize(e.PageSize))
	}
	return cfg
}

// applyOption applies an option to the config.
func applyOption(cfg AppConfig, opt AppConfigOption) AppConfig {
	opt(&cfg)
	return cfg
}

// parseLogFormat parses a log format string.
func parseLogFormat(s string) LogFormat {
	switch strings.ToLower(s) {
	case "json":
		return LogFormatJSON
	default:
		return LogFormatPretty
	}
}
