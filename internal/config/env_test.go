package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearEnvVars unsets all TODOER_ variables for the duration of the test.
func clearEnvVars(t *testing.T) {
	t.Helper()
	keys := []string{
		"TODOER_HOST", "TODOER_PORT", "TODOER_DATA_DIR", "TODOER_DB_URL",
		"TODOER_LOG_LEVEL", "TODOER_LOG_FORMAT", "TODOER_API_KEYS",
		"TODOER_PAGE_SIZE", "TODOER_CONFIG_FILE",
	}
	for _, key := range keys {
		if v, ok := os.LookupEnv(key); ok {
			t.Cleanup(func() { _ = os.Setenv(key, v) })
			_ = os.Unsetenv(key)
		}
	}
}

func TestLoadFromEnv_Unset(t *testing.T) {
	clearEnvVars(t)

	cfg, err := LoadFromEnv()
	require.NoError(t, err)

	assert.Equal(t, "", cfg.Host)
	assert.Equal(t, 0, cfg.Port)
	assert.Equal(t, "", cfg.DataDir)
	assert.Equal(t, "", cfg.DBURL)
	assert.Equal(t, "", cfg.LogLevel)
	assert.Equal(t, "", cfg.LogFormat)
	assert.Equal(t, "", cfg.APIKeys)
	assert.Equal(t, 0, cfg.PageSize)
}

func TestLoadFromEnv_OverrideValues(t *testing.T) {
	clearEnvVars(t)
	t.Setenv("TODOER_HOST", "127.0.0.1")
	t.Setenv("TODOER_PORT", "9000")
	t.Setenv("TODOER_DATA_DIR", "/custom/data")
	t.Setenv("TODOER_DB_URL", "postgres://localhost/todoer")
	t.Setenv("TODOER_LOG_LEVEL", "DEBUG")
	t.Setenv("TODOER_LOG_FORMAT", "json")
	t.Setenv("TODOER_API_KEYS", "key1,key2,key3")
	t.Setenv("TODOER_PAGE_SIZE", "100")

	cfg, err := LoadFromEnv()
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1", cfg.Host)
	assert.Equal(t, 9000, cfg.Port)
	assert.Equal(t, "/custom/data", cfg.DataDir)
	assert.Equal(t, "postgres://localhost/todoer", cfg.DBURL)
	assert.Equal(t, "DEBUG", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, "key1,key2,key3", cfg.APIKeys)
	assert.Equal(t, 100, cfg.PageSize)
}

func TestEnvConfig_ToAppConfig_Defaults(t *testing.T) {
	cfg := EnvConfig{}.ToAppConfig()

	assert.Equal(t, DefaultHost, cfg.Host())
	assert.Equal(t, DefaultPort, cfg.Port())
	assert.Equal(t, DefaultLogLevel, cfg.LogLevel())
	assert.Equal(t, LogFormatPretty, cfg.LogFormat())
	assert.Equal(t, DefaultPageSize, cfg.PageSize())
}

func TestEnvConfig_ToAppConfig_Overrides(t *testing.T) {
	env := EnvConfig{
		Host:      "10.0.0.1",
		Port:      9200,
		DBURL:     "postgres://localhost/todoer",
		LogLevel:  "ERROR",
		LogFormat: "json",
		APIKeys:   "a, b",
		PageSize:  20,
	}

	cfg := env.ToAppConfig()

	assert.Equal(t, "10.0.0.1", cfg.Host())
	assert.Equal(t, 9200, cfg.Port())
	assert.Equal(t, "postgres://localhost/todoer", cfg.DBURL())
	assert.Equal(t, "ERROR", cfg.LogLevel())
	assert.Equal(t, LogFormatJSON, cfg.LogFormat())
	assert.Equal(t, []string{"a", "b"}, cfg.APIKeys())
	assert.Equal(t, 20, cfg.PageSize())
}

func TestParseLogFormat(t *testing.T) {
	assert.Equal(t, LogFormatJSON, parseLogFormat("json"))
	assert.Equal(t, LogFormatJSON, parseLogFormat("JSON"))
	assert.Equal(t, LogFormatPretty, parseLogFormat("pretty"))
	assert.Equal(t, LogFormatPretty, parseLogFormat("anything-else"))
}

func TestLoadFromEnvWithPrefix(t *testing.T) {
	clearEnvVars(t)
	t.Setenv("MYAPP_PORT", "7777")

	cfg, err := LoadFromEnvWithPrefix("myapp")
	require.NoError(t, err)

	assert.Equal(t, 7777, cfg.Port)
}

func TestLoadConfig_Precedence(t *testing.T) {
	clearEnvVars(t)

	dir := t.TempDir()
	configPath := filepath.Join(dir, "todoer.yaml")
	yaml := "port: 9100\nlog_level: DEBUG\n"
	require.NoError(t, os.WriteFile(configPath, []byte(yaml), 0o600))

	t.Setenv("TODOER_CONFIG_FILE", configPath)
	t.Setenv("TODOER_PORT", "9200")

	cfg, err := LoadConfig("")
	require.NoError(t, err)

	// Environment wins over the file; file wins over defaults.
	assert.Equal(t, 9200, cfg.Port())
	assert.Equal(t, "DEBUG", cfg.LogLevel())
	assert.Equal(t, DefaultHost, cfg.Host())
}

func TestLoadConfig_DotEnvFile(t *testing.T) {
	clearEnvVars(t)

	dir := t.TempDir()
	envPath := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(envPath, []byte("TODOER_LOG_LEVEL=WARN\n"), 0o600))
	t.Cleanup(func() { _ = os.Unsetenv("TODOER_LOG_LEVEL") })

	cfg, err := LoadConfig(envPath)
	require.NoError(t, err)

	assert.Equal(t, "WARN", cfg.LogLevel())
}

func TestLoadConfig_MissingDotEnvIsNotAnError(t *testing.T) {
	clearEnvVars(t)

	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, DefaultLogLevel, cfg.LogLevel())
}

func TestLoadConfig_BadConfigFile(t *testing.T) {
	clearEnvVars(t)

	dir := t.TempDir()
	configPath := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("port: [not a number"), 0o600))
	t.Setenv("TODOER_CONFIG_FILE", configPath)

	_, err := LoadConfig("")
	assert.Error(t, err)
}
