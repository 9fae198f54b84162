package config

import (
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewAppConfig_Defaults(t *testing.T) {
	cfg := NewAppConfig()

	assert.Equal(t, DefaultHost, cfg.Host())
	assert.Equal(t, DefaultPort, cfg.Port())
	assert.Equal(t, DefaultLogLevel, cfg.LogLevel())
	assert.Equal(t, LogFormatPretty, cfg.LogFormat())
	assert.Equal(t, DefaultPageSize, cfg.PageSize())
	assert.Empty(t, cfg.APIKeys())
	assert.True(t, strings.HasSuffix(cfg.DataDir(), ".todoer"))
	assert.True(t, strings.HasPrefix(cfg.DBURL(), "sqlite:///"))
	assert.True(t, strings.HasSuffix(cfg.DBURL(), DefaultDBFile))
}

func TestNewAppConfigWithOptions(t *testing.T) {
	cfg := NewAppConfigWithOptions(
		WithHost("127.0.0.1"),
		WithPort(9000),
		WithLogLevel("DEBUG"),
		WithLogFormat(LogFormatJSON),
		WithAPIKeys([]string{"key1", "key2"}),
		WithPageSize(25),
	)

	assert.Equal(t, "127.0.0.1", cfg.Host())
	assert.Equal(t, 9000, cfg.Port())
	assert.Equal(t, "DEBUG", cfg.LogLevel())
	assert.Equal(t, LogFormatJSON, cfg.LogFormat())
	assert.Equal(t, []string{"key1", "key2"}, cfg.APIKeys())
	assert.Equal(t, 25, cfg.PageSize())
}

func TestAppConfig_Addr(t *testing.T) {
	cfg := NewAppConfigWithOptions(WithHost("localhost"), WithPort(3000))
	assert.Equal(t, "localhost:3000", cfg.Addr())
}

func TestWithDataDir_UpdatesDefaultDBURL(t *testing.T) {
	cfg := NewAppConfigWithOptions(WithDataDir("/custom/data"))

	assert.Equal(t, "/custom/data", cfg.DataDir())
	assert.Equal(t, "sqlite:///"+"/custom/data/"+DefaultDBFile, cfg.DBURL())
}

func TestWithDataDir_PreservesExplicitDBURL(t *testing.T) {
	cfg := NewAppConfigWithOptions(
		WithDBURL("postgres://localhost/todoer"),
		WithDataDir("/custom/data"),
	)

	assert.Equal(t, "postgres://localhost/todoer", cfg.DBURL())
}

func TestWithPageSize_RejectsNonPositive(t *testing.T) {
	cfg := NewAppConfigWithOptions(WithPageSize(0))
	assert.Equal(t, DefaultPageSize, cfg.PageSize())

	cfg = NewAppConfigWithOptions(WithPageSize(-5))
	assert.Equal(t, DefaultPageSize, cfg.PageSize())
}

func TestAppConfig_Apply(t *testing.T) {
	base := NewAppConfig()
	modified := base.Apply(WithPort(9999))

	assert.Equal(t, 9999, modified.Port())
	assert.Equal(t, DefaultPort, base.Port(), "Apply should not mutate the receiver")
}

func TestAppConfig_APIKeysCopy(t *testing.T) {
	cfg := NewAppConfigWithOptions(WithAPIKeys([]string{"secret"}))

	keys := cfg.APIKeys()
	keys[0] = "mutated"

	assert.Equal(t, []string{"secret"}, cfg.APIKeys())
}

func TestParseAPIKeys(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"empty", "", []string{}},
		{"single", "key1", []string{"key1"}},
		{"multiple", "key1,key2,key3", []string{"key1", "key2", "key3"}},
		{"spaces", " key1 , key2 ", []string{"key1", "key2"}},
		{"trailing comma", "key1,", []string{"key1"}},
		{"only commas", ",,", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseAPIKeys(tt.input))
		})
	}
}

func TestMaskedDBURL(t *testing.T) {
	sqlite := NewAppConfigWithOptions(WithDBURL("sqlite:///tmp/todoer.db"))
	assert.Equal(t, "sqlite:///tmp/todoer.db", sqlite.maskedDBURL())

	pg := NewAppConfigWithOptions(WithDBURL("postgres://user:secret@db:5432/todoer"))
	assert.Equal(t, "postgres://***@***", pg.maskedDBURL())
}

func TestAppConfig_LogAttrs(t *testing.T) {
	cfg := NewAppConfigWithOptions(
		WithDBURL("postgres://user:secret@db:5432/todoer"),
		WithAPIKeys([]string{"a", "b"}),
	)

	attrs := cfg.LogAttrs()

	byKey := make(map[string]slog.Attr, len(attrs))
	for _, a := range attrs {
		byKey[a.Key] = a
	}

	assert.Contains(t, byKey, "db_url")
	assert.NotContains(t, byKey["db_url"].Value.String(), "secret")
	assert.Equal(t, int64(2), byKey["api_keys_count"].Value.Int64())
}
