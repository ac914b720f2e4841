package config

import (
	"os"
	"path/filepath"
	"testing"

	"safha/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"PORT", "ENVIRONMENT", "CORS_ORIGINS", "AUTH_JWKS_URL", "LOG_DIR", "LOG_MAX_FILES",
		"PAGE_SIZE", "MAX_PAGE_SIZE", "SEARCH_MIN_KEYWORD_LENGTH", "SEARCH_DEFAULT_LIMIT",
		"SEARCH_MAX_LIMIT", "CONFIG_FILE",
	} {
		t.Setenv(key, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "dev", cfg.Environment)
	assert.Equal(t, "", cfg.AuthJWKSURL)
	assert.Equal(t, 100, cfg.Pagination.PageSize)
	assert.Equal(t, DefaultMaxPageSize, cfg.Pagination.MaxPageSize)
	assert.Equal(t, 3, cfg.Search.MinKeywordLength)
	assert.Equal(t, 20, cfg.Search.DefaultLimit)
	assert.Equal(t, 100, cfg.Search.MaxLimit)
}

func TestLoad_EnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "9090")
	t.Setenv("PAGE_SIZE", "250")
	t.Setenv("SEARCH_MIN_KEYWORD_LENGTH", "2")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, 250, cfg.Pagination.PageSize)
	assert.Equal(t, 2, cfg.Search.MinKeywordLength)
}

func TestLoad_InvalidPageSize(t *testing.T) {
	tests := []struct {
		name  string
		value string
	}{
		{name: "zero", value: "0"},
		{name: "negative", value: "-5"},
		{name: "above max", value: "20000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv("PAGE_SIZE", tt.value)

			_, err := Load()
			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrConfiguration)
		})
	}
}

func TestLoad_NonNumericFallsBackToDefault(t *testing.T) {
	clearEnv(t)
	t.Setenv("PAGE_SIZE", "lots")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, DefaultPageSize, cfg.Pagination.PageSize)
}

func TestLoad_ConfigFile(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "safha.yaml")
	content := []byte("pagination:\n  page_size: 40\nsearch:\n  max_limit: 50\n")
	require.NoError(t, os.WriteFile(path, content, 0644))
	t.Setenv("CONFIG_FILE", path)
	t.Setenv("PORT", "7000")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 40, cfg.Pagination.PageSize)
	assert.Equal(t, DefaultMaxPageSize, cfg.Pagination.MaxPageSize, "keys absent from the file keep env values")
	assert.Equal(t, 50, cfg.Search.MaxLimit)
	assert.Equal(t, 20, cfg.Search.DefaultLimit)
	assert.Equal(t, "7000", cfg.Port)
}

func TestLoad_ConfigFileErrors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("CONFIG_FILE", filepath.Join(t.TempDir(), "nope.yaml"))

		_, err := Load()
		require.Error(t, err)
		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("malformed yaml", func(t *testing.T) {
		clearEnv(t)
		path := filepath.Join(t.TempDir(), "bad.yaml")
		require.NoError(t, os.WriteFile(path, []byte("pagination: [1, 2"), 0644))
		t.Setenv("CONFIG_FILE", path)

		_, err := Load()
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrConfiguration)
	})

	t.Run("page size zero in file", func(t *testing.T) {
		clearEnv(t)
		path := filepath.Join(t.TempDir(), "zero.yaml")
		require.NoError(t, os.WriteFile(path, []byte("pagination:\n  page_size: 0\n"), 0644))
		t.Setenv("CONFIG_FILE", path)

		_, err := Load()
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrConfiguration)
	})
}

func TestSearchConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     SearchConfig
		wantErr bool
	}{
		{name: "valid", cfg: SearchConfig{MinKeywordLength: 3, DefaultLimit: 20, MaxLimit: 100}},
		{name: "default above max", cfg: SearchConfig{MinKeywordLength: 3, DefaultLimit: 200, MaxLimit: 100}, wantErr: true},
		{name: "zero keyword length", cfg: SearchConfig{MinKeywordLength: 0, DefaultLimit: 20, MaxLimit: 100}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
