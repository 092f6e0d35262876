package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"xlmapper/internal/header"
	"xlmapper/internal/schema"
)

func env(vars map[string]string) func(string) (string, bool) {
	return func(name string) (string, bool) {
		v, ok := vars[name]
		return v, ok
	}
}

func TestDefault(t *testing.T) {
	cfg := Default()

	require.NoError(t, cfg.Validate())
	assert.Equal(t, 1, cfg.Height)
	assert.Equal(t, header.AutoWidth, cfg.Width)
	assert.Equal(t, "Mapper", cfg.RootName)
	assert.Equal(t, "yaml", cfg.Format)
}

func TestApplyEnv(t *testing.T) {
	cfg := Default()
	err := cfg.ApplyEnv(env(map[string]string{
		"XLMAPPER_SHEET":      "Data",
		"XLMAPPER_HEIGHT":     " 3 ",
		"XLMAPPER_WIDTH":      "12",
		"XLMAPPER_V_OFFSET":   "2",
		"XLMAPPER_H_OFFSET":   "1",
		"XLMAPPER_NAME":       "Report",
		"XLMAPPER_FORMAT":     "ts",
		"XLMAPPER_CACHE_SIZE": "64",
		"XLMAPPER_VERBOSE":    "true",
		"OTHER_HEIGHT":        "9",
	}))
	require.NoError(t, err)

	assert.Equal(t, Config{
		Sheet:     "Data",
		Height:    3,
		Width:     12,
		RowOffset: 2,
		ColOffset: 1,
		RootName:  "Report",
		Format:    "ts",
		CacheSize: 64,
		Verbose:   true,
	}, cfg)

	assert.Equal(t, header.Options{Height: 3, Width: 12, Offset: schema.Offset{Row: 2, Col: 1}}, cfg.Header())
}

func TestApplyEnv_EmptyValuesKeepDefaults(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.ApplyEnv(env(map[string]string{"XLMAPPER_HEIGHT": "", "XLMAPPER_NAME": "  "})))

	assert.Equal(t, Default(), cfg)
}

func TestApplyEnv_Errors(t *testing.T) {
	tests := []struct {
		name string
		vars map[string]string
		want string
	}{
		{name: "height", vars: map[string]string{"XLMAPPER_HEIGHT": "two"}, want: "XLMAPPER_HEIGHT"},
		{name: "width", vars: map[string]string{"XLMAPPER_WIDTH": "wide"}, want: "XLMAPPER_WIDTH"},
		{name: "verbose", vars: map[string]string{"XLMAPPER_VERBOSE": "loud"}, want: "XLMAPPER_VERBOSE"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			err := cfg.ApplyEnv(env(tt.vars))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
		want   string
	}{
		{name: "height", modify: func(c *Config) { c.Height = 0 }, want: "height"},
		{name: "width", modify: func(c *Config) { c.Width = -1 }, want: "width"},
		{name: "offset", modify: func(c *Config) { c.RowOffset = -1 }, want: "offset"},
		{name: "root name", modify: func(c *Config) { c.RootName = "" }, want: "root name"},
		{name: "format", modify: func(c *Config) { c.Format = "python" }, want: `"python"`},
		{name: "cache", modify: func(c *Config) { c.CacheSize = -5 }, want: "cache size"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.modify(&cfg)

			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestValidate_JoinsErrors(t *testing.T) {
	cfg := Default()
	cfg.Height = 0
	cfg.Format = "python"

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "height")
	assert.Contains(t, err.Error(), "python")
}

func TestLoad_EnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(path, []byte("XLMAPPER_HEIGHT=4\nXLMAPPER_FORMAT=ts\n"), 0o644))

	t.Setenv("XLMAPPER_FORMAT", "flat")
	t.Cleanup(func() { _ = os.Unsetenv("XLMAPPER_HEIGHT") })

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 4, cfg.Height)
	assert.Equal(t, "flat", cfg.Format, "process environment wins over the file")
}

func TestLoad_MissingEnvFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.Error(t, err)
}
