package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thoreinstein/speclint/internal/errors"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "speclint.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestInit(t *testing.T) {
	viper.Reset()

	Init()

	assert.Equal(t, 1, viper.GetInt("version"))
	assert.Equal(t, FormatText, viper.GetString("format"))
	assert.Equal(t, 1, viper.GetInt("workers"))
}

func TestLoad_NoConfigFile(t *testing.T) {
	viper.Reset()
	t.Chdir(t.TempDir())

	Init()

	// Load with no config file should not error
	cfg, err := Load("")
	require.NoError(t, err)
	require.NotNil(t, cfg)
	assert.Equal(t, 1, cfg.Version)
	assert.Equal(t, FormatText, cfg.Format)
	assert.Equal(t, 1, cfg.Workers)
}

func TestLoad_WithConfigFile(t *testing.T) {
	viper.Reset()
	path := writeConfig(t, "format: json\nworkers: 4\ndisabled_rules:\n  - info-title\n  - tags-unique\n")

	Init()

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, FormatJSON, cfg.Format)
	assert.Equal(t, 4, cfg.Workers)
	assert.Equal(t, []string{"info-title", "tags-unique"}, cfg.DisabledRules)
	assert.Equal(t, path, ConfigFileUsed())
}

func TestLoad_EnvOverride(t *testing.T) {
	viper.Reset()
	path := writeConfig(t, "format: text\n")
	t.Setenv("SPECLINT_FORMAT", "json")

	Init()

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, FormatJSON, cfg.Format)
}

func TestLoad_InvalidConfig(t *testing.T) {
	viper.Reset()
	path := writeConfig(t, "version: 0\nformat: xml\nworkers: 0\n")

	Init()

	_, err := Load(path)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrInvalidConfig))
	assert.True(t, errors.Is(err, ErrVersionTooLow))
	assert.True(t, errors.Is(err, ErrInvalidFormat))
	assert.True(t, errors.Is(err, ErrInvalidWorkers))
}

func TestLoad_ExplicitPathNotFound(t *testing.T) {
	viper.Reset()
	Init()

	_, err := Load("/non/existent/path/speclint.yaml")
	assert.Error(t, err)
}

func TestLoad_MalformedYAML(t *testing.T) {
	viper.Reset()
	path := writeConfig(t, "format: [unterminated\n")

	Init()

	_, err := Load(path)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     *Config
		wantErr []error
	}{
		{"nil config", nil, nil},
		{"defaults", Default(), nil},
		{"json format", &Config{Version: 1, Format: FormatJSON, Workers: 8}, nil},
		{"bad version", &Config{Version: 0, Format: FormatText, Workers: 1}, []error{ErrVersionTooLow}},
		{"bad format", &Config{Version: 1, Format: "xml", Workers: 1}, []error{ErrInvalidFormat}},
		{"bad workers", &Config{Version: 1, Format: FormatText, Workers: 0}, []error{ErrInvalidWorkers}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := Validate(tt.cfg)
			if tt.cfg == nil {
				require.Len(t, errs, 1)
				return
			}
			require.Len(t, errs, len(tt.wantErr))
			for i, want := range tt.wantErr {
				assert.True(t, errors.Is(errs[i], want), "error %d = %v, want %v", i, errs[i], want)
			}
		})
	}
}

func TestFieldError(t *testing.T) {
	err := &FieldError{Field: "format", Value: "xml", Err: ErrInvalidFormat}
	assert.Equal(t, "format: invalid format: xml", err.Error())
	assert.True(t, errors.Is(err, ErrInvalidFormat))
}
