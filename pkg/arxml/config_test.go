package arxml

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()

	assert.Equal(t, "info", config.LogLevel)
	assert.Equal(t, 2, config.JSONIndent)
	assert.Equal(t, 2, config.XMLIndent)
	assert.NoError(t, config.Validate())
}

func TestConfigFromEnvironment(t *testing.T) {
	tests := []struct {
		name    string
		envVars map[string]string
		check   func(t *testing.T, config *Config)
	}{
		{
			name:    "log level",
			envVars: map[string]string{"ARXML_LOG_LEVEL": "debug"},
			check: func(t *testing.T, config *Config) {
				assert.Equal(t, "debug", config.LogLevel)
			},
		},
		{
			name:    "JSON indent",
			envVars: map[string]string{"ARXML_JSON_INDENT": "4"},
			check: func(t *testing.T, config *Config) {
				assert.Equal(t, 4, config.JSONIndent)
			},
		},
		{
			name:    "XML indent",
			envVars: map[string]string{"ARXML_XML_INDENT": "0"},
			check: func(t *testing.T, config *Config) {
				assert.Equal(t, 0, config.XMLIndent)
			},
		},
		{
			name:    "invalid number keeps default",
			envVars: map[string]string{"ARXML_JSON_INDENT": "wide"},
			check: func(t *testing.T, config *Config) {
				assert.Equal(t, 2, config.JSONIndent)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.envVars {
				t.Setenv(k, v)
			}
			tt.check(t, ConfigFromEnvironment())
		})
	}
}

func TestLoadConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "arxml.yaml")
	require.NoError(t, os.WriteFile(path, []byte("log_level: warn\njson_indent: 4\n"), 0o644))

	config, err := LoadConfigFile(path)
	require.NoError(t, err)

	assert.Equal(t, "warn", config.LogLevel)
	assert.Equal(t, 4, config.JSONIndent)
	// Unset fields keep their defaults.
	assert.Equal(t, 2, config.XMLIndent)
}

func TestLoadConfigFileErrors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := LoadConfigFile(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.Error(t, err)
	})

	t.Run("malformed YAML", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bad.yaml")
		require.NoError(t, os.WriteFile(path, []byte("log_level: [unclosed"), 0o644))
		_, err := LoadConfigFile(path)
		assert.Error(t, err)
	})

	t.Run("invalid values", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "invalid.yaml")
		require.NoError(t, os.WriteFile(path, []byte("log_level: loud\n"), 0o644))
		_, err := LoadConfigFile(path)
		assert.Error(t, err)
	})
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr bool
	}{
		{name: "valid", config: Config{LogLevel: "error", JSONIndent: 0, XMLIndent: 8}},
		{name: "bad log level", config: Config{LogLevel: "loud", JSONIndent: 2, XMLIndent: 2}, wantErr: true},
		{name: "negative JSON indent", config: Config{LogLevel: "info", JSONIndent: -1, XMLIndent: 2}, wantErr: true},
		{name: "negative XML indent", config: Config{LogLevel: "info", JSONIndent: 2, XMLIndent: -1}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
