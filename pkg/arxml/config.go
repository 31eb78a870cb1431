package arxml

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config contains all configuration options for ARXML processing.
type Config struct {
	// LogLevel controls the verbosity of logging (debug, info, warn, error).
	LogLevel string `yaml:"log_level"`
	// JSONIndent is the number of spaces per level in JSON output. 0 emits
	// compact JSON.
	JSONIndent int `yaml:"json_indent"`
	// XMLIndent is the number of spaces per level when saving ARXML. 0
	// writes the tree without re-indentation.
	XMLIndent int `yaml:"xml_indent"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		LogLevel:   "info",
		JSONIndent: 2,
		XMLIndent:  2,
	}
}

// ConfigFromEnvironment creates a configuration from environment variables,
// falling back to defaults for anything unset.
func ConfigFromEnvironment() *Config {
	config := DefaultConfig()

	if val := os.Getenv("ARXML_LOG_LEVEL"); val != "" {
		config.LogLevel = val
	}

	if val := os.Getenv("ARXML_JSON_INDENT"); val != "" {
		if indent, err := strconv.Atoi(val); err == nil {
			config.JSONIndent = indent
		}
	}

	if val := os.Getenv("ARXML_XML_INDENT"); val != "" {
		if indent, err := strconv.Atoi(val); err == nil {
			config.XMLIndent = indent
		}
	}

	return config
}

// LoadConfigFile reads a YAML configuration file. Fields absent from the
// file keep their default values.
func LoadConfigFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("parsing config file %s: %w", path, err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("config file %s: %w", path, err)
	}

	return config, nil
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log level: %s", c.LogLevel)
	}

	if c.JSONIndent < 0 {
		return errors.New("JSON indent cannot be negative")
	}

	if c.XMLIndent < 0 {
		return errors.New("XML indent cannot be negative")
	}

	return nil
}
