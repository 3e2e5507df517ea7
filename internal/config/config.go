package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/iancoleman/strcase"
	"gopkg.in/yaml.v3"

	"github.com/mcncl/jsonist/internal/formatter"
)

// Error report formats
const (
	ErrorFormatText = "text"
	ErrorFormatJSON = "json"
)

// Colour modes
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// configNames are searched for, in order, in each directory
var configNames = []string{".jsonist.yml", ".jsonist.yaml", ".jsonist.toml", "jsonist.yml", "jsonist.yaml", "jsonist.toml"}

// Config represents the complete configuration for jsonist
type Config struct {
	Indent      string    `yaml:"indent" toml:"indent"`
	ErrorFormat string    `yaml:"error_format" toml:"error_format"`
	Color       string    `yaml:"color" toml:"color"`
	Jobs        int       `yaml:"jobs" toml:"jobs"`
	Dev         DevConfig `yaml:"dev" toml:"dev"`
}

// DevConfig contains development/debug options
type DevConfig struct {
	Debug bool `yaml:"debug" toml:"debug"`
}

// NewConfig creates a new Config with default values
func NewConfig() *Config {
	return &Config{
		Indent:      formatter.FourSpaces.String(),
		ErrorFormat: ErrorFormatText,
		Color:       ColorAuto,
		Jobs:        0,
		Dev: DevConfig{
			Debug: false,
		},
	}
}

// LoadConfig loads configuration from a YAML or TOML file. The format is
// chosen by extension; anything other than .toml is read as YAML.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := NewConfig()

	if strings.EqualFold(filepath.Ext(path), ".toml") {
		if _, err := toml.Decode(string(data), cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	} else {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", path, err)
	}

	return cfg, nil
}

// FindConfigFile searches for a config file in current directory and parents
func FindConfigFile() string {
	currentDir, err := os.Getwd()
	if err != nil {
		return ""
	}
	return FindConfigFileFrom(currentDir)
}

// FindConfigFileFrom searches dir and then each of its parents
func FindConfigFileFrom(dir string) string {
	currentDir := dir
	for {
		for _, name := range configNames {
			configPath := filepath.Join(currentDir, name)
			if info, err := os.Stat(configPath); err == nil && !info.IsDir() {
				return configPath
			}
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			break
		}
		currentDir = parentDir
	}

	return ""
}

// Validate normalises the enum fields in place and rejects unknown values.
func (c *Config) Validate() error {
	delimiter, err := formatter.ParseDelimiter(c.Indent)
	if err != nil {
		return err
	}
	c.Indent = delimiter.String()

	switch format := strcase.ToSnake(c.ErrorFormat); format {
	case "", ErrorFormatText:
		c.ErrorFormat = ErrorFormatText
	case ErrorFormatJSON:
		c.ErrorFormat = ErrorFormatJSON
	default:
		return fmt.Errorf("unknown error format %q: expected text or json", c.ErrorFormat)
	}

	switch color := strcase.ToSnake(c.Color); color {
	case "", ColorAuto:
		c.Color = ColorAuto
	case ColorAlways, ColorNever:
		c.Color = color
	default:
		return fmt.Errorf("unknown color mode %q: expected auto, always or never", c.Color)
	}

	if c.Jobs < 0 {
		return fmt.Errorf("jobs must not be negative, got %d", c.Jobs)
	}

	return nil
}

// FormatConfig returns the formatter settings selected by Indent.
func (c *Config) FormatConfig() *formatter.FormatConfig {
	delimiter, err := formatter.ParseDelimiter(c.Indent)
	if err != nil {
		return formatter.DefaultFormatConfig()
	}
	return formatter.NewFormatConfig(delimiter)
}

// MergeConfigs merges CLI overrides into a base config
// Non-empty values from override take precedence over base values
func MergeConfigs(base, override *Config) *Config {
	merged := *base

	if override.Indent != "" {
		merged.Indent = override.Indent
	}
	if override.ErrorFormat != "" {
		merged.ErrorFormat = override.ErrorFormat
	}
	if override.Color != "" {
		merged.Color = override.Color
	}
	if override.Jobs > 0 {
		merged.Jobs = override.Jobs
	}
	// A flag can only switch debugging on
	if override.Dev.Debug {
		merged.Dev.Debug = true
	}

	return &merged
}

// LoadConfigWithCLI loads config with CLI argument precedence:
// CLI flags, then the config file, then defaults. Empty CLI values are
// treated as unset.
func LoadConfigWithCLI(configPath string, cli *Config) (*Config, error) {
	cfg := NewConfig()

	if configPath != "" {
		fileConfig, err := LoadConfig(configPath)
		if err != nil {
			return nil, err
		}
		cfg = fileConfig
	}

	if cli != nil {
		cfg = MergeConfigs(cfg, cli)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}
