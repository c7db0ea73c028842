// File: config.go
// Title: Logger Configuration Loading
// Description: Loads logger settings (module name, backend, threshold)
//              from TOML or YAML files with environment variable
//              overrides, and resolves them into a log.Config.
// Author: msto63
// Version: v0.1.0
// Created: 2025-08-24
// Modified: 2025-08-24
//
// Change History:
// - 2025-08-24 v0.1.0: Initial implementation with TOML/YAML support

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/msto63/zcheck/core/log"
	"github.com/msto63/zcheck/utils/stringx"
)

// Format represents the configuration file format
type Format int

const (
	// FormatTOML represents TOML format (default)
	FormatTOML Format = iota

	// FormatYAML represents YAML format
	FormatYAML

	// FormatAuto auto-detects the format from the file extension
	FormatAuto
)

// String returns the string representation of the format
func (f Format) String() string {
	switch f {
	case FormatTOML:
		return "toml"
	case FormatYAML:
		return "yaml"
	case FormatAuto:
		return "auto"
	default:
		return "unknown"
	}
}

// DefaultEnvPrefix is the environment variable prefix used when none is
// configured. The resulting variables are ZCHECK_MODULE, ZCHECK_BACKEND
// and ZCHECK_LEVEL
const DefaultEnvPrefix = "ZCHECK"

// Settings holds the file representation of a logger configuration
type Settings struct {
	// Module is the display label for the logger
	Module string `toml:"module" yaml:"module"`

	// Backend selects the output target: stdout, stderr, syslog or
	// external
	Backend string `toml:"backend" yaml:"backend"`

	// Level is the severity threshold: emergency through debug
	Level string `toml:"level" yaml:"level"`
}

// LoadOptions defines options for loading configuration
type LoadOptions struct {
	// Format of the file (default: auto-detect by extension)
	Format Format

	// EnvPrefix for environment overrides (default: DefaultEnvPrefix;
	// set to "-" to disable overrides)
	EnvPrefix string
}

// Load loads logger settings from a file with default options
func Load(filePath string) (*Settings, error) {
	return LoadWithOptions(filePath, LoadOptions{Format: FormatAuto})
}

// LoadWithOptions loads logger settings from a file with custom
// options. Environment variables override file values
func LoadWithOptions(filePath string, options LoadOptions) (*Settings, error) {
	if stringx.IsBlank(filePath) {
		return nil, fmt.Errorf("config: file path cannot be empty")
	}

	content, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", filePath, err)
	}

	format := options.Format
	if format == FormatAuto {
		format = detectFormat(filePath)
	}

	settings, err := parseContent(content, format)
	if err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", filePath, err)
	}

	settings.applyEnv(options.EnvPrefix)
	return settings, nil
}

// LoadFromString loads logger settings from a string with the given
// format. No environment overrides are applied
func LoadFromString(content string, format Format) (*Settings, error) {
	if format == FormatAuto {
		format = FormatTOML
	}
	settings, err := parseContent([]byte(content), format)
	if err != nil {
		return nil, fmt.Errorf("config: parse string: %w", err)
	}
	return settings, nil
}

// detectFormat determines the configuration format from the file
// extension; TOML is the default
func detectFormat(filePath string) Format {
	switch strings.ToLower(filepath.Ext(filePath)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatTOML
	}
}

// parseContent parses configuration content based on format
func parseContent(content []byte, format Format) (*Settings, error) {
	var settings Settings

	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(content, &settings); err != nil {
			return nil, fmt.Errorf("yaml: %w", err)
		}
	default:
		if err := toml.Unmarshal(content, &settings); err != nil {
			return nil, fmt.Errorf("toml: %w", err)
		}
	}

	return &settings, nil
}

// applyEnv overrides file values from the environment
func (s *Settings) applyEnv(prefix string) {
	if prefix == "-" {
		return
	}
	prefix = stringx.DefaultIfBlank(prefix, DefaultEnvPrefix)

	if v, ok := os.LookupEnv(prefix + "_MODULE"); ok {
		s.Module = v
	}
	if v, ok := os.LookupEnv(prefix + "_BACKEND"); ok {
		s.Backend = v
	}
	if v, ok := os.LookupEnv(prefix + "_LEVEL"); ok {
		s.Level = v
	}
}

// Validate checks that backend and level resolve to defined values.
// Blank fields are valid; they fall back to defaults in Config
func (s *Settings) Validate() error {
	if stringx.IsNotBlank(s.Backend) {
		if _, err := log.ParseBackend(s.Backend); err != nil {
			return err
		}
	}
	if stringx.IsNotBlank(s.Level) {
		if _, err := log.ParseLevel(s.Level); err != nil {
			return err
		}
	}
	return nil
}

// Config resolves the settings into a log.Config. Blank backend
// defaults to stderr, blank level to the package default threshold
func (s *Settings) Config() (log.Config, error) {
	cfg := log.Config{
		Backend: log.BackendStderr,
		Level:   log.DefaultLevel(),
		Module:  s.Module,
	}

	if stringx.IsNotBlank(s.Backend) {
		backend, err := log.ParseBackend(s.Backend)
		if err != nil {
			return cfg, err
		}
		cfg.Backend = backend
	}

	if stringx.IsNotBlank(s.Level) {
		level, err := log.ParseLevel(s.Level)
		if err != nil {
			return cfg, err
		}
		cfg.Level = level
	}

	return cfg, nil
}

// Open resolves the settings and opens the given runtime logger with
// them
func (s *Settings) Open(logger *log.Runtime) error {
	cfg, err := s.Config()
	if err != nil {
		return err
	}
	logger.OpenConfig(cfg)
	return nil
}
