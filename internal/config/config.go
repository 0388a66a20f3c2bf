package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Output formats
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

var (
	ErrUnknownFileType = errors.New("unknown config file type")
	ErrInvalid         = errors.New("invalid config")
)

// Config holds the settings of the lecs command
type Config struct {
	Output      OutputConfig      `toml:"output" yaml:"output"`
	Diagnostics DiagnosticsConfig `toml:"diagnostics" yaml:"diagnostics"`
	Watch       WatchConfig       `toml:"watch" yaml:"watch"`
	Log         LogConfig         `toml:"log" yaml:"log"`
}

// OutputConfig controls how tokens and trees are printed
type OutputConfig struct {
	Format string `toml:"format" yaml:"format"`
	Indent int    `toml:"indent" yaml:"indent"`
	Color  bool   `toml:"color" yaml:"color"`
}

// DiagnosticsConfig controls how reader errors are printed
type DiagnosticsConfig struct {
	ContextLines int  `toml:"context_lines" yaml:"context_lines"`
	Color        bool `toml:"color" yaml:"color"`
}

// WatchConfig holds the settings of the watch command
type WatchConfig struct {
	Debounce   Duration `toml:"debounce" yaml:"debounce"`
	Extensions []string `toml:"extensions" yaml:"extensions"`
}

// LogConfig holds logger settings
type LogConfig struct {
	Level  string `toml:"level" yaml:"level"`
	Format string `toml:"format" yaml:"format"`
}

// Duration wraps time.Duration for TOML and YAML parsing
type Duration struct {
	time.Duration
}

// UnmarshalText parses a duration string
func (d *Duration) UnmarshalText(text []byte) error {
	var err error
	d.Duration, err = time.ParseDuration(string(text))
	return err
}

// MarshalText formats the duration as a string
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// UnmarshalYAML parses a duration string from a YAML scalar
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	return d.UnmarshalText([]byte(value.Value))
}

// Default returns the configuration used when no file is given
func Default() *Config {
	return &Config{
		Output: OutputConfig{
			Format: FormatText,
			Indent: 2,
			Color:  true,
		},
		Diagnostics: DiagnosticsConfig{
			ContextLines: 1,
			Color:        true,
		},
		Watch: WatchConfig{
			Debounce:   Duration{200 * time.Millisecond},
			Extensions: []string{".lecs", ".edn", ".clj"},
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// Load reads a configuration file on top of the defaults. The decoder is
// chosen by extension: .toml, .yaml or .yml. An empty path returns the
// defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	path = os.ExpandEnv(path)

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := cfg.decode(content, fileType(path)); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadFromString parses configuration content of the given type ("toml" or
// "yaml") on top of the defaults.
func LoadFromString(content string, fileType string) (*Config, error) {
	cfg := Default()
	if err := cfg.decode([]byte(content), fileType); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func fileType(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return "toml"
	case ".yaml", ".yml":
		return "yaml"
	}
	return ""
}

func (c *Config) decode(content []byte, fileType string) error {
	switch fileType {
	case "toml":
		_, err := toml.Decode(string(content), c)
		return err
	case "yaml":
		return yaml.Unmarshal(content, c)
	}
	return fmt.Errorf("%w: %q", ErrUnknownFileType, fileType)
}

// ApplyEnv overrides settings from the environment: LECS_LOG_LEVEL,
// LECS_FORMAT and NO_COLOR.
func (c *Config) ApplyEnv() {
	if level := os.Getenv("LECS_LOG_LEVEL"); level != "" {
		c.Log.Level = level
	}
	if format := os.Getenv("LECS_FORMAT"); format != "" {
		c.Output.Format = format
	}
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		c.Output.Color = false
		c.Diagnostics.Color = false
	}
}

// Validate checks that every setting holds a known value
func (c *Config) Validate() error {
	switch c.Output.Format {
	case FormatText, FormatJSON, FormatYAML:
	default:
		return fmt.Errorf("%w: unknown output format %q", ErrInvalid, c.Output.Format)
	}

	if c.Output.Indent < 0 {
		return fmt.Errorf("%w: negative indent %d", ErrInvalid, c.Output.Indent)
	}

	if c.Diagnostics.ContextLines < 0 {
		return fmt.Errorf("%w: negative context_lines %d", ErrInvalid, c.Diagnostics.ContextLines)
	}

	if c.Watch.Debounce.Duration < 0 {
		return fmt.Errorf("%w: negative debounce %v", ErrInvalid, c.Watch.Debounce)
	}

	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: unknown log level %q", ErrInvalid, c.Log.Level)
	}

	switch c.Log.Format {
	case "text", "json":
	default:
		return fmt.Errorf("%w: unknown log format %q", ErrInvalid, c.Log.Format)
	}

	return nil
}
