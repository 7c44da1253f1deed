// Package config loads the optional colorcat configuration file.
//
// Nothing here is required: without a file every setting keeps the classic
// behavior, and command-line flags override whatever the file sets.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"runtime"

	"github.com/charliek/colorcat/internal/constants"
	"github.com/charliek/colorcat/internal/domain"
	"gopkg.in/yaml.v3"
)

// Config represents the top-level colorcat configuration
type Config struct {
	Highlight string                  `yaml:"highlight"`
	Wrap      bool                    `yaml:"wrap"`
	TagColors bool                    `yaml:"tag_colors"`
	Source    SourceConfig            `yaml:"source"`
	Tags      map[string]domain.Color `yaml:"tags"`
	Rules     []domain.Rule           `yaml:"rules"`
}

// SourceConfig is the command run when stdin is a terminal. It can be
// written as a plain command string or in expanded form.
type SourceConfig struct {
	Command string            `yaml:"command"`
	EnvFile string            `yaml:"env_file"`
	Env     map[string]string `yaml:"env"`
}

// rawConfig is used for initial YAML parsing to handle the flexible source format
type rawConfig struct {
	Highlight string                  `yaml:"highlight"`
	Wrap      bool                    `yaml:"wrap"`
	TagColors bool                    `yaml:"tag_colors"`
	Source    interface{}             `yaml:"source"`
	Tags      map[string]domain.Color `yaml:"tags"`
	Rules     []domain.Rule           `yaml:"rules"`
}

// Default returns the configuration used when no file is given
func Default() *Config {
	return &Config{
		Source: SourceConfig{Command: constants.DefaultCommand},
		Tags:   map[string]domain.Color{},
	}
}

// Load reads and parses a configuration file. The file names a command that
// gets run, so a world-writable file is refused.
func Load(path string) (*Config, error) {
	info, err := os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", domain.ErrConfigNotFound, path)
	}
	if err != nil {
		return nil, fmt.Errorf("checking config file: %w", err)
	}
	if runtime.GOOS != "windows" && info.Mode().Perm()&0o002 != 0 {
		return nil, fmt.Errorf("config file %s is world-writable; run: chmod o-w %s", path, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	return Parse(data)
}

// Parse parses configuration from YAML bytes
func Parse(data []byte) (*Config, error) {
	var raw rawConfig
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing yaml: %w", err)
	}

	source, err := parseSourceConfig(raw.Source)
	if err != nil {
		return nil, fmt.Errorf("source: %w", err)
	}

	config := &Config{
		Highlight: raw.Highlight,
		Wrap:      raw.Wrap,
		TagColors: raw.TagColors,
		Source:    source,
		Tags:      raw.Tags,
		Rules:     raw.Rules,
	}

	// Apply defaults
	if config.Source.Command == "" {
		config.Source.Command = constants.DefaultCommand
	}
	if config.Tags == nil {
		config.Tags = map[string]domain.Color{}
	}

	if err := Validate(config); err != nil {
		return nil, err
	}

	return config, nil
}

// parseSourceConfig handles both simple and expanded source definitions
func parseSourceConfig(value interface{}) (SourceConfig, error) {
	switch v := value.(type) {
	case nil:
		return SourceConfig{}, nil
	case string:
		// Simple form: source: adb -d logcat -v threadtime
		return SourceConfig{Command: v}, nil
	case map[string]interface{}:
		// Expanded form: re-marshal and unmarshal to struct
		data, err := yaml.Marshal(v)
		if err != nil {
			return SourceConfig{}, fmt.Errorf("marshaling source config: %w", err)
		}
		var src SourceConfig
		if err := yaml.Unmarshal(data, &src); err != nil {
			return SourceConfig{}, fmt.Errorf("unmarshaling source config: %w", err)
		}
		return src, nil
	default:
		return SourceConfig{}, fmt.Errorf("invalid source configuration type: %T", value)
	}
}

// ToDomainSource converts the source section to a domain.SourceConfig.
// env is the fully merged environment (see LoadSourceEnv).
func (c *Config) ToDomainSource(env map[string]string) domain.SourceConfig {
	return domain.SourceConfig{
		Command: c.Source.Command,
		Env:     env,
	}
}
