package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Paths     PathsConfig   `yaml:"paths"`
	Gemini    GeminiConfig  `yaml:"gemini"`
	Output    OutputConfig  `yaml:"output"`
	Logging   LoggingConfig `yaml:"logging"`
	Watch     WatchConfig   `yaml:"watch"`
	Encodings []string      `yaml:"encodings"`
}

type PathsConfig struct {
	Input  string `yaml:"input"`
	Output string `yaml:"output"`
}

type GeminiConfig struct {
	Mode   string `yaml:"mode"`
	Prompt string `yaml:"prompt"`
}

type OutputConfig struct {
	Format string `yaml:"format"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

type WatchConfig struct {
	Enabled bool `yaml:"enabled"`
}

// Load reads and validates a YAML config file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Paths.Input == "" {
		return fmt.Errorf("paths.input is required")
	}
	if c.Paths.Output == "" {
		return fmt.Errorf("paths.output is required")
	}

	if c.Gemini.Mode == "" {
		c.Gemini.Mode = "free"
	}
	if c.Gemini.Mode != "free" && c.Gemini.Mode != "paid" {
		return fmt.Errorf("gemini.mode must be \"free\" or \"paid\", got %q", c.Gemini.Mode)
	}

	if c.Output.Format == "" {
		c.Output.Format = "txt"
	}
	if c.Output.Format != "txt" && c.Output.Format != "docx" {
		return fmt.Errorf("output.format must be \"txt\" or \"docx\", got %q", c.Output.Format)
	}

	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}

	if len(c.Encodings) == 0 {
		c.Encodings = []string{"utf-8", "cp949", "euc-kr"}
	}

	return nil
}
