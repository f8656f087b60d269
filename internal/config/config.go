package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config is the generator configuration, usually loaded from builder.yaml.
type Config struct {
	// Version of the config schema. Currently "1".
	Version string `yaml:"version"`
	// Packages are Go package patterns to load, e.g. "./..." or
	// "builder-generator/examples/basic".
	Packages []string `yaml:"packages"`
	// Records optionally names record types to generate builders for, as
	// "Type", "pkg.Type", or "full/import/path.Type". Explicitly named
	// records are generated even without builder tags.
	Records []string `yaml:"records,omitempty"`
	// Discover enables tag-based discovery: every struct with at least one
	// `builder` field tag gets a builder. Defaults to true.
	Discover *bool `yaml:"discover,omitempty"`
	// Output controls file naming and optional features.
	Output Output `yaml:"output,omitempty"`
}

// Output holds generated-file options.
type Output struct {
	// Suffix of generated filenames. Defaults to "_builder.go".
	Suffix string `yaml:"suffix,omitempty"`
	// Coercion toggles the Into bridge and setter From variants.
	// Defaults to true.
	Coercion *bool `yaml:"coercion,omitempty"`
}

// LoadFile loads and parses a YAML config file from the given path.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	return Parse(data)
}

// Parse parses YAML data into a Config, applies defaults, and validates.
func Parse(data []byte) (*Config, error) {
	var c Config

	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("failed to parse config YAML: %w", err)
	}

	applyDefaults(&c)

	if err := c.Validate(); err != nil {
		return nil, err
	}

	return &c, nil
}

// applyDefaults fills in default values for optional fields.
func applyDefaults(c *Config) {
	if c.Version == "" {
		c.Version = "1"
	}

	if c.Output.Suffix == "" {
		c.Output.Suffix = "_builder.go"
	}
}

// Validate checks the config for structural problems.
func (c *Config) Validate() error {
	if c.Version != "1" {
		return fmt.Errorf("unsupported config version %q", c.Version)
	}

	if len(c.Packages) == 0 {
		return fmt.Errorf("config must list at least one package pattern")
	}

	if !strings.HasSuffix(c.Output.Suffix, ".go") {
		return fmt.Errorf("output suffix %q must end in .go", c.Output.Suffix)
	}

	for _, sel := range c.Records {
		if strings.TrimSpace(sel) == "" {
			return fmt.Errorf("empty record selector")
		}

		if strings.HasSuffix(sel, ".") {
			return fmt.Errorf("record selector %q has no type name", sel)
		}
	}

	return nil
}

// DiscoverEnabled reports whether tag-based discovery is on.
func (c *Config) DiscoverEnabled() bool {
	return c.Discover == nil || *c.Discover
}

// CoercionEnabled reports whether the coercion bridge should be emitted.
func (c *Config) CoercionEnabled() bool {
	return c.Output.Coercion == nil || *c.Output.Coercion
}
