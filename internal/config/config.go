// ABOUTME: Settings loading with global + project config merge
// ABOUTME: YAML-based configuration; project values override global values

package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/mauromedda/promptiq-go/internal/pattern"
)

// Output formats for the CLI result printer.
const (
	OutputText = "text"
	OutputJSON = "json"
)

// Config holds the merged configuration.
type Config struct {
	// Mode is the default processing mode when the flag is absent:
	// "fast" or "deep".
	Mode string `yaml:"mode,omitempty"`
	// Output is the default result format: "text" or "json".
	Output string `yaml:"output,omitempty"`
	// Verbose enables debug logging.
	Verbose bool `yaml:"verbose,omitempty"`

	Patterns pattern.Settings `yaml:"patterns,omitempty"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		Mode:     string(pattern.ModeFast),
		Output:   OutputText,
		Patterns: pattern.DefaultSettings(),
	}
}

// Load reads and merges global and project-local settings on top of the
// defaults. Project settings override global settings. Missing files are
// not an error; malformed or invalid ones are.
func Load(projectRoot string) (*Config, error) {
	global, err := loadFile(GlobalConfigFile())
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("loading global config: %w", err)
	}

	project, err := loadFile(ProjectConfigFile(projectRoot))
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("loading project config: %w", err)
	}

	merged := merge(merge(Default(), global), project)
	if err := merged.Validate(); err != nil {
		return nil, err
	}
	return merged, nil
}

// Validate bounds-checks the enumerated fields. Pattern settings validate
// separately at registry build time.
func (c *Config) Validate() error {
	if !pattern.ValidMode(pattern.Mode(c.Mode)) {
		return fmt.Errorf("mode %q: must be %q or %q", c.Mode, pattern.ModeFast, pattern.ModeDeep)
	}
	if c.Output != OutputText && c.Output != OutputJSON {
		return fmt.Errorf("output %q: must be %q or %q", c.Output, OutputText, OutputJSON)
	}
	return nil
}

// loadFile reads a Config from a YAML file. The error is os.IsNotExist-able
// when the file is missing.
func loadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var c Config
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return &c, nil
}

// merge overlays non-zero values from over onto base.
func merge(base, over *Config) *Config {
	if base == nil {
		base = &Config{}
	}
	if over == nil {
		return base
	}

	result := *base

	if over.Mode != "" {
		result.Mode = over.Mode
	}
	if over.Output != "" {
		result.Output = over.Output
	}
	if over.Verbose {
		result.Verbose = true
	}
	if len(over.Patterns.Disabled) > 0 {
		result.Patterns.Disabled = over.Patterns.Disabled
	}
	if over.Patterns.Conciseness.MinChanges != 0 {
		result.Patterns.Conciseness.MinChanges = over.Patterns.Conciseness.MinChanges
	}

	return &result
}
