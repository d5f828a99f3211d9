// ABOUTME: Per-pattern configuration with defaults and bounds-checked validation
// ABOUTME: Resolved once at registry build time, never reconstructed per call

package pattern

import "fmt"

// Settings configures the default catalog. Zero values mean "use defaults";
// validation happens once when the registry is built.
type Settings struct {
	// Disabled lists pattern IDs to leave out of the registry. Unknown IDs
	// are a configuration error.
	Disabled []string `yaml:"disabled,omitempty"`

	Conciseness ConcisenessSettings `yaml:"conciseness"`
}

// ConcisenessSettings tunes the conciseness filter.
type ConcisenessSettings struct {
	// MinChanges is the minimum number of substitutions required before the
	// filter commits its edits. Below the threshold the prompt is returned
	// unmodified even if some substitutions were technically possible.
	// Valid range 1-20, default 3.
	MinChanges int `yaml:"min_changes,omitempty"`
}

// DefaultSettings returns the catalog defaults.
func DefaultSettings() Settings {
	return Settings{
		Conciseness: ConcisenessSettings{MinChanges: 3},
	}
}

// withDefaults fills zero values in s from DefaultSettings.
func (s Settings) withDefaults() Settings {
	if s.Conciseness.MinChanges == 0 {
		s.Conciseness.MinChanges = DefaultSettings().Conciseness.MinChanges
	}
	return s
}

// validate bounds-checks the resolved settings.
func (s Settings) validate() error {
	if s.Conciseness.MinChanges < 1 || s.Conciseness.MinChanges > 20 {
		return fmt.Errorf("conciseness.min_changes %d out of range 1-20", s.Conciseness.MinChanges)
	}
	return nil
}
