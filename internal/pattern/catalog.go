// ABOUTME: Default pattern catalog assembly in fixed declaration order
// ABOUTME: Settings resolve once here; disabled IDs are validated against the catalog

package pattern

import "fmt"

// DefaultRegistry builds the standard catalog with the given settings.
// Declaration order below is the final ordering tie-break at run time, so it
// is part of the catalog's contract and must stay stable.
func DefaultRegistry(s Settings) (*Registry, error) {
	s = s.withDefaults()
	if err := s.validate(); err != nil {
		return nil, fmt.Errorf("pattern settings: %w", err)
	}

	catalog := []Pattern{
		TaskStructure{},
		OutputFormat{},
		TechContext{},
		SuccessMetrics{},
		Dependencies{},
		Conciseness{MinChanges: s.Conciseness.MinChanges},
	}

	known := make(map[string]bool, len(catalog))
	for _, p := range catalog {
		known[p.Meta().ID] = true
	}
	disabled := make(map[string]bool, len(s.Disabled))
	for _, id := range s.Disabled {
		if !known[id] {
			return nil, fmt.Errorf("pattern settings: cannot disable unknown pattern %q", id)
		}
		disabled[id] = true
	}

	var enabled []Pattern
	for _, p := range catalog {
		if !disabled[p.Meta().ID] {
			enabled = append(enabled, p)
		}
	}
	return NewRegistry(enabled...)
}
