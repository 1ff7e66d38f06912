package ui

import (
	"fmt"

	"life-bg/pkg/core"
)

// Lines flattens a parameter snapshot into display lines: a header per group
// followed by one "label: value" line per parameter.
func Lines(s core.ParameterSnapshot) []string {
	var out []string
	for _, g := range s.Groups {
		if g.Name != "" {
			out = append(out, g.Name)
		}
		for _, p := range g.Params {
			out = append(out, fmt.Sprintf("  %s: %s", p.Label, p.Value))
		}
	}
	return out
}
