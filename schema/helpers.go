package schema

import (
	"fmt"
	"maps"
	"strings"
)

// IsKnownAxis reports whether name is one of the built-in axes.
func IsKnownAxis(name AxisName) bool {
	_, ok := knownAxes[name]
	return ok
}

// LookupAxis resolves a user-provided axis name to a built-in axis.
// Matching ignores surrounding whitespace and letter case, since config keys
// read through viper are lower-cased.
func LookupAxis(name string) (AxisName, bool) {
	trimmed := strings.TrimSpace(name)
	for _, a := range AllAxes {
		if strings.EqualFold(string(a), trimmed) {
			return a, true
		}
	}
	return "", false
}

// Clone returns an independent copy of the weight map.
func (w AxisWeights) Clone() AxisWeights {
	if w == nil {
		return nil
	}
	return maps.Clone(w)
}

// Sum returns the total of all weights.
func (w AxisWeights) Sum() float64 {
	var total float64
	for _, a := range AllAxes {
		total += w[a]
	}
	for a, v := range w {
		if !IsKnownAxis(a) {
			total += v
		}
	}
	return total
}

// Ordered returns the weights of the built-in axes in display order.
// Axes absent from the map are reported with weight 0.
func (w AxisWeights) Ordered() []AxisWeight {
	out := make([]AxisWeight, 0, len(AllAxes))
	for _, a := range AllAxes {
		out = append(out, AxisWeight{Axis: a, Weight: w[a]})
	}
	return out
}

// AxisWeight is a single (axis, weight) pair used for display and export.
type AxisWeight struct {
	Axis   AxisName `json:"axis" yaml:"axis"`
	Weight float64  `json:"weight" yaml:"weight"`
}

// Advisories returns the user-facing messages for axis mismatches.
// They never block scoring.
func (r AxisResolution) Advisories() []string {
	var msgs []string
	if len(r.MissingInInput) > 0 {
		names := make([]string, len(r.MissingInInput))
		for i, a := range r.MissingInInput {
			names[i] = string(a)
		}
		msgs = append(msgs, fmt.Sprintf("axes missing from input (skipped in scoring): %s", strings.Join(names, ", ")))
	}
	if len(r.Unrecognized) > 0 {
		msgs = append(msgs, fmt.Sprintf("columns not among the built-in axes (skipped): %s", strings.Join(r.Unrecognized, ", ")))
	}
	return msgs
}
