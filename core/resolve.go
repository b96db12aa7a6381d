package core

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/metaboscore/metaboscore/schema"
)

// ErrMissingIdentifierColumn is returned when the input has no identifier column.
// Nothing is scored when this happens.
var ErrMissingIdentifierColumn = errors.New("missing identifier column")

// ResolveAxes reconciles the input header with the built-in axes.
// The identifier column and the ignored columns are never treated as axes.
// Column names are compared after trimming surrounding whitespace.
func ResolveAxes(columns []string, idColumn string, ignored []string) (schema.AxisResolution, error) {
	idColumn = strings.TrimSpace(idColumn)

	var res schema.AxisResolution
	seen := make(map[schema.AxisName]bool, len(schema.AllAxes))
	hasID := false

	for _, col := range columns {
		name := strings.TrimSpace(col)
		switch {
		case name == idColumn:
			hasID = true
		case slices.Contains(ignored, name):
			// not an axis and not worth an advisory
		case schema.IsKnownAxis(schema.AxisName(name)) && !seen[schema.AxisName(name)]:
			seen[schema.AxisName(name)] = true
			res.Effective = append(res.Effective, schema.AxisName(name))
		default:
			res.Unrecognized = append(res.Unrecognized, name)
		}
	}

	if !hasID {
		return schema.AxisResolution{}, fmt.Errorf("%w: %q not found in input columns", ErrMissingIdentifierColumn, idColumn)
	}

	for _, axis := range schema.AllAxes {
		if !seen[axis] {
			res.MissingInInput = append(res.MissingInInput, axis)
		}
	}
	return res, nil
}
