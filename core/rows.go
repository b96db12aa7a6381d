package core

import (
	"math"
	"strconv"
	"strings"

	"github.com/metaboscore/metaboscore/schema"
)

// ParseAxisValue converts a cell to a number. Blank, non-numeric and non-finite
// cells are reported as absent rather than as an error.
func ParseAxisValue(cell string) (float64, bool) {
	s := strings.TrimSpace(cell)
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

// BuildPatientRows turns raw table rows into patient rows holding only the
// effective axes. Rows with a blank identifier are dropped and counted.
// The first column matching a name wins when the header repeats it.
func BuildPatientRows(table schema.Table, idColumn string, effective []schema.AxisName) ([]schema.PatientRow, int) {
	idColumn = strings.TrimSpace(idColumn)
	idIdx := -1
	axisIdx := make(map[schema.AxisName]int, len(effective))
	for i, col := range table.Columns {
		name := strings.TrimSpace(col)
		if name == idColumn && idIdx < 0 {
			idIdx = i
			continue
		}
		if _, dup := axisIdx[schema.AxisName(name)]; !dup {
			axisIdx[schema.AxisName(name)] = i
		}
	}
	if idIdx < 0 {
		return nil, len(table.Rows)
	}

	rows := make([]schema.PatientRow, 0, len(table.Rows))
	skipped := 0
	for _, record := range table.Rows {
		id := strings.TrimSpace(cellAt(record, idIdx))
		if id == "" {
			skipped++
			continue
		}
		row := schema.PatientRow{ID: id, Values: make(map[schema.AxisName]float64, len(effective))}
		for _, axis := range effective {
			idx, ok := axisIdx[axis]
			if !ok {
				continue
			}
			if v, ok := ParseAxisValue(cellAt(record, idx)); ok {
				row.Values[axis] = v
			}
		}
		rows = append(rows, row)
	}
	return rows, skipped
}

// cellAt returns the cell at idx, or blank for short rows.
func cellAt(record []string, idx int) string {
	if idx < len(record) {
		return record[idx]
	}
	return ""
}
