// Package contract provides interfaces and shared utilities for internal architecture.
package contract

import (
	"context"

	"github.com/metaboscore/metaboscore/schema"
)

// TableReader loads a spreadsheet into a raw table.
// This allows the scoring pipeline to be tested without real files on disk.
type TableReader interface {
	// ReadTable reads the given file. For workbooks, sheet selects the sheet by name;
	// an empty sheet means the first one.
	ReadTable(ctx context.Context, path string, sheet string) (schema.Table, error)
}
