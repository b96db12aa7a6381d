// Package table loads patient risk spreadsheets into raw tables.
package table

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/metaboscore/metaboscore/internal/contract"
	"github.com/metaboscore/metaboscore/schema"
)

// FileReader reads risk tables from .xlsx and .csv files on disk.
type FileReader struct{}

var _ contract.TableReader = &FileReader{} // Compile-time check

// NewFileReader creates a new file-backed table reader.
func NewFileReader() *FileReader {
	return &FileReader{}
}

// ReadTable implements the TableReader interface.
func (r *FileReader) ReadTable(ctx context.Context, path string, sheet string) (schema.Table, error) {
	if err := ctx.Err(); err != nil {
		return schema.Table{}, err
	}

	var (
		records [][]string
		err     error
	)
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".xlsx":
		records, err = readXLSX(path, sheet)
	case ".csv":
		records, err = readCSV(path)
	default:
		return schema.Table{}, fmt.Errorf("unsupported file extension %q", ext)
	}
	if err != nil {
		return schema.Table{}, err
	}
	return fromRecords(records)
}

// fromRecords splits the header from the data rows.
func fromRecords(records [][]string) (schema.Table, error) {
	if len(records) == 0 {
		return schema.Table{}, fmt.Errorf("table is empty")
	}
	header := make([]string, len(records[0]))
	for i, col := range records[0] {
		header[i] = strings.TrimSpace(col)
	}
	return schema.Table{Columns: header, Rows: records[1:]}, nil
}
