package table

import (
	"context"

	"github.com/metaboscore/metaboscore/internal/contract"
	"github.com/metaboscore/metaboscore/schema"
	"github.com/stretchr/testify/mock"
)

// MockTableReader is a mock implementation of TableReader for testing.
type MockTableReader struct {
	mock.Mock
}

var _ contract.TableReader = &MockTableReader{} // Compile-time check

// ReadTable implements the TableReader interface.
func (m *MockTableReader) ReadTable(ctx context.Context, path string, sheet string) (schema.Table, error) {
	args := m.Called(ctx, path, sheet)
	return args.Get(0).(schema.Table), args.Error(1)
}
