package ports

import (
	"context"

	"github.com/bnema/snowmap/internal/domain"
)

// DatasetWriter replaces the whole output with entries and reports how many were written.
type DatasetWriter interface {
	WriteEntries(ctx context.Context, entries []domain.TrainingEntry) (int, error)
}
