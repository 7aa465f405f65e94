package ports

import (
	"context"

	"github.com/bnema/snowmap/internal/domain"
)

// LegendStore returns domain.ErrLegendNotFound from Load when no legend was saved yet.
type LegendStore interface {
	Load(ctx context.Context) (domain.Legend, error)
	Save(ctx context.Context, legend domain.Legend) error
}
