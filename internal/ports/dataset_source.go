package ports

import (
	"context"

	"github.com/bnema/snowmap/internal/domain"
)

type IncidentSource interface {
	LoadIncidents(ctx context.Context) ([]domain.Incident, error)
}

type GroupSource interface {
	LoadGroups(ctx context.Context) ([]domain.Group, error)
}
