package ports

import (
	"context"

	"github.com/srgjo27/exhorizon/internal/core/domain"
)

//go:generate mockery --name=PlanRepository --output=mocks --outpkg=mocks
//go:generate mockery --name=Exporter --output=mocks --outpkg=mocks
//go:generate mockery --name=Importer --output=mocks --outpkg=mocks

// PlanRepository is the single durable slot holding the whole plan list.
// Load returns nil, nil when the slot has never been written.
type PlanRepository interface {
	Load(ctx context.Context) ([]domain.ConcertPlan, error)
	Save(ctx context.Context, plans []domain.ConcertPlan) error
}
