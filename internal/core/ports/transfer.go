package ports

import "github.com/srgjo27/exhorizon/internal/core/domain"

// Exporter renders the full plan list into one file body.
type Exporter interface {
	Kind() string
	Extension() string
	Export(plans []domain.ConcertPlan) ([]byte, error)
}

// Importer turns a file body into plans. A failed import returns an error and
// no plans.
type Importer interface {
	Extensions() []string
	Import(data []byte) (*domain.ImportResult, error)
}
