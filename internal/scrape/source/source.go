package source

import (
	"context"

	"openroles-engine/internal/domain"
)

// Adapter lists the open roles of a single company from one provider family.
// Implementations return raw postings; cleaning happens downstream.
type Adapter interface {
	Type() domain.SourceType
	ListJobs(ctx context.Context, company domain.Company) ([]domain.Job, error)
}
