package signaturemock

import (
	"context"

	domain "github.com/Marceldinga/theyoungshallgrow--sub000/internal/domain/signature"
)

var _ domain.Repository = (*Repo)(nil)

// Repo is a function-backed mock that satisfies signature.Repository.
type Repo struct {
	UpsertFn       func(ctx context.Context, s *domain.Signature) error
	ListByEntityFn func(ctx context.Context, entityType, entityID string) ([]domain.Signature, error)
}

func (m *Repo) Upsert(ctx context.Context, s *domain.Signature) error {
	if m.UpsertFn != nil {
		return m.UpsertFn(ctx, s)
	}
	return nil
}

func (m *Repo) ListByEntity(ctx context.Context, entityType, entityID string) ([]domain.Signature, error) {
	if m.ListByEntityFn != nil {
		return m.ListByEntityFn(ctx, entityType, entityID)
	}
	return nil, nil
}
