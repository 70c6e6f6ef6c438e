package interestmock

import (
	"context"

	"gorm.io/gorm"

	domain "github.com/Marceldinga/theyoungshallgrow--sub000/internal/domain/interest"
)

var _ domain.Repository = (*Repo)(nil)

// Repo is a function-backed mock that satisfies interest.Repository.
type Repo struct {
	GetByMonthFn func(ctx context.Context, month string) (*domain.Snapshot, error)
	CreateFn     func(ctx context.Context, s *domain.Snapshot) error
}

func (m *Repo) GetByMonth(ctx context.Context, month string) (*domain.Snapshot, error) {
	if m.GetByMonthFn != nil {
		return m.GetByMonthFn(ctx, month)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *Repo) Create(ctx context.Context, s *domain.Snapshot) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, s)
	}
	return nil
}
