package membermock

import (
	"context"

	"gorm.io/gorm"

	domain "github.com/Marceldinga/theyoungshallgrow--sub000/internal/domain/member"
)

var _ domain.Repository = (*Repo)(nil)

// Repo is a function-backed mock that satisfies member.Repository.
type Repo struct {
	GetByIDFn    func(ctx context.Context, id uint64) (*domain.Member, error)
	ListActiveFn func(ctx context.Context) ([]domain.Member, error)
}

func (m *Repo) GetByID(ctx context.Context, id uint64) (*domain.Member, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *Repo) ListActive(ctx context.Context) ([]domain.Member, error) {
	if m.ListActiveFn != nil {
		return m.ListActiveFn(ctx)
	}
	return nil, nil
}
