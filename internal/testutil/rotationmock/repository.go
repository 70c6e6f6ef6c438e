package rotationmock

import (
	"context"

	"gorm.io/gorm"

	domain "github.com/Marceldinga/theyoungshallgrow--sub000/internal/domain/rotation"
)

var _ domain.Repository = (*Repo)(nil)

// Repo is a function-backed mock that satisfies rotation.Repository.
type Repo struct {
	GetStateFn                 func(ctx context.Context) (*domain.State, error)
	GetStateForUpdateFn        func(ctx context.Context) (*domain.State, error)
	SaveStateFn                func(ctx context.Context, s *domain.State) error
	CreatePayoutFn             func(ctx context.Context, p *domain.Payout) error
	GetPayoutByIndexFn         func(ctx context.Context, payoutIndex int) (*domain.Payout, error)
	ListPaidMemberIDsFn        func(ctx context.Context) ([]uint64, error)
	ListContributionsByIndexFn func(ctx context.Context, payoutIndex int) ([]domain.Contribution, error)
}

func (m *Repo) GetState(ctx context.Context) (*domain.State, error) {
	if m.GetStateFn != nil {
		return m.GetStateFn(ctx)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *Repo) GetStateForUpdate(ctx context.Context) (*domain.State, error) {
	if m.GetStateForUpdateFn != nil {
		return m.GetStateForUpdateFn(ctx)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *Repo) SaveState(ctx context.Context, s *domain.State) error {
	if m.SaveStateFn != nil {
		return m.SaveStateFn(ctx, s)
	}
	return nil
}

func (m *Repo) CreatePayout(ctx context.Context, p *domain.Payout) error {
	if m.CreatePayoutFn != nil {
		return m.CreatePayoutFn(ctx, p)
	}
	return nil
}

func (m *Repo) GetPayoutByIndex(ctx context.Context, payoutIndex int) (*domain.Payout, error) {
	if m.GetPayoutByIndexFn != nil {
		return m.GetPayoutByIndexFn(ctx, payoutIndex)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *Repo) ListPaidMemberIDs(ctx context.Context) ([]uint64, error) {
	if m.ListPaidMemberIDsFn != nil {
		return m.ListPaidMemberIDsFn(ctx)
	}
	return nil, nil
}

func (m *Repo) ListContributionsByIndex(ctx context.Context, payoutIndex int) ([]domain.Contribution, error) {
	if m.ListContributionsByIndexFn != nil {
		return m.ListContributionsByIndexFn(ctx, payoutIndex)
	}
	return nil, nil
}
