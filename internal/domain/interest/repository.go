package interest

import "context"

type Repository interface {
	GetByMonth(ctx context.Context, month string) (*Snapshot, error)
	// Create fails on a duplicate month; callers rely on the unique index as
	// the final double-accrual arbiter.
	Create(ctx context.Context, s *Snapshot) error
}
