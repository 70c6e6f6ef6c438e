package rotation

import "context"

type Repository interface {
	// GetState returns the singleton rotation pointer (row id 1).
	GetState(ctx context.Context) (*State, error)
	// GetStateForUpdate locks the pointer row for the duration of the
	// enclosing transaction.
	GetStateForUpdate(ctx context.Context) (*State, error)
	SaveState(ctx context.Context, s *State) error

	CreatePayout(ctx context.Context, p *Payout) error
	GetPayoutByIndex(ctx context.Context, payoutIndex int) (*Payout, error)
	// ListPaidMemberIDs returns the beneficiary ids of every recorded payout.
	ListPaidMemberIDs(ctx context.Context) ([]uint64, error)

	ListContributionsByIndex(ctx context.Context, payoutIndex int) ([]Contribution, error)
}
