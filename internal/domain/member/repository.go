package member

import "context"

type Repository interface {
	GetByID(ctx context.Context, id uint64) (*Member, error)
	// ListActive returns active members ordered by ascending id, which is also
	// the rotation order.
	ListActive(ctx context.Context) ([]Member, error)
}
