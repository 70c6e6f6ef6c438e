package mysql

import (
	"context"

	"gorm.io/gorm"

	interestDomain "github.com/Marceldinga/theyoungshallgrow--sub000/internal/domain/interest"
)

type SnapshotRepository struct{ db *gorm.DB }

func NewSnapshotRepository(db *gorm.DB) *SnapshotRepository { return &SnapshotRepository{db: db} }

func (r *SnapshotRepository) GetByMonth(ctx context.Context, month string) (*interestDomain.Snapshot, error) {
	var out interestDomain.Snapshot
	res := r.db.WithContext(ctx).Where("snapshot_month = ?", month).First(&out)
	return &out, res.Error
}

// Create inserts the month's snapshot. A duplicate month fails on the unique
// index, which is exactly what the accrual job wants.
func (r *SnapshotRepository) Create(ctx context.Context, s *interestDomain.Snapshot) error {
	return r.db.WithContext(ctx).Create(s).Error
}
