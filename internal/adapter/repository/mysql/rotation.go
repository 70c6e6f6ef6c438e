package mysql

import (
	"context"

	"gorm.io/gorm"

	rotationDomain "github.com/Marceldinga/theyoungshallgrow--sub000/internal/domain/rotation"
)

const rotationStateRowID = 1

type RotationRepository struct{ db *gorm.DB }

func NewRotationRepository(db *gorm.DB) *RotationRepository { return &RotationRepository{db: db} }

func (r *RotationRepository) GetState(ctx context.Context) (*rotationDomain.State, error) {
	var out rotationDomain.State
	res := r.db.WithContext(ctx).Where("id = ?", rotationStateRowID).First(&out)
	return &out, res.Error
}

func (r *RotationRepository) GetStateForUpdate(ctx context.Context) (*rotationDomain.State, error) {
	var out rotationDomain.State
	res := forUpdate(r.db.WithContext(ctx)).Where("id = ?", rotationStateRowID).First(&out)
	return &out, res.Error
}

func (r *RotationRepository) SaveState(ctx context.Context, s *rotationDomain.State) error {
	return r.db.WithContext(ctx).Save(s).Error
}

func (r *RotationRepository) CreatePayout(ctx context.Context, p *rotationDomain.Payout) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *RotationRepository) GetPayoutByIndex(ctx context.Context, payoutIndex int) (*rotationDomain.Payout, error) {
	var out rotationDomain.Payout
	res := r.db.WithContext(ctx).Where("payout_index = ?", payoutIndex).First(&out)
	return &out, res.Error
}

func (r *RotationRepository) ListPaidMemberIDs(ctx context.Context) ([]uint64, error) {
	var out []uint64
	res := r.db.WithContext(ctx).
		Model(&rotationDomain.Payout{}).
		Order("payout_index ASC").
		Pluck("beneficiary_id", &out)
	return out, res.Error
}

func (r *RotationRepository) ListContributionsByIndex(ctx context.Context, payoutIndex int) ([]rotationDomain.Contribution, error) {
	var out []rotationDomain.Contribution
	res := r.db.WithContext(ctx).
		Where("payout_index = ?", payoutIndex).
		Order("member_id ASC").
		Find(&out)
	return out, res.Error
}
