package mysql

import (
	"context"

	"gorm.io/gorm"

	memberDomain "github.com/Marceldinga/theyoungshallgrow--sub000/internal/domain/member"
)

type MemberRepository struct{ db *gorm.DB }

func NewMemberRepository(db *gorm.DB) *MemberRepository { return &MemberRepository{db: db} }

func (r *MemberRepository) GetByID(ctx context.Context, id uint64) (*memberDomain.Member, error) {
	var out memberDomain.Member
	res := r.db.WithContext(ctx).Where("id = ?", id).First(&out)
	return &out, res.Error
}

func (r *MemberRepository) ListActive(ctx context.Context) ([]memberDomain.Member, error) {
	var out []memberDomain.Member
	res := r.db.WithContext(ctx).
		Where("active = ?", true).
		Order("id ASC").
		Find(&out)
	return out, res.Error
}
