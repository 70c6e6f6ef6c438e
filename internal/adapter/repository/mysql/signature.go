package mysql

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	signatureDomain "github.com/Marceldinga/theyoungshallgrow--sub000/internal/domain/signature"
)

type SignatureRepository struct{ db *gorm.DB }

func NewSignatureRepository(db *gorm.DB) *SignatureRepository { return &SignatureRepository{db: db} }

// Upsert relies on the (entity_type, entity_id, role) unique index: re-signing
// with the same role overwrites the earlier signature.
func (r *SignatureRepository) Upsert(ctx context.Context, s *signatureDomain.Signature) error {
	if s.SignedAt.IsZero() {
		s.SignedAt = time.Now().UTC()
	}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "entity_type"}, {Name: "entity_id"}, {Name: "role"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"signer_name", "signer_member_id", "signed_at",
		}),
	}).Create(s).Error
}

func (r *SignatureRepository) ListByEntity(ctx context.Context, entityType, entityID string) ([]signatureDomain.Signature, error) {
	var out []signatureDomain.Signature
	res := r.db.WithContext(ctx).
		Where("entity_type = ? AND entity_id = ?", entityType, entityID).
		Order("id ASC").
		Find(&out)
	return out, res.Error
}
