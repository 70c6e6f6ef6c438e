package mysql

import (
	"context"

	"gorm.io/gorm"

	auditDomain "github.com/Marceldinga/theyoungshallgrow--sub000/internal/domain/audit"
)

// AuditRepository appends engine decisions. No update or delete methods on
// purpose: the log is append-only.
type AuditRepository struct{ db *gorm.DB }

func NewAuditRepository(db *gorm.DB) *AuditRepository { return &AuditRepository{db: db} }

func (r *AuditRepository) Record(ctx context.Context, e *auditDomain.Event) error {
	return r.db.WithContext(ctx).Create(e).Error
}
