package mysql

import (
	"context"

	"gorm.io/gorm"

	loanDomain "github.com/Marceldinga/theyoungshallgrow--sub000/internal/domain/loan"
)

type PaymentRepository struct{ db *gorm.DB }

func NewPaymentRepository(db *gorm.DB) *PaymentRepository { return &PaymentRepository{db: db} }

func (r *PaymentRepository) Create(ctx context.Context, p *loanDomain.Payment) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *PaymentRepository) Save(ctx context.Context, p *loanDomain.Payment) error {
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *PaymentRepository) GetByPaymentID(ctx context.Context, paymentID string) (*loanDomain.Payment, error) {
	var out loanDomain.Payment
	res := r.db.WithContext(ctx).Where("payment_id = ?", paymentID).First(&out)
	return &out, res.Error
}

func (r *PaymentRepository) GetByPaymentIDForUpdate(ctx context.Context, paymentID string) (*loanDomain.Payment, error) {
	var out loanDomain.Payment
	res := forUpdate(r.db.WithContext(ctx)).Where("payment_id = ?", paymentID).First(&out)
	return &out, res.Error
}

func (r *PaymentRepository) LastConfirmedPaidOn(ctx context.Context, loanID uint64) (*loanDomain.Payment, error) {
	var out loanDomain.Payment
	res := r.db.WithContext(ctx).
		Where("loan_id = ? AND status = ?", loanID, loanDomain.PaymentConfirmed).
		Order("paid_on DESC, id DESC").
		First(&out)
	return &out, res.Error
}
