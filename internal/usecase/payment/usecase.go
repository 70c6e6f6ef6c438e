package payment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/Marceldinga/theyoungshallgrow--sub000/internal/domain/audit"
	"github.com/Marceldinga/theyoungshallgrow--sub000/internal/domain/fault"
	loanDomain "github.com/Marceldinga/theyoungshallgrow--sub000/internal/domain/loan"
	"github.com/Marceldinga/theyoungshallgrow--sub000/internal/domain/uow"
	"github.com/Marceldinga/theyoungshallgrow--sub000/pkg/id"
)

type Usecase struct {
	loans    loanDomain.Repository
	payments loanDomain.PaymentRepository
	uow      uow.UnitOfWork
	audit    audit.Recorder
	now      func() time.Time
}

func NewUsecase(loans loanDomain.Repository, payments loanDomain.PaymentRepository, tx uow.UnitOfWork, rec audit.Recorder) *Usecase {
	return &Usecase{
		loans:    loans,
		payments: payments,
		uow:      tx,
		audit:    rec,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

type RecordInput struct {
	LoanID     string    `json:"loan_id"`
	Amount     float64   `json:"amount"`
	PaidOn     time.Time `json:"paid_on"`
	RecordedBy string    `json:"recorded_by"`
}

type PaymentDTO struct {
	PaymentID  string    `json:"payment_id"`
	LoanID     string    `json:"loan_id"`
	Amount     float64   `json:"amount"`
	PaidOn     time.Time `json:"paid_on"`
	Status     string    `json:"status"`
	RecordedBy string    `json:"recorded_by"`
	ReviewedBy string    `json:"reviewed_by,omitempty"`
	Reason     string    `json:"reason,omitempty"`
}

// RecordPending is the maker step: the payment row is written but the loan
// balance stays untouched until a checker confirms.
func (u *Usecase) RecordPending(ctx context.Context, in RecordInput) (*PaymentDTO, error) {
	if in.Amount <= 0 {
		return nil, fault.Validation("amount", "must be positive")
	}

	l, err := u.loans.GetByLoanID(ctx, in.LoanID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fault.NotFound("loan", in.LoanID)
		}
		return nil, fault.Store("loans.get", err)
	}

	paidOn := in.PaidOn
	if paidOn.IsZero() {
		paidOn = u.now()
	}
	p := &loanDomain.Payment{
		PaymentID:  id.NewID32(),
		LoanID:     l.ID,
		Amount:     in.Amount,
		PaidOn:     paidOn,
		Status:     loanDomain.PaymentPending,
		RecordedBy: in.RecordedBy,
	}
	if err := u.payments.Create(ctx, p); err != nil {
		return nil, fault.Store("payments.create", err)
	}

	audit.Try(ctx, u.audit, "payment.record", "ok", in.RecordedBy,
		fmt.Sprintf("payment %s: %.2f against loan %s", p.PaymentID, p.Amount, l.LoanID))

	return dto(p, l.LoanID), nil
}

// Confirm is the checker step. Confirmation and the balance change are one
// transaction with the loan row locked: a confirmed payment without its
// balance effect (or the reverse) would be corruption.
func (u *Usecase) Confirm(ctx context.Context, paymentID, confirmerID string) (*PaymentDTO, error) {
	p, err := u.payments.GetByPaymentID(ctx, paymentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fault.NotFound("payment", paymentID)
		}
		return nil, fault.Store("payments.get", err)
	}

	var out *PaymentDTO
	err = u.uow.WithinLoanTx(ctx, p.LoanID, func(r uow.Repos, l *loanDomain.Loan) error {
		// Re-read under the lock; the pre-fetch only located the loan row.
		p, err := r.Payments.GetByPaymentIDForUpdate(ctx, paymentID)
		if err != nil {
			return fault.Store("payments.get", err)
		}
		if p.Status != loanDomain.PaymentPending {
			return &fault.StateError{Entity: "payment", ID: paymentID, Current: string(p.Status), Want: string(loanDomain.PaymentPending)}
		}

		l.TotalDue -= p.Amount
		if l.TotalDue < 0 {
			l.TotalDue = 0
		}
		l.Balance -= p.Amount
		if l.Balance < 0 {
			l.Balance = 0
		}
		if l.TotalDue <= loanDomain.Epsilon {
			l.TotalDue = 0
			l.Status = loanDomain.StatusClosed
		}
		if err := r.Loans.Save(ctx, l); err != nil {
			return fault.Store("loans.save", err)
		}

		p.Status = loanDomain.PaymentConfirmed
		p.ReviewedBy = confirmerID
		if err := r.Payments.Save(ctx, p); err != nil {
			return fault.Store("payments.save", err)
		}

		out = dto(p, l.LoanID)
		return nil
	})
	if err != nil {
		return nil, err
	}

	audit.Try(ctx, u.audit, "payment.confirm", "ok", confirmerID,
		fmt.Sprintf("payment %s confirmed, %.2f applied to loan %s", paymentID, out.Amount, out.LoanID))
	return out, nil
}

// Reject marks the payment rejected with no balance effect.
func (u *Usecase) Reject(ctx context.Context, paymentID, rejecterID, reason string) (*PaymentDTO, error) {
	var out *PaymentDTO

	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		p, err := r.Payments.GetByPaymentIDForUpdate(ctx, paymentID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fault.NotFound("payment", paymentID)
			}
			return fault.Store("payments.get", err)
		}
		if p.Status != loanDomain.PaymentPending {
			return &fault.StateError{Entity: "payment", ID: paymentID, Current: string(p.Status), Want: string(loanDomain.PaymentPending)}
		}
		p.Status = loanDomain.PaymentRejected
		p.ReviewedBy = rejecterID
		p.Reason = reason
		if err := r.Payments.Save(ctx, p); err != nil {
			return fault.Store("payments.save", err)
		}
		out = dto(p, "")
		return nil
	})
	if err != nil {
		return nil, err
	}

	audit.Try(ctx, u.audit, "payment.reject", "ok", rejecterID,
		fmt.Sprintf("payment %s rejected: %s", paymentID, reason))
	return out, nil
}

func dto(p *loanDomain.Payment, loanPublicID string) *PaymentDTO {
	return &PaymentDTO{
		PaymentID:  p.PaymentID,
		LoanID:     loanPublicID,
		Amount:     p.Amount,
		PaidOn:     p.PaidOn,
		Status:     string(p.Status),
		RecordedBy: p.RecordedBy,
		ReviewedBy: p.ReviewedBy,
		Reason:     p.Reason,
	}
}
