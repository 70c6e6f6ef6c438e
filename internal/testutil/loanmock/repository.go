package loanmock

import (
	"context"

	"gorm.io/gorm"

	domain "github.com/Marceldinga/theyoungshallgrow--sub000/internal/domain/loan"
)

var (
	_ domain.RequestRepository = (*RequestRepo)(nil)
	_ domain.Repository        = (*Repo)(nil)
	_ domain.PaymentRepository = (*PaymentRepo)(nil)
)

// RequestRepo is a function-backed mock that satisfies loan.RequestRepository.
type RequestRepo struct {
	CreateFn                  func(ctx context.Context, r *domain.Request) error
	GetByRequestIDFn          func(ctx context.Context, requestID string) (*domain.Request, error)
	GetByRequestIDForUpdateFn func(ctx context.Context, requestID string) (*domain.Request, error)
	SaveFn                    func(ctx context.Context, r *domain.Request) error
}

func (m *RequestRepo) Create(ctx context.Context, r *domain.Request) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, r)
	}
	return nil
}

func (m *RequestRepo) GetByRequestID(ctx context.Context, requestID string) (*domain.Request, error) {
	if m.GetByRequestIDFn != nil {
		return m.GetByRequestIDFn(ctx, requestID)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *RequestRepo) GetByRequestIDForUpdate(ctx context.Context, requestID string) (*domain.Request, error) {
	if m.GetByRequestIDForUpdateFn != nil {
		return m.GetByRequestIDForUpdateFn(ctx, requestID)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *RequestRepo) Save(ctx context.Context, r *domain.Request) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, r)
	}
	return nil
}

// Repo is a function-backed mock that satisfies loan.Repository.
type Repo struct {
	CreateFn              func(ctx context.Context, l *domain.Loan) error
	GetByLoanIDFn         func(ctx context.Context, loanID string) (*domain.Loan, error)
	GetByIDForUpdateFn    func(ctx context.Context, id uint64) (*domain.Loan, error)
	GetActiveByMemberIDFn func(ctx context.Context, memberID uint64) (*domain.Loan, error)
	ListActiveFn          func(ctx context.Context) ([]domain.Loan, error)
	SaveFn                func(ctx context.Context, l *domain.Loan) error
}

func (m *Repo) Create(ctx context.Context, l *domain.Loan) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, l)
	}
	return nil
}

func (m *Repo) GetByLoanID(ctx context.Context, loanID string) (*domain.Loan, error) {
	if m.GetByLoanIDFn != nil {
		return m.GetByLoanIDFn(ctx, loanID)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *Repo) GetByIDForUpdate(ctx context.Context, id uint64) (*domain.Loan, error) {
	if m.GetByIDForUpdateFn != nil {
		return m.GetByIDForUpdateFn(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *Repo) GetActiveByMemberID(ctx context.Context, memberID uint64) (*domain.Loan, error) {
	if m.GetActiveByMemberIDFn != nil {
		return m.GetActiveByMemberIDFn(ctx, memberID)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *Repo) ListActive(ctx context.Context) ([]domain.Loan, error) {
	if m.ListActiveFn != nil {
		return m.ListActiveFn(ctx)
	}
	return nil, nil
}

func (m *Repo) Save(ctx context.Context, l *domain.Loan) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, l)
	}
	return nil
}

// PaymentRepo is a function-backed mock that satisfies loan.PaymentRepository.
type PaymentRepo struct {
	CreateFn                  func(ctx context.Context, p *domain.Payment) error
	GetByPaymentIDFn          func(ctx context.Context, paymentID string) (*domain.Payment, error)
	GetByPaymentIDForUpdateFn func(ctx context.Context, paymentID string) (*domain.Payment, error)
	LastConfirmedPaidOnFn     func(ctx context.Context, loanID uint64) (*domain.Payment, error)
	SaveFn                    func(ctx context.Context, p *domain.Payment) error
}

func (m *PaymentRepo) Create(ctx context.Context, p *domain.Payment) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, p)
	}
	return nil
}

func (m *PaymentRepo) GetByPaymentID(ctx context.Context, paymentID string) (*domain.Payment, error) {
	if m.GetByPaymentIDFn != nil {
		return m.GetByPaymentIDFn(ctx, paymentID)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *PaymentRepo) GetByPaymentIDForUpdate(ctx context.Context, paymentID string) (*domain.Payment, error) {
	if m.GetByPaymentIDForUpdateFn != nil {
		return m.GetByPaymentIDForUpdateFn(ctx, paymentID)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *PaymentRepo) LastConfirmedPaidOn(ctx context.Context, loanID uint64) (*domain.Payment, error) {
	if m.LastConfirmedPaidOnFn != nil {
		return m.LastConfirmedPaidOnFn(ctx, loanID)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *PaymentRepo) Save(ctx context.Context, p *domain.Payment) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, p)
	}
	return nil
}
