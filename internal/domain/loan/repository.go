package loan

import "context"

type RequestRepository interface {
	Create(ctx context.Context, r *Request) error
	GetByRequestID(ctx context.Context, requestID string) (*Request, error)
	// GetByRequestIDForUpdate locks the request row for the enclosing transaction.
	GetByRequestIDForUpdate(ctx context.Context, requestID string) (*Request, error)
	Save(ctx context.Context, r *Request) error
}

type Repository interface {
	Create(ctx context.Context, l *Loan) error
	GetByLoanID(ctx context.Context, loanID string) (*Loan, error)
	GetByIDForUpdate(ctx context.Context, id uint64) (*Loan, error)
	// GetActiveByMemberID returns the member's active loan, if any.
	GetActiveByMemberID(ctx context.Context, memberID uint64) (*Loan, error)
	// ListActive returns every active loan, ordered by id for stable accrual runs.
	ListActive(ctx context.Context) ([]Loan, error)
	Save(ctx context.Context, l *Loan) error
}

type PaymentRepository interface {
	Create(ctx context.Context, p *Payment) error
	GetByPaymentID(ctx context.Context, paymentID string) (*Payment, error)
	GetByPaymentIDForUpdate(ctx context.Context, paymentID string) (*Payment, error)
	// LastConfirmedPaidOn returns the latest confirmed payment date for a loan,
	// or nil when none exists.
	LastConfirmedPaidOn(ctx context.Context, loanID uint64) (*Payment, error)
	Save(ctx context.Context, p *Payment) error
}
