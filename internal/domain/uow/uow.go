package uow

import (
	"context"

	"github.com/Marceldinga/theyoungshallgrow--sub000/internal/domain/interest"
	"github.com/Marceldinga/theyoungshallgrow--sub000/internal/domain/loan"
	"github.com/Marceldinga/theyoungshallgrow--sub000/internal/domain/member"
	"github.com/Marceldinga/theyoungshallgrow--sub000/internal/domain/rotation"
	"github.com/Marceldinga/theyoungshallgrow--sub000/internal/domain/signature"
)

// Repos bundles every repository bound to one transaction.
type Repos struct {
	Members    member.Repository
	Rotation   rotation.Repository
	Requests   loan.RequestRepository
	Loans      loan.Repository
	Payments   loan.PaymentRepository
	Signatures signature.Repository
	Snapshots  interest.Repository
}

type UnitOfWork interface {
	// WithinTx runs fn inside a single transaction; fn's error rolls back.
	WithinTx(ctx context.Context, fn func(r Repos) error) error
	// WithinLoanTx locks the loan row up-front, then runs fn with it.
	WithinLoanTx(ctx context.Context, loanNumericID uint64, fn func(r Repos, l *loan.Loan) error) error
}
