package uowmock

import (
	"context"
	"errors"

	loanDomain "github.com/Marceldinga/theyoungshallgrow--sub000/internal/domain/loan"
	"github.com/Marceldinga/theyoungshallgrow--sub000/internal/domain/uow"
)

// Ensure compile-time compliance
var _ uow.UnitOfWork = (*UoW)(nil)

var errUnimplemented = errors.New("uowmock: method not implemented")

// UoW is a function-backed mock that satisfies uow.UnitOfWork. Fill in the
// function fields you need; unfilled ones return errUnimplemented. Pass covers
// the common case of running fn against a fixed Repos bundle with no real
// transaction.
type UoW struct {
	Repos          uow.Repos
	WithinTxFn     func(ctx context.Context, fn func(r uow.Repos) error) error
	WithinLoanTxFn func(ctx context.Context, loanNumericID uint64, fn func(r uow.Repos, l *loanDomain.Loan) error) error
}

// Pass returns a UoW whose WithinTx simply invokes fn with the given repos.
func Pass(r uow.Repos) *UoW {
	return &UoW{
		Repos: r,
		WithinTxFn: func(ctx context.Context, fn func(r uow.Repos) error) error {
			return fn(r)
		},
	}
}

// PassWithLoan additionally resolves WithinLoanTx through the bundled loan repo.
func PassWithLoan(r uow.Repos) *UoW {
	m := Pass(r)
	m.WithinLoanTxFn = func(ctx context.Context, loanNumericID uint64, fn func(r uow.Repos, l *loanDomain.Loan) error) error {
		l, err := r.Loans.GetByIDForUpdate(ctx, loanNumericID)
		if err != nil {
			return err
		}
		return fn(r, l)
	}
	return m
}

func (m *UoW) WithinTx(ctx context.Context, fn func(r uow.Repos) error) error {
	if m.WithinTxFn != nil {
		return m.WithinTxFn(ctx, fn)
	}
	return errUnimplemented
}

func (m *UoW) WithinLoanTx(ctx context.Context, loanNumericID uint64, fn func(r uow.Repos, l *loanDomain.Loan) error) error {
	if m.WithinLoanTxFn != nil {
		return m.WithinLoanTxFn(ctx, loanNumericID, fn)
	}
	return errUnimplemented
}
