package mysql

import (
	"context"

	"gorm.io/gorm"

	"github.com/Marceldinga/theyoungshallgrow--sub000/internal/domain/loan"
	"github.com/Marceldinga/theyoungshallgrow--sub000/internal/domain/uow"
)

type GormUoW struct{ db *gorm.DB }

func NewGormUoW(db *gorm.DB) *GormUoW { return &GormUoW{db: db} }

func bindRepos(tx *gorm.DB) uow.Repos {
	return uow.Repos{
		Members:    &MemberRepository{db: tx},
		Rotation:   &RotationRepository{db: tx},
		Requests:   &RequestRepository{db: tx},
		Loans:      &LoanRepository{db: tx},
		Payments:   &PaymentRepository{db: tx},
		Signatures: &SignatureRepository{db: tx},
		Snapshots:  &SnapshotRepository{db: tx},
	}
}

func (u *GormUoW) WithinTx(ctx context.Context, fn func(r uow.Repos) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(bindRepos(tx))
	})
}

func (u *GormUoW) WithinLoanTx(ctx context.Context, loanNumericID uint64, fn func(r uow.Repos, l *loan.Loan) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		r := bindRepos(tx)
		// lock the loan row up-front to prevent lost updates
		l, err := r.Loans.GetByIDForUpdate(ctx, loanNumericID)
		if err != nil {
			return err
		}
		return fn(r, l)
	})
}
