package accrual

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/Marceldinga/theyoungshallgrow--sub000/internal/domain/audit"
	"github.com/Marceldinga/theyoungshallgrow--sub000/internal/domain/fault"
	"github.com/Marceldinga/theyoungshallgrow--sub000/internal/domain/interest"
	"github.com/Marceldinga/theyoungshallgrow--sub000/internal/domain/uow"
)

// Locker serializes concurrent accrual triggers across processes. The unique
// snapshot_month index remains the final arbiter; the lock only avoids
// needless constraint races.
type Locker interface {
	Acquire(ctx context.Context, name string) (func(), bool, error)
}

type Usecase struct {
	uow    uow.UnitOfWork
	audit  audit.Recorder
	locker Locker
	rate   float64
	now    func() time.Time
}

func NewUsecase(tx uow.UnitOfWork, rec audit.Recorder, locker Locker, monthlyRate float64) *Usecase {
	return &Usecase{
		uow:    tx,
		audit:  rec,
		locker: locker,
		rate:   monthlyRate,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

type Result struct {
	Month         string  `json:"month"`
	LoansUpdated  int     `json:"loans_updated"`
	InterestAdded float64 `json:"interest_added"`
}

// AccrueMonthly adds one month of interest to every active loan with a
// positive balance, at most once per calendar month. The snapshot-exists check
// short-circuits before any loan is touched; the whole run is one transaction,
// so a snapshot conflict rolls every mutation back.
func (u *Usecase) AccrueMonthly(ctx context.Context, actorID string) (*Result, error) {
	month := interest.MonthKey(u.now())
	res := &Result{Month: month}

	if u.locker != nil {
		release, ok, err := u.locker.Acquire(ctx, "accrual:"+month)
		if err != nil {
			return nil, fault.Store("lock.acquire", err)
		}
		if !ok {
			// Another trigger holds the month; treat as the already-ran no-op.
			return res, nil
		}
		defer release()
	}

	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		if _, err := r.Snapshots.GetByMonth(ctx, month); err == nil {
			return nil // already ran this month
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return fault.Store("snapshots.get", err)
		}

		loans, err := r.Loans.ListActive(ctx)
		if err != nil {
			return fault.Store("loans.list_active", err)
		}

		var lifetime float64
		for i := range loans {
			l := &loans[i]
			if l.Balance > 0 {
				add := l.Balance * u.rate
				l.AccruedInterest += add
				l.TotalDue += add
				l.TotalInterestGenerated += add
				if err := r.Loans.Save(ctx, l); err != nil {
					return fault.Store("loans.save", err)
				}
				res.LoansUpdated++
				res.InterestAdded += add
			}
			lifetime += l.TotalInterestGenerated
		}

		snap := &interest.Snapshot{Month: month, LifetimeInterestGenerated: lifetime}
		if err := r.Snapshots.Create(ctx, snap); err != nil {
			return fault.Store("snapshots.create", err)
		}
		return nil
	})
	if err != nil {
		// A concurrent run may have won the unique month index while we were
		// mutating; if the snapshot exists now, this invocation is a no-op.
		if won, checkErr := u.snapshotExists(ctx, month); checkErr == nil && won {
			return &Result{Month: month}, nil
		}
		return nil, err
	}

	if res.LoansUpdated > 0 {
		audit.Try(ctx, u.audit, "interest.accrue", "ok", actorID,
			fmt.Sprintf("month %s: %d loans, %.2f interest", month, res.LoansUpdated, res.InterestAdded))
	}
	return res, nil
}

func (u *Usecase) snapshotExists(ctx context.Context, month string) (bool, error) {
	var exists bool
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		if _, err := r.Snapshots.GetByMonth(ctx, month); err == nil {
			exists = true
			return nil
		} else if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		} else {
			return err
		}
	})
	return exists, err
}
