package accrual

import (
	"context"
	"math"
	"testing"
	"time"

	"gorm.io/gorm"

	interestDomain "github.com/Marceldinga/theyoungshallgrow--sub000/internal/domain/interest"
	loanDomain "github.com/Marceldinga/theyoungshallgrow--sub000/internal/domain/loan"
	"github.com/Marceldinga/theyoungshallgrow--sub000/internal/domain/uow"
	"github.com/Marceldinga/theyoungshallgrow--sub000/internal/testutil/auditmock"
	"github.com/Marceldinga/theyoungshallgrow--sub000/internal/testutil/interestmock"
	"github.com/Marceldinga/theyoungshallgrow--sub000/internal/testutil/loanmock"
	"github.com/Marceldinga/theyoungshallgrow--sub000/internal/testutil/uowmock"
)

// world holds mutable state behind the mocks so repeated runs see prior writes.
type world struct {
	loans     []loanDomain.Loan
	snapshots map[string]*interestDomain.Snapshot
}

func newWorld(loans ...loanDomain.Loan) *world {
	return &world{loans: loans, snapshots: map[string]*interestDomain.Snapshot{}}
}

func (w *world) repos() uow.Repos {
	return uow.Repos{
		Loans: &loanmock.Repo{
			ListActiveFn: func(ctx context.Context) ([]loanDomain.Loan, error) {
				out := make([]loanDomain.Loan, 0, len(w.loans))
				for _, l := range w.loans {
					if l.Status == loanDomain.StatusActive {
						out = append(out, l)
					}
				}
				return out, nil
			},
			SaveFn: func(ctx context.Context, l *loanDomain.Loan) error {
				for i := range w.loans {
					if w.loans[i].ID == l.ID {
						w.loans[i] = *l
					}
				}
				return nil
			},
		},
		Snapshots: &interestmock.Repo{
			GetByMonthFn: func(ctx context.Context, month string) (*interestDomain.Snapshot, error) {
				if s, ok := w.snapshots[month]; ok {
					return s, nil
				}
				return nil, gorm.ErrRecordNotFound
			},
			CreateFn: func(ctx context.Context, s *interestDomain.Snapshot) error {
				if _, ok := w.snapshots[s.Month]; ok {
					return gorm.ErrDuplicatedKey
				}
				w.snapshots[s.Month] = s
				return nil
			},
		},
	}
}

func (w *world) usecase(rate float64) *Usecase {
	uc := NewUsecase(uowmock.Pass(w.repos()), &auditmock.Recorder{}, nil, rate)
	uc.now = func() time.Time { return time.Date(2025, 9, 15, 8, 0, 0, 0, time.UTC) }
	return uc
}

func activeLoan(id uint64, balance float64) loanDomain.Loan {
	return loanDomain.Loan{ID: id, MemberID: id, Status: loanDomain.StatusActive, Balance: balance, TotalDue: balance}
}

func TestAccrueMonthly_AddsInterestOnce(t *testing.T) {
	w := newWorld(activeLoan(1, 1000))
	uc := w.usecase(0.05)

	res, err := uc.AccrueMonthly(context.Background(), "cron")
	if err != nil {
		t.Fatalf("AccrueMonthly err: %v", err)
	}
	if res.LoansUpdated != 1 || math.Abs(res.InterestAdded-50) > 1e-9 {
		t.Fatalf("result=%+v", res)
	}

	l := w.loans[0]
	if math.Abs(l.AccruedInterest-50) > 1e-9 || math.Abs(l.TotalDue-1050) > 1e-9 || math.Abs(l.TotalInterestGenerated-50) > 1e-9 {
		t.Fatalf("loan after accrual: %+v", l)
	}
	snap, ok := w.snapshots["2025-09"]
	if !ok {
		t.Fatal("no snapshot written")
	}
	if math.Abs(snap.LifetimeInterestGenerated-50) > 1e-9 {
		t.Fatalf("lifetime=%v", snap.LifetimeInterestGenerated)
	}
}

func TestAccrueMonthly_SecondRunSameMonthIsNoop(t *testing.T) {
	w := newWorld(activeLoan(1, 1000), activeLoan(2, 2000))
	uc := w.usecase(0.05)

	if _, err := uc.AccrueMonthly(context.Background(), "cron"); err != nil {
		t.Fatalf("first run err: %v", err)
	}
	before := append([]loanDomain.Loan(nil), w.loans...)

	res, err := uc.AccrueMonthly(context.Background(), "cron")
	if err != nil {
		t.Fatalf("second run err: %v", err)
	}
	if res.LoansUpdated != 0 || res.InterestAdded != 0 {
		t.Fatalf("second run must be (0, 0), got %+v", res)
	}
	for i := range before {
		if before[i] != w.loans[i] {
			t.Fatalf("loan %d mutated on no-op run: %+v -> %+v", i, before[i], w.loans[i])
		}
	}
}

func TestAccrueMonthly_ZeroBalanceLoansContributeZero(t *testing.T) {
	zero := activeLoan(3, 0)
	zero.TotalInterestGenerated = 12.5 // carried from earlier months
	w := newWorld(activeLoan(1, 1000), zero)
	uc := w.usecase(0.05)

	res, err := uc.AccrueMonthly(context.Background(), "cron")
	if err != nil {
		t.Fatalf("AccrueMonthly err: %v", err)
	}
	if res.LoansUpdated != 1 {
		t.Fatalf("zero-balance loan counted: %+v", res)
	}
	// lifetime total still includes the zero-balance loan's history
	if got := w.snapshots["2025-09"].LifetimeInterestGenerated; math.Abs(got-62.5) > 1e-9 {
		t.Fatalf("lifetime=%v, want 62.5", got)
	}
}

func TestAccrueMonthly_SnapshotConflictRollsBackQuietly(t *testing.T) {
	// Another process wins the month between our check and our write.
	w := newWorld(activeLoan(1, 1000))
	repos := w.repos()
	stolen := false
	inner := repos.Snapshots
	repos.Snapshots = &interestmock.Repo{
		GetByMonthFn: func(ctx context.Context, month string) (*interestDomain.Snapshot, error) {
			return inner.GetByMonth(ctx, month)
		},
		CreateFn: func(ctx context.Context, s *interestDomain.Snapshot) error {
			if !stolen {
				stolen = true
				w.snapshots[s.Month] = &interestDomain.Snapshot{Month: s.Month}
				return gorm.ErrDuplicatedKey
			}
			return inner.Create(ctx, s)
		},
	}
	uc := NewUsecase(uowmock.Pass(repos), &auditmock.Recorder{}, nil, 0.05)
	uc.now = func() time.Time { return time.Date(2025, 9, 15, 8, 0, 0, 0, time.UTC) }

	res, err := uc.AccrueMonthly(context.Background(), "cron")
	if err != nil {
		t.Fatalf("conflict should resolve to a no-op, got err: %v", err)
	}
	if res.LoansUpdated != 0 || res.InterestAdded != 0 {
		t.Fatalf("conflict run must report (0, 0), got %+v", res)
	}
}

func TestAccrueMonthly_LockBusyIsNoop(t *testing.T) {
	w := newWorld(activeLoan(1, 1000))
	uc := NewUsecase(uowmock.Pass(w.repos()), &auditmock.Recorder{}, busyLocker{}, 0.05)
	uc.now = func() time.Time { return time.Date(2025, 9, 15, 8, 0, 0, 0, time.UTC) }

	res, err := uc.AccrueMonthly(context.Background(), "cron")
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if res.LoansUpdated != 0 || res.InterestAdded != 0 {
		t.Fatalf("busy lock must no-op, got %+v", res)
	}
	if len(w.snapshots) != 0 {
		t.Fatal("busy lock still wrote a snapshot")
	}
}

type busyLocker struct{}

func (busyLocker) Acquire(ctx context.Context, name string) (func(), bool, error) {
	return nil, false, nil
}
