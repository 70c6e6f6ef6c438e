package payout

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/Marceldinga/theyoungshallgrow--sub000/internal/domain/audit"
	"github.com/Marceldinga/theyoungshallgrow--sub000/internal/domain/fault"
	memberDomain "github.com/Marceldinga/theyoungshallgrow--sub000/internal/domain/member"
	rotationDomain "github.com/Marceldinga/theyoungshallgrow--sub000/internal/domain/rotation"
	signatureDomain "github.com/Marceldinga/theyoungshallgrow--sub000/internal/domain/signature"
	"github.com/Marceldinga/theyoungshallgrow--sub000/internal/domain/uow"
)

// Locker keeps two concurrent execute calls from racing for the same cycle.
// The unique payout_index is still the final arbiter.
type Locker interface {
	Acquire(ctx context.Context, name string) (func(), bool, error)
}

type Usecase struct {
	members  memberDomain.Repository
	rotation rotationDomain.Repository
	sigs     signatureDomain.Repository
	uow      uow.UnitOfWork
	audit    audit.Recorder
	locker   Locker
	rules    Rules
	now      func() time.Time
}

func NewUsecase(
	members memberDomain.Repository,
	rot rotationDomain.Repository,
	sigs signatureDomain.Repository,
	tx uow.UnitOfWork,
	rec audit.Recorder,
	locker Locker,
	rules Rules,
) *Usecase {
	return &Usecase{
		members:  members,
		rotation: rot,
		sigs:     sigs,
		uow:      tx,
		audit:    rec,
		locker:   locker,
		rules:    rules,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

type NextDTO struct {
	PayoutIndex   int       `json:"payout_index"`
	BeneficiaryID uint64    `json:"beneficiary_id"`
	ScheduledFor  time.Time `json:"scheduled_for"`
}

type PayoutDTO struct {
	PayoutIndex   int       `json:"payout_index"`
	BeneficiaryID uint64    `json:"beneficiary_id"`
	Amount        float64   `json:"amount"`
	PaidOn        time.Time `json:"paid_on"`
}

// NextBeneficiary computes who the current cycle would pay, without side
// effects.
func (u *Usecase) NextBeneficiary(ctx context.Context) (*NextDTO, error) {
	st, err := u.rotation.GetState(ctx)
	if err != nil {
		return nil, fault.Store("rotation.get_state", err)
	}
	active, err := u.members.ListActive(ctx)
	if err != nil {
		return nil, fault.Store("members.list_active", err)
	}
	paid, err := u.rotation.ListPaidMemberIDs(ctx)
	if err != nil {
		return nil, fault.Store("payouts.list_paid", err)
	}

	beneficiary, ok := pickBeneficiary(active, paid, st.StartMemberID)
	if !ok {
		return nil, fault.Rule("rotation_exhausted", "every active member has been paid this rotation")
	}
	return &NextDTO{
		PayoutIndex:   st.NextPayoutIndex,
		BeneficiaryID: beneficiary,
		ScheduledFor:  st.NextPayoutDate,
	}, nil
}

// Execute runs the current cycle's payout: recompute the beneficiary under the
// rotation lock, evaluate all four gates, record the payout, and advance the
// pointer. The payout_index unique key rejects a racing duplicate.
func (u *Usecase) Execute(ctx context.Context, actorID string) (*PayoutDTO, error) {
	if u.locker != nil {
		release, ok, err := u.locker.Acquire(ctx, "payout")
		if err != nil {
			return nil, fault.Store("lock.acquire", err)
		}
		if !ok {
			return nil, fault.Rule("payout_in_progress", "another payout execution holds the rotation lock")
		}
		defer release()
	}

	var dto *PayoutDTO
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		st, err := r.Rotation.GetStateForUpdate(ctx)
		if err != nil {
			return fault.Store("rotation.get_state", err)
		}
		active, err := r.Members.ListActive(ctx)
		if err != nil {
			return fault.Store("members.list_active", err)
		}
		paid, err := r.Rotation.ListPaidMemberIDs(ctx)
		if err != nil {
			return fault.Store("payouts.list_paid", err)
		}

		beneficiary, ok := pickBeneficiary(active, paid, st.StartMemberID)
		if !ok {
			return fault.Rule("rotation_exhausted", "every active member has been paid this rotation")
		}

		contribs, err := r.Rotation.ListContributionsByIndex(ctx, st.NextPayoutIndex)
		if err != nil {
			return fault.Store("contributions.list", err)
		}
		signed, err := r.Signatures.ListByEntity(ctx, signatureDomain.EntityPayout, strconv.Itoa(st.NextPayoutIndex))
		if err != nil {
			return fault.Store("signatures.list", err)
		}

		report := EvaluateGates(active, contribs, signed, u.rules)
		if !report.Passed() {
			return &fault.BusinessRuleError{
				Rule:       "payout_gates",
				Msg:        report.Summary(),
				Violations: report.ContributionIssues,
			}
		}

		now := u.now()
		p := &rotationDomain.Payout{
			BeneficiaryID: beneficiary,
			Amount:        report.Pot,
			PayoutIndex:   st.NextPayoutIndex,
			PaidOn:        now,
		}
		if err := r.Rotation.CreatePayout(ctx, p); err != nil {
			return fault.Store("payouts.create", err)
		}

		st.NextPayoutIndex++
		if st.NextPayoutDate.IsZero() {
			st.NextPayoutDate = now
		}
		st.NextPayoutDate = st.NextPayoutDate.AddDate(0, 0, u.rules.CycleDays)
		st.StartMemberID = beneficiary
		if err := r.Rotation.SaveState(ctx, st); err != nil {
			return fault.Store("rotation.save_state", err)
		}

		dto = &PayoutDTO{
			PayoutIndex:   p.PayoutIndex,
			BeneficiaryID: p.BeneficiaryID,
			Amount:        p.Amount,
			PaidOn:        p.PaidOn,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	audit.Try(ctx, u.audit, "payout.execute", "ok", actorID,
		fmt.Sprintf("payout %d: %.2f to member %d", dto.PayoutIndex, dto.Amount, dto.BeneficiaryID))
	return dto, nil
}

// pickBeneficiary adapts the scheduler's set contract to repository slices and
// makes rotation exhaustion explicit.
func pickBeneficiary(active []memberDomain.Member, paid []uint64, startID uint64) (uint64, bool) {
	if len(active) == 0 {
		return 0, false
	}
	activeSet := make(map[uint64]struct{}, len(active))
	for _, m := range active {
		activeSet[m.ID] = struct{}{}
	}
	paidSet := make(map[uint64]struct{}, len(paid))
	for _, id := range paid {
		paidSet[id] = struct{}{}
	}

	b := rotationDomain.NextBeneficiary(activeSet, paidSet, startID)
	if _, alreadyPaid := paidSet[b]; alreadyPaid {
		return 0, false
	}
	if _, isActive := activeSet[b]; !isActive {
		return 0, false
	}
	return b, true
}
