package loanreq

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"gorm.io/gorm"

	"github.com/Marceldinga/theyoungshallgrow--sub000/internal/domain/audit"
	"github.com/Marceldinga/theyoungshallgrow--sub000/internal/domain/fault"
	loanDomain "github.com/Marceldinga/theyoungshallgrow--sub000/internal/domain/loan"
	memberDomain "github.com/Marceldinga/theyoungshallgrow--sub000/internal/domain/member"
	"github.com/Marceldinga/theyoungshallgrow--sub000/internal/domain/signature"
	"github.com/Marceldinga/theyoungshallgrow--sub000/internal/domain/uow"
	"github.com/Marceldinga/theyoungshallgrow--sub000/pkg/id"
)

type Rules struct {
	LoanTermDays    int
	LimitMultiplier float64  // limit = multiplier x foundation contribution total
	RequiredRoles   []string // roles that must sign a request before approval
}

type Usecase struct {
	members  memberDomain.Repository
	requests loanDomain.RequestRepository
	loans    loanDomain.Repository
	payments loanDomain.PaymentRepository
	uow      uow.UnitOfWork
	audit    audit.Recorder
	rules    Rules
	now      func() time.Time
}

func NewUsecase(
	members memberDomain.Repository,
	requests loanDomain.RequestRepository,
	loans loanDomain.Repository,
	payments loanDomain.PaymentRepository,
	tx uow.UnitOfWork,
	rec audit.Recorder,
	rules Rules,
) *Usecase {
	return &Usecase{
		members:  members,
		requests: requests,
		loans:    loans,
		payments: payments,
		uow:      tx,
		audit:    rec,
		rules:    rules,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

func (u *Usecase) limit(m *memberDomain.Member) float64 {
	return u.rules.LimitMultiplier * m.FoundationTotal
}

// CreateRequest records a borrower's ask in state pending. The loan limit is
// checked here for early feedback, but approval re-checks it against current
// contribution totals, which is authoritative.
func (u *Usecase) CreateRequest(ctx context.Context, in CreateRequestInput) (*RequestDTO, error) {
	if in.BorrowerID == in.SuretyID {
		return nil, fault.Validation("surety_id", "surety must differ from borrower")
	}
	if in.Amount <= 0 {
		return nil, fault.Validation("amount", "must be positive")
	}
	switch {
	case in.RequesterUserID == "":
		in.RequesterUserID = id.NewUUID()
	case !id.ValidUUID(in.RequesterUserID):
		return nil, fault.Validation("requester_user_id", "not a well-formed UUID")
	}

	borrower, err := u.members.GetByID(ctx, in.BorrowerID)
	if err != nil {
		return nil, translateNotFound(err, "member", strconv.FormatUint(in.BorrowerID, 10), "members.get")
	}
	if _, err := u.members.GetByID(ctx, in.SuretyID); err != nil {
		return nil, translateNotFound(err, "member", strconv.FormatUint(in.SuretyID, 10), "members.get")
	}
	if lim := u.limit(borrower); in.Amount > lim {
		return nil, fault.Validation("amount", fmt.Sprintf("exceeds loan limit %.2f", lim))
	}

	req := &loanDomain.Request{
		RequestID:       id.NewID32(),
		BorrowerID:      in.BorrowerID,
		SuretyID:        in.SuretyID,
		Amount:          in.Amount,
		RequesterUserID: in.RequesterUserID,
		Status:          loanDomain.RequestPending,
	}
	if err := u.requests.Create(ctx, req); err != nil {
		return nil, fault.Store("requests.create", err)
	}

	audit.Try(ctx, u.audit, "loan.request", "ok", in.Actor,
		fmt.Sprintf("request %s: member %d asks %.2f, surety %d", req.RequestID, req.BorrowerID, req.Amount, req.SuretyID))

	return requestDTO(req), nil
}

// Approve moves a pending request to approved and opens the loan. All three
// loan signatures must be present, the borrower must have no other active
// loan, and the amount must still fit the borrower's limit.
func (u *Usecase) Approve(ctx context.Context, requestID, actorID string) (*LoanDTO, error) {
	var dto *LoanDTO

	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		req, err := r.Requests.GetByRequestIDForUpdate(ctx, requestID)
		if err != nil {
			return translateNotFound(err, "loan request", requestID, "requests.get")
		}
		if req.Status != loanDomain.RequestPending {
			return &fault.StateError{Entity: "loan request", ID: requestID, Current: string(req.Status), Want: string(loanDomain.RequestPending)}
		}

		signed, err := r.Signatures.ListByEntity(ctx, signature.EntityLoan, req.RequestID)
		if err != nil {
			return fault.Store("signatures.list", err)
		}
		if missing := signature.MissingRoles(signed, u.rules.RequiredRoles); len(missing) > 0 {
			return &fault.AuthorizationError{Entity: "loan request", ID: requestID, MissingRoles: missing}
		}

		if active, err := r.Loans.GetActiveByMemberID(ctx, req.BorrowerID); err == nil {
			return &fault.BusinessRuleError{
				Rule: "single_active_loan",
				Msg:  fmt.Sprintf("member %d already holds active loan %s", req.BorrowerID, active.LoanID),
			}
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return fault.Store("loans.get_active", err)
		}

		borrower, err := r.Members.GetByID(ctx, req.BorrowerID)
		if err != nil {
			return translateNotFound(err, "member", strconv.FormatUint(req.BorrowerID, 10), "members.get")
		}
		if lim := u.limit(borrower); req.Amount > lim {
			return &fault.BusinessRuleError{
				Rule: "loan_limit",
				Msg:  fmt.Sprintf("amount %.2f exceeds limit %.2f at approval time", req.Amount, lim),
			}
		}

		now := u.now()
		l := &loanDomain.Loan{
			LoanID:   id.NewID32(),
			MemberID: req.BorrowerID,
			Status:   loanDomain.StatusActive,
			Balance:  req.Amount,
			TotalDue: req.Amount,
			IssuedAt: now,
			DueDate:  now.AddDate(0, 0, u.rules.LoanTermDays),
		}
		if err := r.Loans.Create(ctx, l); err != nil {
			return fault.Store("loans.create", err)
		}

		req.Status = loanDomain.RequestApproved
		req.LoanID = l.LoanID
		if err := r.Requests.Save(ctx, req); err != nil {
			return fault.Store("requests.save", err)
		}

		dto = loanDTO(l)
		return nil
	})
	if err != nil {
		return nil, err
	}

	audit.Try(ctx, u.audit, "loan.approve", "ok", actorID,
		fmt.Sprintf("request %s approved, loan %s opened for %.2f", requestID, dto.LoanID, dto.TotalDue))
	return dto, nil
}

// Deny needs only the state check; signatures collected so far are irrelevant.
func (u *Usecase) Deny(ctx context.Context, requestID, reason, actorID string) (*RequestDTO, error) {
	var dto *RequestDTO

	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		req, err := r.Requests.GetByRequestIDForUpdate(ctx, requestID)
		if err != nil {
			return translateNotFound(err, "loan request", requestID, "requests.get")
		}
		if req.Status != loanDomain.RequestPending {
			return &fault.StateError{Entity: "loan request", ID: requestID, Current: string(req.Status), Want: string(loanDomain.RequestPending)}
		}
		req.Status = loanDomain.RequestDenied
		req.Reason = reason
		if err := r.Requests.Save(ctx, req); err != nil {
			return fault.Store("requests.save", err)
		}
		dto = requestDTO(req)
		return nil
	})
	if err != nil {
		return nil, err
	}

	audit.Try(ctx, u.audit, "loan.deny", "ok", actorID,
		fmt.Sprintf("request %s denied: %s", requestID, reason))
	return dto, nil
}

func (u *Usecase) GetLoan(ctx context.Context, loanID string) (*LoanDTO, error) {
	l, err := u.loans.GetByLoanID(ctx, loanID)
	if err != nil {
		return nil, translateNotFound(err, "loan", loanID, "loans.get")
	}
	return loanDTO(l), nil
}

// DaysPastDue reports current delinquency for a loan; a confirmed payment on
// or after the due date counts as caught up.
func (u *Usecase) DaysPastDue(ctx context.Context, loanID string) (int, error) {
	l, err := u.loans.GetByLoanID(ctx, loanID)
	if err != nil {
		return 0, translateNotFound(err, "loan", loanID, "loans.get")
	}

	var lastPaidOn *time.Time
	if p, err := u.payments.LastConfirmedPaidOn(ctx, l.ID); err == nil {
		lastPaidOn = &p.PaidOn
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, fault.Store("payments.last_confirmed", err)
	}

	return l.DaysPastDue(u.rules.LoanTermDays, lastPaidOn, u.now()), nil
}

func translateNotFound(err error, entity, entityID, op string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fault.NotFound(entity, entityID)
	}
	return fault.Store(op, err)
}

func requestDTO(req *loanDomain.Request) *RequestDTO {
	return &RequestDTO{
		RequestID:       req.RequestID,
		BorrowerID:      req.BorrowerID,
		SuretyID:        req.SuretyID,
		Amount:          req.Amount,
		RequesterUserID: req.RequesterUserID,
		Status:          string(req.Status),
		Reason:          req.Reason,
		LoanID:          req.LoanID,
		CreatedAt:       req.CreatedAt,
	}
}

func loanDTO(l *loanDomain.Loan) *LoanDTO {
	return &LoanDTO{
		LoanID:                 l.LoanID,
		MemberID:               l.MemberID,
		Status:                 string(l.Status),
		Balance:                l.Balance,
		TotalDue:               l.TotalDue,
		AccruedInterest:        l.AccruedInterest,
		TotalInterestGenerated: l.TotalInterestGenerated,
		IssuedAt:               l.IssuedAt,
		DueDate:                l.DueDate,
	}
}
