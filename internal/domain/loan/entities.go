package loan

import (
	"time"
)

// Closing tolerance for float balances: a loan is closed once total_due is
// within this of zero.
const Epsilon = 0.0001

type RequestStatus string

const (
	RequestPending  RequestStatus = "pending"
	RequestApproved RequestStatus = "approved"
	RequestDenied   RequestStatus = "denied"
)

type Status string

const (
	StatusActive Status = "active"
	StatusClosed Status = "closed"
)

type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "pending"
	PaymentConfirmed PaymentStatus = "confirmed"
	PaymentRejected  PaymentStatus = "rejected"
)

// Request is a borrower's ask. It transitions exactly once, by admin action.
type Request struct {
	ID              uint64        `gorm:"primaryKey;column:id" json:"-"`
	RequestID       string        `gorm:"size:32;column:request_id;uniqueIndex:ux_loan_requests_request_id" json:"request_id"`
	BorrowerID      uint64        `gorm:"column:borrower_id;index" json:"borrower_id"`
	SuretyID        uint64        `gorm:"column:surety_id" json:"surety_id"`
	Amount          float64       `gorm:"type:decimal(18,2);column:amount" json:"amount"`
	RequesterUserID string        `gorm:"size:36;column:requester_user_id" json:"requester_user_id"`
	Status          RequestStatus `gorm:"type:enum('pending','approved','denied');default:'pending';column:status" json:"status"`
	Reason          string        `gorm:"type:text;column:reason" json:"reason,omitempty"`
	LoanID          string        `gorm:"size:32;column:loan_id" json:"loan_id,omitempty"`
	CreatedAt       time.Time     `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time     `gorm:"column:updated_at;autoUpdateTime" json:"-"`
}

func (Request) TableName() string { return "loan_requests" }

// Loan is an active or closed credit line. balance and total_due never go
// negative; total_due only moves down except for accrual increments.
type Loan struct {
	ID                     uint64    `gorm:"primaryKey;column:id" json:"-"`
	LoanID                 string    `gorm:"size:32;column:loan_id;uniqueIndex:ux_loans_loan_id" json:"loan_id"`
	MemberID               uint64    `gorm:"column:member_id;index:idx_loans_member_status" json:"member_id"`
	Status                 Status    `gorm:"type:enum('active','closed');default:'active';column:status;index:idx_loans_member_status" json:"status"`
	Balance                float64   `gorm:"type:decimal(18,2);column:balance" json:"balance"`
	TotalDue               float64   `gorm:"type:decimal(18,2);column:total_due" json:"total_due"`
	AccruedInterest        float64   `gorm:"type:decimal(18,2);column:accrued_interest" json:"accrued_interest"`
	TotalInterestGenerated float64   `gorm:"type:decimal(18,2);column:total_interest_generated" json:"total_interest_generated"`
	IssuedAt               time.Time `gorm:"column:issued_at" json:"issued_at"`
	DueDate                time.Time `gorm:"column:due_date" json:"due_date"`
	CreatedAt              time.Time `gorm:"column:created_at;autoCreateTime" json:"-"`
	UpdatedAt              time.Time `gorm:"column:updated_at;autoUpdateTime" json:"-"`
}

func (Loan) TableName() string { return "loans" }

// EffectiveDueDate is the stored due date, or issue date + termDays when the
// row predates the due_date column.
func (l *Loan) EffectiveDueDate(termDays int) time.Time {
	if !l.DueDate.IsZero() {
		return l.DueDate
	}
	return l.IssuedAt.AddDate(0, 0, termDays)
}

// DaysPastDue reports how many days the loan is overdue as of now. A payment
// made on or after the due date resets delinquency to zero.
func (l *Loan) DaysPastDue(termDays int, lastPaidOn *time.Time, now time.Time) int {
	due := l.EffectiveDueDate(termDays)
	if !now.After(due) {
		return 0
	}
	if lastPaidOn != nil && !lastPaidOn.Before(due) {
		return 0
	}
	return int(now.Sub(due).Hours() / 24)
}

// Payment is one repayment event: recorded by a maker, settled by a checker.
type Payment struct {
	ID         uint64        `gorm:"primaryKey;column:id" json:"-"`
	PaymentID  string        `gorm:"size:32;column:payment_id;uniqueIndex:ux_loan_payments_payment_id" json:"payment_id"`
	LoanID     uint64        `gorm:"column:loan_id;index" json:"-"`
	Amount     float64       `gorm:"type:decimal(18,2);column:amount" json:"amount"`
	PaidOn     time.Time     `gorm:"column:paid_on" json:"paid_on"`
	Status     PaymentStatus `gorm:"type:enum('pending','confirmed','rejected');default:'pending';column:status" json:"status"`
	RecordedBy string        `gorm:"size:64;column:recorded_by" json:"recorded_by"`
	ReviewedBy string        `gorm:"size:64;column:reviewed_by" json:"reviewed_by,omitempty"`
	Reason     string        `gorm:"type:text;column:reason" json:"reason,omitempty"`
	CreatedAt  time.Time     `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time     `gorm:"column:updated_at;autoUpdateTime" json:"-"`
}

func (Payment) TableName() string { return "loan_payments" }
