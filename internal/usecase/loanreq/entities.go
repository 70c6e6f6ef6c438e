package loanreq

import (
	"time"
)

type CreateRequestInput struct {
	BorrowerID      uint64  `json:"borrower_id"`
	SuretyID        uint64  `json:"surety_id"`
	Amount          float64 `json:"amount"`
	RequesterUserID string  `json:"requester_user_id"`
	Actor           string  `json:"-"`
}

type RequestDTO struct {
	RequestID       string    `json:"request_id"`
	BorrowerID      uint64    `json:"borrower_id"`
	SuretyID        uint64    `json:"surety_id"`
	Amount          float64   `json:"amount"`
	RequesterUserID string    `json:"requester_user_id"`
	Status          string    `json:"status"`
	Reason          string    `json:"reason,omitempty"`
	LoanID          string    `json:"loan_id,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}

type LoanDTO struct {
	LoanID                 string    `json:"loan_id"`
	MemberID               uint64    `json:"member_id"`
	Status                 string    `json:"status"`
	Balance                float64   `json:"balance"`
	TotalDue               float64   `json:"total_due"`
	AccruedInterest        float64   `json:"accrued_interest"`
	TotalInterestGenerated float64   `json:"total_interest_generated"`
	IssuedAt               time.Time `json:"issued_at"`
	DueDate                time.Time `json:"due_date"`
}
