package mysql

import (
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	auditDomain "github.com/Marceldinga/theyoungshallgrow--sub000/internal/domain/audit"
	interestDomain "github.com/Marceldinga/theyoungshallgrow--sub000/internal/domain/interest"
	memberDomain "github.com/Marceldinga/theyoungshallgrow--sub000/internal/domain/member"
	rotationDomain "github.com/Marceldinga/theyoungshallgrow--sub000/internal/domain/rotation"
	signatureDomain "github.com/Marceldinga/theyoungshallgrow--sub000/internal/domain/signature"
)

// --- SQLite-friendly schemas only for tests (no ENUM) ---

type requestSQLite struct {
	ID              uint64    `gorm:"primaryKey;column:id"`
	RequestID       string    `gorm:"size:32;column:request_id;uniqueIndex:ux_loan_requests_request_id"`
	BorrowerID      uint64    `gorm:"column:borrower_id;index"`
	SuretyID        uint64    `gorm:"column:surety_id"`
	Amount          float64   `gorm:"column:amount"`
	RequesterUserID string    `gorm:"size:36;column:requester_user_id"`
	Status          string    `gorm:"type:text;column:status"` // ← no enum
	Reason          string    `gorm:"type:text;column:reason"`
	LoanID          string    `gorm:"size:32;column:loan_id"`
	CreatedAt       time.Time `gorm:"column:created_at"`
	UpdatedAt       time.Time `gorm:"column:updated_at"`
}

func (requestSQLite) TableName() string { return "loan_requests" }

type loanSQLite struct {
	ID                     uint64    `gorm:"primaryKey;column:id"`
	LoanID                 string    `gorm:"size:32;column:loan_id;uniqueIndex:ux_loans_loan_id"`
	MemberID               uint64    `gorm:"column:member_id;index"`
	Status                 string    `gorm:"type:text;column:status"` // ← no enum
	Balance                float64   `gorm:"column:balance"`
	TotalDue               float64   `gorm:"column:total_due"`
	AccruedInterest        float64   `gorm:"column:accrued_interest"`
	TotalInterestGenerated float64   `gorm:"column:total_interest_generated"`
	IssuedAt               time.Time `gorm:"column:issued_at"`
	DueDate                time.Time `gorm:"column:due_date"`
	CreatedAt              time.Time `gorm:"column:created_at"`
	UpdatedAt              time.Time `gorm:"column:updated_at"`
}

func (loanSQLite) TableName() string { return "loans" }

type paymentSQLite struct {
	ID         uint64    `gorm:"primaryKey;column:id"`
	PaymentID  string    `gorm:"size:32;column:payment_id;uniqueIndex:ux_loan_payments_payment_id"`
	LoanID     uint64    `gorm:"column:loan_id;index"`
	Amount     float64   `gorm:"column:amount"`
	PaidOn     time.Time `gorm:"column:paid_on"`
	Status     string    `gorm:"type:text;column:status"` // ← no enum
	RecordedBy string    `gorm:"size:64;column:recorded_by"`
	ReviewedBy string    `gorm:"size:64;column:reviewed_by"`
	Reason     string    `gorm:"type:text;column:reason"`
	CreatedAt  time.Time `gorm:"column:created_at"`
	UpdatedAt  time.Time `gorm:"column:updated_at"`
}

func (paymentSQLite) TableName() string { return "loan_payments" }

// openTestDB creates an in-memory sqlite DB. Enum-typed tables migrate via
// the sqlite-safe shadow models; the rest use the real domain models.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(
		&requestSQLite{},
		&loanSQLite{},
		&paymentSQLite{},
		&memberDomain.Member{},
		&rotationDomain.State{},
		&rotationDomain.Contribution{},
		&rotationDomain.Payout{},
		&signatureDomain.Signature{},
		&interestDomain.Snapshot{},
		&auditDomain.Event{},
	); err != nil {
		t.Fatalf("auto-migrate: %v", err)
	}
	return db
}
