package rotation

import (
	"time"
)

// State is the singleton pointer for the payout cycle. Row id is always 1;
// only payout execution mutates it.
type State struct {
	ID              uint64    `gorm:"primaryKey;column:id" json:"-"`
	NextPayoutIndex int       `gorm:"column:next_payout_index" json:"next_payout_index"`
	NextPayoutDate  time.Time `gorm:"column:next_payout_date" json:"next_payout_date"`
	StartMemberID   uint64    `gorm:"column:start_member_id" json:"start_member_id"`
	UpdatedAt       time.Time `gorm:"column:updated_at;autoUpdateTime" json:"-"`
}

func (State) TableName() string { return "rotation_state" }

// Contribution is one member's contribution in one cycle. Contribution entry
// is external; read-only here.
type Contribution struct {
	ID          uint64    `gorm:"primaryKey;column:id" json:"-"`
	MemberID    uint64    `gorm:"column:member_id;index" json:"member_id"`
	Amount      float64   `gorm:"type:decimal(18,2);column:amount" json:"amount"`
	Kind        string    `gorm:"size:32;column:kind" json:"kind"`
	PayoutIndex int       `gorm:"column:payout_index;index" json:"payout_index"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (Contribution) TableName() string { return "contributions" }

// Payout is a completed payout. Exactly one row per payout_index; the unique
// index is the duplicate-execution arbiter.
type Payout struct {
	ID            uint64    `gorm:"primaryKey;column:id" json:"-"`
	BeneficiaryID uint64    `gorm:"column:beneficiary_id;index" json:"beneficiary_id"`
	Amount        float64   `gorm:"type:decimal(18,2);column:amount" json:"amount"`
	PayoutIndex   int       `gorm:"column:payout_index;uniqueIndex:ux_payouts_index" json:"payout_index"`
	PaidOn        time.Time `gorm:"column:paid_on" json:"paid_on"`
	CreatedAt     time.Time `gorm:"column:created_at;autoCreateTime" json:"-"`
}

func (Payout) TableName() string { return "payouts" }
