package interest

import (
	"time"
)

// Snapshot proves monthly accrual ran. The unique month key is the idempotency
// anchor: at most one row per calendar month.
type Snapshot struct {
	ID                        uint64    `gorm:"primaryKey;column:id" json:"-"`
	Month                     string    `gorm:"size:7;column:snapshot_month;uniqueIndex:ux_interest_snapshots_month" json:"snapshot_month"`
	LifetimeInterestGenerated float64   `gorm:"type:decimal(18,2);column:lifetime_interest_generated" json:"lifetime_interest_generated"`
	CreatedAt                 time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (Snapshot) TableName() string { return "interest_snapshots" }

// MonthKey formats t as the "YYYY-MM" snapshot key, in UTC.
func MonthKey(t time.Time) string { return t.UTC().Format("2006-01") }
