package member

import (
	"time"
)

// Member is a pool participant. Onboarding happens outside the engine; rows
// here are read-only to us.
type Member struct {
	ID              uint64    `gorm:"primaryKey;column:id" json:"id"`
	Name            string    `gorm:"size:191;column:name" json:"name"`
	Active          bool      `gorm:"column:active;index" json:"active"`
	FoundationTotal float64   `gorm:"type:decimal(18,2);column:foundation_total" json:"foundation_total"`
	CreatedAt       time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time `gorm:"column:updated_at;autoUpdateTime" json:"-"`
}

func (Member) TableName() string { return "members" }
