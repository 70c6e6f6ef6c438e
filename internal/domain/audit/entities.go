package audit

import (
	"context"
	"log"
	"time"
)

// Event is an immutable record of an engine decision. Rows are append-only.
type Event struct {
	ID        uint64    `gorm:"primaryKey;column:id" json:"-"`
	Action    string    `gorm:"size:64;column:action" json:"action"`
	Status    string    `gorm:"size:16;column:status" json:"status"`
	Actor     string    `gorm:"size:64;column:actor" json:"actor"`
	Details   string    `gorm:"type:text;column:details" json:"details"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (Event) TableName() string { return "audit_events" }

type Recorder interface {
	Record(ctx context.Context, e *Event) error
}

// Try records best-effort: a failed audit write never aborts the business
// operation it documents, but it must not vanish silently either.
func Try(ctx context.Context, r Recorder, action, status, actor, details string) {
	if r == nil {
		return
	}
	e := &Event{Action: action, Status: status, Actor: actor, Details: details}
	if err := r.Record(ctx, e); err != nil {
		log.Printf("audit: dropped event action=%s status=%s actor=%s: %v", action, status, actor, err)
	}
}
