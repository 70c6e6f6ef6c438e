package signature

import (
	"time"
)

// Entity types signatures attach to.
const (
	EntityLoan   = "loan"
	EntityPayout = "payout"
)

// Signature is a named role's approval on an entity. The composite unique key
// makes re-signing an overwrite, never a duplicate.
type Signature struct {
	ID             uint64    `gorm:"primaryKey;column:id" json:"-"`
	EntityType     string    `gorm:"size:16;column:entity_type;uniqueIndex:ux_signatures_entity_role" json:"entity_type"`
	EntityID       string    `gorm:"size:32;column:entity_id;uniqueIndex:ux_signatures_entity_role" json:"entity_id"`
	Role           string    `gorm:"size:32;column:role;uniqueIndex:ux_signatures_entity_role" json:"role"`
	SignerName     string    `gorm:"size:191;column:signer_name" json:"signer_name"`
	SignerMemberID uint64    `gorm:"column:signer_member_id" json:"signer_member_id"`
	SignedAt       time.Time `gorm:"column:signed_at" json:"signed_at"`
}

func (Signature) TableName() string { return "signatures" }

// MissingRoles returns required roles with no recorded signature, preserving
// the order of required (not signature order).
func MissingRoles(signed []Signature, required []string) []string {
	have := make(map[string]struct{}, len(signed))
	for _, s := range signed {
		have[s.Role] = struct{}{}
	}
	var missing []string
	for _, role := range required {
		if _, ok := have[role]; !ok {
			missing = append(missing, role)
		}
	}
	return missing
}
