package signing

import (
	"context"
	"fmt"
	"time"

	"github.com/Marceldinga/theyoungshallgrow--sub000/internal/domain/audit"
	"github.com/Marceldinga/theyoungshallgrow--sub000/internal/domain/fault"
	"github.com/Marceldinga/theyoungshallgrow--sub000/internal/domain/signature"
)

// RequiredRoles maps an entity type to the roles that must sign it.
type RequiredRoles map[string][]string

type Usecase struct {
	sigs  signature.Repository
	audit audit.Recorder
	roles RequiredRoles
	now   func() time.Time
}

func NewUsecase(sigs signature.Repository, rec audit.Recorder, roles RequiredRoles) *Usecase {
	return &Usecase{sigs: sigs, audit: rec, roles: roles, now: func() time.Time { return time.Now().UTC() }}
}

type SignInput struct {
	EntityType     string
	EntityID       string
	Role           string
	SignerName     string
	SignerMemberID uint64
	Actor          string
}

type SignatureDTO struct {
	EntityType     string    `json:"entity_type"`
	EntityID       string    `json:"entity_id"`
	Role           string    `json:"role"`
	SignerName     string    `json:"signer_name"`
	SignerMemberID uint64    `json:"signer_member_id"`
	SignedAt       time.Time `json:"signed_at"`
}

// Sign upserts the approval. Signing the same (entity, role) twice overwrites
// the earlier signature; it is never an error.
func (u *Usecase) Sign(ctx context.Context, in SignInput) (*SignatureDTO, error) {
	required, ok := u.roles[in.EntityType]
	if !ok {
		return nil, fault.Validation("entity_type", fmt.Sprintf("unknown entity type %q", in.EntityType))
	}
	if in.EntityID == "" {
		return nil, fault.Validation("entity_id", "must not be empty")
	}
	if !roleKnown(required, in.Role) {
		return nil, fault.Validation("role", fmt.Sprintf("role %q is not required for %s entities", in.Role, in.EntityType))
	}
	if in.SignerName == "" {
		return nil, fault.Validation("signer_name", "must not be empty")
	}

	s := &signature.Signature{
		EntityType:     in.EntityType,
		EntityID:       in.EntityID,
		Role:           in.Role,
		SignerName:     in.SignerName,
		SignerMemberID: in.SignerMemberID,
		SignedAt:       u.now(),
	}
	if err := u.sigs.Upsert(ctx, s); err != nil {
		return nil, fault.Store("signatures.upsert", err)
	}

	audit.Try(ctx, u.audit, "signature.sign", "ok", in.Actor,
		fmt.Sprintf("%s %s signed as %s by %s", in.EntityType, in.EntityID, in.Role, in.SignerName))

	return &SignatureDTO{
		EntityType:     s.EntityType,
		EntityID:       s.EntityID,
		Role:           s.Role,
		SignerName:     s.SignerName,
		SignerMemberID: s.SignerMemberID,
		SignedAt:       s.SignedAt,
	}, nil
}

// MissingRoles reports which required roles have not signed yet, in the order
// the role set is configured.
func (u *Usecase) MissingRoles(ctx context.Context, entityType, entityID string) ([]string, error) {
	required, ok := u.roles[entityType]
	if !ok {
		return nil, fault.Validation("entity_type", fmt.Sprintf("unknown entity type %q", entityType))
	}
	signed, err := u.sigs.ListByEntity(ctx, entityType, entityID)
	if err != nil {
		return nil, fault.Store("signatures.list", err)
	}
	return signature.MissingRoles(signed, required), nil
}

func roleKnown(required []string, role string) bool {
	for _, r := range required {
		if r == role {
			return true
		}
	}
	return false
}
