package signature

import "context"

type Repository interface {
	// Upsert inserts the signature or replaces the existing row with the same
	// (entity_type, entity_id, role).
	Upsert(ctx context.Context, s *Signature) error
	ListByEntity(ctx context.Context, entityType, entityID string) ([]Signature, error)
}
