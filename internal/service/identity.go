package service

import "github.com/google/uuid"

// IdentityAssigner hands out identities for records created without one
// (direct creation, bid derivation, import inserts). Tests substitute a
// deterministic implementation.
type IdentityAssigner interface {
	NewID() uuid.UUID
}

type UUIDAssigner struct{}

func (UUIDAssigner) NewID() uuid.UUID {
	return uuid.New()
}
