package member

import (
	"time"

	"github.com/google/uuid"
)

// Member entity. The open balance is the authoritative running total a member
// owes (positive) or is owed (negative); it is never recomputed from history
// and is mutated only through the ledger service.
type Member struct {
	id               uuid.UUID
	email            Email
	displayName      string
	passwordHash     string
	pin              string
	role             Role
	openBalanceCents int64
	isActive         bool
	createdAt        time.Time
	updatedAt        time.Time
}

func NewMember(email Email, displayName, passwordHash, pin string, role Role) *Member {
	return &Member{
		id:           uuid.New(),
		email:        email,
		displayName:  displayName,
		passwordHash: passwordHash,
		pin:          pin,
		role:         role,
		isActive:     true,
	}
}

func ReconstructMember(
	id uuid.UUID,
	email Email,
	displayName, passwordHash, pin string,
	role Role,
	openBalanceCents int64,
	isActive bool,
	createdAt, updatedAt time.Time,
) *Member {
	return &Member{
		id:               id,
		email:            email,
		displayName:      displayName,
		passwordHash:     passwordHash,
		pin:              pin,
		role:             role,
		openBalanceCents: openBalanceCents,
		isActive:         isActive,
		createdAt:        createdAt,
		updatedAt:        updatedAt,
	}
}

func (m *Member) IsSettled() bool {
	return m.openBalanceCents == 0
}

func (m *Member) IsInCredit() bool {
	return m.openBalanceCents < 0
}

func (m *Member) ID() uuid.UUID           { return m.id }
func (m *Member) Email() Email            { return m.email }
func (m *Member) DisplayName() string     { return m.displayName }
func (m *Member) PasswordHash() string    { return m.passwordHash }
func (m *Member) PIN() string             { return m.pin }
func (m *Member) Role() Role              { return m.role }
func (m *Member) OpenBalanceCents() int64 { return m.openBalanceCents }
func (m *Member) IsActive() bool          { return m.isActive }
func (m *Member) CreatedAt() time.Time    { return m.createdAt }
func (m *Member) UpdatedAt() time.Time    { return m.updatedAt }
