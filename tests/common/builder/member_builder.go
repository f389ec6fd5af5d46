//go:build unit || e2e

package builder

import (
	"clubtab/internal/domain/member"
	"clubtab/internal/usecase/queries"
	"clubtab/internal/usecase/shared"

	"github.com/google/uuid"
)

type MemberBuilder struct {
	ID               uuid.UUID
	Email            string
	DisplayName      string
	PasswordHash     string
	PIN              string
	Role             string
	OpenBalanceCents int64
	IsActive         bool
}

func NewMemberBuilder() *MemberBuilder {
	return &MemberBuilder{
		ID:               uuid.New(),
		Email:            "test@example.org",
		DisplayName:      "Test Member",
		PasswordHash:     "$2a$12$uhAjVE9f92IGYv3E25pJNetg.27lVt0p7jmLWjqjmhOg92ldPS0A.",
		PIN:              "123456",
		Role:             "member",
		OpenBalanceCents: 0,
		IsActive:         true,
	}
}

func (b *MemberBuilder) With(mutate func(*MemberBuilder)) *MemberBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *MemberBuilder) BuildDomain() (*member.Member, error) {
	email, err := member.NewEmail(b.Email)
	if err != nil {
		return nil, err
	}
	role, err := member.NewRole(b.Role)
	if err != nil {
		return nil, err
	}
	return member.NewMember(email, b.DisplayName, b.PasswordHash, b.PIN, role), nil
}

func (b *MemberBuilder) BuildSnapshot() *shared.MemberSnapshot {
	return &shared.MemberSnapshot{
		ID:               b.ID,
		Email:            b.Email,
		DisplayName:      b.DisplayName,
		PasswordHash:     b.PasswordHash,
		Role:             member.Role(b.Role),
		OpenBalanceCents: b.OpenBalanceCents,
		IsActive:         b.IsActive,
	}
}

func (b *MemberBuilder) BuildReadModel() *queries.MemberView {
	return &queries.MemberView{
		ID:               b.ID,
		Email:            b.Email,
		DisplayName:      b.DisplayName,
		Role:             b.Role,
		OpenBalanceCents: b.OpenBalanceCents,
		IsActive:         b.IsActive,
	}
}

// Fluent builder methods
func (b *MemberBuilder) WithID(id uuid.UUID) *MemberBuilder {
	b.ID = id
	return b
}

func (b *MemberBuilder) WithEmail(email string) *MemberBuilder {
	b.Email = email
	return b
}

func (b *MemberBuilder) WithDisplayName(name string) *MemberBuilder {
	b.DisplayName = name
	return b
}

func (b *MemberBuilder) WithPIN(pin string) *MemberBuilder {
	b.PIN = pin
	return b
}

func (b *MemberBuilder) AsAdmin() *MemberBuilder {
	b.Role = "admin"
	return b
}

func (b *MemberBuilder) WithBalance(cents int64) *MemberBuilder {
	b.OpenBalanceCents = cents
	return b
}

func (b *MemberBuilder) AsInactive() *MemberBuilder {
	b.IsActive = false
	return b
}
