package shared

import (
	"time"

	"clubtab/internal/domain/booking"
	"clubtab/internal/domain/member"

	"github.com/google/uuid"
)

// Write-side snapshots prevent dependency on Read-side query types (CQRS separation)
type DrinkSnapshot struct {
	ID                uuid.UUID
	Name              string
	PriceCents        int32
	CratePriceCents   int32
	UnitsPerCrate     int32
	LowStockThreshold int32
	IsActive          bool
}

type MemberSnapshot struct {
	ID               uuid.UUID
	Email            string
	DisplayName      string
	PasswordHash     string
	Role             member.Role
	OpenBalanceCents int64
	IsActive         bool
}

type LineSnapshot struct {
	ID             uuid.UUID
	MemberID       uuid.UUID
	DrinkID        *uuid.UUID
	Kind           booking.Kind
	Quantity       int32
	UnitPriceCents int32
	AmountCents    int64
	ReversedAt     *time.Time
	CreatedAt      time.Time
}

type PaymentSnapshot struct {
	ID          uuid.UUID
	MemberID    uuid.UUID
	AmountCents int64
	Method      string
	Verified    bool
}

type PurchaseRecord struct {
	DrinkID         uuid.UUID
	Crates          float64
	CratePriceCents int32
	Note            *string
}

type DrinkPatch struct {
	Name              *string
	PriceCents        *int32
	CratePriceCents   *int32
	LowStockThreshold *int32
	IsActive          *bool
}
