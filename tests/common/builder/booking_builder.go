//go:build unit || e2e

package builder

import (
	"time"

	"clubtab/internal/domain/booking"
	"clubtab/internal/usecase/queries"
	"clubtab/internal/usecase/shared"

	reqdto "clubtab/internal/handler/dto/request"

	"github.com/google/uuid"
)

type LineBuilder struct {
	ID             uuid.UUID
	MemberID       uuid.UUID
	DrinkID        uuid.UUID
	Kind           booking.Kind
	Quantity       int32
	UnitPriceCents int32
	AmountCents    int64
	ReversedAt     *time.Time
	CreatedAt      time.Time
}

func NewLineBuilder() *LineBuilder {
	return &LineBuilder{
		ID:             uuid.New(),
		MemberID:       uuid.New(),
		DrinkID:        uuid.New(),
		Kind:           booking.KindConsumption,
		Quantity:       2,
		UnitPriceCents: 150,
		AmountCents:    300,
		CreatedAt:      time.Now(),
	}
}

func (b *LineBuilder) BuildSnapshot() *shared.LineSnapshot {
	drinkID := b.DrinkID
	snap := &shared.LineSnapshot{
		ID:             b.ID,
		MemberID:       b.MemberID,
		Kind:           b.Kind,
		Quantity:       b.Quantity,
		UnitPriceCents: b.UnitPriceCents,
		AmountCents:    b.AmountCents,
		ReversedAt:     b.ReversedAt,
		CreatedAt:      b.CreatedAt,
	}
	if b.Kind != booking.KindAdjustment {
		snap.DrinkID = &drinkID
	}
	return snap
}

func (b *LineBuilder) BuildReadModel() *queries.LineView {
	drinkID := b.DrinkID
	drinkName := "Helles"
	view := &queries.LineView{
		ID:             b.ID,
		MemberID:       b.MemberID,
		MemberName:     "Test Member",
		Kind:           b.Kind.String(),
		Quantity:       b.Quantity,
		UnitPriceCents: b.UnitPriceCents,
		AmountCents:    b.AmountCents,
		ReversedAt:     b.ReversedAt,
		CreatedAt:      b.CreatedAt,
	}
	if b.Kind != booking.KindAdjustment {
		view.DrinkID = &drinkID
		view.DrinkName = &drinkName
	}
	return view
}

// Fluent builder methods
func (b *LineBuilder) WithMemberID(id uuid.UUID) *LineBuilder {
	b.MemberID = id
	return b
}

func (b *LineBuilder) WithDrinkID(id uuid.UUID) *LineBuilder {
	b.DrinkID = id
	return b
}

func (b *LineBuilder) WithKind(kind booking.Kind) *LineBuilder {
	b.Kind = kind
	return b
}

func (b *LineBuilder) WithQuantity(quantity int32) *LineBuilder {
	b.Quantity = quantity
	return b
}

func (b *LineBuilder) WithAmountCents(cents int64) *LineBuilder {
	b.AmountCents = cents
	return b
}

func (b *LineBuilder) AsReversed() *LineBuilder {
	now := time.Now()
	b.ReversedAt = &now
	return b
}

type BookingRequestBuilder struct {
	DrinkID    uuid.UUID
	Quantity   int32
	PreferFree bool
}

func NewBookingRequestBuilder() *BookingRequestBuilder {
	return &BookingRequestBuilder{
		DrinkID:    uuid.New(),
		Quantity:   1,
		PreferFree: false,
	}
}

func (b *BookingRequestBuilder) BuildDTO() reqdto.BookDrinkRequest {
	return reqdto.BookDrinkRequest{
		DrinkID:    b.DrinkID,
		Quantity:   b.Quantity,
		PreferFree: b.PreferFree,
	}
}

func (b *BookingRequestBuilder) WithDrinkID(id uuid.UUID) *BookingRequestBuilder {
	b.DrinkID = id
	return b
}

func (b *BookingRequestBuilder) WithQuantity(quantity int32) *BookingRequestBuilder {
	b.Quantity = quantity
	return b
}

func (b *BookingRequestBuilder) PreferringFree() *BookingRequestBuilder {
	b.PreferFree = true
	return b
}
