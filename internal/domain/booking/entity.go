package booking

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidKind       = errors.New("invalid ledger line kind")
	ErrNegativeUnitPrice = errors.New("unit price cannot be negative")
	ErrMissingNote       = errors.New("adjustment requires a note")
	ErrAlreadyReversed   = errors.New("ledger line already reversed")
)

// Line is one immutable ledger row. A booking of N units with M of them free
// produces two lines, one free and one paid, so free-vs-paid accounting is
// exact from the lines themselves.
type Line struct {
	id             uuid.UUID
	memberID       uuid.UUID
	drinkID        *uuid.UUID
	kind           Kind
	quantity       int32
	unitPriceCents int32
	amountCents    int64
	note           *string
	reversedAt     *time.Time
	createdAt      time.Time
}

// NewConsumption builds a charged consumption line. unitPriceCents zero is
// reserved for free lines; use NewFreeConsumption for pool draws.
func NewConsumption(memberID, drinkID uuid.UUID, quantity, unitPriceCents int32) (*Line, error) {
	if quantity <= 0 {
		return nil, ErrInvalidQuantity
	}
	if unitPriceCents < 0 {
		return nil, ErrNegativeUnitPrice
	}
	return &Line{
		id:             uuid.New(),
		memberID:       memberID,
		drinkID:        &drinkID,
		kind:           KindConsumption,
		quantity:       quantity,
		unitPriceCents: unitPriceCents,
		amountCents:    int64(quantity) * int64(unitPriceCents),
	}, nil
}

func NewFreeConsumption(memberID, drinkID uuid.UUID, quantity int32) (*Line, error) {
	if quantity <= 0 {
		return nil, ErrInvalidQuantity
	}
	return &Line{
		id:       uuid.New(),
		memberID: memberID,
		drinkID:  &drinkID,
		kind:     KindFreeConsumption,
		quantity: quantity,
	}, nil
}

// NewPoolContribution records one crate credited to the free pool. quantity
// carries the crate's unit count so a reversal knows how much to drain again;
// amountCents is the crate price for purchased crates, zero for own stock.
func NewPoolContribution(memberID, drinkID uuid.UUID, units int32, cratePriceCents int32, mode PriceMode) (*Line, error) {
	if units <= 0 {
		return nil, ErrInvalidQuantity
	}
	if cratePriceCents < 0 {
		return nil, ErrNegativeUnitPrice
	}
	amount := int64(0)
	if mode == PriceModePurchased {
		amount = int64(cratePriceCents)
	}
	return &Line{
		id:          uuid.New(),
		memberID:    memberID,
		drinkID:     &drinkID,
		kind:        KindPoolContribution,
		quantity:    units,
		amountCents: amount,
	}, nil
}

func NewAdjustment(memberID uuid.UUID, deltaCents int64, note string) (*Line, error) {
	note = strings.TrimSpace(note)
	if note == "" {
		return nil, ErrMissingNote
	}
	return &Line{
		id:          uuid.New(),
		memberID:    memberID,
		kind:        KindAdjustment,
		amountCents: deltaCents,
		note:        &note,
	}, nil
}

func ReconstructLine(
	id, memberID uuid.UUID,
	drinkID *uuid.UUID,
	kind Kind,
	quantity, unitPriceCents int32,
	amountCents int64,
	note *string,
	reversedAt *time.Time,
	createdAt time.Time,
) *Line {
	return &Line{
		id:             id,
		memberID:       memberID,
		drinkID:        drinkID,
		kind:           kind,
		quantity:       quantity,
		unitPriceCents: unitPriceCents,
		amountCents:    amountCents,
		note:           note,
		reversedAt:     reversedAt,
		createdAt:      createdAt,
	}
}

func (l *Line) IsReversed() bool {
	return l.reversedAt != nil
}

// IsFree reports whether the line consumed from the shared pool.
func (l *Line) IsFree() bool {
	return l.kind == KindFreeConsumption
}

func (l *Line) ID() uuid.UUID          { return l.id }
func (l *Line) MemberID() uuid.UUID    { return l.memberID }
func (l *Line) DrinkID() *uuid.UUID    { return l.drinkID }
func (l *Line) Kind() Kind             { return l.kind }
func (l *Line) Quantity() int32        { return l.quantity }
func (l *Line) UnitPriceCents() int32  { return l.unitPriceCents }
func (l *Line) AmountCents() int64     { return l.amountCents }
func (l *Line) Note() *string          { return l.note }
func (l *Line) ReversedAt() *time.Time { return l.reversedAt }
func (l *Line) CreatedAt() time.Time   { return l.createdAt }
