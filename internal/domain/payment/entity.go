package payment

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidAmount   = errors.New("payment amount must be positive")
	ErrInvalidMethod   = errors.New("invalid payment method")
	ErrAlreadyVerified = errors.New("payment already verified")
)

type Method string

const (
	MethodCash     Method = "cash"
	MethodTransfer Method = "transfer"
	MethodPaypal   Method = "paypal"
)

func (m Method) String() string {
	return string(m)
}

func (m Method) IsValid() bool {
	switch m {
	case MethodCash, MethodTransfer, MethodPaypal:
		return true
	default:
		return false
	}
}

func NewMethod(s string) (Method, error) {
	m := Method(s)
	if !m.IsValid() {
		return "", ErrInvalidMethod
	}
	return m, nil
}

// Payment is a member-reported settlement. It has no ledger effect until an
// admin verifies it; verification is the only trigger that reduces the open
// balance, exactly once.
type Payment struct {
	id          uuid.UUID
	memberID    uuid.UUID
	amountCents int64
	method      Method
	verified    bool
	verifiedBy  *uuid.UUID
	verifiedAt  *time.Time
	createdAt   time.Time
}

func NewPayment(memberID uuid.UUID, amountCents int64, method Method) (*Payment, error) {
	if amountCents <= 0 {
		return nil, ErrInvalidAmount
	}
	if !method.IsValid() {
		return nil, ErrInvalidMethod
	}
	return &Payment{
		id:          uuid.New(),
		memberID:    memberID,
		amountCents: amountCents,
		method:      method,
	}, nil
}

func ReconstructPayment(
	id, memberID uuid.UUID,
	amountCents int64,
	method Method,
	verified bool,
	verifiedBy *uuid.UUID,
	verifiedAt *time.Time,
	createdAt time.Time,
) *Payment {
	return &Payment{
		id:          id,
		memberID:    memberID,
		amountCents: amountCents,
		method:      method,
		verified:    verified,
		verifiedBy:  verifiedBy,
		verifiedAt:  verifiedAt,
		createdAt:   createdAt,
	}
}

func (p *Payment) ID() uuid.UUID          { return p.id }
func (p *Payment) MemberID() uuid.UUID    { return p.memberID }
func (p *Payment) AmountCents() int64     { return p.amountCents }
func (p *Payment) Method() Method         { return p.method }
func (p *Payment) Verified() bool         { return p.verified }
func (p *Payment) VerifiedBy() *uuid.UUID { return p.verifiedBy }
func (p *Payment) VerifiedAt() *time.Time { return p.verifiedAt }
func (p *Payment) CreatedAt() time.Time   { return p.createdAt }
