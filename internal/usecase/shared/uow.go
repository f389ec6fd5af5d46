package shared

import (
	"context"

	"clubtab/internal/domain/booking"
	"clubtab/internal/domain/drink"
	"clubtab/internal/domain/member"
	"clubtab/internal/domain/payment"
	"clubtab/internal/infra/db"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithDB: Single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, dbtx db.DBTX) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Lines() LineRepository
	Members() MemberRepository
	Drinks() DrinkRepository
	Payments() PaymentRepository
	Purchases() PurchaseRepository
	Ledger() LedgerRepository
	Reads() CommandReads
	DB() db.DBTX
}

// LedgerRepository is the whole mutation surface for the two shared running
// counters. Implementations must issue single atomic server-side updates.
type LedgerRepository interface {
	IncrementBalance(ctx context.Context, dbtx db.DBTX, memberID uuid.UUID, amountCents int64) (int64, error)
	DrawFreePool(ctx context.Context, dbtx db.DBTX, want int32) (granted, remaining int32, err error)
	AddFreePool(ctx context.Context, dbtx db.DBTX, units int32) (int32, error)
	FreePoolRemaining(ctx context.Context, dbtx db.DBTX) (int32, error)
}

type LineRepository interface {
	Create(ctx context.Context, dbtx db.DBTX, line *booking.Line) (uuid.UUID, error)
	// ClaimReversal marks a line reversed if and only if it is not already;
	// returns the claimed line so the caller can undo its effects by kind.
	ClaimReversal(ctx context.Context, dbtx db.DBTX, lineID uuid.UUID) (*LineSnapshot, error)
}

type MemberRepository interface {
	Create(ctx context.Context, dbtx db.DBTX, m *member.Member) (uuid.UUID, error)
	UpdatePIN(ctx context.Context, dbtx db.DBTX, memberID uuid.UUID, pin string) error
}

type DrinkRepository interface {
	Create(ctx context.Context, dbtx db.DBTX, d *drink.Drink) (uuid.UUID, error)
	Update(ctx context.Context, dbtx db.DBTX, drinkID uuid.UUID, patch DrinkPatch) error
}

type PaymentRepository interface {
	Create(ctx context.Context, dbtx db.DBTX, p *payment.Payment) (uuid.UUID, error)
	// ClaimVerification flips verified exactly once; a second claim reports a
	// conflict instead of crediting the balance again.
	ClaimVerification(ctx context.Context, dbtx db.DBTX, paymentID, adminID uuid.UUID) (*PaymentSnapshot, error)
}

type PurchaseRepository interface {
	Create(ctx context.Context, dbtx db.DBTX, p PurchaseRecord) (uuid.UUID, error)
}

type CommandReads interface {
	DrinkByID(ctx context.Context, id uuid.UUID) (*DrinkSnapshot, error)
	MemberByID(ctx context.Context, id uuid.UUID) (*MemberSnapshot, error)
	MemberByEmail(ctx context.Context, email string) (*MemberSnapshot, error)
	MemberByPIN(ctx context.Context, pin string) (*MemberSnapshot, error)
	DrinkStockUnits(ctx context.Context, drinkID uuid.UUID) (int64, error)
}
