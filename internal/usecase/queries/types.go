package queries

import (
	"time"

	"github.com/google/uuid"
)

// Read models (DTO for read side)
type LineView struct {
	ID             uuid.UUID  `json:"id"`
	MemberID       uuid.UUID  `json:"member_id"`
	MemberName     string     `json:"member_name"`
	DrinkID        *uuid.UUID `json:"drink_id,omitempty"`
	DrinkName      *string    `json:"drink_name,omitempty"`
	Kind           string     `json:"kind"`
	Quantity       int32      `json:"quantity"`
	UnitPriceCents int32      `json:"unit_price_cents"`
	AmountCents    int64      `json:"amount_cents"`
	Note           *string    `json:"note,omitempty"`
	ReversedAt     *time.Time `json:"reversed_at,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
}

type TabView struct {
	MemberID         uuid.UUID   `json:"member_id"`
	DisplayName      string      `json:"display_name"`
	OpenBalanceCents int64       `json:"open_balance_cents"`
	Lines            []*LineView `json:"lines"`
}

type CatalogItem struct {
	ID                uuid.UUID `json:"id"`
	Name              string    `json:"name"`
	PriceCents        int32     `json:"price_cents"`
	CratePriceCents   int32     `json:"crate_price_cents"`
	UnitsPerCrate     int32     `json:"units_per_crate"`
	StockUnits        int64     `json:"stock_units"`
	LowStock          bool      `json:"low_stock"`
	IsActive          bool      `json:"is_active"`
	LowStockThreshold int32     `json:"low_stock_threshold"`
}

type PoolView struct {
	QuantityRemaining int32     `json:"quantity_remaining"`
	UpdatedAt         time.Time `json:"updated_at"`
}

type PaymentView struct {
	ID          uuid.UUID  `json:"id"`
	MemberID    uuid.UUID  `json:"member_id"`
	MemberName  string     `json:"member_name"`
	AmountCents int64      `json:"amount_cents"`
	Method      string     `json:"method"`
	Verified    bool       `json:"verified"`
	VerifiedBy  *uuid.UUID `json:"verified_by,omitempty"`
	VerifiedAt  *time.Time `json:"verified_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

// SummaryRow aggregates one drink over the report window. Free and paid
// units come from the two-line booking representation, so the split is read
// straight off the ledger without inference.
type SummaryRow struct {
	DrinkID      uuid.UUID `json:"drink_id"`
	DrinkName    string    `json:"drink_name"`
	PaidUnits    int64     `json:"paid_units"`
	FreeUnits    int64     `json:"free_units"`
	RevenueCents int64     `json:"revenue_cents"`
}

type SummaryReport struct {
	From         time.Time     `json:"from"`
	To           time.Time     `json:"to"`
	Rows         []*SummaryRow `json:"rows"`
	PaidUnits    int64         `json:"paid_units"`
	FreeUnits    int64         `json:"free_units"`
	RevenueCents int64         `json:"revenue_cents"`
	CostCents    int64         `json:"cost_cents"`
	ProfitCents  int64         `json:"profit_cents"`
}

type LeaderboardEntry struct {
	MemberID    uuid.UUID `json:"member_id"`
	DisplayName string    `json:"display_name"`
	Units       int64     `json:"units"`
	SpentCents  int64     `json:"spent_cents"`
}

type MemberView struct {
	ID               uuid.UUID `json:"id"`
	Email            string    `json:"email"`
	DisplayName      string    `json:"display_name"`
	Role             string    `json:"role"`
	OpenBalanceCents int64     `json:"open_balance_cents"`
	IsActive         bool      `json:"is_active"`
	CreatedAt        time.Time `json:"created_at"`
}
