// Package ledger is the only mutation surface for the two shared running
// counters: member open balances and the communal free-goods pool. No other
// code path may write those columns. Every method is a single atomic
// server-side UPDATE, never a client-side read-modify-write, so concurrent
// clients serialize on the row without any locking in this process.
package ledger

import (
	"context"

	"clubtab/internal/infra"
	"clubtab/internal/infra/db"
	"clubtab/internal/pkg/pgconv"

	"github.com/google/uuid"
)

// freePoolID is the singleton row of the free_pool table.
const freePoolID = 1

type Ledger struct{}

func New() *Ledger {
	return &Ledger{}
}

// IncrementBalance atomically adds a signed amount to a member's open
// balance and returns the new value. Positive amounts charge, negative
// amounts credit (verified payments, refunds, corrections).
func (l *Ledger) IncrementBalance(ctx context.Context, dbtx db.DBTX, memberID uuid.UUID, amountCents int64) (int64, error) {
	const query = `
		UPDATE members
		SET open_balance_cents = open_balance_cents + $2, updated_at = now()
		WHERE id = $1
		RETURNING open_balance_cents`

	var newBalance int64
	err := dbtx.QueryRow(ctx, query, memberID, amountCents).Scan(&newBalance)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return 0, infra.WrapRepoErr("member not found for balance increment", err, infra.KindNotFound)
		}
		return 0, infra.WrapRepoErr("failed to increment balance", err)
	}

	return newBalance, nil
}

// DrawFreePool atomically takes up to want units from the shared pool,
// clamped so the counter never goes negative, and reports how many units
// were actually granted plus the remainder. The caller settles its free/paid
// split against the granted value, which removes the stale-snapshot race at
// the design level.
func (l *Ledger) DrawFreePool(ctx context.Context, dbtx db.DBTX, want int32) (granted int32, remaining int32, err error) {
	if want <= 0 {
		remaining, err = l.FreePoolRemaining(ctx, dbtx)
		return 0, remaining, err
	}

	// RETURNING sees the post-update row, so the granted amount is computed
	// from the locked pre-update value inside the same statement.
	const query = `
		WITH before AS (
			SELECT quantity_remaining AS qty FROM free_pool WHERE id = $1 FOR UPDATE
		)
		UPDATE free_pool
		SET quantity_remaining = quantity_remaining - LEAST(quantity_remaining, $2),
		    updated_at = now()
		FROM before
		WHERE free_pool.id = $1
		RETURNING LEAST(before.qty, $2), free_pool.quantity_remaining`

	err = dbtx.QueryRow(ctx, query, freePoolID, want).Scan(&granted, &remaining)
	if err != nil {
		return 0, 0, infra.WrapRepoErr("failed to draw from free pool", err)
	}

	return granted, remaining, nil
}

// AddFreePool atomically credits units to the shared pool (crate
// contribution) and returns the new remainder.
func (l *Ledger) AddFreePool(ctx context.Context, dbtx db.DBTX, units int32) (int32, error) {
	const query = `
		UPDATE free_pool
		SET quantity_remaining = quantity_remaining + $2, updated_at = now()
		WHERE id = $1
		RETURNING quantity_remaining`

	var remaining int32
	if err := dbtx.QueryRow(ctx, query, freePoolID, units).Scan(&remaining); err != nil {
		return 0, infra.WrapRepoErr("failed to add to free pool", err)
	}

	return remaining, nil
}

func (l *Ledger) FreePoolRemaining(ctx context.Context, dbtx db.DBTX) (int32, error) {
	const query = `SELECT quantity_remaining FROM free_pool WHERE id = $1`

	var remaining int32
	if err := dbtx.QueryRow(ctx, query, freePoolID).Scan(&remaining); err != nil {
		return 0, infra.WrapRepoErr("failed to read free pool", err)
	}

	return remaining, nil
}
