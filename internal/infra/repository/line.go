package repository

import (
	"context"

	"clubtab/internal/domain/booking"
	"clubtab/internal/infra"
	"clubtab/internal/infra/db"
	"clubtab/internal/pkg/pgconv"
	"clubtab/internal/usecase/shared"

	"github.com/google/uuid"
)

type LineRepository struct{}

func NewLineRepository() *LineRepository {
	return &LineRepository{}
}

func (r *LineRepository) Create(ctx context.Context, dbtx db.DBTX, line *booking.Line) (uuid.UUID, error) {
	query, args, err := psql.Insert("ledger_lines").
		Columns("id", "member_id", "drink_id", "kind", "quantity", "unit_price_cents", "amount_cents", "note").
		Values(
			line.ID(),
			line.MemberID(),
			pgconv.UUIDPtrToPgtype(line.DrinkID()),
			line.Kind().String(),
			line.Quantity(),
			line.UnitPriceCents(),
			line.AmountCents(),
			pgconv.StringPtrToPgtype(line.Note()),
		).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to build ledger line insert", err)
	}

	var id uuid.UUID
	if err := dbtx.QueryRow(ctx, query, args...).Scan(&id); err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create ledger line", err, pgErrKind(err))
	}

	return id, nil
}

// ClaimReversal is an atomic claim: the WHERE clause makes a second reversal
// of the same line a KindConflict instead of a double refund.
func (r *LineRepository) ClaimReversal(ctx context.Context, dbtx db.DBTX, lineID uuid.UUID) (*shared.LineSnapshot, error) {
	const query = `
		UPDATE ledger_lines
		SET reversed_at = now()
		WHERE id = $1 AND reversed_at IS NULL
		RETURNING id, member_id, drink_id, kind, quantity, unit_price_cents, amount_cents, reversed_at, created_at`

	snap, err := scanLineSnapshot(dbtx.QueryRow(ctx, query, lineID))
	if err != nil {
		if pgconv.IsNoRows(err) {
			// Either the line does not exist or it was already reversed;
			// disambiguate so the handler can answer 404 vs 409.
			exists, existsErr := lineExists(ctx, dbtx, lineID)
			if existsErr != nil {
				return nil, existsErr
			}
			if exists {
				return nil, infra.WrapRepoErr("ledger line already reversed", err, infra.KindConflict)
			}
			return nil, infra.WrapRepoErr("ledger line not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to claim line reversal", err)
	}

	return snap, nil
}

func lineExists(ctx context.Context, dbtx db.DBTX, lineID uuid.UUID) (bool, error) {
	const query = `SELECT EXISTS(SELECT 1 FROM ledger_lines WHERE id = $1)`

	var exists bool
	if err := dbtx.QueryRow(ctx, query, lineID).Scan(&exists); err != nil {
		return false, infra.WrapRepoErr("failed to check ledger line existence", err)
	}
	return exists, nil
}
