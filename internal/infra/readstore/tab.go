package readstore

import (
	"context"

	"clubtab/internal/infra"
	"clubtab/internal/infra/db"
	"clubtab/internal/pkg/pgconv"
	"clubtab/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

type TabReadStore struct {
	db db.DBTX
}

func NewTabReadStore(dbtx db.DBTX) *TabReadStore {
	return &TabReadStore{db: dbtx}
}

func (r *TabReadStore) FindByMemberID(ctx context.Context, memberID uuid.UUID, limit int32) (*queries.TabView, error) {
	const headQuery = `SELECT id, display_name, open_balance_cents FROM members WHERE id = $1`

	var tab queries.TabView
	err := r.db.QueryRow(ctx, headQuery, memberID).Scan(&tab.MemberID, &tab.DisplayName, &tab.OpenBalanceCents)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("member not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find member tab", err)
	}

	lines, err := r.findLines(ctx, memberID, limit)
	if err != nil {
		return nil, err
	}
	tab.Lines = lines

	return &tab, nil
}

func (r *TabReadStore) findLines(ctx context.Context, memberID uuid.UUID, limit int32) ([]*queries.LineView, error) {
	const query = `
		SELECT
			l.id, l.member_id, m.display_name, l.drink_id, d.name,
			l.kind, l.quantity, l.unit_price_cents, l.amount_cents,
			l.note, l.reversed_at, l.created_at
		FROM ledger_lines l
		JOIN members m ON m.id = l.member_id
		LEFT JOIN drinks d ON d.id = l.drink_id
		WHERE l.member_id = $1
		ORDER BY l.created_at DESC, l.id DESC
		LIMIT $2`

	rows, err := r.db.Query(ctx, query, memberID, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query ledger lines", err)
	}
	defer rows.Close()

	var lines []*queries.LineView
	for rows.Next() {
		line, err := scanLineView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan ledger line", err)
		}
		lines = append(lines, line)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read ledger lines", err)
	}

	return lines, nil
}

func scanLineView(row pgx.Row) (*queries.LineView, error) {
	var (
		line       queries.LineView
		drinkID    pgtype.UUID
		drinkName  pgtype.Text
		note       pgtype.Text
		reversedAt pgtype.Timestamptz
		createdAt  pgtype.Timestamptz
	)
	err := row.Scan(
		&line.ID,
		&line.MemberID,
		&line.MemberName,
		&drinkID,
		&drinkName,
		&line.Kind,
		&line.Quantity,
		&line.UnitPriceCents,
		&line.AmountCents,
		&note,
		&reversedAt,
		&createdAt,
	)
	if err != nil {
		return nil, err
	}

	line.DrinkID = pgconv.UUIDPtrFromPgtype(drinkID)
	line.DrinkName = pgconv.StringPtrFromPgtype(drinkName)
	line.Note = pgconv.StringPtrFromPgtype(note)
	line.ReversedAt = pgconv.TimePtrFromPgtype(reversedAt)
	line.CreatedAt = pgconv.TimeFromPgtype(createdAt)
	return &line, nil
}

func (r *TabReadStore) PoolStatus(ctx context.Context) (*queries.PoolView, error) {
	const query = `SELECT quantity_remaining, updated_at FROM free_pool WHERE id = 1`

	var (
		pool      queries.PoolView
		updatedAt pgtype.Timestamptz
	)
	if err := r.db.QueryRow(ctx, query).Scan(&pool.QuantityRemaining, &updatedAt); err != nil {
		return nil, infra.WrapRepoErr("failed to read free pool status", err)
	}
	pool.UpdatedAt = pgconv.TimeFromPgtype(updatedAt)

	return &pool, nil
}
