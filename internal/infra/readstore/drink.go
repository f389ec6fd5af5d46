package readstore

import (
	"context"

	"clubtab/internal/infra"
	"clubtab/internal/infra/db"
	"clubtab/internal/pkg/pgconv"
	"clubtab/internal/usecase/queries"
	"clubtab/internal/usecase/shared"

	"github.com/google/uuid"
)

type DrinkReadStore struct {
	db db.DBTX
}

func NewDrinkReadStore(dbtx db.DBTX) *DrinkReadStore {
	return &DrinkReadStore{db: dbtx}
}

func (r *DrinkReadStore) FindByID(ctx context.Context, id uuid.UUID) (*shared.DrinkSnapshot, error) {
	const query = `
		SELECT id, name, price_cents, crate_price_cents, units_per_crate, low_stock_threshold, is_active
		FROM drinks
		WHERE id = $1`

	var snap shared.DrinkSnapshot
	err := r.db.QueryRow(ctx, query, id).Scan(
		&snap.ID,
		&snap.Name,
		&snap.PriceCents,
		&snap.CratePriceCents,
		&snap.UnitsPerCrate,
		&snap.LowStockThreshold,
		&snap.IsActive,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("drink not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find drink", err)
	}

	return &snap, nil
}

// StockUnits computes current stock from the append-only history:
// purchased crate units minus non-reversed consumption units.
func (r *DrinkReadStore) StockUnits(ctx context.Context, drinkID uuid.UUID) (int64, error) {
	const query = `
		SELECT
			COALESCE((
				SELECT floor(sum(p.crates * d.units_per_crate))
				FROM purchases p
				JOIN drinks d ON d.id = p.drink_id
				WHERE p.drink_id = $1
			), 0)
			-
			COALESCE((
				SELECT sum(l.quantity)
				FROM ledger_lines l
				WHERE l.drink_id = $1
				  AND l.kind IN ('consumption', 'free_consumption')
				  AND l.reversed_at IS NULL
			), 0)`

	var stock int64
	if err := r.db.QueryRow(ctx, query, drinkID).Scan(&stock); err != nil {
		return 0, infra.WrapRepoErr("failed to compute drink stock", err)
	}

	return stock, nil
}

func (r *DrinkReadStore) Catalog(ctx context.Context, includeInactive bool) ([]*queries.CatalogItem, error) {
	query := `
		SELECT
			d.id, d.name, d.price_cents, d.crate_price_cents, d.units_per_crate,
			d.low_stock_threshold, d.is_active,
			COALESCE(s.purchased, 0) - COALESCE(c.consumed, 0) AS stock_units
		FROM drinks d
		LEFT JOIN (
			SELECT p.drink_id, floor(sum(p.crates * d2.units_per_crate)) AS purchased
			FROM purchases p
			JOIN drinks d2 ON d2.id = p.drink_id
			GROUP BY p.drink_id
		) s ON s.drink_id = d.id
		LEFT JOIN (
			SELECT l.drink_id, sum(l.quantity) AS consumed
			FROM ledger_lines l
			WHERE l.kind IN ('consumption', 'free_consumption')
			  AND l.reversed_at IS NULL
			GROUP BY l.drink_id
		) c ON c.drink_id = d.id`
	if !includeInactive {
		query += `
		WHERE d.is_active`
	}
	query += `
		ORDER BY d.name`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query catalog", err)
	}
	defer rows.Close()

	var items []*queries.CatalogItem
	for rows.Next() {
		var item queries.CatalogItem
		err := rows.Scan(
			&item.ID,
			&item.Name,
			&item.PriceCents,
			&item.CratePriceCents,
			&item.UnitsPerCrate,
			&item.LowStockThreshold,
			&item.IsActive,
			&item.StockUnits,
		)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan catalog row", err)
		}
		item.LowStock = item.StockUnits <= int64(item.LowStockThreshold)
		items = append(items, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read catalog rows", err)
	}

	return items, nil
}
