package repository

import (
	"context"

	"clubtab/internal/domain/drink"
	"clubtab/internal/infra"
	"clubtab/internal/infra/db"
	"clubtab/internal/usecase/shared"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
)

type DrinkRepository struct{}

func NewDrinkRepository() *DrinkRepository {
	return &DrinkRepository{}
}

func (r *DrinkRepository) Create(ctx context.Context, dbtx db.DBTX, d *drink.Drink) (uuid.UUID, error) {
	query, args, err := psql.Insert("drinks").
		Columns("id", "name", "price_cents", "crate_price_cents", "units_per_crate", "low_stock_threshold", "is_active").
		Values(d.ID(), d.Name(), d.PriceCents(), d.CratePriceCents(), d.UnitsPerCrate(), d.LowStockThreshold(), d.IsActive()).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to build drink insert", err)
	}

	var id uuid.UUID
	if err := dbtx.QueryRow(ctx, query, args...).Scan(&id); err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create drink", err, pgErrKind(err))
	}

	return id, nil
}

func (r *DrinkRepository) Update(ctx context.Context, dbtx db.DBTX, drinkID uuid.UUID, patch shared.DrinkPatch) error {
	b := psql.Update("drinks").
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": drinkID})

	if patch.Name != nil {
		b = b.Set("name", *patch.Name)
	}
	if patch.PriceCents != nil {
		b = b.Set("price_cents", *patch.PriceCents)
	}
	if patch.CratePriceCents != nil {
		b = b.Set("crate_price_cents", *patch.CratePriceCents)
	}
	if patch.LowStockThreshold != nil {
		b = b.Set("low_stock_threshold", *patch.LowStockThreshold)
	}
	if patch.IsActive != nil {
		b = b.Set("is_active", *patch.IsActive)
	}

	query, args, err := b.ToSql()
	if err != nil {
		return infra.WrapRepoErr("failed to build drink update", err)
	}

	tag, err := dbtx.Exec(ctx, query, args...)
	if err != nil {
		return infra.WrapRepoErr("failed to update drink", err, pgErrKind(err))
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("drink not found for update", nil, infra.KindNotFound)
	}

	return nil
}
