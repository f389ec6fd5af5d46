package repository

import (
	"context"

	"clubtab/internal/infra"
	"clubtab/internal/infra/db"
	"clubtab/internal/pkg/pgconv"
	"clubtab/internal/usecase/shared"

	"github.com/google/uuid"
)

type PurchaseRepository struct{}

func NewPurchaseRepository() *PurchaseRepository {
	return &PurchaseRepository{}
}

func (r *PurchaseRepository) Create(ctx context.Context, dbtx db.DBTX, p shared.PurchaseRecord) (uuid.UUID, error) {
	query, args, err := psql.Insert("purchases").
		Columns("id", "drink_id", "crates", "crate_price_cents", "note").
		Values(uuid.New(), p.DrinkID, p.Crates, p.CratePriceCents, pgconv.StringPtrToPgtype(p.Note)).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to build purchase insert", err)
	}

	var id uuid.UUID
	if err := dbtx.QueryRow(ctx, query, args...).Scan(&id); err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create purchase", err, pgErrKind(err))
	}

	return id, nil
}
