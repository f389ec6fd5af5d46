package repository

import (
	"clubtab/internal/domain/booking"
	"clubtab/internal/pkg/pgconv"
	"clubtab/internal/usecase/shared"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

func scanLineSnapshot(row pgx.Row) (*shared.LineSnapshot, error) {
	var (
		snap       shared.LineSnapshot
		drinkID    pgtype.UUID
		kind       string
		reversedAt pgtype.Timestamptz
		createdAt  pgtype.Timestamptz
	)
	err := row.Scan(
		&snap.ID,
		&snap.MemberID,
		&drinkID,
		&kind,
		&snap.Quantity,
		&snap.UnitPriceCents,
		&snap.AmountCents,
		&reversedAt,
		&createdAt,
	)
	if err != nil {
		return nil, err
	}

	snap.DrinkID = pgconv.UUIDPtrFromPgtype(drinkID)
	snap.Kind = booking.Kind(kind)
	snap.ReversedAt = pgconv.TimePtrFromPgtype(reversedAt)
	snap.CreatedAt = pgconv.TimeFromPgtype(createdAt)
	return &snap, nil
}
