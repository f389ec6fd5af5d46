package readstore

import (
	"context"

	"clubtab/internal/infra"
	"clubtab/internal/infra/db"
	"clubtab/internal/pkg/pgconv"
	"clubtab/internal/usecase/queries"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type PaymentReadStore struct {
	db db.DBTX
}

func NewPaymentReadStore(dbtx db.DBTX) *PaymentReadStore {
	return &PaymentReadStore{db: dbtx}
}

// List returns payments newest first. verified=nil returns every payment,
// otherwise the list is filtered to the given verification state.
func (r *PaymentReadStore) List(ctx context.Context, verified *bool, limit int32) ([]*queries.PaymentView, error) {
	builder := psql.
		Select(
			"p.id", "p.member_id", "m.display_name",
			"p.amount_cents", "p.method",
			"p.verified", "p.verified_by", "p.verified_at", "p.created_at",
		).
		From("payments p").
		Join("members m ON m.id = p.member_id").
		OrderBy("p.created_at DESC", "p.id DESC").
		Limit(uint64(limit))
	if verified != nil {
		builder = builder.Where(sq.Eq{"p.verified": *verified})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build payments query", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query payments", err)
	}
	defer rows.Close()

	var payments []*queries.PaymentView
	for rows.Next() {
		var (
			p          queries.PaymentView
			verifiedBy pgtype.UUID
			verifiedAt pgtype.Timestamptz
			createdAt  pgtype.Timestamptz
		)
		err := rows.Scan(
			&p.ID, &p.MemberID, &p.MemberName,
			&p.AmountCents, &p.Method,
			&p.Verified, &verifiedBy, &verifiedAt, &createdAt,
		)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan payment", err)
		}
		p.VerifiedBy = pgconv.UUIDPtrFromPgtype(verifiedBy)
		p.VerifiedAt = pgconv.TimePtrFromPgtype(verifiedAt)
		p.CreatedAt = pgconv.TimeFromPgtype(createdAt)
		payments = append(payments, &p)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read payments", err)
	}

	return payments, nil
}

// ListByMember returns one member's payments newest first.
func (r *PaymentReadStore) ListByMember(ctx context.Context, memberID uuid.UUID, limit int32) ([]*queries.PaymentView, error) {
	const query = `
		SELECT
			p.id, p.member_id, m.display_name,
			p.amount_cents, p.method,
			p.verified, p.verified_by, p.verified_at, p.created_at
		FROM payments p
		JOIN members m ON m.id = p.member_id
		WHERE p.member_id = $1
		ORDER BY p.created_at DESC, p.id DESC
		LIMIT $2`

	rows, err := r.db.Query(ctx, query, memberID, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query member payments", err)
	}
	defer rows.Close()

	var payments []*queries.PaymentView
	for rows.Next() {
		var (
			p          queries.PaymentView
			verifiedBy pgtype.UUID
			verifiedAt pgtype.Timestamptz
			createdAt  pgtype.Timestamptz
		)
		err := rows.Scan(
			&p.ID, &p.MemberID, &p.MemberName,
			&p.AmountCents, &p.Method,
			&p.Verified, &verifiedBy, &verifiedAt, &createdAt,
		)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan payment", err)
		}
		p.VerifiedBy = pgconv.UUIDPtrFromPgtype(verifiedBy)
		p.VerifiedAt = pgconv.TimePtrFromPgtype(verifiedAt)
		p.CreatedAt = pgconv.TimeFromPgtype(createdAt)
		payments = append(payments, &p)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read member payments", err)
	}

	return payments, nil
}
