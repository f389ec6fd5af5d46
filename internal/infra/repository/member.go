package repository

import (
	"context"

	"clubtab/internal/domain/member"
	"clubtab/internal/infra"
	"clubtab/internal/infra/db"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
)

type MemberRepository struct{}

func NewMemberRepository() *MemberRepository {
	return &MemberRepository{}
}

func (r *MemberRepository) Create(ctx context.Context, dbtx db.DBTX, m *member.Member) (uuid.UUID, error) {
	query, args, err := psql.Insert("members").
		Columns("id", "email", "display_name", "password_hash", "pin", "role", "open_balance_cents", "is_active").
		Values(m.ID(), m.Email().Value(), m.DisplayName(), m.PasswordHash(), m.PIN(), m.Role().String(), m.OpenBalanceCents(), m.IsActive()).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to build member insert", err)
	}

	var id uuid.UUID
	if err := dbtx.QueryRow(ctx, query, args...).Scan(&id); err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create member", err, pgErrKind(err))
	}

	return id, nil
}

func (r *MemberRepository) UpdatePIN(ctx context.Context, dbtx db.DBTX, memberID uuid.UUID, pin string) error {
	query, args, err := psql.Update("members").
		Set("pin", pin).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": memberID}).
		ToSql()
	if err != nil {
		return infra.WrapRepoErr("failed to build pin update", err)
	}

	tag, err := dbtx.Exec(ctx, query, args...)
	if err != nil {
		return infra.WrapRepoErr("failed to update pin", err, pgErrKind(err))
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("member not found for pin update", nil, infra.KindNotFound)
	}

	return nil
}
