package readstore

import (
	"context"

	"clubtab/internal/domain/member"
	"clubtab/internal/infra"
	"clubtab/internal/infra/db"
	"clubtab/internal/pkg/pgconv"
	"clubtab/internal/usecase/queries"
	"clubtab/internal/usecase/shared"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

type MemberReadStore struct {
	db db.DBTX
}

func NewMemberReadStore(dbtx db.DBTX) *MemberReadStore {
	return &MemberReadStore{db: dbtx}
}

const memberSnapshotColumns = "id, email, display_name, password_hash, role, open_balance_cents, is_active"

func (r *MemberReadStore) FindByID(ctx context.Context, id uuid.UUID) (*shared.MemberSnapshot, error) {
	return r.findBy(ctx, sq.Eq{"id": id})
}

func (r *MemberReadStore) FindByEmail(ctx context.Context, email string) (*shared.MemberSnapshot, error) {
	return r.findBy(ctx, sq.Eq{"email": email})
}

func (r *MemberReadStore) FindByPIN(ctx context.Context, pin string) (*shared.MemberSnapshot, error) {
	return r.findBy(ctx, sq.Eq{"pin": pin})
}

func (r *MemberReadStore) findBy(ctx context.Context, pred sq.Eq) (*shared.MemberSnapshot, error) {
	query, args, err := psql.Select(memberSnapshotColumns).
		From("members").
		Where(pred).
		ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build member query", err)
	}

	snap, err := scanMemberSnapshot(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("member not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find member", err)
	}

	return snap, nil
}

// FindViewByID backs the "who am I" endpoint; unlike the snapshot it never
// exposes the password hash.
func (r *MemberReadStore) FindViewByID(ctx context.Context, id uuid.UUID) (*queries.MemberView, error) {
	const query = `
		SELECT id, email, display_name, role, open_balance_cents, is_active, created_at
		FROM members WHERE id = $1`

	var (
		view      queries.MemberView
		createdAt pgtype.Timestamptz
	)
	err := r.db.QueryRow(ctx, query, id).Scan(
		&view.ID,
		&view.Email,
		&view.DisplayName,
		&view.Role,
		&view.OpenBalanceCents,
		&view.IsActive,
		&createdAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("member not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find member view", err)
	}
	view.CreatedAt = pgconv.TimeFromPgtype(createdAt)

	return &view, nil
}

func scanMemberSnapshot(row pgx.Row) (*shared.MemberSnapshot, error) {
	var (
		snap shared.MemberSnapshot
		role string
	)
	err := row.Scan(
		&snap.ID,
		&snap.Email,
		&snap.DisplayName,
		&snap.PasswordHash,
		&role,
		&snap.OpenBalanceCents,
		&snap.IsActive,
	)
	if err != nil {
		return nil, err
	}

	snap.Role = member.Role(role)
	return &snap, nil
}
