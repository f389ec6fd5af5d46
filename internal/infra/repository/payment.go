package repository

import (
	"context"

	"clubtab/internal/domain/payment"
	"clubtab/internal/infra"
	"clubtab/internal/infra/db"
	"clubtab/internal/pkg/pgconv"
	"clubtab/internal/usecase/shared"

	"github.com/google/uuid"
)

type PaymentRepository struct{}

func NewPaymentRepository() *PaymentRepository {
	return &PaymentRepository{}
}

func (r *PaymentRepository) Create(ctx context.Context, dbtx db.DBTX, p *payment.Payment) (uuid.UUID, error) {
	query, args, err := psql.Insert("payments").
		Columns("id", "member_id", "amount_cents", "method", "verified").
		Values(p.ID(), p.MemberID(), p.AmountCents(), p.Method().String(), p.Verified()).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to build payment insert", err)
	}

	var id uuid.UUID
	if err := dbtx.QueryRow(ctx, query, args...).Scan(&id); err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create payment", err, pgErrKind(err))
	}

	return id, nil
}

// ClaimVerification is an atomic claim: the WHERE clause guarantees the
// balance credit happens at most once no matter how often verify is clicked.
func (r *PaymentRepository) ClaimVerification(ctx context.Context, dbtx db.DBTX, paymentID, adminID uuid.UUID) (*shared.PaymentSnapshot, error) {
	const query = `
		UPDATE payments
		SET verified = true, verified_by = $2, verified_at = now()
		WHERE id = $1 AND NOT verified
		RETURNING id, member_id, amount_cents, method, verified`

	var snap shared.PaymentSnapshot
	err := dbtx.QueryRow(ctx, query, paymentID, adminID).Scan(
		&snap.ID,
		&snap.MemberID,
		&snap.AmountCents,
		&snap.Method,
		&snap.Verified,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			exists, existsErr := paymentExists(ctx, dbtx, paymentID)
			if existsErr != nil {
				return nil, existsErr
			}
			if exists {
				return nil, infra.WrapRepoErr("payment already verified", err, infra.KindConflict)
			}
			return nil, infra.WrapRepoErr("payment not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to claim payment verification", err)
	}

	return &snap, nil
}

func paymentExists(ctx context.Context, dbtx db.DBTX, paymentID uuid.UUID) (bool, error) {
	const query = `SELECT EXISTS(SELECT 1 FROM payments WHERE id = $1)`

	var exists bool
	if err := dbtx.QueryRow(ctx, query, paymentID).Scan(&exists); err != nil {
		return false, infra.WrapRepoErr("failed to check payment existence", err)
	}
	return exists, nil
}
