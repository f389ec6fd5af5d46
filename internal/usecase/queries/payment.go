package queries

import (
	"context"

	"github.com/google/uuid"
)

type PaymentReadStore interface {
	List(ctx context.Context, verified *bool, limit int32) ([]*PaymentView, error)
	ListByMember(ctx context.Context, memberID uuid.UUID, limit int32) ([]*PaymentView, error)
}

type PaymentQueries interface {
	List(ctx context.Context, verified *bool, limit int) ([]*PaymentView, error)
	ListByMember(ctx context.Context, memberID uuid.UUID, limit int) ([]*PaymentView, error)
}

type paymentQueriesImpl struct {
	store PaymentReadStore
}

func NewPaymentQueries(store PaymentReadStore) PaymentQueries {
	return &paymentQueriesImpl{store: store}
}

func (q *paymentQueriesImpl) List(ctx context.Context, verified *bool, limit int) ([]*PaymentView, error) {
	return q.store.List(ctx, verified, ValidateLimit(limit))
}

func (q *paymentQueriesImpl) ListByMember(ctx context.Context, memberID uuid.UUID, limit int) ([]*PaymentView, error) {
	return q.store.ListByMember(ctx, memberID, ValidateLimit(limit))
}
