package queries

import (
	"context"

	"clubtab/internal/infra"
	"clubtab/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrMemberNotFound = errs.New("member not found")

type MemberReadStore interface {
	FindViewByID(ctx context.Context, id uuid.UUID) (*MemberView, error)
}

type MemberQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*MemberView, error)
}

type memberQueriesImpl struct {
	store MemberReadStore
}

func NewMemberQueries(store MemberReadStore) MemberQueries {
	return &memberQueriesImpl{store: store}
}

func (q *memberQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*MemberView, error) {
	view, err := q.store.FindViewByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrMemberNotFound
		}
		return nil, err
	}
	return view, nil
}
