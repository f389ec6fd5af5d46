package queries

import (
	"context"

	"clubtab/internal/infra"
	"clubtab/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrTabNotFound = errs.New("member tab not found")

const (
	// DefaultLineLimit bounds the recent-lines list on a tab view.
	DefaultLineLimit = 50
	MaxLineLimit     = 200
)

func ValidateLimit(limit int) int32 {
	if limit <= 0 {
		return DefaultLineLimit
	}
	if limit > MaxLineLimit {
		return MaxLineLimit
	}
	return int32(limit)
}

type TabReadStore interface {
	FindByMemberID(ctx context.Context, memberID uuid.UUID, limit int32) (*TabView, error)
	PoolStatus(ctx context.Context) (*PoolView, error)
}

type TabQueries interface {
	MyTab(ctx context.Context, memberID uuid.UUID, limit int) (*TabView, error)
	PoolStatus(ctx context.Context) (*PoolView, error)
}

type tabQueriesImpl struct {
	store TabReadStore
}

func NewTabQueries(store TabReadStore) TabQueries {
	return &tabQueriesImpl{store: store}
}

func (q *tabQueriesImpl) MyTab(ctx context.Context, memberID uuid.UUID, limit int) (*TabView, error) {
	tab, err := q.store.FindByMemberID(ctx, memberID, ValidateLimit(limit))
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrTabNotFound
		}
		return nil, err
	}
	return tab, nil
}

func (q *tabQueriesImpl) PoolStatus(ctx context.Context) (*PoolView, error) {
	return q.store.PoolStatus(ctx)
}
