package queries

import "context"

type CatalogReadStore interface {
	Catalog(ctx context.Context, includeInactive bool) ([]*CatalogItem, error)
}

type CatalogQueries interface {
	List(ctx context.Context, includeInactive bool) ([]*CatalogItem, error)
}

type catalogQueriesImpl struct {
	store CatalogReadStore
}

func NewCatalogQueries(store CatalogReadStore) CatalogQueries {
	return &catalogQueriesImpl{store: store}
}

func (q *catalogQueriesImpl) List(ctx context.Context, includeInactive bool) ([]*CatalogItem, error) {
	return q.store.Catalog(ctx, includeInactive)
}
