package queries

import "context"

//go:generate mockgen -source=location.go -destination=../../../tests/mock/queries/location_mock.go -package=queriesmock
type LocationQueries interface {
	List(ctx context.Context) ([]*LocationView, error)
}

type LocationReadStore interface {
	List(ctx context.Context) ([]*LocationView, error)
}

type locationQueriesImpl struct {
	store LocationReadStore
}

func NewLocationQueries(store LocationReadStore) LocationQueries {
	return &locationQueriesImpl{store: store}
}

func (q *locationQueriesImpl) List(ctx context.Context) ([]*LocationView, error) {
	return q.store.List(ctx)
}
