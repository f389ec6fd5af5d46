package queries

import (
	"context"
	"time"

	"clubtab/internal/pkg/errs"
)

var ErrInvalidReportRange = errs.New("report range is invalid")

type ReportReadStore interface {
	Summary(ctx context.Context, from, to time.Time) (*SummaryReport, error)
	Leaderboard(ctx context.Context, from, to time.Time, limit int32) ([]*LeaderboardEntry, error)
}

type ReportQueries interface {
	Summary(ctx context.Context, from, to time.Time) (*SummaryReport, error)
	Leaderboard(ctx context.Context, from, to time.Time, limit int) ([]*LeaderboardEntry, error)
}

type reportQueriesImpl struct {
	store ReportReadStore
}

func NewReportQueries(store ReportReadStore) ReportQueries {
	return &reportQueriesImpl{store: store}
}

func (q *reportQueriesImpl) Summary(ctx context.Context, from, to time.Time) (*SummaryReport, error) {
	if !from.Before(to) {
		return nil, ErrInvalidReportRange
	}
	return q.store.Summary(ctx, from, to)
}

func (q *reportQueriesImpl) Leaderboard(ctx context.Context, from, to time.Time, limit int) ([]*LeaderboardEntry, error) {
	if !from.Before(to) {
		return nil, ErrInvalidReportRange
	}
	return q.store.Leaderboard(ctx, from, to, ValidateLimit(limit))
}
