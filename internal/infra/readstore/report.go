package readstore

import (
	"context"
	"time"

	"clubtab/internal/infra"
	"clubtab/internal/infra/db"
	"clubtab/internal/usecase/queries"
)

type ReportReadStore struct {
	db db.DBTX
}

func NewReportReadStore(dbtx db.DBTX) *ReportReadStore {
	return &ReportReadStore{db: dbtx}
}

// Summary aggregates consumption per drink over [from, to). Reversed lines
// are excluded everywhere; cost is taken from purchases in the same window
// (a price of 0 marks a stock correction and contributes no cost).
func (r *ReportReadStore) Summary(ctx context.Context, from, to time.Time) (*queries.SummaryReport, error) {
	const rowsQuery = `
		SELECT
			d.id,
			d.name,
			COALESCE(SUM(l.quantity) FILTER (WHERE l.kind = 'consumption'), 0),
			COALESCE(SUM(l.quantity) FILTER (WHERE l.kind = 'free_consumption'), 0),
			COALESCE(SUM(l.amount_cents) FILTER (WHERE l.kind = 'consumption'), 0)
		FROM drinks d
		JOIN ledger_lines l ON l.drink_id = d.id
		WHERE l.kind IN ('consumption', 'free_consumption')
		  AND l.reversed_at IS NULL
		  AND l.created_at >= $1 AND l.created_at < $2
		GROUP BY d.id, d.name
		ORDER BY d.name`

	report := &queries.SummaryReport{From: from, To: to}

	rows, err := r.db.Query(ctx, rowsQuery, from, to)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query summary rows", err)
	}
	defer rows.Close()

	for rows.Next() {
		var row queries.SummaryRow
		err := rows.Scan(&row.DrinkID, &row.DrinkName, &row.PaidUnits, &row.FreeUnits, &row.RevenueCents)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan summary row", err)
		}
		report.Rows = append(report.Rows, &row)
		report.PaidUnits += row.PaidUnits
		report.FreeUnits += row.FreeUnits
		report.RevenueCents += row.RevenueCents
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read summary rows", err)
	}

	const costQuery = `
		SELECT COALESCE(SUM(ROUND(crates * crate_price_cents)), 0)::bigint
		FROM purchases
		WHERE crate_price_cents > 0
		  AND created_at >= $1 AND created_at < $2`

	if err := r.db.QueryRow(ctx, costQuery, from, to).Scan(&report.CostCents); err != nil {
		return nil, infra.WrapRepoErr("failed to query purchase cost", err)
	}
	report.ProfitCents = report.RevenueCents - report.CostCents

	return report, nil
}

// Leaderboard ranks members by consumed units (paid and free) over [from, to).
func (r *ReportReadStore) Leaderboard(ctx context.Context, from, to time.Time, limit int32) ([]*queries.LeaderboardEntry, error) {
	const query = `
		SELECT
			m.id,
			m.display_name,
			COALESCE(SUM(l.quantity), 0),
			COALESCE(SUM(l.amount_cents) FILTER (WHERE l.kind = 'consumption'), 0)
		FROM members m
		JOIN ledger_lines l ON l.member_id = m.id
		WHERE l.kind IN ('consumption', 'free_consumption')
		  AND l.reversed_at IS NULL
		  AND l.created_at >= $1 AND l.created_at < $2
		GROUP BY m.id, m.display_name
		ORDER BY SUM(l.quantity) DESC, m.display_name
		LIMIT $3`

	rows, err := r.db.Query(ctx, query, from, to, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query leaderboard", err)
	}
	defer rows.Close()

	var entries []*queries.LeaderboardEntry
	for rows.Next() {
		var entry queries.LeaderboardEntry
		err := rows.Scan(&entry.MemberID, &entry.DisplayName, &entry.Units, &entry.SpentCents)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan leaderboard entry", err)
		}
		entries = append(entries, &entry)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read leaderboard", err)
	}

	return entries, nil
}
