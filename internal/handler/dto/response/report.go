package response

import "clubtab/internal/usecase/queries"

type SummaryRowResponse struct {
	DrinkID      string `json:"drink_id"`
	DrinkName    string `json:"drink_name"`
	PaidUnits    int64  `json:"paid_units"`
	FreeUnits    int64  `json:"free_units"`
	RevenueCents int64  `json:"revenue_cents"`
}

type SummaryReportResponse struct {
	From         int64                 `json:"from"`
	To           int64                 `json:"to"`
	Rows         []*SummaryRowResponse `json:"rows"`
	PaidUnits    int64                 `json:"paid_units"`
	FreeUnits    int64                 `json:"free_units"`
	RevenueCents int64                 `json:"revenue_cents"`
	CostCents    int64                 `json:"cost_cents"`
	ProfitCents  int64                 `json:"profit_cents"`
}

func FromSummaryReport(r *queries.SummaryReport) *SummaryReportResponse {
	rows := make([]*SummaryRowResponse, len(r.Rows))
	for i, row := range r.Rows {
		rows[i] = &SummaryRowResponse{
			DrinkID:      row.DrinkID.String(),
			DrinkName:    row.DrinkName,
			PaidUnits:    row.PaidUnits,
			FreeUnits:    row.FreeUnits,
			RevenueCents: row.RevenueCents,
		}
	}
	return &SummaryReportResponse{
		From:         r.From.Unix(),
		To:           r.To.Unix(),
		Rows:         rows,
		PaidUnits:    r.PaidUnits,
		FreeUnits:    r.FreeUnits,
		RevenueCents: r.RevenueCents,
		CostCents:    r.CostCents,
		ProfitCents:  r.ProfitCents,
	}
}

type LeaderboardEntryResponse struct {
	MemberID    string `json:"member_id"`
	DisplayName string `json:"display_name"`
	Units       int64  `json:"units"`
	SpentCents  int64  `json:"spent_cents"`
}

func FromLeaderboard(items []*queries.LeaderboardEntry) []*LeaderboardEntryResponse {
	res := make([]*LeaderboardEntryResponse, len(items))
	for i, it := range items {
		res[i] = &LeaderboardEntryResponse{
			MemberID:    it.MemberID.String(),
			DisplayName: it.DisplayName,
			Units:       it.Units,
			SpentCents:  it.SpentCents,
		}
	}
	return res
}
