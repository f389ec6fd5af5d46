package response

import "clubtab/internal/usecase/commands"

// MemberCreatedResponse is the only place the generated PIN ever leaves the
// server; it is shown once to the admin who hands it to the member.
type MemberCreatedResponse struct {
	MemberID string `json:"member_id"`
	PIN      string `json:"pin"`
}

func FromCreateMemberResult(r *commands.CreateMemberResult) *MemberCreatedResponse {
	return &MemberCreatedResponse{
		MemberID: r.MemberID.String(),
		PIN:      r.PIN,
	}
}

type PINResetResponse struct {
	PIN string `json:"pin"`
}

type DrinkCreatedResponse struct {
	DrinkID string `json:"drink_id"`
}

func FromCreateDrinkResult(r *commands.CreateDrinkResult) *DrinkCreatedResponse {
	return &DrinkCreatedResponse{DrinkID: r.DrinkID.String()}
}

type PurchaseResponse struct {
	PurchaseID string `json:"purchase_id"`
	StockUnits int64  `json:"stock_units"`
}

func FromRecordPurchaseResult(r *commands.RecordPurchaseResult) *PurchaseResponse {
	return &PurchaseResponse{
		PurchaseID: r.PurchaseID.String(),
		StockUnits: r.StockUnits,
	}
}

type BalanceAdjustedResponse struct {
	LineID           string `json:"line_id"`
	OpenBalanceCents int64  `json:"open_balance_cents"`
}

func FromAdjustBalanceResult(r *commands.AdjustBalanceResult) *BalanceAdjustedResponse {
	return &BalanceAdjustedResponse{
		LineID:           r.LineID.String(),
		OpenBalanceCents: r.OpenBalanceCents,
	}
}
