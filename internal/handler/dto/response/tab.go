package response

import "clubtab/internal/usecase/queries"

type LineResponse struct {
	ID             string  `json:"id"`
	DrinkID        *string `json:"drink_id,omitempty"`
	DrinkName      *string `json:"drink_name,omitempty"`
	Kind           string  `json:"kind"`
	Quantity       int32   `json:"quantity"`
	UnitPriceCents int32   `json:"unit_price_cents"`
	AmountCents    int64   `json:"amount_cents"`
	Note           *string `json:"note,omitempty"`
	Reversed       bool    `json:"reversed"`
	CreatedAt      int64   `json:"created_at"`
}

func FromLineView(v *queries.LineView) *LineResponse {
	resp := &LineResponse{
		ID:             v.ID.String(),
		DrinkName:      v.DrinkName,
		Kind:           v.Kind,
		Quantity:       v.Quantity,
		UnitPriceCents: v.UnitPriceCents,
		AmountCents:    v.AmountCents,
		Note:           v.Note,
		Reversed:       v.ReversedAt != nil,
		CreatedAt:      v.CreatedAt.Unix(),
	}
	if v.DrinkID != nil {
		id := v.DrinkID.String()
		resp.DrinkID = &id
	}
	return resp
}

func FromLineList(items []*queries.LineView) []*LineResponse {
	res := make([]*LineResponse, len(items))
	for i, it := range items {
		res[i] = FromLineView(it)
	}
	return res
}

type TabResponse struct {
	MemberID         string          `json:"member_id"`
	DisplayName      string          `json:"display_name"`
	OpenBalanceCents int64           `json:"open_balance_cents"`
	Lines            []*LineResponse `json:"lines"`
}

func FromTabView(v *queries.TabView) *TabResponse {
	return &TabResponse{
		MemberID:         v.MemberID.String(),
		DisplayName:      v.DisplayName,
		OpenBalanceCents: v.OpenBalanceCents,
		Lines:            FromLineList(v.Lines),
	}
}

type PoolResponse struct {
	QuantityRemaining int32 `json:"quantity_remaining"`
	UpdatedAt         int64 `json:"updated_at"`
}

func FromPoolView(v *queries.PoolView) *PoolResponse {
	return &PoolResponse{
		QuantityRemaining: v.QuantityRemaining,
		UpdatedAt:         v.UpdatedAt.Unix(),
	}
}
