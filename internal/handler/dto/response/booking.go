package response

import "clubtab/internal/usecase/commands"

type BookingResponse struct {
	FreeQuantity     int32 `json:"free_quantity"`
	PaidQuantity     int32 `json:"paid_quantity"`
	ChargedCents     int64 `json:"charged_cents"`
	OpenBalanceCents int64 `json:"open_balance_cents"`
	PoolRemaining    int32 `json:"pool_remaining"`
	PoolShorted      bool  `json:"pool_shorted"`
}

func FromBookDrinkResult(r *commands.BookDrinkResult) *BookingResponse {
	return &BookingResponse{
		FreeQuantity:     r.FreeQuantity,
		PaidQuantity:     r.PaidQuantity,
		ChargedCents:     r.ChargedCents,
		OpenBalanceCents: r.OpenBalanceCents,
		PoolRemaining:    r.PoolRemaining,
		PoolShorted:      r.PoolShorted,
	}
}

type CrateResponse struct {
	ChargedCents     int64 `json:"charged_cents"`
	PoolAdded        int32 `json:"pool_added"`
	PoolRemaining    int32 `json:"pool_remaining"`
	OpenBalanceCents int64 `json:"open_balance_cents"`
}

func FromProvideCrateResult(r *commands.ProvideCrateResult) *CrateResponse {
	return &CrateResponse{
		ChargedCents:     r.ChargedCents,
		PoolAdded:        r.PoolAdded,
		PoolRemaining:    r.PoolRemaining,
		OpenBalanceCents: r.OpenBalanceCents,
	}
}

type ReversalResponse struct {
	OpenBalanceCents int64 `json:"open_balance_cents"`
	PoolInconsistent bool  `json:"pool_inconsistent"`
}

func FromReverseLineResult(r *commands.ReverseLineResult) *ReversalResponse {
	return &ReversalResponse{
		OpenBalanceCents: r.OpenBalanceCents,
		PoolInconsistent: r.PoolInconsistent,
	}
}
