package request

import (
	"clubtab/internal/domain/booking"
	"clubtab/internal/usecase/commands"

	"github.com/google/uuid"
)

type BookDrinkRequest struct {
	DrinkID    uuid.UUID `json:"drink_id" binding:"required"`
	Quantity   int32     `json:"quantity" binding:"required,min=1,max=100"`
	PreferFree bool      `json:"prefer_free"`
}

func (r *BookDrinkRequest) ToCommand() commands.BookDrinkRequest {
	return commands.BookDrinkRequest{
		DrinkID:    r.DrinkID,
		Quantity:   r.Quantity,
		PreferFree: r.PreferFree,
	}
}

type ProvideCrateRequest struct {
	DrinkID   uuid.UUID `json:"drink_id" binding:"required"`
	PriceMode string    `json:"price_mode" binding:"required,oneof=purchased own"`
}

func (r *ProvideCrateRequest) ToCommand() commands.ProvideCrateRequest {
	return commands.ProvideCrateRequest{
		DrinkID:   r.DrinkID,
		PriceMode: booking.PriceMode(r.PriceMode),
	}
}
