package request

import (
	"clubtab/internal/usecase/commands"

	"github.com/google/uuid"
)

type CreateDrinkRequest struct {
	Name              string `json:"name" binding:"required,max=100"`
	PriceCents        int32  `json:"price_cents" binding:"min=0"`
	CratePriceCents   int32  `json:"crate_price_cents" binding:"min=0"`
	LowStockThreshold int32  `json:"low_stock_threshold" binding:"min=0"`
}

func (r *CreateDrinkRequest) ToCommand() commands.CreateDrinkRequest {
	return commands.CreateDrinkRequest{
		Name:              r.Name,
		PriceCents:        r.PriceCents,
		CratePriceCents:   r.CratePriceCents,
		LowStockThreshold: r.LowStockThreshold,
	}
}

type UpdateDrinkRequest struct {
	Name              *string `json:"name" binding:"omitempty,max=100"`
	PriceCents        *int32  `json:"price_cents" binding:"omitempty,min=0"`
	CratePriceCents   *int32  `json:"crate_price_cents" binding:"omitempty,min=0"`
	LowStockThreshold *int32  `json:"low_stock_threshold" binding:"omitempty,min=0"`
	IsActive          *bool   `json:"is_active"`
}

func (r *UpdateDrinkRequest) ToCommand() commands.UpdateDrinkRequest {
	return commands.UpdateDrinkRequest{
		Name:              r.Name,
		PriceCents:        r.PriceCents,
		CratePriceCents:   r.CratePriceCents,
		LowStockThreshold: r.LowStockThreshold,
		IsActive:          r.IsActive,
	}
}

type RecordPurchaseRequest struct {
	DrinkID         uuid.UUID `json:"drink_id" binding:"required"`
	Crates          float64   `json:"crates" binding:"required"`
	CratePriceCents int32     `json:"crate_price_cents" binding:"min=0"`
	Note            *string   `json:"note" binding:"omitempty,max=500"`
}

func (r *RecordPurchaseRequest) ToCommand() commands.RecordPurchaseRequest {
	return commands.RecordPurchaseRequest{
		DrinkID:         r.DrinkID,
		Crates:          r.Crates,
		CratePriceCents: r.CratePriceCents,
		Note:            r.Note,
	}
}

type CreateMemberRequest struct {
	Email       string `json:"email" binding:"required,email"`
	DisplayName string `json:"display_name" binding:"required,max=100"`
	Password    string `json:"password" binding:"required,min=8"`
	Role        string `json:"role" binding:"required,oneof=member admin"`
}

func (r *CreateMemberRequest) ToCommand() commands.CreateMemberRequest {
	return commands.CreateMemberRequest{
		Email:       r.Email,
		DisplayName: r.DisplayName,
		Password:    r.Password,
		Role:        r.Role,
	}
}

type AdjustBalanceRequest struct {
	DeltaCents int64  `json:"delta_cents" binding:"required"`
	Note       string `json:"note" binding:"required,max=500"`
}

func (r *AdjustBalanceRequest) ToCommand() commands.AdjustBalanceRequest {
	return commands.AdjustBalanceRequest{
		DeltaCents: r.DeltaCents,
		Note:       r.Note,
	}
}
