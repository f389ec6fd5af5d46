package commands

import (
	"context"
	"strings"

	"clubtab/internal/domain/drink"
	"clubtab/internal/pkg/errs"
	"clubtab/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrDuplicateDrink = errs.New("drink name already exists")

type CreateDrinkRequest struct {
	Name              string
	PriceCents        int32
	CratePriceCents   int32
	LowStockThreshold int32
}

type CreateDrinkResult struct {
	DrinkID uuid.UUID
}

type UpdateDrinkRequest struct {
	Name              *string
	PriceCents        *int32
	CratePriceCents   *int32
	LowStockThreshold *int32
	IsActive          *bool
}

type DrinkCommands interface {
	CreateDrink(ctx context.Context, req CreateDrinkRequest) (*CreateDrinkResult, error)
	UpdateDrink(ctx context.Context, drinkID uuid.UUID, req UpdateDrinkRequest) error
}

type drinkUseCaseImpl struct {
	uow shared.UnitOfWork
}

func NewDrinkUseCase(uow shared.UnitOfWork) DrinkCommands {
	return &drinkUseCaseImpl{uow: uow}
}

func (uc *drinkUseCaseImpl) CreateDrink(ctx context.Context, req CreateDrinkRequest) (*CreateDrinkResult, error) {
	d, err := drink.NewDrink(req.Name, req.PriceCents, req.CratePriceCents, req.LowStockThreshold)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	var result CreateDrinkResult
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		id, derr := tx.Drinks().Create(ctx, tx.DB(), d)
		if derr != nil {
			return markDuplicate(derr, ErrDuplicateDrink)
		}
		result = CreateDrinkResult{DrinkID: id}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &result, nil
}

// UpdateDrink applies a partial update. Prices only affect future bookings;
// existing ledger lines keep the price they were booked at.
func (uc *drinkUseCaseImpl) UpdateDrink(ctx context.Context, drinkID uuid.UUID, req UpdateDrinkRequest) error {
	if req.Name != nil && strings.TrimSpace(*req.Name) == "" {
		return errs.Mark(drink.ErrEmptyName, ErrDomainValidation)
	}
	if (req.PriceCents != nil && *req.PriceCents < 0) || (req.CratePriceCents != nil && *req.CratePriceCents < 0) {
		return errs.Mark(drink.ErrNegativePrice, ErrDomainValidation)
	}

	patch := shared.DrinkPatch{
		Name:              req.Name,
		PriceCents:        req.PriceCents,
		CratePriceCents:   req.CratePriceCents,
		LowStockThreshold: req.LowStockThreshold,
		IsActive:          req.IsActive,
	}

	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Drinks().Update(ctx, tx.DB(), drinkID, patch); err != nil {
			return markNotFound(markDuplicate(err, ErrDuplicateDrink), ErrDrinkNotFound)
		}
		return nil
	})
}
