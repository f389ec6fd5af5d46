package commands

import (
	"context"

	"clubtab/internal/pkg/errs"
	"clubtab/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrInvalidPurchase = errs.New("invalid purchase")

type RecordPurchaseRequest struct {
	DrinkID         uuid.UUID
	Crates          float64
	CratePriceCents int32
	Note            *string
}

type RecordPurchaseResult struct {
	PurchaseID uuid.UUID
	StockUnits int64
}

type PurchaseCommands interface {
	RecordPurchase(ctx context.Context, req RecordPurchaseRequest) (*RecordPurchaseResult, error)
}

type purchaseUseCaseImpl struct {
	uow shared.UnitOfWork
}

func NewPurchaseUseCase(uow shared.UnitOfWork) PurchaseCommands {
	return &purchaseUseCaseImpl{uow: uow}
}

// RecordPurchase books crates into stock. Positive crates with a price is a
// normal stock-in; a price of zero is a correction, including negative crate
// counts for shrinkage or recounts.
func (uc *purchaseUseCaseImpl) RecordPurchase(ctx context.Context, req RecordPurchaseRequest) (*RecordPurchaseResult, error) {
	if req.Crates == 0 {
		return nil, errs.Mark(errs.New("crates must not be zero"), ErrInvalidPurchase)
	}
	if req.CratePriceCents < 0 {
		return nil, errs.Mark(errs.New("crate price cannot be negative"), ErrInvalidPurchase)
	}
	if req.Crates < 0 && req.CratePriceCents != 0 {
		// Negative stock with a price would book phantom negative cost.
		return nil, errs.Mark(errs.New("negative crates are corrections and must be priced at zero"), ErrInvalidPurchase)
	}

	var result RecordPurchaseResult
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, derr := tx.Reads().DrinkByID(ctx, req.DrinkID); derr != nil {
			return markNotFound(derr, ErrDrinkNotFound)
		}

		id, derr := tx.Purchases().Create(ctx, tx.DB(), shared.PurchaseRecord{
			DrinkID:         req.DrinkID,
			Crates:          req.Crates,
			CratePriceCents: req.CratePriceCents,
			Note:            req.Note,
		})
		if derr != nil {
			return derr
		}

		stock, derr := tx.Reads().DrinkStockUnits(ctx, req.DrinkID)
		if derr != nil {
			return derr
		}

		result = RecordPurchaseResult{PurchaseID: id, StockUnits: stock}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &result, nil
}
