package commands

import (
	"context"
	"log/slog"

	"clubtab/internal/domain/booking"
	"clubtab/internal/infra"
	"clubtab/internal/pkg/config"
	"clubtab/internal/pkg/errs"
	"clubtab/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrDrinkNotFound       = errs.New("drink not found")
	ErrDrinkInactive       = errs.New("drink is not bookable")
	ErrMemberNotFound      = errs.New("member not found")
	ErrFreePoolExhausted   = errs.New("free pool cannot cover the requested quantity")
	ErrLineNotFound        = errs.New("ledger line not found")
	ErrLineAlreadyReversed = errs.New("ledger line already reversed")
	ErrLineNotOwned        = errs.New("ledger line belongs to another member")
	ErrDomainValidation    = errs.New("domain validation error")
)

type BookDrinkRequest struct {
	DrinkID    uuid.UUID
	Quantity   int32
	PreferFree bool
}

// BookDrinkResult reports the server-decided free/paid split so the client
// can show what actually happened, not what it asked for.
type BookDrinkResult struct {
	FreeQuantity     int32
	PaidQuantity     int32
	ChargedCents     int64
	OpenBalanceCents int64
	PoolRemaining    int32
	// PoolShorted is true when the pool granted fewer free units than the
	// booking asked for and the remainder was charged.
	PoolShorted bool
}

type ProvideCrateRequest struct {
	DrinkID   uuid.UUID
	PriceMode booking.PriceMode
}

type ProvideCrateResult struct {
	ChargedCents     int64
	PoolAdded        int32
	PoolRemaining    int32
	OpenBalanceCents int64
}

type ReverseLineResult struct {
	OpenBalanceCents int64
	// PoolInconsistent is true when reversing a crate contribution found the
	// pool already below the crate size, so the draw-back was clamped.
	PoolInconsistent bool
}

type BookingCommands interface {
	BookDrink(ctx context.Context, memberID uuid.UUID, req BookDrinkRequest) (*BookDrinkResult, error)
	ProvideCrate(ctx context.Context, memberID uuid.UUID, req ProvideCrateRequest) (*ProvideCrateResult, error)
	ReverseLine(ctx context.Context, lineID, actorID uuid.UUID, actorIsAdmin bool) (*ReverseLineResult, error)
}

type bookingUseCaseImpl struct {
	uow     shared.UnitOfWork
	policy  string
	alerter StockAlerter
}

func NewBookingUseCase(uow shared.UnitOfWork, cfg config.BookingConfig, alerter StockAlerter) BookingCommands {
	return &bookingUseCaseImpl{
		uow:     uow,
		policy:  cfg.FreePoolPolicy,
		alerter: alerter,
	}
}

// BookDrink charges one member for quantity units of one drink. The free
// portion is decided inside the transaction by an atomic clamped pool
// decrement, so concurrent bookings can never hand out the same free unit
// twice. Per split the booking is written as up to two ledger lines.
func (uc *bookingUseCaseImpl) BookDrink(ctx context.Context, memberID uuid.UUID, req BookDrinkRequest) (*BookDrinkResult, error) {
	if req.Quantity <= 0 {
		return nil, errs.Mark(booking.ErrInvalidQuantity, ErrDomainValidation)
	}

	var result BookDrinkResult
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		drinkSnap, derr := tx.Reads().DrinkByID(ctx, req.DrinkID)
		if derr != nil {
			return markNotFound(derr, ErrDrinkNotFound)
		}
		if !drinkSnap.IsActive {
			return ErrDrinkInactive
		}

		want := booking.WantFree(req.Quantity, req.PreferFree)

		var granted, remaining int32
		if want > 0 {
			granted, remaining, derr = tx.Ledger().DrawFreePool(ctx, tx.DB(), want)
			if derr != nil {
				return derr
			}
		} else {
			remaining, derr = tx.Ledger().FreePoolRemaining(ctx, tx.DB())
			if derr != nil {
				return derr
			}
		}

		split, derr := booking.Settle(req.Quantity, granted)
		if derr != nil {
			return errs.Mark(derr, ErrDomainValidation)
		}
		if uc.policy == config.FreePoolStrict && split.Shorted(want) {
			// Rolling back also restores the partial pool draw.
			return ErrFreePoolExhausted
		}

		if split.FreeQuantity > 0 {
			freeLine, lerr := booking.NewFreeConsumption(memberID, req.DrinkID, split.FreeQuantity)
			if lerr != nil {
				return errs.Mark(lerr, ErrDomainValidation)
			}
			if _, lerr = tx.Lines().Create(ctx, tx.DB(), freeLine); lerr != nil {
				return lerr
			}
		}

		balance := int64(0)
		if split.PaidQuantity > 0 {
			paidLine, lerr := booking.NewConsumption(memberID, req.DrinkID, split.PaidQuantity, drinkSnap.PriceCents)
			if lerr != nil {
				return errs.Mark(lerr, ErrDomainValidation)
			}
			if _, lerr = tx.Lines().Create(ctx, tx.DB(), paidLine); lerr != nil {
				return lerr
			}
			balance, lerr = tx.Ledger().IncrementBalance(ctx, tx.DB(), memberID, paidLine.AmountCents())
			if lerr != nil {
				return markNotFound(lerr, ErrMemberNotFound)
			}
		} else {
			memberSnap, lerr := tx.Reads().MemberByID(ctx, memberID)
			if lerr != nil {
				return markNotFound(lerr, ErrMemberNotFound)
			}
			balance = memberSnap.OpenBalanceCents
		}

		result = BookDrinkResult{
			FreeQuantity:     split.FreeQuantity,
			PaidQuantity:     split.PaidQuantity,
			ChargedCents:     split.ChargeCents(drinkSnap.PriceCents),
			OpenBalanceCents: balance,
			PoolRemaining:    remaining,
			PoolShorted:      split.Shorted(want),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.checkLowStock(ctx, req.DrinkID)

	return &result, nil
}

// ProvideCrate adds one crate of a drink to the shared pool. A purchased
// crate also charges the crate price onto the member's tab; own stock
// only feeds the pool.
func (uc *bookingUseCaseImpl) ProvideCrate(ctx context.Context, memberID uuid.UUID, req ProvideCrateRequest) (*ProvideCrateResult, error) {
	var result ProvideCrateResult
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		drinkSnap, derr := tx.Reads().DrinkByID(ctx, req.DrinkID)
		if derr != nil {
			return markNotFound(derr, ErrDrinkNotFound)
		}
		if !drinkSnap.IsActive {
			return ErrDrinkInactive
		}

		units := drinkSnap.UnitsPerCrate
		line, derr := booking.NewPoolContribution(memberID, req.DrinkID, units, drinkSnap.CratePriceCents, req.PriceMode)
		if derr != nil {
			return errs.Mark(derr, ErrDomainValidation)
		}
		if _, derr = tx.Lines().Create(ctx, tx.DB(), line); derr != nil {
			return derr
		}

		remaining, derr := tx.Ledger().AddFreePool(ctx, tx.DB(), units)
		if derr != nil {
			return derr
		}

		balance := int64(0)
		if line.AmountCents() > 0 {
			balance, derr = tx.Ledger().IncrementBalance(ctx, tx.DB(), memberID, line.AmountCents())
			if derr != nil {
				return markNotFound(derr, ErrMemberNotFound)
			}
		} else {
			memberSnap, merr := tx.Reads().MemberByID(ctx, memberID)
			if merr != nil {
				return markNotFound(merr, ErrMemberNotFound)
			}
			balance = memberSnap.OpenBalanceCents
		}

		result = ProvideCrateResult{
			ChargedCents:     line.AmountCents(),
			PoolAdded:        units,
			PoolRemaining:    remaining,
			OpenBalanceCents: balance,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &result, nil
}

// ReverseLine undoes one ledger line exactly once. The claim and the undo of
// its balance and pool effects share a transaction, so a double tap on the
// undo button either conflicts or has no further effect.
func (uc *bookingUseCaseImpl) ReverseLine(ctx context.Context, lineID, actorID uuid.UUID, actorIsAdmin bool) (*ReverseLineResult, error) {
	var result ReverseLineResult
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		claimed, derr := tx.Lines().ClaimReversal(ctx, tx.DB(), lineID)
		if derr != nil {
			if infra.IsKind(derr, infra.KindConflict) {
				return errs.Mark(derr, ErrLineAlreadyReversed)
			}
			return markNotFound(derr, ErrLineNotFound)
		}
		if !actorIsAdmin && claimed.MemberID != actorID {
			// The claim rolls back with the transaction.
			return ErrLineNotOwned
		}

		balance, poolInconsistent, derr := uc.undoLineEffects(ctx, tx, claimed)
		if derr != nil {
			return derr
		}
		if poolInconsistent {
			slog.Warn("crate reversal drew back fewer units than the crate held",
				"line_id", claimed.ID, "crate_units", claimed.Quantity)
		}

		result = ReverseLineResult{
			OpenBalanceCents: balance,
			PoolInconsistent: poolInconsistent,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &result, nil
}

// undoLineEffects inverts a claimed line by kind: charges are refunded, pool
// movements drawn back or re-added. The second return is true when a crate
// reversal found the pool short of the crate's units and had to clamp.
func (uc *bookingUseCaseImpl) undoLineEffects(ctx context.Context, tx shared.Tx, line *shared.LineSnapshot) (int64, bool, error) {
	switch line.Kind {
	case booking.KindConsumption:
		balance, err := tx.Ledger().IncrementBalance(ctx, tx.DB(), line.MemberID, -line.AmountCents)
		return balance, false, err
	case booking.KindFreeConsumption:
		if _, err := tx.Ledger().AddFreePool(ctx, tx.DB(), line.Quantity); err != nil {
			return 0, false, err
		}
	case booking.KindPoolContribution:
		// Drain what the crate added; a clamped draw tolerates a pool that
		// has meanwhile been partly consumed.
		drawn, _, err := tx.Ledger().DrawFreePool(ctx, tx.DB(), line.Quantity)
		if err != nil {
			return 0, false, err
		}
		inconsistent := drawn < line.Quantity
		if line.AmountCents > 0 {
			balance, berr := tx.Ledger().IncrementBalance(ctx, tx.DB(), line.MemberID, -line.AmountCents)
			return balance, inconsistent, berr
		}
		memberSnap, merr := tx.Reads().MemberByID(ctx, line.MemberID)
		if merr != nil {
			return 0, false, markNotFound(merr, ErrMemberNotFound)
		}
		return memberSnap.OpenBalanceCents, inconsistent, nil
	case booking.KindAdjustment:
		balance, err := tx.Ledger().IncrementBalance(ctx, tx.DB(), line.MemberID, -line.AmountCents)
		return balance, false, err
	}

	memberSnap, err := tx.Reads().MemberByID(ctx, line.MemberID)
	if err != nil {
		return 0, false, markNotFound(err, ErrMemberNotFound)
	}
	return memberSnap.OpenBalanceCents, false, nil
}

// checkLowStock runs after commit; a failed check never fails the booking.
func (uc *bookingUseCaseImpl) checkLowStock(ctx context.Context, drinkID uuid.UUID) {
	reads := uc.uow.CommandReads()

	drinkSnap, err := reads.DrinkByID(ctx, drinkID)
	if err != nil {
		return
	}
	stock, err := reads.DrinkStockUnits(ctx, drinkID)
	if err != nil {
		return
	}
	if stock <= int64(drinkSnap.LowStockThreshold) {
		uc.alerter.NotifyLowStock(ctx, drinkSnap.Name, stock, drinkSnap.LowStockThreshold)
	}
}

func markNotFound(err error, sentinel error) error {
	if infra.IsKind(err, infra.KindNotFound) {
		return errs.Mark(err, sentinel)
	}
	return err
}

func markDuplicate(err error, sentinel error) error {
	if infra.IsKind(err, infra.KindDuplicateKey) {
		return errs.Mark(err, sentinel)
	}
	return err
}
