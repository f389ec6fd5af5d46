//go:build unit

package commands_test

import (
	"context"
	"testing"

	"clubtab/internal/domain/booking"
	"clubtab/internal/pkg/config"
	"clubtab/internal/usecase/commands"
	"clubtab/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBookingFixture(t *testing.T, policy string) (*fakeState, *fakeUow, *fakeAlerter, commands.BookingCommands, uuid.UUID, uuid.UUID) {
	t.Helper()

	state := newFakeState()
	drinkSnap := builder.NewDrinkBuilder().BuildSnapshot()
	memberSnap := builder.NewMemberBuilder().BuildSnapshot()
	state.addDrink(drinkSnap)
	state.addMember(memberSnap)
	state.stockUnits[drinkSnap.ID] = 100 // plenty, no low-stock alerts

	uow := newFakeUow(state)
	alerter := &fakeAlerter{}
	uc := commands.NewBookingUseCase(uow, config.BookingConfig{FreePoolPolicy: policy}, alerter)
	return state, uow, alerter, uc, memberSnap.ID, drinkSnap.ID
}

func TestBookDrink(t *testing.T) {
	ctx := context.Background()

	t.Run("有料のみの予約", func(t *testing.T) {
		_, uow, _, uc, memberID, drinkID := newBookingFixture(t, config.FreePoolBestEffort)

		result, err := uc.BookDrink(ctx, memberID, commands.BookDrinkRequest{
			DrinkID:  drinkID,
			Quantity: 3,
		})
		require.NoError(t, err)

		assert.Equal(t, int32(0), result.FreeQuantity)
		assert.Equal(t, int32(3), result.PaidQuantity)
		assert.Equal(t, int64(450), result.ChargedCents)
		assert.Equal(t, int64(450), result.OpenBalanceCents)

		paid := uow.state.linesOfKind(booking.KindConsumption)
		require.Len(t, paid, 1)
		assert.Equal(t, int32(3), paid[0].Quantity)
		assert.Empty(t, uow.state.linesOfKind(booking.KindFreeConsumption))
	})

	t.Run("プール十分なら全量無料", func(t *testing.T) {
		_, uow, _, uc, memberID, drinkID := newBookingFixture(t, config.FreePoolBestEffort)
		uow.state.pool = 10

		result, err := uc.BookDrink(ctx, memberID, commands.BookDrinkRequest{
			DrinkID:    drinkID,
			Quantity:   4,
			PreferFree: true,
		})
		require.NoError(t, err)

		assert.Equal(t, int32(4), result.FreeQuantity)
		assert.Equal(t, int32(0), result.PaidQuantity)
		assert.Equal(t, int64(0), result.ChargedCents)
		assert.Equal(t, int64(0), result.OpenBalanceCents)
		assert.Equal(t, int32(6), result.PoolRemaining)
		assert.False(t, result.PoolShorted)
		assert.Equal(t, int32(6), uow.state.pool)

		free := uow.state.linesOfKind(booking.KindFreeConsumption)
		require.Len(t, free, 1)
		assert.Equal(t, int32(4), free[0].Quantity)
		assert.Empty(t, uow.state.linesOfKind(booking.KindConsumption))
	})

	t.Run("部分付与は残りを有料で二行に分割", func(t *testing.T) {
		_, uow, _, uc, memberID, drinkID := newBookingFixture(t, config.FreePoolBestEffort)
		uow.state.pool = 2

		result, err := uc.BookDrink(ctx, memberID, commands.BookDrinkRequest{
			DrinkID:    drinkID,
			Quantity:   5,
			PreferFree: true,
		})
		require.NoError(t, err)

		assert.Equal(t, int32(2), result.FreeQuantity)
		assert.Equal(t, int32(3), result.PaidQuantity)
		assert.Equal(t, int64(450), result.ChargedCents)
		assert.Equal(t, int64(450), result.OpenBalanceCents)
		assert.True(t, result.PoolShorted)
		assert.Equal(t, int32(0), uow.state.pool)

		free := uow.state.linesOfKind(booking.KindFreeConsumption)
		paid := uow.state.linesOfKind(booking.KindConsumption)
		require.Len(t, free, 1)
		require.Len(t, paid, 1)
		assert.Equal(t, int32(2), free[0].Quantity)
		assert.Equal(t, int64(0), free[0].AmountCents)
		assert.Equal(t, int32(3), paid[0].Quantity)
		assert.Equal(t, int64(450), paid[0].AmountCents)
	})

	t.Run("strictポリシーは部分付与で中断しプールを戻す", func(t *testing.T) {
		_, uow, _, uc, memberID, drinkID := newBookingFixture(t, config.FreePoolStrict)
		uow.state.pool = 2

		_, err := uc.BookDrink(ctx, memberID, commands.BookDrinkRequest{
			DrinkID:    drinkID,
			Quantity:   5,
			PreferFree: true,
		})
		require.ErrorIs(t, err, commands.ErrFreePoolExhausted)

		// Rollback must restore the partial draw and write no lines.
		assert.Equal(t, int32(2), uow.state.pool)
		assert.Empty(t, uow.state.lineOrder)
	})

	t.Run("strictポリシーでも全量付与なら成功", func(t *testing.T) {
		_, uow, _, uc, memberID, drinkID := newBookingFixture(t, config.FreePoolStrict)
		uow.state.pool = 5

		result, err := uc.BookDrink(ctx, memberID, commands.BookDrinkRequest{
			DrinkID:    drinkID,
			Quantity:   5,
			PreferFree: true,
		})
		require.NoError(t, err)
		assert.Equal(t, int32(5), result.FreeQuantity)
		assert.False(t, result.PoolShorted)
		assert.Equal(t, int32(0), uow.state.pool)
	})

	t.Run("存在しない飲料NG", func(t *testing.T) {
		_, _, _, uc, memberID, _ := newBookingFixture(t, config.FreePoolBestEffort)

		_, err := uc.BookDrink(ctx, memberID, commands.BookDrinkRequest{
			DrinkID:  uuid.New(),
			Quantity: 1,
		})
		require.ErrorIs(t, err, commands.ErrDrinkNotFound)
	})

	t.Run("販売停止中の飲料NG", func(t *testing.T) {
		state, _, _, uc, memberID, _ := newBookingFixture(t, config.FreePoolBestEffort)
		inactive := builder.NewDrinkBuilder().WithName("Altbier").AsInactive().BuildSnapshot()
		state.addDrink(inactive)

		_, err := uc.BookDrink(ctx, memberID, commands.BookDrinkRequest{
			DrinkID:  inactive.ID,
			Quantity: 1,
		})
		require.ErrorIs(t, err, commands.ErrDrinkInactive)
	})

	t.Run("数量ゼロNG", func(t *testing.T) {
		_, _, _, uc, memberID, drinkID := newBookingFixture(t, config.FreePoolBestEffort)

		_, err := uc.BookDrink(ctx, memberID, commands.BookDrinkRequest{
			DrinkID:  drinkID,
			Quantity: 0,
		})
		require.ErrorIs(t, err, commands.ErrDomainValidation)
	})

	t.Run("在庫が閾値以下なら通知", func(t *testing.T) {
		_, uow, alerter, uc, memberID, drinkID := newBookingFixture(t, config.FreePoolBestEffort)
		uow.state.stockUnits[drinkID] = 8 // threshold is 10

		_, err := uc.BookDrink(ctx, memberID, commands.BookDrinkRequest{
			DrinkID:  drinkID,
			Quantity: 1,
		})
		require.NoError(t, err)

		require.Len(t, alerter.calls, 1)
		assert.Equal(t, "Helles", alerter.calls[0].drinkName)
		assert.Equal(t, int64(8), alerter.calls[0].stockUnits)
		assert.Equal(t, int32(10), alerter.calls[0].threshold)
	})

	t.Run("在庫十分なら通知なし", func(t *testing.T) {
		_, _, alerter, uc, memberID, drinkID := newBookingFixture(t, config.FreePoolBestEffort)

		_, err := uc.BookDrink(ctx, memberID, commands.BookDrinkRequest{
			DrinkID:  drinkID,
			Quantity: 1,
		})
		require.NoError(t, err)
		assert.Empty(t, alerter.calls)
	})
}

func TestProvideCrate(t *testing.T) {
	ctx := context.Background()

	t.Run("購入クレートはプール加算と残高請求", func(t *testing.T) {
		_, uow, _, uc, memberID, drinkID := newBookingFixture(t, config.FreePoolBestEffort)

		result, err := uc.ProvideCrate(ctx, memberID, commands.ProvideCrateRequest{
			DrinkID:   drinkID,
			PriceMode: booking.PriceModePurchased,
		})
		require.NoError(t, err)

		assert.Equal(t, int64(2400), result.ChargedCents)
		assert.Equal(t, int32(20), result.PoolAdded)
		assert.Equal(t, int32(20), result.PoolRemaining)
		assert.Equal(t, int64(2400), result.OpenBalanceCents)
		assert.Equal(t, int32(20), uow.state.pool)

		contribs := uow.state.linesOfKind(booking.KindPoolContribution)
		require.Len(t, contribs, 1)
		assert.Equal(t, int64(2400), contribs[0].AmountCents)
	})

	t.Run("持込クレートは残高に影響しない", func(t *testing.T) {
		_, uow, _, uc, memberID, drinkID := newBookingFixture(t, config.FreePoolBestEffort)

		result, err := uc.ProvideCrate(ctx, memberID, commands.ProvideCrateRequest{
			DrinkID:   drinkID,
			PriceMode: booking.PriceModeOwn,
		})
		require.NoError(t, err)

		assert.Equal(t, int64(0), result.ChargedCents)
		assert.Equal(t, int32(20), result.PoolRemaining)
		assert.Equal(t, int64(0), result.OpenBalanceCents)
		assert.Equal(t, int64(0), uow.state.members[memberID].OpenBalanceCents)
	})

	t.Run("存在しない飲料NG", func(t *testing.T) {
		_, _, _, uc, memberID, _ := newBookingFixture(t, config.FreePoolBestEffort)

		_, err := uc.ProvideCrate(ctx, memberID, commands.ProvideCrateRequest{
			DrinkID:   uuid.New(),
			PriceMode: booking.PriceModeOwn,
		})
		require.ErrorIs(t, err, commands.ErrDrinkNotFound)
	})
}

func TestReverseLine(t *testing.T) {
	ctx := context.Background()

	t.Run("有料消費の取消は返金", func(t *testing.T) {
		_, uow, _, uc, memberID, drinkID := newBookingFixture(t, config.FreePoolBestEffort)
		line := builder.NewLineBuilder().
			WithMemberID(memberID).WithDrinkID(drinkID).
			WithKind(booking.KindConsumption).WithQuantity(2).WithAmountCents(300).
			BuildSnapshot()
		uow.state.addLine(line)
		uow.state.members[memberID].OpenBalanceCents = 300

		result, err := uc.ReverseLine(ctx, line.ID, memberID, false)
		require.NoError(t, err)

		assert.Equal(t, int64(0), result.OpenBalanceCents)
		assert.NotNil(t, uow.state.lines[line.ID].ReversedAt)
	})

	t.Run("二重取消は競合", func(t *testing.T) {
		_, uow, _, uc, memberID, drinkID := newBookingFixture(t, config.FreePoolBestEffort)
		line := builder.NewLineBuilder().
			WithMemberID(memberID).WithDrinkID(drinkID).
			WithKind(booking.KindConsumption).WithAmountCents(300).
			BuildSnapshot()
		uow.state.addLine(line)

		_, err := uc.ReverseLine(ctx, line.ID, memberID, false)
		require.NoError(t, err)

		_, err = uc.ReverseLine(ctx, line.ID, memberID, false)
		require.ErrorIs(t, err, commands.ErrLineAlreadyReversed)
	})

	t.Run("存在しない行NG", func(t *testing.T) {
		_, _, _, uc, memberID, _ := newBookingFixture(t, config.FreePoolBestEffort)

		_, err := uc.ReverseLine(ctx, uuid.New(), memberID, false)
		require.ErrorIs(t, err, commands.ErrLineNotFound)
	})

	t.Run("他人の行は本人でも管理者でもなければNG", func(t *testing.T) {
		state, uow, _, uc, memberID, drinkID := newBookingFixture(t, config.FreePoolBestEffort)
		other := builder.NewMemberBuilder().WithEmail("other@example.org").BuildSnapshot()
		state.addMember(other)

		line := builder.NewLineBuilder().
			WithMemberID(memberID).WithDrinkID(drinkID).
			WithKind(booking.KindConsumption).WithAmountCents(300).
			BuildSnapshot()
		uow.state.addLine(line)

		_, err := uc.ReverseLine(ctx, line.ID, other.ID, false)
		require.ErrorIs(t, err, commands.ErrLineNotOwned)

		// The rejected claim must roll back.
		assert.Nil(t, uow.state.lines[line.ID].ReversedAt)
	})

	t.Run("管理者は他人の行も取消可能", func(t *testing.T) {
		state, uow, _, uc, memberID, drinkID := newBookingFixture(t, config.FreePoolBestEffort)
		admin := builder.NewMemberBuilder().WithEmail("admin@example.org").AsAdmin().BuildSnapshot()
		state.addMember(admin)

		line := builder.NewLineBuilder().
			WithMemberID(memberID).WithDrinkID(drinkID).
			WithKind(booking.KindConsumption).WithAmountCents(300).
			BuildSnapshot()
		uow.state.addLine(line)
		uow.state.members[memberID].OpenBalanceCents = 300

		result, err := uc.ReverseLine(ctx, line.ID, admin.ID, true)
		require.NoError(t, err)
		assert.Equal(t, int64(0), result.OpenBalanceCents)
	})

	t.Run("無料消費の取消はプールへ返却", func(t *testing.T) {
		_, uow, _, uc, memberID, drinkID := newBookingFixture(t, config.FreePoolBestEffort)
		line := builder.NewLineBuilder().
			WithMemberID(memberID).WithDrinkID(drinkID).
			WithKind(booking.KindFreeConsumption).WithQuantity(3).WithAmountCents(0).
			BuildSnapshot()
		uow.state.addLine(line)
		uow.state.pool = 1

		_, err := uc.ReverseLine(ctx, line.ID, memberID, false)
		require.NoError(t, err)
		assert.Equal(t, int32(4), uow.state.pool)
	})

	t.Run("クレート提供の取消はプールから回収し返金", func(t *testing.T) {
		_, uow, _, uc, memberID, drinkID := newBookingFixture(t, config.FreePoolBestEffort)
		line := builder.NewLineBuilder().
			WithMemberID(memberID).WithDrinkID(drinkID).
			WithKind(booking.KindPoolContribution).WithQuantity(20).WithAmountCents(2400).
			BuildSnapshot()
		uow.state.addLine(line)
		uow.state.pool = 20
		uow.state.members[memberID].OpenBalanceCents = 2400

		result, err := uc.ReverseLine(ctx, line.ID, memberID, false)
		require.NoError(t, err)

		assert.Equal(t, int32(0), uow.state.pool)
		assert.Equal(t, int64(0), result.OpenBalanceCents)
		assert.False(t, result.PoolInconsistent)
	})

	t.Run("一部消費済みプールはクランプして回収", func(t *testing.T) {
		_, uow, _, uc, memberID, drinkID := newBookingFixture(t, config.FreePoolBestEffort)
		line := builder.NewLineBuilder().
			WithMemberID(memberID).WithDrinkID(drinkID).
			WithKind(booking.KindPoolContribution).WithQuantity(20).WithAmountCents(0).
			BuildSnapshot()
		uow.state.addLine(line)
		uow.state.pool = 5 // most of the crate already drunk

		result, err := uc.ReverseLine(ctx, line.ID, memberID, false)
		require.NoError(t, err)
		assert.Equal(t, int32(0), uow.state.pool)
		assert.True(t, result.PoolInconsistent)
	})

	t.Run("調整の取消は符号反転", func(t *testing.T) {
		_, uow, _, uc, memberID, _ := newBookingFixture(t, config.FreePoolBestEffort)
		line := builder.NewLineBuilder().
			WithMemberID(memberID).
			WithKind(booking.KindAdjustment).WithQuantity(0).WithAmountCents(-500).
			BuildSnapshot()
		uow.state.addLine(line)
		uow.state.members[memberID].OpenBalanceCents = -500

		result, err := uc.ReverseLine(ctx, line.ID, memberID, true)
		require.NoError(t, err)
		assert.Equal(t, int64(0), result.OpenBalanceCents)
	})
}
