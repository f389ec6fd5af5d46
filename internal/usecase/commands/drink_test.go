//go:build unit

package commands_test

import (
	"context"
	"testing"

	"clubtab/internal/usecase/commands"
	"clubtab/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateDrink(t *testing.T) {
	ctx := context.Background()

	t.Run("新しい飲料を登録", func(t *testing.T) {
		state := newFakeState()
		uow := newFakeUow(state)
		uc := commands.NewDrinkUseCase(uow)

		result, err := uc.CreateDrink(ctx, commands.CreateDrinkRequest{
			Name:              "Radler",
			PriceCents:        120,
			CratePriceCents:   2000,
			LowStockThreshold: 10,
		})
		require.NoError(t, err)

		created := uow.state.drinks[result.DrinkID]
		require.NotNil(t, created)
		assert.Equal(t, "Radler", created.Name)
		assert.Equal(t, int32(20), created.UnitsPerCrate)
		assert.True(t, created.IsActive)
	})

	t.Run("名前重複NG", func(t *testing.T) {
		state := newFakeState()
		state.addDrink(builder.NewDrinkBuilder().BuildSnapshot())
		uc := commands.NewDrinkUseCase(newFakeUow(state))

		_, err := uc.CreateDrink(ctx, commands.CreateDrinkRequest{
			Name:            "Helles",
			PriceCents:      150,
			CratePriceCents: 2400,
		})
		require.ErrorIs(t, err, commands.ErrDuplicateDrink)
	})

	t.Run("負の価格NG", func(t *testing.T) {
		uc := commands.NewDrinkUseCase(newFakeUow(newFakeState()))

		_, err := uc.CreateDrink(ctx, commands.CreateDrinkRequest{
			Name:       "Broken",
			PriceCents: -1,
		})
		require.ErrorIs(t, err, commands.ErrDomainValidation)
	})
}

func TestUpdateDrink(t *testing.T) {
	ctx := context.Background()

	setup := func(t *testing.T) (*fakeUow, commands.DrinkCommands, uuid.UUID) {
		t.Helper()
		state := newFakeState()
		drinkSnap := builder.NewDrinkBuilder().BuildSnapshot()
		state.addDrink(drinkSnap)
		uow := newFakeUow(state)
		return uow, commands.NewDrinkUseCase(uow), drinkSnap.ID
	}

	t.Run("部分更新は指定フィールドだけ変える", func(t *testing.T) {
		uow, uc, drinkID := setup(t)
		newPrice := int32(180)

		err := uc.UpdateDrink(ctx, drinkID, commands.UpdateDrinkRequest{PriceCents: &newPrice})
		require.NoError(t, err)

		updated := uow.state.drinks[drinkID]
		assert.Equal(t, int32(180), updated.PriceCents)
		assert.Equal(t, "Helles", updated.Name)
		assert.Equal(t, int32(2400), updated.CratePriceCents)
	})

	t.Run("販売停止にできる", func(t *testing.T) {
		uow, uc, drinkID := setup(t)
		inactive := false

		err := uc.UpdateDrink(ctx, drinkID, commands.UpdateDrinkRequest{IsActive: &inactive})
		require.NoError(t, err)
		assert.False(t, uow.state.drinks[drinkID].IsActive)
	})

	t.Run("空の名前NG", func(t *testing.T) {
		_, uc, drinkID := setup(t)
		empty := "   "

		err := uc.UpdateDrink(ctx, drinkID, commands.UpdateDrinkRequest{Name: &empty})
		require.ErrorIs(t, err, commands.ErrDomainValidation)
	})

	t.Run("負の価格NG", func(t *testing.T) {
		_, uc, drinkID := setup(t)
		negative := int32(-50)

		err := uc.UpdateDrink(ctx, drinkID, commands.UpdateDrinkRequest{CratePriceCents: &negative})
		require.ErrorIs(t, err, commands.ErrDomainValidation)
	})

	t.Run("他の飲料と同名に変更NG", func(t *testing.T) {
		uow, uc, drinkID := setup(t)
		uow.state.addDrink(builder.NewDrinkBuilder().WithName("Weizen").BuildSnapshot())
		taken := "Weizen"

		err := uc.UpdateDrink(ctx, drinkID, commands.UpdateDrinkRequest{Name: &taken})
		require.ErrorIs(t, err, commands.ErrDuplicateDrink)
	})

	t.Run("存在しない飲料NG", func(t *testing.T) {
		_, uc, _ := setup(t)

		err := uc.UpdateDrink(ctx, uuid.New(), commands.UpdateDrinkRequest{})
		require.ErrorIs(t, err, commands.ErrDrinkNotFound)
	})
}
