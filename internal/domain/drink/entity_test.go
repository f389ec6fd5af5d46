//go:build unit

package drink_test

import (
	"testing"

	"clubtab/internal/domain/drink"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDrink(t *testing.T) {
	t.Run("基本成功ケース", func(t *testing.T) {
		d, err := drink.NewDrink("Helles", 150, 2400, 10)
		require.NoError(t, err)

		assert.Equal(t, "Helles", d.Name())
		assert.Equal(t, int32(150), d.PriceCents())
		assert.Equal(t, int32(2400), d.CratePriceCents())
		assert.Equal(t, int32(drink.DefaultUnitsPerCrate), d.UnitsPerCrate())
		assert.Equal(t, int32(10), d.LowStockThreshold())
		assert.True(t, d.IsActive())
	})

	t.Run("名前の前後空白は除去", func(t *testing.T) {
		d, err := drink.NewDrink("  Spezi  ", 120, 0, 0)
		require.NoError(t, err)
		assert.Equal(t, "Spezi", d.Name())
	})

	t.Run("空の名前NG", func(t *testing.T) {
		_, err := drink.NewDrink("   ", 150, 2400, 10)
		require.ErrorIs(t, err, drink.ErrEmptyName)
	})

	t.Run("負の価格NG", func(t *testing.T) {
		_, err := drink.NewDrink("Helles", -1, 2400, 10)
		require.ErrorIs(t, err, drink.ErrNegativePrice)
	})

	t.Run("負のクレート価格NG", func(t *testing.T) {
		_, err := drink.NewDrink("Helles", 150, -1, 10)
		require.ErrorIs(t, err, drink.ErrNegativePrice)
	})
}

func TestCrateUnits(t *testing.T) {
	d, err := drink.NewDrink("Helles", 150, 2400, 10)
	require.NoError(t, err)

	tests := []struct {
		name   string
		crates float64
		want   int32
	}{
		{name: "1クレート", crates: 1, want: 20},
		{name: "半クレート", crates: 0.5, want: 10},
		{name: "端数は切り捨て", crates: 0.33, want: 6},
		{name: "負のクレートは負の単位数", crates: -1, want: -20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, d.CrateUnits(tt.crates))
		})
	}
}

func TestIsLowStock(t *testing.T) {
	d, err := drink.NewDrink("Helles", 150, 2400, 10)
	require.NoError(t, err)

	assert.True(t, d.IsLowStock(10))
	assert.True(t, d.IsLowStock(0))
	assert.True(t, d.IsLowStock(-5))
	assert.False(t, d.IsLowStock(11))
}
