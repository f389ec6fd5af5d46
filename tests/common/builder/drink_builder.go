//go:build unit || e2e

package builder

import (
	"clubtab/internal/domain/drink"
	"clubtab/internal/usecase/queries"
	"clubtab/internal/usecase/shared"

	"github.com/google/uuid"
)

type DrinkBuilder struct {
	ID                uuid.UUID
	Name              string
	PriceCents        int32
	CratePriceCents   int32
	UnitsPerCrate     int32
	LowStockThreshold int32
	StockUnits        int64
	IsActive          bool
}

func NewDrinkBuilder() *DrinkBuilder {
	return &DrinkBuilder{
		ID:                uuid.New(),
		Name:              "Helles",
		PriceCents:        150,
		CratePriceCents:   2400,
		UnitsPerCrate:     20,
		LowStockThreshold: 10,
		StockUnits:        60,
		IsActive:          true,
	}
}

func (b *DrinkBuilder) With(mutate func(*DrinkBuilder)) *DrinkBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *DrinkBuilder) BuildDomain() (*drink.Drink, error) {
	return drink.NewDrink(b.Name, b.PriceCents, b.CratePriceCents, b.LowStockThreshold)
}

func (b *DrinkBuilder) BuildSnapshot() *shared.DrinkSnapshot {
	return &shared.DrinkSnapshot{
		ID:                b.ID,
		Name:              b.Name,
		PriceCents:        b.PriceCents,
		CratePriceCents:   b.CratePriceCents,
		UnitsPerCrate:     b.UnitsPerCrate,
		LowStockThreshold: b.LowStockThreshold,
		IsActive:          b.IsActive,
	}
}

func (b *DrinkBuilder) BuildReadModel() *queries.CatalogItem {
	return &queries.CatalogItem{
		ID:                b.ID,
		Name:              b.Name,
		PriceCents:        b.PriceCents,
		CratePriceCents:   b.CratePriceCents,
		UnitsPerCrate:     b.UnitsPerCrate,
		StockUnits:        b.StockUnits,
		LowStock:          b.StockUnits <= int64(b.LowStockThreshold),
		IsActive:          b.IsActive,
		LowStockThreshold: b.LowStockThreshold,
	}
}

// Fluent builder methods
func (b *DrinkBuilder) WithID(id uuid.UUID) *DrinkBuilder {
	b.ID = id
	return b
}

func (b *DrinkBuilder) WithName(name string) *DrinkBuilder {
	b.Name = name
	return b
}

func (b *DrinkBuilder) WithPriceCents(cents int32) *DrinkBuilder {
	b.PriceCents = cents
	return b
}

func (b *DrinkBuilder) WithUnitsPerCrate(units int32) *DrinkBuilder {
	b.UnitsPerCrate = units
	return b
}

func (b *DrinkBuilder) WithStockUnits(units int64) *DrinkBuilder {
	b.StockUnits = units
	return b
}

func (b *DrinkBuilder) AsInactive() *DrinkBuilder {
	b.IsActive = false
	return b
}
