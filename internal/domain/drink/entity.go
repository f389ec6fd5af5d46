package drink

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyName        = errors.New("drink name must not be empty")
	ErrNegativePrice    = errors.New("price cannot be negative")
	ErrInvalidCrateSize = errors.New("units per crate must be positive")
)

// DefaultUnitsPerCrate is the nominal bottle count of a standard crate.
const DefaultUnitsPerCrate = 20

type Drink struct {
	id                uuid.UUID
	name              string
	priceCents        int32
	cratePriceCents   int32
	unitsPerCrate     int32
	lowStockThreshold int32
	isActive          bool
	createdAt         time.Time
	updatedAt         time.Time
}

func NewDrink(name string, priceCents, cratePriceCents, lowStockThreshold int32) (*Drink, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}
	if priceCents < 0 || cratePriceCents < 0 {
		return nil, ErrNegativePrice
	}

	return &Drink{
		id:                uuid.New(),
		name:              name,
		priceCents:        priceCents,
		cratePriceCents:   cratePriceCents,
		unitsPerCrate:     DefaultUnitsPerCrate,
		lowStockThreshold: lowStockThreshold,
		isActive:          true,
	}, nil
}

func ReconstructDrink(
	id uuid.UUID,
	name string,
	priceCents, cratePriceCents, unitsPerCrate, lowStockThreshold int32,
	isActive bool,
	createdAt, updatedAt time.Time,
) *Drink {
	return &Drink{
		id:                id,
		name:              name,
		priceCents:        priceCents,
		cratePriceCents:   cratePriceCents,
		unitsPerCrate:     unitsPerCrate,
		lowStockThreshold: lowStockThreshold,
		isActive:          isActive,
		createdAt:         createdAt,
		updatedAt:         updatedAt,
	}
}

// CrateUnits converts a crate count (fractional for partial corrections) to
// bottle units, truncating toward zero.
func (d *Drink) CrateUnits(crates float64) int32 {
	return int32(crates * float64(d.unitsPerCrate))
}

func (d *Drink) IsLowStock(stockUnits int64) bool {
	return stockUnits <= int64(d.lowStockThreshold)
}

func (d *Drink) ID() uuid.UUID            { return d.id }
func (d *Drink) Name() string             { return d.name }
func (d *Drink) PriceCents() int32        { return d.priceCents }
func (d *Drink) CratePriceCents() int32   { return d.cratePriceCents }
func (d *Drink) UnitsPerCrate() int32     { return d.unitsPerCrate }
func (d *Drink) LowStockThreshold() int32 { return d.lowStockThreshold }
func (d *Drink) IsActive() bool           { return d.isActive }
func (d *Drink) CreatedAt() time.Time     { return d.createdAt }
func (d *Drink) UpdatedAt() time.Time     { return d.updatedAt }
