package response

import "clubtab/internal/usecase/queries"

type CatalogItemResponse struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	PriceCents      int32  `json:"price_cents"`
	CratePriceCents int32  `json:"crate_price_cents"`
	UnitsPerCrate   int32  `json:"units_per_crate"`
	StockUnits      int64  `json:"stock_units"`
	LowStock        bool   `json:"low_stock"`
	IsActive        bool   `json:"is_active"`
}

func FromCatalog(items []*queries.CatalogItem) []*CatalogItemResponse {
	res := make([]*CatalogItemResponse, len(items))
	for i, it := range items {
		res[i] = &CatalogItemResponse{
			ID:              it.ID.String(),
			Name:            it.Name,
			PriceCents:      it.PriceCents,
			CratePriceCents: it.CratePriceCents,
			UnitsPerCrate:   it.UnitsPerCrate,
			StockUnits:      it.StockUnits,
			LowStock:        it.LowStock,
			IsActive:        it.IsActive,
		}
	}
	return res
}
