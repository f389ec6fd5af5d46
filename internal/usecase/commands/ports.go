package commands

import "context"

// StockAlerter is notified after a booking commit leaves a drink at or below
// its low-stock threshold. Implementations must not block the request path
// for long; failures are logged, never surfaced to the booking member.
type StockAlerter interface {
	NotifyLowStock(ctx context.Context, drinkName string, stockUnits int64, threshold int32)
}

// NopStockAlerter is used when mail delivery is not configured.
type NopStockAlerter struct{}

func (NopStockAlerter) NotifyLowStock(context.Context, string, int64, int32) {}
