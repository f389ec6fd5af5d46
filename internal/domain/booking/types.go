package booking

// Kind discriminates ledger line events explicitly instead of encoding the
// event in magic quantity/price combinations. Reversal logic dispatches on it.
type Kind string

const (
	// KindConsumption is a charged drink consumption.
	KindConsumption Kind = "consumption"
	// KindFreeConsumption is a consumption drawn from the shared free pool at
	// unit price zero.
	KindFreeConsumption Kind = "free_consumption"
	// KindPoolContribution credits one crate's worth of units to the shared
	// free pool, optionally charging the contributor the crate price.
	KindPoolContribution Kind = "pool_contribution"
	// KindAdjustment is a manual balance correction by an admin.
	KindAdjustment Kind = "adjustment"
)

func (k Kind) String() string {
	return string(k)
}

func (k Kind) IsValid() bool {
	switch k {
	case KindConsumption, KindFreeConsumption, KindPoolContribution, KindAdjustment:
		return true
	default:
		return false
	}
}

// IsConsumption reports whether the line depletes drink stock.
func (k Kind) IsConsumption() bool {
	return k == KindConsumption || k == KindFreeConsumption
}

// PriceMode of a crate contribution: purchased crates charge the contributor
// the crate price, own crates are donated stock and cost nothing.
type PriceMode string

const (
	PriceModePurchased PriceMode = "purchased"
	PriceModeOwn       PriceMode = "own"
)

func (p PriceMode) IsValid() bool {
	switch p {
	case PriceModePurchased, PriceModeOwn:
		return true
	default:
		return false
	}
}
