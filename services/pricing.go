package services

// DiscountInput carries the three optional user discount controls. Zero
// means the control was left empty.
type DiscountInput struct {
	DesiredPrice    float64
	PercentDiscount float64
	FlatDiscount    float64
}

// ResolveDiscount picks the effective discount from the user controls, in
// strict priority order: desired final price, then percent, then flat
// amount, then the catalog default. Exactly one branch applies; the
// controls never combine.
func ResolveDiscount(basePrice float64, in DiscountInput, catalogDefault float64) float64 {
	switch {
	case in.DesiredPrice > 0:
		d := basePrice - in.DesiredPrice
		if d < 0 {
			return 0
		}
		return d
	case in.PercentDiscount > 0:
		return (in.PercentDiscount / 100) * basePrice
	case in.FlatDiscount > 0:
		return in.FlatDiscount
	default:
		return catalogDefault
	}
}

// QuoteTotals is the computed price breakdown of a quote.
type QuoteTotals struct {
	BasePrice    float64
	Discount     float64
	OptionsTotal float64
	FinalPrice   float64
}

// CalcQuoteTotals computes the final quote price: base price minus discount
// plus the sum of the selected upgrades.
func CalcQuoteTotals(basePrice, discount float64, selected []OptionItem) QuoteTotals {
	totals := QuoteTotals{
		BasePrice: basePrice,
		Discount:  discount,
	}
	for _, opt := range selected {
		totals.OptionsTotal += opt.Price
	}
	totals.FinalPrice = basePrice - discount + totals.OptionsTotal
	return totals
}
