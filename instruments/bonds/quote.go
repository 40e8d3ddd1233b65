// Package bonds adapts vendor bond quote feeds to engine inputs.
package bonds

import (
	"github.com/shopspring/decimal"

	"github.com/cheval-paresseux/fixedincome/marketdata"
)

// QuoteCents mirrors vendor price feeds where dirty prices are stored as
// integer minor units (e.g., cents for EUR).
type QuoteCents struct {
	ISIN            string
	DirtyPriceCents int64
}

// DirtyPrice converts the minor-unit price to currency units. The division
// goes through decimal so the cents boundary stays exact.
func (q QuoteCents) DirtyPrice() float64 {
	return decimal.NewFromInt(q.DirtyPriceCents).
		Div(decimal.NewFromInt(100)).
		InexactFloat64()
}

// ToPrices converts vendor rows into the ISIN-to-price map a
// marketdata.MapPriceFeed consumes.
func ToPrices(in []QuoteCents) map[string]float64 {
	out := make(map[string]float64, len(in))
	for _, q := range in {
		out[q.ISIN] = q.DirtyPrice()
	}
	return out
}

// ToFeed builds a static price feed from vendor rows.
func ToFeed(in []QuoteCents) *marketdata.MapPriceFeed {
	return marketdata.NewMapPriceFeed(ToPrices(in))
}
