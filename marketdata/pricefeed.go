// Package marketdata supplies observed bond prices to the valuation engine.
package marketdata

// PriceFeed supplies the latest observed dirty price for a bond.
type PriceFeed interface {
	PriceOn(isin string) (float64, bool)
}

// MapPriceFeed is a static map-backed implementation for development/testing.
type MapPriceFeed struct {
	prices map[string]float64
}

func NewMapPriceFeed(prices map[string]float64) *MapPriceFeed {
	return &MapPriceFeed{prices: prices}
}

func (m *MapPriceFeed) PriceOn(isin string) (float64, bool) {
	val, ok := m.prices[isin]
	return val, ok
}
