// Package futures holds closed-form forward pricing and futures hedge
// sizing helpers.
package futures

import "math"

// ForwardPrice returns the forward price of an asset under a flat
// continuously-compounded risk-free rate: spot * exp(r * T).
func ForwardPrice(spot, riskFreeRate, maturity float64) float64 {
	return spot * math.Exp(riskFreeRate*maturity)
}
