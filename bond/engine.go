package bond

import "fmt"

// ShockMethod selects the Taylor order used by YieldShock.
type ShockMethod string

const (
	// ShockDuration is the first-order (linear) approximation, adequate for
	// small yield moves.
	ShockDuration ShockMethod = "duration"
	// ShockConvexity adds the second-order convexity correction for larger
	// moves.
	ShockConvexity ShockMethod = "convexity"
)

// Params defines the inputs to construct a Bond.
//
// YieldToMaturity and MarketPrice are optional; nil means not supplied.
type Params struct {
	FaceValue  float64
	CouponRate float64
	// Maturity is the time to maturity in years.
	Maturity  float64
	Frequency CouponFrequency

	// RiskFreeRate is the flat continuously-compounded rate used for
	// discounting until a market yield is adopted.
	RiskFreeRate float64

	// YieldToMaturity, when set, overrides RiskFreeRate as the initial
	// active discount rate.
	YieldToMaturity *float64

	// MarketPrice is the observed dirty price. Required for MarketYield and
	// AdoptMarketYield; also used as the duration/convexity normalizer.
	MarketPrice *float64
}

// Bond is a stateful valuation facade over immutable Terms.
//
// The only mutable state is the active discount rate, which starts at the
// risk-free rate (or a supplied yield) and may be switched to the
// market-implied yield via AdoptMarketYield. A Bond is not safe for
// concurrent mutation; confine each instance to one logical owner.
type Bond struct {
	terms    Terms
	riskFree float64

	discountRate   float64
	marketPrice    float64
	hasMarketPrice bool
}

// New validates params and constructs a Bond with its initial discount rate.
func New(p Params) (*Bond, error) {
	terms, err := NewTerms(p.FaceValue, p.CouponRate, p.Maturity, p.Frequency)
	if err != nil {
		return nil, fmt.Errorf("New: %w", err)
	}
	if p.MarketPrice != nil && *p.MarketPrice <= 0 {
		return nil, fmt.Errorf("New: MarketPrice must be positive, got %v", *p.MarketPrice)
	}

	b := &Bond{
		terms:        terms,
		riskFree:     p.RiskFreeRate,
		discountRate: p.RiskFreeRate,
	}
	if p.YieldToMaturity != nil {
		b.discountRate = *p.YieldToMaturity
	}
	if p.MarketPrice != nil {
		b.marketPrice = *p.MarketPrice
		b.hasMarketPrice = true
	}
	return b, nil
}

// Terms returns the bond's immutable static terms.
func (b *Bond) Terms() Terms { return b.terms }

// DiscountRate returns the active discount rate.
func (b *Bond) DiscountRate() float64 { return b.discountRate }

// Price returns the present value of the bond at the active discount rate.
func (b *Bond) Price() float64 {
	return Price(b.terms, b.discountRate)
}

// MarketYield solves for the yield implied by the market price.
//
// The second return is false when no market price was supplied: the yield
// is unavailable, which is an expected outcome rather than an error. A
// solver failure returns an error wrapping ErrYieldNotFound. State is
// never mutated.
func (b *Bond) MarketYield() (float64, bool, error) {
	if !b.hasMarketPrice {
		return 0, false, nil
	}
	y, _, err := SolveYTM(b.terms, b.marketPrice, DefaultYTMGuess)
	if err != nil {
		return 0, false, fmt.Errorf("MarketYield: %w", err)
	}
	return y, true, nil
}

// AdoptMarketYield switches the active discount rate to the market-implied
// yield. It returns ErrNoMarketPrice when no market price was supplied and
// propagates solver failures; on any failure the active rate is untouched.
func (b *Bond) AdoptMarketYield() error {
	if !b.hasMarketPrice {
		return fmt.Errorf("AdoptMarketYield: %w", ErrNoMarketPrice)
	}
	y, _, err := b.MarketYield()
	if err != nil {
		return fmt.Errorf("AdoptMarketYield: %w", err)
	}
	b.discountRate = y
	return nil
}

// normalizer is the market price when supplied, else the model price.
func (b *Bond) normalizer() float64 {
	if b.hasMarketPrice {
		return b.marketPrice
	}
	return b.Price()
}

// Duration returns the Macaulay duration at the active discount rate.
func (b *Bond) Duration() float64 {
	return duration(b.terms, b.discountRate, b.normalizer())
}

// Convexity returns the convexity at the active discount rate.
func (b *Bond) Convexity() float64 {
	return convexity(b.terms, b.discountRate, b.normalizer())
}

// ShockResult is the price impact of an instantaneous yield move.
type ShockResult struct {
	// ReturnChange is PriceChange expressed as a return on the pre-shock price.
	ReturnChange float64
	// PriceChange is the approximated price move in currency units.
	PriceChange float64
	// NewPrice is the pre-shock price plus PriceChange.
	NewPrice float64
}

// YieldShock approximates the price impact of shifting the active yield by
// delta, using the first-order (duration) or second-order (convexity)
// Taylor expansion of the pricing function.
func (b *Bond) YieldShock(delta float64, method ShockMethod) (ShockResult, error) {
	price := b.Price()

	var change float64
	switch method {
	case ShockDuration:
		change = -price * b.Duration() * delta
	case ShockConvexity:
		change = -price*b.Duration()*delta + 0.5*price*b.Convexity()*delta*delta
	default:
		return ShockResult{}, fmt.Errorf("YieldShock: %w %q", ErrInvalidMethod, method)
	}

	return ShockResult{
		ReturnChange: change / price,
		PriceChange:  change,
		NewPrice:     price + change,
	}, nil
}
