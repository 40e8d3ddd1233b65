// Package bond values fixed-coupon bonds under a single flat
// continuously-compounded discount rate: price, yield to maturity,
// Macaulay duration, convexity and yield-shock impact.
package bond

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownCouponFrequency is returned when a coupon frequency name is
	// not one of the supported conventions.
	ErrUnknownCouponFrequency = errors.New("unknown coupon frequency")
	// ErrNoMarketPrice is returned when a market-dependent operation is
	// requested on a bond constructed without a market price.
	ErrNoMarketPrice = errors.New("no market price")
	// ErrYieldNotFound is returned when the yield solver exhausts its
	// iteration budget or the pricing function's derivative vanishes.
	ErrYieldNotFound = errors.New("yield not found")
	// ErrInvalidMethod is returned when YieldShock is called with an
	// unrecognized approximation method.
	ErrInvalidMethod = errors.New("invalid shock method")
)

// CouponFrequency names how often a bond pays coupons.
type CouponFrequency string

const (
	// Monthly pays twelve coupons per year.
	Monthly CouponFrequency = "Monthly"
	// BiMonthly pays every two months.
	BiMonthly CouponFrequency = "Bi-monthly"
	// Trimestrial pays quarterly.
	Trimestrial CouponFrequency = "Trimestrial"
	// Semestral pays twice per year.
	Semestral CouponFrequency = "Semestral"
	// Annual pays once per year.
	Annual CouponFrequency = "Annual"
	// Biennial pays every two years.
	Biennial CouponFrequency = "Biennial"
)

// Period returns the coupon period length in fractional years.
func (f CouponFrequency) Period() (float64, error) {
	switch f {
	case Monthly:
		return 1.0 / 12.0, nil
	case BiMonthly:
		return 1.0 / 6.0, nil
	case Trimestrial:
		return 1.0 / 4.0, nil
	case Semestral:
		return 1.0 / 2.0, nil
	case Annual:
		return 1.0, nil
	case Biennial:
		return 2.0, nil
	default:
		return 0, fmt.Errorf("Period: %w %q", ErrUnknownCouponFrequency, f)
	}
}

// Cashflow is a single bond payment at a fractional-year time.
//
// Times are years from valuation, not calendar dates; amounts are in
// currency units.
type Cashflow struct {
	Time   float64
	Amount float64
}

// Terms are the static terms of a fixed-coupon bond. Immutable once built.
type Terms struct {
	// FaceValue is the principal repaid at maturity.
	FaceValue float64
	// CouponRate is the annualized coupon rate as a decimal (0.06 == 6%).
	CouponRate float64
	// Maturity is the time to maturity in years.
	Maturity float64
	// Frequency is the coupon payment frequency.
	Frequency CouponFrequency

	period float64
}

// NewTerms validates the bond's static terms and resolves the coupon period.
func NewTerms(faceValue, couponRate, maturity float64, frequency CouponFrequency) (Terms, error) {
	if faceValue <= 0 {
		return Terms{}, fmt.Errorf("NewTerms: FaceValue must be positive, got %v", faceValue)
	}
	if couponRate < 0 {
		return Terms{}, fmt.Errorf("NewTerms: CouponRate must be non-negative, got %v", couponRate)
	}
	if maturity <= 0 {
		return Terms{}, fmt.Errorf("NewTerms: Maturity must be positive, got %v", maturity)
	}
	period, err := frequency.Period()
	if err != nil {
		return Terms{}, fmt.Errorf("NewTerms: %w", err)
	}
	return Terms{
		FaceValue:  faceValue,
		CouponRate: couponRate,
		Maturity:   maturity,
		Frequency:  frequency,
		period:     period,
	}, nil
}
