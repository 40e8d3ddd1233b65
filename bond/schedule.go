package bond

import "math"

// CouponInfo summarizes a bond's coupon stream at a given discount rate.
type CouponInfo struct {
	// Count is the number of coupons paid over the bond's life.
	Count int
	// Amount is the amount paid by a single coupon.
	Amount float64
	// PV is the present value of all coupons at the queried rate.
	PV float64
}

func (t Terms) periodYears() float64 {
	if t.period > 0 {
		return t.period
	}
	p, err := t.Frequency.Period()
	if err != nil {
		return 0
	}
	return p
}

// NumberOfCoupons returns how many coupons the bond pays before (or at)
// maturity: floor(maturity / period).
func (t Terms) NumberOfCoupons() int {
	p := t.periodYears()
	if p <= 0 || t.CouponRate == 0 {
		return 0
	}
	return int(math.Floor(t.Maturity / p))
}

// CouponAmount returns the amount paid by a single coupon:
// face value x coupon rate x period.
func (t Terms) CouponAmount() float64 {
	return t.FaceValue * t.CouponRate * t.periodYears()
}

// Coupons returns the coupon count, the per-coupon amount and the total
// coupon present value at rate, in a single pass over the schedule.
func (t Terms) Coupons(rate float64) CouponInfo {
	n := t.NumberOfCoupons()
	amount := t.CouponAmount()

	pv := 0.0
	p := t.periodYears()
	for k := 1; k <= n; k++ {
		pv += amount * math.Exp(-rate*float64(k)*p)
	}

	return CouponInfo{Count: n, Amount: amount, PV: pv}
}

// Schedule derives the bond's cashflows in chronological order.
//
// Coupons fall at t = period, 2*period, ..., floor(maturity/period)*period.
// The final cashflow is at t = maturity and carries face value plus any
// coupon falling at that instant. When maturity is not an exact multiple of
// the period, coupons stop at the last full period while the face value
// still repays at maturity, matching the flat fractional-year convention.
func (t Terms) Schedule() []Cashflow {
	n := t.NumberOfCoupons()
	amount := t.CouponAmount()
	p := t.periodYears()

	flows := make([]Cashflow, 0, n+1)
	terminal := Cashflow{Time: t.Maturity, Amount: t.FaceValue}
	for k := 1; k <= n; k++ {
		ct := float64(k) * p
		if ct >= t.Maturity {
			terminal.Amount += amount
			continue
		}
		flows = append(flows, Cashflow{Time: ct, Amount: amount})
	}
	return append(flows, terminal)
}
