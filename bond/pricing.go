package bond

import "math"

// Price returns the present value of the bond at a flat
// continuously-compounded rate: coupon PV plus discounted face value.
func Price(t Terms, rate float64) float64 {
	return t.Coupons(rate).PV + t.FaceValue*math.Exp(-rate*t.Maturity)
}

// weightedTime sums time^power x amount x exp(-rate*time) over the full
// schedule, including the face value at maturity. power 1 drives duration,
// power 2 convexity; both are the sign-adjusted derivatives of Price.
func weightedTime(t Terms, rate float64, power float64) float64 {
	n := t.NumberOfCoupons()
	amount := t.CouponAmount()
	p := t.periodYears()

	sum := 0.0
	for k := 1; k <= n; k++ {
		ct := float64(k) * p
		sum += math.Pow(ct, power) * amount * math.Exp(-rate*ct)
	}
	return sum + math.Pow(t.Maturity, power)*t.FaceValue*math.Exp(-rate*t.Maturity)
}

func duration(t Terms, rate, normalizer float64) float64 {
	return weightedTime(t, rate, 1) / normalizer
}

func convexity(t Terms, rate, normalizer float64) float64 {
	return weightedTime(t, rate, 2) / normalizer
}

// Duration returns the Macaulay duration at rate, normalized by the model
// price at the same rate.
func Duration(t Terms, rate float64) float64 {
	return duration(t, rate, Price(t, rate))
}

// Convexity returns the convexity at rate, normalized by the model price at
// the same rate.
func Convexity(t Terms, rate float64) float64 {
	return convexity(t, rate, Price(t, rate))
}
