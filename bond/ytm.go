package bond

import (
	"fmt"
	"math"
)

const (
	ytmTolerance = 1e-10
	ytmMaxIter   = 100

	// DefaultYTMGuess seeds the solver when the caller has no better prior.
	DefaultYTMGuess = 0.05
)

// SolveYTM finds the flat continuously-compounded rate y such that
// Price(terms, y) equals marketPrice, via Newton-Raphson seeded at guess.
//
// The pricing function is smooth and monotonically decreasing in y for
// positive cashflows, so convergence is expected for sane inputs. When the
// iteration budget is exhausted or the derivative vanishes, the error wraps
// ErrYieldNotFound and the returned yield must not be used.
func SolveYTM(t Terms, marketPrice, guess float64) (float64, int, error) {
	if marketPrice <= 0 {
		return 0, 0, fmt.Errorf("SolveYTM: market price must be positive, got %v", marketPrice)
	}

	y := guess
	for iter := 0; iter < ytmMaxIter; iter++ {
		price, dPdy := priceAndDeriv(t, y)
		f := price - marketPrice

		if math.Abs(f) < ytmTolerance {
			return y, iter + 1, nil
		}
		if math.Abs(dPdy) < 1e-15 {
			return 0, iter + 1, fmt.Errorf("SolveYTM: %w: derivative vanished at iter %d (y=%.6f)", ErrYieldNotFound, iter, y)
		}

		y -= f / dPdy
		if math.IsNaN(y) || math.IsInf(y, 0) {
			return 0, iter + 1, fmt.Errorf("SolveYTM: %w: diverged at iter %d", ErrYieldNotFound, iter)
		}
	}

	return 0, ytmMaxIter, fmt.Errorf("SolveYTM: %w: did not converge after %d iterations", ErrYieldNotFound, ytmMaxIter)
}

// priceAndDeriv returns (price, dPrice/dy) at a flat rate y.
//
//	price = sum CF_k * exp(-y*t_k) + F * exp(-y*T)
//	dP/dy = sum -t_k * CF_k * exp(-y*t_k) - T * F * exp(-y*T)
func priceAndDeriv(t Terms, y float64) (float64, float64) {
	n := t.NumberOfCoupons()
	amount := t.CouponAmount()
	p := t.periodYears()

	var price, deriv float64
	for k := 1; k <= n; k++ {
		ct := float64(k) * p
		disc := amount * math.Exp(-y*ct)
		price += disc
		deriv -= ct * disc
	}
	face := t.FaceValue * math.Exp(-y*t.Maturity)
	price += face
	deriv -= t.Maturity * face

	return price, deriv
}
