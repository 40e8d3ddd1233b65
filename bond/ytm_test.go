package bond

import (
	"errors"
	"math"
	"testing"
)

func TestSolveYTM_RecoversKnownRate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		face float64
		cpn  float64
		mat  float64
		freq CouponFrequency
		rate float64
	}{
		{"annual five years", 1000, 0.06, 5, Annual, 0.045},
		{"semestral ten years", 500, 0.03, 10, Semestral, 0.07},
		{"zero coupon", 1000, 0, 5, Annual, 0.02},
		{"negative rate", 1000, 0.01, 3, Annual, -0.005},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			terms := mustTerms(t, tc.face, tc.cpn, tc.mat, tc.freq)
			target := Price(terms, tc.rate)

			got, iterations, err := SolveYTM(terms, target, DefaultYTMGuess)
			if err != nil {
				t.Fatalf("SolveYTM: %v", err)
			}
			if iterations < 1 {
				t.Fatalf("iterations = %d, want >= 1", iterations)
			}
			if math.Abs(got-tc.rate) > 1e-8 {
				t.Fatalf("SolveYTM = %.10f, want %.10f", got, tc.rate)
			}
		})
	}
}

func TestSolveYTM_InvalidMarketPrice(t *testing.T) {
	t.Parallel()

	terms := mustTerms(t, 1000, 0.06, 5, Annual)
	if _, _, err := SolveYTM(terms, 0, DefaultYTMGuess); err == nil {
		t.Fatal("expected error for zero market price")
	}
	if _, _, err := SolveYTM(terms, -10, DefaultYTMGuess); err == nil {
		t.Fatal("expected error for negative market price")
	}
}

func TestSolveYTM_DerivativeVanishes(t *testing.T) {
	t.Parallel()

	// At an absurd initial guess every discount factor underflows, the
	// derivative vanishes and the solver must report failure instead of
	// returning the guess.
	terms := mustTerms(t, 1000, 0.06, 5, Annual)
	_, _, err := SolveYTM(terms, 980, 1000)
	if !errors.Is(err, ErrYieldNotFound) {
		t.Fatalf("expected ErrYieldNotFound, got %v", err)
	}
}
