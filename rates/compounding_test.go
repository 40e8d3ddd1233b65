package rates_test

import (
	"errors"
	"math"
	"testing"

	"github.com/cheval-paresseux/fixedincome/rates"
)

func TestConvert_KnownValues(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		rate float64
		from rates.Compounding
		to   rates.Compounding
		want float64
	}{
		{"yearly to quarterly", 0.05, rates.Yearly, rates.Quarterly, 0.0490889},
		{"yearly to continuous", 0.05, rates.Yearly, rates.Continuous, math.Log(1.05)},
		{"continuous to yearly", 0.05, rates.Continuous, rates.Yearly, math.Exp(0.05) - 1},
		{"monthly to semi-annual", 0.06, rates.Monthly, rates.SemiAnnual, 2 * (math.Pow(math.Pow(1+0.06/12, 12), 0.5) - 1)},
		{"identity", 0.03, rates.Quarterly, rates.Quarterly, 0.03},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got, err := rates.Convert(tc.rate, tc.from, tc.to)
			if err != nil {
				t.Fatalf("Convert: %v", err)
			}
			if math.Abs(got-tc.want) > 1e-6 {
				t.Fatalf("Convert(%v, %s, %s) = %.8f, want %.8f", tc.rate, tc.from, tc.to, got, tc.want)
			}
		})
	}
}

func TestConvert_RoundTrip(t *testing.T) {
	t.Parallel()

	all := []rates.Compounding{rates.Yearly, rates.SemiAnnual, rates.Quarterly, rates.Monthly, rates.Continuous}
	rs := []float64{-0.01, 0.0, 0.02, 0.05, 0.15}

	for _, from := range all {
		for _, to := range all {
			for _, r := range rs {
				converted, err := rates.Convert(r, from, to)
				if err != nil {
					t.Fatalf("Convert(%v, %s, %s): %v", r, from, to, err)
				}
				back, err := rates.Convert(converted, to, from)
				if err != nil {
					t.Fatalf("Convert(%v, %s, %s): %v", converted, to, from, err)
				}
				if math.Abs(back-r) > 1e-12 {
					t.Fatalf("round trip %s -> %s: got %.15f, want %.15f", from, to, back, r)
				}
			}
		}
	}
}

func TestConvert_UnknownFrequency(t *testing.T) {
	t.Parallel()

	if _, err := rates.Convert(0.05, rates.Compounding("Weekly"), rates.Yearly); !errors.Is(err, rates.ErrUnknownCompounding) {
		t.Fatalf("expected ErrUnknownCompounding for source, got %v", err)
	}
	if _, err := rates.Convert(0.05, rates.Yearly, rates.Compounding("Daily")); !errors.Is(err, rates.ErrUnknownCompounding) {
		t.Fatalf("expected ErrUnknownCompounding for target, got %v", err)
	}
}
