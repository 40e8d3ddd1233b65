package bond

import (
	"fmt"
	"iter"
)

// ExposurePoint compares the two yield-shock approximations at one delta.
type ExposurePoint struct {
	// Delta is the yield shift in decimal (0.01 == +100bp).
	Delta float64
	// DurationReturn is the first-order return approximation at Delta.
	DurationReturn float64
	// ConvexityReturn is the second-order return approximation at Delta.
	ConvexityReturn float64
}

// Exposure returns the bond's return sensitivity over an arithmetic grid of
// yield shifts from min to max (inclusive) with the given spacing.
//
// The sequence is finite, lazy and restartable; both series at every delta
// come from the same price/duration/convexity snapshot taken when Exposure
// is called. It exists to be handed to an external plotting consumer.
func (b *Bond) Exposure(min, max, step float64) (iter.Seq[ExposurePoint], error) {
	if step <= 0 {
		return nil, fmt.Errorf("Exposure: step must be positive, got %v", step)
	}
	if max < min {
		return nil, fmt.Errorf("Exposure: max %v below min %v", max, min)
	}

	dur := b.Duration()
	conv := b.Convexity()

	return func(yield func(ExposurePoint) bool) {
		for i := 0; ; i++ {
			delta := min + float64(i)*step
			if delta > max {
				return
			}
			linear := -dur * delta
			if !yield(ExposurePoint{
				Delta:           delta,
				DurationReturn:  linear,
				ConvexityReturn: linear + 0.5*conv*delta*delta,
			}) {
				return
			}
		}
	}, nil
}
