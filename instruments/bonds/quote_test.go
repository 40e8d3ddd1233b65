package bonds

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQuoteCents_DirtyPrice(t *testing.T) {
	tests := []struct {
		name  string
		cents int64
		want  float64
	}{
		{"round price", 98000, 980.00},
		{"odd cents", 98123, 981.23},
		{"single cent", 1, 0.01},
		{"zero", 0, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			q := QuoteCents{ISIN: "FR0000000001", DirtyPriceCents: tc.cents}
			assert.Equal(t, tc.want, q.DirtyPrice())
		})
	}
}

func TestToFeed(t *testing.T) {
	feed := ToFeed([]QuoteCents{
		{ISIN: "FR0000000001", DirtyPriceCents: 98000},
		{ISIN: "DE0000000002", DirtyPriceCents: 101250},
	})

	px, ok := feed.PriceOn("FR0000000001")
	assert.True(t, ok)
	assert.Equal(t, 980.00, px)

	px, ok = feed.PriceOn("DE0000000002")
	assert.True(t, ok)
	assert.Equal(t, 1012.50, px)

	_, ok = feed.PriceOn("XS0000000003")
	assert.False(t, ok)
}
