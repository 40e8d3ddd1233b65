package main

import (
	"fmt"
	"log"

	"github.com/cheval-paresseux/fixedincome/bond"
	"github.com/cheval-paresseux/fixedincome/futures"
	"github.com/cheval-paresseux/fixedincome/instruments/bonds"
	"github.com/cheval-paresseux/fixedincome/rates"
)

func main() {
	// Rate equivalence: 5% annual compounding restated quarterly.
	equiv, err := rates.Convert(0.05, rates.Yearly, rates.Quarterly)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("Equivalent rate for quarterly compounding: %.4f\n", equiv)

	// Forward price of an asset at 3% risk-free over one year.
	fmt.Printf("Forward price: %.2f\n", futures.ForwardPrice(100, 0.03, 1))

	// Minimum-variance futures hedge.
	hedge, err := futures.ComputeHedge(futures.HedgeInput{
		PositionSize:  1000,
		ContractSize:  100,
		Correlation:   0.8,
		AssetStdDev:   0.20,
		FuturesStdDev: 0.15,
	})
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("Hedge ratio: %.2f\n", hedge.Ratio)
	fmt.Printf("Number of futures contracts needed: %.2f\n", hedge.Contracts)

	// Bond valuation: 1000 face, 6% annual coupon, 5y, 4% risk-free,
	// quoted dirty at 980.00 (98000 minor units on the vendor feed).
	feed := bonds.ToFeed([]bonds.QuoteCents{
		{ISIN: "FR0000000001", DirtyPriceCents: 98000},
	})
	marketPrice, ok := feed.PriceOn("FR0000000001")
	if !ok {
		log.Fatal("no quote for FR0000000001")
	}

	b, err := bond.New(bond.Params{
		FaceValue:    1000,
		CouponRate:   0.06,
		Maturity:     5,
		Frequency:    bond.Annual,
		RiskFreeRate: 0.04,
		MarketPrice:  &marketPrice,
	})
	if err != nil {
		log.Fatal(err)
	}

	info := b.Terms().Coupons(b.DiscountRate())
	fmt.Printf("Number of coupons: %d\n", info.Count)
	fmt.Printf("Coupon value: %.2f\n", info.Amount)
	fmt.Printf("Present value of coupons: %.2f\n", info.PV)

	ytm, _, err := b.MarketYield()
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("Yield to Maturity: %.4f\n", ytm)

	if err := b.AdoptMarketYield(); err != nil {
		log.Fatal(err)
	}
	fmt.Printf("Discount rate after adopting market yield: %.4f\n", b.DiscountRate())

	fmt.Printf("Bond price: %.2f\n", b.Price())
	fmt.Printf("Duration: %.2f\n", b.Duration())
	fmt.Printf("Convexity: %.2f\n", b.Convexity())

	shock, err := b.YieldShock(0.01, bond.ShockConvexity)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("Change in bond price: %.2f\n", shock.PriceChange)
	fmt.Printf("Change in return: %.4f\n", shock.ReturnChange)
	fmt.Printf("New bond price: %.2f\n", shock.NewPrice)
}
