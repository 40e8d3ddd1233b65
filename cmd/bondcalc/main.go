package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/cheval-paresseux/fixedincome/bond"
	"github.com/cheval-paresseux/fixedincome/instruments/bonds"
)

type bondInput struct {
	TaskID          string   `json:"task_id,omitempty"`
	FaceValue       float64  `json:"face_value"`
	CouponRate      float64  `json:"coupon_rate"`
	Maturity        float64  `json:"maturity"`
	CouponFrequency string   `json:"coupon_frequency"`
	RiskFreeRate    float64  `json:"risk_free_rate"`
	YieldToMaturity *float64 `json:"yield_to_maturity,omitempty"`
	MarketPrice     *float64 `json:"market_price,omitempty"`
	// MarketPriceCents takes precedence over MarketPrice when set, for feeds
	// quoting in integer minor units.
	MarketPriceCents *int64 `json:"market_price_cents,omitempty"`

	ShockDelta  *float64 `json:"shock_delta,omitempty"`
	ShockMethod string   `json:"shock_method,omitempty"`
}

type shockJSON struct {
	Delta        float64 `json:"delta"`
	Method       string  `json:"method"`
	ReturnChange float64 `json:"return_change"`
	PriceChange  float64 `json:"price_change"`
	NewPrice     float64 `json:"new_price"`
}

type bondOutput struct {
	TaskID          string     `json:"task_id,omitempty"`
	Price           float64    `json:"price"`
	DiscountRate    float64    `json:"discount_rate"`
	NumberOfCoupons int        `json:"number_of_coupons"`
	CouponAmount    float64    `json:"coupon_amount"`
	MarketYield     *float64   `json:"market_yield,omitempty"`
	Duration        float64    `json:"duration"`
	Convexity       float64    `json:"convexity"`
	Shock           *shockJSON `json:"shock,omitempty"`
	Error           string     `json:"error,omitempty"`
}

func main() {
	inputPath := flag.String("input", "", "JSON input path (reads stdin if omitted)")
	adoptYield := flag.Bool("adopt-market-yield", false, "Discount at the market-implied yield instead of the risk-free rate")
	help := flag.Bool("h", false, "Show help")
	flag.BoolVar(help, "help", false, "Show help")
	flag.Parse()

	if *help {
		fmt.Fprintln(os.Stderr, "Usage: bondcalc [-adopt-market-yield] -input <path>")
		fmt.Fprintln(os.Stderr, "Compute bond price, market yield, duration, convexity and yield-shock impact.")
		return
	}

	path := strings.TrimSpace(*inputPath)
	if path == "" {
		if stat, err := os.Stdin.Stat(); err == nil && (stat.Mode()&os.ModeCharDevice) != 0 {
			fmt.Fprintln(os.Stderr, "Usage: bondcalc [-adopt-market-yield] -input <path>")
			os.Exit(2)
		}
	}

	raw, err := readInput(path)
	if err != nil {
		exitError(fmt.Sprintf("read input: %v", err))
	}

	inputs, isArray, err := parseInputs(raw)
	if err != nil {
		exitError(fmt.Sprintf("parse JSON: %v", err))
	}

	hadError := false
	outputs := make([]bondOutput, 0, len(inputs))
	for _, in := range inputs {
		out, err := process(in, *adoptYield)
		if err != nil {
			hadError = true
			outputs = append(outputs, bondOutput{TaskID: in.TaskID, Error: err.Error()})
			continue
		}
		outputs = append(outputs, *out)
	}

	if isArray {
		b, _ := json.Marshal(outputs)
		fmt.Println(string(b))
	} else {
		b, _ := json.Marshal(outputs[0])
		fmt.Println(string(b))
	}

	if hadError {
		os.Exit(1)
	}
}

func process(in bondInput, adoptYield bool) (*bondOutput, error) {
	marketPrice := in.MarketPrice
	if in.MarketPriceCents != nil {
		px := bonds.QuoteCents{DirtyPriceCents: *in.MarketPriceCents}.DirtyPrice()
		marketPrice = &px
	}

	b, err := bond.New(bond.Params{
		FaceValue:       in.FaceValue,
		CouponRate:      in.CouponRate,
		Maturity:        in.Maturity,
		Frequency:       bond.CouponFrequency(in.CouponFrequency),
		RiskFreeRate:    in.RiskFreeRate,
		YieldToMaturity: in.YieldToMaturity,
		MarketPrice:     marketPrice,
	})
	if err != nil {
		return nil, err
	}

	if adoptYield {
		if err := b.AdoptMarketYield(); err != nil {
			return nil, err
		}
	}

	out := &bondOutput{
		TaskID:          in.TaskID,
		Price:           b.Price(),
		DiscountRate:    b.DiscountRate(),
		NumberOfCoupons: b.Terms().NumberOfCoupons(),
		CouponAmount:    b.Terms().CouponAmount(),
		Duration:        b.Duration(),
		Convexity:       b.Convexity(),
	}

	if ytm, ok, err := b.MarketYield(); err != nil {
		return nil, err
	} else if ok {
		out.MarketYield = &ytm
	}

	if in.ShockDelta != nil {
		method := in.ShockMethod
		if method == "" {
			method = string(bond.ShockConvexity)
		}
		res, err := b.YieldShock(*in.ShockDelta, bond.ShockMethod(method))
		if err != nil {
			return nil, err
		}
		out.Shock = &shockJSON{
			Delta:        *in.ShockDelta,
			Method:       method,
			ReturnChange: res.ReturnChange,
			PriceChange:  res.PriceChange,
			NewPrice:     res.NewPrice,
		}
	}

	return out, nil
}

func readInput(path string) ([]byte, error) {
	if path != "" {
		return os.ReadFile(path)
	}
	return io.ReadAll(os.Stdin)
}

func parseInputs(raw []byte) ([]bondInput, bool, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return nil, false, fmt.Errorf("empty input")
	}
	if trimmed[0] == '[' {
		var inputs []bondInput
		if err := json.Unmarshal(trimmed, &inputs); err != nil {
			return nil, true, err
		}
		if len(inputs) == 0 {
			return nil, true, fmt.Errorf("empty input array")
		}
		return inputs, true, nil
	}
	var input bondInput
	if err := json.Unmarshal(trimmed, &input); err != nil {
		return nil, false, err
	}
	return []bondInput{input}, false, nil
}

func exitError(msg string) {
	b, _ := json.Marshal(bondOutput{Error: msg})
	fmt.Println(string(b))
	os.Exit(1)
}
