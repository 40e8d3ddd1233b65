package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/cheval-paresseux/fixedincome/bond"
)

type exposureInput struct {
	FaceValue       float64  `json:"face_value"`
	CouponRate      float64  `json:"coupon_rate"`
	Maturity        float64  `json:"maturity"`
	CouponFrequency string   `json:"coupon_frequency"`
	RiskFreeRate    float64  `json:"risk_free_rate"`
	MarketPrice     *float64 `json:"market_price,omitempty"`

	// Sweep grid. Defaults: -0.10 .. 0.10 in 0.001 steps.
	MinDelta *float64 `json:"min_delta,omitempty"`
	MaxDelta *float64 `json:"max_delta,omitempty"`
	Step     *float64 `json:"step,omitempty"`
}

type exposureOutput struct {
	Delta           float64 `json:"delta"`
	DurationReturn  float64 `json:"duration_return"`
	ConvexityReturn float64 `json:"convexity_return"`
}

const (
	defaultMinDelta = -0.10
	defaultMaxDelta = 0.10
	defaultStep     = 0.001
)

func main() {
	inputPath := flag.String("input", "", "JSON input path (reads stdin if omitted)")
	help := flag.Bool("h", false, "Show help")
	flag.BoolVar(help, "help", false, "Show help")
	flag.Parse()

	if *help {
		fmt.Fprintln(os.Stderr, "Usage: exposure -input <path>")
		fmt.Fprintln(os.Stderr, "Emit a bond's duration/convexity return curves over a yield-shift grid, for plotting.")
		return
	}

	path := strings.TrimSpace(*inputPath)
	if path == "" {
		if stat, err := os.Stdin.Stat(); err == nil && (stat.Mode()&os.ModeCharDevice) != 0 {
			fmt.Fprintln(os.Stderr, "Usage: exposure -input <path>")
			os.Exit(2)
		}
	}

	raw, err := readInput(path)
	if err != nil {
		exitError(fmt.Sprintf("read input: %v", err))
	}

	var in exposureInput
	if err := json.Unmarshal(raw, &in); err != nil {
		exitError(fmt.Sprintf("parse JSON: %v", err))
	}

	b, err := bond.New(bond.Params{
		FaceValue:    in.FaceValue,
		CouponRate:   in.CouponRate,
		Maturity:     in.Maturity,
		Frequency:    bond.CouponFrequency(in.CouponFrequency),
		RiskFreeRate: in.RiskFreeRate,
		MarketPrice:  in.MarketPrice,
	})
	if err != nil {
		exitError(err.Error())
	}

	min, max, step := defaultMinDelta, defaultMaxDelta, defaultStep
	if in.MinDelta != nil {
		min = *in.MinDelta
	}
	if in.MaxDelta != nil {
		max = *in.MaxDelta
	}
	if in.Step != nil {
		step = *in.Step
	}

	curve, err := b.Exposure(min, max, step)
	if err != nil {
		exitError(err.Error())
	}

	var points []exposureOutput
	for p := range curve {
		points = append(points, exposureOutput{
			Delta:           p.Delta,
			DurationReturn:  p.DurationReturn,
			ConvexityReturn: p.ConvexityReturn,
		})
	}

	out, _ := json.Marshal(points)
	fmt.Println(string(out))
}

func readInput(path string) ([]byte, error) {
	if path != "" {
		return os.ReadFile(path)
	}
	return io.ReadAll(os.Stdin)
}

func exitError(msg string) {
	b, _ := json.Marshal(map[string]string{"error": msg})
	fmt.Println(string(b))
	os.Exit(1)
}
