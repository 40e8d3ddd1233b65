package futures

import "fmt"

// HedgeInput holds the parameters needed to size a futures hedge for a
// spot position.
type HedgeInput struct {
	// PositionSize is the size of the position to hedge, in asset units.
	PositionSize float64
	// ContractSize is the size of a single futures contract, in asset units.
	ContractSize float64
	// Correlation is the correlation between the asset and the futures returns.
	Correlation float64
	// AssetStdDev is the standard deviation of the asset's returns.
	AssetStdDev float64
	// FuturesStdDev is the standard deviation of the futures returns.
	FuturesStdDev float64
}

// HedgeResult is the output of ComputeHedge.
type HedgeResult struct {
	// Ratio is the minimum-variance hedge ratio.
	Ratio float64
	// Contracts is the (fractional) number of futures contracts needed.
	Contracts float64
}

// ComputeHedge computes the minimum-variance hedge ratio
// rho * sigma_asset / sigma_futures and the number of futures contracts
// needed to hedge the position.
func ComputeHedge(in HedgeInput) (HedgeResult, error) {
	if in.PositionSize <= 0 {
		return HedgeResult{}, fmt.Errorf("ComputeHedge: PositionSize must be positive, got %v", in.PositionSize)
	}
	if in.ContractSize <= 0 {
		return HedgeResult{}, fmt.Errorf("ComputeHedge: ContractSize must be positive, got %v", in.ContractSize)
	}
	if in.FuturesStdDev <= 0 {
		return HedgeResult{}, fmt.Errorf("ComputeHedge: FuturesStdDev must be positive, got %v", in.FuturesStdDev)
	}

	ratio := in.Correlation * in.AssetStdDev / in.FuturesStdDev
	return HedgeResult{
		Ratio:     ratio,
		Contracts: ratio * in.PositionSize / in.ContractSize,
	}, nil
}
