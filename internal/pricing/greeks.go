package pricing

import "fmt"

// Forward-difference step sizes, one per perturbed parameter.
const (
	SpotStep     = 0.01
	VolStep      = 0.001
	MaturityStep = 0.01
	RateStep     = 0.001
)

// The Greeks below are one-sided forward differences of BlackScholesPrice,
// not the closed-form Greeks. Each carries an O(h) bias toward the bumped side.

// OptionDelta approximates dPrice/dS.
func OptionDelta(opt OptionType, p MarketParams) float64 {
	dp := BlackScholesPrice(opt, p.WithSpot(p.Spot+SpotStep)) - BlackScholesPrice(opt, p)
	return dp / SpotStep
}

// OptionGamma differences OptionDelta again in S, so it needs four price
// evaluations rather than a second-derivative stencil.
func OptionGamma(opt OptionType, p MarketParams) float64 {
	dd := OptionDelta(opt, p.WithSpot(p.Spot+SpotStep)) - OptionDelta(opt, p)
	return dd / SpotStep
}

// OptionVega approximates dPrice/dsigma per unit of volatility.
// Both legs of the difference use the same option type.
func OptionVega(opt OptionType, p MarketParams) float64 {
	bumped := p
	bumped.Volatility += VolStep
	dp := BlackScholesPrice(opt, bumped) - BlackScholesPrice(opt, p)
	return dp / VolStep
}

// OptionTheta approximates dPrice/dT, the sensitivity to a longer maturity.
// It is positive for most long options, the opposite sign of the
// per-day time decay quoted by brokers.
func OptionTheta(opt OptionType, p MarketParams) float64 {
	bumped := p
	bumped.Maturity += MaturityStep
	dp := BlackScholesPrice(opt, bumped) - BlackScholesPrice(opt, p)
	return dp / MaturityStep
}

// OptionRho approximates dPrice/dr per unit of rate.
func OptionRho(opt OptionType, p MarketParams) float64 {
	bumped := p
	bumped.Rate += RateStep
	dp := BlackScholesPrice(opt, bumped) - BlackScholesPrice(opt, p)
	return dp / RateStep
}

// Evaluate returns the requested Greek for a single set of market parameters.
// Nothing is cached between calls; identical inputs give bit-identical output.
func Evaluate(opt OptionType, greek GreekType, p MarketParams) float64 {
	switch greek {
	case Price:
		return BlackScholesPrice(opt, p)
	case Delta:
		return OptionDelta(opt, p)
	case Gamma:
		return OptionGamma(opt, p)
	case Vega:
		return OptionVega(opt, p)
	case Theta:
		return OptionTheta(opt, p)
	case Rho:
		return OptionRho(opt, p)
	}
	panic(fmt.Sprintf("pricing: unhandled greek %s", greek))
}

// EvaluateCurve evaluates the Greek at each spot in spots, one output per input.
func EvaluateCurve(opt OptionType, greek GreekType, spots []float64, p MarketParams) []float64 {
	out := make([]float64, len(spots))
	for i, s := range spots {
		out[i] = Evaluate(opt, greek, p.WithSpot(s))
	}
	return out
}
