package pricing

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

// BlackScholesPrice calculates the price of a European option using the Black-Scholes model
// with a continuous dividend yield.
//
// Parameters:
//   - opt: Call or Put
//   - p: spot, strike, risk-free rate, dividend yield, volatility and years to expiry
//
// Returns:
//
//	The theoretical option price. Inputs are not validated: a zero volatility or
//	maturity, or a non-positive spot or strike, yields NaN or Inf.
//
// The formula is:
//
//	d1 = (ln(S/K) + (r - y + sigma^2/2)T) / (sigma*sqrt(T))
//	d2 = d1 - sigma*sqrt(T)
//	call = S*e^(-yT)*N(d1) - K*e^(-rT)*N(d2)
//	put  = K*e^(-rT)*N(-d2) - S*e^(-yT)*N(-d1)
func BlackScholesPrice(opt OptionType, p MarketParams) float64 {
	volT := p.Volatility * math.Sqrt(p.Maturity)
	d1 := (math.Log(p.Spot/p.Strike) + (p.Rate-p.Yield+0.5*p.Volatility*p.Volatility)*p.Maturity) / volT
	d2 := d1 - volT

	spotPV := p.Spot * math.Exp(-p.Yield*p.Maturity)
	strikePV := p.Strike * math.Exp(-p.Rate*p.Maturity)

	switch opt {
	case Call:
		return spotPV*normCDF(d1) - strikePV*normCDF(d2)
	case Put:
		return strikePV*normCDF(-d2) - spotPV*normCDF(-d1)
	}
	panic(fmt.Sprintf("pricing: unhandled option type %s", opt))
}

// PriceCurve prices the option at every spot in spots, holding the rest of p fixed.
func PriceCurve(opt OptionType, spots []float64, p MarketParams) []float64 {
	out := make([]float64, len(spots))
	for i, s := range spots {
		out[i] = BlackScholesPrice(opt, p.WithSpot(s))
	}
	return out
}

// normCDF is the standard normal cumulative distribution function.
func normCDF(x float64) float64 {
	return distuv.UnitNormal.CDF(x)
}
