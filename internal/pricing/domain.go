package pricing

import "math"

// DefaultPoints is the number of spot samples on a plotted curve.
const DefaultPoints = 100

// SpotDomain returns n equally spaced spot prices covering 80% of the lower of
// spot and strike up to 120% of the higher one, with the lower bound clamped at zero.
// The first and last points equal the bounds exactly.
func SpotDomain(spot, strike float64, n int) []float64 {
	lo := math.Max(0, math.Min(0.8*spot, 0.8*strike))
	hi := math.Max(1.2*spot, 1.2*strike)
	return linspace(lo, hi, n)
}

func linspace(lo, hi float64, n int) []float64 {
	if n <= 0 {
		return nil
	}
	out := make([]float64, n)
	out[0] = lo
	if n == 1 {
		return out
	}
	step := (hi - lo) / float64(n-1)
	for i := 1; i < n-1; i++ {
		out[i] = lo + float64(i)*step
	}
	out[n-1] = hi
	return out
}
