package pricing

import (
	"math"
	"testing"

	"github.com/contactkeval/greek-plotter/internal/testutil"
)

var atm = MarketParams{
	Spot:       100,
	Strike:     100,
	Rate:       0.05,
	Yield:      0,
	Volatility: 0.2,
	Maturity:   1,
}

func TestBlackScholesPriceReference(t *testing.T) {
	testutil.AssertClose(t, "call", BlackScholesPrice(Call, atm), 10.4506, 1e-4)
	testutil.AssertClose(t, "put", BlackScholesPrice(Put, atm), 5.5735, 1e-4)
}

// Put-call parity with a dividend yield
func TestBlackScholesPutCallParity(t *testing.T) {
	cases := []MarketParams{
		atm,
		{Spot: 100, Strike: 100, Rate: 0.03, Yield: 0, Volatility: 0.25, Maturity: 45.0 / 365.0},
		{Spot: 80, Strike: 110, Rate: 0.01, Yield: 0.02, Volatility: 0.4, Maturity: 2},
		{Spot: 581.39, Strike: 600, Rate: 0.045, Yield: 0.013, Volatility: 0.15, Maturity: 0.25},
		{Spot: 50, Strike: 40, Rate: -0.005, Yield: 0.0, Volatility: 0.6, Maturity: 0.5},
	}

	for _, p := range cases {
		lhs := BlackScholesPrice(Call, p) - BlackScholesPrice(Put, p)
		rhs := p.Spot*math.Exp(-p.Yield*p.Maturity) - p.Strike*math.Exp(-p.Rate*p.Maturity)
		if math.Abs(lhs-rhs) > 1e-6 {
			t.Fatalf("put-call parity violated for %+v: LHS=%f RHS=%f", p, lhs, rhs)
		}
	}
}

func TestBlackScholesPriceMonotoneInSpot(t *testing.T) {
	spots := SpotDomain(atm.Spot, atm.Strike, DefaultPoints)
	calls := PriceCurve(Call, spots, atm)
	puts := PriceCurve(Put, spots, atm)

	for i := 1; i < len(spots); i++ {
		if calls[i] < calls[i-1] {
			t.Fatalf("call price decreased at S=%f: %f < %f", spots[i], calls[i], calls[i-1])
		}
		if puts[i] > puts[i-1] {
			t.Fatalf("put price increased at S=%f: %f > %f", spots[i], puts[i], puts[i-1])
		}
	}
}

func TestBlackScholesPriceDegenerateInputs(t *testing.T) {
	tests := []struct {
		name string
		p    MarketParams
	}{
		{"zero volatility", MarketParams{Spot: 100, Strike: 100, Rate: 0, Volatility: 0, Maturity: 1}},
		{"zero maturity", MarketParams{Spot: 100, Strike: 100, Rate: 0.05, Volatility: 0.2, Maturity: 0}},
		{"negative spot", MarketParams{Spot: -1, Strike: 100, Rate: 0.05, Volatility: 0.2, Maturity: 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := BlackScholesPrice(Call, tt.p)
			if !math.IsNaN(v) && !math.IsInf(v, 0) {
				t.Fatalf("expected non-finite price, got %f", v)
			}
		})
	}
}

func TestPriceCurveLength(t *testing.T) {
	spots := []float64{90, 100, 110}
	out := PriceCurve(Put, spots, atm)
	if len(out) != len(spots) {
		t.Fatalf("expected %d prices, got %d", len(spots), len(out))
	}
	if out[1] != BlackScholesPrice(Put, atm) {
		t.Fatalf("expected curve point to match scalar price, got %f", out[1])
	}
}
