package curve

import (
	"context"
	"errors"
	"testing"

	"github.com/contactkeval/greek-plotter/internal/pricing"
	"github.com/contactkeval/greek-plotter/internal/testutil"
)

var spyParams = pricing.MarketParams{
	Spot:       581.39,
	Rate:       0.045,
	Yield:      0.013,
	Volatility: 0.15,
	Maturity:   30.0 / 365.0,
}

func TestResolveStrike(t *testing.T) {
	tests := []struct {
		expr     string
		expected float64
	}{
		{"ATM", 581.39},
		{"atm", 581.39},
		{"ATM:+10", 591.39},
		{"ATM:-20", 561.39},
		{"ATM:+10%", 639.53},
		{"ATM:-20%", 465.11},
		{"ABS:600", 600.0},
		{"ABS:600.126", 600.13},
	}

	for _, test := range tests {
		actual, err := ResolveStrike(test.expr, pricing.Call, spyParams)
		if err != nil {
			t.Fatalf("Failed to resolve strike: %v", err)
		}
		if actual != test.expected {
			t.Fatalf("For strike expression {%s}, expected %f, got %f", test.expr, test.expected, actual)
		}
	}
}

func TestResolveStrikeDelta(t *testing.T) {
	tests := []struct {
		opt    pricing.OptionType
		rule   string
		target float64
	}{
		{pricing.Call, "DELTA:0.30", 0.30},
		{pricing.Call, "DELTA:0.5", 0.50},
		{pricing.Put, "DELTA:-0.25", -0.25},
	}

	for _, test := range tests {
		rule := test.rule
		strike, err := ResolveStrike(rule, test.opt, spyParams)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", rule, err)
		}

		p := spyParams
		p.Strike = strike
		// rounding the strike to cents moves delta by well under 1e-3
		testutil.AssertClose(t, rule, pricing.OptionDelta(test.opt, p), test.target, 1e-3)
	}
}

func TestResolveStrikeErrors(t *testing.T) {
	for _, rule := range []string{"OTM", "ATM:ten", "ABS:", "DELTA:x", "DELTA:1.5", "DELTA:-0.3"} {
		if _, err := ResolveStrike(rule, pricing.Call, spyParams); !errors.Is(err, pricing.ErrInvalidInput) {
			t.Fatalf("%s: expected ErrInvalidInput, got %v", rule, err)
		}
	}
}

func TestBuildWithStrikeRule(t *testing.T) {
	cfg := baseConfig
	cfg.Strike = 0
	cfg.StrikeRule = "ATM:+5%"

	c, err := Build(context.Background(), cfg, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.Params.Strike != 105 {
		t.Fatalf("expected strike 105, got %f", c.Params.Strike)
	}
	// [0.8*100, 1.2*105]
	testutil.AssertClose(t, "last spot", c.Points[len(c.Points)-1].Spot, 126, 1e-9)
}
