// Package curve turns a pricing request into the series a chart needs:
// sampled spot prices, the selected Greek at each one, and display labels.
package curve

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"time"

	"github.com/contactkeval/greek-plotter/internal/data"
	"github.com/contactkeval/greek-plotter/internal/logger"
	"github.com/contactkeval/greek-plotter/internal/pricing"
)

// XLabel is the axis label for the sampled spot prices.
const XLabel = "Stock Price"

// MaxPoints bounds the number of spot samples a single request may ask for.
const MaxPoints = 10000

// Config describes one curve request. It is decoded from the JSON config
// file in CLI mode and from the request body in REST mode.
type Config struct {
	Ticker     string             `json:"ticker,omitempty"`      // resolves spot when spot is 0
	Spot       float64            `json:"spot,omitempty"`        // S0
	Strike     float64            `json:"strike,omitempty"`      // K
	StrikeRule string             `json:"strike_rule,omitempty"` // resolves strike when strike is 0
	Rate       float64            `json:"rate"`                  // r
	Yield      float64            `json:"yield,omitempty"`       // y, defaults to 0
	Volatility float64            `json:"volatility"`            // sigma
	Maturity   float64            `json:"maturity"`              // T in years
	OptionType pricing.OptionType `json:"option_type"`           // "Call" or "Put"
	GreekType  pricing.GreekType  `json:"greek_type"`            // "Price", "Delta", ...
	Points     int                `json:"points,omitempty"`      // defaults to 100, at most MaxPoints
	ReportDir  string             `json:"report_dir,omitempty"`  // CLI only, defaults to ./out
	Verbosity  int                `json:"verbosity,omitempty"`   // CLI only, 0=errors,1=info,2=debug,3=trace
}

// MarketParams returns the pricing inputs carried by the config.
func (cfg Config) MarketParams() pricing.MarketParams {
	return pricing.MarketParams{
		Spot:       cfg.Spot,
		Strike:     cfg.Strike,
		Rate:       cfg.Rate,
		Yield:      cfg.Yield,
		Volatility: cfg.Volatility,
		Maturity:   cfg.Maturity,
	}
}

// Point is one (spot, value) sample.
type Point struct {
	Spot  float64 `json:"spot"`
	Value float64 `json:"value"`
}

// MarshalJSON writes non-finite values as null, since JSON has no NaN.
func (p Point) MarshalJSON() ([]byte, error) {
	var v *float64
	if !math.IsNaN(p.Value) && !math.IsInf(p.Value, 0) {
		v = &p.Value
	}
	return json.Marshal(struct {
		Spot  float64  `json:"spot"`
		Value *float64 `json:"value"`
	}{p.Spot, v})
}

// Curve is a Greek evaluated across a spot domain.
type Curve struct {
	OptionType pricing.OptionType   `json:"option_type"`
	GreekType  pricing.GreekType    `json:"greek_type"`
	Params     pricing.MarketParams `json:"params"`
	Label      string               `json:"label"`
	Title      string               `json:"title"`
	XLabel     string               `json:"x_label"`
	Points     []Point              `json:"points"`
}

// Label is the Y axis label, e.g. "Call Option Delta".
func Label(opt pricing.OptionType, greek pricing.GreekType) string {
	return opt.String() + " Option " + greek.String()
}

// Title is the chart title, e.g. "Call Option Delta vs. Stock Price".
func Title(opt pricing.OptionType, greek pricing.GreekType) string {
	return Label(opt, greek) + " vs. " + XLabel
}

// Build resolves the spot (from prov when cfg.Spot is zero and a ticker is set)
// and the strike (from cfg.StrikeRule when cfg.Strike is zero), validates the
// inputs, samples the spot domain and evaluates the Greek on it.
// Invalid inputs return an error wrapping pricing.ErrInvalidInput, including
// a point count above MaxPoints and a domain whose bounds overflow.
// ReportDir and Verbosity are not read here.
func Build(ctx context.Context, cfg Config, prov data.Provider) (*Curve, error) {
	if cfg.Spot == 0 && cfg.Ticker != "" {
		if prov == nil {
			return nil, fmt.Errorf("no data provider to resolve spot for %s", cfg.Ticker)
		}
		spot, err := prov.GetSpot(ctx, cfg.Ticker)
		if err != nil {
			return nil, fmt.Errorf("resolving spot for %s: %w", cfg.Ticker, err)
		}
		logger.Debugf("resolved %s spot=%.4f via %s", cfg.Ticker, spot, prov.Name())
		cfg.Spot = spot
	}

	if _, err := cfg.OptionType.MarshalText(); err != nil {
		return nil, err
	}
	if _, err := cfg.GreekType.MarshalText(); err != nil {
		return nil, err
	}

	if cfg.Strike == 0 && cfg.StrikeRule != "" {
		strike, err := ResolveStrike(cfg.StrikeRule, cfg.OptionType, cfg.MarketParams())
		if err != nil {
			return nil, err
		}
		logger.Debugf("resolved strike rule %s to %.2f", cfg.StrikeRule, strike)
		cfg.Strike = strike
	}

	params := cfg.MarketParams()
	if err := params.Validate(); err != nil {
		return nil, err
	}

	n := cfg.Points
	if n <= 0 {
		n = pricing.DefaultPoints
	}
	if n > MaxPoints {
		return nil, fmt.Errorf("%w: points must be <= %d, got %d", pricing.ErrInvalidInput, MaxPoints, n)
	}

	start := time.Now()
	spots := pricing.SpotDomain(params.Spot, params.Strike, n)
	if lo, hi := spots[0], spots[len(spots)-1]; math.IsInf(lo, 0) || math.IsInf(hi, 0) {
		return nil, fmt.Errorf("%w: spot domain [%g, %g] overflows", pricing.ErrInvalidInput, lo, hi)
	}
	values := pricing.EvaluateCurve(cfg.OptionType, cfg.GreekType, spots, params)

	logger.Debugf("domain [%.4f, %.4f] points=%d", spots[0], spots[len(spots)-1], n)

	points := make([]Point, len(spots))
	for i := range spots {
		points[i] = Point{Spot: spots[i], Value: values[i]}
		logger.Tracef("S=%.4f %s=%.6f", spots[i], cfg.GreekType, values[i])
	}

	logger.Infof("%s built in %v", Label(cfg.OptionType, cfg.GreekType), time.Since(start))

	return &Curve{
		OptionType: cfg.OptionType,
		GreekType:  cfg.GreekType,
		Params:     params,
		Label:      Label(cfg.OptionType, cfg.GreekType),
		Title:      Title(cfg.OptionType, cfg.GreekType),
		XLabel:     XLabel,
		Points:     points,
	}, nil
}

// Load decodes a Config from JSON.
func Load(b []byte) (Config, error) {
	var cfg Config
	if err := json.Unmarshal(b, &cfg); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}
