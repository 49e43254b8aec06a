package pricing

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// ErrInvalidInput marks a market parameter that is non-numeric or out of domain.
var ErrInvalidInput = errors.New("invalid input")

// OptionType selects the call or put branch of the pricer.
type OptionType int

const (
	Call OptionType = iota
	Put
)

var optionNames = [...]string{Call: "Call", Put: "Put"}

func (o OptionType) String() string {
	if o < 0 || int(o) >= len(optionNames) {
		return fmt.Sprintf("OptionType(%d)", int(o))
	}
	return optionNames[o]
}

// ParseOptionType accepts "call"/"put" in any case.
func ParseOptionType(s string) (OptionType, error) {
	for i, name := range optionNames {
		if strings.EqualFold(strings.TrimSpace(s), name) {
			return OptionType(i), nil
		}
	}
	return 0, fmt.Errorf("%w: unknown option type %q", ErrInvalidInput, s)
}

func (o OptionType) MarshalText() ([]byte, error) {
	if o < 0 || int(o) >= len(optionNames) {
		return nil, fmt.Errorf("%w: unknown option type %d", ErrInvalidInput, int(o))
	}
	return []byte(o.String()), nil
}

func (o *OptionType) UnmarshalText(b []byte) error {
	v, err := ParseOptionType(string(b))
	if err != nil {
		return err
	}
	*o = v
	return nil
}

// GreekType selects which sensitivity the engine returns.
type GreekType int

const (
	Price GreekType = iota
	Delta
	Gamma
	Vega
	Theta
	Rho
)

var greekNames = [...]string{
	Price: "Price",
	Delta: "Delta",
	Gamma: "Gamma",
	Vega:  "Vega",
	Theta: "Theta",
	Rho:   "Rho",
}

func (g GreekType) String() string {
	if g < 0 || int(g) >= len(greekNames) {
		return fmt.Sprintf("GreekType(%d)", int(g))
	}
	return greekNames[g]
}

// GreekTypes lists every selectable Greek in display order.
func GreekTypes() []GreekType {
	return []GreekType{Price, Delta, Gamma, Vega, Theta, Rho}
}

// ParseGreekType accepts the display name of a Greek in any case.
func ParseGreekType(s string) (GreekType, error) {
	for i, name := range greekNames {
		if strings.EqualFold(strings.TrimSpace(s), name) {
			return GreekType(i), nil
		}
	}
	return 0, fmt.Errorf("%w: unknown greek type %q", ErrInvalidInput, s)
}

func (g GreekType) MarshalText() ([]byte, error) {
	if g < 0 || int(g) >= len(greekNames) {
		return nil, fmt.Errorf("%w: unknown greek type %d", ErrInvalidInput, int(g))
	}
	return []byte(g.String()), nil
}

func (g *GreekType) UnmarshalText(b []byte) error {
	v, err := ParseGreekType(string(b))
	if err != nil {
		return err
	}
	*g = v
	return nil
}

// Passes returns how many finite-difference passes the Greek applies to the price.
func Passes(g GreekType) int {
	switch g {
	case Price:
		return 0
	case Delta, Vega, Theta, Rho:
		return 1
	case Gamma:
		return 2
	}
	panic(fmt.Sprintf("pricing: unhandled greek %s", g))
}

// MarketParams holds the six Black-Scholes inputs for a single evaluation.
type MarketParams struct {
	Spot       float64 `json:"spot"`       // S, price of the underlying
	Strike     float64 `json:"strike"`     // K
	Rate       float64 `json:"rate"`       // r, continuously compounded risk-free rate
	Yield      float64 `json:"yield"`      // y, continuous dividend yield
	Volatility float64 `json:"volatility"` // sigma, annualized
	Maturity   float64 `json:"maturity"`   // T, years to expiry
}

// Validate reports the first parameter that would make the pricer return
// a non-finite value. The engine never calls it; callers do before evaluating.
func (p MarketParams) Validate() error {
	fields := []struct {
		name     string
		v        float64
		positive bool
	}{
		{"spot", p.Spot, true},
		{"strike", p.Strike, true},
		{"rate", p.Rate, false},
		{"yield", p.Yield, false},
		{"volatility", p.Volatility, true},
		{"maturity", p.Maturity, true},
	}
	for _, f := range fields {
		if math.IsNaN(f.v) || math.IsInf(f.v, 0) {
			return fmt.Errorf("%w: %s is not a finite number", ErrInvalidInput, f.name)
		}
		if f.positive && f.v <= 0 {
			return fmt.Errorf("%w: %s must be > 0, got %g", ErrInvalidInput, f.name, f.v)
		}
	}
	return nil
}

// WithSpot returns a copy of p priced at spot s.
func (p MarketParams) WithSpot(s float64) MarketParams {
	p.Spot = s
	return p
}
