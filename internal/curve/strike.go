package curve

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/contactkeval/greek-plotter/internal/logger"
	"github.com/contactkeval/greek-plotter/internal/pricing"
)

// ResolveStrike evaluates a strike rule against the market parameters in p
// (the strike in p is ignored).
//
// Supported rules:
//   - "ATM": the spot price
//   - "ATM:+10", "ATM:-5": spot plus an absolute offset
//   - "ATM:+10%", "ATM:-20%": spot plus a percentage offset
//   - "ABS:600": a fixed strike
//   - "DELTA:0.30": the strike whose finite-difference delta for opt equals
//     the target (use a negative target for puts)
//
// Results are rounded to cents.
func ResolveStrike(rule string, opt pricing.OptionType, p pricing.MarketParams) (float64, error) {
	rule = strings.TrimSpace(strings.ToUpper(rule))
	logger.Debugf("event=resolve_strike rule=%s spot=%.4f", rule, p.Spot)

	switch {
	case rule == "ATM":
		return roundCents(p.Spot), nil

	case strings.HasPrefix(rule, "ATM:"):
		return resolveATMOffset(rule[len("ATM:"):], p.Spot)

	case strings.HasPrefix(rule, "ABS:"):
		v, err := strconv.ParseFloat(rule[len("ABS:"):], 64)
		if err != nil {
			return 0, fmt.Errorf("%w: strike rule %s: %v", pricing.ErrInvalidInput, rule, err)
		}
		return roundCents(v), nil

	case strings.HasPrefix(rule, "DELTA:"):
		target, err := strconv.ParseFloat(rule[len("DELTA:"):], 64)
		if err != nil {
			return 0, fmt.Errorf("%w: strike rule %s: %v", pricing.ErrInvalidInput, rule, err)
		}
		return resolveDeltaStrike(opt, p, target)
	}

	return 0, fmt.Errorf("%w: unknown strike rule %q", pricing.ErrInvalidInput, rule)
}

func resolveATMOffset(offset string, spot float64) (float64, error) {
	if strings.HasSuffix(offset, "%") {
		pct, err := strconv.ParseFloat(strings.TrimSuffix(offset, "%"), 64)
		if err != nil {
			return 0, fmt.Errorf("%w: ATM offset %s: %v", pricing.ErrInvalidInput, offset, err)
		}
		return roundCents(spot + spot*pct/100), nil
	}

	abs, err := strconv.ParseFloat(offset, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: ATM offset %s: %v", pricing.ErrInvalidInput, offset, err)
	}
	return roundCents(spot + abs), nil
}

// resolveDeltaStrike bisects on the strike. Delta falls as the strike rises
// for both calls and puts, so the bracket [spot/1000, spot*1000] is enough for
// any reachable target.
func resolveDeltaStrike(opt pricing.OptionType, p pricing.MarketParams, target float64) (float64, error) {
	deltaAt := func(k float64) float64 {
		q := p
		q.Strike = k
		return pricing.OptionDelta(opt, q)
	}

	lo, hi := p.Spot/1000, p.Spot*1000
	dLo, dHi := deltaAt(lo), deltaAt(hi)
	if math.IsNaN(dLo) || math.IsNaN(dHi) || target >= dLo || target <= dHi {
		return 0, fmt.Errorf("%w: delta %g not reachable for %s (range %g..%g)",
			pricing.ErrInvalidInput, target, opt, dHi, dLo)
	}

	const maxIter = 200
	for i := 0; i < maxIter && hi-lo > 1e-6; i++ {
		mid := 0.5 * (lo + hi)
		if deltaAt(mid) > target {
			lo = mid
		} else {
			hi = mid
		}
	}

	k := roundCents(0.5 * (lo + hi))
	logger.Tracef("event=delta_strike_resolved target=%.4f strike=%.2f", target, k)
	return k, nil
}

func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}
