package data

import (
	"context"
	"fmt"
)

// staticDataProvider serves spot prices from an in-memory table.
// The table is never written after construction.
type staticDataProvider struct {
	spots     map[string]float64
	secondary Provider
}

// NewStaticProvider copies spots (keyed by ticker, any case) into a new provider.
func NewStaticProvider(spots map[string]float64, secondary Provider) *staticDataProvider {
	table := make(map[string]float64, len(spots))
	for k, v := range spots {
		table[normalizeTicker(k)] = v
	}
	return &staticDataProvider{spots: table, secondary: secondary}
}

func (staticDataProv *staticDataProvider) Name() string { return "static" }

func (staticDataProv *staticDataProvider) Secondary() Provider {
	return staticDataProv.secondary
}

func (staticDataProv *staticDataProvider) GetSpot(ctx context.Context, ticker string) (float64, error) {
	if spot, ok := staticDataProv.spots[normalizeTicker(ticker)]; ok {
		return spot, nil
	}
	if staticDataProv.secondary != nil {
		return staticDataProv.secondary.GetSpot(ctx, ticker)
	}
	return 0, fmt.Errorf("static provider: %w: %s", ErrUnknownTicker, ticker)
}
