package data

import (
	"context"
	"errors"
	"os"
	"strings"
)

// ErrUnknownTicker is returned when no provider in the chain knows the ticker.
var ErrUnknownTicker = errors.New("unknown ticker")

// Provider supplies the underlying spot price used to center a Greek curve.
type Provider interface {
	Name() string
	Secondary() Provider
	GetSpot(ctx context.Context, ticker string) (float64, error)
}

// GetDefaultProvider returns a Massive provider when MASSIVE_API_KEY is set
// (falling back to the empty static provider), otherwise the static provider alone.
func GetDefaultProvider() Provider {
	static := NewStaticProvider(nil, nil)
	apiKey := os.Getenv("MASSIVE_API_KEY")
	if apiKey == "" {
		return static
	}
	return NewMassiveDataProvider(apiKey, static)
}

func normalizeTicker(ticker string) string {
	return strings.ToUpper(strings.TrimSpace(ticker))
}
