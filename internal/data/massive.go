// Package data provides spot price providers.
//
// This file contains a Massive-backed Provider that resolves a ticker's spot
// from the previous trading day's aggregate bar.
//
// Design notes:
//   - Uses raw HTTP calls instead of the official Massive SDK
//   - Retries after the per-minute rate limit resets
//   - Falls back to the secondary provider when Massive cannot answer
package data

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/contactkeval/greek-plotter/internal/logger"
)

// massiveDataProvider implements the Provider interface using Massive APIs.
type massiveDataProvider struct {
	// APIKey used for authenticating requests with Massive.
	APIKey string

	// Client is the HTTP client used to make API requests.
	Client *http.Client

	// BaseURL is the root endpoint for Massive APIs
	// (e.g., https://api.massive.com).
	BaseURL string

	// secondary is an optional fallback provider.
	secondary Provider
}

// massivePrevCloseResp models the previous-close aggregate response.
type massivePrevCloseResp struct {
	Ticker       string `json:"ticker"`
	Adjusted     bool   `json:"adjusted"`
	ResultsCount int    `json:"resultsCount"`
	Results      []struct {
		Open      float64 `json:"o"`
		Close     float64 `json:"c"`
		High      float64 `json:"h"`
		Low       float64 `json:"l"`
		Volume    float64 `json:"v"`
		Timestamp int64   `json:"t"` // epoch millis
	} `json:"results"`
	Status string `json:"status"`
}

// NewMassiveDataProvider constructs a Massive-backed spot provider.
//
// Parameters:
//   - apiKey: Massive API key for authentication
//   - secondary: provider consulted when Massive fails, may be nil
func NewMassiveDataProvider(apiKey string, secondary Provider) *massiveDataProvider {
	logger.Infof("initializing Massive data provider")

	return &massiveDataProvider{
		APIKey: apiKey,
		Client: &http.Client{
			Timeout: 30 * time.Second,
			Transport: &http.Transport{
				TLSHandshakeTimeout:   10 * time.Second,
				ResponseHeaderTimeout: 15 * time.Second,
				ForceAttemptHTTP2:     true,
				MaxIdleConns:          10,
				IdleConnTimeout:       90 * time.Second,
			},
		},
		BaseURL:   "https://api.massive.com",
		secondary: secondary,
	}
}

func (massiveDataProv *massiveDataProvider) Name() string { return "massive" }

// Secondary returns the configured secondary Provider, if any.
func (massiveDataProv *massiveDataProvider) Secondary() Provider {
	return massiveDataProv.secondary
}

// GetSpot returns the previous session's close for ticker.
//
// When the request fails and a secondary provider is configured, the secondary
// is asked instead; if it fails too, both errors are returned.
func (massiveDataProv *massiveDataProvider) GetSpot(ctx context.Context, ticker string) (float64, error) {
	spot, err := massiveDataProv.getPrevClose(ctx, ticker)
	if err == nil {
		return spot, nil
	}

	if massiveDataProv.secondary == nil {
		return 0, err
	}

	logger.Debugf("massive spot lookup failed for %s, delegating to %s: %v",
		ticker, massiveDataProv.secondary.Name(), err)

	spot, secErr := massiveDataProv.secondary.GetSpot(ctx, ticker)
	if secErr != nil {
		return 0, errors.Join(err, secErr)
	}
	return spot, nil
}

func (massiveDataProv *massiveDataProvider) getPrevClose(ctx context.Context, ticker string) (float64, error) {
	ticker = normalizeTicker(ticker)
	if ticker == "" {
		return 0, fmt.Errorf("massive: empty ticker")
	}

	reqURL := fmt.Sprintf("%s/v2/aggs/ticker/%s/prev?adjusted=true",
		massiveDataProv.BaseURL, url.PathEscape(ticker))

	logger.Debugf("previous close request: %s", ticker)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return 0, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("x-api-key", massiveDataProv.APIKey)

	resp, err := massiveDataProv.processGetRequest(ctx, req)
	if err != nil {
		return 0, fmt.Errorf("massive api request failed: %w", err)
	}
	defer resp.Body.Close()

	var body massivePrevCloseResp
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return 0, fmt.Errorf("parsing massive response: %w", err)
	}

	if len(body.Results) == 0 {
		return 0, fmt.Errorf("massive: %w: no previous close for %s (status=%s)",
			ErrUnknownTicker, ticker, body.Status)
	}

	bar := body.Results[0]
	logger.Tracef("previous close %s c=%.4f t=%s", ticker, bar.Close,
		time.UnixMilli(bar.Timestamp).UTC().Format("2006-01-02"))

	return bar.Close, nil
}

// processGetRequest executes req, waiting out HTTP 429 responses until the
// next minute boundary. Any other status >= 400 is returned as an error with
// the response body attached.
func (massiveDataProv *massiveDataProvider) processGetRequest(
	ctx context.Context,
	req *http.Request,
) (*http.Response, error) {

	for {
		resp, err := massiveDataProv.Client.Do(req)
		if err != nil {
			return nil, err
		}

		// Success
		if resp.StatusCode < 400 {
			return resp, nil
		}

		// Handle per-minute rate limit (commonly 429)
		if resp.StatusCode == http.StatusTooManyRequests {
			resp.Body.Close()

			now := time.Now()
			sleepDuration := time.Until(now.Truncate(time.Minute).Add(time.Minute))

			logger.Infof("rate limit hit, sleeping for %s", sleepDuration)
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(sleepDuration):
			}
			continue
		}

		bodyBytes, _ := io.ReadAll(resp.Body)
		resp.Body.Close()
		return nil, fmt.Errorf(
			"unexpected status code: %d body=%s",
			resp.StatusCode,
			string(bodyBytes),
		)
	}
}
