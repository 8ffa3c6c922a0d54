package httpclient

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"storefx/internal/domain"
	"storefx/internal/rate"
)

// CurrencyAPIClient fetches quotations from the currency-api dataset:
// GET <base_url>/v1/currencies/<base>.json ->
// {"date": "2026-02-07", "usd": {"try": 43.61244666, ...}}
// The top-level rate key is the lowercased base code, so the body is decoded
// in two steps. The client performs exactly one request per call; retrying
// is the caller's responsibility.
type CurrencyAPIClient struct {
	http      *http.Client
	baseURL   string
	validator rate.Validator
}

func NewCurrencyAPIClient(httpClient *http.Client, baseURL string, validator rate.Validator) *CurrencyAPIClient {
	return &CurrencyAPIClient{http: httpClient, baseURL: baseURL, validator: validator}
}

func (c *CurrencyAPIClient) FetchLatest(ctx context.Context, pair domain.CurrencyPair) (float64, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return 0, fmt.Errorf("failed to parse base URL: %w", err)
	}

	base := strings.ToLower(pair.Base)
	target := strings.ToLower(pair.Target)
	u.Path = strings.TrimSuffix(u.Path, "/") + "/v1/currencies/" + base + ".json"

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return 0, fmt.Errorf("failed to create request for pair %q: %w", pair, err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return 0, fmt.Errorf("%w: failed to execute request for pair %q: %v", domain.ErrSourceUnavailable, pair, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return 0, fmt.Errorf("%w: unexpected status code %d for pair %q: %s", domain.ErrSourceUnavailable, resp.StatusCode, pair, resp.Status)
	}

	var payload map[string]json.RawMessage
	if err = json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return 0, fmt.Errorf("%w: failed to decode response for pair %q: %v", domain.ErrBadPayload, pair, err)
	}

	section, ok := payload[base]
	if !ok {
		return 0, fmt.Errorf("%w: missing %q section for pair %q", domain.ErrBadPayload, base, pair)
	}

	var quotes map[string]float64
	if err = json.Unmarshal(section, &quotes); err != nil {
		return 0, fmt.Errorf("%w: %q section is not a rate map for pair %q: %v", domain.ErrBadPayload, base, pair, err)
	}

	value, ok := quotes[target]
	if !ok {
		return 0, fmt.Errorf("%w: no %q rate in %q section", domain.ErrBadPayload, target, base)
	}

	if !c.validator.IsValid(value) {
		min, max := c.validator.Bounds()
		return 0, fmt.Errorf("%w: rate %v for pair %q outside [%v, %v]", domain.ErrImplausibleRate, value, pair, min, max)
	}

	return value, nil
}
