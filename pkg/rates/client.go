// Package rates provides a client for currency exchange rates. Rates feed
// display-layer conversion only; canonical offer records always keep their
// source currency.
package rates

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"
)

// Client fetches exchange rates for a base currency.
type Client interface {
	// Latest returns rates quoted against base (1 base = rate units of the
	// keyed currency).
	Latest(ctx context.Context, base string) (*Rates, error)
}

// Rates is one snapshot of exchange rates.
type Rates struct {
	Base  string             `json:"base"`
	Date  string             `json:"date"`
	Rates map[string]float64 `json:"rates"`
}

// Convert translates an amount from the base currency into target.
func (r *Rates) Convert(amount float64, target string) (float64, error) {
	target = strings.ToUpper(target)
	if target == r.Base {
		return amount, nil
	}
	rate, ok := r.Rates[target]
	if !ok || rate <= 0 {
		return 0, eris.Errorf("rates: no rate %s -> %s", r.Base, target)
	}
	return amount * rate, nil
}

// fallbackRates covers the currencies of the documents we see when both
// providers are down. Coarse; display marks converted values as
// approximate anyway.
var fallbackRates = map[string]map[string]float64{
	"EUR": {"RUB": 100.0, "USD": 1.08, "GBP": 0.85},
	"USD": {"RUB": 92.0, "EUR": 0.93, "GBP": 0.79},
	"RUB": {"EUR": 0.01, "USD": 0.011, "GBP": 0.0085},
}

// Option configures the rates client.
type Option func(*httpClient)

// WithBaseURL sets a custom primary base URL (for testing).
func WithBaseURL(url string) Option {
	return func(c *httpClient) {
		c.baseURL = url
	}
}

// WithFallbackURL sets the Bank of Russia fallback feed URL.
func WithFallbackURL(url string) Option {
	return func(c *httpClient) {
		c.fallbackURL = url
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *httpClient) {
		c.http = hc
	}
}

type httpClient struct {
	baseURL     string
	fallbackURL string
	http        *http.Client
}

// NewClient creates an exchange-rate client with the public provider as
// primary and the Bank of Russia daily feed as fallback.
func NewClient(opts ...Option) Client {
	c := &httpClient{
		baseURL:     "https://api.exchangerate-api.com/v4/latest",
		fallbackURL: "https://www.cbr-xml-daily.ru/daily_json.js",
		http: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *httpClient) Latest(ctx context.Context, base string) (*Rates, error) {
	base = strings.ToUpper(base)

	rates, err := c.fetchPrimary(ctx, base)
	if err == nil {
		return rates, nil
	}
	zap.L().Warn("rates: primary provider failed, trying fallback", zap.Error(err))

	rates, fbErr := c.fetchCBR(ctx, base)
	if fbErr == nil {
		return rates, nil
	}
	zap.L().Warn("rates: fallback provider failed, using static rates", zap.Error(fbErr))

	static, ok := fallbackRates[base]
	if !ok {
		return nil, eris.Wrapf(err, "rates: no provider and no static rates for %s", base)
	}
	out := make(map[string]float64, len(static))
	for k, v := range static {
		out[k] = v
	}
	return &Rates{Base: base, Rates: out}, nil
}

func (c *httpClient) fetchPrimary(ctx context.Context, base string) (*Rates, error) {
	reqURL := fmt.Sprintf("%s/%s", c.baseURL, base)
	body, err := c.get(ctx, reqURL)
	if err != nil {
		return nil, err
	}

	var result Rates
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, eris.Wrap(err, "rates: unmarshal primary response")
	}
	if result.Base == "" {
		result.Base = base
	}
	return &result, nil
}

// cbrResponse is the Bank of Russia daily feed shape. Valute values are
// quoted as RUB per Nominal units of the currency.
type cbrResponse struct {
	Date   string `json:"Date"`
	Valute map[string]struct {
		Nominal float64 `json:"Nominal"`
		Value   float64 `json:"Value"`
	} `json:"Valute"`
}

func (c *httpClient) fetchCBR(ctx context.Context, base string) (*Rates, error) {
	body, err := c.get(ctx, c.fallbackURL)
	if err != nil {
		return nil, err
	}

	var feed cbrResponse
	if err := json.Unmarshal(body, &feed); err != nil {
		return nil, eris.Wrap(err, "rates: unmarshal cbr response")
	}

	// RUB per unit for every quoted currency.
	perUnit := map[string]float64{"RUB": 1}
	for code, v := range feed.Valute {
		if v.Nominal > 0 {
			perUnit[code] = v.Value / v.Nominal
		}
	}

	baseRUB, ok := perUnit[base]
	if !ok || baseRUB <= 0 {
		return nil, eris.Errorf("rates: cbr feed has no rate for %s", base)
	}

	out := make(map[string]float64, len(perUnit))
	for code, rub := range perUnit {
		if code == base || rub <= 0 {
			continue
		}
		out[code] = baseRUB / rub
	}
	return &Rates{Base: base, Date: feed.Date, Rates: out}, nil
}

func (c *httpClient) get(ctx context.Context, reqURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, eris.Wrap(err, "rates: create request")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, eris.Wrap(err, "rates: request failed")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, eris.Wrap(err, "rates: read response body")
	}
	if resp.StatusCode != http.StatusOK {
		return nil, eris.Errorf("rates: unexpected status %d: %s", resp.StatusCode, string(body))
	}
	return body, nil
}
