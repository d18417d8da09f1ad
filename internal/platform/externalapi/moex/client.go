// Package moex reads dividend history from the Moscow Exchange ISS API.
package moex

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"os"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"dividend_backend/internal/feature/company/domain/entity"
	"dividend_backend/internal/feature/company/usecase"
)

// SourceName tags announcements returned by this client.
const SourceName = "moex"

const defaultBaseURL = "https://iss.moex.com"

// Config holds configuration for the ISS client.
type Config struct {
	BaseURL string
	Timeout time.Duration
}

// LoadConfig loads ISS configuration from environment variables.
func LoadConfig() Config {
	cfg := Config{BaseURL: os.Getenv("MOEX_BASE_URL"), Timeout: 10 * time.Second}
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}
	return cfg
}

// Client implements usecase.DividendHistorySource for MOEX-listed tickers.
type Client struct {
	cfg    Config
	client *http.Client
}

var _ usecase.DividendHistorySource = (*Client)(nil)

// NewClient returns a Client.
func NewClient(cfg Config, client *http.Client) *Client {
	return &Client{cfg: cfg, client: client}
}

// dividendsResponse is the ISS columnar table: column names plus rows of values.
type dividendsResponse struct {
	Dividends struct {
		Columns []string            `json:"columns"`
		Data    [][]json.RawMessage `json:"data"`
	} `json:"dividends"`
}

// DividendHistory returns the latest limit dividends for ticker, newest first.
func (c *Client) DividendHistory(ctx context.Context, ticker string, limit int) ([]entity.DividendAnnouncement, error) {
	u := fmt.Sprintf("%s/iss/securities/%s/dividends.json?iss.meta=off", c.cfg.BaseURL, url.PathEscape(ticker))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("moex: build request: %v: %w", err, usecase.ErrLookupUnknown)
	}
	res, err := c.client.Do(req)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return nil, err
		}
		return nil, fmt.Errorf("moex: %v: %w", err, usecase.ErrLookupUnavailable)
	}
	defer func() {
		if err := res.Body.Close(); err != nil {
			slog.Warn("failed to close response body", "error", err)
		}
	}()

	switch {
	case res.StatusCode == http.StatusNotFound:
		return nil, fmt.Errorf("moex http %d: %w", res.StatusCode, usecase.ErrLookupNotFound)
	case res.StatusCode == http.StatusTooManyRequests:
		return nil, fmt.Errorf("moex http %d: %w", res.StatusCode, usecase.ErrLookupRateLimited)
	case res.StatusCode >= 500:
		return nil, fmt.Errorf("moex http %d: %w", res.StatusCode, usecase.ErrLookupUnavailable)
	case res.StatusCode >= 400:
		return nil, fmt.Errorf("moex http %d: %w", res.StatusCode, usecase.ErrLookupUnknown)
	}

	var body dividendsResponse
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("moex: decode: %v: %w", err, usecase.ErrLookupUnknown)
	}

	idx := make(map[string]int, len(body.Dividends.Columns))
	for i, name := range body.Dividends.Columns {
		idx[name] = i
	}
	dateCol, okDate := idx["registryclosedate"]
	valueCol, okValue := idx["value"]
	currencyCol, okCurrency := idx["currencyid"]
	if len(body.Dividends.Data) > 0 && (!okDate || !okValue || !okCurrency) {
		return nil, fmt.Errorf("moex: unexpected columns %v: %w", body.Dividends.Columns, usecase.ErrLookupUnknown)
	}

	out := make([]entity.DividendAnnouncement, 0, len(body.Dividends.Data))
	for _, row := range body.Dividends.Data {
		if len(row) <= dateCol || len(row) <= valueCol || len(row) <= currencyCol {
			continue
		}
		var rawDate, currency string
		var amount decimal.NullDecimal
		if json.Unmarshal(row[dateCol], &rawDate) != nil ||
			json.Unmarshal(row[currencyCol], &currency) != nil ||
			json.Unmarshal(row[valueCol], &amount) != nil || !amount.Valid {
			slog.Warn("skipping unreadable moex dividend row", "ticker", ticker)
			continue
		}
		d, err := time.Parse("2006-01-02", rawDate)
		if err != nil {
			slog.Warn("skipping moex dividend with bad date", "ticker", ticker, "date", rawDate)
			continue
		}
		out = append(out, entity.DividendAnnouncement{
			Date:     d,
			Amount:   amount.Decimal,
			Currency: currencyCode(currency),
			Source:   SourceName,
		})
	}

	// ISS lists oldest first.
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// currencyCode maps the exchange's legacy rouble code onto ISO 4217.
func currencyCode(c string) string {
	if c == "SUR" {
		return "RUB"
	}
	return c
}
