package polygon

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"dividend_backend/internal/feature/company/domain/entity"
	"dividend_backend/internal/feature/company/usecase"
	"dividend_backend/internal/shared/ratelimiter"
)

// SourceName tags announcements returned by this client.
const SourceName = "polygon"

// maxIconBytes caps a downloaded icon.
const maxIconBytes = 5 << 20

// Client resolves ticker metadata, icons and dividend history from Polygon.
type Client struct {
	cfg     Config
	client  *http.Client
	limiter ratelimiter.RateLimiterInterface
}

var (
	_ usecase.MetadataResolver      = (*Client)(nil)
	_ usecase.IconFetcher           = (*Client)(nil)
	_ usecase.DividendHistorySource = (*Client)(nil)
)

// NewClient returns a Client. With a nil limiter every call goes straight out;
// otherwise a call that finds the budget spent fails with ErrLookupRateLimited.
func NewClient(cfg Config, client *http.Client, limiter ratelimiter.RateLimiterInterface) *Client {
	return &Client{cfg: cfg, client: client, limiter: limiter}
}

type tickerResponse struct {
	Status  string `json:"status"`
	Results struct {
		Name        string `json:"name"`
		Ticker      string `json:"ticker"`
		Description string `json:"description"`
		Branding    struct {
			IconURL string `json:"icon_url"`
			LogoURL string `json:"logo_url"`
		} `json:"branding"`
	} `json:"results"`
}

type dividendsResponse struct {
	Status  string `json:"status"`
	Results []struct {
		CashAmount     decimal.Decimal `json:"cash_amount"`
		Currency       string          `json:"currency"`
		PayDate        string          `json:"pay_date"`
		ExDividendDate string          `json:"ex_dividend_date"`
	} `json:"results"`
}

// Resolve はティッカーの会社名・説明・アイコンURLを取得します。
func (c *Client) Resolve(ctx context.Context, ticker string) (*entity.Metadata, error) {
	u := fmt.Sprintf("%s/v3/reference/tickers/%s?%s", c.cfg.BaseURL, url.PathEscape(ticker), c.query(nil).Encode())

	var body tickerResponse
	if err := c.getJSON(ctx, u, &body); err != nil {
		return nil, err
	}
	if body.Results.Name == "" && body.Results.Ticker == "" {
		return nil, fmt.Errorf("polygon: empty result for %s: %w", ticker, usecase.ErrLookupNotFound)
	}

	iconURL := body.Results.Branding.IconURL
	if iconURL == "" {
		iconURL = body.Results.Branding.LogoURL
	}
	return &entity.Metadata{
		Name:        body.Results.Name,
		Ticker:      body.Results.Ticker,
		Description: body.Results.Description,
		IconURL:     iconURL,
	}, nil
}

// FetchIcon はPolygonのブランディングURLからアイコンをダウンロードします。
// ブランディング画像も同じ認証が必要なため、APIキーを付与します。
func (c *Client) FetchIcon(ctx context.Context, iconURL string) ([]byte, string, error) {
	u, err := url.Parse(iconURL)
	if err != nil {
		return nil, "", fmt.Errorf("polygon: parse icon url: %w", usecase.ErrLookupUnknown)
	}
	q := u.Query()
	q.Set("apiKey", c.cfg.APIKey)
	u.RawQuery = q.Encode()

	res, err := c.do(ctx, u.String())
	if err != nil {
		return nil, "", err
	}
	defer closeBody(res)

	data, err := io.ReadAll(io.LimitReader(res.Body, maxIconBytes+1))
	if err != nil {
		return nil, "", fmt.Errorf("polygon: read icon: %v: %w", err, usecase.ErrLookupUnavailable)
	}
	if len(data) > maxIconBytes {
		return nil, "", fmt.Errorf("polygon: icon larger than %d bytes: %w", maxIconBytes, usecase.ErrLookupUnknown)
	}
	contentType := res.Header.Get("Content-Type")
	if contentType == "" {
		contentType = http.DetectContentType(data)
	}
	return data, contentType, nil
}

// DividendHistory はティッカーの現金配当を最大 limit 件取得します。
func (c *Client) DividendHistory(ctx context.Context, ticker string, limit int) ([]entity.DividendAnnouncement, error) {
	q := url.Values{}
	q.Set("ticker", ticker)
	q.Set("limit", strconv.Itoa(limit))
	q.Set("order", "desc")
	u := fmt.Sprintf("%s/v3/reference/dividends?%s", c.cfg.BaseURL, c.query(q).Encode())

	var body dividendsResponse
	if err := c.getJSON(ctx, u, &body); err != nil {
		return nil, err
	}

	out := make([]entity.DividendAnnouncement, 0, len(body.Results))
	for _, r := range body.Results {
		raw := r.PayDate
		if raw == "" {
			raw = r.ExDividendDate
		}
		d, err := time.Parse("2006-01-02", raw)
		if err != nil {
			slog.Warn("skipping polygon dividend with bad date", "ticker", ticker, "date", raw)
			continue
		}
		out = append(out, entity.DividendAnnouncement{
			Date:     d,
			Amount:   r.CashAmount,
			Currency: r.Currency,
			Source:   SourceName,
		})
	}
	return out, nil
}

func (c *Client) query(q url.Values) url.Values {
	if q == nil {
		q = url.Values{}
	}
	q.Set("apiKey", c.cfg.APIKey)
	return q
}

func (c *Client) getJSON(ctx context.Context, u string, dst any) error {
	res, err := c.do(ctx, u)
	if err != nil {
		return err
	}
	defer closeBody(res)

	if err := json.NewDecoder(res.Body).Decode(dst); err != nil {
		return fmt.Errorf("polygon: decode: %v: %w", err, usecase.ErrLookupUnknown)
	}
	return nil
}

// do はGETリクエストを実行し、通信エラーとHTTPステータスを ErrLookup* に変換します。
// 成功時のレスポンスボディは呼び出し元が閉じます。
func (c *Client) do(ctx context.Context, u string) (*http.Response, error) {
	if c.limiter != nil && !c.limiter.Allow() {
		return nil, fmt.Errorf("polygon: local call budget spent: %w", usecase.ErrLookupRateLimited)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("polygon: build request: %v: %w", err, usecase.ErrLookupUnknown)
	}
	res, err := c.client.Do(req)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return nil, err
		}
		return nil, fmt.Errorf("polygon: %v: %w", redact(err), usecase.ErrLookupUnavailable)
	}

	if res.StatusCode < 400 {
		return res, nil
	}
	closeBody(res)
	return nil, statusError(res.StatusCode)
}

func statusError(code int) error {
	switch {
	case code == http.StatusNotFound:
		return fmt.Errorf("polygon http %d: %w", code, usecase.ErrLookupNotFound)
	case code == http.StatusTooManyRequests:
		return fmt.Errorf("polygon http %d: %w", code, usecase.ErrLookupRateLimited)
	case code >= 500:
		return fmt.Errorf("polygon http %d: %w", code, usecase.ErrLookupUnavailable)
	default:
		return fmt.Errorf("polygon http %d: %w", code, usecase.ErrLookupUnknown)
	}
}

// redact はAPIキーを含むリクエストURLを通信エラーから取り除きます。
func redact(err error) error {
	var uerr *url.Error
	if errors.As(err, &uerr) {
		return uerr.Err
	}
	return err
}

func closeBody(res *http.Response) {
	if err := res.Body.Close(); err != nil {
		slog.Warn("failed to close response body", "error", err)
	}
}
