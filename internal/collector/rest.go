package collector

import (
	"context"
	"time"

	"QuoteJournal/internal/model"

	"github.com/go-resty/resty/v2"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// RESTFetcher implements Fetcher against a self-hosted quote gateway.
type RESTFetcher struct {
	client *resty.Client
}

// NewRESTFetcher creates a new fetcher with optional proxy support.
func NewRESTFetcher(baseURL, apiKey, proxyURL string, timeout time.Duration) *RESTFetcher {
	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeader("Accept", "application/json")
	if apiKey != "" {
		client.SetAuthToken(apiKey)
	}
	if proxyURL != "" {
		client.SetProxy(proxyURL)
	}
	return &RESTFetcher{client: client}
}

func (f *RESTFetcher) Name() string { return "rest" }

// restSession is the expected JSON shape from the gateway.
type restSession struct {
	Symbol    string          `json:"symbol"`
	Name      string          `json:"name"`
	Timestamp int64           `json:"timestamp"`
	Open      decimal.Decimal `json:"open"`
	High      decimal.Decimal `json:"high"`
	Low       decimal.Decimal `json:"low"`
	Close     decimal.Decimal `json:"close"`
	Volume    int64           `json:"volume"`
}

func (f *RESTFetcher) FetchLatestSession(ctx context.Context, symbol string) (*model.Session, error) {
	var out restSession
	resp, err := f.client.R().
		SetContext(ctx).
		SetQueryParam("symbol", symbol).
		SetResult(&out).
		Get("/api/v1/session")
	if err != nil {
		return nil, errors.Wrap(err, "fetch session")
	}
	if !resp.IsSuccess() {
		return nil, errors.Errorf("fetch session: status %d, body: %s", resp.StatusCode(), truncateBody(resp.String()))
	}

	sess := &model.Session{
		Symbol:   symbol,
		LongName: out.Name,
		Time:     time.Unix(out.Timestamp, 0),
		Open:     out.Open,
		High:     out.High,
		Low:      out.Low,
		Close:    out.Close,
		Volume:   out.Volume,
	}
	if sess.Empty() {
		return nil, errors.Errorf("fetch session: empty session for %s", symbol)
	}
	return sess, nil
}
