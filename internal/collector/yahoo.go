package collector

import (
	"context"
	"net/url"
	"time"

	"QuoteJournal/internal/model"

	"github.com/go-resty/resty/v2"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

const yahooBaseURL = "https://query1.finance.yahoo.com/v8/finance/chart"

// YahooFetcher implements Fetcher using Yahoo Finance public API.
type YahooFetcher struct {
	client    *resty.Client
	SymbolMap map[string]string // maps internal symbol to Yahoo ticker
}

// NewYahooFetcher creates a new Yahoo Finance fetcher.
func NewYahooFetcher(proxyURL string, timeout time.Duration) *YahooFetcher {
	return newYahooFetcher(yahooBaseURL, proxyURL, timeout)
}

func newYahooFetcher(baseURL, proxyURL string, timeout time.Duration) *YahooFetcher {
	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeaders(map[string]string{
			"Accept":     "application/json",
			"User-Agent": "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36",
		})
	if proxyURL != "" {
		client.SetProxy(proxyURL)
	}
	return &YahooFetcher{
		client: client,
		SymbolMap: map[string]string{
			"IBEX":   "^IBEX",
			"IBEX35": "^IBEX",
		},
	}
}

func (f *YahooFetcher) Name() string { return "yahoo" }

func (f *YahooFetcher) yahooSymbol(symbol string) string {
	if mapped, ok := f.SymbolMap[symbol]; ok {
		return mapped
	}
	return symbol
}

// yahooChart is the response structure from Yahoo Finance chart API.
type yahooChart struct {
	Chart struct {
		Result []struct {
			Meta struct {
				Symbol    string `json:"symbol"`
				LongName  string `json:"longName"`
				ShortName string `json:"shortName"`
			} `json:"meta"`
			Timestamp  []int64 `json:"timestamp"`
			Indicators struct {
				Quote []struct {
					Open   []*float64 `json:"open"`
					High   []*float64 `json:"high"`
					Low    []*float64 `json:"low"`
					Close  []*float64 `json:"close"`
					Volume []*int64   `json:"volume"`
				} `json:"quote"`
			} `json:"indicators"`
		} `json:"result"`
		Error *struct {
			Code        string `json:"code"`
			Description string `json:"description"`
		} `json:"error"`
	} `json:"chart"`
}

func toDecimal(vals []*float64, i int) decimal.Decimal {
	if i >= len(vals) || vals[i] == nil {
		return decimal.Zero
	}
	return decimal.NewFromFloat(*vals[i])
}

func toInt(vals []*int64, i int) int64 {
	if i >= len(vals) || vals[i] == nil {
		return 0
	}
	return *vals[i]
}

// FetchLatestSession requests the 1d range at 1d interval and returns the last non-null bar.
func (f *YahooFetcher) FetchLatestSession(ctx context.Context, symbol string) (*model.Session, error) {
	var chart yahooChart
	resp, err := f.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"interval": "1d",
			"range":    "1d",
		}).
		SetResult(&chart).
		SetError(&chart).
		Get("/" + url.PathEscape(f.yahooSymbol(symbol)))
	if err != nil {
		return nil, errors.Wrap(err, "yahoo fetch")
	}
	if chart.Chart.Error != nil {
		return nil, errors.Errorf("yahoo api error: %s", chart.Chart.Error.Description)
	}
	if !resp.IsSuccess() {
		return nil, errors.Errorf("yahoo: status %d, body: %s", resp.StatusCode(), truncateBody(resp.String()))
	}
	if len(chart.Chart.Result) == 0 || len(chart.Chart.Result[0].Timestamp) == 0 ||
		len(chart.Chart.Result[0].Indicators.Quote) == 0 {
		return nil, errors.Errorf("yahoo: no session data for %s", symbol)
	}

	result := chart.Chart.Result[0]
	quote := result.Indicators.Quote[0]

	// the latest bar may be null while the market is still open
	for i := len(result.Timestamp) - 1; i >= 0; i-- {
		sess := &model.Session{
			Symbol: symbol,
			Time:   time.Unix(result.Timestamp[i], 0),
			Open:   toDecimal(quote.Open, i),
			High:   toDecimal(quote.High, i),
			Low:    toDecimal(quote.Low, i),
			Close:  toDecimal(quote.Close, i),
			Volume: toInt(quote.Volume, i),
		}
		if sess.Empty() {
			continue
		}
		sess.LongName = result.Meta.LongName
		if sess.LongName == "" {
			sess.LongName = result.Meta.ShortName
		}
		return sess, nil
	}
	return nil, errors.Errorf("yahoo: empty session for %s", symbol)
}
