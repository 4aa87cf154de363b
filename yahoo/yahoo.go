// Package yahoo is a minimal client for the Yahoo Finance v8 chart API,
// the quote source for forex pairs, indices, commodities and stocks.
package yahoo

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

const defaultBaseURL = "https://query1.finance.yahoo.com"

// Yahoo rejects requests without a browser-ish user agent.
const userAgent = "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0 Safari/537.36"

// Client fetches quotes from the Yahoo Finance chart endpoint.
type Client struct {
	httpClient *http.Client
	baseURL    string
}

func NewClient() *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 15 * time.Second},
		baseURL:    defaultBaseURL,
	}
}

// NewClientWithBase is used by tests to point the client at a local server.
func NewClientWithBase(base string) *Client {
	c := NewClient()
	c.baseURL = base
	return c
}

// Bar is one daily candle.
type Bar struct {
	Time   time.Time
	Close  float64
	High   float64
	Low    float64
	Volume int64
}

// chartResponse mirrors the Yahoo v8 chart response, trimmed to the fields
// we read.
type chartResponse struct {
	Chart struct {
		Result []struct {
			Meta struct {
				Currency           string  `json:"currency"`
				Symbol             string  `json:"symbol"`
				RegularMarketPrice float64 `json:"regularMarketPrice"`
			} `json:"meta"`
			Timestamp  []int64 `json:"timestamp"`
			Indicators struct {
				Quote []struct {
					Close  []float64 `json:"close"`
					High   []float64 `json:"high"`
					Low    []float64 `json:"low"`
					Volume []int64   `json:"volume"`
				} `json:"quote"`
			} `json:"indicators"`
		} `json:"result"`
		Error *struct {
			Code        string `json:"code"`
			Description string `json:"description"`
		} `json:"error"`
	} `json:"chart"`
}

func (c *Client) chartURL(symbol, rng string) string {
	return fmt.Sprintf("%s/v8/finance/chart/%s?range=%s&interval=1d",
		c.baseURL, url.PathEscape(symbol), url.QueryEscape(rng))
}

// History returns the daily bars for symbol over the given range (Yahoo
// range syntax, e.g. "5d", "1mo"). Bars with a null close (holidays,
// half-sessions) are dropped.
func (c *Client) History(symbol, rng string) ([]Bar, error) {
	var payload chartResponse
	if err := c.jwget(c.chartURL(symbol, rng), &payload); err != nil {
		return nil, err
	}
	if payload.Chart.Error != nil {
		return nil, fmt.Errorf("yahoo chart %s: %s: %s", symbol,
			payload.Chart.Error.Code, payload.Chart.Error.Description)
	}
	if len(payload.Chart.Result) == 0 {
		return nil, fmt.Errorf("yahoo chart %s: empty result", symbol)
	}
	result := payload.Chart.Result[0]
	if len(result.Indicators.Quote) == 0 {
		return nil, fmt.Errorf("yahoo chart %s: no quote series", symbol)
	}
	quote := result.Indicators.Quote[0]

	bars := make([]Bar, 0, len(result.Timestamp))
	for i, ts := range result.Timestamp {
		if i >= len(quote.Close) || quote.Close[i] == 0 {
			continue
		}
		b := Bar{Time: time.Unix(ts, 0).UTC(), Close: quote.Close[i]}
		if i < len(quote.High) {
			b.High = quote.High[i]
		}
		if i < len(quote.Low) {
			b.Low = quote.Low[i]
		}
		if i < len(quote.Volume) {
			b.Volume = quote.Volume[i]
		}
		bars = append(bars, b)
	}
	if len(bars) == 0 {
		return nil, fmt.Errorf("yahoo chart %s: no usable bars", symbol)
	}
	return bars, nil
}

// jwget performs a GET against addr and unmarshals the JSON response body
// into data.
func (c *Client) jwget(addr string, data any) error {
	req, err := http.NewRequest(http.MethodGet, addr, nil)
	if err != nil {
		return err
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("cannot http GET %v/%v: %v", resp.Request.URL.Host, resp.Request.URL.Path, resp.Status)
	}
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, resp.Body); err != nil {
		return err
	}
	return json.Unmarshal(buf.Bytes(), data)
}
