package coingecko

import (
	"context"
	"fmt"
	"strconv"
	"time"

	drepo "YieldPulse/internal/domain/repository"
	"YieldPulse/internal/service/ratelimit"
	xhttp "YieldPulse/pkg/http"
)

const limiterKey = "coingecko"

// Client implements MarketDataProvider against the CoinGecko v3 API.
// All calls pass through a shared token bucket sized for the free tier.
type Client struct {
	baseURL  string
	http     *xhttp.Client
	limiter  *ratelimit.Limiter
	capacity float64
	refill   float64
	metrics  drepo.Metrics
}

// New creates a new market data provider.
func New(baseURL string, timeout time.Duration, limiter *ratelimit.Limiter, capacity, refill float64, metrics drepo.Metrics) *Client {
	return &Client{
		baseURL:  baseURL,
		http:     xhttp.NewClient(xhttp.WithTimeout(timeout)),
		limiter:  limiter,
		capacity: capacity,
		refill:   refill,
		metrics:  metrics,
	}
}

func (c *Client) allow() error {
	if c.limiter != nil && !c.limiter.Allow(limiterKey, c.capacity, c.refill) {
		c.metrics.RecordUpstreamRequest("coingecko", "throttled")
		return fmt.Errorf("coingecko rate limit exceeded")
	}
	return nil
}

func (c *Client) get(ctx context.Context, path string, params map[string][]string, dest interface{}) error {
	if err := c.allow(); err != nil {
		return err
	}
	err := c.http.SendAndParse(ctx, &xhttp.RequestOptions{
		Method:      xhttp.MethodGet,
		URL:         c.baseURL + path,
		QueryParams: params,
	}, dest)
	if err != nil {
		c.metrics.RecordUpstreamRequest("coingecko", "error")
		return err
	}
	c.metrics.RecordUpstreamRequest("coingecko", "ok")
	return nil
}

type simplePriceEntry struct {
	USD          float64 `json:"usd"`
	USD24hChange float64 `json:"usd_24h_change"`
}

// SimplePrice returns the spot price and 24h change for a token id.
func (c *Client) SimplePrice(ctx context.Context, tokenID string) (*drepo.MarketQuote, error) {
	var resp map[string]simplePriceEntry
	err := c.get(ctx, "/simple/price", map[string][]string{
		"ids":                 {tokenID},
		"vs_currencies":       {"usd"},
		"include_24hr_change": {"true"},
	}, &resp)
	if err != nil {
		return nil, fmt.Errorf("simple price: %w", err)
	}

	entry, ok := resp[tokenID]
	if !ok {
		return nil, fmt.Errorf("token %q not in price response", tokenID)
	}
	return &drepo.MarketQuote{PriceUSD: entry.USD, Change24h: entry.USD24hChange}, nil
}

type marketsEntry struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Symbol       string  `json:"symbol"`
	CurrentPrice float64 `json:"current_price"`
	Change24h    float64 `json:"price_change_percentage_24h"`
}

// TopMarkets returns the top tokens by market cap, descending.
func (c *Client) TopMarkets(ctx context.Context, limit int) ([]drepo.MarketEntry, error) {
	var resp []marketsEntry
	err := c.get(ctx, "/coins/markets", map[string][]string{
		"vs_currency":             {"usd"},
		"order":                   {"market_cap_desc"},
		"per_page":                {strconv.Itoa(limit)},
		"page":                    {"1"},
		"sparkline":               {"false"},
		"price_change_percentage": {"24h"},
	}, &resp)
	if err != nil {
		return nil, fmt.Errorf("markets listing: %w", err)
	}

	entries := make([]drepo.MarketEntry, 0, len(resp))
	for _, e := range resp {
		entries = append(entries, drepo.MarketEntry{
			ID:        e.ID,
			Name:      e.Name,
			Symbol:    e.Symbol,
			PriceUSD:  e.CurrentPrice,
			Change24h: e.Change24h,
		})
	}
	return entries, nil
}

type coinDetailResponse struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Symbol     string `json:"symbol"`
	MarketData struct {
		CurrentPrice struct {
			USD float64 `json:"usd"`
		} `json:"current_price"`
		Change24h float64 `json:"price_change_percentage_24h"`
		Change7d  float64 `json:"price_change_percentage_7d"`
		Change30d float64 `json:"price_change_percentage_30d"`
		MarketCap struct {
			USD float64 `json:"usd"`
		} `json:"market_cap"`
		TotalVolume struct {
			USD float64 `json:"usd"`
		} `json:"total_volume"`
	} `json:"market_data"`
	CommunityData struct {
		RedditSubscribers int64 `json:"reddit_subscribers"`
		TwitterFollowers  int64 `json:"twitter_followers"`
	} `json:"community_data"`
}

// CoinDetail returns the detailed coin view with market and community data.
func (c *Client) CoinDetail(ctx context.Context, tokenID string) (*drepo.CoinDetail, error) {
	var resp coinDetailResponse
	err := c.get(ctx, "/coins/"+tokenID, map[string][]string{
		"localization":   {"false"},
		"tickers":        {"false"},
		"market_data":    {"true"},
		"community_data": {"true"},
		"developer_data": {"false"},
	}, &resp)
	if err != nil {
		return nil, fmt.Errorf("coin detail: %w", err)
	}

	return &drepo.CoinDetail{
		ID:                resp.ID,
		Name:              resp.Name,
		Symbol:            resp.Symbol,
		PriceUSD:          resp.MarketData.CurrentPrice.USD,
		Change24h:         resp.MarketData.Change24h,
		Change7d:          resp.MarketData.Change7d,
		Change30d:         resp.MarketData.Change30d,
		MarketCapUSD:      resp.MarketData.MarketCap.USD,
		Volume24hUSD:      resp.MarketData.TotalVolume.USD,
		RedditSubscribers: resp.CommunityData.RedditSubscribers,
		TwitterFollowers:  resp.CommunityData.TwitterFollowers,
	}, nil
}
