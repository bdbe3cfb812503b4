package repository

import (
	"context"
	"time"

	"YieldPulse/internal/domain/models"
)

// PoolProvider lists yield pools from the upstream aggregator.
type PoolProvider interface {
	Pools(ctx context.Context) ([]models.Pool, error)
}

// MarketDataProvider exposes the market data endpoints the pipelines consume.
type MarketDataProvider interface {
	SimplePrice(ctx context.Context, tokenID string) (*MarketQuote, error)
	TopMarkets(ctx context.Context, limit int) ([]MarketEntry, error)
	CoinDetail(ctx context.Context, tokenID string) (*CoinDetail, error)
}

// MarketQuote is a raw price quote from the market data upstream.
type MarketQuote struct {
	PriceUSD  float64
	Change24h float64
}

// MarketEntry is one row of the markets listing, ordered by market cap.
type MarketEntry struct {
	ID        string
	Name      string
	Symbol    string
	PriceUSD  float64
	Change24h float64
}

// CoinDetail is the detailed coin view with market and community data.
type CoinDetail struct {
	ID                string
	Name              string
	Symbol            string
	PriceUSD          float64
	Change24h         float64
	Change7d          float64
	Change30d         float64
	MarketCapUSD      float64
	Volume24hUSD      float64
	RedditSubscribers int64
	TwitterFollowers  int64
}

// CompletionProvider generates a chat completion for a prompt.
type CompletionProvider interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// Recorder persists fired signal reports for later analysis.
type Recorder interface {
	Init(ctx context.Context) error
	Record(ctx context.Context, at time.Time, report *models.SignalReport) error
	Health(ctx context.Context) error
	Close() error
}

// Publisher emits fired signal reports to downstream consumers.
type Publisher interface {
	Publish(ctx context.Context, report *models.SignalReport) error
	Close() error
}

// Metrics records operational measurements.
type Metrics interface {
	RecordUpstreamRequest(provider, outcome string)
	RecordError(kind string)
	RecordCacheLookup(operation, result string)
	RecordLastPrice(token string, price float64)
	RecordLatency(op string, seconds float64)
}
