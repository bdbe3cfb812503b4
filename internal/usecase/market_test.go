package usecase

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	drepo "YieldPulse/internal/domain/repository"
	"YieldPulse/internal/services/scoring"
	"YieldPulse/pkg/cache"
	"YieldPulse/pkg/config"
	applogger "YieldPulse/pkg/logger"
)

func newAnalyzer(market *fakeMarket) *MarketAnalyzer {
	return NewMarketAnalyzer(market, cache.NewMemoryCache(), 5*time.Minute, 30*time.Minute,
		config.DefaultThresholds(), nil, nil, nopMetrics{}, applogger.Nop())
}

func TestTokenPrice(t *testing.T) {
	market := &fakeMarket{quote: &drepo.MarketQuote{PriceUSD: 3150.42, Change24h: -1.8}}
	m := newAnalyzer(market)

	got := m.TokenPrice(context.Background(), "ethereum")
	if got == nil {
		t.Fatal("got nil price")
	}
	if got.PriceDisplay != "$3,150.42" || got.Change24hShown != "-1.80%" {
		t.Fatalf("displays = %q / %q", got.PriceDisplay, got.Change24hShown)
	}

	// Second read is served from cache.
	m.TokenPrice(context.Background(), "ethereum")
	if market.calls != 1 {
		t.Fatalf("upstream called %d times, want 1", market.calls)
	}
}

func TestTokenPriceFailure(t *testing.T) {
	m := newAnalyzer(&fakeMarket{quoteErr: errors.New("not found")})
	if got := m.TokenPrice(context.Background(), "nope"); got != nil {
		t.Fatalf("got %+v, want nil", got)
	}
}

func TestMarketSentiment(t *testing.T) {
	entries := []drepo.MarketEntry{
		{ID: "bitcoin", Name: "Bitcoin", Symbol: "btc", Change24h: 4},
		{ID: "ethereum", Name: "Ethereum", Symbol: "eth", Change24h: 6},
		{ID: "tether", Name: "Tether", Symbol: "usdt", Change24h: 0},
		{ID: "solana", Name: "Solana", Symbol: "sol", Change24h: 9},
		{ID: "cardano", Name: "Cardano", Symbol: "ada", Change24h: -2},
	}
	market := &fakeMarket{entries: entries}
	m := newAnalyzer(market)

	got := m.MarketSentiment(context.Background())
	if got == nil {
		t.Fatal("got nil sentiment")
	}

	wantAvg := (4.0 + 6 + 0 + 9 - 2) / 5
	if math.Abs(got.AvgChange24h-wantAvg) > 1e-9 {
		t.Fatalf("avg = %v want %v", got.AvgChange24h, wantAvg)
	}
	if got.Sentiment != "bullish" {
		t.Fatalf("sentiment = %q", got.Sentiment)
	}

	if len(got.TopGainers) != 3 || got.TopGainers[0].Symbol != "SOL" || got.TopGainers[2].Symbol != "BTC" {
		t.Fatalf("unexpected gainers %+v", got.TopGainers)
	}
	// Losers keep descending order, worst last.
	if len(got.TopLosers) != 3 || got.TopLosers[2].Symbol != "ADA" {
		t.Fatalf("unexpected losers %+v", got.TopLosers)
	}

	m.MarketSentiment(context.Background())
	if market.calls != 1 {
		t.Fatalf("upstream called %d times, want 1", market.calls)
	}
}

func TestMarketSentimentEmptyListing(t *testing.T) {
	m := newAnalyzer(&fakeMarket{entries: nil})
	got := m.MarketSentiment(context.Background())
	if got == nil {
		t.Fatal("got nil sentiment")
	}
	if got.AvgChange24h != 0 || got.Sentiment != "neutral" {
		t.Fatalf("got %q avg %v", got.Sentiment, got.AvgChange24h)
	}
	if len(got.TopGainers) != 0 || len(got.TopLosers) != 0 {
		t.Fatalf("expected empty movers")
	}
}

func ethDetail(c24, c7, c30 float64) *drepo.CoinDetail {
	return &drepo.CoinDetail{
		ID: "ethereum", Name: "Ethereum", Symbol: "eth",
		PriceUSD: 3150.42, Change24h: c24, Change7d: c7, Change30d: c30,
		MarketCapUSD: 380e9, Volume24hUSD: 15e9,
		RedditSubscribers: 2_500_000, TwitterFollowers: 3_200_000,
	}
}

func TestTokenSentiment(t *testing.T) {
	market := &fakeMarket{detail: ethDetail(4, 10, 20)}
	m := newAnalyzer(market)

	got := m.TokenSentiment(context.Background(), "ethereum")
	if got == nil {
		t.Fatal("got nil sentiment")
	}

	// 4*0.5 + 10*0.3 + 20*0.2 + 1 (community bonus) = 10
	if math.Abs(got.Score-10) > 1e-9 {
		t.Fatalf("score = %v want 10", got.Score)
	}
	if got.Sentiment != "bullish" {
		t.Fatalf("sentiment = %q", got.Sentiment)
	}
	if got.Symbol != "ETH" || got.PriceDisplay != "$3,150.42" {
		t.Fatalf("symbol %q price %q", got.Symbol, got.PriceDisplay)
	}

	m.TokenSentiment(context.Background(), "ethereum")
	if market.calls != 1 {
		t.Fatalf("upstream called %d times, want 1", market.calls)
	}
}

func TestTradingSignalsScenario(t *testing.T) {
	// Down on the day, up on the week, strongly up on the month.
	m := newAnalyzer(&fakeMarket{detail: ethDetail(-6, 3, 25)})

	report := m.TradingSignals(context.Background(), "ethereum")
	if report == nil {
		t.Fatal("got nil report")
	}
	want := []string{scoring.SignalStrongSell, scoring.SignalBuyDip, scoring.SignalTakeProfit}
	if len(report.Signals) != len(want) {
		t.Fatalf("got %d signals, want %d", len(report.Signals), len(want))
	}
	for i, w := range want {
		if report.Signals[i].Signal != w {
			t.Fatalf("signal %d = %q, want %q", i, report.Signals[i].Signal, w)
		}
	}
}

func TestTradingSignalsNeverEmpty(t *testing.T) {
	m := newAnalyzer(&fakeMarket{detail: ethDetail(0, 0, 0)})
	report := m.TradingSignals(context.Background(), "ethereum")
	if report == nil || len(report.Signals) != 1 {
		t.Fatalf("unexpected report %+v", report)
	}
	if report.Signals[0].Signal != scoring.SignalNeutral {
		t.Fatalf("got %q, want neutral", report.Signals[0].Signal)
	}
}

func TestTradingSignalsUnknownToken(t *testing.T) {
	m := newAnalyzer(&fakeMarket{detailErr: errors.New("404")})
	if report := m.TradingSignals(context.Background(), "nope"); report != nil {
		t.Fatalf("got %+v, want nil", report)
	}
}

func TestTradingSignalsFanOut(t *testing.T) {
	rec := &fakeRecorder{}
	pub := &fakePublisher{}
	m := NewMarketAnalyzer(&fakeMarket{detail: ethDetail(8, 0, 0)}, cache.NewMemoryCache(),
		5*time.Minute, 30*time.Minute, config.DefaultThresholds(), rec, pub, nopMetrics{}, applogger.Nop())

	report := m.TradingSignals(context.Background(), "ethereum")
	if report == nil {
		t.Fatal("got nil report")
	}
	if len(rec.reports) != 1 || len(pub.reports) != 1 {
		t.Fatalf("fan-out got %d/%d, want 1/1", len(rec.reports), len(pub.reports))
	}
}

func TestTradingSignalsFanOutFailureIsSwallowed(t *testing.T) {
	rec := &fakeRecorder{err: errors.New("history down")}
	pub := &fakePublisher{err: errors.New("broker down")}
	m := NewMarketAnalyzer(&fakeMarket{detail: ethDetail(8, 0, 0)}, cache.NewMemoryCache(),
		5*time.Minute, 30*time.Minute, config.DefaultThresholds(), rec, pub, nopMetrics{}, applogger.Nop())

	if report := m.TradingSignals(context.Background(), "ethereum"); report == nil {
		t.Fatal("sink failure must not fail the request")
	}
}

func TestEntryRecommendationBearishOverridesAccumulate(t *testing.T) {
	// score = -2*0.5 + -1*0.3 + -25*0.2 + 1 = -6.3 -> bearish.
	// 30d change -25 fires accumulate.
	m := newAnalyzer(&fakeMarket{detail: ethDetail(-2, -1, -25)})

	got := m.EntryRecommendation(context.Background(), "ethereum")
	if got == nil {
		t.Fatal("got nil recommendation")
	}
	if got.EnterNow {
		t.Fatal("bearish sentiment must block entry")
	}
	if got.Confidence != "high" {
		t.Fatalf("confidence = %q", got.Confidence)
	}
	last := got.Reasoning[len(got.Reasoning)-1]
	if last != "Overall sentiment is bearish, consider waiting" {
		t.Fatalf("final reason = %q", last)
	}
}

func TestEntryRecommendationBuySignal(t *testing.T) {
	// 24h +3 fires buy; sentiment stays neutral (score 1.5 + 1 = 2.5).
	m := newAnalyzer(&fakeMarket{detail: ethDetail(3, 0, 0)})

	got := m.EntryRecommendation(context.Background(), "ethereum")
	if got == nil {
		t.Fatal("got nil recommendation")
	}
	if !got.EnterNow || got.Confidence != "medium" {
		t.Fatalf("enter=%v conf=%q", got.EnterNow, got.Confidence)
	}
}
