package usecase

import (
	"context"
	"sort"
	"strings"
	"time"

	"YieldPulse/internal/domain/models"
	drepo "YieldPulse/internal/domain/repository"
	"YieldPulse/internal/services/scoring"
	"YieldPulse/pkg/cache"
	"YieldPulse/pkg/config"
	applogger "YieldPulse/pkg/logger"
	"YieldPulse/pkg/util"
)

const topMarketsCount = 10

// MarketAnalyzer derives prices, sentiment and trading signals from the
// market data upstream. Like the yield pipeline it degrades to nil results
// on failure instead of returning errors.
type MarketAnalyzer struct {
	market       drepo.MarketDataProvider
	cache        cache.Service
	priceTTL     time.Duration
	sentimentTTL time.Duration
	thresholds   config.Thresholds
	recorder     drepo.Recorder
	publisher    drepo.Publisher
	metrics      drepo.Metrics
	log          *applogger.Logger
}

// NewMarketAnalyzer creates the market analysis pipeline. Recorder and
// publisher are optional; pass nil to disable signal fan-out.
func NewMarketAnalyzer(market drepo.MarketDataProvider, c cache.Service, priceTTL, sentimentTTL time.Duration, thresholds config.Thresholds, recorder drepo.Recorder, publisher drepo.Publisher, metrics drepo.Metrics, log *applogger.Logger) *MarketAnalyzer {
	return &MarketAnalyzer{
		market:       market,
		cache:        c,
		priceTTL:     priceTTL,
		sentimentTTL: sentimentTTL,
		thresholds:   thresholds,
		recorder:     recorder,
		publisher:    publisher,
		metrics:      metrics,
		log:          log,
	}
}

// TokenPrice returns the spot price snapshot for a token, or nil when the
// token is unknown or the upstream fails.
func (m *MarketAnalyzer) TokenPrice(ctx context.Context, tokenID string) *models.TokenPrice {
	key := cache.GenerateKey("token_price", tokenID)
	var hit models.TokenPrice
	if err := m.cache.Get(ctx, key, &hit); err == nil {
		m.metrics.RecordCacheLookup("token_price", "hit")
		return &hit
	}
	m.metrics.RecordCacheLookup("token_price", "miss")

	quote, err := m.market.SimplePrice(ctx, tokenID)
	if err != nil {
		m.metrics.RecordError("token_price")
		m.log.Error("price fetch failed", applogger.String("token", tokenID), applogger.Error(err))
		return nil
	}

	result := &models.TokenPrice{
		Token:          tokenID,
		PriceUSD:       quote.PriceUSD,
		PriceDisplay:   util.FormatCurrency(quote.PriceUSD),
		Change24h:      quote.Change24h,
		Change24hShown: util.FormatPercentage(quote.Change24h),
	}

	m.metrics.RecordLastPrice(tokenID, quote.PriceUSD)
	m.store(ctx, key, result, m.priceTTL)
	return result
}

// MarketSentiment computes the market-wide mood from the top tokens by cap.
func (m *MarketAnalyzer) MarketSentiment(ctx context.Context) *models.MarketSentiment {
	key := "market_sentiment"
	var hit models.MarketSentiment
	if err := m.cache.Get(ctx, key, &hit); err == nil {
		m.metrics.RecordCacheLookup("market_sentiment", "hit")
		return &hit
	}
	m.metrics.RecordCacheLookup("market_sentiment", "miss")

	entries, err := m.market.TopMarkets(ctx, topMarketsCount)
	if err != nil {
		m.metrics.RecordError("market_sentiment")
		m.log.Error("markets fetch failed", applogger.Error(err))
		return nil
	}

	var avg float64
	if len(entries) > 0 {
		var total float64
		for _, e := range entries {
			total += e.Change24h
		}
		avg = total / float64(len(entries))
	}

	byChange := make([]drepo.MarketEntry, len(entries))
	copy(byChange, entries)
	sort.SliceStable(byChange, func(i, j int) bool { return byChange[i].Change24h > byChange[j].Change24h })

	gainers := byChange
	if len(gainers) > 3 {
		gainers = gainers[:3]
	}
	losers := byChange
	if len(losers) > 3 {
		losers = losers[len(losers)-3:]
	}

	result := &models.MarketSentiment{
		Sentiment:      scoring.Classify(avg, m.thresholds.MarketSentiment),
		AvgChange24h:   avg,
		AvgChangeShown: util.FormatPercentage(avg),
		TopGainers:     movers(gainers),
		TopLosers:      movers(losers),
	}

	m.store(ctx, key, result, m.sentimentTTL)
	return result
}

func movers(entries []drepo.MarketEntry) []models.MarketMover {
	out := make([]models.MarketMover, 0, len(entries))
	for _, e := range entries {
		out = append(out, models.MarketMover{
			Name:           e.Name,
			Symbol:         upperSymbol(e.Symbol),
			Change24h:      e.Change24h,
			Change24hShown: util.FormatPercentage(e.Change24h),
		})
	}
	return out
}

// TokenSentiment scores a single token from its price momentum and
// community size.
func (m *MarketAnalyzer) TokenSentiment(ctx context.Context, tokenID string) *models.TokenSentiment {
	key := cache.GenerateKey("token_sentiment", tokenID)
	var hit models.TokenSentiment
	if err := m.cache.Get(ctx, key, &hit); err == nil {
		m.metrics.RecordCacheLookup("token_sentiment", "hit")
		return &hit
	}
	m.metrics.RecordCacheLookup("token_sentiment", "miss")

	detail, err := m.market.CoinDetail(ctx, tokenID)
	if err != nil {
		m.metrics.RecordError("token_sentiment")
		m.log.Error("coin detail fetch failed", applogger.String("token", tokenID), applogger.Error(err))
		return nil
	}

	score := scoring.TokenScore(detail.Change24h, detail.Change7d, detail.Change30d,
		detail.RedditSubscribers, detail.TwitterFollowers, m.thresholds.Community)

	result := &models.TokenSentiment{
		Token:          tokenID,
		Name:           detail.Name,
		Symbol:         upperSymbol(detail.Symbol),
		Sentiment:      scoring.Classify(score, m.thresholds.TokenSentiment),
		Score:          score,
		PriceUSD:       detail.PriceUSD,
		PriceDisplay:   util.FormatCurrency(detail.PriceUSD),
		Change24h:      detail.Change24h,
		Change24hShown: util.FormatPercentage(detail.Change24h),
		Change7d:       detail.Change7d,
		Change7dShown:  util.FormatPercentage(detail.Change7d),
		Change30d:      detail.Change30d,
		Change30dShown: util.FormatPercentage(detail.Change30d),
		MarketCapUSD:   detail.MarketCapUSD,
		MarketCapShown: util.FormatCurrency(detail.MarketCapUSD),
		Volume24hUSD:   detail.Volume24hUSD,
		Volume24hShown: util.FormatCurrency(detail.Volume24hUSD),
	}

	m.store(ctx, key, result, m.sentimentTTL)
	return result
}

// TradingSignals evaluates the signal rules on top of the token sentiment
// read. A non-nil report always carries at least one signal.
func (m *MarketAnalyzer) TradingSignals(ctx context.Context, tokenID string) *models.SignalReport {
	ts := m.TokenSentiment(ctx, tokenID)
	if ts == nil {
		return nil
	}

	signals := scoring.Evaluate(ts.Change24h, ts.Change7d, ts.Change30d,
		ts.Change24hShown, ts.Change7dShown, ts.Change30dShown, m.thresholds.Signals)

	report := &models.SignalReport{
		Token:        tokenID,
		Name:         ts.Name,
		Symbol:       ts.Symbol,
		PriceDisplay: ts.PriceDisplay,
		Signals:      signals,
	}

	m.fanOut(ctx, report)
	return report
}

// EntryRecommendation advises on entering a yield position for a token.
func (m *MarketAnalyzer) EntryRecommendation(ctx context.Context, tokenID string) *models.EntryRecommendation {
	ts := m.TokenSentiment(ctx, tokenID)
	report := m.TradingSignals(ctx, tokenID)
	if ts == nil || report == nil {
		return nil
	}

	enter, confidence, reasoning := scoring.EntryAdvice(report.Signals, ts.Sentiment)
	return &models.EntryRecommendation{
		Token:        tokenID,
		Name:         ts.Name,
		Symbol:       ts.Symbol,
		PriceDisplay: ts.PriceDisplay,
		EnterNow:     enter,
		Confidence:   confidence,
		Reasoning:    reasoning,
	}
}

// fanOut persists and publishes the report best-effort; either sink being
// down never fails the request.
func (m *MarketAnalyzer) fanOut(ctx context.Context, report *models.SignalReport) {
	if m.recorder != nil {
		if err := m.recorder.Record(ctx, time.Now().UTC(), report); err != nil {
			m.metrics.RecordError("signal_record")
			m.log.Warn("signal record failed", applogger.String("token", report.Token), applogger.Error(err))
		}
	}
	if m.publisher != nil {
		if err := m.publisher.Publish(ctx, report); err != nil {
			m.metrics.RecordError("signal_publish")
			m.log.Warn("signal publish failed", applogger.String("token", report.Token), applogger.Error(err))
		}
	}
}

// Tickers come lowercased from the upstream.
func upperSymbol(s string) string { return strings.ToUpper(s) }

func (m *MarketAnalyzer) store(ctx context.Context, key string, value interface{}, ttl time.Duration) {
	if err := m.cache.Set(ctx, key, value, ttl); err != nil {
		m.log.Warn("cache store failed", applogger.String("key", key), applogger.Error(err))
	}
}
