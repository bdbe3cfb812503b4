package di

import (
	"context"
	"fmt"
	"time"

	"YieldPulse/internal/domain/repository"
	"YieldPulse/internal/handler/api"
	internalrepo "YieldPulse/internal/repository"
	"YieldPulse/internal/service/coingecko"
	"YieldPulse/internal/service/completion"
	"YieldPulse/internal/service/defillama"
	"YieldPulse/internal/service/ratelimit"
	"YieldPulse/internal/usecase"
	"YieldPulse/pkg/cache"
	pkgch "YieldPulse/pkg/clickhouse"
	"YieldPulse/pkg/config"
	xhttp "YieldPulse/pkg/http"
	pkgkafka "YieldPulse/pkg/kafka"
	applogger "YieldPulse/pkg/logger"
	"YieldPulse/pkg/metrics"
	"YieldPulse/pkg/server"
)

// ProvideLogger creates the application logger.
func ProvideLogger(cfg *config.Config) (*applogger.Logger, error) {
	return applogger.New(&applogger.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Output: cfg.Logging.Output,
	})
}

// ProvideMetrics creates the Prometheus metrics recorder.
func ProvideMetrics() repository.Metrics {
	return metrics.New()
}

// ProvideCache creates the result cache: memory-only, or layered with
// Redis when enabled.
func ProvideCache(cfg *config.Config) (cache.Service, error) {
	memOpts := []cache.MemoryOption{cache.WithMemoryMaxSize(cfg.Cache.MemoryMaxSize)}
	if !cfg.Cache.Redis.Enabled {
		return cache.NewMemoryCache(memOpts...), nil
	}

	redisCache, err := cache.NewRedisCache(
		cache.WithRedisHost(cfg.Cache.Redis.Host),
		cache.WithRedisPort(cfg.Cache.Redis.Port),
		cache.WithRedisPassword(cfg.Cache.Redis.Password),
		cache.WithRedisDB(cfg.Cache.Redis.DB),
		cache.WithRedisPrefix(cfg.Cache.Redis.Prefix),
	)
	if err != nil {
		return nil, fmt.Errorf("redis cache: %w", err)
	}
	return cache.NewLayeredCache(redisCache, memOpts...), nil
}

// ProvideRateLimiter creates the shared upstream rate limiter.
func ProvideRateLimiter() *ratelimit.Limiter {
	return ratelimit.New()
}

// ProvidePoolProvider creates the pools listing client.
func ProvidePoolProvider(cfg *config.Config, m repository.Metrics) repository.PoolProvider {
	return defillama.New(cfg.DeFiLlama.PoolsURL, cfg.DeFiLlama.Timeout, m)
}

// ProvideMarketDataProvider creates the market data client.
func ProvideMarketDataProvider(cfg *config.Config, limiter *ratelimit.Limiter, m repository.Metrics) repository.MarketDataProvider {
	return coingecko.New(cfg.CoinGecko.BaseURL, cfg.CoinGecko.Timeout, limiter,
		cfg.CoinGecko.RateCapacity, cfg.CoinGecko.RateRefill, m)
}

// ProvideCompletionProvider creates the chat completion client.
func ProvideCompletionProvider(cfg *config.Config, m repository.Metrics) repository.CompletionProvider {
	return completion.New(cfg.Completion.APIURL, cfg.Completion.APIKey, m,
		completion.WithModel(cfg.Completion.Model),
		completion.WithSampling(cfg.Completion.Temperature, cfg.Completion.MaxTokens),
		completion.WithTimeout(cfg.Completion.Timeout),
	)
}

// ProvideRecorder creates the ClickHouse signal history when enabled.
func ProvideRecorder(cfg *config.Config) (repository.Recorder, error) {
	if !cfg.History.Enabled {
		return nil, nil
	}

	client, err := pkgch.NewClient(
		pkgch.WithHost(cfg.History.Host),
		pkgch.WithPort(cfg.History.Port),
		pkgch.WithDatabase(cfg.History.Database),
		pkgch.WithCredentials(cfg.History.User, cfg.History.Password),
		pkgch.WithTimeouts(cfg.History.DialTimeout, cfg.History.ReadTimeout),
	)
	if err != nil {
		return nil, fmt.Errorf("clickhouse client: %w", err)
	}

	recorder := internalrepo.NewSignalHistory(client.DB(), cfg.History.Database+".signal_history")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := recorder.Init(ctx); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("signal history schema: %w", err)
	}

	return recorder, nil
}

// ProvidePublisher creates the Kafka signal publisher when enabled.
func ProvidePublisher(cfg *config.Config) (repository.Publisher, error) {
	if !cfg.Events.Enabled {
		return nil, nil
	}

	producer, err := pkgkafka.NewProducer(
		pkgkafka.WithBrokers(cfg.Events.Brokers),
		pkgkafka.WithCompression(cfg.Events.Compression),
		pkgkafka.WithRequiredAcks(cfg.Events.RequiredAcks),
		pkgkafka.WithTimeouts(cfg.Events.WriteTimeout, cfg.Events.ReadTimeout),
		pkgkafka.WithHashByKey(true),
	)
	if err != nil {
		return nil, fmt.Errorf("kafka producer: %w", err)
	}

	return internalrepo.NewSignalEvents(producer, cfg.Events.Topic), nil
}

// ProvideYieldAggregator creates the yield aggregation pipeline.
func ProvideYieldAggregator(pools repository.PoolProvider, c cache.Service, cfg *config.Config, m repository.Metrics, log *applogger.Logger) *usecase.YieldAggregator {
	return usecase.NewYieldAggregator(pools, c, cfg.DeFiLlama.CacheTTL, cfg.Thresholds, m, log)
}

// ProvideMarketAnalyzer creates the market analysis pipeline.
func ProvideMarketAnalyzer(market repository.MarketDataProvider, c cache.Service, cfg *config.Config, recorder repository.Recorder, publisher repository.Publisher, m repository.Metrics, log *applogger.Logger) *usecase.MarketAnalyzer {
	return usecase.NewMarketAnalyzer(market, c, cfg.CoinGecko.PriceTTL, cfg.CoinGecko.SentimentTTL,
		cfg.Thresholds, recorder, publisher, m, log)
}

// ProvideNarrator creates the narrative generation adapter.
func ProvideNarrator(completions repository.CompletionProvider, log *applogger.Logger) *usecase.Narrator {
	return usecase.NewNarrator(completions, log)
}

// ProvideHandler assembles the HTTP route groups.
func ProvideHandler(log *applogger.Logger, agg *usecase.YieldAggregator, analyzer *usecase.MarketAnalyzer, narrator *usecase.Narrator) xhttp.Handler {
	return api.NewHandler(
		api.NewYieldsEchoHandler(log, agg),
		api.NewMarketEchoHandler(log, analyzer),
		api.NewInsightsEchoHandler(log, agg, analyzer, narrator),
	)
}

// ProvideApp creates the application with its shutdown closers.
func ProvideApp(cfg *config.Config, log *applogger.Logger, handler xhttp.Handler, c cache.Service, recorder repository.Recorder, publisher repository.Publisher) *server.App {
	closers := make([]server.Closer, 0, 3)
	closers = append(closers, c)
	if recorder != nil {
		closers = append(closers, recorder)
	}
	if publisher != nil {
		closers = append(closers, publisher)
	}
	return server.New(cfg, log, handler, closers...)
}
