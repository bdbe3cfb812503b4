package usecase

import (
	"context"
	"fmt"
	"net/url"
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

const defillamaYieldsURL = "https://defillama.com/yields"

// YieldAggregator assembles scored yield views from the pools upstream.
// Failures never cross this boundary: every operation logs the cause and
// returns an empty result.
type YieldAggregator struct {
	pools    drepo.PoolProvider
	cache    cache.Service
	cacheTTL time.Duration
	risk     config.Thresholds
	metrics  drepo.Metrics
	log      *applogger.Logger
}

// NewYieldAggregator creates the yield aggregation pipeline.
func NewYieldAggregator(pools drepo.PoolProvider, c cache.Service, cacheTTL time.Duration, thresholds config.Thresholds, metrics drepo.Metrics, log *applogger.Logger) *YieldAggregator {
	return &YieldAggregator{
		pools:    pools,
		cache:    c,
		cacheTTL: cacheTTL,
		risk:     thresholds,
		metrics:  metrics,
		log:      log,
	}
}

// TopYields returns the highest-APY pools at or above minTVL, optionally
// restricted to an exact chain name.
func (a *YieldAggregator) TopYields(ctx context.Context, limit int, minTVL float64, chain string) []models.YieldOpportunity {
	key := cache.GenerateKeyWithParams("top_yields", limit, minTVL, chain)
	if hit, ok := a.cached(ctx, "top_yields", key); ok {
		return hit
	}

	pools, err := a.fetchPools(ctx, "top_yields")
	if err != nil {
		return nil
	}

	filtered := pools[:0:0]
	for _, p := range pools {
		if p.TVLUsd < minTVL {
			continue
		}
		if chain != "" && p.Chain != chain {
			continue
		}
		filtered = append(filtered, p)
	}

	top := topByAPY(filtered, limit)
	results := make([]models.YieldOpportunity, 0, len(top))
	for _, p := range top {
		o := a.opportunity(p)
		o.URL = projectURL(p.Project)
		results = append(results, o)
	}

	a.store(ctx, key, results)
	return results
}

// ByProtocol returns the top pools of a single protocol, matched
// case-insensitively on the project name.
func (a *YieldAggregator) ByProtocol(ctx context.Context, name string, limit int) []models.YieldOpportunity {
	key := cache.GenerateKeyWithParams("protocol_yields", name, limit)
	if hit, ok := a.cached(ctx, "protocol_yields", key); ok {
		return hit
	}

	pools, err := a.fetchPools(ctx, "protocol_yields")
	if err != nil {
		return nil
	}

	want := strings.ToLower(name)
	filtered := pools[:0:0]
	for _, p := range pools {
		if strings.ToLower(p.Project) == want {
			filtered = append(filtered, p)
		}
	}

	top := topByAPY(filtered, limit)
	results := make([]models.YieldOpportunity, 0, len(top))
	for _, p := range top {
		o := a.opportunity(p)
		o.URL = projectURL(name)
		results = append(results, o)
	}

	a.store(ctx, key, results)
	return results
}

// ByChain returns the top pools on a single chain, matched
// case-insensitively on the chain name.
func (a *YieldAggregator) ByChain(ctx context.Context, name string, limit int) []models.YieldOpportunity {
	key := cache.GenerateKeyWithParams("chain_yields", name, limit)
	if hit, ok := a.cached(ctx, "chain_yields", key); ok {
		return hit
	}

	pools, err := a.fetchPools(ctx, "chain_yields")
	if err != nil {
		return nil
	}

	want := strings.ToLower(name)
	filtered := pools[:0:0]
	for _, p := range pools {
		if strings.ToLower(p.Chain) == want {
			filtered = append(filtered, p)
		}
	}

	top := topByAPY(filtered, limit)
	results := make([]models.YieldOpportunity, 0, len(top))
	for _, p := range top {
		o := a.opportunity(p)
		o.URL = chainURL(name)
		results = append(results, o)
	}

	a.store(ctx, key, results)
	return results
}

// Compare contrasts the mean APY of two protocols' top pools. An empty
// result for a protocol counts as a zero mean. Winner is decided by strict
// greater-than, so a tie goes to the second operand.
func (a *YieldAggregator) Compare(ctx context.Context, protocolA, protocolB string) models.ProtocolComparison {
	poolsA := a.ByProtocol(ctx, protocolA, defaultProtocolLimit)
	poolsB := a.ByProtocol(ctx, protocolB, defaultProtocolLimit)

	meanA := meanAPY(poolsA)
	meanB := meanAPY(poolsB)

	winner := protocolB
	if meanA > meanB {
		winner = protocolA
	}

	return models.ProtocolComparison{
		ProtocolA:       protocolA,
		ProtocolB:       protocolB,
		MeanAPYA:        meanA,
		MeanAPYB:        meanB,
		MeanAPYADisplay: util.FormatPercentage(meanA),
		MeanAPYBDisplay: util.FormatPercentage(meanB),
		PoolCountA:      len(poolsA),
		PoolCountB:      len(poolsB),
		Difference:      meanA - meanB,
		DiffDisplay:     util.FormatPercentage(meanA - meanB),
		Winner:          winner,
	}
}

const defaultProtocolLimit = 5

// Recommendations filters pools by the risk tolerance profile and returns
// the highest-APY survivors. Unknown tolerances fall back to medium.
func (a *YieldAggregator) Recommendations(ctx context.Context, riskTolerance string, limit int) []models.YieldOpportunity {
	profile := a.profile(riskTolerance)

	pools, err := a.fetchPools(ctx, "recommendations")
	if err != nil {
		return nil
	}

	filtered := pools[:0:0]
	for _, p := range pools {
		if p.TVLUsd < profile.MinTVL {
			continue
		}
		if poolVolatility(p) > profile.MaxVolatility {
			continue
		}
		filtered = append(filtered, p)
	}

	top := topByAPY(filtered, limit)
	results := make([]models.YieldOpportunity, 0, len(top))
	for _, p := range top {
		o := a.opportunity(p)
		o.URL = projectURL(p.Project)
		results = append(results, o)
	}
	return results
}

func (a *YieldAggregator) profile(tolerance string) config.RiskProfile {
	switch strings.ToLower(tolerance) {
	case "low":
		return a.risk.RiskLow
	case "high":
		return a.risk.RiskHigh
	default:
		return a.risk.RiskMedium
	}
}

func (a *YieldAggregator) fetchPools(ctx context.Context, op string) ([]models.Pool, error) {
	start := time.Now()
	pools, err := a.pools.Pools(ctx)
	a.metrics.RecordLatency(op, time.Since(start).Seconds())
	if err != nil {
		a.metrics.RecordError(op)
		a.log.Error("pools fetch failed", applogger.String("op", op), applogger.Error(err))
		return nil, err
	}
	return pools, nil
}

func (a *YieldAggregator) cached(ctx context.Context, op, key string) ([]models.YieldOpportunity, bool) {
	var hit []models.YieldOpportunity
	if err := a.cache.Get(ctx, key, &hit); err == nil {
		a.metrics.RecordCacheLookup(op, "hit")
		return hit, true
	}
	a.metrics.RecordCacheLookup(op, "miss")
	return nil, false
}

func (a *YieldAggregator) store(ctx context.Context, key string, results []models.YieldOpportunity) {
	if err := a.cache.Set(ctx, key, results, a.cacheTTL); err != nil {
		a.log.Warn("cache store failed", applogger.String("key", key), applogger.Error(err))
	}
}

func (a *YieldAggregator) opportunity(p models.Pool) models.YieldOpportunity {
	risk := scoring.RiskScore(poolVolatility(p), p.TVLUsd, scoring.DefaultProtocolAgeDays)
	return models.YieldOpportunity{
		Name:        p.Symbol,
		Protocol:    p.Project,
		Chain:       p.Chain,
		APY:         p.APY,
		APYDisplay:  util.FormatPercentage(p.APY),
		TVLUsd:      p.TVLUsd,
		TVLDisplay:  util.FormatCurrency(p.TVLUsd),
		RiskScore:   risk,
		RiskDisplay: util.FormatRiskScore(risk),
		IlRisk:      p.IlRisk,
	}
}

func poolVolatility(p models.Pool) float64 {
	if p.Volatility != nil {
		return *p.Volatility
	}
	return scoring.DefaultVolatility
}

func topByAPY(pools []models.Pool, limit int) []models.Pool {
	sorted := make([]models.Pool, len(pools))
	copy(sorted, pools)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].APY > sorted[j].APY })
	if limit > 0 && len(sorted) > limit {
		sorted = sorted[:limit]
	}
	return sorted
}

func meanAPY(pools []models.YieldOpportunity) float64 {
	if len(pools) == 0 {
		return 0
	}
	var sum float64
	for _, p := range pools {
		sum += p.APY
	}
	return sum / float64(len(pools))
}

func projectURL(project string) string {
	return fmt.Sprintf("%s?project=%s", defillamaYieldsURL, url.QueryEscape(project))
}

func chainURL(chain string) string {
	return fmt.Sprintf("%s?chain=%s", defillamaYieldsURL, url.QueryEscape(chain))
}
