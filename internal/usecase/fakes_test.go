package usecase

import (
	"context"
	"time"

	"YieldPulse/internal/domain/models"
	drepo "YieldPulse/internal/domain/repository"
)

type fakePools struct {
	pools []models.Pool
	err   error
	calls int
}

func (f *fakePools) Pools(context.Context) ([]models.Pool, error) {
	f.calls++
	return f.pools, f.err
}

type fakeMarket struct {
	quote      *drepo.MarketQuote
	quoteErr   error
	entries    []drepo.MarketEntry
	entriesErr error
	detail     *drepo.CoinDetail
	detailErr  error
	calls      int
}

func (f *fakeMarket) SimplePrice(context.Context, string) (*drepo.MarketQuote, error) {
	f.calls++
	return f.quote, f.quoteErr
}

func (f *fakeMarket) TopMarkets(context.Context, int) ([]drepo.MarketEntry, error) {
	f.calls++
	return f.entries, f.entriesErr
}

func (f *fakeMarket) CoinDetail(context.Context, string) (*drepo.CoinDetail, error) {
	f.calls++
	return f.detail, f.detailErr
}

type fakeCompletions struct {
	reply      string
	err        error
	lastPrompt string
}

func (f *fakeCompletions) Complete(_ context.Context, prompt string) (string, error) {
	f.lastPrompt = prompt
	return f.reply, f.err
}

type fakeRecorder struct {
	reports []*models.SignalReport
	err     error
}

func (f *fakeRecorder) Init(context.Context) error { return nil }
func (f *fakeRecorder) Record(_ context.Context, _ time.Time, r *models.SignalReport) error {
	f.reports = append(f.reports, r)
	return f.err
}
func (f *fakeRecorder) Health(context.Context) error { return nil }
func (f *fakeRecorder) Close() error                 { return nil }

type fakePublisher struct {
	reports []*models.SignalReport
	err     error
}

func (f *fakePublisher) Publish(_ context.Context, r *models.SignalReport) error {
	f.reports = append(f.reports, r)
	return f.err
}
func (f *fakePublisher) Close() error { return nil }

type nopMetrics struct{}

func (nopMetrics) RecordUpstreamRequest(string, string) {}
func (nopMetrics) RecordError(string)                   {}
func (nopMetrics) RecordCacheLookup(string, string)     {}
func (nopMetrics) RecordLastPrice(string, float64)      {}
func (nopMetrics) RecordLatency(string, float64)        {}
