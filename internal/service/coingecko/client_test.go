package coingecko

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"YieldPulse/internal/service/ratelimit"
)

type nopMetrics struct{}

func (nopMetrics) RecordUpstreamRequest(string, string) {}
func (nopMetrics) RecordError(string)                   {}
func (nopMetrics) RecordCacheLookup(string, string)     {}
func (nopMetrics) RecordLastPrice(string, float64)      {}
func (nopMetrics) RecordLatency(string, float64)        {}

func newTestClient(url string) *Client {
	return New(url, 5*time.Second, nil, 0, 0, nopMetrics{})
}

func TestSimplePrice(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/simple/price" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		q := r.URL.Query()
		if q.Get("ids") != "ethereum" || q.Get("vs_currencies") != "usd" || q.Get("include_24hr_change") != "true" {
			t.Errorf("unexpected query %v", q)
		}
		w.Write([]byte(`{"ethereum":{"usd":3150.42,"usd_24h_change":-1.8}}`))
	}))
	defer srv.Close()

	quote, err := newTestClient(srv.URL).SimplePrice(context.Background(), "ethereum")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if quote.PriceUSD != 3150.42 || quote.Change24h != -1.8 {
		t.Fatalf("unexpected quote %+v", quote)
	}
}

func TestSimplePriceUnknownToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	if _, err := newTestClient(srv.URL).SimplePrice(context.Background(), "nope"); err == nil {
		t.Fatal("expected error for missing token")
	}
}

func TestTopMarkets(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/coins/markets" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		q := r.URL.Query()
		if q.Get("order") != "market_cap_desc" || q.Get("per_page") != "10" {
			t.Errorf("unexpected query %v", q)
		}
		w.Write([]byte(`[
			{"id":"bitcoin","name":"Bitcoin","symbol":"btc","current_price":64000,"price_change_percentage_24h":2.1},
			{"id":"ethereum","name":"Ethereum","symbol":"eth","current_price":3150,"price_change_percentage_24h":-1.8}
		]`))
	}))
	defer srv.Close()

	entries, err := newTestClient(srv.URL).TopMarkets(context.Background(), 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("got %d entries, want 2", len(entries))
	}
	if entries[0].ID != "bitcoin" || entries[0].Change24h != 2.1 {
		t.Fatalf("unexpected first entry %+v", entries[0])
	}
}

func TestCoinDetail(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/coins/ethereum" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if r.URL.Query().Get("community_data") != "true" {
			t.Errorf("expected community_data=true")
		}
		w.Write([]byte(`{
			"id":"ethereum","name":"Ethereum","symbol":"eth",
			"market_data":{
				"current_price":{"usd":3150.42},
				"price_change_percentage_24h":-1.8,
				"price_change_percentage_7d":4.2,
				"price_change_percentage_30d":12.5,
				"market_cap":{"usd":380000000000},
				"total_volume":{"usd":15000000000}
			},
			"community_data":{"reddit_subscribers":2500000,"twitter_followers":3200000}
		}`))
	}))
	defer srv.Close()

	detail, err := newTestClient(srv.URL).CoinDetail(context.Background(), "ethereum")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if detail.Name != "Ethereum" || detail.Change7d != 4.2 || detail.RedditSubscribers != 2_500_000 {
		t.Fatalf("unexpected detail %+v", detail)
	}
}

func TestRateLimited(t *testing.T) {
	var calls int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.Write([]byte(`{"bitcoin":{"usd":64000,"usd_24h_change":2.1}}`))
	}))
	defer srv.Close()

	// One token, no refill: second call must be throttled client-side.
	c := New(srv.URL, 5*time.Second, ratelimit.New(), 1, 0, nopMetrics{})
	if _, err := c.SimplePrice(context.Background(), "bitcoin"); err != nil {
		t.Fatalf("first call failed: %v", err)
	}
	if _, err := c.SimplePrice(context.Background(), "bitcoin"); err == nil {
		t.Fatal("expected rate limit error")
	}
	if calls != 1 {
		t.Fatalf("upstream saw %d calls, want 1", calls)
	}
}
