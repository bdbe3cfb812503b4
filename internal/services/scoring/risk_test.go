package scoring

import (
	"math"
	"testing"
)

func TestRiskScoreBounds(t *testing.T) {
	cases := []struct {
		name       string
		volatility float64
		liquidity  float64
		ageDays    float64
	}{
		{"calm deep old", 0.1, 50_000_000, 2000},
		{"wild shallow new", 5, 1000, 1},
		{"medium", 0.5, 5_000_000, 365},
		{"zero everything", 0, 0, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := RiskScore(tc.volatility, tc.liquidity, tc.ageDays)
			if got < 0 || got > 10 {
				t.Fatalf("score %v out of [0,10]", got)
			}
		})
	}
}

func TestRiskScoreKnownValue(t *testing.T) {
	// vol 0.5 -> 5, liq 5M -> 5, age 365 -> 0
	got := RiskScore(0.5, 5_000_000, 365)
	want := 5*0.5 + 5*0.3 + 0*0.2
	if math.Abs(got-want) > 1e-9 {
		t.Fatalf("got %v want %v", got, want)
	}
}

func TestRiskScoreMonotonicInVolatility(t *testing.T) {
	low := RiskScore(0.2, 5_000_000, 365)
	high := RiskScore(0.8, 5_000_000, 365)
	if high <= low {
		t.Fatalf("expected higher volatility to raise risk: %v <= %v", high, low)
	}
}

func TestRiskScoreNonFiniteInputs(t *testing.T) {
	cases := []struct {
		name string
		vol  float64
		liq  float64
		age  float64
	}{
		{"nan volatility", math.NaN(), 1_000_000, 365},
		{"nan liquidity", 0.5, math.NaN(), 365},
		{"inf age", 0.5, 1_000_000, math.Inf(1)},
		{"neg inf volatility", math.Inf(-1), 1_000_000, 365},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := RiskScore(tc.vol, tc.liq, tc.age); got != 5 {
				t.Fatalf("got %v want 5", got)
			}
		})
	}
}
