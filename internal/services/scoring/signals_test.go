package scoring

import (
	"testing"

	"YieldPulse/internal/domain/models"
	"YieldPulse/pkg/config"
	"YieldPulse/pkg/util"
)

func evalChanges(t *testing.T, c24, c7, c30 float64) []models.TradingSignal {
	t.Helper()
	return Evaluate(c24, c7, c30,
		util.FormatPercentage(c24),
		util.FormatPercentage(c7),
		util.FormatPercentage(c30),
		config.DefaultThresholds().Signals,
	)
}

func signalNames(signals []models.TradingSignal) []string {
	names := make([]string, 0, len(signals))
	for _, s := range signals {
		names = append(names, s.Signal)
	}
	return names
}

func TestEvaluateShortTerm(t *testing.T) {
	cases := []struct {
		change24h float64
		want      string
	}{
		{8.5, SignalStrongBuy},
		{3, SignalBuy},
		{-8.5, SignalStrongSell},
		{-3, SignalSell},
	}
	for _, tc := range cases {
		signals := evalChanges(t, tc.change24h, 0, 0)
		if len(signals) != 1 {
			t.Fatalf("change %v: got %d signals, want 1", tc.change24h, len(signals))
		}
		if signals[0].Signal != tc.want {
			t.Fatalf("change %v: got %q want %q", tc.change24h, signals[0].Signal, tc.want)
		}
		if signals[0].Type != "short_term" {
			t.Fatalf("change %v: got type %q", tc.change24h, signals[0].Type)
		}
	}
}

func TestEvaluateNeverEmpty(t *testing.T) {
	signals := evalChanges(t, 0, 0, 0)
	if len(signals) != 1 {
		t.Fatalf("got %d signals, want 1", len(signals))
	}
	got := signals[0]
	if got.Signal != SignalNeutral || got.Type != "general" {
		t.Fatalf("unexpected fallback signal %+v", got)
	}
	if got.Reason != "No clear trading signals at this time" {
		t.Fatalf("unexpected reason %q", got.Reason)
	}
}

func TestEvaluateMultipleRulesFire(t *testing.T) {
	// Down 6% on the day, up on the week, up 25% on the month.
	signals := evalChanges(t, -6, 3, 25)
	want := []string{SignalStrongSell, SignalBuyDip, SignalTakeProfit}
	names := signalNames(signals)
	if len(names) != len(want) {
		t.Fatalf("got signals %v, want %v", names, want)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Fatalf("got signals %v, want %v", names, want)
		}
	}
}

func TestEvaluateDivergenceRules(t *testing.T) {
	signals := evalChanges(t, -1, 4, 0)
	names := signalNames(signals)
	if len(names) != 1 || names[0] != SignalBuyDip {
		t.Fatalf("got %v, want [buy_dip]", names)
	}

	signals = evalChanges(t, 1, -4, 0)
	names = signalNames(signals)
	if len(names) != 1 || names[0] != SignalSellRally {
		t.Fatalf("got %v, want [sell_rally]", names)
	}
}

func TestEvaluateLongTerm(t *testing.T) {
	signals := evalChanges(t, 0, 0, -25)
	names := signalNames(signals)
	if len(names) != 1 || names[0] != SignalAccumulate {
		t.Fatalf("got %v, want [accumulate]", names)
	}
	if signals[0].Reason != "Price down -25.00% in last 30 days, potential accumulation zone" {
		t.Fatalf("unexpected reason %q", signals[0].Reason)
	}
}

func TestEvaluateReasonFormatting(t *testing.T) {
	signals := evalChanges(t, 8.5, 0, 0)
	if signals[0].Reason != "Price up 8.50% in last 24 hours" {
		t.Fatalf("unexpected reason %q", signals[0].Reason)
	}
}
