package scoring

import (
	"testing"

	"YieldPulse/internal/domain/models"
)

func sigs(names ...string) []models.TradingSignal {
	out := make([]models.TradingSignal, 0, len(names))
	for _, n := range names {
		out = append(out, models.TradingSignal{Signal: n})
	}
	return out
}

func TestEntryAdviceBuySignals(t *testing.T) {
	enter, conf, reasons := EntryAdvice(sigs(SignalBuy), "neutral")
	if !enter || conf != "medium" {
		t.Fatalf("enter=%v conf=%q", enter, conf)
	}
	if len(reasons) != 1 || reasons[0] != "Positive short or medium-term signals detected" {
		t.Fatalf("unexpected reasons %v", reasons)
	}
}

func TestEntryAdviceAccumulate(t *testing.T) {
	enter, conf, reasons := EntryAdvice(sigs(SignalAccumulate), "neutral")
	if !enter || conf != "high" {
		t.Fatalf("enter=%v conf=%q", enter, conf)
	}
	if len(reasons) != 1 || reasons[0] != "Token is in accumulation zone, good for yield positions" {
		t.Fatalf("unexpected reasons %v", reasons)
	}
}

func TestEntryAdviceBullishRaisesConfidence(t *testing.T) {
	enter, conf, reasons := EntryAdvice(sigs(SignalBuy), "bullish")
	if !enter || conf != "high" {
		t.Fatalf("enter=%v conf=%q", enter, conf)
	}
	if len(reasons) != 2 || reasons[1] != "Overall sentiment is bullish" {
		t.Fatalf("unexpected reasons %v", reasons)
	}
}

func TestEntryAdviceBullishWithoutSignals(t *testing.T) {
	// Sentiment alone does not trigger entry; confidence stays low.
	enter, conf, reasons := EntryAdvice(sigs(SignalNeutral), "very bullish")
	if enter || conf != "low" {
		t.Fatalf("enter=%v conf=%q", enter, conf)
	}
	if len(reasons) != 1 || reasons[0] != "Overall sentiment is very bullish" {
		t.Fatalf("unexpected reasons %v", reasons)
	}
}

func TestEntryAdviceBearishOverridesAccumulate(t *testing.T) {
	enter, conf, reasons := EntryAdvice(sigs(SignalAccumulate), "bearish")
	if enter {
		t.Fatal("bearish sentiment must block entry")
	}
	if conf != "high" {
		t.Fatalf("conf=%q want high", conf)
	}
	last := reasons[len(reasons)-1]
	if last != "Overall sentiment is bearish, consider waiting" {
		t.Fatalf("unexpected final reason %q", last)
	}
}

func TestEntryAdviceNoSignals(t *testing.T) {
	enter, conf, reasons := EntryAdvice(sigs(SignalNeutral), "neutral")
	if enter || conf != "low" {
		t.Fatalf("enter=%v conf=%q", enter, conf)
	}
	if len(reasons) != 1 || reasons[0] != "No strong signals in either direction" {
		t.Fatalf("unexpected reasons %v", reasons)
	}
}
