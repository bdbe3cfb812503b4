package scoring

import (
	"fmt"

	"YieldPulse/internal/domain/models"
)

// EntryAdvice decides whether to enter a yield position from fired signals
// and the token's sentiment label. Rules apply in order, so a bearish
// sentiment read overrides any earlier buy-side conclusion.
func EntryAdvice(signals []models.TradingSignal, sentiment string) (enterNow bool, confidence string, reasoning []string) {
	confidence = "low"

	fired := make(map[string]bool, len(signals))
	for _, s := range signals {
		fired[s.Signal] = true
	}

	if fired[SignalStrongBuy] || fired[SignalBuy] || fired[SignalBuyDip] {
		enterNow = true
		confidence = "medium"
		reasoning = append(reasoning, "Positive short or medium-term signals detected")
	}

	if fired[SignalAccumulate] {
		enterNow = true
		confidence = "high"
		reasoning = append(reasoning, "Token is in accumulation zone, good for yield positions")
	}

	switch sentiment {
	case "bullish", "very bullish":
		if enterNow {
			confidence = "high"
		}
		reasoning = append(reasoning, fmt.Sprintf("Overall sentiment is %s", sentiment))
	case "bearish", "very bearish":
		enterNow = false
		confidence = "high"
		reasoning = append(reasoning, fmt.Sprintf("Overall sentiment is %s, consider waiting", sentiment))
	}

	if len(reasoning) == 0 {
		reasoning = append(reasoning, "No strong signals in either direction")
	}

	return enterNow, confidence, reasoning
}
