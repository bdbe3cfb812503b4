package scoring

import (
	"fmt"

	"YieldPulse/internal/domain/models"
	"YieldPulse/pkg/config"
)

// Signal names produced by Evaluate.
const (
	SignalStrongBuy  = "strong_buy"
	SignalBuy        = "buy"
	SignalStrongSell = "strong_sell"
	SignalSell       = "sell"
	SignalBuyDip     = "buy_dip"
	SignalSellRally  = "sell_rally"
	SignalTakeProfit = "take_profit"
	SignalAccumulate = "accumulate"
	SignalNeutral    = "neutral"
)

// Evaluate runs the signal rules over the three momentum windows, in order:
// short-term on the 24h change, medium-term on the 7d/24h divergence,
// long-term on the 30d change. When nothing fires it returns a single
// neutral signal, never an empty slice. The shown strings are the display
// forms of the raw changes and appear verbatim in the reasons.
func Evaluate(change24h, change7d, change30d float64, shown24, shown7, shown30 string, t config.SignalTriggers) []models.TradingSignal {
	var signals []models.TradingSignal

	switch {
	case change24h > t.Strong:
		signals = append(signals, models.TradingSignal{
			Type:   "short_term",
			Signal: SignalStrongBuy,
			Reason: fmt.Sprintf("Price up %s in last 24 hours", shown24),
		})
	case change24h > t.Mild:
		signals = append(signals, models.TradingSignal{
			Type:   "short_term",
			Signal: SignalBuy,
			Reason: fmt.Sprintf("Price up %s in last 24 hours", shown24),
		})
	case change24h < -t.Strong:
		signals = append(signals, models.TradingSignal{
			Type:   "short_term",
			Signal: SignalStrongSell,
			Reason: fmt.Sprintf("Price down %s in last 24 hours", shown24),
		})
	case change24h < -t.Mild:
		signals = append(signals, models.TradingSignal{
			Type:   "short_term",
			Signal: SignalSell,
			Reason: fmt.Sprintf("Price down %s in last 24 hours", shown24),
		})
	}

	if change7d > 0 && change24h < 0 {
		signals = append(signals, models.TradingSignal{
			Type:   "medium_term",
			Signal: SignalBuyDip,
			Reason: fmt.Sprintf("Positive 7-day trend (%s) with recent dip (%s)", shown7, shown24),
		})
	} else if change7d < 0 && change24h > 0 {
		signals = append(signals, models.TradingSignal{
			Type:   "medium_term",
			Signal: SignalSellRally,
			Reason: fmt.Sprintf("Negative 7-day trend (%s) with recent rally (%s)", shown7, shown24),
		})
	}

	if change30d > t.LongTerm {
		signals = append(signals, models.TradingSignal{
			Type:   "long_term",
			Signal: SignalTakeProfit,
			Reason: fmt.Sprintf("Price up %s in last 30 days, consider taking profits", shown30),
		})
	} else if change30d < -t.LongTerm {
		signals = append(signals, models.TradingSignal{
			Type:   "long_term",
			Signal: SignalAccumulate,
			Reason: fmt.Sprintf("Price down %s in last 30 days, potential accumulation zone", shown30),
		})
	}

	if len(signals) == 0 {
		signals = append(signals, models.TradingSignal{
			Type:   "general",
			Signal: SignalNeutral,
			Reason: "No clear trading signals at this time",
		})
	}

	return signals
}
