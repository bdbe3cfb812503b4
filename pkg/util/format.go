package util

import (
	"fmt"
	"math"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var enPrinter = message.NewPrinter(language.English)

// FormatCurrency renders a USD amount with comma grouping and two decimals,
// e.g. 5000000 -> "$5,000,000.00". NaN and infinities render as "N/A".
func FormatCurrency(amount float64) string {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return "N/A"
	}
	return enPrinter.Sprintf("$%.2f", amount)
}

// FormatPercentage renders a percentage with two decimals, e.g. 8.5 -> "8.50%".
func FormatPercentage(value float64) string {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return "N/A"
	}
	return fmt.Sprintf("%.2f%%", value)
}

// FormatRiskScore renders a risk score out of ten, e.g. 4.25 -> "4.2/10".
func FormatRiskScore(score float64) string {
	if math.IsNaN(score) || math.IsInf(score, 0) {
		return "N/A"
	}
	return fmt.Sprintf("%.1f/10", score)
}

// TruncateMessage shortens a message to the transport size limit,
// appending an ellipsis when truncation happens.
func TruncateMessage(s string, max int) string {
	if max <= 3 || len(s) <= max {
		if len(s) <= max {
			return s
		}
		return s[:max]
	}
	return s[:max-3] + "..."
}

// FormatTimestamp formats a Unix timestamp as a human-readable date.
// Zero renders as "N/A".
func FormatTimestamp(ts int64) string {
	if ts == 0 {
		return "N/A"
	}
	return time.Unix(ts, 0).UTC().Format("2006-01-02 15:04:05")
}
