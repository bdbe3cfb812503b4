package scoring

import "math"

const (
	// DefaultVolatility is assumed when the upstream pool record carries none.
	DefaultVolatility = 0.5

	// DefaultProtocolAgeDays is assumed for every pool; the pools upstream
	// does not report protocol age.
	DefaultProtocolAgeDays = 365.0

	neutralRisk = 5.0
)

// RiskScore maps volatility, liquidity in USD and protocol age in days to a
// risk score in [0, 10]. Higher volatility, thinner liquidity and younger
// protocols all raise the score. Non-finite inputs yield the neutral score.
func RiskScore(volatility, liquidityUSD, ageDays float64) float64 {
	if !finite(volatility) || !finite(liquidityUSD) || !finite(ageDays) {
		return neutralRisk
	}

	volScore := math.Min(10, volatility*10)
	liqScore := math.Max(0, 10-liquidityUSD/1_000_000)
	ageScore := math.Max(0, 10-ageDays/30)

	score := volScore*0.5 + liqScore*0.3 + ageScore*0.2
	return math.Min(10, math.Max(0, score))
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
