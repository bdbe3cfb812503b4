package models

// Pool is a single yield pool as reported by the pools listing upstream.
type Pool struct {
	PoolID     string   `json:"pool"`
	Project    string   `json:"project"`
	Chain      string   `json:"chain"`
	Symbol     string   `json:"symbol"`
	APY        float64  `json:"apy"`
	TVLUsd     float64  `json:"tvlUsd"`
	Volatility *float64 `json:"volatility,omitempty"`
	IlRisk     string   `json:"ilRisk,omitempty"`
}

// YieldOpportunity is a scored, display-ready yield record.
// Raw values drive all computation; display strings are rendered once
// at assembly and carried alongside.
type YieldOpportunity struct {
	Name        string  `json:"name"`
	Protocol    string  `json:"protocol"`
	Chain       string  `json:"chain"`
	APY         float64 `json:"apy"`
	APYDisplay  string  `json:"apy_display"`
	TVLUsd      float64 `json:"tvl_usd"`
	TVLDisplay  string  `json:"tvl_display"`
	RiskScore   float64 `json:"risk_score"`
	RiskDisplay string  `json:"risk_display"`
	IlRisk      string  `json:"il_risk,omitempty"`
	URL         string  `json:"url,omitempty"`
}

// ProtocolComparison holds the outcome of comparing mean yields of two protocols.
type ProtocolComparison struct {
	ProtocolA       string  `json:"protocol_a"`
	ProtocolB       string  `json:"protocol_b"`
	MeanAPYA        float64 `json:"mean_apy_a"`
	MeanAPYB        float64 `json:"mean_apy_b"`
	MeanAPYADisplay string  `json:"mean_apy_a_display"`
	MeanAPYBDisplay string  `json:"mean_apy_b_display"`
	PoolCountA      int     `json:"pool_count_a"`
	PoolCountB      int     `json:"pool_count_b"`
	Difference      float64 `json:"difference"`
	DiffDisplay     string  `json:"difference_display"`
	Winner          string  `json:"winner"`
}
