package models

// TokenPrice is a spot price snapshot for a single token.
type TokenPrice struct {
	Token          string  `json:"token"`
	PriceUSD       float64 `json:"price_usd"`
	PriceDisplay   string  `json:"price_display"`
	Change24h      float64 `json:"change_24h"`
	Change24hShown string  `json:"change_24h_display"`
}

// MarketMover is one entry in the gainers/losers lists.
type MarketMover struct {
	Name           string  `json:"name"`
	Symbol         string  `json:"symbol"`
	Change24h      float64 `json:"change_24h"`
	Change24hShown string  `json:"change_24h_display"`
}

// MarketSentiment is the market-wide mood derived from the top tokens by cap.
type MarketSentiment struct {
	Sentiment      string        `json:"sentiment"`
	AvgChange24h   float64       `json:"avg_change_24h"`
	AvgChangeShown string        `json:"avg_change_24h_display"`
	TopGainers     []MarketMover `json:"top_gainers"`
	TopLosers      []MarketMover `json:"top_losers"`
}

// TokenSentiment is the per-token sentiment read: weighted price momentum
// plus a community-size bonus.
type TokenSentiment struct {
	Token          string  `json:"token"`
	Name           string  `json:"name"`
	Symbol         string  `json:"symbol"`
	Sentiment      string  `json:"sentiment"`
	Score          float64 `json:"score"`
	PriceUSD       float64 `json:"price_usd"`
	PriceDisplay   string  `json:"price_display"`
	Change24h      float64 `json:"change_24h"`
	Change24hShown string  `json:"change_24h_display"`
	Change7d       float64 `json:"change_7d"`
	Change7dShown  string  `json:"change_7d_display"`
	Change30d      float64 `json:"change_30d"`
	Change30dShown string  `json:"change_30d_display"`
	MarketCapUSD   float64 `json:"market_cap_usd"`
	MarketCapShown string  `json:"market_cap_display"`
	Volume24hUSD   float64 `json:"volume_24h_usd"`
	Volume24hShown string  `json:"volume_24h_display"`
}

// TradingSignal is one fired signal rule.
type TradingSignal struct {
	Type   string `json:"type"`
	Signal string `json:"signal"`
	Reason string `json:"reason"`
}

// SignalReport bundles the signals fired for a token.
type SignalReport struct {
	Token        string          `json:"token"`
	Name         string          `json:"name"`
	Symbol       string          `json:"symbol"`
	PriceDisplay string          `json:"price_display"`
	Signals      []TradingSignal `json:"signals"`
}

// EntryRecommendation advises on entering a yield position for a token.
type EntryRecommendation struct {
	Token        string   `json:"token"`
	Name         string   `json:"name"`
	Symbol       string   `json:"symbol"`
	PriceDisplay string   `json:"price_display"`
	EnterNow     bool     `json:"enter_now"`
	Confidence   string   `json:"confidence"`
	Reasoning    []string `json:"reasoning"`
}
