package models

// Requests for the REST endpoints. Defined in domain for consistency and reuse.

type TopYieldsRequest struct {
	Limit  int     `query:"limit" json:"limit" default:"10" validate:"gte=1,lte=100"`
	MinTVL float64 `query:"min_tvl" json:"min_tvl" default:"1000000" validate:"gte=0"`
	Chain  string  `query:"chain" json:"chain"`
}

type ProtocolYieldsRequest struct {
	Name  string `query:"name" json:"name" validate:"required"`
	Limit int    `query:"limit" json:"limit" default:"5" validate:"gte=1,lte=100"`
}

type ChainYieldsRequest struct {
	Name  string `query:"name" json:"name" validate:"required"`
	Limit int    `query:"limit" json:"limit" default:"5" validate:"gte=1,lte=100"`
}

type CompareRequest struct {
	ProtocolA string `query:"a" json:"a" validate:"required"`
	ProtocolB string `query:"b" json:"b" validate:"required"`
}

// RecommendationsRequest deliberately does not constrain Risk to a fixed set;
// unknown tolerances fall back to medium in the pipeline.
type RecommendationsRequest struct {
	Risk  string `query:"risk" json:"risk" default:"medium"`
	Limit int    `query:"limit" json:"limit" default:"5" validate:"gte=1,lte=100"`
}

type TokenRequest struct {
	Token string `query:"token" json:"token" validate:"required"`
}

type YieldInsightRequest struct {
	Chain  string  `query:"chain" json:"chain"`
	Limit  int     `query:"limit" json:"limit" default:"3" validate:"gte=1,lte=10"`
	MinTVL float64 `query:"min_tvl" json:"min_tvl" default:"1000000" validate:"gte=0"`
}

type TradingInsightRequest struct {
	Token         string `query:"token" json:"token" validate:"required"`
	MarketContext bool   `query:"market_context" json:"market_context"`
}
