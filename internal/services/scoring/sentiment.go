package scoring

import "YieldPulse/pkg/config"

// Weight of each momentum window in the token sentiment score.
// Recent movement dominates.
const (
	weight24h = 0.5
	weight7d  = 0.3
	weight30d = 0.2

	communityBonus = 1.0
)

// TokenScore computes the weighted momentum score for a token, adding the
// community bonus when either community floor is met.
func TokenScore(change24h, change7d, change30d float64, redditSubs, twitterFollowers int64, floors config.CommunityBonus) float64 {
	score := change24h*weight24h + change7d*weight7d + change30d*weight30d
	if redditSubs > int64(floors.RedditSubscribers) || twitterFollowers > int64(floors.TwitterFollowers) {
		score += communityBonus
	}
	return score
}

// Classify maps a numeric score to a sentiment label using the given bands.
func Classify(score float64, bands config.SentimentBands) string {
	switch {
	case score > bands.VeryBullish:
		return "very bullish"
	case score > bands.Bullish:
		return "bullish"
	case score < bands.VeryBearish:
		return "very bearish"
	case score < bands.Bearish:
		return "bearish"
	default:
		return "neutral"
	}
}
