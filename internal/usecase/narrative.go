package usecase

import (
	"context"
	"fmt"
	"strings"

	"YieldPulse/internal/domain/models"
	drepo "YieldPulse/internal/domain/repository"
	applogger "YieldPulse/pkg/logger"
	"YieldPulse/pkg/util"
)

// maxNarrativeLen caps generated text at a conversational transport limit.
const maxNarrativeLen = 4000

// Narrator turns pipeline results into natural-language explanations via
// the completion provider. Every method degrades to a fixed apology string
// on failure; it never returns an error.
type Narrator struct {
	completions drepo.CompletionProvider
	log         *applogger.Logger
}

// NewNarrator creates the narrative generation adapter.
func NewNarrator(completions drepo.CompletionProvider, log *applogger.Logger) *Narrator {
	return &Narrator{completions: completions, log: log}
}

func (n *Narrator) generate(ctx context.Context, op, prompt, apology string) string {
	out, err := n.completions.Complete(ctx, prompt)
	if err != nil {
		n.log.Error("completion failed", applogger.String("op", op), applogger.Error(err))
		return apology
	}
	return util.TruncateMessage(out, maxNarrativeLen)
}

// AnalyzeYield explains a single yield opportunity.
func (n *Narrator) AnalyzeYield(ctx context.Context, o models.YieldOpportunity) string {
	prompt := fmt.Sprintf(`Analyze this DeFi yield opportunity and provide insights:

Protocol: %s
Chain: %s
APY: %s
TVL: %s
Pool: %s
IlRisk: %s

Please provide:
1. A brief analysis of this yield opportunity
2. Potential risks to be aware of
3. A recommendation on whether this is a good opportunity for:
   a) Conservative investors
   b) Moderate risk investors
   c) High risk investors

Keep your response concise and focused on the most important factors.`,
		o.Protocol, o.Chain, o.APYDisplay, o.TVLDisplay, o.Name, orUnknown(o.IlRisk))

	return n.generate(ctx, "analyze_yield", prompt,
		"Sorry, I couldn't analyze this yield opportunity at this time.")
}

// TradingInsight narrates a token's outlook, optionally with market context.
func (n *Narrator) TradingInsight(ctx context.Context, ts *models.TokenSentiment, market *models.MarketSentiment) string {
	var b strings.Builder
	fmt.Fprintf(&b, `Provide trading insights for %s (%s):

Current price: %s
24h change: %s
7d change: %s
30d change: %s
Market cap: %s
24h volume: %s
Overall sentiment: %s
`,
		ts.Name, ts.Symbol, ts.PriceDisplay, ts.Change24hShown, ts.Change7dShown,
		ts.Change30dShown, ts.MarketCapShown, ts.Volume24hShown, ts.Sentiment)

	if market != nil {
		fmt.Fprintf(&b, "\nMarket context:\nOverall market sentiment: %s\nMarket 24h average change: %s\n",
			market.Sentiment, market.AvgChangeShown)
	}

	b.WriteString(`
Please provide:
1. A brief technical analysis based on the price movements
2. Key factors that might be influencing this token's price
3. Short-term outlook (24-48 hours)
4. Medium-term outlook (1-2 weeks)

Keep your response concise and focused on actionable insights.`)

	return n.generate(ctx, "trading_insight", b.String(),
		"Sorry, I couldn't generate trading insights at this time.")
}

// ExplainComparison walks through the differences between candidate pools.
func (n *Narrator) ExplainComparison(ctx context.Context, options []models.YieldOpportunity) string {
	var b strings.Builder
	b.WriteString("Compare these DeFi yield opportunities and explain the key differences:\n\n")
	for i, o := range options {
		fmt.Fprintf(&b, "Option %d:\nProtocol: %s\nChain: %s\nAPY: %s\nTVL: %s\n\n",
			i+1, o.Protocol, o.Chain, o.APYDisplay, o.TVLDisplay)
	}
	b.WriteString(`Please provide:
1. A comparison of the risk-reward profiles
2. Which option might be better for different investor types
3. Any notable advantages or disadvantages of each option

Keep your response concise and focused on helping the user make an informed decision.`)

	return n.generate(ctx, "explain_comparison", b.String(),
		"Sorry, I couldn't generate a comparison explanation at this time.")
}

// SummarizeMarket narrates the market-wide sentiment snapshot.
func (n *Narrator) SummarizeMarket(ctx context.Context, ms *models.MarketSentiment) string {
	prompt := fmt.Sprintf(`Summarize the current crypto market sentiment based on this data:

Overall market sentiment: %s
Average 24h change: %s

Top gainers:
%s

Top losers:
%s

Please provide:
1. A brief summary of the current market conditions
2. What this might mean for traders and investors
3. Key trends or patterns to watch

Keep your response concise and focused on actionable insights.`,
		ms.Sentiment, ms.AvgChangeShown, moverLines(ms.TopGainers), moverLines(ms.TopLosers))

	return n.generate(ctx, "summarize_market", prompt,
		"Sorry, I couldn't summarize market sentiment at this time.")
}

// ExplainEntry explains an entry recommendation in beginner's terms.
func (n *Narrator) ExplainEntry(ctx context.Context, rec *models.EntryRecommendation) string {
	advice := "Wait"
	if rec.EnterNow {
		advice = "Enter now"
	}
	lines := make([]string, 0, len(rec.Reasoning))
	for _, r := range rec.Reasoning {
		lines = append(lines, "- "+r)
	}

	prompt := fmt.Sprintf(`Explain this yield entry recommendation for %s (%s):

Current price: %s
Recommendation: %s
Confidence: %s

Reasoning:
%s

Please provide:
1. An explanation of this recommendation in simple terms
2. What factors are most important in this decision
3. What the user should watch for if they decide to wait

Keep your response conversational and easy to understand for someone new to DeFi.`,
		rec.Name, rec.Symbol, rec.PriceDisplay, advice, rec.Confidence, strings.Join(lines, "\n"))

	return n.generate(ctx, "explain_entry", prompt,
		"Sorry, I couldn't explain this recommendation at this time.")
}

func moverLines(movers []models.MarketMover) string {
	lines := make([]string, 0, len(movers))
	for _, m := range movers {
		lines = append(lines, fmt.Sprintf("%s (%s): %s", m.Name, m.Symbol, m.Change24hShown))
	}
	return strings.Join(lines, "\n")
}

func orUnknown(s string) string {
	if s == "" {
		return "Unknown"
	}
	return s
}
