package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/creasty/defaults"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Environment string `yaml:"environment"`
	Server      struct {
		Host            string        `yaml:"host" default:"0.0.0.0"`
		Port            int           `yaml:"port" default:"8080"`
		ReadTimeout     time.Duration `yaml:"read_timeout" default:"10s"`
		WriteTimeout    time.Duration `yaml:"write_timeout" default:"10s"`
		ShutdownTimeout time.Duration `yaml:"shutdown_timeout" default:"10s"`
	} `yaml:"server"`
	Logging struct {
		Level  string `yaml:"level" default:"info"`
		Format string `yaml:"format" default:"console"`
		Output string `yaml:"output" default:"stdout"`
	} `yaml:"logging"`
	DeFiLlama struct {
		PoolsURL string        `yaml:"pools_url" default:"https://yields.llama.fi/pools"`
		Timeout  time.Duration `yaml:"timeout" default:"30s"`
		CacheTTL time.Duration `yaml:"cache_ttl" default:"5m"`
	} `yaml:"defillama"`
	CoinGecko struct {
		BaseURL      string        `yaml:"base_url" default:"https://api.coingecko.com/api/v3"`
		Timeout      time.Duration `yaml:"timeout" default:"30s"`
		PriceTTL     time.Duration `yaml:"price_ttl" default:"5m"`
		SentimentTTL time.Duration `yaml:"sentiment_ttl" default:"30m"`
		// Token-bucket limit for the free API tier.
		RateCapacity float64 `yaml:"rate_capacity" default:"10"`
		RateRefill   float64 `yaml:"rate_refill" default:"0.5"`
	} `yaml:"coingecko"`
	Completion struct {
		APIURL      string        `yaml:"api_url" default:"https://api.fireworks.ai/inference/v1/chat/completions"`
		APIKey      string        `yaml:"api_key"`
		Model       string        `yaml:"model" default:"accounts/fireworks/models/llama-v3p1-70b-instruct"`
		Temperature float64       `yaml:"temperature" default:"0.7"`
		MaxTokens   int           `yaml:"max_tokens" default:"1000"`
		Timeout     time.Duration `yaml:"timeout" default:"60s"`
	} `yaml:"completion"`
	Cache struct {
		MemoryMaxSize int `yaml:"memory_max_size" default:"1000"`
		Redis         struct {
			Enabled  bool   `yaml:"enabled"`
			Host     string `yaml:"host" default:"localhost"`
			Port     int    `yaml:"port" default:"6379"`
			Password string `yaml:"password"`
			DB       int    `yaml:"db"`
			Prefix   string `yaml:"prefix" default:"yieldpulse"`
		} `yaml:"redis"`
	} `yaml:"cache"`
	History struct {
		Enabled      bool          `yaml:"enabled"`
		Host         string        `yaml:"host"`
		Port         int           `yaml:"port" default:"9000"`
		Database     string        `yaml:"database" default:"yieldpulse"`
		User         string        `yaml:"user" default:"default"`
		Password     string        `yaml:"password"`
		DialTimeout  time.Duration `yaml:"dial_timeout" default:"5s"`
		ReadTimeout  time.Duration `yaml:"read_timeout" default:"10s"`
		WriteTimeout time.Duration `yaml:"write_timeout" default:"10s"`
	} `yaml:"history"`
	Events struct {
		Enabled      bool          `yaml:"enabled"`
		Brokers      []string      `yaml:"brokers"`
		Topic        string        `yaml:"topic" default:"yieldpulse.signals"`
		RequiredAcks int           `yaml:"required_acks" default:"-1"`
		Compression  string        `yaml:"compression" default:"gzip"`
		WriteTimeout time.Duration `yaml:"write_timeout" default:"10s"`
		ReadTimeout  time.Duration `yaml:"read_timeout" default:"10s"`
	} `yaml:"events"`
	Thresholds Thresholds `yaml:"thresholds"`
}

// SentimentBands are the cutoffs that map a numeric momentum score to a label.
type SentimentBands struct {
	VeryBullish float64 `yaml:"very_bullish"`
	Bullish     float64 `yaml:"bullish"`
	Bearish     float64 `yaml:"bearish"`
	VeryBearish float64 `yaml:"very_bearish"`
}

// SignalTriggers are the percentage-change cutoffs for trading signal rules.
type SignalTriggers struct {
	Strong   float64 `yaml:"strong" default:"5"`
	Mild     float64 `yaml:"mild" default:"2"`
	LongTerm float64 `yaml:"long_term" default:"20"`
}

// CommunityBonus defines the community-size floors that add one point
// to the token sentiment score.
type CommunityBonus struct {
	RedditSubscribers int `yaml:"reddit_subscribers" default:"100000"`
	TwitterFollowers  int `yaml:"twitter_followers" default:"500000"`
}

// RiskProfile maps a risk tolerance to pool filter parameters.
type RiskProfile struct {
	MinTVL        float64 `yaml:"min_tvl"`
	MaxVolatility float64 `yaml:"max_volatility"`
}

// Thresholds groups every tunable cutoff in the scoring pipelines.
// All values are plain configuration, never computed.
type Thresholds struct {
	MarketSentiment SentimentBands `yaml:"market_sentiment"`
	TokenSentiment  SentimentBands `yaml:"token_sentiment"`
	Signals         SignalTriggers `yaml:"signals"`
	Community       CommunityBonus `yaml:"community"`
	RiskLow         RiskProfile    `yaml:"risk_low"`
	RiskMedium      RiskProfile    `yaml:"risk_medium"`
	RiskHigh        RiskProfile    `yaml:"risk_high"`
}

// DefaultThresholds returns the cutoffs the pipelines ship with.
func DefaultThresholds() Thresholds {
	return Thresholds{
		MarketSentiment: SentimentBands{VeryBullish: 5, Bullish: 2, Bearish: -2, VeryBearish: -5},
		TokenSentiment:  SentimentBands{VeryBullish: 10, Bullish: 5, Bearish: -5, VeryBearish: -10},
		Signals:         SignalTriggers{Strong: 5, Mild: 2, LongTerm: 20},
		Community:       CommunityBonus{RedditSubscribers: 100_000, TwitterFollowers: 500_000},
		RiskLow:         RiskProfile{MinTVL: 10_000_000, MaxVolatility: 0.3},
		RiskMedium:      RiskProfile{MinTVL: 1_000_000, MaxVolatility: 0.6},
		RiskHigh:        RiskProfile{MinTVL: 100_000, MaxVolatility: 1.0},
	}
}

// Load reads and parses a YAML configuration file.
func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var c Config
	if err := yaml.Unmarshal(b, &c); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if err := defaults.Set(&c); err != nil {
		return nil, fmt.Errorf("apply defaults: %w", err)
	}
	c.applyThresholdDefaults()

	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return &c, nil
}

// LoadWithEnv loads config from YAML and overrides with environment variables.
func LoadWithEnv(path string) (*Config, error) {
	c, err := Load(path)
	if err != nil {
		return nil, err
	}

	if v := os.Getenv("COMPLETION_API_KEY"); v != "" {
		c.Completion.APIKey = v
	}
	if v := os.Getenv("COMPLETION_MODEL"); v != "" {
		c.Completion.Model = v
	}
	if v := os.Getenv("DEFILLAMA_POOLS_URL"); v != "" {
		c.DeFiLlama.PoolsURL = v
	}
	if v := os.Getenv("COINGECKO_BASE_URL"); v != "" {
		c.CoinGecko.BaseURL = v
	}
	if v := os.Getenv("REDIS_HOST"); v != "" {
		c.Cache.Redis.Host = v
	}
	if v := os.Getenv("KAFKA_BROKERS"); v != "" {
		c.Events.Brokers = strings.Split(v, ",")
	}
	if v := os.Getenv("CLICKHOUSE_HOST"); v != "" {
		c.History.Host = v
	}

	return c, nil
}

// Sentiment bands and risk profiles default to the shipped cutoffs when the
// YAML leaves them entirely zero; a partially set block is taken as intentional.
func (c *Config) applyThresholdDefaults() {
	def := DefaultThresholds()
	if c.Thresholds.MarketSentiment == (SentimentBands{}) {
		c.Thresholds.MarketSentiment = def.MarketSentiment
	}
	if c.Thresholds.TokenSentiment == (SentimentBands{}) {
		c.Thresholds.TokenSentiment = def.TokenSentiment
	}
	if c.Thresholds.RiskLow == (RiskProfile{}) {
		c.Thresholds.RiskLow = def.RiskLow
	}
	if c.Thresholds.RiskMedium == (RiskProfile{}) {
		c.Thresholds.RiskMedium = def.RiskMedium
	}
	if c.Thresholds.RiskHigh == (RiskProfile{}) {
		c.Thresholds.RiskHigh = def.RiskHigh
	}
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Environment == "" {
		return fmt.Errorf("environment is required")
	}
	if c.DeFiLlama.PoolsURL == "" {
		return fmt.Errorf("defillama.pools_url is required")
	}
	if c.CoinGecko.BaseURL == "" {
		return fmt.Errorf("coingecko.base_url is required")
	}
	if c.Completion.Model == "" {
		return fmt.Errorf("completion.model is required")
	}
	if c.Events.Enabled && len(c.Events.Brokers) == 0 {
		return fmt.Errorf("events.brokers cannot be empty when events are enabled")
	}
	if c.History.Enabled && c.History.Host == "" {
		return fmt.Errorf("history.host is required when history is enabled")
	}
	if c.Thresholds.MarketSentiment.Bullish >= c.Thresholds.MarketSentiment.VeryBullish {
		return fmt.Errorf("thresholds.market_sentiment: bullish must be below very_bullish")
	}
	if c.Thresholds.TokenSentiment.Bullish >= c.Thresholds.TokenSentiment.VeryBullish {
		return fmt.Errorf("thresholds.token_sentiment: bullish must be below very_bullish")
	}
	return nil
}
