//go:build wireinject
// +build wireinject

package di

import (
	"YieldPulse/pkg/config"
	"YieldPulse/pkg/server"

	"github.com/google/wire"
)

// InitializeApp wires up all dependencies and returns the application.
// Wire will generate the implementation of this function.
func InitializeApp(cfg *config.Config) (*server.App, error) {
	wire.Build(
		// Observability
		ProvideLogger,
		ProvideMetrics,

		// Infrastructure
		ProvideCache,
		ProvideRateLimiter,

		// Upstream clients
		ProvidePoolProvider,
		ProvideMarketDataProvider,
		ProvideCompletionProvider,

		// Optional sinks
		ProvideRecorder,
		ProvidePublisher,

		// Use cases
		ProvideYieldAggregator,
		ProvideMarketAnalyzer,
		ProvideNarrator,

		// HTTP surface
		ProvideHandler,

		// Application server
		ProvideApp,
	)
	return &server.App{}, nil
}
