//go:build wireinject
// +build wireinject

package di

import (
	"SpreadCast/pkg/config"
	"SpreadCast/pkg/server"

	"github.com/google/wire"
)

// InitializeApp wires up all dependencies and returns the application.
// Wire will generate the implementation of this function.
func InitializeApp(cfg *config.Config) (*server.App, error) {
	wire.Build(
		ProvideLogger,
		ProvideMetrics,

		// Record cache
		ProvideCacheService,
		ProvideRecordCache,

		// Source + pipeline
		ProvideSourceFetcher,
		ProvideLoader,
		ProvideForecastAggregator,

		// HTTP surface
		ProvideHTTPHandler,

		// Application server
		ProvideApp,
	)
	return &server.App{}, nil
}
