package di

import (
	"fmt"

	"SpreadCast/internal/domain/repository"
	"SpreadCast/internal/handler/api"
	internalrepo "SpreadCast/internal/repository"
	"SpreadCast/internal/service/source"
	"SpreadCast/internal/usecase"
	pkgcache "SpreadCast/pkg/cache"
	"SpreadCast/pkg/config"
	xhttp "SpreadCast/pkg/http"
	applogger "SpreadCast/pkg/logger"
	"SpreadCast/pkg/metrics"
	"SpreadCast/pkg/server"
)

// ProvideLogger creates the application logger.
func ProvideLogger(cfg *config.Config) (*applogger.Logger, error) {
	l, err := applogger.New(&applogger.Config{
		Level:  cfg.Logger.Level,
		Format: cfg.Logger.Format,
		Output: cfg.Logger.Output,
	})
	if err != nil {
		return nil, fmt.Errorf("logger: %w", err)
	}
	return l, nil
}

// ProvideMetrics creates a Prometheus metrics recorder.
func ProvideMetrics() repository.Metrics {
	return metrics.New()
}

// ProvideCacheService creates the record cache backend (memory by default,
// memory+redis when layered is configured).
func ProvideCacheService(cfg *config.Config) (pkgcache.Service, error) {
	memOpts := []pkgcache.MemoryOption{}
	if cfg.Cache.MemoryMaxSize > 0 {
		memOpts = append(memOpts, pkgcache.WithMemoryMaxSize(cfg.Cache.MemoryMaxSize))
	}

	if cfg.Cache.Backend != "layered" {
		return pkgcache.NewMemoryCache(memOpts...), nil
	}

	redisCache, err := pkgcache.NewRedisCache(
		pkgcache.WithRedisHost(cfg.Cache.Redis.Host),
		pkgcache.WithRedisPort(cfg.Cache.Redis.Port),
		pkgcache.WithRedisPassword(cfg.Cache.Redis.Password),
		pkgcache.WithRedisDB(cfg.Cache.Redis.DB),
	)
	if err != nil {
		return nil, fmt.Errorf("redis cache: %w", err)
	}

	layeredOpts := []pkgcache.LayeredOption{}
	if cfg.Cache.MemoryMaxSize > 0 {
		layeredOpts = append(layeredOpts, pkgcache.WithLayeredMemorySize(cfg.Cache.MemoryMaxSize))
	}
	return pkgcache.NewLayeredCache(redisCache, layeredOpts...), nil
}

// ProvideRecordCache wraps the cache backend as a record cache.
func ProvideRecordCache(svc pkgcache.Service) repository.RecordCache {
	return internalrepo.NewRecordCache(svc)
}

// ProvideSourceFetcher creates the CSV source fetcher.
func ProvideSourceFetcher(cfg *config.Config) repository.SourceFetcher {
	return source.New(cfg.Source.FetchTimeout)
}

// ProvideLoader creates the record loader for the configured schema profile.
func ProvideLoader(cfg *config.Config) *usecase.Loader {
	return usecase.NewLoader(cfg.Source.Schema)
}

// ProvideForecastAggregator creates the pipeline use case.
func ProvideForecastAggregator(
	fetcher repository.SourceFetcher,
	cache repository.RecordCache,
	m repository.Metrics,
	loader *usecase.Loader,
	cfg *config.Config,
) *usecase.ForecastAggregator {
	return usecase.NewForecastAggregator(
		fetcher,
		cache,
		m,
		loader,
		cfg.Source.URL,
		cfg.Source.WindowDays,
		cfg.Source.CacheTTL,
	)
}

// ProvideHTTPHandler creates the Echo route handler.
func ProvideHTTPHandler(l *applogger.Logger, agg *usecase.ForecastAggregator) xhttp.Handler {
	return api.NewForecastEchoHandler(l, agg)
}

// ProvideApp creates the application server.
func ProvideApp(cfg *config.Config, l *applogger.Logger, handler xhttp.Handler) *server.App {
	return server.New(cfg, l, handler)
}
