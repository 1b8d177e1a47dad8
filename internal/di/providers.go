package di

import (
	"fmt"

	"CoinPulse/internal/domain/repository"
	"CoinPulse/internal/handler/api"
	internalrepo "CoinPulse/internal/repository"
	"CoinPulse/internal/service/binance"
	"CoinPulse/internal/service/coingecko"
	"CoinPulse/internal/service/news"
	"CoinPulse/internal/service/ratelimit"
	"CoinPulse/internal/usecase"
	"CoinPulse/pkg/cache"
	"CoinPulse/pkg/config"
	xhttp "CoinPulse/pkg/http"
	"CoinPulse/pkg/logger"
	"CoinPulse/pkg/metrics"
	"CoinPulse/pkg/server"
)

// ProvideLogger creates the application logger.
func ProvideLogger(cfg *config.Config) (*logger.Logger, error) {
	l, err := logger.New(&logger.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Output: cfg.Logging.Output,
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

// ProvideHTTPClient creates the shared outbound HTTP client.
func ProvideHTTPClient(cfg *config.Config) *xhttp.Client {
	return xhttp.NewClient(
		xhttp.WithTimeout(cfg.Markets.Timeout),
		xhttp.WithUserAgent(cfg.Markets.UserAgent),
	)
}

// ProvideMarketCache creates the market-listing cache. Memory by default,
// Redis-backed when configured.
func ProvideMarketCache(cfg *config.Config) (cache.Service, error) {
	if !cfg.Cache.Redis.Enabled {
		return cache.NewMemoryCache(), nil
	}
	rc, err := cache.NewRedisCache(
		cache.WithRedisAddr(cfg.Cache.Redis.Addr),
		cache.WithRedisPassword(cfg.Cache.Redis.Password),
		cache.WithRedisDB(cfg.Cache.Redis.DB),
	)
	if err != nil {
		return nil, fmt.Errorf("redis cache: %w", err)
	}
	return cache.NewLayeredCache(rc), nil
}

// ProvideLimiter creates the outbound request rate limiter.
func ProvideLimiter() *ratelimit.Limiter {
	// CoinGecko free tier tolerates roughly 30 calls/min.
	return ratelimit.New(5, 0.5)
}

// ProvideMarketLister creates the CoinGecko markets client.
func ProvideMarketLister(
	cfg *config.Config,
	client *xhttp.Client,
	marketCache cache.Service,
	limiter *ratelimit.Limiter,
	log *logger.Logger,
	m repository.Metrics,
) repository.MarketLister {
	return coingecko.New(cfg.Markets.CoinGeckoURL, client, marketCache, limiter, log, m)
}

// ProvideBinance creates the Binance spot and futures client.
func ProvideBinance(
	cfg *config.Config,
	client *xhttp.Client,
	limiter *ratelimit.Limiter,
	log *logger.Logger,
	m repository.Metrics,
) *binance.Client {
	return binance.New(cfg.Markets.BinanceURL, cfg.Markets.BinanceFuturesURL, client, limiter, log, m)
}

// ProvideKlineSource exposes the Binance client as a kline source.
func ProvideKlineSource(c *binance.Client) repository.KlineSource { return c }

// ProvideFuturesSource exposes the Binance client as a futures source.
func ProvideFuturesSource(c *binance.Client) repository.FuturesSource { return c }

// ProvideHeadlineSource creates the news subprocess runner.
func ProvideHeadlineSource(cfg *config.Config, log *logger.Logger) repository.HeadlineSource {
	return news.NewRunner(cfg.News.Command, cfg.News.OutputPath, cfg.News.WindowHours, cfg.News.Timeout, log)
}

// ProvideReportStore creates the single-file report cache.
func ProvideReportStore(cfg *config.Config, log *logger.Logger) repository.ReportStore {
	return internalrepo.NewFileReportStore(cfg.Report.CachePath, cfg.Report.CacheTTL, log)
}

// ProvideAssetSelector creates the panel selector.
func ProvideAssetSelector(lister repository.MarketLister) *usecase.AssetSelector {
	return usecase.NewAssetSelector(lister)
}

// ProvideSeriesProvider creates the weekly series acquirer.
func ProvideSeriesProvider(klines repository.KlineSource, log *logger.Logger) usecase.SeriesProvider {
	return usecase.NewSeriesAcquirer(klines, log)
}

// ProvideReportBuilder creates the report use case.
func ProvideReportBuilder(
	selector *usecase.AssetSelector,
	series usecase.SeriesProvider,
	futures repository.FuturesSource,
	headlines repository.HeadlineSource,
	store repository.ReportStore,
	m repository.Metrics,
	log *logger.Logger,
) *usecase.ReportBuilder {
	return usecase.NewReportBuilder(selector, series, futures, headlines, store, m, log)
}

// ProvideHandler creates the Echo report handler.
func ProvideHandler(log *logger.Logger, builder *usecase.ReportBuilder) xhttp.Handler {
	return api.NewReportEchoHandler(log, builder)
}

// ProvideApp creates the application server.
func ProvideApp(
	cfg *config.Config,
	log *logger.Logger,
	handler xhttp.Handler,
	marketCache cache.Service,
) *server.App {
	return server.New(cfg, log, handler, marketCache)
}
