package coingecko

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"CoinPulse/internal/domain/models"
	drepo "CoinPulse/internal/domain/repository"
	"CoinPulse/internal/service/ratelimit"
	pkgcache "CoinPulse/pkg/cache"
	xhttp "CoinPulse/pkg/http"
	xlogger "CoinPulse/pkg/logger"
)

const (
	listingCacheTTL = 60 * time.Second
	limiterKey      = "coingecko"
)

// Client implements MarketLister backed by the CoinGecko markets endpoint.
// The listing doubles as the fallback series source: each asset carries its
// embedded 7-day sparkline.
type Client struct {
	baseURL string
	http    *xhttp.Client
	cache   pkgcache.Service
	limiter *ratelimit.Limiter
	logger  *xlogger.Logger
	metrics drepo.Metrics
}

// New creates a CoinGecko client. cache may be nil to disable response caching.
func New(baseURL string, http *xhttp.Client, cache pkgcache.Service, limiter *ratelimit.Limiter, logger *xlogger.Logger, metrics drepo.Metrics) *Client {
	return &Client{
		baseURL: baseURL,
		http:    http,
		cache:   cache,
		limiter: limiter,
		logger:  logger,
		metrics: metrics,
	}
}

type marketRow struct {
	ID                string  `json:"id"`
	Symbol            string  `json:"symbol"`
	Name              string  `json:"name"`
	CurrentPrice      float64 `json:"current_price"`
	MarketCap         float64 `json:"market_cap"`
	CirculatingSupply float64 `json:"circulating_supply"`
	Sparkline         struct {
		Price []float64 `json:"price"`
	} `json:"sparkline_in_7d"`
}

// TopAssets fetches the ranked-by-market-cap listing with 7-day sparklines.
func (c *Client) TopAssets(ctx context.Context, limit int) ([]models.Asset, error) {
	key := pkgcache.GenerateKeyWithParams("markets", "usd", limit)
	if c.cache != nil {
		var cached []models.Asset
		if err := c.cache.Get(ctx, key, &cached); err == nil && len(cached) > 0 {
			return cached, nil
		}
	}

	if c.limiter != nil {
		c.limiter.Wait(ctx, limiterKey)
	}

	start := time.Now()
	var rows []marketRow
	err := c.http.GetJSON(ctx, c.baseURL+"/coins/markets", map[string][]string{
		"vs_currency": {"usd"},
		"order":       {"market_cap_desc"},
		"per_page":    {strconv.Itoa(limit)},
		"page":        {"1"},
		"sparkline":   {"true"},
	}, &rows)
	if c.metrics != nil {
		c.metrics.RecordFetchLatency("coingecko_markets", time.Since(start).Seconds())
	}
	if err != nil {
		return nil, fmt.Errorf("coingecko markets: %w", err)
	}

	assets := make([]models.Asset, 0, len(rows))
	for _, r := range rows {
		assets = append(assets, models.Asset{
			ID:                r.ID,
			Symbol:            r.Symbol,
			Name:              r.Name,
			CurrentPrice:      r.CurrentPrice,
			MarketCap:         r.MarketCap,
			CirculatingSupply: r.CirculatingSupply,
			Sparkline:         r.Sparkline.Price,
		})
	}

	if c.cache != nil {
		if err := c.cache.Set(ctx, key, assets, listingCacheTTL); err != nil {
			c.logger.Warn("markets cache write failed", xlogger.Error(err))
		}
	}
	return assets, nil
}
