package repository

import (
	"context"

	"CoinPulse/internal/domain/models"
)

// MarketLister returns the ranked-by-market-cap candidate listing.
type MarketLister interface {
	TopAssets(ctx context.Context, limit int) ([]models.Asset, error)
}

// KlineSource fetches hourly close/volume history for an exchange symbol.
type KlineSource interface {
	HourlyKlines(ctx context.Context, symbol string, limit int) (prices, volumes []float64, err error)
}

// FuturesSource fetches the optional derivatives snapshot for an exchange symbol.
type FuturesSource interface {
	Snapshot(ctx context.Context, symbol string) (*models.FuturesSnapshot, error)
}

// HeadlineSource produces the per-cycle news pool. Any failure collapses to
// an empty pool; callers never see an error from the news path.
type HeadlineSource interface {
	Fetch(ctx context.Context) []models.HeadlineItem
}

// ReportStore is the TTL-gated cache for the last aggregate report.
type ReportStore interface {
	// Load returns (nil, false) on miss. Staleness, absence and malformed
	// payloads are all misses, never errors.
	Load(ctx context.Context) (*models.AggregateReport, bool)
	// Store persists the report. Failures are logged by the implementation
	// and never surfaced.
	Store(ctx context.Context, r *models.AggregateReport)
}

// Metrics records operational counters for the report pipeline.
type Metrics interface {
	RecordCycle(outcome string)
	RecordCacheRead(hit bool)
	RecordAssetFailure(stage string)
	RecordFetchLatency(source string, seconds float64)
	RecordPanelSize(n int)
}
