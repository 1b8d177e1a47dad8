package usecase

import (
	"context"
	"fmt"
	"sync"
	"time"

	"CoinPulse/internal/domain/models"
	drepo "CoinPulse/internal/domain/repository"
	"CoinPulse/internal/service/binance"
	"CoinPulse/internal/service/news"
	"CoinPulse/internal/services/signals"
	xlogger "CoinPulse/pkg/logger"
)

// SeriesProvider yields one asset's weekly series.
type SeriesProvider interface {
	Acquire(ctx context.Context, asset models.Asset) (*models.Series, error)
}

// ReportBuilder runs one report cycle: cache read, panel selection, per-asset
// fan-out, aggregation and write-behind.
type ReportBuilder struct {
	selector  *AssetSelector
	series    SeriesProvider
	futures   drepo.FuturesSource
	headlines drepo.HeadlineSource
	store     drepo.ReportStore
	metrics   drepo.Metrics
	logger    *xlogger.Logger
}

func NewReportBuilder(
	selector *AssetSelector,
	series SeriesProvider,
	futures drepo.FuturesSource,
	headlines drepo.HeadlineSource,
	store drepo.ReportStore,
	metrics drepo.Metrics,
	logger *xlogger.Logger,
) *ReportBuilder {
	return &ReportBuilder{
		selector:  selector,
		series:    series,
		futures:   futures,
		headlines: headlines,
		store:     store,
		metrics:   metrics,
		logger:    logger,
	}
}

// GetReport returns either a fresh-enough cached report or a newly computed
// one. refresh skips only the cache read; the fresh result is still written
// behind without blocking the return path.
func (b *ReportBuilder) GetReport(ctx context.Context, refresh bool) (*models.AggregateReport, error) {
	if !refresh {
		if cached, ok := b.store.Load(ctx); ok {
			b.metrics.RecordCacheRead(true)
			return cached, nil
		}
		b.metrics.RecordCacheRead(false)
	}

	report, err := b.buildFresh(ctx)
	if err != nil {
		b.metrics.RecordCycle("error")
		return nil, err
	}
	b.metrics.RecordCycle("ok")
	b.metrics.RecordPanelSize(len(report.Reports))

	// write-behind; the caller already has the value
	go b.store.Store(context.WithoutCancel(ctx), report)

	return report, nil
}

func (b *ReportBuilder) buildFresh(ctx context.Context) (*models.AggregateReport, error) {
	panel, err := b.selector.Select(ctx)
	if err != nil {
		return nil, fmt.Errorf("select panel: %w", err)
	}

	// one shared read-only pool for the whole batch
	pool := b.headlines.Fetch(ctx)

	type item struct {
		idx    int
		report models.AssetReport
		err    error
	}
	ch := make(chan item, len(panel))
	var wg sync.WaitGroup

	for i, asset := range panel {
		wg.Add(1)
		go func(idx int, asset models.Asset) {
			defer wg.Done()
			r, err := b.buildAssetReport(ctx, asset, pool)
			if err != nil {
				ch <- item{idx: idx, err: fmt.Errorf("%s: %w", asset.ID, err)}
				return
			}
			ch <- item{idx: idx, report: *r}
		}(i, asset)
	}

	go func() { wg.Wait(); close(ch) }()

	byIndex := make([]*models.AssetReport, len(panel))
	for it := range ch {
		if it.err != nil {
			b.metrics.RecordAssetFailure("series")
			b.logger.Error("asset dropped from report", xlogger.Error(it.err))
			continue
		}
		r := it.report
		byIndex[it.idx] = &r
	}

	// preserve rank order of the surviving assets
	reports := make([]models.AssetReport, 0, len(panel))
	for _, r := range byIndex {
		if r != nil {
			reports = append(reports, *r)
		}
	}

	movers, summary, leader := Summarize(reports)
	b.logger.Debug("cycle aggregated",
		xlogger.Int("assets", len(reports)),
		xlogger.String("leader", leader),
	)

	return &models.AggregateReport{
		GeneratedAt: time.Now().UTC(),
		Reports:     reports,
		Summary:     summary,
		Movers:      movers,
	}, nil
}

func (b *ReportBuilder) buildAssetReport(ctx context.Context, asset models.Asset, pool []models.HeadlineItem) (*models.AssetReport, error) {
	series, err := b.series.Acquire(ctx, asset)
	if err != nil {
		return nil, fmt.Errorf("acquire series: %w", err)
	}

	sig := signals.Detect(series.Prices, series.Volumes)
	if sig == nil {
		return nil, fmt.Errorf("empty series")
	}

	report := &models.AssetReport{
		ID:           asset.ID,
		Symbol:       asset.Symbol,
		Name:         asset.Name,
		PriceSummary: priceSummary(asset, sig),
		Signals:      sig,
		Narrative:    signals.Narrative(sig),
		Events:       news.Match(pool, asset.ID, asset.Name),
		Metrics: models.AssetMetrics{
			CurrentPrice:      asset.CurrentPrice,
			MarketCap:         asset.MarketCap,
			CirculatingSupply: asset.CirculatingSupply,
		},
	}

	// derivatives are optional; the group failing must not touch price data
	if symbol := binance.SymbolFor(asset.ID); symbol != "" && b.futures != nil {
		snap, err := b.futures.Snapshot(ctx, symbol)
		if err != nil {
			b.metrics.RecordAssetFailure("futures")
			b.logger.Warn("futures snapshot unavailable",
				xlogger.String("asset", asset.ID),
				xlogger.Error(err),
			)
		} else {
			report.Futures = snap
		}
	}

	return report, nil
}

func priceSummary(asset models.Asset, sig *models.Signals) string {
	return fmt.Sprintf("%s is trading at $%.2f, %+.1f%% over the week.", asset.Name, sig.Last, sig.Change)
}
