package usecase

import (
	"context"
	"fmt"

	"CoinPulse/internal/domain/models"
	drepo "CoinPulse/internal/domain/repository"
	"CoinPulse/internal/service/binance"
	xlogger "CoinPulse/pkg/logger"
)

// seriesPoints is one week of hourly candles.
const seriesPoints = 168

// SeriesAcquirer fetches one asset's weekly price/volume history, preferring
// exchange klines and degrading to the listing's sparkline.
type SeriesAcquirer struct {
	klines drepo.KlineSource
	logger *xlogger.Logger
}

func NewSeriesAcquirer(klines drepo.KlineSource, logger *xlogger.Logger) *SeriesAcquirer {
	return &SeriesAcquirer{klines: klines, logger: logger}
}

// Acquire returns the series for one asset. An unmapped asset or a failed
// primary fetch falls back to the sparkline with zero-filled volumes; both
// sources failing is a per-asset error and drops the asset upstream.
func (s *SeriesAcquirer) Acquire(ctx context.Context, asset models.Asset) (*models.Series, error) {
	if symbol := binance.SymbolFor(asset.ID); symbol != "" {
		prices, volumes, err := s.klines.HourlyKlines(ctx, symbol, seriesPoints)
		if err == nil {
			return &models.Series{Prices: prices, Volumes: volumes}, nil
		}
		s.logger.Warn("kline fetch failed, using sparkline fallback",
			xlogger.String("asset", asset.ID),
			xlogger.String("symbol", symbol),
			xlogger.Error(err),
		)
	}

	if len(asset.Sparkline) == 0 {
		return nil, fmt.Errorf("no series available for %s", asset.ID)
	}
	return &models.Series{
		Prices:   asset.Sparkline,
		Volumes:  make([]float64, len(asset.Sparkline)),
		Degraded: true,
	}, nil
}
