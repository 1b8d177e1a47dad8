package binance

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"sync"
	"time"

	"CoinPulse/internal/domain/models"
	drepo "CoinPulse/internal/domain/repository"
	"CoinPulse/internal/service/ratelimit"
	xhttp "CoinPulse/pkg/http"
	xlogger "CoinPulse/pkg/logger"
)

const (
	spotLimiterKey    = "binance_spot"
	futuresLimiterKey = "binance_futures"
)

// Client implements KlineSource and FuturesSource against the Binance spot
// and futures REST APIs.
type Client struct {
	spotURL    string
	futuresURL string
	http       *xhttp.Client
	limiter    *ratelimit.Limiter
	logger     *xlogger.Logger
	metrics    drepo.Metrics
}

func New(spotURL, futuresURL string, http *xhttp.Client, limiter *ratelimit.Limiter, logger *xlogger.Logger, metrics drepo.Metrics) *Client {
	return &Client{
		spotURL:    spotURL,
		futuresURL: futuresURL,
		http:       http,
		limiter:    limiter,
		logger:     logger,
		metrics:    metrics,
	}
}

// HourlyKlines fetches 1h candles and returns close prices and volumes,
// oldest first. Binance encodes klines as arrays with string floats at the
// close (4) and volume (5) positions.
func (c *Client) HourlyKlines(ctx context.Context, symbol string, limit int) ([]float64, []float64, error) {
	if c.limiter != nil {
		c.limiter.Wait(ctx, spotLimiterKey)
	}

	start := time.Now()
	var raw [][]json.RawMessage
	err := c.http.GetJSON(ctx, c.spotURL+"/api/v3/klines", map[string][]string{
		"symbol":   {symbol},
		"interval": {"1h"},
		"limit":    {strconv.Itoa(limit)},
	}, &raw)
	if c.metrics != nil {
		c.metrics.RecordFetchLatency("binance_klines", time.Since(start).Seconds())
	}
	if err != nil {
		return nil, nil, fmt.Errorf("klines %s: %w", symbol, err)
	}
	if len(raw) == 0 {
		return nil, nil, fmt.Errorf("klines %s: empty response", symbol)
	}

	prices := make([]float64, 0, len(raw))
	volumes := make([]float64, 0, len(raw))
	for i, k := range raw {
		if len(k) < 6 {
			return nil, nil, fmt.Errorf("klines %s: row %d has %d fields", symbol, i, len(k))
		}
		closePx, err := parseStringFloat(k[4])
		if err != nil {
			return nil, nil, fmt.Errorf("klines %s: close at %d: %w", symbol, i, err)
		}
		vol, err := parseStringFloat(k[5])
		if err != nil {
			return nil, nil, fmt.Errorf("klines %s: volume at %d: %w", symbol, i, err)
		}
		prices = append(prices, closePx)
		volumes = append(volumes, vol)
	}
	return prices, volumes, nil
}

type premiumIndex struct {
	MarkPrice       string `json:"markPrice"`
	LastFundingRate string `json:"lastFundingRate"`
}

type openInterest struct {
	OpenInterest string `json:"openInterest"`
}

type ticker24h struct {
	Volume             string `json:"volume"`
	PriceChangePercent string `json:"priceChangePercent"`
}

// Snapshot fetches the derivatives view as three independent calls. The
// whole group failing returns an error; the caller degrades to a nil
// snapshot without touching price data.
func (c *Client) Snapshot(ctx context.Context, symbol string) (*models.FuturesSnapshot, error) {
	if c.limiter != nil {
		c.limiter.Wait(ctx, futuresLimiterKey)
	}

	start := time.Now()
	defer func() {
		if c.metrics != nil {
			c.metrics.RecordFetchLatency("binance_futures", time.Since(start).Seconds())
		}
	}()

	params := map[string][]string{"symbol": {symbol}}

	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		firstEr error
		snap    models.FuturesSnapshot
	)
	record := func(err error) {
		mu.Lock()
		if err != nil && firstEr == nil {
			firstEr = err
		}
		mu.Unlock()
	}

	wg.Add(3)
	go func() {
		defer wg.Done()
		var pi premiumIndex
		if err := c.http.GetJSON(ctx, c.futuresURL+"/fapi/v1/premiumIndex", params, &pi); err != nil {
			record(err)
			return
		}
		mark, _ := strconv.ParseFloat(pi.MarkPrice, 64)
		funding, _ := strconv.ParseFloat(pi.LastFundingRate, 64)
		mu.Lock()
		snap.MarkPrice = mark
		snap.FundingRate = funding
		mu.Unlock()
	}()
	go func() {
		defer wg.Done()
		var oi openInterest
		if err := c.http.GetJSON(ctx, c.futuresURL+"/fapi/v1/openInterest", params, &oi); err != nil {
			record(err)
			return
		}
		v, _ := strconv.ParseFloat(oi.OpenInterest, 64)
		mu.Lock()
		snap.OpenInterest = v
		mu.Unlock()
	}()
	go func() {
		defer wg.Done()
		var t ticker24h
		if err := c.http.GetJSON(ctx, c.futuresURL+"/fapi/v1/ticker/24hr", params, &t); err != nil {
			record(err)
			return
		}
		vol, _ := strconv.ParseFloat(t.Volume, 64)
		chg, _ := strconv.ParseFloat(t.PriceChangePercent, 64)
		mu.Lock()
		snap.Volume24h = vol
		snap.PriceChange = chg
		mu.Unlock()
	}()
	wg.Wait()

	if firstEr != nil {
		return nil, fmt.Errorf("futures snapshot %s: %w", symbol, firstEr)
	}
	return &snap, nil
}

func parseStringFloat(raw json.RawMessage) (float64, error) {
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		// some fields arrive as bare numbers
		var f float64
		if nerr := json.Unmarshal(raw, &f); nerr == nil {
			return f, nil
		}
		return 0, err
	}
	return strconv.ParseFloat(s, 64)
}
