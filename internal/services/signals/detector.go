package signals

import (
	"sort"

	"CoinPulse/internal/domain/models"
	"CoinPulse/internal/services/indicators"
)

const (
	rsiPeriod = 14

	// volume spike: last hourly volume vs weekly median
	volumeSpikeFactor = 2.5

	// liquidity sweep: pairwise drop threshold inside the trailing day
	sweepWindow  = 24
	sweepDropPct = 2.5
)

// Detect reads one asset's weekly series into a Signals value. Returns nil
// when there are no prices. Volumes may be empty or all-zero (fallback
// source); volume-derived fields then stay false/0.
func Detect(prices, volumes []float64) *models.Signals {
	if len(prices) == 0 {
		return nil
	}

	s := &models.Signals{Last: prices[len(prices)-1]}
	if prices[0] != 0 {
		s.Change = (s.Last - prices[0]) / prices[0] * 100
	}

	s.VolumeSpike = volumeSpike(volumes)
	s.MaxDropPct, s.Sweep = sweep(prices)
	s.LowerHighs = lowerHighs(prices)
	s.RSI = indicators.RSI(prices, rsiPeriod)

	if sma := indicators.SMA(prices, 8); len(sma) > 0 {
		v := sma[len(sma)-1]
		s.LastSMA8 = &v
	}
	if sma := indicators.SMA(prices, 21); len(sma) > 0 {
		v := sma[len(sma)-1]
		s.LastSMA21 = &v
	}
	return s
}

// volumeSpike compares the latest volume to the sorted-midpoint median.
// Even-length inputs take the upper-middle element, not an averaged median.
func volumeSpike(volumes []float64) bool {
	if len(volumes) == 0 {
		return false
	}
	sorted := make([]float64, len(volumes))
	copy(sorted, volumes)
	sort.Float64s(sorted)
	median := sorted[len(sorted)/2]
	return volumes[len(volumes)-1] > median*volumeSpikeFactor
}

// sweep scans every i<j pair of the trailing window for the largest
// percentage drop. The window is capped at 24 points, so the quadratic scan
// stays trivial.
func sweep(prices []float64) (maxDropPct float64, swept bool) {
	window := prices
	if len(window) > sweepWindow {
		window = window[len(window)-sweepWindow:]
	}
	for i := 0; i < len(window); i++ {
		if window[i] == 0 {
			continue
		}
		for j := i + 1; j < len(window); j++ {
			drop := (window[i] - window[j]) / window[i] * 100
			if drop > maxDropPct {
				maxDropPct = drop
			}
		}
	}
	return maxDropPct, maxDropPct > sweepDropPct
}

// lowerHighs finds strict local peaks over the interior of the series and
// reports whether the last three form a strictly descending sequence.
func lowerHighs(prices []float64) bool {
	var peaks []float64
	for i := 2; i <= len(prices)-3; i++ {
		if prices[i] > prices[i-1] && prices[i] > prices[i+1] {
			peaks = append(peaks, prices[i])
		}
	}
	if len(peaks) < 3 {
		return false
	}
	last := peaks[len(peaks)-3:]
	return last[0] > last[1] && last[1] > last[2]
}
