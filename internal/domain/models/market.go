package models

// Asset is one ranked market-cap candidate from the listing source.
// Sparkline carries the listing's embedded 7-day hourly prices and is the
// fallback series when the exchange has no direct pair for the asset.
type Asset struct {
	ID                string    `json:"id"`
	Symbol            string    `json:"symbol"`
	Name              string    `json:"name"`
	CurrentPrice      float64   `json:"current_price"`
	MarketCap         float64   `json:"market_cap"`
	CirculatingSupply float64   `json:"circulating_supply"`
	Sparkline         []float64 `json:"sparkline"`
}

// Series holds one asset's chronological price/volume history, oldest first.
// Volumes are zero-filled when the fallback source provided prices only;
// volume-derived signals are then degraded, not absent.
type Series struct {
	Prices  []float64
	Volumes []float64
	// Degraded marks a series built from the fallback sparkline source.
	Degraded bool
}

// FuturesSnapshot merges the three independent derivatives calls for one
// exchange-mapped asset. Any of the groups failing leaves the snapshot nil.
type FuturesSnapshot struct {
	FundingRate  float64 `json:"funding_rate"`
	MarkPrice    float64 `json:"mark_price"`
	OpenInterest float64 `json:"open_interest"`
	Volume24h    float64 `json:"volume_24h"`
	PriceChange  float64 `json:"price_change_pct"`
}

// AssetMetrics is the per-asset market snapshot carried into the report.
type AssetMetrics struct {
	CurrentPrice      float64 `json:"current_price"`
	MarketCap         float64 `json:"market_cap"`
	CirculatingSupply float64 `json:"circulating_supply"`
}
