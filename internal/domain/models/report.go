package models

import "time"

// Signals is the heuristic read of one asset's weekly series. Built once per
// asset per cycle and owned by the AssetReport that contains it.
type Signals struct {
	Last        float64  `json:"last"`
	Change      float64  `json:"change"`
	RSI         *float64 `json:"rsi"`
	LastSMA8    *float64 `json:"last_sma8"`
	LastSMA21   *float64 `json:"last_sma21"`
	VolumeSpike bool     `json:"volume_spike"`
	Sweep       bool     `json:"sweep"`
	MaxDropPct  float64  `json:"max_drop_pct"`
	LowerHighs  bool     `json:"lower_highs"`
}

// HeadlineItem is one entry of the externally aggregated news pool.
// The core only reads these; at most one is attached per asset.
type HeadlineItem struct {
	Title       string `json:"title"`
	URL         string `json:"url"`
	Source      string `json:"source"`
	Summary     string `json:"summary"`
	PublishedAt string `json:"publishedAt"`
}

// AssetReport is the per-asset slice of an aggregate report.
type AssetReport struct {
	ID           string           `json:"id"`
	Symbol       string           `json:"symbol"`
	Name         string           `json:"name"`
	PriceSummary string           `json:"price_summary"`
	Signals      *Signals         `json:"signals"`
	Futures      *FuturesSnapshot `json:"futures"`
	Narrative    string           `json:"narrative"`
	Events       []HeadlineItem   `json:"events"`
	Metrics      AssetMetrics     `json:"metrics"`
}

// Mover is one ranked entry of the cross-asset movers summary.
type Mover struct {
	ID     string  `json:"id"`
	Name   string  `json:"name"`
	Symbol string  `json:"symbol"`
	Change float64 `json:"change"`
}

// Movers holds the ranked weekly gainers and losers.
type Movers struct {
	Up   []Mover `json:"up"`
	Down []Mover `json:"down"`
}

// AggregateReport is the unit returned to callers and cached on disk.
// Constructed fresh each cycle and superseded entirely by the next one.
type AggregateReport struct {
	GeneratedAt time.Time     `json:"generatedAt"`
	Reports     []AssetReport `json:"reports"`
	Summary     string        `json:"summary"`
	Movers      Movers        `json:"movers"`
}
