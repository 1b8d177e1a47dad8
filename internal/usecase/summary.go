package usecase

import (
	"fmt"
	"sort"
	"strings"

	"CoinPulse/internal/domain/models"
)

const moversPerSide = 3

// stableAssets are excluded from movers and breadth: pegged assets hold
// their peg, so their "change" is noise.
var stableAssets = map[string]bool{
	"tether":            true,
	"usdt":              true,
	"usd-coin":          true,
	"usdc":              true,
	"dai":               true,
	"first-digital-usd": true,
	"fdusd":             true,
	"ethena-usde":       true,
	"usde":              true,
}

// Summarize ranks the panel by weekly change and renders the fixed two-line
// composite summary. The market leader (highest-cap non-stable asset) is
// returned for logging but intentionally left out of the rendered text,
// which already leads with the primary subject.
func Summarize(reports []models.AssetReport) (models.Movers, string, string) {
	ranked := make([]models.AssetReport, 0, len(reports))
	for _, r := range reports {
		if r.Signals == nil {
			continue
		}
		if stableAssets[strings.ToLower(r.ID)] || stableAssets[strings.ToLower(r.Symbol)] {
			continue
		}
		ranked = append(ranked, r)
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Signals.Change > ranked[j].Signals.Change
	})

	movers := models.Movers{
		Up:   takeMovers(ranked, moversPerSide),
		Down: takeMoversReversed(ranked, moversPerSide),
	}

	var leader string
	var leaderCap float64
	var advancing, declining int
	var spikes []string
	for _, r := range ranked {
		if r.Metrics.MarketCap > leaderCap {
			leaderCap = r.Metrics.MarketCap
			leader = r.Name
		}
		switch {
		case r.Signals.Change > 0:
			advancing++
		case r.Signals.Change < 0:
			declining++
		}
		if r.Signals.VolumeSpike {
			spikes = append(spikes, r.Name)
		}
	}

	return movers, renderSummary(movers, advancing, declining, spikes), leader
}

func takeMovers(ranked []models.AssetReport, n int) []models.Mover {
	if len(ranked) < n {
		n = len(ranked)
	}
	out := make([]models.Mover, 0, n)
	for _, r := range ranked[:n] {
		out = append(out, models.Mover{ID: r.ID, Name: r.Name, Symbol: r.Symbol, Change: r.Signals.Change})
	}
	return out
}

func takeMoversReversed(ranked []models.AssetReport, n int) []models.Mover {
	if len(ranked) < n {
		n = len(ranked)
	}
	out := make([]models.Mover, 0, n)
	for i := 0; i < n; i++ {
		r := ranked[len(ranked)-1-i]
		out = append(out, models.Mover{ID: r.ID, Name: r.Name, Symbol: r.Symbol, Change: r.Signals.Change})
	}
	return out
}

func renderSummary(movers models.Movers, advancing, declining int, spikes []string) string {
	line1 := fmt.Sprintf("Weekly movers - gainers: %s; losers: %s.",
		renderMoverList(movers.Up), renderMoverList(movers.Down))

	line2 := fmt.Sprintf("Breadth %d:%d advancing", advancing, declining)
	if len(spikes) > 0 {
		if len(spikes) > moversPerSide {
			spikes = spikes[:moversPerSide]
		}
		line2 += fmt.Sprintf("; volume spikes in %s", strings.Join(spikes, ", "))
	}
	line2 += "."

	return line1 + "\n" + line2
}

func renderMoverList(movers []models.Mover) string {
	if len(movers) == 0 {
		return "none"
	}
	parts := make([]string, 0, len(movers))
	for _, m := range movers {
		parts = append(parts, fmt.Sprintf("%s %+.0f%%", strings.ToUpper(m.Symbol), m.Change))
	}
	return strings.Join(parts, ", ")
}
