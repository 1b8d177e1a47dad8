package usecase

import (
	"context"
	"fmt"
	"strings"

	"CoinPulse/internal/domain/models"
	drepo "CoinPulse/internal/domain/repository"
)

// PanelSize is the fixed number of assets per report cycle.
const PanelSize = 10

// excludedAssets keeps wrapped and stable proxies out of the panel; they
// track another asset's price and add nothing to the signal set.
var excludedAssets = map[string]bool{
	"tether":          true,
	"usdt":            true,
	"usd-coin":        true,
	"usdc":            true,
	"staked-ether":    true,
	"steth":           true,
	"wrapped-bitcoin": true,
	"wbtc":            true,
	"weth":            true,
	"wrapped-steth":   true,
	"wsteth":          true,
}

// AssetSelector picks the report panel from the ranked market-cap listing.
type AssetSelector struct {
	lister drepo.MarketLister
}

func NewAssetSelector(lister drepo.MarketLister) *AssetSelector {
	return &AssetSelector{lister: lister}
}

// Select walks the listing in rank order, skipping excluded ids/symbols,
// until the panel is full. Exclusion is best-effort: if too few candidates
// survive, the first PanelSize raw candidates are used instead.
func (s *AssetSelector) Select(ctx context.Context) ([]models.Asset, error) {
	candidates, err := s.lister.TopAssets(ctx, PanelSize+1)
	if err != nil {
		return nil, fmt.Errorf("list top assets: %w", err)
	}
	if len(candidates) == 0 {
		return nil, fmt.Errorf("asset listing returned no candidates")
	}

	panel := make([]models.Asset, 0, PanelSize)
	for _, a := range candidates {
		if excludedAssets[strings.ToLower(a.ID)] || excludedAssets[strings.ToLower(a.Symbol)] {
			continue
		}
		panel = append(panel, a)
		if len(panel) == PanelSize {
			break
		}
	}

	if len(panel) < PanelSize {
		if len(candidates) > PanelSize {
			return candidates[:PanelSize], nil
		}
		return candidates, nil
	}
	return panel, nil
}
