package usecase

import (
	"context"
	"fmt"
	"testing"

	"CoinPulse/internal/domain/models"
)

func listingWith(ids ...string) []models.Asset {
	assets := make([]models.Asset, 0, len(ids))
	for _, id := range ids {
		assets = append(assets, models.Asset{ID: id, Symbol: id, Name: id})
	}
	return assets
}

func TestSelectSkipsExcluded(t *testing.T) {
	ids := []string{"bitcoin", "ethereum", "tether", "ripple", "binancecoin",
		"solana", "usd-coin", "dogecoin", "cardano", "tron", "avalanche-2"}
	// 11 candidates, 2 excluded, 9 remain -> fallback path
	s := NewAssetSelector(&fakeLister{assets: listingWith(ids...)})
	panel, err := s.Select(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(panel) != PanelSize {
		t.Fatalf("expected full panel of %d, got %d", PanelSize, len(panel))
	}
	// best-effort: fewer than PanelSize survived exclusion, so the raw
	// head of the listing is used, stables included
	if panel[2].ID != "tether" {
		t.Fatalf("expected raw fallback ordering, got %+v", panel)
	}
}

func TestSelectExclusionSucceedsWithOneSkip(t *testing.T) {
	ids := []string{"bitcoin", "tether", "ethereum", "ripple", "binancecoin",
		"solana", "dogecoin", "cardano", "tron", "avalanche-2", "chainlink"}
	s := NewAssetSelector(&fakeLister{assets: listingWith(ids...)})
	panel, err := s.Select(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(panel) != PanelSize {
		t.Fatalf("expected %d assets, got %d", PanelSize, len(panel))
	}
	for _, a := range panel {
		if a.ID == "tether" {
			t.Fatalf("excluded asset in panel: %+v", panel)
		}
	}
	if panel[0].ID != "bitcoin" || panel[1].ID != "ethereum" {
		t.Fatalf("rank order not preserved: %+v", panel)
	}
}

func TestSelectErrorOnEmptyListing(t *testing.T) {
	s := NewAssetSelector(&fakeLister{})
	if _, err := s.Select(context.Background()); err == nil {
		t.Fatalf("expected error for empty listing")
	}
}

func TestSelectPropagatesListerError(t *testing.T) {
	s := NewAssetSelector(&fakeLister{err: fmt.Errorf("rate limited")})
	if _, err := s.Select(context.Background()); err == nil {
		t.Fatalf("expected error from lister")
	}
}
