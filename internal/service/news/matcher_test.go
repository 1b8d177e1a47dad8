package news

import (
	"testing"

	"CoinPulse/internal/domain/models"
)

func pool() []models.HeadlineItem {
	return []models.HeadlineItem{
		{Title: "Markets open mixed ahead of CPI", URL: "https://example.com/macro"},
		{Title: "SOL rallies on ETF chatter", URL: "https://example.com/sol-etf"},
		{Title: "Miners accumulate", URL: "https://example.com/btc-miners"},
	}
}

func TestMatchByAlias(t *testing.T) {
	got := Match(pool(), "solana", "Solana")
	if len(got) != 1 {
		t.Fatalf("expected one item, got %d", len(got))
	}
	if got[0].Title != "SOL rallies on ETF chatter" {
		t.Fatalf("unexpected match: %q", got[0].Title)
	}
}

func TestMatchByURL(t *testing.T) {
	got := Match(pool(), "bitcoin", "Bitcoin")
	if len(got) != 1 || got[0].URL != "https://example.com/btc-miners" {
		t.Fatalf("expected URL alias match, got %+v", got)
	}
}

func TestMatchFallbackToFirst(t *testing.T) {
	got := Match(pool(), "cardano", "Cardano")
	if len(got) != 1 || got[0].Title != "Markets open mixed ahead of CPI" {
		t.Fatalf("expected first-item fallback, got %+v", got)
	}
}

func TestMatchEmptyPool(t *testing.T) {
	if got := Match(nil, "bitcoin", "Bitcoin"); got != nil {
		t.Fatalf("expected nil for empty pool, got %+v", got)
	}
}

func TestMatchDisplayNameWord(t *testing.T) {
	p := []models.HeadlineItem{
		{Title: "Unrelated", URL: "https://example.com/a"},
		{Title: "Open Network upgrade ships", URL: "https://example.com/b"},
	}
	got := Match(p, "the-open-network", "Toncoin Open Network")
	if len(got) != 1 || got[0].URL != "https://example.com/b" {
		t.Fatalf("expected display-name word match, got %+v", got)
	}
}
