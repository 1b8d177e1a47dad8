package usecase

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"CoinPulse/internal/domain/models"
	xlogger "CoinPulse/pkg/logger"
)

// --- fakes ---

type fakeLister struct {
	assets []models.Asset
	err    error
}

func (f *fakeLister) TopAssets(_ context.Context, _ int) ([]models.Asset, error) {
	return f.assets, f.err
}

type fakeSeries struct {
	changes map[string]float64 // asset id -> weekly change percent
	failFor map[string]bool
}

func (f *fakeSeries) Acquire(_ context.Context, asset models.Asset) (*models.Series, error) {
	if f.failFor[asset.ID] {
		return nil, fmt.Errorf("source down")
	}
	// 168 monotonically increasing points ending at 100*(1+change/100)
	change := f.changes[asset.ID]
	prices := make([]float64, 168)
	volumes := make([]float64, 168)
	start, end := 100.0, 100.0*(1+change/100)
	for i := range prices {
		prices[i] = start + (end-start)*float64(i)/167
		volumes[i] = 10
	}
	return &models.Series{Prices: prices, Volumes: volumes}, nil
}

type fakeHeadlines struct {
	pool []models.HeadlineItem
}

func (f *fakeHeadlines) Fetch(_ context.Context) []models.HeadlineItem { return f.pool }

type fakeStore struct {
	mu     sync.Mutex
	loaded *models.AggregateReport
	stored *models.AggregateReport
	writes int
}

func (f *fakeStore) Load(_ context.Context) (*models.AggregateReport, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.loaded == nil {
		return nil, false
	}
	return f.loaded, true
}

func (f *fakeStore) Store(_ context.Context, r *models.AggregateReport) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.stored = r
	f.writes++
}

func (f *fakeStore) waitForWrite(t *testing.T) *models.AggregateReport {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		f.mu.Lock()
		stored := f.stored
		f.mu.Unlock()
		if stored != nil {
			return stored
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("write-behind never happened")
	return nil
}

type nopMetrics struct{}

func (nopMetrics) RecordCycle(string)                 {}
func (nopMetrics) RecordCacheRead(bool)               {}
func (nopMetrics) RecordAssetFailure(string)          {}
func (nopMetrics) RecordFetchLatency(string, float64) {}
func (nopMetrics) RecordPanelSize(int)                {}

func builderLogger(t *testing.T) *xlogger.Logger {
	t.Helper()
	l, err := xlogger.New(&xlogger.Config{Level: "error", Format: "json", Output: "stderr"})
	if err != nil {
		t.Fatalf("logger: %v", err)
	}
	return l
}

func mockAssets(n int) []models.Asset {
	assets := make([]models.Asset, 0, n)
	for i := 0; i < n; i++ {
		assets = append(assets, models.Asset{
			ID:     fmt.Sprintf("asset-%d", i),
			Symbol: fmt.Sprintf("a%d", i),
			Name:   fmt.Sprintf("Asset %d", i),
		})
	}
	return assets
}

func newBuilder(lister *fakeLister, series SeriesProvider, store *fakeStore, t *testing.T) *ReportBuilder {
	return NewReportBuilder(
		NewAssetSelector(lister),
		series,
		nil,
		&fakeHeadlines{},
		store,
		nopMetrics{},
		builderLogger(t),
	)
}

// --- tests ---

func TestGetReportRanksMovers(t *testing.T) {
	assets := mockAssets(10)
	changes := map[string]float64{}
	for i, a := range assets {
		changes[a.ID] = float64(i - 4) // -4 .. +5
	}

	store := &fakeStore{}
	b := newBuilder(&fakeLister{assets: assets}, &fakeSeries{changes: changes}, store, t)

	report, err := b.GetReport(context.Background(), false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(report.Reports) != 10 {
		t.Fatalf("expected 10 asset reports, got %d", len(report.Reports))
	}
	if len(report.Movers.Up) != 3 {
		t.Fatalf("expected 3 gainers, got %d", len(report.Movers.Up))
	}
	want := []string{"asset-9", "asset-8", "asset-7"}
	for i, id := range want {
		if report.Movers.Up[i].ID != id {
			t.Fatalf("gainer %d: expected %s, got %s", i, id, report.Movers.Up[i].ID)
		}
	}
	if report.Movers.Up[0].Change < report.Movers.Up[1].Change {
		t.Fatalf("gainers not descending: %+v", report.Movers.Up)
	}
}

func TestGetReportIsolatesAssetFailure(t *testing.T) {
	assets := mockAssets(10)
	store := &fakeStore{}
	series := &fakeSeries{
		changes: map[string]float64{},
		failFor: map[string]bool{"asset-3": true},
	}
	b := newBuilder(&fakeLister{assets: assets}, series, store, t)

	report, err := b.GetReport(context.Background(), false)
	if err != nil {
		t.Fatalf("one failing asset must not fail the batch: %v", err)
	}
	if len(report.Reports) != 9 {
		t.Fatalf("expected 9 surviving assets, got %d", len(report.Reports))
	}
	for _, r := range report.Reports {
		if r.ID == "asset-3" {
			t.Fatalf("failed asset must be omitted")
		}
	}
}

func TestGetReportFatalOnEmptySelection(t *testing.T) {
	store := &fakeStore{}
	b := newBuilder(&fakeLister{assets: nil}, &fakeSeries{changes: map[string]float64{}}, store, t)

	if _, err := b.GetReport(context.Background(), false); err == nil {
		t.Fatalf("expected fatal error for zero candidates")
	}
	if store.stored != nil {
		t.Fatalf("no partial report may be cached")
	}
}

func TestGetReportServesCacheHit(t *testing.T) {
	cached := &models.AggregateReport{
		GeneratedAt: time.Now(),
		Reports:     []models.AssetReport{{ID: "bitcoin"}},
	}
	store := &fakeStore{loaded: cached}
	// lister failing proves the hit short-circuits computation
	b := newBuilder(&fakeLister{err: fmt.Errorf("down")}, &fakeSeries{changes: map[string]float64{}}, store, t)

	got, err := b.GetReport(context.Background(), false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != cached {
		t.Fatalf("expected the cached report verbatim")
	}
}

func TestGetReportRefreshBypassesCacheRead(t *testing.T) {
	cached := &models.AggregateReport{
		GeneratedAt: time.Now(),
		Reports:     []models.AssetReport{{ID: "stale"}},
	}
	store := &fakeStore{loaded: cached}
	b := newBuilder(&fakeLister{assets: mockAssets(10)}, &fakeSeries{changes: map[string]float64{}}, store, t)

	got, err := b.GetReport(context.Background(), true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got == cached {
		t.Fatalf("refresh must not serve the cached report")
	}

	// the fresh result is still written behind
	stored := store.waitForWrite(t)
	if stored != got {
		t.Fatalf("write-behind must persist the fresh report")
	}
}

func TestGetReportAttachesHeadlines(t *testing.T) {
	assets := mockAssets(2)
	assets[0].ID, assets[0].Name, assets[0].Symbol = "bitcoin", "Bitcoin", "btc"

	b := NewReportBuilder(
		NewAssetSelector(&fakeLister{assets: assets}),
		&fakeSeries{changes: map[string]float64{}},
		nil,
		&fakeHeadlines{pool: []models.HeadlineItem{
			{Title: "Quiet day", URL: "https://example.com/quiet"},
			{Title: "Bitcoin tops charts", URL: "https://example.com/bitcoin"},
		}},
		&fakeStore{},
		nopMetrics{},
		builderLogger(t),
	)

	report, err := b.GetReport(context.Background(), false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, r := range report.Reports {
		if len(r.Events) != 1 {
			t.Fatalf("expected one event per asset, got %d", len(r.Events))
		}
		if r.ID == "bitcoin" && !strings.Contains(r.Events[0].Title, "Bitcoin") {
			t.Fatalf("expected keyword match for bitcoin, got %q", r.Events[0].Title)
		}
	}
}
