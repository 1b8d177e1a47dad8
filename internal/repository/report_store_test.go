package repository

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"CoinPulse/internal/domain/models"
	xlogger "CoinPulse/pkg/logger"
)

func testLogger(t *testing.T) *xlogger.Logger {
	t.Helper()
	l, err := xlogger.New(&xlogger.Config{Level: "error", Format: "json", Output: "stderr"})
	if err != nil {
		t.Fatalf("logger: %v", err)
	}
	return l
}

func sampleReport() *models.AggregateReport {
	return &models.AggregateReport{
		GeneratedAt: time.Now().UTC(),
		Reports: []models.AssetReport{
			{ID: "bitcoin", Symbol: "btc", Name: "Bitcoin", Signals: &models.Signals{Last: 100}},
		},
		Summary: "ok",
	}
}

func newStore(t *testing.T, ttl time.Duration) *FileReportStore {
	t.Helper()
	path := filepath.Join(t.TempDir(), "report_cache.json")
	return NewFileReportStore(path, ttl, testLogger(t)).(*FileReportStore)
}

func TestStoreThenLoadHit(t *testing.T) {
	s := newStore(t, 300*time.Second)
	s.Store(context.Background(), sampleReport())

	got, ok := s.Load(context.Background())
	if !ok {
		t.Fatalf("expected cache hit")
	}
	if len(got.Reports) != 1 || got.Reports[0].ID != "bitcoin" {
		t.Fatalf("unexpected payload: %+v", got)
	}
}

func TestLoadTTLBoundary(t *testing.T) {
	ttl := 300 * time.Second
	s := newStore(t, ttl)
	s.Store(context.Background(), sampleReport())

	info, err := os.Stat(s.path)
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	written := info.ModTime()

	// one second inside the window
	s.now = func() time.Time { return written.Add(ttl - time.Second) }
	if _, ok := s.Load(context.Background()); !ok {
		t.Fatalf("expected hit at TTL-1s")
	}

	// one second past the window
	s.now = func() time.Time { return written.Add(ttl + time.Second) }
	if _, ok := s.Load(context.Background()); ok {
		t.Fatalf("expected miss at TTL+1s")
	}
}

func TestLoadMissOnAbsentFile(t *testing.T) {
	s := newStore(t, time.Minute)
	if _, ok := s.Load(context.Background()); ok {
		t.Fatalf("expected miss for absent file")
	}
}

func TestLoadMissOnMalformedPayload(t *testing.T) {
	s := newStore(t, time.Minute)
	if err := os.WriteFile(s.path, []byte("{not json"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, ok := s.Load(context.Background()); ok {
		t.Fatalf("expected miss for malformed payload")
	}
}

func TestLoadMissOnEmptyReports(t *testing.T) {
	s := newStore(t, time.Minute)
	s.Store(context.Background(), &models.AggregateReport{GeneratedAt: time.Now()})
	if _, ok := s.Load(context.Background()); ok {
		t.Fatalf("expected miss when reports array is empty")
	}
}
