package signals

import (
	"math"
	"strings"
	"testing"

	"CoinPulse/internal/domain/models"
)

func TestDetectEmptySeries(t *testing.T) {
	if got := Detect(nil, nil); got != nil {
		t.Fatalf("expected nil for empty prices, got %+v", got)
	}
}

func TestDetectNoVolumes(t *testing.T) {
	prices := []float64{100, 101, 102, 103}
	got := Detect(prices, nil)
	if got == nil {
		t.Fatalf("expected signals")
	}
	if got.VolumeSpike {
		t.Fatalf("volume spike must be false without volumes")
	}
	if got.Last != 103 {
		t.Fatalf("expected last 103, got %v", got.Last)
	}
	if math.Abs(got.Change-3) > 1e-9 {
		t.Fatalf("expected 3%% change, got %v", got.Change)
	}
}

func TestSweepSyntheticDrop(t *testing.T) {
	got := Detect([]float64{100, 100, 95, 100}, []float64{0, 0, 0, 0})
	if got == nil {
		t.Fatalf("expected signals")
	}
	if math.Abs(got.MaxDropPct-5) > 1e-9 {
		t.Fatalf("expected max drop 5, got %v", got.MaxDropPct)
	}
	if !got.Sweep {
		t.Fatalf("expected sweep for a 5%% flush")
	}
}

func TestSweepWindowTrailing24(t *testing.T) {
	// big drop outside the trailing 24 points must not count
	prices := make([]float64, 0, 40)
	prices = append(prices, 200, 100)
	for i := 0; i < 38; i++ {
		prices = append(prices, 100)
	}
	got := Detect(prices, nil)
	if got.Sweep {
		t.Fatalf("drop outside the trailing window must not trigger a sweep, maxDrop=%v", got.MaxDropPct)
	}
}

func TestLowerHighsNeedsThreePeaks(t *testing.T) {
	// two peaks only
	prices := []float64{1, 2, 5, 2, 4, 2, 1, 1, 1}
	if Detect(prices, nil).LowerHighs {
		t.Fatalf("lower highs requires at least 3 peaks")
	}
}

func TestLowerHighsDescendingPeaks(t *testing.T) {
	prices := []float64{1, 2, 9, 2, 7, 2, 5, 2, 1, 1}
	if !Detect(prices, nil).LowerHighs {
		t.Fatalf("expected lower highs for peaks 9 > 7 > 5")
	}
}

func TestVolumeSpikeUpperMiddleMedian(t *testing.T) {
	prices := []float64{1, 1, 1, 1}
	// sorted volumes [1,2,3,10]; upper-middle median is 3; last=10 > 7.5
	volumes := []float64{2, 3, 1, 10}
	if !Detect(prices, volumes).VolumeSpike {
		t.Fatalf("expected spike against upper-middle median")
	}
	// last exactly at 2.5x must not spike
	volumes = []float64{2, 3, 1, 7.5}
	if Detect(prices, volumes).VolumeSpike {
		t.Fatalf("spike requires strictly greater than 2.5x median")
	}
}

func TestNarrativePriorityOrder(t *testing.T) {
	s := &models.Signals{Sweep: true, MaxDropPct: 4.2, VolumeSpike: true}
	text := Narrative(s)
	sweepIdx := strings.Index(text, "liquidity sweep")
	volIdx := strings.Index(text, "volume")
	if sweepIdx < 0 || volIdx < 0 {
		t.Fatalf("expected both clauses, got %q", text)
	}
	if sweepIdx > volIdx {
		t.Fatalf("sweep clause must precede volume clause: %q", text)
	}
}

func TestNarrativeFallback(t *testing.T) {
	text := Narrative(&models.Signals{})
	if !strings.Contains(text, "no dominant conviction") {
		t.Fatalf("expected fallback sentence, got %q", text)
	}
}

func TestNarrativeNilSignals(t *testing.T) {
	if got := Narrative(nil); got != "" {
		t.Fatalf("expected empty narrative, got %q", got)
	}
}
