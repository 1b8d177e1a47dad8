package indicators

import "testing"

func TestSMAWindowMeans(t *testing.T) {
	got := SMA([]float64{1, 2, 3, 4, 5}, 3)
	want := []float64{2, 3, 4}
	if len(got) != len(want) {
		t.Fatalf("expected %d values, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("index %d: expected %v, got %v", i, want[i], got[i])
		}
	}
}

func TestSMAShortInput(t *testing.T) {
	if got := SMA([]float64{1, 2}, 3); got != nil {
		t.Fatalf("expected nil for short input, got %v", got)
	}
	if got := SMA(nil, 3); got != nil {
		t.Fatalf("expected nil for empty input, got %v", got)
	}
}

func TestSMAExactWindow(t *testing.T) {
	got := SMA([]float64{2, 4, 6}, 3)
	if len(got) != 1 || got[0] != 4 {
		t.Fatalf("expected [4], got %v", got)
	}
}

func TestRSIShortInput(t *testing.T) {
	vals := make([]float64, 14)
	for i := range vals {
		vals[i] = float64(i)
	}
	if got := RSI(vals, 14); got != nil {
		t.Fatalf("expected nil when len <= period, got %v", *got)
	}
}

func TestRSIAllGains(t *testing.T) {
	vals := make([]float64, 30)
	for i := range vals {
		vals[i] = 100 + float64(i)
	}
	got := RSI(vals, 14)
	if got == nil {
		t.Fatalf("expected value")
	}
	if *got != 100 {
		t.Fatalf("expected 100 for monotonic gains, got %v", *got)
	}
}

func TestRSIBounded(t *testing.T) {
	vals := []float64{44.34, 44.09, 44.15, 43.61, 44.33, 44.83, 45.10, 45.42,
		45.84, 46.08, 45.89, 46.03, 45.61, 46.28, 46.28, 46.00, 46.03, 46.41,
		46.22, 45.64, 46.21, 46.25, 45.71, 46.45, 45.78, 45.35, 44.03, 44.18,
		44.22, 44.57, 43.42, 42.66, 43.13}
	got := RSI(vals, 14)
	if got == nil {
		t.Fatalf("expected value")
	}
	if *got < 0 || *got > 100 {
		t.Fatalf("rsi out of bounds: %v", *got)
	}
	// mixed gains and losses should not pin the oscillator
	if *got == 0 || *got == 100 {
		t.Fatalf("expected interior value, got %v", *got)
	}
}
