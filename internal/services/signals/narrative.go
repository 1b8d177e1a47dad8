package signals

import (
	"fmt"
	"strings"

	"CoinPulse/internal/domain/models"
)

// Narrative renders a short paragraph from a Signals value. The clauses fire
// in fixed priority order: sweep, then lower highs, then volume spike. When
// nothing fires the fallback sentence stands alone.
func Narrative(s *models.Signals) string {
	if s == nil {
		return ""
	}

	var b strings.Builder
	if s.Sweep {
		fmt.Fprintf(&b, " A liquidity sweep flushed price %.1f%% inside the window before it stabilised.", s.MaxDropPct)
	}
	if s.LowerHighs {
		b.WriteString(" The chart keeps printing lower highs, a bearish structure until broken.")
	}
	if s.VolumeSpike {
		b.WriteString(" The latest hourly volume ran well above its weekly median, adding conviction to the move.")
	}
	if b.Len() == 0 {
		return " Mixed action this week with no dominant conviction either way."
	}
	return b.String()
}
