package news

import (
	"context"
	"encoding/json"
	"os"
	"os/exec"
	"strconv"
	"time"

	"CoinPulse/internal/domain/models"
	xlogger "CoinPulse/pkg/logger"
)

// Runner invokes the external headline aggregator once per report cycle and
// reads its output file. Every failure mode (missing binary, timeout,
// non-zero exit, absent or malformed output) collapses to an empty pool.
type Runner struct {
	command     string
	outputPath  string
	windowHours int
	timeout     time.Duration
	logger      *xlogger.Logger
}

func NewRunner(command, outputPath string, windowHours int, timeout time.Duration, logger *xlogger.Logger) *Runner {
	return &Runner{
		command:     command,
		outputPath:  outputPath,
		windowHours: windowHours,
		timeout:     timeout,
		logger:      logger,
	}
}

// Fetch runs the aggregator under a hard timeout and parses its output.
func (r *Runner) Fetch(ctx context.Context) []models.HeadlineItem {
	if r.command != "" {
		runCtx, cancel := context.WithTimeout(ctx, r.timeout)
		defer cancel()

		cmd := exec.CommandContext(runCtx, r.command, "--hours", strconv.Itoa(r.windowHours), "--out", r.outputPath)
		if out, err := cmd.CombinedOutput(); err != nil {
			r.logger.Error("headline aggregator failed",
				xlogger.String("command", r.command),
				xlogger.Error(err),
				xlogger.String("output", truncate(string(out), 512)),
			)
			// stale output from a previous run is still worth reading
		}
	}

	return r.readPool()
}

func (r *Runner) readPool() []models.HeadlineItem {
	b, err := os.ReadFile(r.outputPath)
	if err != nil {
		r.logger.Warn("no headline pool available", xlogger.String("path", r.outputPath), xlogger.Error(err))
		return nil
	}

	var items []models.HeadlineItem
	if err := json.Unmarshal(b, &items); err != nil {
		r.logger.Warn("headline pool is not a JSON array", xlogger.String("path", r.outputPath), xlogger.Error(err))
		return nil
	}
	return items
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
