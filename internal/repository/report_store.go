package repository

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"CoinPulse/internal/domain/models"
	"CoinPulse/internal/domain/repository"
	xlogger "CoinPulse/pkg/logger"
)

// FileReportStore keeps the last aggregate report in one JSON file.
// Freshness is derived from the file's mtime, not a stored expiry.
type FileReportStore struct {
	path   string
	ttl    time.Duration
	logger *xlogger.Logger

	// now is swappable for tests
	now func() time.Time
}

// NewFileReportStore creates the disk-backed report cache.
func NewFileReportStore(path string, ttl time.Duration, logger *xlogger.Logger) repository.ReportStore {
	return &FileReportStore{
		path:   path,
		ttl:    ttl,
		logger: logger,
		now:    time.Now,
	}
}

// Load returns the cached report if it is fresh and structurally sound.
// Absence, staleness and malformed payloads are all plain misses.
func (s *FileReportStore) Load(_ context.Context) (*models.AggregateReport, bool) {
	info, err := os.Stat(s.path)
	if err != nil {
		return nil, false
	}
	if s.now().Sub(info.ModTime()) >= s.ttl {
		return nil, false
	}

	b, err := os.ReadFile(s.path)
	if err != nil {
		return nil, false
	}

	var report models.AggregateReport
	if err := json.Unmarshal(b, &report); err != nil {
		s.logger.Warn("report cache unreadable, treating as miss", xlogger.Error(err))
		return nil, false
	}
	if len(report.Reports) == 0 || report.GeneratedAt.IsZero() {
		return nil, false
	}
	return &report, true
}

// Store serializes the report to the cache path. Called fire-and-forget;
// failures are logged, never surfaced.
func (s *FileReportStore) Store(_ context.Context, report *models.AggregateReport) {
	b, err := json.Marshal(report)
	if err != nil {
		s.logger.Error("report cache marshal failed", xlogger.Error(err))
		return
	}

	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			s.logger.Error("report cache dir create failed", xlogger.Error(err))
			return
		}
	}

	if err := os.WriteFile(s.path, b, 0o644); err != nil {
		s.logger.Error("report cache write failed",
			xlogger.String("path", s.path),
			xlogger.Error(err),
		)
	}
}
