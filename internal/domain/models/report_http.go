package models

// ReportRequest binds the report endpoint query. Refresh bypasses the cache
// read path; the fresh result is still written behind.
type ReportRequest struct {
	Refresh bool `query:"refresh" json:"refresh" default:"false"`
}
