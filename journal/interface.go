package journal

import (
	"context"
	"time"

	"codeberg.org/pointwerk/e57"
)

// Recorder defines the core domain interface: persisting handled
// exceptions for post-mortem inspection.
type Recorder interface {
	Record(ctx context.Context, ex *e57.Exception, site Site) error
	Recent(ctx context.Context, limit int) ([]Entry, error)
	Close() error
}

// Site identifies where an exception was finally handled, as distinct
// from the source location stored in the exception itself.
type Site struct {
	File     string
	Line     int
	Function string
}

// Entry is one persisted exception report.
type Entry struct {
	Timestamp         time.Time
	Code              e57.ErrorCode
	Description       string
	Context           string
	SourceFile        string
	SourceLine        int
	SourceFunction    string
	ReportingFile     string
	ReportingLine     int
	ReportingFunction string
}
