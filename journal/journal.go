package journal

import (
	"context"
	"time"

	"codeberg.org/pointwerk/e57"
	"codeberg.org/pointwerk/e57/logger"
)

type service struct {
	repo Repository
	cfg  Config
}

// NewRecorder opens (or creates) the journal database named by cfg and
// returns a Recorder persisting exception reports to it. The journal is
// an optional collaborator: nothing in the error-reporting core depends
// on it, and a library built without it behaves identically.
func NewRecorder(cfg Config, log logger.Logger) (Recorder, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	repo, err := NewRepository(cfg, log)
	if err != nil {
		return nil, err // Already carries the specific code
	}

	return &service{
		repo: repo,
		cfg:  cfg,
	}, nil
}

func (s *service) Record(ctx context.Context, ex *e57.Exception, site Site) error {
	if ex == nil {
		return e57.New(e57.ErrBadAPIArgument, "reason=nil exception")
	}

	select {
	case <-ctx.Done():
		return e57.New(e57.ErrWriteFailed, "err="+ctx.Err().Error())
	default:
	}

	entry := &Entry{
		Timestamp:         time.Now().UTC(),
		Code:              ex.Code(),
		Description:       e57.Describe(ex.Code()),
		Context:           ex.Context(),
		SourceFile:        ex.SourceFileName(),
		SourceLine:        ex.SourceLineNumber(),
		SourceFunction:    ex.SourceFunctionName(),
		ReportingFile:     site.File,
		ReportingLine:     site.Line,
		ReportingFunction: site.Function,
	}

	return s.repo.Store(entry)
}

func (s *service) Recent(ctx context.Context, limit int) ([]Entry, error) {
	return s.repo.Recent(ctx, limit)
}

func (s *service) Close() error {
	return s.repo.Close()
}
