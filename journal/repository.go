package journal

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"codeberg.org/pointwerk/e57"
	"codeberg.org/pointwerk/e57/logger"

	_ "github.com/mattn/go-sqlite3"
)

// Repository defines the interface for journal storage.
type Repository interface {
	Store(entry *Entry) error
	Recent(ctx context.Context, limit int) ([]Entry, error)
	Close() error
}

type sqliteRepository struct {
	db  *sql.DB
	log logger.Logger
	cfg Config

	mu     sync.Mutex
	buffer []*Entry

	flushTicker   *time.Ticker
	shutdownChan  chan struct{}
	flushDoneChan chan struct{}
}

func NewRepository(cfg Config, log logger.Logger) (Repository, error) {
	if cfg.DBPath == "" {
		return nil, e57.New(e57.ErrBadConfiguration, "reason=journal DBPath is empty")
	}

	log.Debug().Msgf("Initializing exception journal at: %s", cfg.DBPath)

	if dir := filepath.Dir(cfg.DBPath); dir != "." {
		if err := os.MkdirAll(dir, defaultDirPerm); err != nil {
			return nil, e57.New(e57.ErrOpenFailed, "phase=create_directory path="+cfg.DBPath+" err="+err.Error())
		}
	}

	// Open database with WAL and auto-vacuum pragmas
	dsn := cfg.DBPath + "?_journal=WAL&_auto_vacuum=2"
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, e57.New(e57.ErrOpenFailed, "phase=open_database err="+err.Error())
	}

	if err := initSchema(db); err != nil {
		db.Close()
		return nil, err
	}

	repo := &sqliteRepository{
		db:            db,
		log:           log,
		cfg:           cfg,
		buffer:        make([]*Entry, 0, cfg.BatchSize),
		shutdownChan:  make(chan struct{}),
		flushDoneChan: make(chan struct{}),
	}

	if cfg.BatchSize > 0 && cfg.BatchTimeout > 0 {
		repo.flushTicker = time.NewTicker(time.Duration(cfg.BatchTimeout) * time.Second)
		go repo.flusher()
	}

	return repo, nil
}

func (r *sqliteRepository) Store(entry *Entry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.cfg.BatchSize <= 0 {
		return r.insert([]*Entry{entry})
	}

	r.buffer = append(r.buffer, entry)
	if len(r.buffer) >= r.cfg.BatchSize {
		return r.flushLocked()
	}

	return nil
}

func (r *sqliteRepository) Recent(ctx context.Context, limit int) ([]Entry, error) {
	if limit <= 0 {
		return nil, e57.New(e57.ErrBadAPIArgument, fmt.Sprintf("limit=%d", limit))
	}

	r.mu.Lock()
	flushErr := r.flushLocked()
	r.mu.Unlock()
	if flushErr != nil {
		return nil, flushErr
	}

	rows, err := r.db.QueryContext(ctx, `
        SELECT timestamp, code, description, context,
               source_file, source_line, source_function,
               reporting_file, reporting_line, reporting_function
        FROM exceptions
        ORDER BY id DESC
        LIMIT ?
    `, limit)
	if err != nil {
		return nil, e57.New(e57.ErrReadFailed, "err="+err.Error())
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var (
			entry Entry
			ts    int64
			code  int
		)
		err := rows.Scan(&ts, &code, &entry.Description, &entry.Context,
			&entry.SourceFile, &entry.SourceLine, &entry.SourceFunction,
			&entry.ReportingFile, &entry.ReportingLine, &entry.ReportingFunction)
		if err != nil {
			return nil, e57.New(e57.ErrReadFailed, "phase=scan err="+err.Error())
		}
		entry.Timestamp = time.Unix(ts, 0).UTC()
		entry.Code = e57.ErrorCode(code)
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, e57.New(e57.ErrReadFailed, "err="+err.Error())
	}

	return entries, nil
}

func (r *sqliteRepository) Close() error {
	if r.flushTicker != nil {
		close(r.shutdownChan)
		r.flushTicker.Stop()
		<-r.flushDoneChan
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	flushErr := r.flushLocked()

	// Checkpoint WAL and cleanup on close
	if _, err := r.db.Exec("PRAGMA wal_checkpoint(TRUNCATE)"); err != nil {
		r.log.Warn().Msgf("WAL checkpoint failed on close: %v", err)
	}

	if err := r.db.Close(); err != nil {
		return e57.New(e57.ErrCloseFailed, "err="+err.Error())
	}

	return flushErr
}

// flushLocked writes the buffered entries; the caller holds r.mu. The
// buffer is cleared even when the write fails, so a failing database
// cannot grow it without bound.
func (r *sqliteRepository) flushLocked() error {
	if len(r.buffer) == 0 {
		return nil
	}

	entries := r.buffer
	r.buffer = r.buffer[:0]

	return r.insert(entries)
}

func (r *sqliteRepository) insert(entries []*Entry) error {
	tx, err := r.db.Begin()
	if err != nil {
		return e57.New(e57.ErrWriteFailed, "phase=begin err="+err.Error())
	}

	stmt, err := tx.Prepare(`
        INSERT INTO exceptions (
            timestamp, code, description, context,
            source_file, source_line, source_function,
            reporting_file, reporting_line, reporting_function
        ) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
    `)
	if err != nil {
		tx.Rollback()
		return e57.New(e57.ErrWriteFailed, "phase=prepare err="+err.Error())
	}
	defer stmt.Close()

	for _, entry := range entries {
		_, err := stmt.Exec(
			entry.Timestamp.Unix(),
			int(entry.Code),
			entry.Description,
			entry.Context,
			entry.SourceFile,
			entry.SourceLine,
			entry.SourceFunction,
			entry.ReportingFile,
			entry.ReportingLine,
			entry.ReportingFunction,
		)
		if err != nil {
			tx.Rollback()
			return e57.New(e57.ErrWriteFailed, "err="+err.Error())
		}
	}

	if err := tx.Commit(); err != nil {
		return e57.New(e57.ErrWriteFailed, "phase=commit err="+err.Error())
	}

	return nil
}

func (r *sqliteRepository) flusher() {
	defer close(r.flushDoneChan)

	for {
		select {
		case <-r.flushTicker.C:
			r.mu.Lock()
			err := r.flushLocked()
			r.mu.Unlock()
			if err != nil {
				var ex *e57.Exception
				if errors.As(err, &ex) {
					r.log.ErrorWithCode(ex).Msg("Journal flush failed")
				} else {
					r.log.Error().Msgf("Journal flush failed: %v", err)
				}
			}
		case <-r.shutdownChan:
			return
		}
	}
}
