package journal

import (
	"fmt"

	"codeberg.org/pointwerk/e57"
)

const (
	defaultDirPerm = 0o755
	defaultDBPath  = "e57-journal.db"

	defaultBatchSize    = 32
	defaultBatchTimeout = 5
)

type Config struct {
	DBPath string
	// BatchSize is the number of entries buffered before a write; 0
	// disables batching and writes every entry immediately.
	BatchSize int
	// BatchTimeout is the background flush interval in seconds.
	BatchTimeout int
}

func DefaultConfig() Config {
	return Config{
		DBPath:       defaultDBPath,
		BatchSize:    defaultBatchSize,
		BatchTimeout: defaultBatchTimeout,
	}
}

func (c Config) Validate() error {
	if c.DBPath == "" {
		return e57.New(e57.ErrBadConfiguration, "reason=journal DBPath is empty")
	}
	if c.BatchSize < 0 || c.BatchTimeout < 0 {
		return e57.New(e57.ErrBadConfiguration,
			fmt.Sprintf("BatchSize=%d BatchTimeout=%d", c.BatchSize, c.BatchTimeout))
	}

	return nil
}
