package diag

import (
	"io"
	"os"
	"strings"

	"github.com/spf13/viper"

	"codeberg.org/pointwerk/e57"
	"codeberg.org/pointwerk/e57/logger"
)

const (
	// EnvConfig names the environment variable pointing at an optional
	// TOML file with diagnostic options.
	EnvConfig = "E57_DIAG_CONFIG"

	envPrefix = "E57"

	DefaultJournalDB = "e57-journal.db"
)

// Config holds the library's diagnostic options. None of them change the
// failure-signaling behavior itself, only how much of it is surfaced.
type Config struct {
	// Debug enables debug-level logging and verbose exception reports.
	Debug bool
	// Verbose enables info-level logging and verbose exception reports.
	Verbose bool
	// Journal enables the sqlite post-mortem journal.
	Journal bool
	// JournalDB is the journal database path.
	JournalDB string `mapstructure:"journal_db"`
}

// Load reads diagnostic options from the file named by E57_DIAG_CONFIG (if
// set) and from E57_-prefixed environment variables. Missing sources leave
// the defaults in place; a present but unreadable file is an error.
func Load() (*Config, error) {
	v := viper.New()

	v.SetDefault("debug", false)
	v.SetDefault("verbose", false)
	v.SetDefault("journal", false)
	v.SetDefault("journal_db", DefaultJournalDB)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path := os.Getenv(EnvConfig); path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("toml")
		if err := v.ReadInConfig(); err != nil {
			return nil, e57.New(e57.ErrBadConfiguration, "path="+path+" err="+err.Error())
		}
	}

	config := &Config{}
	if err := v.Unmarshal(config); err != nil {
		return nil, e57.New(e57.ErrBadConfiguration, "err="+err.Error())
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

func (c *Config) Validate() error {
	if c.Journal && c.JournalDB == "" {
		return e57.New(e57.ErrBadConfiguration, "reason=journal enabled without journal_db")
	}

	return nil
}

// Apply pushes the loaded options into the reporting policy and the
// logger. Log output goes to out.
func Apply(c *Config, out io.Writer) {
	if c.Debug || c.Verbose {
		e57.SetVerbosity(e57.Verbose)
	} else {
		e57.SetVerbosity(e57.Quiet)
	}

	logger.Init(out, c.Debug, c.Verbose)
}
