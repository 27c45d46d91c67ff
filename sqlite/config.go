package sqlite

import (
	"fmt"
	"net/url"
	"path/filepath"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config describes how to open the embedded store.
type Config struct {
	Path        string        `env:"ADAPTER_SQLITE_PATH,required"`
	BusyTimeout time.Duration `env:"ADAPTER_SQLITE_BUSY_TIMEOUT" envDefault:"5s"`
	JournalMode string        `env:"ADAPTER_SQLITE_JOURNAL_MODE" envDefault:"WAL"`
	ForeignKeys bool          `env:"ADAPTER_SQLITE_FOREIGN_KEYS" envDefault:"true"`
}

// ParseEnv loads cfg from environment variables.
func ParseEnv(cfg *Config) error {
	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// dsn returns the driver connection string with the configured pragmas.
func (c Config) dsn() string {
	params := url.Values{}
	if c.BusyTimeout > 0 {
		params.Add("_pragma", fmt.Sprintf("busy_timeout(%d)", c.BusyTimeout.Milliseconds()))
	}
	if mode := strings.TrimSpace(c.JournalMode); mode != "" {
		params.Add("_pragma", fmt.Sprintf("journal_mode(%s)", strings.ToUpper(mode)))
	}
	if c.ForeignKeys {
		params.Add("_pragma", "foreign_keys(1)")
	}
	if len(params) == 0 {
		return c.Path
	}
	sep := "?"
	if strings.Contains(c.Path, "?") {
		sep = "&"
	}
	return c.Path + sep + params.Encode()
}

// cleanPath normalizes plain file paths. URI paths ("file:...") and paths
// carrying driver parameters are passed through untouched.
func cleanPath(path string) string {
	if strings.HasPrefix(path, "file:") || strings.Contains(path, "?") {
		return path
	}
	return filepath.Clean(path)
}
