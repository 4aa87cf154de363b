package finbrief

import (
	"os"
	"path/filepath"
	"time"
)

// Environment variable overriding the default data directory.
const dataDirEnv = "FINBRIEF_DATA_DIR"

// Freshness windows per data class, and the ceiling past which cached data
// is no longer usable even as a degraded fallback.
const (
	MarketTTL   = 5 * time.Minute
	NewsTTL     = 15 * time.Minute
	CalendarTTL = time.Hour

	StaleMax = 24 * time.Hour
)

// Messaging channels cap a single message at this many characters.
const MaxMessageLen = 4096

// Config carries the knobs of the application. Zero values are filled in by
// DefaultConfig; commands override individual fields from flags.
type Config struct {
	// DataDir is where cache, rate limiter, portfolio and alert state live.
	DataDir string

	// Currency used to report portfolio totals.
	Currency string

	DefaultForexPair   string
	WatchedIndices     []string
	WatchedCommodities []string

	// Token bucket for outbound market-data calls.
	RateLimitCalls  int
	RateLimitPeriod time.Duration
}

// DefaultConfig returns the stock configuration: data under
// $FINBRIEF_DATA_DIR (or ~/.finbrief), AUD reporting, the usual watchlists.
func DefaultConfig() Config {
	dir := os.Getenv(dataDirEnv)
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			home = "."
		}
		dir = filepath.Join(home, ".finbrief")
	}
	return Config{
		DataDir:            dir,
		Currency:           "AUD",
		DefaultForexPair:   "AUDUSD=X",
		WatchedIndices:     []string{"^AXJO", "^GSPC", "^DJI", "^IXIC", "^FTSE", "^N225"},
		WatchedCommodities: []string{"GC=F", "SI=F", "CL=F", "HG=F"},
		RateLimitCalls:     5,
		RateLimitPeriod:    time.Minute,
	}
}
