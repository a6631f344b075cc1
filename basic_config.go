package monitoring

import "time"

const defaultJournalSize = 64

type basicDiscoveryConfig struct {
	// number of registration events kept by Events; 0 disables the journal.
	journalSize int
	logger      logger
	now         func() time.Time
}

// DiscoveryOption configures a BasicDiscovery constructed by NewBasicDiscovery.
type DiscoveryOption func(*basicDiscoveryConfig)

// WithJournalSize sets how many registration events are retained. Negative values are treated as 0.
func WithJournalSize(n int) DiscoveryOption {
	return func(cfg *basicDiscoveryConfig) {
		if n < 0 {
			n = 0
		}
		cfg.journalSize = n
	}
}

func WithDiscoveryLogger(l Logger) DiscoveryOption {
	return func(cfg *basicDiscoveryConfig) { cfg.logger = l }
}

// WithClock overrides the time source used to stamp journal events.
func WithClock(now func() time.Time) DiscoveryOption {
	return func(cfg *basicDiscoveryConfig) { cfg.now = now }
}
