package monitoring

import (
	"time"

	"github.com/google/uuid"
)

// Server status values reported by StatusSection.
const (
	StatusStarting = "STARTING"
	StatusUp       = "UP"
	StatusDown     = "DOWN"
)

type statusConfig struct {
	id       Identifier
	serverID string
	version  string
	status   func() string
	now      func() time.Time
}

// StatusOption configures a StatusSection constructed by NewStatusSection.
type StatusOption func(*statusConfig)

// WithServerID sets the reported server id. By default a random UUID is generated
// once per section.
func WithServerID(id string) StatusOption {
	return func(cfg *statusConfig) { cfg.serverID = id }
}

func WithVersion(v string) StatusOption {
	return func(cfg *statusConfig) { cfg.version = v }
}

// WithStatusFunc sets the function queried for the current status on each snapshot.
func WithStatusFunc(fn func() string) StatusOption {
	return func(cfg *statusConfig) { cfg.status = fn }
}

func WithStatusClock(now func() time.Time) StatusOption {
	return func(cfg *statusConfig) { cfg.now = now }
}

// WithStatusIdentifier overrides the default domain:type=Server identifier.
func WithStatusIdentifier(id Identifier) StatusOption {
	return func(cfg *statusConfig) { cfg.id = id }
}

// StatusSection reports server identity, version, status and uptime.
type StatusSection struct {
	cfg       statusConfig
	startedAt time.Time
}

// NewStatusSection returns a server status section. The start time is taken at construction.
func NewStatusSection(domain string, opts ...StatusOption) *StatusSection {
	if domain == "" {
		domain = DefaultDomain
	}
	cfg := statusConfig{
		id:     Identifier{Domain: domain, Type: "Server"},
		status: func() string { return StatusUp },
		now:    time.Now,
	}
	for _, o := range opts {
		if o != nil {
			o(&cfg)
		}
	}
	if cfg.serverID == "" {
		cfg.serverID = uuid.NewString()
	}
	if cfg.status == nil {
		cfg.status = func() string { return StatusUp }
	}
	if cfg.now == nil {
		cfg.now = time.Now
	}
	return &StatusSection{cfg: cfg, startedAt: cfg.now()}
}

func (s *StatusSection) Identifier() Identifier { return s.cfg.id }

// ServerID returns the reported server id.
func (s *StatusSection) ServerID() string { return s.cfg.serverID }

func (s *StatusSection) Snapshot() ([]Attribute, error) {
	attrs := []Attribute{
		String("id", s.cfg.serverID),
	}
	if s.cfg.version != "" {
		attrs = append(attrs, String("version", s.cfg.version))
	}
	return append(attrs,
		String("status", s.cfg.status()),
		String("startedAt", s.startedAt.UTC().Format(time.RFC3339)),
		Int("uptimeSeconds", int64(s.cfg.now().Sub(s.startedAt)/time.Second)),
	), nil
}
