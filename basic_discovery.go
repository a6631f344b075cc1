package monitoring

import (
	"errors"
	"fmt"
	"sort"
	"sync"
	"sync/atomic"
	"time"
)

// BasicDiscovery is the in-memory reference implementation of Discovery and Inspector.
// It is concurrency-safe. Bindings live in a sync.Map keyed by Identifier, and Register
// relies on LoadOrStore, so duplicate detection and insertion happen in one atomic step.
type BasicDiscovery struct {
	cfg    *basicDiscoveryConfig
	logger logger

	bindings sync.Map // map[Identifier]Accessor
	journal  *journal

	violations atomic.Int32
}

var (
	_ Discovery = (*BasicDiscovery)(nil)
	_ Inspector = (*BasicDiscovery)(nil)
)

// NewBasicDiscovery constructs an empty BasicDiscovery.
// Accepts optional functional options to customize behavior.
func NewBasicDiscovery(opts ...DiscoveryOption) *BasicDiscovery {
	cfg := &basicDiscoveryConfig{journalSize: defaultJournalSize}
	for _, o := range opts {
		if o != nil {
			o(cfg)
		}
	}
	l := cfg.logger
	if l == nil {
		l = newNoopLogger()
	}
	if cfg.now == nil {
		cfg.now = time.Now
	}
	return &BasicDiscovery{cfg: cfg, logger: l, journal: newJournal(cfg.journalSize)}
}

var defaultDiscovery = sync.OnceValue(func() *BasicDiscovery { return NewBasicDiscovery() })

// Default returns the process-wide discovery facility. It is created on first use
// and lives for the rest of the process.
func Default() *BasicDiscovery { return defaultDiscovery() }

// Register implements Discovery.
func (d *BasicDiscovery) Register(id Identifier, a Accessor) error {
	if err := id.Validate(); err != nil {
		return err
	}
	if a == nil {
		return fmt.Errorf("monitoring: nil accessor for %s", id)
	}
	if _, loaded := d.bindings.LoadOrStore(id, a); loaded {
		d.logger.Debugf("[monitoring] rejected duplicate registration of %s", id)
		return fmt.Errorf("%w: %s", ErrDuplicateRegistration, id)
	}
	d.journal.record(Event{Kind: EventRegistered, Identifier: id, At: d.cfg.now()})
	d.logger.Debugf("[monitoring] registered %s", id)
	return nil
}

// Unregister implements Discovery.
func (d *BasicDiscovery) Unregister(id Identifier) {
	if _, loaded := d.bindings.LoadAndDelete(id); !loaded {
		return
	}
	d.journal.record(Event{Kind: EventUnregistered, Identifier: id, At: d.cfg.now()})
	d.logger.Debugf("[monitoring] unregistered %s", id)
}

// Lookup implements Discovery.
func (d *BasicDiscovery) Lookup(id Identifier) (Binding, bool) {
	v, ok := d.bindings.Load(id)
	if !ok {
		return Binding{}, false
	}
	a, ok := v.(Accessor)
	if !ok {
		// invariant violation: wrong type in map
		d.reportInvariantViolation("accessor_type", id)
		return Binding{}, false
	}
	return Binding{Identifier: id, Accessor: a}, true
}

// Read looks id up and returns its current attributes. It returns an error matching
// ErrNotFound when id is not registered and a *CollectionError when the read fails.
// A failed read leaves the binding in place.
func (d *BasicDiscovery) Read(id Identifier) ([]Attribute, error) {
	b, ok := d.Lookup(id)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	attrs, err := b.Read()
	if err != nil {
		return nil, newCollectionError(id, err)
	}
	return attrs, nil
}

// List returns the registered identifiers sorted by their canonical form.
func (d *BasicDiscovery) List() []Identifier {
	return d.collect(func(Identifier) bool { return true })
}

// Query returns the registered identifiers of one domain, sorted.
func (d *BasicDiscovery) Query(domain string) []Identifier {
	return d.collect(func(id Identifier) bool { return id.Domain == domain })
}

func (d *BasicDiscovery) collect(keep func(Identifier) bool) []Identifier {
	out := make([]Identifier, 0)
	d.bindings.Range(func(k, _ interface{}) bool {
		id, ok := k.(Identifier)
		if !ok {
			return true // skip invalid entries
		}
		if keep(id) {
			out = append(out, id)
		}
		return true
	})
	sort.Slice(out, func(i, j int) bool { return out[i].String() < out[j].String() })
	return out
}

// Dump reads every registered section. Sections unregistered between listing and
// reading are skipped; failed reads are kept with Err set.
func (d *BasicDiscovery) Dump() []Entry {
	ids := d.List()
	out := make([]Entry, 0, len(ids))
	for _, id := range ids {
		attrs, err := d.Read(id)
		if errors.Is(err, ErrNotFound) {
			continue
		}
		if err != nil {
			d.logger.Warnf("[monitoring] reading %s: %v", id, err)
		}
		out = append(out, Entry{Identifier: id, Attributes: attrs, Err: err})
	}
	return out
}

// Events returns the retained registration events, oldest first.
func (d *BasicDiscovery) Events() []Event {
	return d.journal.snapshot()
}

// reportInvariantViolation reports unexpected internal states. In release builds it logs
// up to 10 times per discovery; in debug builds (or under race detector) it panics to
// catch bugs early.
func (d *BasicDiscovery) reportInvariantViolation(kind string, id Identifier) {
	const maxReports = 10
	if d.violations.Add(1) > maxReports {
		return
	}

	msg := "[monitoring] invariant violation: " + kind + " for " + id.String()

	if isDebugBuild() {
		panic(msg)
	}

	d.logger.Warnf("%s", msg)
}
