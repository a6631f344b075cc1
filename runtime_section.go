package monitoring

import (
	"runtime"
	"time"
)

// DefaultDomain is the identifier domain of the built-in sections.
const DefaultDomain = "monitoring"

// RuntimeSection reports Go runtime state: scheduler, heap and GC figures.
type RuntimeSection struct {
	id Identifier
}

// NewRuntimeSection returns a runtime section registered under domain:type=Runtime.
// An empty domain selects DefaultDomain.
func NewRuntimeSection(domain string) *RuntimeSection {
	if domain == "" {
		domain = DefaultDomain
	}
	return &RuntimeSection{id: Identifier{Domain: domain, Type: "Runtime"}}
}

func (s *RuntimeSection) Identifier() Identifier { return s.id }

// Snapshot reads runtime.MemStats, which briefly stops the world.
func (s *RuntimeSection) Snapshot() ([]Attribute, error) {
	var ms runtime.MemStats
	runtime.ReadMemStats(&ms)

	return []Attribute{
		String("goVersion", runtime.Version()),
		String("os", runtime.GOOS),
		String("arch", runtime.GOARCH),
		Int("numCPU", int64(runtime.NumCPU())),
		Int("gomaxprocs", int64(runtime.GOMAXPROCS(0))),
		Int("goroutines", int64(runtime.NumGoroutine())),
		Int("heapAllocBytes", int64(ms.HeapAlloc)),
		Int("heapSysBytes", int64(ms.HeapSys)),
		Int("heapObjects", int64(ms.HeapObjects)),
		Int("numGC", int64(ms.NumGC)),
		Float("gcPauseTotalSeconds", time.Duration(ms.PauseTotalNs).Seconds()),
	}, nil
}
