package monitoring

import (
	"os"
)

// ProcessSection reports operating-system process information.
// On unix it includes resource usage from getrusage(2).
type ProcessSection struct {
	id Identifier
}

// NewProcessSection returns a process section registered under domain:type=Process.
// An empty domain selects DefaultDomain.
func NewProcessSection(domain string) *ProcessSection {
	if domain == "" {
		domain = DefaultDomain
	}
	return &ProcessSection{id: Identifier{Domain: domain, Type: "Process"}}
}

func (s *ProcessSection) Identifier() Identifier { return s.id }

// Snapshot fails with a CollectionError only when resource usage cannot be read.
func (s *ProcessSection) Snapshot() ([]Attribute, error) {
	attrs := []Attribute{
		Int("pid", int64(os.Getpid())),
		Int("ppid", int64(os.Getppid())),
	}
	if exe, err := os.Executable(); err == nil {
		attrs = append(attrs, String("executable", exe))
	}
	if wd, err := os.Getwd(); err == nil {
		attrs = append(attrs, String("workingDir", wd))
	}

	usage, err := readResourceUsage()
	if err != nil {
		return nil, &CollectionError{Identifier: s.id, Err: err}
	}
	return append(attrs, usage...), nil
}
