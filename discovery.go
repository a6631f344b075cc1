package monitoring

import "time"

// Discovery maps identifiers to live accessors. It is the process-wide facility
// observers query to find registered sections.
// Implementations must be safe for concurrent use, and Register must be atomic with
// respect to Lookup: no reader observes a half-registered binding.
type Discovery interface {
	// Register binds id to a. It fails with ErrDuplicateRegistration if id is already bound.
	Register(id Identifier, a Accessor) error
	// Unregister removes the binding for id. Removing an absent id is not an error.
	Unregister(id Identifier)
	// Lookup returns the binding for id, if any.
	Lookup(id Identifier) (Binding, bool)
}

// Binding is a registered (identifier, accessor) pair.
type Binding struct {
	Identifier Identifier
	Accessor   Accessor
}

// Read queries the accessor.
func (b Binding) Read() ([]Attribute, error) {
	if b.Accessor == nil {
		return nil, &CollectionError{Identifier: b.Identifier}
	}
	return b.Accessor.Attributes()
}

// Inspector is an optional read-only capability for admin/debug tooling.
// Methods must be safe for concurrent use; results are point-in-time snapshots.
type Inspector interface {
	List() []Identifier
	Query(domain string) []Identifier
	Dump() []Entry
	Events() []Event
}

// Entry is one section in a Dump. Err is set when the read failed.
type Entry struct {
	Identifier Identifier
	Attributes []Attribute
	Err        error
}

type EventKind string

const (
	EventRegistered   EventKind = "registered"
	EventUnregistered EventKind = "unregistered"
)

// Event is one registration change recorded in a discovery journal.
type Event struct {
	Kind       EventKind
	Identifier Identifier
	At         time.Time
}
