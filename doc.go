/*
Package monitoring makes diagnostic sections of a Go process discoverable by name while
they are started, and removes them cleanly when they are stopped.

# Overview

The library is organized around three parts:

1. Section: a named source of diagnostic attributes. A section declares the Identifier it
registers under and produces an ordered snapshot of attributes on demand.

	type Section interface {
	  Identifier() Identifier
	  Snapshot() ([]Attribute, error)
	}

2. Discovery: the process-wide facility mapping identifiers to live accessors.
Implementations must be safe for concurrent use, reject duplicate identifiers with
ErrDuplicateRegistration, and treat removal of an absent identifier as success.

	type Discovery interface {
	  Register(id Identifier, a Accessor) error
	  Unregister(id Identifier)
	  Lookup(id Identifier) (Binding, bool)
	}

3. Lifecycle: wraps one Section and one Discovery. Start registers the section,
Stop unregisters it. Stop is idempotent and is a no-op on a lifecycle that was never
started; Start on a started lifecycle fails with ErrInvalidState.

# Reference implementation

BasicDiscovery implements Discovery and the optional Inspector interface with a sync.Map
keyed by Identifier. Register uses LoadOrStore, so no reader observes a half-registered
binding. Default returns the process-wide instance; tests should construct their own
with NewBasicDiscovery.

How it works (high level)

 1. Lifecycle.Start computes the section identifier and registers an accessor that
    delegates to Section.Snapshot.
 2. Observers call Lookup (or BasicDiscovery.Read) and read the accessor. A failing or
    panicking snapshot is reported as *CollectionError for that read only.
 3. Lifecycle.Stop removes the identifier recorded at Start.
 4. Invariant violations inside BasicDiscovery are logged in release builds and panic in
    debug and race builds.

Examples

	d := monitoring.NewBasicDiscovery()
	id := monitoring.MustIdentifier("org.example", "Health", "")
	health := monitoring.NewSection(id, func() ([]monitoring.Attribute, error) {
	    return []monitoring.Attribute{monitoring.String("status", "UP")}, nil
	})

	lc := monitoring.NewLifecycle(health, d)
	if err := lc.Start(); err != nil {
	    // duplicate identifier or already started
	}
	defer lc.Stop()

	attrs, err := d.Read(id) // [status=UP]

Built-in sections report Go runtime state (RuntimeSection), process information
(ProcessSection) and server status (StatusSection). CachedSection memoizes an expensive
section for a TTL. Group starts several lifecycles in order and stops them in reverse.

# Build and test

- Run unit tests:

	go test ./...

- Run with the race detector (enables stricter invariant behavior):

	go test -race ./...

- Enable debug build tag (debug invariants enabled):

	go test -tags=debug ./...
*/
package monitoring
