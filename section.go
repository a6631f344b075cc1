package monitoring

import "fmt"

// Section is a named source of diagnostic attributes.
//
// Identifier must be pure: it returns the same value for the whole process run.
// Snapshot may read live process state but must not change it. A failing Snapshot
// only means "no data for this read"; it never unregisters the section.
type Section interface {
	Identifier() Identifier
	Snapshot() ([]Attribute, error)
}

// SnapshotFunc produces the attributes of a section built with NewSection.
type SnapshotFunc func() ([]Attribute, error)

type funcSection struct {
	id Identifier
	fn SnapshotFunc
}

// NewSection adapts fn into a Section registered under id.
// A nil fn yields an empty snapshot.
func NewSection(id Identifier, fn SnapshotFunc) Section {
	return &funcSection{id: id, fn: fn}
}

func (s *funcSection) Identifier() Identifier { return s.id }

func (s *funcSection) Snapshot() ([]Attribute, error) {
	if s.fn == nil {
		return []Attribute{}, nil
	}
	return s.fn()
}

// Accessor is what a Discovery stores for a registered identifier.
// Observers call Attributes to read the current snapshot.
type Accessor interface {
	Attributes() ([]Attribute, error)
}

// AccessorFunc adapts a function into an Accessor.
type AccessorFunc func() ([]Attribute, error)

// Attributes implements Accessor.
func (f AccessorFunc) Attributes() ([]Attribute, error) { return f() }

// sectionAccessor delegates to Section.Snapshot. Failures and panics are reported as
// *CollectionError and the returned slice is always a copy.
type sectionAccessor struct {
	id      Identifier
	section Section
}

func newSectionAccessor(id Identifier, s Section) *sectionAccessor {
	return &sectionAccessor{id: id, section: s}
}

func (a *sectionAccessor) Attributes() (attrs []Attribute, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			attrs = nil
			err = &CollectionError{Identifier: a.id, Err: fmt.Errorf("panic during snapshot: %v", rec)}
		}
	}()

	out, err := a.section.Snapshot()
	if err != nil {
		return nil, newCollectionError(a.id, err)
	}
	return copyAttributes(out), nil
}
