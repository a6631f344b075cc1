package monitoring

import (
	"errors"
	"fmt"
)

var (
	// ErrDuplicateRegistration is returned when an identifier is already bound in a Discovery.
	ErrDuplicateRegistration = errors.New("monitoring: identifier already registered")
	// ErrInvalidState is returned by Lifecycle.Start when the lifecycle is already started.
	ErrInvalidState = errors.New("monitoring: invalid lifecycle state")
	// ErrCollection marks a failed snapshot read. It never affects registration.
	ErrCollection = errors.New("monitoring: snapshot collection failed")
	// ErrNotFound is returned when reading an identifier that is not registered.
	ErrNotFound = errors.New("monitoring: identifier not found")
	// ErrInvalidIdentifier is returned for malformed identifiers.
	ErrInvalidIdentifier = errors.New("monitoring: invalid identifier")
)

// CollectionError reports that a section failed to produce a snapshot.
// errors.Is(err, ErrCollection) holds for every CollectionError.
type CollectionError struct {
	Identifier Identifier
	Err        error
}

func (e *CollectionError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s for %s", ErrCollection, e.Identifier)
	}
	return fmt.Sprintf("%s for %s: %v", ErrCollection, e.Identifier, e.Err)
}

// Unwrap exposes both the sentinel and the underlying cause.
func (e *CollectionError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrCollection}
	}
	return []error{ErrCollection, e.Err}
}

// newCollectionError wraps err unless it already is a CollectionError.
func newCollectionError(id Identifier, err error) error {
	var ce *CollectionError
	if errors.As(err, &ce) {
		return err
	}
	return &CollectionError{Identifier: id, Err: err}
}
