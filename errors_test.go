package monitoring

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCollectionError(t *testing.T) {
	t.Parallel()

	cause := errors.New("connection refused")
	err := error(&CollectionError{Identifier: healthID, Err: cause})
	assert.ErrorIs(t, err, ErrCollection)
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "monitoring: snapshot collection failed for org.example:type=Health: connection refused", err.Error())

	bare := error(&CollectionError{Identifier: healthID})
	assert.ErrorIs(t, bare, ErrCollection)
	assert.Equal(t, "monitoring: snapshot collection failed for org.example:type=Health", bare.Error())
}

func TestNewCollectionError_DoesNotDoubleWrap(t *testing.T) {
	t.Parallel()

	inner := &CollectionError{Identifier: healthID, Err: errors.New("x")}
	assert.Same(t, inner, newCollectionError(Identifier{Domain: "other", Type: "T"}, inner))

	wrapped := newCollectionError(healthID, errors.New("y"))
	var ce *CollectionError
	assert.ErrorAs(t, wrapped, &ce)
	assert.Equal(t, healthID, ce.Identifier)
}

func TestBinding_ReadWithoutAccessor(t *testing.T) {
	t.Parallel()

	_, err := Binding{Identifier: healthID}.Read()
	assert.ErrorIs(t, err, ErrCollection)
}
