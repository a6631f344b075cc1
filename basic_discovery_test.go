package monitoring

import (
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func staticAccessor(attrs ...Attribute) Accessor {
	return AccessorFunc(func() ([]Attribute, error) { return attrs, nil })
}

func TestBasicDiscovery_RegisterLookupUnregister(t *testing.T) {
	t.Parallel()

	d := NewBasicDiscovery()
	_, ok := d.Lookup(healthID)
	require.False(t, ok)

	require.NoError(t, d.Register(healthID, staticAccessor(String("status", "UP"))))

	b, ok := d.Lookup(healthID)
	require.True(t, ok)
	assert.Equal(t, healthID, b.Identifier)
	attrs, err := b.Read()
	require.NoError(t, err)
	assert.Equal(t, []Attribute{String("status", "UP")}, attrs)

	d.Unregister(healthID)
	_, ok = d.Lookup(healthID)
	assert.False(t, ok)

	// removing an absent identifier is not an error
	assert.NotPanics(t, func() { d.Unregister(healthID) })
}

func TestBasicDiscovery_RegisterDuplicate(t *testing.T) {
	t.Parallel()

	d := NewBasicDiscovery()
	first := staticAccessor(String("who", "first"))
	require.NoError(t, d.Register(healthID, first))

	err := d.Register(healthID, staticAccessor(String("who", "second")))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDuplicateRegistration)
	assert.Contains(t, err.Error(), healthID.String())

	attrs, err := d.Read(healthID)
	require.NoError(t, err)
	assert.Equal(t, []Attribute{String("who", "first")}, attrs, "first binding must survive")
}

func TestBasicDiscovery_RegisterRejectsInvalidInput(t *testing.T) {
	t.Parallel()

	d := NewBasicDiscovery()
	assert.ErrorIs(t, d.Register(Identifier{Type: "t"}, staticAccessor()), ErrInvalidIdentifier)
	assert.Error(t, d.Register(healthID, nil))
	assert.Empty(t, d.List())
}

func TestBasicDiscovery_ConcurrentRegisterSameIdentifier(t *testing.T) {
	t.Parallel()

	d := NewBasicDiscovery()
	const n = 64
	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		success int
	)
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func() {
			defer wg.Done()
			err := d.Register(healthID, staticAccessor())
			if err == nil {
				mu.Lock()
				success++
				mu.Unlock()
				return
			}
			assert.ErrorIs(t, err, ErrDuplicateRegistration)
		}()
	}
	wg.Wait()
	assert.Equal(t, 1, success)
	assert.Len(t, d.List(), 1)
}

func TestBasicDiscovery_Read(t *testing.T) {
	t.Parallel()

	t.Run("not_found", func(t *testing.T) {
		t.Parallel()
		d := NewBasicDiscovery()
		_, err := d.Read(healthID)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("collection_error_keeps_binding", func(t *testing.T) {
		t.Parallel()
		d := NewBasicDiscovery()
		cause := errors.New("database unavailable")
		require.NoError(t, d.Register(healthID, AccessorFunc(func() ([]Attribute, error) { return nil, cause })))

		_, err := d.Read(healthID)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrCollection)
		assert.ErrorIs(t, err, cause)
		var ce *CollectionError
		require.True(t, errors.As(err, &ce))
		assert.Equal(t, healthID, ce.Identifier)

		_, ok := d.Lookup(healthID)
		assert.True(t, ok)
	})
}

func TestBasicDiscovery_ListAndQuery(t *testing.T) {
	t.Parallel()

	d := NewBasicDiscovery()
	ids := []Identifier{
		{Domain: "b", Type: "Server"},
		{Domain: "a", Type: "Runtime"},
		{Domain: "b", Type: "Process"},
		{Domain: "a", Type: "Runtime", Name: "2"},
	}
	for _, id := range ids {
		require.NoError(t, d.Register(id, staticAccessor()))
	}

	assert.Equal(t, []Identifier{
		{Domain: "a", Type: "Runtime"},
		{Domain: "a", Type: "Runtime", Name: "2"},
		{Domain: "b", Type: "Process"},
		{Domain: "b", Type: "Server"},
	}, d.List())
	assert.Equal(t, []Identifier{
		{Domain: "b", Type: "Process"},
		{Domain: "b", Type: "Server"},
	}, d.Query("b"))
	assert.Empty(t, d.Query("c"))
}

func TestBasicDiscovery_Dump(t *testing.T) {
	t.Parallel()

	logs := newRecordingLogger()
	d := NewBasicDiscovery(WithDiscoveryLogger(logs))
	okID := Identifier{Domain: "d", Type: "Ok"}
	badID := Identifier{Domain: "d", Type: "Bad"}
	require.NoError(t, d.Register(okID, staticAccessor(Int("n", 1))))
	require.NoError(t, d.Register(badID, AccessorFunc(func() ([]Attribute, error) {
		return nil, errors.New("boom")
	})))

	entries := d.Dump()
	require.Len(t, entries, 2)

	assert.Equal(t, badID, entries[0].Identifier)
	assert.ErrorIs(t, entries[0].Err, ErrCollection)
	assert.Nil(t, entries[0].Attributes)

	assert.Equal(t, okID, entries[1].Identifier)
	assert.NoError(t, entries[1].Err)
	assert.Equal(t, []Attribute{Int("n", 1)}, entries[1].Attributes)

	require.Len(t, logs.get("warn"), 1)
	assert.Contains(t, logs.get("warn")[0], badID.String())
}

func TestBasicDiscovery_Events(t *testing.T) {
	t.Parallel()

	base := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	var tick int
	clock := func() time.Time { tick++; return base.Add(time.Duration(tick) * time.Second) }

	d := NewBasicDiscovery(WithClock(clock))
	require.NoError(t, d.Register(healthID, staticAccessor()))
	require.Error(t, d.Register(healthID, staticAccessor()))
	d.Unregister(healthID)
	d.Unregister(healthID) // absent: not journaled

	assert.Equal(t, []Event{
		{Kind: EventRegistered, Identifier: healthID, At: base.Add(time.Second)},
		{Kind: EventUnregistered, Identifier: healthID, At: base.Add(2 * time.Second)},
	}, d.Events())
}

func TestBasicDiscovery_JournalBounded(t *testing.T) {
	t.Parallel()

	d := NewBasicDiscovery(WithJournalSize(3))
	for i := 0; i < 5; i++ {
		require.NoError(t, d.Register(Identifier{Domain: "d", Type: fmt.Sprintf("T%d", i)}, staticAccessor()))
	}
	events := d.Events()
	require.Len(t, events, 3)
	assert.Equal(t, "T2", events[0].Identifier.Type)
	assert.Equal(t, "T4", events[2].Identifier.Type)
}

func TestBasicDiscovery_JournalDisabled(t *testing.T) {
	t.Parallel()

	d := NewBasicDiscovery(WithJournalSize(0))
	require.NoError(t, d.Register(healthID, staticAccessor()))
	assert.Empty(t, d.Events())

	d = NewBasicDiscovery(WithJournalSize(-1))
	require.NoError(t, d.Register(healthID, staticAccessor()))
	assert.Empty(t, d.Events())
}

func TestBasicDiscovery_InvariantViolation(t *testing.T) {
	t.Parallel()

	logs := newRecordingLogger()
	d := NewBasicDiscovery(WithDiscoveryLogger(logs))
	d.bindings.Store(healthID, "not an accessor")

	if isDebugBuild() {
		require.Panics(t, func() { d.Lookup(healthID) })
		return
	}

	_, ok := d.Lookup(healthID)
	assert.False(t, ok)
	require.Len(t, logs.get("warn"), 1)
	assert.Contains(t, logs.get("warn")[0], "invariant violation: accessor_type")
}

func TestDefault_IsSingleton(t *testing.T) {
	t.Parallel()

	require.NotNil(t, Default())
	assert.Same(t, Default(), Default())
}
