package monitoring

import (
	"fmt"
	"sync"
)

// Group starts lifecycles in order and stops them in reverse order, the way process
// startup and shutdown hooks are usually wired.
type Group struct {
	mu      sync.Mutex
	members []*Lifecycle
}

// NewGroup returns a group of the given lifecycles. Nil members are ignored.
func NewGroup(members ...*Lifecycle) *Group {
	g := &Group{}
	for _, m := range members {
		g.Add(m)
	}
	return g
}

// Add appends l to the group.
func (g *Group) Add(l *Lifecycle) {
	if l == nil {
		return
	}
	g.mu.Lock()
	g.members = append(g.members, l)
	g.mu.Unlock()
}

// Len returns the number of members.
func (g *Group) Len() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.members)
}

// Start starts every stopped member in order. Members already started are left alone.
// If a member fails, the members started by this call are stopped in reverse order
// and the error is returned.
func (g *Group) Start() error {
	g.mu.Lock()
	defer g.mu.Unlock()

	started := make([]*Lifecycle, 0, len(g.members))
	for _, m := range g.members {
		if m.State() == StateStarted {
			continue
		}
		if err := m.Start(); err != nil {
			for i := len(started) - 1; i >= 0; i-- {
				started[i].Stop()
			}
			return fmt.Errorf("starting group member %s: %w", m.Section().Identifier(), err)
		}
		started = append(started, m)
	}
	return nil
}

// Stop stops every member in reverse order. It never fails.
func (g *Group) Stop() {
	g.mu.Lock()
	defer g.mu.Unlock()

	for i := len(g.members) - 1; i >= 0; i-- {
		g.members[i].Stop()
	}
}
