package monitoring

import (
	"sync"

	"github.com/eapache/queue"
)

// journal is a bounded FIFO of registration events. The oldest event is dropped
// once capacity is reached.
type journal struct {
	mu       sync.Mutex
	capacity int
	events   *queue.Queue // of Event
}

func newJournal(capacity int) *journal {
	if capacity <= 0 {
		return nil
	}
	return &journal{capacity: capacity, events: queue.New()}
}

// record is safe on a nil journal.
func (j *journal) record(e Event) {
	if j == nil {
		return
	}
	j.mu.Lock()
	defer j.mu.Unlock()
	for j.events.Length() >= j.capacity {
		j.events.Remove()
	}
	j.events.Add(e)
}

// snapshot returns events oldest first.
func (j *journal) snapshot() []Event {
	if j == nil {
		return nil
	}
	j.mu.Lock()
	defer j.mu.Unlock()
	out := make([]Event, 0, j.events.Length())
	for i := 0; i < j.events.Length(); i++ {
		if e, ok := j.events.Get(i).(Event); ok {
			out = append(out, e)
		}
	}
	return out
}
