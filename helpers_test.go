package monitoring

import (
	"fmt"
	"sync"
)

// fakeSection reports a fixed identifier and a mutable snapshot.
type fakeSection struct {
	id Identifier

	mu    sync.Mutex
	attrs []Attribute
	err   error
	calls int
}

func newFakeSection(id Identifier, attrs ...Attribute) *fakeSection {
	return &fakeSection{id: id, attrs: attrs}
}

func (s *fakeSection) Identifier() Identifier { return s.id }

func (s *fakeSection) Snapshot() ([]Attribute, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return copyAttributes(s.attrs), nil
}

func (s *fakeSection) set(attrs []Attribute, err error) {
	s.mu.Lock()
	s.attrs, s.err = attrs, err
	s.mu.Unlock()
}

func (s *fakeSection) callCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}

// recordingLogger keeps formatted messages per level.
type recordingLogger struct {
	mu   sync.Mutex
	msgs map[string][]string
}

func newRecordingLogger() *recordingLogger {
	return &recordingLogger{msgs: map[string][]string{}}
}

func (l *recordingLogger) add(level, format string, args ...interface{}) {
	l.mu.Lock()
	l.msgs[level] = append(l.msgs[level], fmt.Sprintf(format, args...))
	l.mu.Unlock()
}

func (l *recordingLogger) Debugf(format string, args ...interface{}) { l.add("debug", format, args...) }
func (l *recordingLogger) Infof(format string, args ...interface{})  { l.add("info", format, args...) }
func (l *recordingLogger) Warnf(format string, args ...interface{})  { l.add("warn", format, args...) }
func (l *recordingLogger) Errorf(format string, args ...interface{}) { l.add("error", format, args...) }

func (l *recordingLogger) get(level string) []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]string(nil), l.msgs[level]...)
}

var healthID = Identifier{Domain: "org.example", Type: "Health"}
