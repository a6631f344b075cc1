package monitoring

import (
	"context"
	"fmt"
	"sync"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

// State is the registration state of a Lifecycle.
type State uint8

const (
	StateStopped State = iota
	StateStarted
)

func (s State) String() string {
	switch s {
	case StateStopped:
		return "stopped"
	case StateStarted:
		return "started"
	default:
		return "unknown"
	}
}

const (
	spanStart = "monitoring.Start"
	spanStop  = "monitoring.Stop"

	attrIdentifier = attribute.Key("monitoring.identifier")
)

// registration is the handle held while a section is registered.
type registration struct {
	id Identifier
}

// Lifecycle makes one Section discoverable between Start and Stop.
//
// A Lifecycle starts stopped. Start registers the section's identifier with the
// discovery facility; Stop removes it. Stop is idempotent and is a no-op on a lifecycle
// that was never started. Start on a started lifecycle fails with ErrInvalidState.
// Transitions are serialized, so a Lifecycle is safe for concurrent use.
type Lifecycle struct {
	mu        sync.Mutex
	section   Section
	discovery Discovery
	reg       *registration

	logger logger
	tracer trace.Tracer
}

// NewLifecycle wraps s. A nil discovery selects Default(). It panics if s is nil.
func NewLifecycle(s Section, d Discovery, opts ...LifecycleOption) *Lifecycle {
	if s == nil {
		panic("monitoring: NewLifecycle with nil section")
	}
	cfg := &lifecycleConfig{}
	for _, o := range opts {
		if o != nil {
			o(cfg)
		}
	}
	if d == nil {
		d = Default()
	}
	l := cfg.logger
	if l == nil {
		l = newNoopLogger()
	}
	tp := cfg.tracerProvider
	if tp == nil {
		tp = noop.NewTracerProvider()
	}
	return &Lifecycle{
		section:   s,
		discovery: d,
		logger:    l,
		tracer:    tp.Tracer(tracerName),
	}
}

// Start registers the section. It fails with ErrInvalidState when already started and
// with ErrDuplicateRegistration when another registration holds the same identifier;
// in both cases the lifecycle state is unchanged.
func (l *Lifecycle) Start() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	id := l.section.Identifier()
	_, span := l.tracer.Start(context.Background(), spanStart,
		trace.WithAttributes(attrIdentifier.String(id.String())))
	defer span.End()

	if l.reg != nil {
		err := fmt.Errorf("%w: %s is already started", ErrInvalidState, l.reg.id)
		l.fail(span, err)
		return err
	}

	if err := l.discovery.Register(id, newSectionAccessor(id, l.section)); err != nil {
		err = fmt.Errorf("starting %s: %w", id, err)
		l.fail(span, err)
		return err
	}

	l.reg = &registration{id: id}
	l.logger.Infof("[monitoring] started %s", id)
	return nil
}

// Stop unregisters the section if it is registered. It never fails.
func (l *Lifecycle) Stop() {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.reg == nil {
		l.logger.Debugf("[monitoring] stop on stopped section %s ignored", l.section.Identifier())
		return
	}

	id := l.reg.id
	_, span := l.tracer.Start(context.Background(), spanStop,
		trace.WithAttributes(attrIdentifier.String(id.String())))
	defer span.End()

	l.discovery.Unregister(id)
	l.reg = nil
	l.logger.Infof("[monitoring] stopped %s", id)
}

// State reports the current state.
func (l *Lifecycle) State() State {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.reg != nil {
		return StateStarted
	}
	return StateStopped
}

// Registered returns the identifier held by the current registration.
func (l *Lifecycle) Registered() (Identifier, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.reg == nil {
		return Identifier{}, false
	}
	return l.reg.id, true
}

// Section returns the wrapped section.
func (l *Lifecycle) Section() Section { return l.section }

func (l *Lifecycle) fail(span trace.Span, err error) {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	l.logger.Errorf("[monitoring] %v", err)
}
