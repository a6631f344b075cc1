package monitoring

import "go.opentelemetry.io/otel/trace"

const tracerName = "github.com/ygrebnov/monitoring"

type lifecycleConfig struct {
	logger         logger
	tracerProvider trace.TracerProvider
}

// LifecycleOption configures a Lifecycle constructed by NewLifecycle.
type LifecycleOption func(*lifecycleConfig)

func WithLifecycleLogger(l Logger) LifecycleOption {
	return func(cfg *lifecycleConfig) { cfg.logger = l }
}

// WithTracerProvider makes Start and Stop emit spans through tp.
// By default no spans are recorded.
func WithTracerProvider(tp trace.TracerProvider) LifecycleOption {
	return func(cfg *lifecycleConfig) { cfg.tracerProvider = tp }
}
