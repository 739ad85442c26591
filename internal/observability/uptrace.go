package observability

import (
	"context"
	"strings"
	"time"

	"github.com/uptrace/uptrace-go/uptrace"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/frenchfries11234/ff.gg/internal/config"
	"github.com/frenchfries11234/ff.gg/internal/platform/logging"
)

const (
	tracerName   = "github.com/frenchfries11234/ff.gg/cmd"
	flushTimeout = 5 * time.Second
)

// Run is one traced CLI invocation. Spans started from Context() are
// children of the command's root span.
type Run struct {
	ctx      context.Context
	span     trace.Span
	flush    func(context.Context) error
	logger   *logging.Logger
	finished bool
}

// StartRun installs the Uptrace exporter when enabled and opens the root span
// "cmd.<command>". With tracing off the span is a no-op.
func StartRun(ctx context.Context, cfg config.Config, command string, logger *logging.Logger, attrs ...attribute.KeyValue) *Run {
	if logger == nil {
		logger = logging.Default()
	}
	flush := configureUptrace(cfg, logger)

	attrs = append(attrs, attribute.String("deployment.environment", cfg.AppEnv))
	ctx, span := otel.Tracer(tracerName).Start(ctx, "cmd."+command, trace.WithAttributes(attrs...))
	return &Run{ctx: ctx, span: span, flush: flush, logger: logger}
}

func (r *Run) Context() context.Context {
	return r.ctx
}

// Finish ends the root span, failed when err is set, and flushes pending
// spans. Calls after the first are ignored.
func (r *Run) Finish(err error) {
	if r == nil || r.finished {
		return
	}
	r.finished = true

	if err != nil {
		r.span.RecordError(err)
		r.span.SetStatus(codes.Error, err.Error())
	}
	r.span.End()

	ctx, cancel := context.WithTimeout(context.Background(), flushTimeout)
	defer cancel()
	if err := r.flush(ctx); err != nil {
		r.logger.Warn("flush traces", "error", err)
	}
}

func configureUptrace(cfg config.Config, logger *logging.Logger) func(context.Context) error {
	noop := func(context.Context) error { return nil }

	if !cfg.UptraceEnabled {
		logger.Debug("uptrace disabled", "reason", "UPTRACE_ENABLED=false")
		return noop
	}
	if strings.TrimSpace(cfg.UptraceDSN) == "" {
		logger.Info("uptrace disabled", "reason", "UPTRACE_DSN empty")
		return noop
	}

	uptrace.ConfigureOpentelemetry(
		uptrace.WithDSN(cfg.UptraceDSN),
		uptrace.WithServiceName(cfg.ServiceName),
		uptrace.WithServiceVersion(cfg.ServiceVersion),
		uptrace.WithDeploymentEnvironment(cfg.AppEnv),
	)
	logger.Info("uptrace enabled",
		"service_name", cfg.ServiceName,
		"service_version", cfg.ServiceVersion,
		"environment", cfg.AppEnv,
	)
	return uptrace.Shutdown
}
