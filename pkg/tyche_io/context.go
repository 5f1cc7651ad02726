// pkg/tyche_io/context.go

package tyche_io

import (
	"context"
	"time"

	"github.com/CodeMonkeyCybersecurity/tyche/pkg/logger"
	"github.com/CodeMonkeyCybersecurity/tyche/pkg/telemetry"
	"github.com/CodeMonkeyCybersecurity/tyche/pkg/tyche_err"
	cerr "github.com/cockroachdb/errors"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

// RuntimeContext carries the per-invocation plumbing: context, scoped logger,
// telemetry span, and free-form attributes recorded on the span at End.
type RuntimeContext struct {
	Ctx        context.Context
	Log        *zap.Logger
	Span       trace.Span
	Timestamp  time.Time
	Command    string
	Attributes map[string]string
}

// NewContext sets up tracing and a command-scoped logger.
func NewContext(ctx context.Context, cmdName string) *RuntimeContext {
	if ctx == nil {
		ctx = context.Background()
	}

	invocationID := uuid.NewString()
	ctx, span := telemetry.Start(ctx, cmdName,
		attribute.String("invocation_id", invocationID),
	)

	log := logger.GetLogger().Named(cmdName).With(
		zap.String("command", cmdName),
		zap.String("invocation_id", invocationID),
	)

	return &RuntimeContext{
		Ctx:        ctx,
		Log:        log,
		Span:       span,
		Timestamp:  time.Now(),
		Command:    cmdName,
		Attributes: map[string]string{"invocation_id": invocationID},
	}
}

// HandlePanic recovers panics, logs them, and converts to an error.
func (rc *RuntimeContext) HandlePanic(errPtr *error) {
	if r := recover(); r != nil {
		*errPtr = cerr.AssertionFailedf("panic: %v", r)
		rc.Log.Error("Panic recovered", zap.Any("panic", r))
	}
}

// End logs the outcome, closes the telemetry span, and flushes logs. It is
// intended to run via defer with a pointer to the command's named error.
func (rc *RuntimeContext) End(errPtr *error) {
	duration := time.Since(rc.Timestamp)

	for k, v := range rc.Attributes {
		rc.Span.SetAttributes(attribute.String(k, v))
	}

	err := *errPtr
	switch {
	case err == nil:
		rc.Log.Info("Command finished", zap.Duration("duration", duration))
		rc.Span.SetStatus(codes.Ok, "")
	case tyche_err.IsExpectedUserError(err):
		rc.Log.Warn("Command completed with user error",
			zap.Error(err),
			zap.Duration("duration", duration))
		rc.Span.SetStatus(codes.Error, "user error")
	default:
		rc.Log.Error("Command failed",
			zap.Error(err),
			zap.Duration("duration", duration))
		rc.Span.SetStatus(codes.Error, err.Error())
	}

	rc.Span.End()
	_ = logger.Sync()
}
