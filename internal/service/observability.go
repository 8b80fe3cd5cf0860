package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
)

// UseCaseEvent describes one completed call to a service-layer use
// case, for observers to record. The solver package itself stays a pure
// function of its inputs (no logging inside Solve); this wraps the call
// one layer up.
type UseCaseEvent struct {
	UseCase  string
	RunID    string
	Duration time.Duration
	Err      error
	Attrs    map[string]any
}

// newRunID mints a correlation id for one use-case call, the same
// uuid.New pattern the teacher uses to stamp every service-layer entity.
func newRunID() string {
	return uuid.NewString()
}

// UseCaseObserver receives a UseCaseEvent after each service-layer call
// completes.
type UseCaseObserver interface {
	ObserveUseCase(ctx context.Context, event UseCaseEvent)
}

// NoopUseCaseObserver discards every event. It is the default observer
// when observability is not explicitly enabled.
type NoopUseCaseObserver struct{}

// ObserveUseCase implements UseCaseObserver.
func (NoopUseCaseObserver) ObserveUseCase(context.Context, UseCaseEvent) {}

// logUseCaseObserver logs each event as a structured slog record.
type logUseCaseObserver struct {
	logger *slog.Logger
}

// NewLogUseCaseObserver returns an observer that writes structured
// records through the given slog.Handler.
func NewLogUseCaseObserver(handler slog.Handler) UseCaseObserver {
	return &logUseCaseObserver{logger: slog.New(handler)}
}

// ObserveUseCase implements UseCaseObserver.
func (o *logUseCaseObserver) ObserveUseCase(ctx context.Context, event UseCaseEvent) {
	attrs := []any{
		slog.String("use_case", event.UseCase),
		slog.String("run_id", event.RunID),
		slog.Duration("duration", event.Duration),
	}
	for k, v := range event.Attrs {
		attrs = append(attrs, slog.Any(k, v))
	}
	if event.Err != nil {
		attrs = append(attrs, slog.String("error", event.Err.Error()))
		o.logger.ErrorContext(ctx, "use case failed", attrs...)
		return
	}
	o.logger.InfoContext(ctx, "use case completed", attrs...)
}
