package service

import (
	"context"
	"log/slog"
	"time"
)

// UseCaseEvent captures lightweight execution telemetry for a tracker use case.
type UseCaseEvent struct {
	Name      string
	Duration  time.Duration
	Success   bool
	Err       error
	Fields    map[string]any
	StartedAt time.Time

	// Warnings are absorbed problems, such as an unreadable slot replaced by
	// an empty history.
	Warnings []string
}

// UseCaseObserver receives use-case execution events.
type UseCaseObserver interface {
	ObserveUseCase(ctx context.Context, event UseCaseEvent)
}

// NoopUseCaseObserver ignores all events.
type NoopUseCaseObserver struct{}

func (NoopUseCaseObserver) ObserveUseCase(context.Context, UseCaseEvent) {}

type logUseCaseObserver struct {
	logger *slog.Logger
}

// NewLogUseCaseObserver writes use-case events to logger. A nil logger
// yields a no-op observer.
func NewLogUseCaseObserver(logger *slog.Logger) UseCaseObserver {
	if logger == nil {
		return NoopUseCaseObserver{}
	}
	return &logUseCaseObserver{logger: logger}
}

func (o *logUseCaseObserver) ObserveUseCase(ctx context.Context, event UseCaseEvent) {
	attrs := make([]any, 0, 8+len(event.Fields)*2)
	attrs = append(attrs,
		"use_case", event.Name,
		"duration_ms", event.Duration.Milliseconds(),
		"success", event.Success,
	)
	for k, v := range event.Fields {
		attrs = append(attrs, k, v)
	}
	if event.Err != nil {
		attrs = append(attrs, "error", event.Err.Error())
		o.logger.ErrorContext(ctx, "tracker_use_case", attrs...)
		return
	}
	if len(event.Warnings) > 0 {
		attrs = append(attrs, "warnings", event.Warnings)
		o.logger.WarnContext(ctx, "tracker_use_case", attrs...)
		return
	}
	o.logger.InfoContext(ctx, "tracker_use_case", attrs...)
}

func useCaseObserverOrNoop(observers []UseCaseObserver) UseCaseObserver {
	for _, obs := range observers {
		if obs != nil {
			return obs
		}
	}
	return NoopUseCaseObserver{}
}

// observe reports one use case when the surrounding function returns.
// Usage: defer observe(ctx, obs, "name", time.Now().UTC(), fields, &warnings, &err)().
func observe(ctx context.Context, obs UseCaseObserver, name string, startedAt time.Time, fields map[string]any, warnings *[]string, errp *error) func() {
	return func() {
		var err error
		if errp != nil {
			err = *errp
		}
		var warns []string
		if warnings != nil {
			warns = *warnings
		}
		obs.ObserveUseCase(ctx, UseCaseEvent{
			Name:      name,
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    fields,
			Warnings:  warns,
		})
	}
}
