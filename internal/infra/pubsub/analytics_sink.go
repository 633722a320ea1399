package pubsub

import (
	"context"
	"log/slog"
	"sync"

	"townscoffee/internal/domain/lifecycle"
	"townscoffee/internal/domain/service"

	"go.uber.org/fx"
)

// AnalyticsSinkParams holds dependencies for the analytics sink, injected by Fx.
type AnalyticsSinkParams struct {
	fx.In

	Lc        fx.Lifecycle
	Publisher service.EventPublisher
	Logger    *slog.Logger
}

// analyticsSink publishes events in the background so tracking never delays
// or fails a use case.
type analyticsSink struct {
	publisher service.EventPublisher
	logger    *slog.Logger
	wg        sync.WaitGroup
}

// NewAnalyticsSink creates the sink and waits for in-flight events on shutdown.
func NewAnalyticsSink(params AnalyticsSinkParams) service.AnalyticsSink {
	sink := newAnalyticsSink(params.Publisher, params.Logger)

	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			sink.Flush(ctx)

			return nil
		},
	})

	return sink
}

func newAnalyticsSink(publisher service.EventPublisher, logger *slog.Logger) *analyticsSink {
	return &analyticsSink{
		publisher: publisher,
		logger:    logger,
	}
}

func (s *analyticsSink) Track(ctx context.Context, event *service.AnalyticsEvent) {
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()

		publishCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), lifecycle.DefaultTimeout)
		defer cancel()

		if err := s.publisher.PublishAnalyticsEvent(publishCtx, event); err != nil {
			s.logger.Warn("Failed to publish analytics event",
				slog.String("event", event.Name),
				slog.Any("error", err),
			)
		}
	}()
}

// Flush waits for pending events or until ctx ends.
func (s *analyticsSink) Flush(ctx context.Context) {
	done := make(chan struct{})
	go func() {
		s.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-ctx.Done():
	}
}
