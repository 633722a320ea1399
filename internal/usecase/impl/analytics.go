package impl

import (
	"context"
	"time"

	deliverycontext "townscoffee/internal/delivery/context"
	"townscoffee/internal/domain/service"
)

// track records a usage event. A nil sink disables tracking.
func track(ctx context.Context, sink service.AnalyticsSink, name, userID string, params map[string]string) {
	if sink == nil {
		return
	}

	sink.Track(ctx, &service.AnalyticsEvent{
		RequestID:  deliverycontext.GetRequestIDFromContext(ctx),
		Name:       name,
		UserID:     userID,
		Params:     params,
		OccurredAt: time.Now().UTC(),
	})
}
