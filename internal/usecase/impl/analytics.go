package impl

import (
	"context"
	"log/slog"

	"curator/config"
	deliverycontext "curator/internal/delivery/context"
	"curator/internal/domain/service"
)

// tracker publishes usage events. Publishing never fails the caller.
type tracker struct {
	publisher  service.EventPublisher
	trackingID string
	logger     *slog.Logger
}

func newTracker(publisher service.EventPublisher, cfg *config.Config, logger *slog.Logger) tracker {
	t := tracker{publisher: publisher, logger: logger}
	if cfg != nil && cfg.Analytics != nil {
		t.trackingID = cfg.Analytics.TrackingID
	}

	return t
}

func (t tracker) track(ctx context.Context, name service.AnalyticsEventName, userID string, props map[string]string) {
	if t.publisher == nil {
		return
	}

	event := service.NewAnalyticsEvent(name, t.trackingID, userID, props)
	event.RequestID = deliverycontext.GetRequestIDFromContext(ctx)

	if err := t.publisher.PublishAnalyticsEvent(ctx, event); err != nil {
		deliverycontext.GetLoggerOrDefault(ctx, t.logger).Warn("Failed to publish analytics event",
			slog.String("event", string(name)),
			slog.Any("error", err),
		)
	}
}
