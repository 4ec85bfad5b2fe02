// Package analytics publishes usage events. Publishing is best effort: callers
// log failures and carry on.
package analytics

import (
	"context"
	"log/slog"

	"curator/config"
	"curator/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Provider names accepted in analytics.provider.
const (
	ProviderLocal  = "local"
	ProviderGoogle = "google"
)

// noopPublisher is used when analytics is disabled
type noopPublisher struct {
	logger *slog.Logger
}

func (p *noopPublisher) PublishAnalyticsEvent(_ context.Context, event *service.AnalyticsEvent) error {
	p.logger.Debug("[NoopAnalytics] Event publishing disabled, skipping",
		slog.String("event", string(event.Name)),
	)

	return nil
}

func (p *noopPublisher) Close() error {
	return nil
}

// NewNoopPublisher returns a publisher that drops every event.
func NewNoopPublisher(logger *slog.Logger) service.EventPublisher {
	return &noopPublisher{logger: logger}
}

func attributes(event *service.AnalyticsEvent) map[string]string {
	attrs := map[string]string{
		"event_id": event.EventID,
		"event":    string(event.Name),
	}
	if event.RequestID != "" {
		attrs["request_id"] = event.RequestID
	}

	return attrs
}

// PublisherParams holds dependencies for EventPublisher, injected by Fx
type PublisherParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewEventPublisher creates an EventPublisher based on configuration.
// Without a tracking ID analytics is off.
func NewEventPublisher(params PublisherParams) (service.EventPublisher, error) {
	cfg := params.Config.Analytics
	logger := params.Logger

	if cfg == nil || cfg.TrackingID == "" || cfg.Provider == "" {
		logger.Info("Analytics not configured, using no-op publisher")

		return NewNoopPublisher(logger), nil
	}

	var publisher service.EventPublisher
	var err error

	switch cfg.Provider {
	case ProviderLocal:
		if cfg.LocalEndpoint == "" {
			return nil, errors.New("local endpoint is required for local provider")
		}
		logger.Info("Using local HTTP analytics publisher",
			slog.String("endpoint", cfg.LocalEndpoint),
		)

		publisher = NewLocalHTTPPublisher(cfg.LocalEndpoint, params.Config.API.Timeout, logger)

	case ProviderGoogle:
		if cfg.ProjectID == "" {
			return nil, errors.New("project ID is required for google provider")
		}
		if cfg.TopicID == "" {
			return nil, errors.New("topic ID is required for google provider")
		}

		publisher, err = NewGooglePubSubPublisher(params.Ctx, cfg.ProjectID, cfg.TopicID, logger)
		if err != nil {
			return nil, err
		}

	default:
		return nil, errors.Errorf("unknown analytics provider: %s", cfg.Provider)
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			logger.Info("Closing analytics publisher")

			return publisher.Close()
		},
	})

	return publisher, nil
}

// Module provides the analytics FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewEventPublisher),
)
