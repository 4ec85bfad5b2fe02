package impl

import "go.uber.org/fx"

// Module provides every use case.
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(
		NewRegisterService,
		NewCreatePostService,
		NewVisualSearchService,
		NewRecommendationService,
		NewWardrobeService,
		NewSessionService,
		NewRealtimeService,
	),
)
