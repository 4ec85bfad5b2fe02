package impl

import (
	"context"
	"log/slog"
	"strconv"

	"curator/config"
	deliverycontext "curator/internal/delivery/context"
	"curator/internal/domain/entity"
	"curator/internal/domain/repository"
	"curator/internal/domain/service"
	"curator/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// RecommendationServiceParams holds dependencies for the recommendations use case, injected by Fx.
type RecommendationServiceParams struct {
	fx.In

	OutfitRepo repository.OutfitRepository
	UserRepo   repository.UserRepository
	Publisher  service.EventPublisher `optional:"true"`
	Config     *config.Config         `optional:"true"`
	Logger     *slog.Logger
}

type recommendationService struct {
	outfitRepo repository.OutfitRepository
	userRepo   repository.UserRepository
	logger     *slog.Logger
	tracker    tracker
}

func NewRecommendationService(params RecommendationServiceParams) usecase.GetRecommendationsUseCase {
	return &recommendationService{
		outfitRepo: params.OutfitRepo,
		userRepo:   params.UserRepo,
		logger:     params.Logger,
		tracker:    newTracker(params.Publisher, params.Config, params.Logger),
	}
}

func (srv *recommendationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Execute fills unset budget, styles and sizes from the user's stored
// preferences. Values supplied by the caller always win.
func (srv *recommendationService) Execute(ctx context.Context, input usecase.RecommendationsInput) (*entity.Page[entity.OutfitRecommendation], error) {
	filters := input.Filters

	if input.UserID != "" {
		user, err := srv.userRepo.GetUser(ctx, input.UserID)
		if err != nil {
			return nil, errors.Wrap(err, "load user preferences")
		}
		filters = mergePreferences(filters, user.Preferences)
	}

	srv.log(ctx).Debug("Fetching recommendations",
		slog.String("userID", input.UserID),
		slog.Int("styles", len(filters.Styles)),
	)

	page, err := srv.outfitRepo.GetRecommendations(ctx, filters)
	if err != nil {
		return nil, err
	}

	srv.tracker.track(ctx, service.EventRecommendationsView, input.UserID, map[string]string{
		"page":    strconv.Itoa(page.Page),
		"results": strconv.Itoa(len(page.Items)),
	})

	return page, nil
}

func mergePreferences(filters entity.RecommendationFilters, prefs entity.UserPreferences) entity.RecommendationFilters {
	if filters.MinPrice == nil && prefs.Budget.Min != nil {
		minPrice := *prefs.Budget.Min
		filters.MinPrice = &minPrice
	}
	if filters.MaxPrice == nil && prefs.Budget.Max != nil {
		maxPrice := *prefs.Budget.Max
		filters.MaxPrice = &maxPrice
	}
	if len(filters.Styles) == 0 && len(prefs.Styles) > 0 {
		filters.Styles = append([]string{}, prefs.Styles...)
	}

	if len(prefs.Sizes) > 0 {
		sizes := make(map[string]string, len(prefs.Sizes)+len(filters.Sizes))
		for k, v := range prefs.Sizes {
			sizes[k] = v
		}
		for k, v := range filters.Sizes {
			sizes[k] = v
		}
		filters.Sizes = sizes
	}

	return filters
}
