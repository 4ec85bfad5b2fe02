package impl

import (
	"context"
	"log/slog"
	"strconv"
	"strings"

	"curator/config"
	"curator/internal/domain/entity"
	domainerrors "curator/internal/domain/errors"
	"curator/internal/domain/repository"
	"curator/internal/domain/service"
	"curator/internal/usecase"

	"go.uber.org/fx"
)

// VisualSearchServiceParams holds dependencies for the visual search use case, injected by Fx.
type VisualSearchServiceParams struct {
	fx.In

	SearchRepo repository.SearchRepository
	Publisher  service.EventPublisher `optional:"true"`
	Config     *config.Config         `optional:"true"`
	Logger     *slog.Logger
}

type visualSearchService struct {
	searchRepo repository.SearchRepository
	enabled    bool
	tracker    tracker
}

func NewVisualSearchService(params VisualSearchServiceParams) usecase.PerformVisualSearchUseCase {
	enabled := true
	if params.Config != nil {
		enabled = params.Config.Features.VisualSearch
	}

	return &visualSearchService{
		searchRepo: params.SearchRepo,
		enabled:    enabled,
		tracker:    newTracker(params.Publisher, params.Config, params.Logger),
	}
}

// Execute checks size and type of the image, fills in the similarity
// threshold and dedup defaults, then uploads it.
func (srv *visualSearchService) Execute(ctx context.Context, input usecase.VisualSearchInput) ([]entity.SearchResult, error) {
	if !srv.enabled {
		return nil, domainerrors.ErrFeatureDisabled.WithDetails("visual search")
	}
	if input.Image.Size() == 0 {
		return nil, domainerrors.NewValidationError("An image is required")
	}
	if input.Image.Size() > usecase.MaxVisualSearchImageSize {
		return nil, domainerrors.NewValidationError("Image must be 10MB or smaller")
	}

	if input.ContentType == "" {
		input.ContentType = input.Image.ContentType
	}
	input.ContentType = strings.ToLower(strings.TrimSpace(input.ContentType))
	if err := validateInput(input, map[string]string{
		"ContentType.oneof": "Image must be a JPEG, PNG or WebP file",
	}); err != nil {
		return nil, err
	}

	opts := input.Options
	if opts.SimilarityThreshold == nil {
		threshold := usecase.DefaultSimilarityThreshold
		opts.SimilarityThreshold = &threshold
	}
	if opts.Deduplicate == nil {
		dedup := usecase.DefaultDeduplicate
		opts.Deduplicate = &dedup
	}

	image := input.Image
	image.ContentType = input.ContentType

	results, err := srv.searchRepo.VisualSearch(ctx, image, opts)
	if err != nil {
		return nil, err
	}

	srv.tracker.track(ctx, service.EventVisualSearch, input.UserID, map[string]string{
		"results": strconv.Itoa(len(results)),
	})

	return results, nil
}
