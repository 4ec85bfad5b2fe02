package impl

import (
	"context"
	"log/slog"
	"strings"

	"curator/config"
	"curator/internal/domain/entity"
	domainerrors "curator/internal/domain/errors"
	"curator/internal/domain/repository"
	"curator/internal/domain/service"
	"curator/internal/usecase"

	"go.uber.org/fx"
)

// WardrobeServiceParams holds dependencies for the add wardrobe item use case, injected by Fx.
type WardrobeServiceParams struct {
	fx.In

	WardrobeRepo repository.WardrobeRepository
	Publisher    service.EventPublisher `optional:"true"`
	Config       *config.Config         `optional:"true"`
	Logger       *slog.Logger
}

type wardrobeService struct {
	wardrobeRepo repository.WardrobeRepository
	tracker      tracker
}

func NewWardrobeService(params WardrobeServiceParams) usecase.AddWardrobeItemUseCase {
	return &wardrobeService{
		wardrobeRepo: params.WardrobeRepo,
		tracker:      newTracker(params.Publisher, params.Config, params.Logger),
	}
}

// Execute requires a name and a known category, and fills in a zero wear
// counter and empty collections.
func (srv *wardrobeService) Execute(ctx context.Context, input usecase.AddWardrobeItemInput) (*entity.WardrobeItem, error) {
	if strings.TrimSpace(input.Item.Name) == "" {
		return nil, domainerrors.NewValidationError("Item name is required")
	}
	if input.Item.Category == "" {
		return nil, domainerrors.NewValidationError("Item category is required")
	}
	if !input.Item.Category.IsValid() {
		return nil, domainerrors.NewValidationError("Item category is not supported")
	}

	item := input.Item
	item.TimesWorn = 0
	if item.Tags == nil {
		item.Tags = []string{}
	}
	if item.Images == nil {
		item.Images = []string{}
	}
	if item.Attributes == nil {
		item.Attributes = []entity.Attribute{}
	}

	created, err := srv.wardrobeRepo.AddItem(ctx, &item)
	if err != nil {
		return nil, err
	}

	srv.tracker.track(ctx, service.EventWardrobeItemAdded, input.UserID, map[string]string{
		"category": item.Category.String(),
	})

	return created, nil
}
