package impl

import (
	"context"
	"log/slog"
	"strconv"

	"curator/config"
	"curator/internal/domain/entity"
	"curator/internal/domain/repository"
	"curator/internal/domain/service"
	"curator/internal/usecase"

	"go.uber.org/fx"
)

// CreatePostServiceParams holds dependencies for the create post use case, injected by Fx.
type CreatePostServiceParams struct {
	fx.In

	SocialRepo repository.SocialRepository
	Publisher  service.EventPublisher `optional:"true"`
	Config     *config.Config         `optional:"true"`
	Logger     *slog.Logger
}

type createPostService struct {
	socialRepo repository.SocialRepository
	tracker    tracker
}

func NewCreatePostService(params CreatePostServiceParams) usecase.CreatePostUseCase {
	return &createPostService{
		socialRepo: params.SocialRepo,
		tracker:    newTracker(params.Publisher, params.Config, params.Logger),
	}
}

// Execute validates image count and caption length before publishing.
func (srv *createPostService) Execute(ctx context.Context, input usecase.CreatePostInput) (*entity.SocialPost, error) {
	if err := validateInput(input, map[string]string{
		"Images.min":  "At least one image is required",
		"Images.max":  "A post can have at most 10 images",
		"Caption.max": "Caption must be 2200 characters or fewer",
	}); err != nil {
		return nil, err
	}

	post, err := srv.socialRepo.CreatePost(ctx, repository.CreatePostParams{
		Caption:  input.Caption,
		Images:   input.Images,
		Tags:     input.Tags,
		OutfitID: input.OutfitID,
	})
	if err != nil {
		return nil, err
	}

	srv.tracker.track(ctx, service.EventPostCreated, input.AuthorID, map[string]string{
		"images": strconv.Itoa(len(input.Images)),
	})

	return post, nil
}
