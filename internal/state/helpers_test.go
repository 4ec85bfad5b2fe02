package state

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"curator/internal/domain/entity"
	"curator/internal/domain/repository"
	mockRepo "curator/internal/mocks/repository"
	"curator/internal/usecase"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type registerFunc func(context.Context, usecase.RegisterInput) (*entity.AuthSession, error)

func (f registerFunc) Execute(ctx context.Context, in usecase.RegisterInput) (*entity.AuthSession, error) {
	return f(ctx, in)
}

type addItemFunc func(context.Context, usecase.AddWardrobeItemInput) (*entity.WardrobeItem, error)

func (f addItemFunc) Execute(ctx context.Context, in usecase.AddWardrobeItemInput) (*entity.WardrobeItem, error) {
	return f(ctx, in)
}

type recommendationsFunc func(context.Context, usecase.RecommendationsInput) (*entity.Page[entity.OutfitRecommendation], error)

func (f recommendationsFunc) Execute(ctx context.Context, in usecase.RecommendationsInput) (*entity.Page[entity.OutfitRecommendation], error) {
	return f(ctx, in)
}

type createPostFunc func(context.Context, usecase.CreatePostInput) (*entity.SocialPost, error)

func (f createPostFunc) Execute(ctx context.Context, in usecase.CreatePostInput) (*entity.SocialPost, error) {
	return f(ctx, in)
}

type visualSearchFunc func(context.Context, usecase.VisualSearchInput) ([]entity.SearchResult, error)

func (f visualSearchFunc) Execute(ctx context.Context, in usecase.VisualSearchInput) ([]entity.SearchResult, error) {
	return f(ctx, in)
}

type fixedSession string

func (s fixedSession) UserID() string { return string(s) }

// testStore bundles a Store with the mocks behind it.
type testStore struct {
	*Store

	authRepo         *mockRepo.MockAuthRepository
	userRepo         *mockRepo.MockUserRepository
	wardrobeRepo     *mockRepo.MockWardrobeRepository
	outfitRepo       *mockRepo.MockOutfitRepository
	socialRepo       *mockRepo.MockSocialRepository
	searchRepo       *mockRepo.MockSearchRepository
	lookbookRepo     *mockRepo.MockLookbookRepository
	cartRepo         *mockRepo.MockCartRepository
	notificationRepo *mockRepo.MockNotificationRepository
	tokens           *mockRepo.MockTokenStorage
	prefs            *mockRepo.MockPreferenceStorage
}

func newTestStore(t *testing.T) *testStore {
	t.Helper()

	ts := &testStore{
		authRepo:         mockRepo.NewMockAuthRepository(t),
		userRepo:         mockRepo.NewMockUserRepository(t),
		wardrobeRepo:     mockRepo.NewMockWardrobeRepository(t),
		outfitRepo:       mockRepo.NewMockOutfitRepository(t),
		socialRepo:       mockRepo.NewMockSocialRepository(t),
		searchRepo:       mockRepo.NewMockSearchRepository(t),
		lookbookRepo:     mockRepo.NewMockLookbookRepository(t),
		cartRepo:         mockRepo.NewMockCartRepository(t),
		notificationRepo: mockRepo.NewMockNotificationRepository(t),
		tokens:           mockRepo.NewMockTokenStorage(t),
		prefs:            mockRepo.NewMockPreferenceStorage(t),
	}

	ts.Store = NewStore(StoreParams{
		AuthRepo:         ts.authRepo,
		UserRepo:         ts.userRepo,
		WardrobeRepo:     ts.wardrobeRepo,
		OutfitRepo:       ts.outfitRepo,
		SocialRepo:       ts.socialRepo,
		SearchRepo:       ts.searchRepo,
		LookbookRepo:     ts.lookbookRepo,
		CartRepo:         ts.cartRepo,
		NotificationRepo: ts.notificationRepo,
		Tokens:           ts.tokens,
		Preferences:      ts.prefs,
		Register: registerFunc(func(ctx context.Context, in usecase.RegisterInput) (*entity.AuthSession, error) {
			return ts.authRepo.Register(ctx, repositoryRegisterParams(in))
		}),
		AddWardrobeItem: addItemFunc(func(ctx context.Context, in usecase.AddWardrobeItemInput) (*entity.WardrobeItem, error) {
			item := in.Item

			return ts.wardrobeRepo.AddItem(ctx, &item)
		}),
		Recommendations: recommendationsFunc(func(ctx context.Context, in usecase.RecommendationsInput) (*entity.Page[entity.OutfitRecommendation], error) {
			return ts.outfitRepo.GetRecommendations(ctx, in.Filters)
		}),
		Logger: newDiscardLogger(),
	})

	return ts
}

func repositoryRegisterParams(in usecase.RegisterInput) repository.RegisterParams {
	return repository.RegisterParams{
		Email:        in.Email,
		Username:     in.Username,
		Password:     in.Password,
		AgreeToTerms: in.AgreeToTerms,
	}
}
