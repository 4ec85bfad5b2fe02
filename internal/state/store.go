package state

import (
	"log/slog"

	"curator/internal/domain/repository"
	"curator/internal/domain/service"
	"curator/internal/usecase"

	"go.uber.org/fx"
)

// Store groups the feature slices. It is the single owner of client state.
type Store struct {
	Auth         *AuthSlice
	User         *UserSlice
	Wardrobe     *WardrobeSlice
	Outfit       *OutfitSlice
	Social       *SocialSlice
	Search       *SearchSlice
	Lookbook     *LookbookSlice
	Cart         *CartSlice
	Notification *NotificationSlice
	UI           *UISlice
}

// StoreParams defines the dependencies of the Store.
type StoreParams struct {
	fx.In

	AuthRepo         repository.AuthRepository
	UserRepo         repository.UserRepository
	WardrobeRepo     repository.WardrobeRepository
	OutfitRepo       repository.OutfitRepository
	SocialRepo       repository.SocialRepository
	SearchRepo       repository.SearchRepository
	LookbookRepo     repository.LookbookRepository
	CartRepo         repository.CartRepository
	NotificationRepo repository.NotificationRepository

	Tokens      repository.TokenStorage
	Preferences repository.PreferenceStorage
	OAuth       service.OAuthRegistry `optional:"true"`

	Register        usecase.RegisterUseCase
	AddWardrobeItem usecase.AddWardrobeItemUseCase
	Recommendations usecase.GetRecommendationsUseCase
	CreatePost      usecase.CreatePostUseCase
	VisualSearch    usecase.PerformVisualSearchUseCase

	Logger *slog.Logger
}

// NewStore builds every slice.
func NewStore(params StoreParams) *Store {
	auth := NewAuthSlice(params.AuthRepo, params.Register, params.Tokens, params.OAuth, params.Logger)

	return &Store{
		Auth:         auth,
		User:         NewUserSlice(params.UserRepo, auth),
		Wardrobe:     NewWardrobeSlice(params.WardrobeRepo, params.AddWardrobeItem, auth),
		Outfit:       NewOutfitSlice(params.OutfitRepo, params.Recommendations, auth),
		Social:       NewSocialSlice(params.SocialRepo, params.CreatePost, auth),
		Search:       NewSearchSlice(params.SearchRepo, params.VisualSearch, auth),
		Lookbook:     NewLookbookSlice(params.LookbookRepo),
		Cart:         NewCartSlice(params.CartRepo),
		Notification: NewNotificationSlice(params.NotificationRepo),
		UI:           NewUISlice(params.Preferences, params.Logger),
	}
}

// Containers lists the slices in a fixed order.
func (s *Store) Containers() []Container {
	return []Container{
		s.Auth, s.User, s.Wardrobe, s.Outfit, s.Social,
		s.Search, s.Lookbook, s.Cart, s.Notification, s.UI,
	}
}

// Reset returns every slice to its initial state. In-flight operations are
// discarded when they settle.
func (s *Store) Reset() {
	for _, c := range s.Containers() {
		c.Reset()
	}
}

// Snapshot returns the current state of the named slice.
func (s *Store) Snapshot(name string) (any, bool) {
	for _, c := range s.Containers() {
		if c.Name() == name {
			return c.Snapshot(), true
		}
	}

	return nil, false
}

// Names lists the slice names.
func (s *Store) Names() []string {
	containers := s.Containers()
	names := make([]string, 0, len(containers))
	for _, c := range containers {
		names = append(names, c.Name())
	}

	return names
}

//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewStore),
)
