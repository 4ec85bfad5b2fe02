package impl

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"curator/config"
	"curator/internal/domain/entity"
	"curator/internal/domain/service"
	mockRepo "curator/internal/mocks/repository"
	"curator/internal/state"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	return &config.Config{
		Features:  config.FeatureFlags{VisualSearch: true},
		Analytics: &config.AnalyticsConfig{TrackingID: "G-TEST"},
		Session:   config.SessionConfig{CheckInterval: 10 * time.Millisecond},
	}
}

// recordingPublisher keeps published events in memory.
type recordingPublisher struct {
	mu     sync.Mutex
	events []*service.AnalyticsEvent
	err    error
}

func (p *recordingPublisher) PublishAnalyticsEvent(_ context.Context, event *service.AnalyticsEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.events = append(p.events, event)

	return p.err
}

func (p *recordingPublisher) Close() error { return nil }

func (p *recordingPublisher) Events() []*service.AnalyticsEvent {
	p.mu.Lock()
	defer p.mu.Unlock()

	return append([]*service.AnalyticsEvent{}, p.events...)
}

// stubInspector treats the listed tokens as valid.
type stubInspector struct {
	valid map[string]bool
	calls atomic.Int32
}

func newStubInspector(valid ...string) *stubInspector {
	in := &stubInspector{valid: map[string]bool{}}
	for _, token := range valid {
		in.valid[token] = true
	}

	return in
}

func (in *stubInspector) IsValid(token string) bool {
	in.calls.Add(1)

	return in.valid[token]
}

func (in *stubInspector) ExpiresAt(string) (time.Time, bool, error) {
	return time.Time{}, false, nil
}

// storeFixture is a real state.Store backed by repository mocks.
type storeFixture struct {
	store            *state.Store
	authRepo         *mockRepo.MockAuthRepository
	userRepo         *mockRepo.MockUserRepository
	cartRepo         *mockRepo.MockCartRepository
	notificationRepo *mockRepo.MockNotificationRepository
	tokens           *mockRepo.MockTokenStorage
	prefs            *mockRepo.MockPreferenceStorage
}

func newStoreFixture(t *testing.T) storeFixture {
	t.Helper()

	f := storeFixture{
		authRepo:         mockRepo.NewMockAuthRepository(t),
		userRepo:         mockRepo.NewMockUserRepository(t),
		cartRepo:         mockRepo.NewMockCartRepository(t),
		notificationRepo: mockRepo.NewMockNotificationRepository(t),
		tokens:           mockRepo.NewMockTokenStorage(t),
		prefs:            mockRepo.NewMockPreferenceStorage(t),
	}
	f.store = state.NewStore(state.StoreParams{
		AuthRepo:         f.authRepo,
		UserRepo:         f.userRepo,
		WardrobeRepo:     mockRepo.NewMockWardrobeRepository(t),
		OutfitRepo:       mockRepo.NewMockOutfitRepository(t),
		SocialRepo:       mockRepo.NewMockSocialRepository(t),
		SearchRepo:       mockRepo.NewMockSearchRepository(t),
		LookbookRepo:     mockRepo.NewMockLookbookRepository(t),
		CartRepo:         f.cartRepo,
		NotificationRepo: f.notificationRepo,
		Tokens:           f.tokens,
		Preferences:      f.prefs,
		Logger:           newDiscardLogger(),
	})

	return f
}

func signIn(store *state.Store, user *entity.User) {
	store.Auth.Update(func(st *state.AuthState) {
		st.User = user
		st.IsAuthenticated = true
		st.SessionStatus = entity.AuthStatusAuthenticated
	})
}
