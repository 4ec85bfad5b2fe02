package impl

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"

	"curator/internal/domain/entity"
	"curator/internal/domain/repository"
	"curator/internal/domain/service"
	"curator/internal/state"
	"curator/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// RealtimeServiceParams holds dependencies for the realtime bridge, injected by Fx.
type RealtimeServiceParams struct {
	fx.In

	Store   *state.Store
	Channel service.RealtimeChannel
	Tokens  repository.TokenStorage
	Logger  *slog.Logger
}

// realtimeService connects the push channel while the user is signed in and
// feeds pushed events into state.
type realtimeService struct {
	store   *state.Store
	channel service.RealtimeChannel
	tokens  repository.TokenStorage
	logger  *slog.Logger

	mu      sync.Mutex
	cleanup []func()
	wake    chan struct{}
	cancel  context.CancelFunc
	done    chan struct{}
}

func NewRealtimeService(params RealtimeServiceParams) usecase.RealtimeUsecase {
	return &realtimeService{
		store:   params.Store,
		channel: params.Channel,
		tokens:  params.Tokens,
		logger:  params.Logger,
	}
}

// notificationEvents are pushed as a notification payload.
//
//nolint:gochecknoglobals
var notificationEvents = []entity.NotificationType{
	entity.NotificationTypeGeneral,
	entity.NotificationTypePostLiked,
	entity.NotificationTypeNewComment,
	entity.NotificationTypeNewFollower,
}

func (srv *realtimeService) Start(ctx context.Context) error {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	if srv.cancel != nil {
		return errors.New("realtime bridge already started")
	}

	for _, t := range notificationEvents {
		srv.cleanup = append(srv.cleanup, srv.channel.On(t, srv.onNotification))
	}
	srv.cleanup = append(srv.cleanup,
		srv.channel.On(entity.NotificationTypeNewRecommendation, srv.onRecommendation),
		srv.channel.On(entity.NotificationTypeProcessingComplete, srv.onProcessingComplete),
	)

	srv.wake = make(chan struct{}, 1)
	srv.cleanup = append(srv.cleanup, srv.store.Auth.Subscribe(func(state.AuthState) {
		srv.signal()
	}))

	loopCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	srv.cancel = cancel
	srv.done = make(chan struct{})

	go srv.run(loopCtx, srv.wake, srv.done)
	srv.signal()

	return nil
}

func (srv *realtimeService) signal() {
	select {
	case srv.wake <- struct{}{}:
	default:
	}
}

// run reconciles the connection with the auth state after every change.
func (srv *realtimeService) run(ctx context.Context, wake <-chan struct{}, done chan struct{}) {
	defer close(done)

	for {
		select {
		case <-ctx.Done():
			return
		case <-wake:
			srv.reconcile(ctx)
		}
	}
}

func (srv *realtimeService) reconcile(ctx context.Context) {
	want := srv.store.Auth.State().IsAuthenticated
	if want == srv.channel.Connected() {
		return
	}

	if !want {
		if err := srv.channel.Disconnect(); err != nil {
			srv.logger.Warn("Failed to disconnect realtime channel", slog.Any("error", err))
		}

		return
	}

	tokens, err := srv.tokens.LoadTokens(ctx)
	if err != nil || tokens.AccessToken == "" {
		srv.logger.Debug("No access token for realtime channel", slog.Any("error", err))

		return
	}
	if err := srv.channel.Connect(ctx, tokens.AccessToken); err != nil {
		srv.logger.Warn("Failed to connect realtime channel", slog.Any("error", err))
	}
}

func (srv *realtimeService) Stop() error {
	srv.mu.Lock()
	cancel, done, cleanup := srv.cancel, srv.done, srv.cleanup
	srv.cancel, srv.done, srv.cleanup = nil, nil, nil
	srv.mu.Unlock()

	for _, fn := range cleanup {
		fn()
	}
	if cancel != nil {
		cancel()
		<-done
	}

	return errors.WithStack(srv.channel.Disconnect())
}

func (srv *realtimeService) onNotification(event service.RealtimeEvent) {
	var n entity.Notification
	if err := json.Unmarshal(event.Data, &n); err != nil || n.ID == "" {
		srv.logger.Warn("Dropping malformed notification event",
			slog.String("type", string(event.Type)),
			slog.Any("error", err),
		)

		return
	}
	if n.Type == "" {
		n.Type = event.Type
	}

	srv.store.Notification.Receive(n)
}

type toastPayload struct {
	Message string `json:"message"`
}

func (srv *realtimeService) onRecommendation(event service.RealtimeEvent) {
	srv.store.UI.ShowToast(state.ToastInfo, payloadMessage(event, "New outfit recommendations are ready"))
}

func (srv *realtimeService) onProcessingComplete(event service.RealtimeEvent) {
	srv.store.UI.ShowToast(state.ToastSuccess, payloadMessage(event, "Processing complete"))
}

func payloadMessage(event service.RealtimeEvent, fallback string) string {
	var payload toastPayload
	if err := json.Unmarshal(event.Data, &payload); err == nil && payload.Message != "" {
		return payload.Message
	}

	return fallback
}
