package realtime

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"curator/internal/domain/entity"
	"curator/internal/domain/service"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// pushServer upgrades one connection, reports the Authorization header and
// writes every frame sent on frames.
func pushServer(t *testing.T, frames <-chan string, auth chan<- string) string {
	t.Helper()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth <- r.Header.Get("Authorization")
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		defer conn.Close()

		go func() {
			for {
				if _, _, err := conn.ReadMessage(); err != nil {
					return
				}
			}
		}()

		for frame := range frames {
			if err := conn.WriteMessage(websocket.TextMessage, []byte(frame)); err != nil {
				return
			}
		}
	}))
	t.Cleanup(server.Close)

	return "ws" + strings.TrimPrefix(server.URL, "http")
}

func newTestClient(url string) *Client {
	return NewClient(url, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestClient_DispatchesEventsByType(t *testing.T) {
	frames := make(chan string, 4)
	defer close(frames)
	auth := make(chan string, 1)
	url := pushServer(t, frames, auth)
	client := newTestClient(url)

	notifications := make(chan service.RealtimeEvent, 2)
	recommendations := make(chan service.RealtimeEvent, 2)
	client.On(entity.NotificationTypeGeneral, func(e service.RealtimeEvent) { notifications <- e })
	client.On(entity.NotificationTypeNewRecommendation, func(e service.RealtimeEvent) { recommendations <- e })

	require.NoError(t, client.Connect(context.Background(), "access-token"))
	defer client.Disconnect()

	assert.Equal(t, "Bearer access-token", <-auth)
	assert.True(t, client.Connected())

	frames <- `not json`
	frames <- `{"type":"notification","data":{"id":"n1","title":"Hi"}}`
	frames <- `{"type":"new_recommendation","data":{"count":3}}`

	select {
	case e := <-notifications:
		assert.JSONEq(t, `{"id":"n1","title":"Hi"}`, string(e.Data))
	case <-time.After(2 * time.Second):
		t.Fatal("notification event not dispatched")
	}

	select {
	case e := <-recommendations:
		assert.Equal(t, entity.NotificationTypeNewRecommendation, e.Type)
	case <-time.After(2 * time.Second):
		t.Fatal("recommendation event not dispatched")
	}
}

func TestClient_Unsubscribe(t *testing.T) {
	frames := make(chan string, 4)
	defer close(frames)
	auth := make(chan string, 1)
	url := pushServer(t, frames, auth)
	client := newTestClient(url)

	first := make(chan struct{}, 2)
	second := make(chan struct{}, 2)
	unsubscribe := client.On(entity.NotificationTypePostLiked, func(service.RealtimeEvent) { first <- struct{}{} })
	client.On(entity.NotificationTypePostLiked, func(service.RealtimeEvent) { second <- struct{}{} })
	unsubscribe()

	require.NoError(t, client.Connect(context.Background(), "t"))
	defer client.Disconnect()
	<-auth

	frames <- `{"type":"post_liked","data":{}}`

	select {
	case <-second:
	case <-time.After(2 * time.Second):
		t.Fatal("remaining handler not called")
	}
	assert.Empty(t, first)
}

func TestClient_Disconnect(t *testing.T) {
	frames := make(chan string)
	auth := make(chan string, 1)
	url := pushServer(t, frames, auth)
	client := newTestClient(url)

	require.NoError(t, client.Connect(context.Background(), "t"))
	<-auth

	require.NoError(t, client.Disconnect())
	assert.False(t, client.Connected())

	// Disconnecting twice is a no-op.
	assert.NoError(t, client.Disconnect())
	close(frames)
}

func TestClient_ServerCloseDropsConnection(t *testing.T) {
	frames := make(chan string)
	auth := make(chan string, 1)
	url := pushServer(t, frames, auth)
	client := newTestClient(url)

	require.NoError(t, client.Connect(context.Background(), "t"))
	<-auth
	close(frames)

	assert.Eventually(t, func() bool { return !client.Connected() }, 2*time.Second, 10*time.Millisecond)
}

func TestClient_ConnectRequiresToken(t *testing.T) {
	client := newTestClient("ws://127.0.0.1:1")

	assert.Error(t, client.Connect(context.Background(), ""))
}

func TestClient_DialFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	client := newTestClient("ws" + strings.TrimPrefix(server.URL, "http"))

	assert.Error(t, client.Connect(context.Background(), "expired"))
	assert.False(t, client.Connected())
}
