package pubsub

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"townscoffee/config"
	"townscoffee/internal/domain/service"
	"townscoffee/internal/errors"
	mockSvc "townscoffee/internal/mocks/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestLocalHTTPPublisher_PostsPushMessage(t *testing.T) {
	received := make(chan PushMessage, 1)
	var requestID string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var msg PushMessage
		if err := json.NewDecoder(r.Body).Decode(&msg); err != nil {
			w.WriteHeader(http.StatusBadRequest)

			return
		}
		requestID = r.Header.Get("X-Request-Id")
		received <- msg
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	publisher := NewLocalHTTPPublisher(srv.URL, discardLogger())
	event := &service.AnalyticsEvent{
		RequestID: "req-1",
		Name:      service.EventCoffeeView,
		UserID:    "u1",
		Params:    map[string]string{"coffee_id": "c1"},
	}

	require.NoError(t, publisher.PublishAnalyticsEvent(context.Background(), event))

	msg := <-received
	assert.Equal(t, "req-1", requestID)
	assert.Equal(t, service.EventCoffeeView, msg.Message.Attributes["event"])
	assert.Equal(t, "u1", msg.Message.Attributes["user_id"])

	raw, err := base64.StdEncoding.DecodeString(msg.Message.Data)
	require.NoError(t, err)

	var decoded service.AnalyticsEvent
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, "c1", decoded.Params["coffee_id"])
}

func TestLocalHTTPPublisher_NonSuccessStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	publisher := NewLocalHTTPPublisher(srv.URL, discardLogger())
	err := publisher.PublishAnalyticsEvent(context.Background(), &service.AnalyticsEvent{Name: service.EventLogin})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "503")
}

func TestNewEventPublisher(t *testing.T) {
	tests := []struct {
		name    string
		cfg     *config.PubSubConfig
		wantErr string
	}{
		{name: "disabled", cfg: nil},
		{name: "local", cfg: &config.PubSubConfig{Provider: config.PubSubProviderLocal, LocalEndpoint: "http://localhost:9999"}},
		{name: "local without endpoint", cfg: &config.PubSubConfig{Provider: config.PubSubProviderLocal}, wantErr: "local endpoint"},
		{name: "google without project", cfg: &config.PubSubConfig{Provider: config.PubSubProviderGoogle}, wantErr: "project ID"},
		{name: "unknown", cfg: &config.PubSubConfig{Provider: "kafka"}, wantErr: "unknown pubsub provider"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lc := fxtest.NewLifecycle(t)

			publisher, err := NewEventPublisher(PublisherParams{
				Lc:     lc,
				Ctx:    context.Background(),
				Config: &config.Config{PubSub: tt.cfg},
				Logger: discardLogger(),
			})

			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)

				return
			}
			require.NoError(t, err)
			assert.NotNil(t, publisher)
			lc.RequireStart().RequireStop()
		})
	}
}

func TestAnalyticsSink_PublishesInBackground(t *testing.T) {
	publisher := mockSvc.NewMockEventPublisher(t)
	sink := newAnalyticsSink(publisher, discardLogger())

	ctx, cancel := context.WithCancel(context.Background())
	event := &service.AnalyticsEvent{Name: service.EventSignUp}

	var publishCtxErr error
	publisher.EXPECT().
		PublishAnalyticsEvent(mock.Anything, event).
		RunAndReturn(func(ctx context.Context, _ *service.AnalyticsEvent) error {
			publishCtxErr = ctx.Err()

			return nil
		})

	sink.Track(ctx, event)
	cancel()

	flushCtx, stop := context.WithTimeout(context.Background(), 2*time.Second)
	defer stop()
	sink.Flush(flushCtx)

	assert.NoError(t, publishCtxErr, "caller cancellation must not reach the publisher")
}

func TestAnalyticsSink_FailureIsSwallowed(t *testing.T) {
	publisher := mockSvc.NewMockEventPublisher(t)
	sink := newAnalyticsSink(publisher, discardLogger())

	publisher.EXPECT().
		PublishAnalyticsEvent(mock.Anything, mock.Anything).
		Return(errors.New("topic deleted"))

	sink.Track(context.Background(), &service.AnalyticsEvent{Name: service.EventLogout})
	sink.Flush(context.Background())
}
