// Package notification sends push messages through Firebase Cloud Messaging.
package notification

import (
	"context"
	"log/slog"

	"townscoffee/internal/domain/service"
	"townscoffee/internal/errors"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"go.uber.org/fx"
)

// Sender is the part of the FCM client used here.
type Sender interface {
	Send(ctx context.Context, message *messaging.Message) (string, error)
}

type firebaseService struct {
	client Sender
	logger *slog.Logger
}

// FirebaseServiceParams holds dependencies for the notification service, injected by Fx.
type FirebaseServiceParams struct {
	fx.In

	Ctx    context.Context
	App    *firebase.App
	Logger *slog.Logger
}

// NewFirebaseService creates the FCM backed notification service.
func NewFirebaseService(params FirebaseServiceParams) (service.NotificationService, error) {
	client, err := params.App.Messaging(params.Ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get messaging client")
	}

	return NewService(client, params.Logger), nil
}

// NewService wraps an FCM sender.
func NewService(client Sender, logger *slog.Logger) service.NotificationService {
	return &firebaseService{
		client: client,
		logger: logger,
	}
}

// SendToTopic sends a push notification to every device subscribed to topic.
func (s *firebaseService) SendToTopic(ctx context.Context, topic, title, body string, data map[string]string) error {
	message := &messaging.Message{
		Topic: topic,
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
		Data: data,
	}

	messageID, err := s.client.Send(ctx, message)
	if err != nil {
		return errors.Wrapf(err, "failed to send notification to topic %s", topic)
	}

	s.logger.Debug("Push notification sent",
		slog.String("topic", topic),
		slog.String("message_id", messageID),
	)

	return nil
}
