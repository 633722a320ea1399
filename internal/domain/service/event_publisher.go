package service

import (
	"context"
	"time"
)

// Analytics event names.
const (
	EventSignUp                 = "sign_up"
	EventLogin                  = "login"
	EventLogout                 = "logout"
	EventPasswordReset          = "password_reset"
	EventTownView               = "town_view"
	EventTownSearch             = "town_search"
	EventCoffeeView             = "coffee_view"
	EventCoffeeSearch           = "coffee_search"
	EventAddToFavorites         = "add_to_favorites"
	EventRemoveFromFavorites    = "remove_from_favorites"
	EventFarmerApplication      = "farmer_application_submitted"
	EventFarmerApplicationFinal = "farmer_application_resolved"
)

// AnalyticsEvent is a single usage event.
type AnalyticsEvent struct {
	RequestID  string            `json:"request_id,omitempty"`
	Name       string            `json:"name"`
	UserID     string            `json:"user_id,omitempty"`
	Params     map[string]string `json:"params,omitempty"`
	OccurredAt time.Time         `json:"occurred_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishAnalyticsEvent publishes a single analytics event
	PublishAnalyticsEvent(ctx context.Context, event *AnalyticsEvent) error

	// Close releases any resources held by the publisher
	Close() error
}

// AnalyticsSink records usage events without affecting the caller. Track
// never blocks on delivery and never reports failures.
type AnalyticsSink interface {
	Track(ctx context.Context, event *AnalyticsEvent)
}
