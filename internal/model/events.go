package model

import "time"

// EventType identifies the type of event
type EventType string

const (
	EventNotification   EventType = "notification"
	EventPrivacyChanged EventType = "privacy_changed"
	EventProfileUpdated EventType = "profile_updated"
)

// Event is the base structure for events delivered to a player
type Event struct {
	Type      EventType
	Timestamp time.Time
	PlayerID  PlayerID // The player the event is addressed to
	Payload   any      // Type-specific data
}

// NotificationPayload contains data for notification events
type NotificationPayload struct {
	Notification Notification
}

// PrivacyChangedPayload contains data for privacy_changed events
type PrivacyChangedPayload struct {
	Privacy PrivacySettings
}

// ProfileUpdatedPayload contains data for profile_updated events
type ProfileUpdatedPayload struct {
	Player Player
}
