package model

import "time"

// NotificationID uniquely identifies a notification within an inbox
type NotificationID string

// Sender identifies who sent a contact message
type Sender struct {
	PlayerID PlayerID
	Name     string
}

// Notification is an inbound contact message in a player's inbox
type Notification struct {
	ID        NotificationID
	From      Sender
	Message   string
	Timestamp time.Time
	Read      bool
}

// NotificationPage is one page of a player's inbox
type NotificationPage struct {
	Notifications []Notification
	Total         int
	Unread        int
}
