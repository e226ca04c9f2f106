package response

import (
	"time"

	"github.com/mcoot/pickleball-finder/internal/model"
	"github.com/mcoot/pickleball-finder/internal/services/auth"
)

// Privacy represents a player's privacy settings
type Privacy struct {
	IsVisible    bool `json:"is_visible"`
	ShowEmail    bool `json:"show_email"`
	ShowPhone    bool `json:"show_phone"`
	ShowLocation bool `json:"show_location"`
	AllowContact bool `json:"allow_contact"`
}

// PrivacyFromModel converts model.PrivacySettings
func PrivacyFromModel(p model.PrivacySettings) Privacy {
	return Privacy{
		IsVisible:    p.IsVisible,
		ShowEmail:    p.ShowEmail,
		ShowPhone:    p.ShowPhone,
		ShowLocation: p.ShowLocation,
		AllowContact: p.AllowContact,
	}
}

// Player represents a player profile in API responses.
// Privacy is only included for the profile owner.
type Player struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email,omitempty"`
	Phone        string    `json:"phone,omitempty"`
	Location     string    `json:"location,omitempty"`
	Bio          string    `json:"bio,omitempty"`
	SkillLevel   string    `json:"skill_level,omitempty"`
	Availability []string  `json:"availability"`
	PhotoURL     string    `json:"photo_url,omitempty"`
	AllowContact bool      `json:"allow_contact"`
	LastActive   time.Time `json:"last_active"`
	Privacy      *Privacy  `json:"privacy,omitempty"`
}

// PlayerFromModel converts a model.Player to a response Player. The caller
// is responsible for redacting the player first when it is not the owner.
func PlayerFromModel(p *model.Player, owner bool) Player {
	availability := p.Availability
	if availability == nil {
		availability = []string{}
	}
	resp := Player{
		ID:           string(p.ID),
		Name:         p.Name,
		Email:        p.Email,
		Phone:        p.Phone,
		Location:     p.Location,
		Bio:          p.Bio,
		SkillLevel:   p.SkillLevel,
		Availability: availability,
		PhotoURL:     p.PhotoURL,
		AllowContact: p.Privacy.AllowContact,
		LastActive:   p.LastActive,
	}
	if owner {
		privacy := PrivacyFromModel(p.Privacy)
		resp.Privacy = &privacy
	}
	return resp
}

// PlayersFromModel converts a list of already redacted players
func PlayersFromModel(players []model.Player) []Player {
	result := make([]Player, len(players))
	for i := range players {
		result[i] = PlayerFromModel(&players[i], false)
	}
	return result
}

// AuthResponse is the response for authentication endpoints
type AuthResponse struct {
	Player       Player `json:"player"`
	SessionToken string `json:"session_token"`
}

// AuthResponseFromSession creates an AuthResponse from a session
func AuthResponseFromSession(s *auth.Session) AuthResponse {
	return AuthResponse{
		Player:       PlayerFromModel(&s.Player, true),
		SessionToken: s.Token,
	}
}

// SearchResponse is the response for player search
type SearchResponse struct {
	Players []Player `json:"players"`
	Count   int      `json:"count"`
}

// Sender identifies who sent a notification
type Sender struct {
	PlayerID string `json:"player_id"`
	Name     string `json:"name"`
}

// Notification represents an inbox entry
type Notification struct {
	ID        string    `json:"id"`
	From      Sender    `json:"from"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
	Read      bool      `json:"read"`
}

// NotificationFromModel converts model.Notification
func NotificationFromModel(n model.Notification) Notification {
	return Notification{
		ID: string(n.ID),
		From: Sender{
			PlayerID: string(n.From.PlayerID),
			Name:     n.From.Name,
		},
		Message:   n.Message,
		Timestamp: n.Timestamp,
		Read:      n.Read,
	}
}

// NotificationPage is one page of an inbox
type NotificationPage struct {
	Notifications []Notification `json:"notifications"`
	Total         int            `json:"total"`
	Unread        int            `json:"unread"`
	Offset        int            `json:"offset"`
}

// NotificationPageFromModel converts model.NotificationPage
func NotificationPageFromModel(p *model.NotificationPage, offset int) NotificationPage {
	notifications := make([]Notification, len(p.Notifications))
	for i, n := range p.Notifications {
		notifications[i] = NotificationFromModel(n)
	}
	return NotificationPage{
		Notifications: notifications,
		Total:         p.Total,
		Unread:        p.Unread,
		Offset:        offset,
	}
}

// Event is an event pushed to a player's event stream
type Event struct {
	Type      string    `json:"type"`
	Timestamp time.Time `json:"timestamp"`
	Data      any       `json:"data,omitempty"`
}

// EventFromModel converts model.Event, mapping known payloads to their
// response shape
func EventFromModel(e model.Event) Event {
	var data any
	switch p := e.Payload.(type) {
	case model.NotificationPayload:
		data = NotificationFromModel(p.Notification)
	case model.PrivacyChangedPayload:
		data = PrivacyFromModel(p.Privacy)
	case model.ProfileUpdatedPayload:
		data = PlayerFromModel(&p.Player, true)
	}
	return Event{
		Type:      string(e.Type),
		Timestamp: e.Timestamp,
		Data:      data,
	}
}

// HealthResponse is the response for the health check
type HealthResponse struct {
	Status  string `json:"status"`
	Storage string `json:"storage"`
}
