package model

import (
	"slices"
	"time"
)

// PlayerID uniquely identifies a player across the system
type PlayerID string

// PrivacySettings controls which profile fields other players can see
type PrivacySettings struct {
	IsVisible    bool // master opt-in for appearing in search results
	ShowEmail    bool
	ShowPhone    bool
	ShowLocation bool
	AllowContact bool
}

// DefaultPrivacySettings returns the settings applied to newly registered players
func DefaultPrivacySettings() PrivacySettings {
	return PrivacySettings{
		IsVisible:    true,
		ShowEmail:    false,
		ShowPhone:    false,
		ShowLocation: true,
		AllowContact: true,
	}
}

// Player is a discoverable player profile
type Player struct {
	ID           PlayerID
	Name         string
	Email        string
	Phone        string
	Location     string
	Bio          string
	SkillLevel   string   // numeric rating, e.g. "4.0"
	Availability []string // free-text tags, e.g. "Weekdays"
	PhotoURL     string
	Privacy      PrivacySettings
	LastActive   time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsVisible reports whether the player has opted in to search results
func (p *Player) IsVisible() bool {
	return p.Privacy.IsVisible
}

// HasPhoto reports whether the player has a photo reference
func (p *Player) HasPhoto() bool {
	return p.PhotoURL != ""
}

// Clone returns a deep copy of the player
func (p *Player) Clone() *Player {
	c := *p
	c.Availability = slices.Clone(p.Availability)
	return &c
}

// Account holds login credentials for a player.
// Stored separately from the profile so password hashes never leave storage with it.
type Account struct {
	PlayerID     PlayerID
	Username     string // login username (immutable)
	PasswordHash string // bcrypt hash
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
