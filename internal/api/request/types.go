package request

// RegisterRequest is the request body for registering a player
type RegisterRequest struct {
	Username string `json:"username" validate:"required,min=3,max=32,alphanum"`
	Password string `json:"password" validate:"required,min=8,max=72"`
	Name     string `json:"name" validate:"required,max=100"`
}

// LoginRequest is the request body for logging in
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// UpdateProfileRequest replaces the editable profile fields
type UpdateProfileRequest struct {
	Name         string   `json:"name" validate:"required,max=100"`
	Email        string   `json:"email" validate:"omitempty,email"`
	Phone        string   `json:"phone" validate:"omitempty,max=32"`
	Location     string   `json:"location" validate:"max=200"`
	Bio          string   `json:"bio" validate:"max=500"`
	SkillLevel   string   `json:"skill_level"`
	Availability []string `json:"availability" validate:"max=20,dive,max=40"`
	PhotoURL     string   `json:"photo_url" validate:"omitempty,url"`
}

// UpdatePrivacyRequest replaces all privacy flags; every flag must be present
type UpdatePrivacyRequest struct {
	IsVisible    *bool `json:"is_visible" validate:"required"`
	ShowEmail    *bool `json:"show_email" validate:"required"`
	ShowPhone    *bool `json:"show_phone" validate:"required"`
	ShowLocation *bool `json:"show_location" validate:"required"`
	AllowContact *bool `json:"allow_contact" validate:"required"`
}

// ContactRequest is the request body for contacting a player.
// Message rules are enforced by the contact service.
type ContactRequest struct {
	Message string `json:"message"`
}
