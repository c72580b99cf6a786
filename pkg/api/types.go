// Package api holds the JSON wire types shared by the HTTP server and pkg/client.
package api

import "time"

type ErrorCode string

const (
	VALIDATION         ErrorCode = "VALIDATION"
	BADREQUEST         ErrorCode = "BAD_REQUEST"
	UNAUTHORIZED       ErrorCode = "UNAUTHORIZED"
	INVALIDCREDENTIALS ErrorCode = "INVALID_CREDENTIALS"
	FORBIDDEN          ErrorCode = "FORBIDDEN"
	NOTFOUND           ErrorCode = "NOT_FOUND"
	EMAILTAKEN         ErrorCode = "EMAIL_TAKEN"
	ALREADYEXISTS      ErrorCode = "ALREADY_EXISTS"
	FEEDBACKEXISTS     ErrorCode = "FEEDBACK_EXISTS"
	INVALIDTRANSITION  ErrorCode = "INVALID_TRANSITION"
	INTERNAL           ErrorCode = "INTERNAL"
)

type ErrorBody struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
}

type ErrorResponse struct {
	Error ErrorBody `json:"error"`
}

type Availability struct {
	Weekends bool   `json:"weekends"`
	Evenings bool   `json:"evenings"`
	Weekdays bool   `json:"weekdays"`
	Custom   string `json:"custom"`
}

// User is a profile. Email is only filled in for the profile owner.
type User struct {
	ID           string       `json:"id"`
	FirstName    string       `json:"first_name"`
	LastName     string       `json:"last_name"`
	Email        string       `json:"email,omitempty"`
	ProfilePhoto *string      `json:"profile_photo,omitempty"`
	Bio          *string      `json:"bio,omitempty"`
	Location     *string      `json:"location,omitempty"`
	IsPublic     bool         `json:"is_public"`
	Availability Availability `json:"availability"`
	Rating       int          `json:"rating"`
	CreatedAt    time.Time    `json:"created_at"`
	UpdatedAt    time.Time    `json:"updated_at"`
}

type AuthResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
	User      User      `json:"user"`
}

type Skill struct {
	ID               string    `json:"id"`
	UserID           string    `json:"user_id"`
	Name             string    `json:"name"`
	Description      string    `json:"description"`
	Category         string    `json:"category"`
	ProficiencyLevel string    `json:"proficiency_level"`
	Type             string    `json:"type"`
	IsPublic         bool      `json:"is_public"`
	IsAvailable      bool      `json:"is_available"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// SkillOwner is the public slice of a profile shown next to a search result.
type SkillOwner struct {
	ID           string  `json:"id"`
	FirstName    string  `json:"first_name"`
	LastName     string  `json:"last_name"`
	ProfilePhoto *string `json:"profile_photo,omitempty"`
	Location     *string `json:"location,omitempty"`
	Rating       int     `json:"rating"`
}

type SkillListing struct {
	Skill
	Owner SkillOwner `json:"owner"`
}

type SwapRequest struct {
	ID               string    `json:"id"`
	RequesterID      string    `json:"requester_id"`
	RecipientID      string    `json:"recipient_id"`
	SkillOfferedID   string    `json:"skill_offered_id"`
	SkillRequestedID string    `json:"skill_requested_id"`
	Message          *string   `json:"message,omitempty"`
	Status           string    `json:"status"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

type Feedback struct {
	ID         string    `json:"id"`
	SwapID     string    `json:"swap_id"`
	FromUserID string    `json:"from_user_id"`
	ToUserID   string    `json:"to_user_id"`
	Rating     int       `json:"rating"`
	Comment    string    `json:"comment"`
	CreatedAt  time.Time `json:"created_at"`
}

type SkillsResponse struct {
	Skills []Skill `json:"skills"`
}

type SearchResponse struct {
	Skills []SkillListing `json:"skills"`
}

type CategoriesResponse struct {
	Categories []string `json:"categories"`
}

type SwapsResponse struct {
	Swaps []SwapRequest `json:"swaps"`
}

type FeedbackResponse struct {
	Feedback []Feedback `json:"feedback"`
}

type HealthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}
