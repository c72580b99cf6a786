package api

// Request bodies accepted by the HTTP API. The validate tags are enforced by the server.

type RegisterRequest struct {
	FirstName string `json:"first_name" validate:"required,min=1,max=100"`
	LastName  string `json:"last_name" validate:"required,min=1,max=100"`
	Email     string `json:"email" validate:"required,email,max=254"`
	Password  string `json:"password" validate:"required,min=8,max=72"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type UpdateProfileRequest struct {
	FirstName    *string       `json:"first_name,omitempty" validate:"omitempty,min=1,max=100"`
	LastName     *string       `json:"last_name,omitempty" validate:"omitempty,min=1,max=100"`
	ProfilePhoto *string       `json:"profile_photo,omitempty" validate:"omitempty,url,max=2048"`
	Bio          *string       `json:"bio,omitempty" validate:"omitempty,max=2000"`
	Location     *string       `json:"location,omitempty" validate:"omitempty,max=200"`
	IsPublic     *bool         `json:"is_public,omitempty"`
	Availability *Availability `json:"availability,omitempty"`
}

type CreateSkillRequest struct {
	Name             string `json:"name" validate:"required,min=2,max=100"`
	Description      string `json:"description" validate:"max=2000"`
	Category         string `json:"category" validate:"required,max=50"`
	ProficiencyLevel string `json:"proficiency_level" validate:"required,proficiency"`
	Type             string `json:"type" validate:"required,skill_type"`
	IsPublic         *bool  `json:"is_public,omitempty"`
	IsAvailable      *bool  `json:"is_available,omitempty"`
}

// UpdateSkillRequest has no type field: a skill's type is fixed at creation.
type UpdateSkillRequest struct {
	Name             *string `json:"name,omitempty" validate:"omitempty,min=2,max=100"`
	Description      *string `json:"description,omitempty" validate:"omitempty,max=2000"`
	Category         *string `json:"category,omitempty" validate:"omitempty,min=1,max=50"`
	ProficiencyLevel *string `json:"proficiency_level,omitempty" validate:"omitempty,proficiency"`
	IsPublic         *bool   `json:"is_public,omitempty"`
	IsAvailable      *bool   `json:"is_available,omitempty"`
}

type SetVisibilityRequest struct {
	IsPublic *bool `json:"is_public" validate:"required"`
}

type SetAvailabilityRequest struct {
	IsAvailable *bool `json:"is_available" validate:"required"`
}

type CreateSwapRequest struct {
	RecipientID      string  `json:"recipient_id" validate:"required,custom_id,max=100"`
	SkillOfferedID   string  `json:"skill_offered_id" validate:"required,custom_id,max=100"`
	SkillRequestedID string  `json:"skill_requested_id" validate:"required,custom_id,max=100"`
	Message          *string `json:"message,omitempty" validate:"omitempty,max=1000"`
}

type RespondSwapRequest struct {
	Status string `json:"status" validate:"required,oneof=accepted rejected"`
}

type SubmitFeedbackRequest struct {
	ToUserID string `json:"to_user_id" validate:"required,custom_id,max=100"`
	Rating   int    `json:"rating" validate:"required,min=1,max=5"`
	Comment  string `json:"comment" validate:"max=2000"`
}
