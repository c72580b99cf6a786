package domain

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"
)

type User struct {
	ID           string       `db:"id"`
	FirstName    string       `db:"first_name"`
	LastName     string       `db:"last_name"`
	Email        string       `db:"email"`
	PasswordHash string       `db:"password_hash"`
	ProfilePhoto *string      `db:"profile_photo"`
	Bio          *string      `db:"bio"`
	Location     *string      `db:"location"`
	IsPublic     bool         `db:"is_public"`
	Availability Availability `db:"availability"`
	Rating       int          `db:"rating"`
	CreatedAt    time.Time    `db:"created_at"`
	UpdatedAt    time.Time    `db:"updated_at"`
}

func (u *User) DisplayName() string {
	return strings.TrimSpace(u.FirstName + " " + u.LastName)
}

// UserUpdate carries a partial profile edit. Nil fields are left untouched.
type UserUpdate struct {
	FirstName    *string
	LastName     *string
	ProfilePhoto *string
	Bio          *string
	Location     *string
	IsPublic     *bool
	Availability *Availability
}

func (u UserUpdate) IsEmpty() bool {
	return u.FirstName == nil && u.LastName == nil && u.ProfilePhoto == nil && u.Bio == nil &&
		u.Location == nil && u.IsPublic == nil && u.Availability == nil
}

// Availability is stored as a jsonb document on the users table.
type Availability struct {
	Weekends bool   `json:"weekends"`
	Evenings bool   `json:"evenings"`
	Weekdays bool   `json:"weekdays"`
	Custom   string `json:"custom"`
}

func DefaultAvailability() Availability {
	return Availability{Weekends: true, Evenings: true}
}

func (a Availability) Value() (driver.Value, error) {
	b, err := json.Marshal(a)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal availability: %w", err)
	}

	return b, nil
}

func (a *Availability) Scan(src any) error {
	var raw []byte

	switch v := src.(type) {
	case nil:
		*a = DefaultAvailability()
		return nil
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return errors.New("availability: unsupported column type")
	}

	if len(raw) == 0 {
		*a = DefaultAvailability()
		return nil
	}

	return json.Unmarshal(raw, a)
}

type Skill struct {
	ID               string           `db:"id"`
	UserID           string           `db:"user_id"`
	Name             string           `db:"name"`
	Description      string           `db:"description"`
	Category         string           `db:"category"`
	ProficiencyLevel ProficiencyLevel `db:"proficiency_level"`
	Type             SkillType        `db:"type"`
	IsPublic         bool             `db:"is_public"`
	IsAvailable      bool             `db:"is_available"`
	CreatedAt        time.Time        `db:"created_at"`
	UpdatedAt        time.Time        `db:"updated_at"`
}

// SkillUpdate is a partial skill edit. The skill type has no field here: it is fixed at creation.
type SkillUpdate struct {
	Name             *string
	Description      *string
	Category         *string
	ProficiencyLevel *ProficiencyLevel
	IsPublic         *bool
	IsAvailable      *bool
}

func (u SkillUpdate) IsEmpty() bool {
	return u.Name == nil && u.Description == nil && u.Category == nil &&
		u.ProficiencyLevel == nil && u.IsPublic == nil && u.IsAvailable == nil
}

// SkillListing is a public skill joined with the public profile fields of its owner.
type SkillListing struct {
	Skill
	OwnerFirstName    string  `db:"owner_first_name"`
	OwnerLastName     string  `db:"owner_last_name"`
	OwnerProfilePhoto *string `db:"owner_profile_photo"`
	OwnerLocation     *string `db:"owner_location"`
	OwnerRating       int     `db:"owner_rating"`
}

type SwapRequest struct {
	ID               string     `db:"id"`
	RequesterID      string     `db:"requester_id"`
	RecipientID      string     `db:"recipient_id"`
	SkillOfferedID   string     `db:"skill_offered_id"`
	SkillRequestedID string     `db:"skill_requested_id"`
	Message          *string    `db:"message"`
	Status           SwapStatus `db:"status"`
	CreatedAt        time.Time  `db:"created_at"`
	UpdatedAt        time.Time  `db:"updated_at"`
}

func (s *SwapRequest) IsParticipant(userID string) bool {
	return s.RequesterID == userID || s.RecipientID == userID
}

// Counterparty returns the other participant, or "" if userID is not part of the swap.
func (s *SwapRequest) Counterparty(userID string) string {
	switch userID {
	case s.RequesterID:
		return s.RecipientID
	case s.RecipientID:
		return s.RequesterID
	default:
		return ""
	}
}

type Feedback struct {
	ID         string    `db:"id"`
	SwapID     string    `db:"swap_id"`
	FromUserID string    `db:"from_user_id"`
	ToUserID   string    `db:"to_user_id"`
	Rating     int       `db:"rating"`
	Comment    string    `db:"comment"`
	CreatedAt  time.Time `db:"created_at"`
}
