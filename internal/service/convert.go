package service

import (
	"github.com/YusovID/skillswap/internal/domain"
	"github.com/YusovID/skillswap/pkg/api"
)

// toAPIUser renders a profile. The email is only exposed to the profile owner.
func toAPIUser(u *domain.User, owner bool) *api.User {
	out := &api.User{
		ID:           u.ID,
		FirstName:    u.FirstName,
		LastName:     u.LastName,
		ProfilePhoto: u.ProfilePhoto,
		Bio:          u.Bio,
		Location:     u.Location,
		IsPublic:     u.IsPublic,
		Availability: toAPIAvailability(u.Availability),
		Rating:       u.Rating,
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
	}

	if owner {
		out.Email = u.Email
	}

	return out
}

func toAPIAvailability(a domain.Availability) api.Availability {
	return api.Availability{
		Weekends: a.Weekends,
		Evenings: a.Evenings,
		Weekdays: a.Weekdays,
		Custom:   a.Custom,
	}
}

func fromAPIAvailability(a api.Availability) domain.Availability {
	return domain.Availability{
		Weekends: a.Weekends,
		Evenings: a.Evenings,
		Weekdays: a.Weekdays,
		Custom:   a.Custom,
	}
}

func toAPISkill(s *domain.Skill) *api.Skill {
	return &api.Skill{
		ID:               s.ID,
		UserID:           s.UserID,
		Name:             s.Name,
		Description:      s.Description,
		Category:         s.Category,
		ProficiencyLevel: string(s.ProficiencyLevel),
		Type:             string(s.Type),
		IsPublic:         s.IsPublic,
		IsAvailable:      s.IsAvailable,
		CreatedAt:        s.CreatedAt,
		UpdatedAt:        s.UpdatedAt,
	}
}

func toAPISkills(skills []domain.Skill) []api.Skill {
	out := make([]api.Skill, len(skills))
	for i := range skills {
		out[i] = *toAPISkill(&skills[i])
	}

	return out
}

func toAPISkillListings(listings []domain.SkillListing) []api.SkillListing {
	out := make([]api.SkillListing, len(listings))
	for i := range listings {
		l := &listings[i]
		out[i] = api.SkillListing{
			Skill: *toAPISkill(&l.Skill),
			Owner: api.SkillOwner{
				ID:           l.UserID,
				FirstName:    l.OwnerFirstName,
				LastName:     l.OwnerLastName,
				ProfilePhoto: l.OwnerProfilePhoto,
				Location:     l.OwnerLocation,
				Rating:       l.OwnerRating,
			},
		}
	}

	return out
}

func toAPISwap(s *domain.SwapRequest) *api.SwapRequest {
	return &api.SwapRequest{
		ID:               s.ID,
		RequesterID:      s.RequesterID,
		RecipientID:      s.RecipientID,
		SkillOfferedID:   s.SkillOfferedID,
		SkillRequestedID: s.SkillRequestedID,
		Message:          s.Message,
		Status:           string(s.Status),
		CreatedAt:        s.CreatedAt,
		UpdatedAt:        s.UpdatedAt,
	}
}

func toAPISwaps(swaps []domain.SwapRequest) []api.SwapRequest {
	out := make([]api.SwapRequest, len(swaps))
	for i := range swaps {
		out[i] = *toAPISwap(&swaps[i])
	}

	return out
}

func toAPIFeedback(f *domain.Feedback) *api.Feedback {
	return &api.Feedback{
		ID:         f.ID,
		SwapID:     f.SwapID,
		FromUserID: f.FromUserID,
		ToUserID:   f.ToUserID,
		Rating:     f.Rating,
		Comment:    f.Comment,
		CreatedAt:  f.CreatedAt,
	}
}

func toAPIFeedbackList(list []domain.Feedback) []api.Feedback {
	out := make([]api.Feedback, len(list))
	for i := range list {
		out[i] = *toAPIFeedback(&list[i])
	}

	return out
}
