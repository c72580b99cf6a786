package domain

type ProficiencyLevel string

const (
	ProficiencyBeginner     ProficiencyLevel = "beginner"
	ProficiencyIntermediate ProficiencyLevel = "intermediate"
	ProficiencyAdvanced     ProficiencyLevel = "advanced"
	ProficiencyExpert       ProficiencyLevel = "expert"
)

func (p ProficiencyLevel) IsValid() bool {
	switch p {
	case ProficiencyBeginner, ProficiencyIntermediate, ProficiencyAdvanced, ProficiencyExpert:
		return true
	}

	return false
}

type SkillType string

const (
	SkillTypeOffered SkillType = "offered"
	SkillTypeWanted  SkillType = "wanted"
)

func (t SkillType) IsValid() bool {
	return t == SkillTypeOffered || t == SkillTypeWanted
}

// SwapDirection selects which side of a swap request a user is on.
type SwapDirection string

const (
	SwapDirectionSent     SwapDirection = "sent"
	SwapDirectionReceived SwapDirection = "received"
)

func (d SwapDirection) IsValid() bool {
	return d == SwapDirectionSent || d == SwapDirectionReceived
}

// FeedbackDirection selects feedback written by a user (given) or about them (received).
type FeedbackDirection string

const (
	FeedbackDirectionGiven    FeedbackDirection = "given"
	FeedbackDirectionReceived FeedbackDirection = "received"
)

func (d FeedbackDirection) IsValid() bool {
	return d == FeedbackDirectionGiven || d == FeedbackDirectionReceived
}

// Categories offered by the skill editor. The data layer does not restrict categories to this list.
var Categories = []string{
	"Technology",
	"Language",
	"Music",
	"Art",
	"Cooking",
	"Fitness",
	"Business",
	"Education",
}
