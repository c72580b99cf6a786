package domain

const MaxSearchLimit = 100

// SkillFilter describes a public skill search. A nil field places no constraint on
// its column; all non-nil fields must match.
type SkillFilter struct {
	// Text is a case-insensitive substring of the skill name, description or category.
	Text *string
	// Category, ProficiencyLevel and Type match exactly.
	Category         *string
	ProficiencyLevel *ProficiencyLevel
	Type             *SkillType
	// Location is a case-insensitive substring of the owner's location.
	Location *string

	// Limit of 0 means no limit.
	Limit  uint64
	Offset uint64
}

func (f SkillFilter) IsEmpty() bool {
	return f.Text == nil && f.Category == nil && f.ProficiencyLevel == nil && f.Type == nil && f.Location == nil
}
