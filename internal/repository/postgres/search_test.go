package postgres

import (
	"testing"

	sq "github.com/Masterminds/squirrel"
	"github.com/YusovID/skillswap/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildSearchQuery(t *testing.T) {
	b := sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

	music := "Music"
	text := "50%_off"
	location := "Berlin"
	level := domain.ProficiencyExpert
	wanted := domain.SkillTypeWanted

	testCases := []struct {
		name         string
		filter       domain.SkillFilter
		contains     []string
		notContains  []string
		expectedArgs []any
	}{
		{
			name:         "No filters",
			filter:       domain.SkillFilter{},
			contains:     []string{"WHERE (s.is_public = $1)", "ORDER BY s.created_at DESC", "JOIN users u ON u.id = s.user_id"},
			notContains:  []string{"ILIKE", "LIMIT", "OFFSET"},
			expectedArgs: []any{true},
		},
		{
			name:         "Category and type",
			filter:       domain.SkillFilter{Category: &music, Type: &wanted},
			contains:     []string{"s.category = $2", "s.type = $3"},
			notContains:  []string{"ILIKE"},
			expectedArgs: []any{true, "Music", wanted},
		},
		{
			name:         "Text searches three columns with escaped wildcards",
			filter:       domain.SkillFilter{Text: &text},
			contains:     []string{"(s.name ILIKE $2 OR s.description ILIKE $3 OR s.category ILIKE $4)"},
			expectedArgs: []any{true, `%50\%\_off%`, `%50\%\_off%`, `%50\%\_off%`},
		},
		{
			name:         "Location and level",
			filter:       domain.SkillFilter{ProficiencyLevel: &level, Location: &location},
			contains:     []string{"s.proficiency_level = $2", "u.location ILIKE $3"},
			expectedArgs: []any{true, level, "%Berlin%"},
		},
		{
			name:         "Pagination",
			filter:       domain.SkillFilter{Limit: 20, Offset: 40},
			contains:     []string{"LIMIT 20", "OFFSET 40"},
			expectedArgs: []any{true},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			query, args, err := buildSearchQuery(b, tc.filter).ToSql()
			require.NoError(t, err)

			for _, s := range tc.contains {
				assert.Contains(t, query, s)
			}
			for _, s := range tc.notContains {
				assert.NotContains(t, query, s)
			}
			assert.Equal(t, tc.expectedArgs, args)
		})
	}
}

func TestContainsPattern(t *testing.T) {
	assert.Equal(t, "%guitar%", containsPattern("guitar"))
	assert.Equal(t, `%a\\b%`, containsPattern(`a\b`))
	assert.Equal(t, `%\%\_%`, containsPattern("%_"))
}
