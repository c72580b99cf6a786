package domain

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAggregateRating(t *testing.T) {
	testCases := []struct {
		name     string
		ratings  []int
		expected int
		ok       bool
	}{
		{name: "No feedback", ratings: nil, ok: false},
		{name: "Single rating", ratings: []int{5}, expected: 5, ok: true},
		{name: "Exact mean", ratings: []int{2, 4}, expected: 3, ok: true},
		{name: "Half rounds up", ratings: []int{4, 5}, expected: 5, ok: true},
		{name: "Low half rounds up", ratings: []int{1, 2}, expected: 2, ok: true},
		{name: "Below half rounds down", ratings: []int{4, 4, 5}, expected: 4, ok: true},
		{name: "Above half rounds up", ratings: []int{4, 5, 5}, expected: 5, ok: true},
		{name: "All ones", ratings: []int{1, 1, 1, 1}, expected: 1, ok: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := AggregateRating(tc.ratings)
			assert.Equal(t, tc.ok, ok)
			assert.Equal(t, tc.expected, got)
		})
	}
}

func TestAggregateRating_BoundsAndMean(t *testing.T) {
	// Every multiset of up to four ratings stays within bounds and matches math.Floor(mean+0.5).
	var check func(prefix []int)
	check = func(prefix []int) {
		if len(prefix) > 0 {
			got, ok := AggregateRating(prefix)
			assert.True(t, ok)
			assert.GreaterOrEqual(t, got, MinRating)
			assert.LessOrEqual(t, got, MaxRating)

			sum := 0
			for _, r := range prefix {
				sum += r
			}
			mean := float64(sum) / float64(len(prefix))
			assert.Equal(t, int(math.Floor(mean+0.5)), got, "ratings %v", prefix)
		}

		if len(prefix) == 4 {
			return
		}

		for r := MinRating; r <= MaxRating; r++ {
			check(append(append([]int{}, prefix...), r))
		}
	}

	check(nil)
}
