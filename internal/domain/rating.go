package domain

const (
	MinRating = 1
	MaxRating = 5
)

// AggregateRating returns the arithmetic mean of ratings rounded half up.
// The boolean is false when there is nothing to aggregate, in which case
// the stored rating must be left as it is.
func AggregateRating(ratings []int) (int, bool) {
	if len(ratings) == 0 {
		return 0, false
	}

	sum := 0
	for _, r := range ratings {
		sum += r
	}

	n := len(ratings)

	return (2*sum + n) / (2 * n), true
}
