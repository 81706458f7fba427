package calculator

import "sort"

// Rank orders scored items by AverageScore, highest first.
// The sort is stable: ties keep their input order. The input is not modified.
func Rank(scores []ItemScore) []ItemScore {
	ranked := make([]ItemScore, len(scores))
	copy(ranked, scores)

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].AverageScore > ranked[j].AverageScore
	})

	return ranked
}
