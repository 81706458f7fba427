package calculator

// maxScore is the highest value a single rating can take.
const maxScore = 5

// Rating is one user's value for one criterion.
// Values <= 0 (unrated, or -1 for "no experience") never count toward a score.
type Rating struct {
	UserID      string
	CriterionID string
	Value       int
}

// CriterionScore is the mean of the qualifying ratings on one criterion.
type CriterionScore struct {
	Average float64
	Count   int
}

// ItemScore is the scoring result for one item.
type ItemScore struct {
	ItemID string

	// AverageScore is normalized to [0,1] and discounted for missing criteria.
	AverageScore float64

	// TotalRatings counts qualifying ratings across all criteria. It is a
	// confidence signal and takes no part in AverageScore.
	TotalRatings int

	// RatingsByUser counts qualifying ratings per user.
	RatingsByUser map[string]int

	// CriterionScores only contains criteria with at least one qualifying rating.
	CriterionScores map[string]CriterionScore
}

// ScoreItem computes an item's normalized score.
//
// Algorithm:
//   - drop ratings with value <= 0, group the rest by criterion
//   - raw = sum(criterion averages) / (rated criteria × 5)
//   - if totalCriteria > 0: score = raw × (rated criteria / totalCriteria)
//
// The completeness ratio keeps an item rated 5 on one criterion out of five
// from outranking an item rated well on all five. Passing totalCriteria = 0
// returns the undiscounted raw average.
func ScoreItem(itemID string, ratings []Rating, totalCriteria int) ItemScore {
	score := ItemScore{
		ItemID:          itemID,
		RatingsByUser:   make(map[string]int),
		CriterionScores: make(map[string]CriterionScore),
	}

	// Group qualifying values by criterion, remembering first-seen order so
	// the floating point sum is deterministic.
	byCriterion := make(map[string][]int)
	var order []string
	for _, r := range ratings {
		if r.Value <= 0 {
			continue
		}
		score.RatingsByUser[r.UserID]++
		if _, seen := byCriterion[r.CriterionID]; !seen {
			order = append(order, r.CriterionID)
		}
		byCriterion[r.CriterionID] = append(byCriterion[r.CriterionID], r.Value)
	}

	sumOfAverages := 0.0
	for _, criterionID := range order {
		values := byCriterion[criterionID]
		total := 0
		for _, v := range values {
			total += v
		}
		avg := float64(total) / float64(len(values))
		score.CriterionScores[criterionID] = CriterionScore{Average: avg, Count: len(values)}
		score.TotalRatings += len(values)
		sumOfAverages += avg
	}

	numRated := len(order)
	if numRated == 0 {
		return score
	}

	raw := sumOfAverages / float64(numRated*maxScore)
	if totalCriteria > 0 {
		score.AverageScore = raw * float64(numRated) / float64(totalCriteria)
	} else {
		score.AverageScore = raw
	}

	return score
}

// RatedItemCount returns on how many items userID has at least one
// qualifying rating. itemRatings holds each item's ratings.
func RatedItemCount(itemRatings [][]Rating, userID string) int {
	count := 0
	for _, ratings := range itemRatings {
		for _, r := range ratings {
			if r.UserID == userID && r.Value > 0 {
				count++
				break
			}
		}
	}
	return count
}
