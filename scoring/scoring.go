package scoring

import (
	"math"

	"berkeley-brew-api/models"
)

// CafeScores holds the recomputed cached aggregates for one cafe. A nil score
// means no review carried usable data for that dimension; it is never
// collapsed to zero.
type CafeScores struct {
	GrindabilityScore        *float64 `json:"grindability_score"`
	StudentFriendlinessScore *float64 `json:"student_friendliness_score"`
	CoffeeQualityScore       *float64 `json:"coffee_quality_score"`
	VibeScore                *float64 `json:"vibe_score"`
	GoldenBearScore          *float64 `json:"golden_bear_score"`
	ReviewCount              int      `json:"review_count"`
}

// subScoreMin and subScoreMax bound every valid sub-score. Values outside the
// range (and NaN/Inf) are treated as corrupt and excluded from averages.
const (
	subScoreMin = 0
	subScoreMax = 5
)

// Aggregate recomputes a cafe's cached scores from its complete review set.
// Each of the four sub-score fields is averaged independently over the
// reviews that carry a usable value for it. The overall golden bear score is
// the mean of each review's own stored golden bear score, so a review's
// weight does not depend on how many sub-scores it filled in. All averages
// are rounded to one decimal. An empty or fully corrupt input yields all-nil
// scores and a zero count; Aggregate never fails.
func Aggregate(reviews []models.Review) CafeScores {
	fields := []func(*models.Review) *float64{
		func(r *models.Review) *float64 { return r.GrindabilityScore },
		func(r *models.Review) *float64 { return r.StudentFriendlinessScore },
		func(r *models.Review) *float64 { return r.CoffeeQualityScore },
		func(r *models.Review) *float64 { return r.VibeScore },
		func(r *models.Review) *float64 { return r.GoldenBearScore },
	}

	var averages [5]*float64
	var counts [5]int
	for i, field := range fields {
		var sum float64
		n := 0
		for j := range reviews {
			v := field(&reviews[j])
			if !usable(v) {
				continue
			}
			sum += *v
			n++
		}
		counts[i] = n
		if n > 0 {
			avg := Round1(sum / float64(n))
			averages[i] = &avg
		}
	}

	return CafeScores{
		GrindabilityScore:        averages[0],
		StudentFriendlinessScore: averages[1],
		CoffeeQualityScore:       averages[2],
		VibeScore:                averages[3],
		GoldenBearScore:          averages[4],
		ReviewCount:              counts[4],
	}
}

// ReviewScore derives a review's own golden bear score: the mean of its
// usable sub-scores, rounded to one decimal. Nil when the review carries no
// usable sub-score at all.
func ReviewScore(r *models.Review) *float64 {
	subs := []*float64{
		r.GrindabilityScore,
		r.StudentFriendlinessScore,
		r.CoffeeQualityScore,
		r.VibeScore,
	}
	var sum float64
	n := 0
	for _, v := range subs {
		if !usable(v) {
			continue
		}
		sum += *v
		n++
	}
	if n == 0 {
		return nil
	}
	avg := Round1(sum / float64(n))
	return &avg
}

// Round1 rounds to one decimal place
func Round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func usable(v *float64) bool {
	if v == nil {
		return false
	}
	if math.IsNaN(*v) || math.IsInf(*v, 0) {
		return false
	}
	return *v >= subScoreMin && *v <= subScoreMax
}
