package scoring

import (
	"fmt"
	"math"

	"github.com/abhisek/fitcheck/internal/catalog"
)

// Compute runs a full scoring pass over the given answers. It has no side
// effects; calling it twice on the same input yields equal results.
func Compute(cat *catalog.Catalog, answers []Answer) (*Result, error) {
	type tally struct {
		sum   int
		count int
	}
	byCategory := make(map[catalog.Category]*tally, 4)
	byDimension := make(map[catalog.Subcategory]*tally, 6)

	for _, a := range answers {
		q, ok := cat.Lookup(a.QuestionID)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrInvalidReference, a.QuestionID)
		}
		t := byCategory[q.Category]
		if t == nil {
			t = &tally{}
			byCategory[q.Category] = t
		}
		t.sum += a.Score
		t.count++

		if q.Subcategory.IsDimension() {
			d := byDimension[q.Subcategory]
			if d == nil {
				d = &tally{}
				byDimension[q.Subcategory] = d
			}
			d.sum += a.Score
			d.count++
		}
	}

	r := &Result{}

	var pctTotal int
	for _, c := range catalog.AllCategories() {
		cs := CategoryScore{Category: c, Label: c.DisplayName()}
		if t := byCategory[c]; t != nil {
			cs.Score = t.sum
			cs.MaxScore = t.count * MaxPointsPerQuestion
			cs.Percentage = int(math.Round(100 * float64(cs.Score) / float64(cs.MaxScore)))
		}
		cs.Level = LevelFor(cs.Percentage)
		r.Categories = append(r.Categories, cs)
		pctTotal += cs.Percentage
	}

	for _, d := range catalog.Dimensions() {
		var v float64
		if t := byDimension[d]; t != nil {
			v = round2(float64(t.sum) / float64(t.count*MaxPointsPerQuestion) * MaxPointsPerQuestion)
		}
		r.Profile.set(d, v)
	}

	r.OverallScore = int(math.Round(float64(pctTotal) / float64(len(r.Categories))))
	r.ConfidenceScore = int(math.Round(100 * r.Profile.Sum() / 6 / MaxPointsPerQuestion))
	r.Recommendation = Recommend(r.OverallScore, r.ConfidenceScore)

	r.Insights = insights(r)
	r.NextSteps = nextSteps(r.Recommendation)
	r.CareerRoles = careerRoles(r)
	r.SkillGaps = skillGaps(r)
	r.RecommendedPath = recommendedPath(r.Recommendation)

	return r, nil
}

// Recommend maps overall and confidence scores to a tier.
func Recommend(overall, confidence int) Recommendation {
	switch {
	case overall >= 75 && confidence >= 70:
		return RecommendYes
	case overall >= 60 || confidence >= 60:
		return RecommendMaybe
	default:
		return RecommendNo
	}
}

func round2(x float64) float64 {
	return math.Round(x*100) / 100
}
