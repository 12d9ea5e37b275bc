package scoring

import (
	"slices"

	"github.com/abhisek/fitcheck/internal/catalog"
)

// Level buckets a category percentage.
type Level string

const (
	LevelLow       Level = "Low"
	LevelModerate  Level = "Moderate"
	LevelHigh      Level = "High"
	LevelExcellent Level = "Excellent"
)

// LevelFor maps a rounded percentage to its level.
func LevelFor(percentage int) Level {
	switch {
	case percentage >= 85:
		return LevelExcellent
	case percentage >= 70:
		return LevelHigh
	case percentage >= 50:
		return LevelModerate
	default:
		return LevelLow
	}
}

// Recommendation is the overall fit tier.
type Recommendation string

const (
	RecommendYes   Recommendation = "Yes"
	RecommendMaybe Recommendation = "Maybe"
	RecommendNo    Recommendation = "No"
)

// CategoryScore is the rollup of one category's answers.
type CategoryScore struct {
	Category   catalog.Category `json:"category"`
	Label      string           `json:"label"`
	Score      int              `json:"score"`
	MaxScore   int              `json:"max_score"`
	Percentage int              `json:"percentage"`
	Level      Level            `json:"level"`
}

// Profile holds the six WISCAR dimensions, each in [0, 5].
type Profile struct {
	Will               float64 `json:"will"`
	Interest           float64 `json:"interest"`
	Skill              float64 `json:"skill"`
	CognitiveReadiness float64 `json:"cognitive_readiness"`
	AbilityToLearn     float64 `json:"ability_to_learn"`
	RealWorldAlignment float64 `json:"real_world_alignment"`
}

// Get returns the value of one dimension, or 0 for a non-dimension tag.
func (p Profile) Get(dim catalog.Subcategory) float64 {
	switch dim {
	case catalog.DimWill:
		return p.Will
	case catalog.DimInterest:
		return p.Interest
	case catalog.DimSkill:
		return p.Skill
	case catalog.DimCognitiveReadiness:
		return p.CognitiveReadiness
	case catalog.DimAbilityToLearn:
		return p.AbilityToLearn
	case catalog.DimRealWorldAlignment:
		return p.RealWorldAlignment
	}
	return 0
}

func (p *Profile) set(dim catalog.Subcategory, v float64) {
	switch dim {
	case catalog.DimWill:
		p.Will = v
	case catalog.DimInterest:
		p.Interest = v
	case catalog.DimSkill:
		p.Skill = v
	case catalog.DimCognitiveReadiness:
		p.CognitiveReadiness = v
	case catalog.DimAbilityToLearn:
		p.AbilityToLearn = v
	case catalog.DimRealWorldAlignment:
		p.RealWorldAlignment = v
	}
}

// Sum adds up all six dimensions.
func (p Profile) Sum() float64 {
	var total float64
	for _, d := range catalog.Dimensions() {
		total += p.Get(d)
	}
	return total
}

// Result is an immutable snapshot of a scoring pass.
type Result struct {
	OverallScore    int             `json:"overall_score"`
	ConfidenceScore int             `json:"confidence_score"`
	Recommendation  Recommendation  `json:"recommendation"`
	Categories      []CategoryScore `json:"categories"`
	Profile         Profile         `json:"profile"`
	Insights        []string        `json:"insights"`
	NextSteps       []string        `json:"next_steps"`
	CareerRoles     []string        `json:"career_roles"`
	SkillGaps       []string        `json:"skill_gaps"`
	RecommendedPath string          `json:"recommended_path"`
}

// Clone returns a deep copy of r, or nil for a nil result.
func (r *Result) Clone() *Result {
	if r == nil {
		return nil
	}
	c := *r
	c.Categories = slices.Clone(r.Categories)
	c.Insights = slices.Clone(r.Insights)
	c.NextSteps = slices.Clone(r.NextSteps)
	c.CareerRoles = slices.Clone(r.CareerRoles)
	c.SkillGaps = slices.Clone(r.SkillGaps)
	return &c
}

// Category returns the score for one category.
func (r *Result) Category(c catalog.Category) (CategoryScore, bool) {
	for _, cs := range r.Categories {
		if cs.Category == c {
			return cs, true
		}
	}
	return CategoryScore{}, false
}

// percentage returns the rounded percentage for a category, or 0.
func (r *Result) percentage(c catalog.Category) int {
	cs, _ := r.Category(c)
	return cs.Percentage
}
