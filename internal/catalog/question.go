package catalog

// Category is one of the four top-level question groupings.
type Category string

const (
	CategoryInterest    Category = "interest"
	CategoryPersonality Category = "personality"
	CategoryTechnical   Category = "technical"
	CategoryWISCAR      Category = "wiscar"
)

// AllCategories returns all categories in report order.
func AllCategories() []Category {
	return []Category{
		CategoryInterest,
		CategoryPersonality,
		CategoryTechnical,
		CategoryWISCAR,
	}
}

// DisplayName returns the label used in reports ("Interest", "Wiscar", ...).
func (c Category) DisplayName() string {
	switch c {
	case CategoryInterest:
		return "Interest"
	case CategoryPersonality:
		return "Personality"
	case CategoryTechnical:
		return "Technical"
	case CategoryWISCAR:
		return "Wiscar"
	default:
		return string(c)
	}
}

// Valid reports whether c is a known category.
func (c Category) Valid() bool {
	switch c {
	case CategoryInterest, CategoryPersonality, CategoryTechnical, CategoryWISCAR:
		return true
	}
	return false
}

// Subcategory is a finer-grained tag. Six of them are the profile dimensions.
type Subcategory string

const (
	SubOpenness          Subcategory = "openness"
	SubConscientiousness Subcategory = "conscientiousness"
	SubAgreeableness     Subcategory = "agreeableness"
	SubWorkingStyle      Subcategory = "working-style"

	SubProgramming Subcategory = "programming"
	SubHealthcare  Subcategory = "healthcare"
	SubVRKnowledge Subcategory = "vr-knowledge"
	SubScenario    Subcategory = "scenario"

	DimWill               Subcategory = "will"
	DimInterest           Subcategory = "interest"
	DimSkill              Subcategory = "skill"
	DimCognitiveReadiness Subcategory = "cognitiveReadiness"
	DimAbilityToLearn     Subcategory = "abilityToLearn"
	DimRealWorldAlignment Subcategory = "realWorldAlignment"
)

// Dimensions returns the six WISCAR profile dimensions in display order.
func Dimensions() []Subcategory {
	return []Subcategory{
		DimWill,
		DimInterest,
		DimSkill,
		DimCognitiveReadiness,
		DimAbilityToLearn,
		DimRealWorldAlignment,
	}
}

// AllSubcategories returns every known subcategory tag.
func AllSubcategories() []Subcategory {
	return append([]Subcategory{
		SubOpenness,
		SubConscientiousness,
		SubAgreeableness,
		SubWorkingStyle,
		SubProgramming,
		SubHealthcare,
		SubVRKnowledge,
		SubScenario,
	}, Dimensions()...)
}

// Valid reports whether s is a known tag. The empty tag is valid (untagged question).
func (s Subcategory) Valid() bool {
	if s == "" {
		return true
	}
	for _, known := range AllSubcategories() {
		if s == known {
			return true
		}
	}
	return false
}

// IsDimension reports whether s is one of the six profile dimensions.
func (s Subcategory) IsDimension() bool {
	for _, d := range Dimensions() {
		if s == d {
			return true
		}
	}
	return false
}

// DisplayName returns a human-readable name for a dimension or tag.
func (s Subcategory) DisplayName() string {
	switch s {
	case DimWill:
		return "Will"
	case DimInterest:
		return "Interest"
	case DimSkill:
		return "Skill"
	case DimCognitiveReadiness:
		return "Cognitive Readiness"
	case DimAbilityToLearn:
		return "Ability to Learn"
	case DimRealWorldAlignment:
		return "Real-World Alignment"
	default:
		return string(s)
	}
}

// QuestionType determines both the input affordance and the scoring rule.
type QuestionType string

const (
	TypeLikert         QuestionType = "likert"          // scaled rating
	TypeMultipleChoice QuestionType = "multiple-choice" // scored by option position
	TypeScenario       QuestionType = "scenario"        // every valid option scores the same
)

// Valid reports whether t is a known question type.
func (t QuestionType) Valid() bool {
	switch t {
	case TypeLikert, TypeMultipleChoice, TypeScenario:
		return true
	}
	return false
}

// IsChoice reports whether answers to t are option strings.
func (t QuestionType) IsChoice() bool {
	return t == TypeMultipleChoice || t == TypeScenario
}

// MaxRating is the highest value any likert scale may reach. Scoring treats
// it as the ceiling of every question.
const MaxRating = 5

// Scale bounds a likert question.
type Scale struct {
	Min      int    `yaml:"min"`
	Max      int    `yaml:"max"`
	MinLabel string `yaml:"min_label"`
	MaxLabel string `yaml:"max_label"`
}

// Question is a single immutable entry of the question bank.
type Question struct {
	ID          string       `yaml:"id"`
	Category    Category     `yaml:"category"`
	Subcategory Subcategory  `yaml:"subcategory,omitempty"`
	Type        QuestionType `yaml:"type"`
	Text        string       `yaml:"text"`
	Scale       *Scale       `yaml:"scale,omitempty"`
	Options     []string     `yaml:"options,omitempty"`
}

// OptionIndex returns the position of option within q.Options, or -1.
func (q Question) OptionIndex(option string) int {
	for i, o := range q.Options {
		if o == option {
			return i
		}
	}
	return -1
}
