package scoring

import "github.com/abhisek/fitcheck/internal/catalog"

// Thresholds for advisory text.
const (
	insightStrong   = 80
	insightModerate = 60
	technicalWeak   = 60
	interestStrong  = 80
	roleDimension   = 4.0
	roleOverall     = 70
	skillGapMinimum = 70
)

func insights(r *Result) []string {
	var out []string
	switch {
	case r.OverallScore >= insightStrong:
		out = append(out, "Your strong motivation and comprehensive skill profile make you an excellent candidate for VR healthcare specialization.")
	case r.OverallScore >= insightModerate:
		out = append(out, "You show good potential for VR healthcare, with some areas for development.")
	default:
		out = append(out, "Consider building foundational skills before pursuing VR healthcare specialization.")
	}
	if r.percentage(catalog.CategoryTechnical) < technicalWeak {
		out = append(out, "Enhancing your technical skills, particularly in programming and VR development, will significantly improve your readiness.")
	}
	if r.percentage(catalog.CategoryInterest) >= interestStrong {
		out = append(out, "Your high interest level is a strong foundation for success in this interdisciplinary field.")
	}
	return out
}

var nextStepsByTier = map[Recommendation][]string{
	RecommendYes: {
		"Enroll in VR development courses focusing on Unity or Unreal Engine",
		"Build foundational knowledge in healthcare and medical terminology",
		"Start with simple VR healthcare projects or simulations",
		"Connect with VR healthcare professionals and communities",
	},
	RecommendMaybe: {
		"Strengthen areas with lower scores through targeted learning",
		"Gain hands-on experience with VR technology as a user",
		"Explore entry-level courses in both healthcare and VR development",
	},
	RecommendNo: {
		"Consider alternative paths in healthcare IT or VR development separately",
		"Build foundational skills in your areas of interest",
		"Reassess after gaining more experience in relevant fields",
	},
}

func nextSteps(rec Recommendation) []string {
	return append([]string(nil), nextStepsByTier[rec]...)
}

func careerRoles(r *Result) []string {
	var out []string
	if r.Profile.Skill >= roleDimension {
		out = append(out, "VR Healthcare Developer", "Medical Simulation Specialist")
	}
	if r.Profile.Interest >= roleDimension && r.Profile.RealWorldAlignment >= roleDimension {
		out = append(out, "Clinical VR Researcher", "Digital Therapeutics Designer")
	}
	if r.OverallScore >= roleOverall {
		out = append(out, "Healthcare UX Designer for VR", "VR Training Program Manager")
	}
	if len(out) == 0 {
		out = []string{"Healthcare IT Support", "VR Content Creator", "Medical Data Analyst"}
	}
	return out
}

var gapByCategory = map[catalog.Category]string{
	catalog.CategoryInterest:    "Domain knowledge in healthcare applications",
	catalog.CategoryPersonality: "Collaborative and communication skills",
	catalog.CategoryTechnical:   "Programming and VR development skills",
	catalog.CategoryWISCAR:      "Learning agility and adaptability",
}

func skillGaps(r *Result) []string {
	var out []string
	for _, cs := range r.Categories {
		if cs.Percentage < skillGapMinimum {
			out = append(out, gapByCategory[cs.Category])
		}
	}
	return out
}

var pathByTier = map[Recommendation]string{
	RecommendYes:   "Advanced VR Healthcare Specialization Track: Start with Unity VR development, then progress to medical simulation projects, and finally pursue real-world healthcare VR internships.",
	RecommendMaybe: "Foundation Building Track: Begin with VR fundamentals and basic healthcare knowledge, then reassess readiness for specialized VR healthcare training.",
	RecommendNo:    "Alternative Path Exploration: Consider related fields like healthcare IT, general VR development, or medical technology support while building relevant skills.",
}

func recommendedPath(rec Recommendation) string {
	return pathByTier[rec]
}
