package screening

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Vocabulary and rule tables are package data rather than inline literals so
// they can be inspected and swapped in tests without touching the logic.

var SkillVocabulary = []string{
	"JavaScript", "TypeScript", "React", "Node.js", "Python", "Java", "C++",
	"HTML", "CSS", "SQL", "MongoDB", "PostgreSQL", "AWS", "Docker", "Git",
	"Angular", "Vue.js", "Express", "Django", "Flask", "Spring Boot",
}

var EducationKeywords = []string{"Bachelor", "Master", "PhD", "Degree", "University", "College"}

var (
	frontendSkills = []string{"React", "Angular", "Vue.js"}
	backendSkills  = []string{"Node.js", "Python", "Java"}
	devopsSkills   = []string{"AWS", "Docker", "Kubernetes"}
)

const (
	experienceNotSpecified = "Experience details not clearly specified"
	educationNotSpecified  = "Education details not specified"
)

var (
	experiencePattern = regexp.MustCompile(`(?i)(\d+)\s*(years?|yrs?)`)
	leadingIntPattern = regexp.MustCompile(`(\d+)`)
)

type Analysis struct {
	Skills         []string `json:"skills"`
	Experience     string   `json:"experience"`
	Education      string   `json:"education"`
	AIScore        int      `json:"ai_score"`
	Strengths      []string `json:"strengths"`
	Weaknesses     []string `json:"weaknesses"`
	Recommendation string   `json:"recommendation"`
}

// Analyze runs the full pipeline over raw resume text.
func Analyze(resumeText string) Analysis {
	skills := ExtractSkills(resumeText)
	experience := ExtractExperience(resumeText)
	education := ExtractEducation(resumeText)
	score := Score(skills, experience, education)

	return Analysis{
		Skills:         skills,
		Experience:     experience,
		Education:      education,
		AIScore:        score,
		Strengths:      Strengths(skills, experience),
		Weaknesses:     Weaknesses(skills, experience),
		Recommendation: Recommendation(score),
	}
}

// ExtractSkills returns the subset of the vocabulary present in the text,
// case-insensitively, preserving vocabulary order.
func ExtractSkills(text string) []string {
	lower := strings.ToLower(text)
	found := make([]string, 0, len(SkillVocabulary))
	for _, skill := range SkillVocabulary {
		if strings.Contains(lower, strings.ToLower(skill)) {
			found = append(found, skill)
		}
	}
	return found
}

// ExtractExperience uses only the first "<n> years"/"<n> yrs" mention.
func ExtractExperience(text string) string {
	m := experiencePattern.FindStringSubmatch(text)
	if m == nil {
		return experienceNotSpecified
	}
	return fmt.Sprintf("%s years of professional experience", m[1])
}

// ExtractEducation reports the first education keyword found, in fixed
// priority order.
func ExtractEducation(text string) string {
	lower := strings.ToLower(text)
	for _, kw := range EducationKeywords {
		if strings.Contains(lower, strings.ToLower(kw)) {
			return fmt.Sprintf("%s level education identified", kw)
		}
	}
	return educationNotSpecified
}

// Score combines extracted facts into a 0-100 value: base 50, up to 40 from
// skills, up to 30 from years of experience, up to 20 from education.
func Score(skills []string, experience, education string) int {
	score := 50

	score += minInt(len(skills)*5, 40)

	if m := leadingIntPattern.FindStringSubmatch(experience); m != nil {
		years, err := strconv.Atoi(m[1])
		if err == nil {
			score += minInt(years*5, 30)
		}
	}

	eduLower := strings.ToLower(education)
	switch {
	case strings.Contains(eduLower, "master") || strings.Contains(eduLower, "phd"):
		score += 20
	case strings.Contains(eduLower, "bachelor"):
		score += 15
	case strings.Contains(eduLower, "degree"):
		score += 10
	}

	return minInt(score, 100)
}

func Strengths(skills []string, experience string) []string {
	strengths := make([]string, 0, 4)

	if len(skills) > 5 {
		strengths = append(strengths, "Strong technical skill set")
	}
	if containsAny(skills, frontendSkills) {
		strengths = append(strengths, "Modern frontend framework expertise")
	}
	if containsAny(skills, backendSkills) {
		strengths = append(strengths, "Backend development capabilities")
	}
	if strings.Contains(experience, "years") {
		strengths = append(strengths, "Relevant professional experience")
	}

	if len(strengths) == 0 {
		return []string{"Basic technical foundation"}
	}
	return strengths
}

func Weaknesses(skills []string, experience string) []string {
	weaknesses := make([]string, 0, 3)

	if len(skills) < 3 {
		weaknesses = append(weaknesses, "Limited technical skill diversity")
	}
	if !containsAny(skills, devopsSkills) {
		weaknesses = append(weaknesses, "Limited cloud/DevOps experience")
	}
	if !strings.Contains(experience, "years") || strings.Contains(experience, "1 year") {
		weaknesses = append(weaknesses, "Limited professional experience")
	}

	if len(weaknesses) == 0 {
		return []string{"Areas for growth in emerging technologies"}
	}
	return weaknesses
}

// Recommendation maps a score to one of three fixed bands; the 80 and 60
// boundaries are inclusive.
func Recommendation(score int) string {
	switch {
	case score >= 80:
		return "Highly recommended candidate with strong technical skills and experience. Proceed to interview."
	case score >= 60:
		return "Good candidate with solid foundation. Consider for interview with focus on specific skill areas."
	default:
		return "Candidate may need additional training or experience. Consider for junior positions or with mentorship."
	}
}

func containsAny(haystack, needles []string) bool {
	for _, h := range haystack {
		for _, n := range needles {
			if h == n {
				return true
			}
		}
	}
	return false
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
