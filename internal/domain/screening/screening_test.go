package screening

import (
	"reflect"
	"strconv"
	"strings"
	"testing"
)

func TestExtractSkills(t *testing.T) {
	cases := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "vocabulary order preserved",
			text: "Worked with Python, then React, some docker and postgresql",
			want: []string{"React", "Python", "PostgreSQL", "Docker"},
		},
		{
			name: "case insensitive",
			text: "JAVASCRIPT and typescript",
			want: []string{"JavaScript", "TypeScript"},
		},
		{
			name: "no skills",
			text: "I enjoy gardening",
			want: []string{},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ExtractSkills(tc.text)
			if !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("got %v, want %v", got, tc.want)
			}
		})
	}
}

func TestExtractExperience(t *testing.T) {
	got := ExtractExperience("5 years of work")
	if got != "5 years of professional experience" {
		t.Fatalf("got %q", got)
	}

	if got := ExtractExperience("3 yrs backend"); got != "3 years of professional experience" {
		t.Fatalf("got %q", got)
	}

	// Only the first mention counts.
	if got := ExtractExperience("2 years here, 10 years there"); got != "2 years of professional experience" {
		t.Fatalf("got %q", got)
	}

	if got := ExtractExperience("no mention"); got != experienceNotSpecified {
		t.Fatalf("got %q", got)
	}
}

func TestExtractEducation(t *testing.T) {
	// Priority order, not textual order: Bachelor wins over University.
	if got := ExtractEducation("University studies towards a Bachelor"); got != "Bachelor level education identified" {
		t.Fatalf("got %q", got)
	}
	if got := ExtractEducation("phd in mathematics"); got != "PhD level education identified" {
		t.Fatalf("got %q", got)
	}
	if got := ExtractEducation("self taught"); got != educationNotSpecified {
		t.Fatalf("got %q", got)
	}
}

func TestScoreSkillsContribution(t *testing.T) {
	// contribution = min(5n, 40), monotone non-decreasing in skill count.
	prev := 0
	for n := 0; n <= 12; n++ {
		skills := SkillVocabulary[:minInt(n, len(SkillVocabulary))]
		got := Score(skills, experienceNotSpecified, educationNotSpecified)
		want := 50 + minInt(5*len(skills), 40)
		if got != want {
			t.Fatalf("n=%d: got %d, want %d", n, got, want)
		}
		if got < prev {
			t.Fatalf("n=%d: score decreased from %d to %d", n, prev, got)
		}
		prev = got
	}
}

func TestScoreExperienceContribution(t *testing.T) {
	cases := []struct {
		years int
		want  int
	}{
		{0, 50}, {1, 55}, {5, 75}, {6, 80}, {7, 80}, {100, 80},
	}
	for _, tc := range cases {
		exp := ExtractExperience(strconv.Itoa(tc.years) + " years of backend work")
		if got := Score(nil, exp, educationNotSpecified); got != tc.want {
			t.Fatalf("years=%d: got %d, want %d", tc.years, got, tc.want)
		}
	}
}

func TestScoreEducationContribution(t *testing.T) {
	cases := []struct {
		text string
		want int
	}{
		{"Master level education identified", 70},
		{"PhD level education identified", 70},
		{"Bachelor level education identified", 65},
		{"Degree level education identified", 60},
		{"University level education identified", 50},
		{educationNotSpecified, 50},
	}
	for _, tc := range cases {
		if got := Score(nil, experienceNotSpecified, tc.text); got != tc.want {
			t.Fatalf("%q: got %d, want %d", tc.text, got, tc.want)
		}
	}
}

func TestScoreCapsAtHundred(t *testing.T) {
	skills := SkillVocabulary[:8]
	exp := "6 years of professional experience"
	edu := "Master level education identified"
	if got := Score(skills, exp, edu); got != 100 {
		t.Fatalf("got %d, want 100", got)
	}

	// Even with everything maxed out the score never leaves [50, 100].
	if got := Score(SkillVocabulary, "99 years of professional experience", edu); got != 100 {
		t.Fatalf("got %d, want 100", got)
	}
	if got := Score(nil, "", ""); got != 50 {
		t.Fatalf("got %d, want 50", got)
	}
}

func TestRecommendationBands(t *testing.T) {
	top := Recommendation(80)
	mid := Recommendation(79)
	low := Recommendation(40)

	if top == mid {
		t.Fatalf("boundary at 80 must be inclusive")
	}
	if !strings.Contains(top, "Highly recommended") {
		t.Fatalf("got %q", top)
	}
	if !strings.Contains(mid, "Good candidate") {
		t.Fatalf("got %q", mid)
	}
	if !strings.Contains(low, "junior positions") {
		t.Fatalf("got %q", low)
	}

	if Recommendation(60) != Recommendation(79) {
		t.Fatalf("60 and 79 must share a band")
	}
	if Recommendation(59) != low {
		t.Fatalf("59 must be in the low band")
	}
}

func TestStrengths(t *testing.T) {
	got := Strengths([]string{"React", "Node.js", "SQL", "HTML", "CSS", "Git"}, "4 years of professional experience")
	want := []string{
		"Strong technical skill set",
		"Modern frontend framework expertise",
		"Backend development capabilities",
		"Relevant professional experience",
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}

	if got := Strengths(nil, experienceNotSpecified); !reflect.DeepEqual(got, []string{"Basic technical foundation"}) {
		t.Fatalf("got %v", got)
	}
}

func TestWeaknesses(t *testing.T) {
	got := Weaknesses([]string{"HTML", "CSS"}, experienceNotSpecified)
	want := []string{
		"Limited technical skill diversity",
		"Limited cloud/DevOps experience",
		"Limited professional experience",
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}

	// "1 year" counts as limited even though "years" is absent from it.
	got = Weaknesses([]string{"AWS", "Docker", "SQL"}, "1 year of professional experience")
	if !reflect.DeepEqual(got, []string{"Limited professional experience"}) {
		t.Fatalf("got %v", got)
	}

	got = Weaknesses([]string{"AWS", "Docker", "SQL"}, "8 years of professional experience")
	if !reflect.DeepEqual(got, []string{"Areas for growth in emerging technologies"}) {
		t.Fatalf("got %v", got)
	}
}

func TestAnalyze(t *testing.T) {
	text := "Senior engineer, 6 years with React, Node.js, Python, AWS, Docker, SQL, Git, HTML. Master of Science."
	a := Analyze(text)

	if a.AIScore < 50 || a.AIScore > 100 {
		t.Fatalf("score out of range: %d", a.AIScore)
	}
	if a.AIScore != 100 {
		t.Fatalf("got %d, want 100", a.AIScore)
	}
	if len(a.Skills) < 8 {
		t.Fatalf("expected at least 8 skills, got %v", a.Skills)
	}
	if a.Experience != "6 years of professional experience" {
		t.Fatalf("got %q", a.Experience)
	}
	if a.Education != "Master level education identified" {
		t.Fatalf("got %q", a.Education)
	}
	if !strings.Contains(a.Recommendation, "Highly recommended") {
		t.Fatalf("got %q", a.Recommendation)
	}
}
