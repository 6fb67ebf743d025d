package hiring

import "testing"

func TestCandidateStatusValid(t *testing.T) {
	valid := []CandidateStatus{
		StatusApplied, StatusScreening, StatusInterview,
		StatusOffered, StatusHired, StatusRejected,
	}
	for _, s := range valid {
		if !s.Valid() {
			t.Fatalf("%q should be valid", s)
		}
	}

	for _, s := range []CandidateStatus{"", "archived", "Applied"} {
		if s.Valid() {
			t.Fatalf("%q should be invalid", s)
		}
	}
}

func TestInterviewTerminal(t *testing.T) {
	cases := []struct {
		status InterviewStatus
		want   bool
	}{
		{InterviewScheduled, false},
		{InterviewCompleted, true},
		{InterviewCancelled, true},
	}
	for _, tc := range cases {
		iv := Interview{Status: tc.status}
		if iv.Terminal() != tc.want {
			t.Fatalf("Terminal(%q) = %v, want %v", tc.status, iv.Terminal(), tc.want)
		}
	}
}
