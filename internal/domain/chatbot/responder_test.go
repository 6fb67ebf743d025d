package chatbot

import (
	"strings"
	"testing"
)

func TestRespond(t *testing.T) {
	cases := []struct {
		name    string
		message string
		want    string
	}{
		{"payroll keyword", "I want to check my payroll", Rules[2].Response},
		{"salary maps to payroll", "When is my SALARY paid?", Rules[2].Response},
		{"leave", "How do I apply for leave?", Rules[0].Response},
		{"attendance", "where are my attendance records", Rules[1].Response},
		{"performance", "performance review schedule", Rules[3].Response},
		{"policy", "remote work policy?", Rules[4].Response},
		{"default", "hello", DefaultResponse},
		{"empty", "", DefaultResponse},
		// "leave" is checked before "payroll": first rule wins.
		{"priority order", "leave and payroll", Rules[0].Response},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Respond(tc.message); got != tc.want {
				t.Fatalf("Respond(%q) = %q, want %q", tc.message, got, tc.want)
			}
		})
	}
}

func TestRespondIsCaseInsensitive(t *testing.T) {
	if got := Respond("LEAVE REQUEST"); !strings.Contains(got, "Leave Management") {
		t.Fatalf("got %q", got)
	}
}
