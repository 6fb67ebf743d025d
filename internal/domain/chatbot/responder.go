package chatbot

import "strings"

// A rule matches when any of its keywords is contained in the lower-cased
// message. Rules are evaluated in order; the first hit wins.
type Rule struct {
	Keywords []string
	Response string
}

var Rules = []Rule{
	{
		Keywords: []string{"leave"},
		Response: "To apply for leave, go to Leave Management section and submit your request with dates and reason.",
	},
	{
		Keywords: []string{"attendance"},
		Response: "You can view your attendance records in the Attendance section. Clock in/out times are tracked automatically.",
	},
	{
		Keywords: []string{"payroll", "salary"},
		Response: "Your payroll information is available in the Payroll section. You can view salary breakdown and download payslips.",
	},
	{
		Keywords: []string{"performance"},
		Response: "Performance reviews are conducted quarterly. Check the Performance section for your latest scores and feedback.",
	},
	{
		Keywords: []string{"policy"},
		Response: "Company policies are available in the HR portal. Contact HR department for specific policy questions.",
	},
}

const DefaultResponse = "I'm here to help with HR-related questions. You can ask about leave, attendance, payroll, performance, or policies."

// Respond is stateless: each message is answered independently of any
// previous turn.
func Respond(message string) string {
	lower := strings.ToLower(message)
	for _, rule := range Rules {
		for _, kw := range rule.Keywords {
			if strings.Contains(lower, kw) {
				return rule.Response
			}
		}
	}
	return DefaultResponse
}
