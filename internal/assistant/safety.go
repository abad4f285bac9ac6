package assistant

import "strings"

// emergencyKeywords are symptoms that should never wait for a chatbot
// answer. Matching is substring based so "poisoned" and "poisoning"
// both trip on "poison".
var emergencyKeywords = []string{
	"bleeding",
	"unconscious",
	"choking",
	"seizure",
	"poison",
	"toxic",
	"can't breathe",
	"cannot breathe",
	"broken bone",
	"severe pain",
	"collapse",
	"emergency",
	"immediately",
	"fever",
}

const emergencyAdvice = "This sounds like it could be a medical emergency. " +
	"Please do not wait: book an emergency video consult right now or contact " +
	"your nearest veterinary clinic. I can help with general care questions, " +
	"but urgent symptoms need a professional."

// SafetyResponse returns a canned escalation message when the input
// mentions an emergency symptom, or "" when it is safe to answer.
func SafetyResponse(input string) string {
	lowered := strings.ToLower(input)
	for _, kw := range emergencyKeywords {
		if strings.Contains(lowered, kw) {
			return emergencyAdvice
		}
	}
	return ""
}
