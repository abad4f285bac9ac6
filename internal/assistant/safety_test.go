package assistant

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSafetyResponseTripsOnEmergencies(t *testing.T) {
	inputs := []string{
		"My dog is BLEEDING from his paw",
		"she swallowed something toxic",
		"I think my cat was poisoned",
		"he collapsed and can't breathe",
		"puppy has a high fever since morning",
	}

	for _, in := range inputs {
		assert.NotEmpty(t, SafetyResponse(in), "expected escalation for %q", in)
	}
}

func TestSafetyResponsePassesRoutineQuestions(t *testing.T) {
	inputs := []string{
		"How often should I groom a golden retriever?",
		"What food is best for a senior cat?",
		"My puppy keeps chewing the sofa, any tips?",
	}

	for _, in := range inputs {
		assert.Empty(t, SafetyResponse(in), "no escalation expected for %q", in)
	}
}
