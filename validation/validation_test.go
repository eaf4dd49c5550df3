package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateGoal(t *testing.T) {
	valid := []string{
		"Bicycle rental demand forecasting",
		"Analyse des ventes d'une chaîne de boulangeries",
		"A call center wants to track agent performance over time",
	}
	for _, goal := range valid {
		assert.NoError(t, ValidateGoal(goal), "goal %q", goal)
	}

	invalid := []string{
		"",
		"   ",
		"bike",
		strings.Repeat("very long goal ", 400),
		"!!!???!!!...###",
		"aaaaaaaaaaaa demand",
	}
	for _, goal := range invalid {
		assert.Error(t, ValidateGoal(goal), "goal %q", goal)
	}
}
