// Package validation sanity-checks scenario descriptions before they cost a
// generation call.
package validation

import (
	"errors"
	"strings"
	"unicode"
)

const (
	minGoalLength = 8
	maxGoalLength = 4000
)

// ValidateGoal rejects goals that are empty, absurdly long or obvious
// keyboard mashing. The check is deliberately lenient: a slightly odd goal is
// cheaper to plan than a valid one is annoying to have rejected.
func ValidateGoal(goal string) error {
	trimmed := strings.TrimSpace(goal)
	if len(trimmed) < minGoalLength {
		return errors.New("please describe the business scenario in a few words")
	}
	if len(trimmed) > maxGoalLength {
		return errors.New("scenario description is too long")
	}

	letters := 0
	nonSpace := 0
	for _, r := range trimmed {
		if unicode.IsLetter(r) {
			letters++
		}
		if !unicode.IsSpace(r) {
			nonSpace++
		}
	}
	if nonSpace == 0 || float64(letters)/float64(nonSpace) < 0.3 {
		return errors.New("scenario description does not look like text")
	}

	if longestRun(trimmed) >= 6 {
		return errors.New("scenario description looks like gibberish")
	}
	return nil
}

func longestRun(s string) int {
	longest, run := 0, 0
	var prev rune
	for i, r := range s {
		if i > 0 && r == prev {
			run++
		} else {
			run = 1
		}
		if run > longest {
			longest = run
		}
		prev = r
	}
	return longest
}
