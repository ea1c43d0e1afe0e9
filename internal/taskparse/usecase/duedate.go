package usecase

import (
	"regexp"
	"time"
)

// dueDatePatterns are ordered lead-in patterns. Each captures the phrase
// following the lead-in up to a time-of-day marker or end of string; the
// first pattern whose captured phrase resolves wins.
var dueDatePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(?:due|by|on)\s+(.*?)(?:\s+at\s+|$)`),
	regexp.MustCompile(`(?i)for\s+(.*?)(?:\s+at\s+|$)`),
}

// extractDueDate runs the lead-in patterns in order, then falls back to
// resolving the entire input as a date phrase. Returns nil when nothing
// resolves; due date extraction never fails the pipeline.
func (uc *implUseCase) extractDueDate(input string, base time.Time) *time.Time {
	for _, re := range dueDatePatterns {
		m := re.FindStringSubmatch(input)
		if m == nil {
			continue
		}
		if t, ok := uc.resolver.Resolve(m[1], base); ok {
			return &t
		}
	}

	if t, ok := uc.resolver.Resolve(input, base); ok {
		return &t
	}
	return nil
}
