package usecase

import (
	"regexp"

	"task-planner/internal/model"
)

// Priority rules, checked top to bottom; the first hit wins.
// Explicit "<level> priority" phrasing outranks standalone urgency words.
var (
	explicitHighRes = []*regexp.Regexp{
		regexp.MustCompile(`(?i)(?:high|urgent|critical|important)\s+priority`),
		regexp.MustCompile(`(?i)priority\s*(?::|is|=)?\s*(?:high|urgent|critical|important)`),
	}
	explicitLowRes = []*regexp.Regexp{
		regexp.MustCompile(`(?i)(?:low|minor)\s+priority`),
		regexp.MustCompile(`(?i)priority\s*(?::|is|=)?\s*(?:low|minor)`),
	}
	urgencyWordsRe  = regexp.MustCompile(`(?i)\b(?:urgent|asap|immediately|right away|critical)\b`)
	deferralWordsRe = regexp.MustCompile(`(?i)\b(?:when you have time|no rush|can wait|eventually)\b`)
)

func extractPriority(input string) model.Priority {
	for _, re := range explicitHighRes {
		if re.MatchString(input) {
			return model.PriorityHigh
		}
	}
	for _, re := range explicitLowRes {
		if re.MatchString(input) {
			return model.PriorityLow
		}
	}

	if urgencyWordsRe.MatchString(input) {
		return model.PriorityHigh
	}
	if deferralWordsRe.MatchString(input) {
		return model.PriorityLow
	}

	return model.PriorityMedium
}
