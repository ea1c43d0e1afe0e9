package usecase

import (
	"regexp"
	"strings"

	"task-planner/internal/model"
)

// Scrub patterns remove fragments already consumed by other extractors.
var (
	dueDateScrubRes = []*regexp.Regexp{
		regexp.MustCompile(`(?i)(?:due|by|on)\s+.*?(?:\s+at\s+|\s+\d{1,2}:\d{2}|\s+\d{1,2}\s*(?:am|pm)|$)`),
		regexp.MustCompile(`(?i)for\s+.*?(?:\s+at\s+|\s+\d{1,2}:\d{2}|\s+\d{1,2}\s*(?:am|pm)|$)`),
	}
	priorityScrubRes = []*regexp.Regexp{
		regexp.MustCompile(`(?i)(?:high|urgent|critical|important|low|minor|medium)\s+priority`),
		regexp.MustCompile(`(?i)priority\s*(?::|is|=)?\s*(?:high|urgent|critical|important|low|minor|medium)`),
		regexp.MustCompile(`(?i)\b(?:urgent|asap|immediately|right away|critical|when you have time|no rush|can wait|eventually)\b`),
	}
)

// deriveDescription is the last pipeline step: the raw input minus the
// extracted title, due-date fragments (only when a due date was found) and
// priority keywords, with whitespace collapsed. An empty result is an
// explicit empty string.
func deriveDescription(input string, draft model.TaskDraft) string {
	description := input

	if strings.HasPrefix(description, draft.Title) {
		description = strings.TrimSpace(description[len(draft.Title):])
	}

	if draft.DueDate != nil {
		for _, re := range dueDateScrubRes {
			description = re.ReplaceAllString(description, " ")
		}
	}

	for _, re := range priorityScrubRes {
		description = re.ReplaceAllString(description, " ")
	}

	return strings.Join(strings.Fields(description), " ")
}
