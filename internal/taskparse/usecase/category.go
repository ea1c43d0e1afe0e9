package usecase

import (
	"regexp"
	"strings"

	"task-planner/internal/model"
)

// categoryRule maps a domain keyword set to a category label. The table is
// checked in order; the first matching rule is mapped to an existing
// category whose name equals or contains the label.
type categoryRule struct {
	re    *regexp.Regexp
	label string
}

var categoryRules = []categoryRule{
	{regexp.MustCompile(`(?i)\b(?:meet|meeting|conference|call|discussion)\b`), "Meetings"},
	{regexp.MustCompile(`(?i)\b(?:dev|develop|code|program|implement|build)\b`), "Development"},
	{regexp.MustCompile(`(?i)\b(?:design|mockup|prototype|wireframe|UI|UX)\b`), "Design"},
	{regexp.MustCompile(`(?i)\b(?:test|QA|verify|validate|bug|fix)\b`), "Testing"},
	{regexp.MustCompile(`(?i)\b(?:doc|documentation|write|report)\b`), "Documentation"},
}

// extractCategory first looks for a category name mentioned verbatim
// (first match in enumeration order wins), then falls back to the keyword
// table. Returns nil when nothing matches.
func extractCategory(input string, categories []model.Category) *string {
	for _, c := range categories {
		re, err := regexp.Compile(`(?i)\b` + regexp.QuoteMeta(c.Name) + `\b`)
		if err != nil {
			continue
		}
		if re.MatchString(input) {
			id := c.ID
			return &id
		}
	}

	for _, rule := range categoryRules {
		if !rule.re.MatchString(input) {
			continue
		}
		for _, c := range categories {
			if containsFold(c.Name, rule.label) {
				id := c.ID
				return &id
			}
		}
	}

	return nil
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
