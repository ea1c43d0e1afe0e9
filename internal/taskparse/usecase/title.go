package usecase

import "strings"

// titleMarkers are the lead-in phrases that end a title. Matched
// case-insensitively; the earliest occurrence in the input wins.
var titleMarkers = []string{" by ", " on ", " at ", " due ", " for ", " with priority "}

// extractTitle returns the text preceding the earliest sentence terminator
// or marker phrase. If neither occurs, the whole input is the title.
func extractTitle(input string) string {
	lower := strings.ToLower(input)

	end := len(input)
	for _, marker := range titleMarkers {
		if pos := strings.Index(lower, marker); pos > 0 && pos < end {
			end = pos
		}
	}
	if dot := strings.IndexByte(input, '.'); dot > 0 && dot < end {
		end = dot
	}

	return strings.TrimSpace(input[:end])
}
