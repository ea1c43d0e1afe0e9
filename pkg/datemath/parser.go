package datemath

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Parser resolves natural-language date phrases to absolute time.Time values.
type Parser struct {
	location *time.Location
}

// NewParser creates a new date parser for the given IANA timezone string.
// e.g. "Asia/Ho_Chi_Minh"
func NewParser(timezone string) (*Parser, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return &Parser{location: loc}, nil
}

var (
	timeOfDayRe = regexp.MustCompile(`(?:^|\s)(?:at\s+)?(\d{1,2})(?::(\d{2}))?\s*(am|pm)$`)
	noonRe      = regexp.MustCompile(`(?:^|\s)(?:at\s+)?(noon|midnight)$`)
	clockRe     = regexp.MustCompile(`(?:^|\s)at\s+(\d{1,2}):(\d{2})$`)
	inDurRe     = regexp.MustCompile(`^in (\d+) (day|days|week|weeks|month|months)$`)
	monthDayRe  = regexp.MustCompile(`^(january|february|march|april|may|june|july|august|september|october|november|december|jan|feb|mar|apr|jun|jul|aug|sep|sept|oct|nov|dec)\.?\s+(\d{1,2})(?:st|nd|rd|th)?(?:\s+(\d{4}))?$`)
	slashDateRe = regexp.MustCompile(`^(\d{1,2})/(\d{1,2})(?:/(\d{4}))?$`)
	isoDateRe   = regexp.MustCompile(`^(\d{4})-(\d{2})-(\d{2})$`)
)

var weekdays = map[string]time.Weekday{
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
	"sunday":    time.Sunday,
}

var months = map[string]time.Month{
	"january": time.January, "jan": time.January,
	"february": time.February, "feb": time.February,
	"march": time.March, "mar": time.March,
	"april": time.April, "apr": time.April,
	"may":  time.May,
	"june": time.June, "jun": time.June,
	"july": time.July, "jul": time.July,
	"august": time.August, "aug": time.August,
	"september": time.September, "sep": time.September, "sept": time.September,
	"october": time.October, "oct": time.October,
	"november": time.November, "nov": time.November,
	"december": time.December, "dec": time.December,
}

// Resolve converts a natural-language phrase to an absolute instant relative
// to baseTime. The second return is false when the phrase does not name a
// date; Resolve never fails on garbage input, it just reports no match.
//
// Recognized forms: today/tonight, tomorrow, yesterday, "in N days/weeks/
// months", "(next) <weekday>", "end of (the) week/month", explicit dates
// (2025-09-01, Sep 1, 9/1/2025) — each optionally followed by a time of day
// ("at 5pm", "at 17:00", "5pm", "noon").
func (p *Parser) Resolve(phrase string, baseTime time.Time) (time.Time, bool) {
	phrase = strings.ToLower(strings.TrimSpace(phrase))
	phrase = strings.Join(strings.Fields(phrase), " ")
	if phrase == "" {
		return time.Time{}, false
	}

	datePart, clock, hasClock := p.splitTimeOfDay(phrase)

	day, ok := p.resolveDay(datePart, baseTime)
	if !ok {
		// A bare time of day ("5pm", "at 17:00") means today.
		if hasClock && datePart == "" {
			day = p.startOfDay(baseTime)
		} else {
			return time.Time{}, false
		}
	}

	if hasClock {
		day = day.Add(clock)
	}
	return day, true
}

// splitTimeOfDay strips a trailing time-of-day expression from the phrase
// and returns the rest, the offset from midnight, and whether one was found.
func (p *Parser) splitTimeOfDay(phrase string) (string, time.Duration, bool) {
	if m := noonRe.FindStringSubmatchIndex(phrase); m != nil {
		rest := strings.TrimSpace(phrase[:m[0]])
		if phrase[m[2]:m[3]] == "noon" {
			return rest, 12 * time.Hour, true
		}
		return rest, 0, true
	}

	if m := timeOfDayRe.FindStringSubmatchIndex(phrase); m != nil {
		hour, _ := strconv.Atoi(phrase[m[2]:m[3]])
		minute := 0
		if m[4] >= 0 {
			minute, _ = strconv.Atoi(phrase[m[4]:m[5]])
		}
		meridiem := phrase[m[6]:m[7]]
		if meridiem == "pm" && hour < 12 {
			hour += 12
		}
		if meridiem == "am" && hour == 12 {
			hour = 0
		}
		if hour > 23 || minute > 59 {
			return phrase, 0, false
		}
		rest := strings.TrimSpace(phrase[:m[0]])
		return rest, time.Duration(hour)*time.Hour + time.Duration(minute)*time.Minute, true
	}

	if m := clockRe.FindStringSubmatchIndex(phrase); m != nil {
		hour, _ := strconv.Atoi(phrase[m[2]:m[3]])
		minute, _ := strconv.Atoi(phrase[m[4]:m[5]])
		if hour > 23 || minute > 59 {
			return phrase, 0, false
		}
		rest := strings.TrimSpace(phrase[:m[0]])
		return rest, time.Duration(hour)*time.Hour + time.Duration(minute)*time.Minute, true
	}

	return phrase, 0, false
}

// resolveDay applies the ordered day rules to a phrase with any time of day
// already stripped. Returns start of day in the parser's timezone.
func (p *Parser) resolveDay(phrase string, baseTime time.Time) (time.Time, bool) {
	switch phrase {
	case "today", "tonight":
		return p.startOfDay(baseTime), true
	case "tomorrow":
		return p.startOfDay(baseTime.AddDate(0, 0, 1)), true
	case "yesterday":
		return p.startOfDay(baseTime.AddDate(0, 0, -1)), true
	case "end of week", "end of the week":
		return p.endOfWeek(baseTime), true
	case "end of month", "end of the month":
		t := baseTime.In(p.location)
		firstNext := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, p.location).AddDate(0, 1, 0)
		return firstNext.AddDate(0, 0, -1), true
	}

	if m := inDurRe.FindStringSubmatch(phrase); m != nil {
		amount, _ := strconv.Atoi(m[1])
		switch {
		case strings.HasPrefix(m[2], "day"):
			return p.startOfDay(baseTime.AddDate(0, 0, amount)), true
		case strings.HasPrefix(m[2], "week"):
			return p.startOfDay(baseTime.AddDate(0, 0, amount*7)), true
		default:
			return p.startOfDay(baseTime.AddDate(0, amount, 0)), true
		}
	}

	if day, ok := p.resolveWeekday(phrase, baseTime); ok {
		return day, true
	}

	return p.resolveExplicit(phrase, baseTime)
}

// resolveWeekday handles "next monday", "this friday", and bare weekday
// names. A bare or "this" weekday is the next future occurrence; "next"
// always advances at least one day.
func (p *Parser) resolveWeekday(phrase string, baseTime time.Time) (time.Time, bool) {
	name := phrase
	name = strings.TrimPrefix(name, "next ")
	name = strings.TrimPrefix(name, "this ")

	target, ok := weekdays[name]
	if !ok {
		return time.Time{}, false
	}

	daysUntil := int(target - baseTime.In(p.location).Weekday())
	if daysUntil <= 0 {
		daysUntil += 7
	}
	return p.startOfDay(baseTime.AddDate(0, 0, daysUntil)), true
}

// resolveExplicit handles literal dates: "2025-09-01", "sep 1", "sep 1 2025",
// "9/1", "9/1/2025". Year-less dates roll forward to the next occurrence.
func (p *Parser) resolveExplicit(phrase string, baseTime time.Time) (time.Time, bool) {
	phrase = strings.ReplaceAll(phrase, ",", "")

	if m := isoDateRe.FindStringSubmatch(phrase); m != nil {
		year, _ := strconv.Atoi(m[1])
		month, _ := strconv.Atoi(m[2])
		day, _ := strconv.Atoi(m[3])
		return p.makeDate(year, time.Month(month), day)
	}

	if m := monthDayRe.FindStringSubmatch(phrase); m != nil {
		month := months[m[1]]
		day, _ := strconv.Atoi(m[2])
		if m[3] != "" {
			year, _ := strconv.Atoi(m[3])
			return p.makeDate(year, month, day)
		}
		return p.makeUpcomingDate(month, day, baseTime)
	}

	if m := slashDateRe.FindStringSubmatch(phrase); m != nil {
		month, _ := strconv.Atoi(m[1])
		day, _ := strconv.Atoi(m[2])
		if month < 1 || month > 12 {
			return time.Time{}, false
		}
		if m[3] != "" {
			year, _ := strconv.Atoi(m[3])
			return p.makeDate(year, time.Month(month), day)
		}
		return p.makeUpcomingDate(time.Month(month), day, baseTime)
	}

	return time.Time{}, false
}

func (p *Parser) makeDate(year int, month time.Month, day int) (time.Time, bool) {
	t := time.Date(year, month, day, 0, 0, 0, 0, p.location)
	// time.Date normalizes overflow (Feb 30 → Mar 2); reject those.
	if t.Month() != month || t.Day() != day {
		return time.Time{}, false
	}
	return t, true
}

// makeUpcomingDate resolves a month/day without a year to its next
// occurrence at or after the base date.
func (p *Parser) makeUpcomingDate(month time.Month, day int, baseTime time.Time) (time.Time, bool) {
	t, ok := p.makeDate(baseTime.In(p.location).Year(), month, day)
	if !ok {
		return time.Time{}, false
	}
	if t.Before(p.startOfDay(baseTime)) {
		return p.makeDate(t.Year()+1, month, day)
	}
	return t, true
}

// endOfWeek returns the upcoming Sunday (Monday-based weeks).
func (p *Parser) endOfWeek(baseTime time.Time) time.Time {
	t := baseTime.In(p.location)
	weekday := int(t.Weekday())
	if weekday == 0 {
		weekday = 7
	}
	return p.startOfDay(t.AddDate(0, 0, 7-weekday))
}

// startOfDay returns midnight at the start of the given day in the parser's timezone.
func (p *Parser) startOfDay(t time.Time) time.Time {
	t = t.In(p.location)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, p.location)
}

// EndOfDay returns 23:59:59 at the end of the given start-of-day time.
func (p *Parser) EndOfDay(startOfDay time.Time) time.Time {
	return startOfDay.Add(23*time.Hour + 59*time.Minute + 59*time.Second)
}
