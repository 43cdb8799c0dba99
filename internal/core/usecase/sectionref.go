package usecase

import (
	"regexp"
	"strconv"
	"strings"
)

// Matches "section 2" as well as ordinal phrasings like "2nd section".
var sectionPattern = regexp.MustCompile(`section (\d+)|(\d+)(?:st|nd|rd|th)?\s+section`)

// parseSectionRef detects a section reference in a free-form question and
// returns its 1-based number. Detection is purely lexical; whether the
// number maps to a real outline entry is the caller's concern.
func parseSectionRef(question string) (int, bool) {
	match := sectionPattern.FindStringSubmatch(strings.ToLower(question))
	if match == nil {
		return 0, false
	}
	digits := match[1]
	if digits == "" {
		digits = match[2]
	}
	number, err := strconv.Atoi(digits)
	if err != nil {
		return 0, false
	}
	return number, true
}
