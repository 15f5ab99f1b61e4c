package schedule

import (
	"regexp"
	"strconv"
	"strings"
)

// timeRe matches one clock time: an hour, an optional ":MM" minute,
// and an optional meridiem marker in its common punctuation variants.
var timeRe = regexp.MustCompile(`(?i)(\d{1,2})(?::(\d{2}))? ?(am|pm|noon|a\.m\.|p\.m\.)?`)

// ParseTimes extracts every clock time embedded in text, in order of
// appearance, as minutes since midnight. Malformed fragments are
// skipped rather than reported; a string with no recognizable times
// yields nil.
//
// When a meridiem is given it is applied normally ("12am" is midnight,
// "noon" forces 12). When it is missing, a bare hour between 1 and 6
// is treated as PM: schedule strings like "7:00, 8:00, 6:00pm" list
// morning masses as bare numbers and evening ones explicitly, and the
// small hours almost never mean the middle of the night. Bare hours of
// 7 or above are taken literally. This is a deliberate guess and can
// misread entries such as a bare "11:00" meaning 11pm.
func ParseTimes(text string) []int {
	var out []int
	for _, m := range timeRe.FindAllStringSubmatch(text, -1) {
		hour, err := strconv.Atoi(m[1])
		if err != nil || hour > 23 {
			continue
		}
		minute := 0
		if m[2] != "" {
			minute, err = strconv.Atoi(m[2])
			if err != nil || minute > 59 {
				continue
			}
		}
		switch strings.ReplaceAll(strings.ToLower(m[3]), ".", "") {
		case "pm":
			if hour < 12 {
				hour += 12
			}
		case "am":
			if hour == 12 {
				hour = 0
			}
		case "noon":
			hour = 12
		default:
			if hour >= 1 && hour <= 6 {
				hour += 12
			}
		}
		if hour > 23 {
			continue
		}
		out = append(out, hour*60+minute)
	}
	return out
}
