package schedule

import (
	"strings"
	"time"
	"unicode"
)

var dayTokens = []struct {
	token string
	day   time.Weekday
}{
	{"sun", time.Sunday},
	{"mon", time.Monday},
	{"tue", time.Tuesday},
	{"wed", time.Wednesday},
	{"thu", time.Thursday},
	{"thur", time.Thursday},
	{"fri", time.Friday},
	{"sat", time.Saturday},
}

// DayRestrictionConflict reports whether the free-text prefix of a
// schedule line names specific weekdays that exclude today. Only the
// substring before the first digit is examined; a prefix shorter than
// three characters is assumed to carry no restriction, which avoids
// false positives on short leading tokens.
//
// Range phrasing is recognized for the two shapes the dataset actually
// uses, "Mon to Fri" and "Mon-Sat"; anything else falls back to the
// explicit set of day names found in the prefix. This is best-effort
// pattern matching over informal English, not a grammar.
func DayRestrictionConflict(text string, today time.Weekday) bool {
	i := strings.IndexFunc(text, unicode.IsDigit)
	if i < 0 {
		return false
	}
	prefix := strings.ToLower(text[:i])
	if len(strings.TrimSpace(prefix)) < 3 {
		return false
	}

	found := make(map[time.Weekday]bool)
	for _, dt := range dayTokens {
		if strings.Contains(prefix, dt.token) {
			found[dt.day] = true
		}
	}
	if len(found) == 0 {
		return false
	}

	if strings.Contains(prefix, " to ") || strings.Contains(prefix, "-") {
		if found[time.Monday] && found[time.Friday] && today >= time.Monday && today <= time.Friday {
			return false
		}
		if found[time.Monday] && found[time.Saturday] && today >= time.Monday && today <= time.Saturday {
			return false
		}
	}
	return !found[today]
}
