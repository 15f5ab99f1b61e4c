package schedule

import (
	"regexp"
	"strings"
)

var (
	saintRe = regexp.MustCompile(`\bsaint\b`)
	// Venue names arrive as arbitrary UTF-8, so typographic apostrophes
	// and dashes must strip alongside the ASCII set.
	punctRe = regexp.MustCompile(`[[:punct:]\p{P}]`)
	stopRe  = regexp.MustCompile(`\b(church|parish|chapel|mass centre|center|catholic)\b`)
	spaceRe = regexp.MustCompile(`\s+`)
)

// Normalize maps a raw venue display name to the canonical key used to
// look up schedule data: lower-cased, "saint" abbreviated to "st",
// punctuation stripped (so "St. Joseph's" becomes "st josephs"), and
// common filler words removed. The result is used as an exact-match
// key; an empty input yields an empty key, which never matches.
//
// Normalize is deterministic and idempotent.
func Normalize(raw string) string {
	s := strings.ToLower(raw)
	s = saintRe.ReplaceAllString(s, "st")
	s = punctRe.ReplaceAllString(s, "")
	s = stopRe.ReplaceAllString(s, "")
	s = spaceRe.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}
