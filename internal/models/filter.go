package models

import "strings"

// NameFilter excludes venues whose names mark them as another
// denomination despite the POI tagging saying otherwise. It is a plain
// blocklist of case-insensitive substrings, applied to a batch before
// decoration so downstream stages only see venues worth decorating.
type NameFilter struct {
	blocklisted []string
}

func NewNameFilter(blocklisted []string) *NameFilter {
	lowered := make([]string, len(blocklisted))
	for i, b := range blocklisted {
		lowered[i] = strings.ToLower(b)
	}
	return &NameFilter{blocklisted: lowered}
}

// Include reports whether a venue with the given name passes the
// filter.
func (f *NameFilter) Include(name string) bool {
	lower := strings.ToLower(name)
	for _, bl := range f.blocklisted {
		if strings.Contains(lower, bl) {
			return false
		}
	}
	return true
}

// Apply returns the venues whose names pass the filter, preserving
// order. The input slice is not modified.
func (f *NameFilter) Apply(venues []Venue) []Venue {
	var out []Venue
	for _, v := range venues {
		if f.Include(v.Name) {
			out = append(out, v)
		}
	}
	return out
}
