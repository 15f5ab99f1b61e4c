package keys

import (
	"fmt"
	"masstimes/internal/models"
	"strings"
)

// sanitizeKey replaces spaces with hyphens and lowercases the string.
func sanitizeKey(s string) string {
	return strings.ToLower(strings.ReplaceAll(s, " ", "-"))
}

// ParishSchedule returns the canonical object key for a parish's
// schedule data.
func ParishSchedule(p models.ParishSchedule) string {
	return fmt.Sprintf("schedules/%s.json", sanitizeKey(p.Parish))
}
