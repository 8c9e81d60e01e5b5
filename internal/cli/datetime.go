package cli

import (
	"fmt"
	"strings"
	"time"
)

// parseDue accepts "YYYY-MM-DD" or "YYYY-MM-DDTHH:MM" in local time. A
// date-only value defaults to 09:00.
func parseDue(s string) (*time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	if t, err := time.ParseInLocation("2006-01-02T15:04", s, time.Local); err == nil {
		return &t, nil
	}
	if t, err := time.ParseInLocation("2006-01-02", s, time.Local); err == nil {
		t = t.Add(9 * time.Hour)
		return &t, nil
	}
	return nil, fmt.Errorf("invalid due date %q (want YYYY-MM-DD or YYYY-MM-DDTHH:MM)", s)
}

func fmtDue(t *time.Time) string {
	if t == nil {
		return "-"
	}
	return t.Local().Format("2006-01-02 15:04")
}
