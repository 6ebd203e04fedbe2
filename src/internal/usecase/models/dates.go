package models

import (
	"fmt"
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

func ParseDate(raw string) (time.Time, error) {
	parsed, err := time.Parse(dateLayout, strings.TrimSpace(raw))
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD", raw)
	}
	return parsed, nil
}

// ParseOptionalDate returns nil for an empty input.
func ParseOptionalDate(raw string) (*time.Time, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, nil
	}
	parsed, err := ParseDate(raw)
	if err != nil {
		return nil, err
	}
	return &parsed, nil
}

func FormatDate(t time.Time) string {
	return t.Format(dateLayout)
}

func isValidDate(raw string) bool {
	_, err := ParseDate(raw)
	return err == nil
}
