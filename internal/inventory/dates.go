package inventory

import (
	"strconv"
	"strings"
	"time"
)

const sheetDateLayout = "02/01/2006"

// ParseSheetDate reads a DD/MM/YYYY cell. Single-digit day and month are
// accepted; anything unparsable yields nil.
func ParseSheetDate(s string) *time.Time {
	parts := strings.Split(strings.TrimSpace(s), "/")
	if len(parts) != 3 {
		return nil
	}
	day, err := strconv.Atoi(parts[0])
	if err != nil {
		return nil
	}
	month, err := strconv.Atoi(parts[1])
	if err != nil {
		return nil
	}
	year, err := strconv.Atoi(parts[2])
	if err != nil {
		return nil
	}
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	// Reject rollovers such as 31/02.
	if t.Day() != day || int(t.Month()) != month || t.Year() != year {
		return nil
	}
	return &t
}

// FormatSheetDate renders DD/MM/YYYY, or "" for nil.
func FormatSheetDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(sheetDateLayout)
}
