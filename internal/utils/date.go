package utils

import (
	"fmt"
	"strings"
	"time"

	"github.com/hance08/cashflow/internal/constants"
)

// timestampLayouts covers what the ledger has written over time: bare dates,
// SQLite datetime('now'), ISO timestamps with or without offset.
var timestampLayouts = []string{
	constants.DateFormat,
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02 15:04:05",
}

// ParseTimestamp parses any of the layouts the ledger stores. Values without
// an offset are taken as UTC.
func ParseTimestamp(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized timestamp %q", s)
}

// ToDate truncates t to its calendar date at UTC midnight.
func ToDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func FormatDate(t time.Time) string {
	return t.Format(constants.DateFormat)
}
