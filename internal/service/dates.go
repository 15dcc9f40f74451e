package service

import (
	"fmt"
	"time"

	"github.com/hance08/cashflow/internal/model"
	"github.com/hance08/cashflow/internal/utils"
)

// ParseBookedAt accepts a bare date or a timestamp and keeps only its
// calendar date.
func ParseBookedAt(s string) (time.Time, error) {
	t, err := utils.ParseTimestamp(s)
	if err != nil {
		return time.Time{}, &model.FormatError{Field: "booked_at", Value: s, Err: err}
	}
	return utils.ToDate(t), nil
}

// MonthWindow returns [first of month, first of next month) as dates.
// December rolls into January of the next year.
func MonthWindow(month, year int) (from, to time.Time, err error) {
	if month < 1 || month > 12 {
		return time.Time{}, time.Time{}, &model.ValidationError{Field: "month", Msg: fmt.Sprintf("month must be between 1 and 12, got %d", month)}
	}
	from = time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	if month == 12 {
		to = time.Date(year+1, time.January, 1, 0, 0, 0, 0, time.UTC)
	} else {
		to = time.Date(year, time.Month(month+1), 1, 0, 0, 0, 0, time.UTC)
	}
	return from, to, nil
}

func validateDateBound(field, s string) (string, error) {
	if s == "" {
		return "", nil
	}
	t, err := utils.ParseTimestamp(s)
	if err != nil {
		return "", &model.FormatError{Field: field, Value: s, Err: err}
	}
	return utils.FormatDate(utils.ToDate(t)), nil
}
