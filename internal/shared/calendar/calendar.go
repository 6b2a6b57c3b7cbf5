// Package calendar holds the date helpers shared by the directory and the
// ledger. Dates are plain calendar days in UTC with no time component.
package calendar

import (
	"net/http"
	"strings"
	"time"

	"go-leave/internal/shared/apperror"
)

const DateLayout = "2006-01-02"

var ErrInvalidDateFormat = apperror.New(
	apperror.CodeInvalidInput,
	"Invalid date format. Please use YYYY-MM-DD.",
	http.StatusBadRequest,
)

// Parse reads a YYYY-MM-DD string. Surrounding whitespace is ignored.
func Parse(v string) (time.Time, error) {
	t, err := time.Parse(DateLayout, strings.TrimSpace(v))
	if err != nil {
		return time.Time{}, ErrInvalidDateFormat
	}
	return t, nil
}

func Format(t time.Time) string {
	return t.Format(DateLayout)
}

// DaysInclusive counts the days of [start, end], so equal dates give 1.
func DaysInclusive(start, end time.Time) int {
	return int(end.Sub(start).Hours()/24) + 1
}

// Overlaps reports whether the inclusive ranges [aStart, aEnd] and
// [bStart, bEnd] share at least one day.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return !aStart.After(bEnd) && !aEnd.Before(bStart)
}
