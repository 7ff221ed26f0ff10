package payments

import (
	"fmt"
	"time"

	dErrors "paylens/pkg/domain-errors"
)

// YearMonth identifies a calendar month. It is the unit all monthly reports
// are keyed by. The zero value is invalid.
type YearMonth struct {
	Year  int
	Month time.Month
}

// YearMonthOf returns the calendar month of t, read in t's own location.
func YearMonthOf(t time.Time) YearMonth {
	return YearMonth{Year: t.Year(), Month: t.Month()}
}

// ParseYearMonth parses the wire form "YYYY-MM".
func ParseYearMonth(s string) (YearMonth, error) {
	t, err := time.Parse("2006-01", s)
	if err != nil {
		return YearMonth{}, dErrors.New(dErrors.CodeInvalidInput, fmt.Sprintf("invalid month %q, want YYYY-MM", s))
	}
	return YearMonth{Year: t.Year(), Month: t.Month()}, nil
}

// Contains reports whether t falls in this month. Year and month must both
// match; t is read in its own location.
func (m YearMonth) Contains(t time.Time) bool {
	return t.Year() == m.Year && t.Month() == m.Month
}

// String renders the wire form "YYYY-MM".
func (m YearMonth) String() string {
	return fmt.Sprintf("%04d-%02d", m.Year, int(m.Month))
}

// IsZero reports whether m is the invalid zero value.
func (m YearMonth) IsZero() bool {
	return m.Year == 0 && m.Month == 0
}
