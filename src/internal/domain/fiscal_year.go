package domain

import (
	"time"
)

type FiscalYearStatus string

const (
	FiscalYearOpen   FiscalYearStatus = "OPEN"
	FiscalYearClosed FiscalYearStatus = "CLOSED"
)

type FiscalYear struct {
	ID              string
	Year            string
	StartDate       time.Time
	EndDate         time.Time
	Status          FiscalYearStatus
	ClosedBy        string
	ClosedAt        *time.Time
	OpeningBalances []AccountBalance
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// Covers reports whether the date falls inside the year, inclusive.
func (y FiscalYear) Covers(date time.Time) bool {
	return !date.Before(y.StartDate) && !date.After(y.EndDate)
}

// NextYearBounds derives the immediately following year's window, starting
// the day after EndDate and spanning the same length as a calendar year.
func (y FiscalYear) NextYearBounds() (start, end time.Time) {
	start = y.EndDate.AddDate(0, 0, 1)
	end = start.AddDate(1, 0, -1)
	return start, end
}
