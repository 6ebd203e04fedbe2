package models

import (
	"errors"
	"strings"
)

type CreateFiscalYearRequest struct {
	Year      string `json:"year"`
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
}

func (r CreateFiscalYearRequest) Validate() error {
	var errs []string

	if strings.TrimSpace(r.Year) == "" {
		errs = append(errs, "year is required")
	}
	if !isValidDate(r.StartDate) {
		errs = append(errs, "startDate must be YYYY-MM-DD")
	}
	if !isValidDate(r.EndDate) {
		errs = append(errs, "endDate must be YYYY-MM-DD")
	}
	if isValidDate(r.StartDate) && isValidDate(r.EndDate) {
		start, _ := ParseDate(r.StartDate)
		end, _ := ParseDate(r.EndDate)
		if !start.Before(end) {
			errs = append(errs, "startDate must precede endDate")
		}
	}

	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}

	return nil
}

type OpeningBalanceResponse struct {
	AccountID string `json:"accountId"`
	Balance   string `json:"balance"`
}

type FiscalYearResponse struct {
	ID              string                   `json:"id"`
	Year            string                   `json:"year"`
	StartDate       string                   `json:"startDate"`
	EndDate         string                   `json:"endDate"`
	Status          string                   `json:"status"`
	ClosedBy        string                   `json:"closedBy,omitempty"`
	ClosedAt        string                   `json:"closedAt,omitempty"`
	OpeningBalances []OpeningBalanceResponse `json:"openingBalances,omitempty"`
}

type CloseFiscalYearResponse struct {
	ClosedYear FiscalYearResponse `json:"closedYear"`
	NextYear   FiscalYearResponse `json:"nextYear"`
}
