package models

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

type JournalLineRequest struct {
	AccountID    string          `json:"accountId"`
	Debit        decimal.Decimal `json:"debit"`
	Credit       decimal.Decimal `json:"credit"`
	Description  string          `json:"description,omitempty"`
	CostCenterID string          `json:"costCenterId,omitempty"`
	ProjectID    string          `json:"projectId,omitempty"`
	CostHead     string          `json:"costHead,omitempty"`
	PartyType    string          `json:"partyType,omitempty"`
	PartyID      string          `json:"partyId,omitempty"`
	DueDate      string          `json:"dueDate,omitempty"`
}

type CreateJournalEntryRequest struct {
	Date        string               `json:"date"`
	Reference   string               `json:"reference,omitempty"`
	Description string               `json:"description,omitempty"`
	ProjectID   string               `json:"projectId,omitempty"`
	Lines       []JournalLineRequest `json:"lines"`
}

func (r CreateJournalEntryRequest) Validate() error {
	var errs []string

	if strings.TrimSpace(r.Date) == "" {
		errs = append(errs, "date is required")
	} else if !isValidDate(r.Date) {
		errs = append(errs, "date must be YYYY-MM-DD")
	}

	if len(r.Lines) < 2 {
		errs = append(errs, "at least 2 lines are required")
	}

	for i, line := range r.Lines {
		if strings.TrimSpace(line.AccountID) == "" {
			errs = append(errs, fmt.Sprintf("line %d: accountId is required", i+1))
		}
		if line.Debit.IsNegative() || line.Credit.IsNegative() {
			errs = append(errs, fmt.Sprintf("line %d: amounts cannot be negative", i+1))
		}
		if line.Debit.IsZero() == line.Credit.IsZero() {
			errs = append(errs, fmt.Sprintf("line %d: exactly one of debit or credit must be set", i+1))
		}
		if strings.TrimSpace(line.CostHead) != "" && strings.TrimSpace(line.ProjectID) == "" {
			errs = append(errs, fmt.Sprintf("line %d: costHead requires projectId", i+1))
		}
		if strings.TrimSpace(line.PartyType) != "" {
			pt := strings.ToLower(strings.TrimSpace(line.PartyType))
			if pt != "vendor" && pt != "customer" && pt != "employee" {
				errs = append(errs, fmt.Sprintf("line %d: partyType must be vendor, customer or employee", i+1))
			}
			if strings.TrimSpace(line.PartyID) == "" {
				errs = append(errs, fmt.Sprintf("line %d: partyType requires partyId", i+1))
			}
			if strings.TrimSpace(line.DueDate) != "" && !isValidDate(line.DueDate) {
				errs = append(errs, fmt.Sprintf("line %d: dueDate must be YYYY-MM-DD", i+1))
			}
		}
	}

	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}

	return nil
}

type JournalLineResponse struct {
	AccountID    string `json:"accountId"`
	Debit        string `json:"debit"`
	Credit       string `json:"credit"`
	Description  string `json:"description,omitempty"`
	CostCenterID string `json:"costCenterId,omitempty"`
	ProjectID    string `json:"projectId,omitempty"`
	CostHead     string `json:"costHead,omitempty"`
	PartyType    string `json:"partyType,omitempty"`
	PartyID      string `json:"partyId,omitempty"`
	DueDate      string `json:"dueDate,omitempty"`
}

type JournalEntryResponse struct {
	ID              string                `json:"id"`
	EntryNumber     string                `json:"entryNumber"`
	Date            string                `json:"date"`
	Reference       string                `json:"reference,omitempty"`
	Description     string                `json:"description,omitempty"`
	Status          string                `json:"status"`
	ProjectID       string                `json:"projectId,omitempty"`
	Lines           []JournalLineResponse `json:"lines"`
	TotalDebit      string                `json:"totalDebit"`
	TotalCredit     string                `json:"totalCredit"`
	CreatedBy       string                `json:"createdBy,omitempty"`
	PostedBy        string                `json:"postedBy,omitempty"`
	PostedAt        string                `json:"postedAt,omitempty"`
	ReversalEntryID string                `json:"reversalEntryId,omitempty"`
	CreatedAt       string                `json:"createdAt"`
	UpdatedAt       string                `json:"updatedAt"`
}

type UpdatedBalanceResponse struct {
	AccountID string `json:"accountId"`
	Balance   string `json:"balance"`
}

type PostJournalEntryResponse struct {
	ID              string                   `json:"id"`
	EntryNumber     string                   `json:"entryNumber"`
	Status          string                   `json:"status"`
	PostedLineCount int                      `json:"postedLineCount"`
	UpdatedBalances []UpdatedBalanceResponse `json:"updatedBalances"`
}

type ReverseJournalEntryResponse struct {
	SourceEntryID   string `json:"sourceEntryId"`
	ReversalEntryID string `json:"reversalEntryId"`
	ReversalNumber  string `json:"reversalNumber"`
}

type BulkPostItemResult struct {
	ID      string `json:"id"`
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

type BulkPostResponse struct {
	Posted  int                  `json:"posted"`
	Failed  int                  `json:"failed"`
	Results []BulkPostItemResult `json:"results"`
}

type ListJournalEntriesRequest struct {
	Status    string `json:"status,omitempty"`
	ProjectID string `json:"projectId,omitempty"`
	FromDate  string `json:"fromDate,omitempty"`
	ToDate    string `json:"toDate,omitempty"`
	Limit     int    `json:"limit,omitempty"`
	Offset    int    `json:"offset,omitempty"`
}
