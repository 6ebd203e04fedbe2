package models

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

type CreateAccountRequest struct {
	Code           string          `json:"code"`
	Name           string          `json:"name"`
	Type           string          `json:"type"`
	SubType        string          `json:"subType,omitempty"`
	Category       string          `json:"category,omitempty"`
	ParentID       string          `json:"parentId,omitempty"`
	OpeningBalance decimal.Decimal `json:"openingBalance"`
	Currency       string          `json:"currency,omitempty"`
	TaxCode        string          `json:"taxCode,omitempty"`
	ProjectCodes   []string        `json:"projectCodes,omitempty"`
	Description    string          `json:"description,omitempty"`
}

func (r CreateAccountRequest) Validate() error {
	var errs []string

	if strings.TrimSpace(r.Code) == "" {
		errs = append(errs, "code is required")
	}
	if strings.TrimSpace(r.Name) == "" {
		errs = append(errs, "name is required")
	}

	accountType := strings.ToLower(strings.TrimSpace(r.Type))
	if accountType == "" {
		errs = append(errs, "type is required")
	} else if accountType != "asset" && accountType != "liability" && accountType != "equity" && accountType != "income" && accountType != "expense" {
		errs = append(errs, "type must be one of asset, liability, equity, income, expense")
	}

	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}

	return nil
}

// UpdateAccountRequest is a patch; nil fields are left unchanged.
type UpdateAccountRequest struct {
	Name         *string   `json:"name,omitempty"`
	SubType      *string   `json:"subType,omitempty"`
	Category     *string   `json:"category,omitempty"`
	TaxCode      *string   `json:"taxCode,omitempty"`
	ProjectCodes *[]string `json:"projectCodes,omitempty"`
	Description  *string   `json:"description,omitempty"`
	Active       *bool     `json:"active,omitempty"`
}

type AccountResponse struct {
	ID             string   `json:"id"`
	Code           string   `json:"code"`
	Name           string   `json:"name"`
	Type           string   `json:"type"`
	SubType        string   `json:"subType,omitempty"`
	Category       string   `json:"category,omitempty"`
	ParentID       string   `json:"parentId,omitempty"`
	Level          int      `json:"level"`
	OpeningBalance string   `json:"openingBalance"`
	Balance        string   `json:"balance"`
	Currency       string   `json:"currency"`
	TaxCode        string   `json:"taxCode,omitempty"`
	ProjectCodes   []string `json:"projectCodes,omitempty"`
	Active         bool     `json:"active"`
	CreatedAt      string   `json:"createdAt"`
	UpdatedAt      string   `json:"updatedAt"`
}

type AccountNodeResponse struct {
	AccountResponse
	Children []AccountNodeResponse `json:"children"`
}

type AccountHierarchyResponse struct {
	Accounts []AccountNodeResponse `json:"accounts"`
	Total    int                   `json:"total"`
}

type AccountLedgerRowResponse struct {
	Date           string `json:"date"`
	JournalEntryID string `json:"journalEntryId"`
	Reference      string `json:"reference,omitempty"`
	Description    string `json:"description,omitempty"`
	Debit          string `json:"debit"`
	Credit         string `json:"credit"`
	RunningBalance string `json:"runningBalance"`
}

type AccountLedgerResponse struct {
	AccountID string                     `json:"accountId"`
	Code      string                     `json:"code"`
	Name      string                     `json:"name"`
	Rows      []AccountLedgerRowResponse `json:"rows"`
	FromDate  string                     `json:"fromDate,omitempty"`
	ToDate    string                     `json:"toDate,omitempty"`
}

type PeriodBalanceResponse struct {
	AccountID      string `json:"accountId"`
	Code           string `json:"code"`
	OpeningBalance string `json:"openingBalance"`
	ClosingBalance string `json:"closingBalance"`
	TotalDebit     string `json:"totalDebit"`
	TotalCredit    string `json:"totalCredit"`
	FromDate       string `json:"fromDate,omitempty"`
	ToDate         string `json:"toDate,omitempty"`
}
