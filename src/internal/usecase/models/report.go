package models

import (
	"errors"
	"strings"
)

type ReportKind string

const (
	ReportTrialBalance ReportKind = "trial_balance"
	ReportBalanceSheet ReportKind = "balance_sheet"
	ReportProfitLoss   ReportKind = "profit_loss"
	ReportCashFlow     ReportKind = "cash_flow"
	ReportAging        ReportKind = "aging"
	ReportProjectCost  ReportKind = "project_cost"
)

// ReportRequest is the tagged variant dispatched to one aggregation function
// per kind. Unused params are ignored by the other kinds.
type ReportRequest struct {
	Kind      ReportKind `json:"kind"`
	FromDate  string     `json:"fromDate,omitempty"`
	ToDate    string     `json:"toDate,omitempty"`
	AsOfDate  string     `json:"asOfDate,omitempty"`
	ProjectID string     `json:"projectId,omitempty"`
	PartyType string     `json:"partyType,omitempty"`
}

func (r ReportRequest) Validate() error {
	var errs []string

	switch r.Kind {
	case ReportTrialBalance:
		// Both dates optional.
	case ReportBalanceSheet:
		if strings.TrimSpace(r.AsOfDate) == "" {
			errs = append(errs, "asOfDate is required")
		}
	case ReportProfitLoss, ReportCashFlow:
		if strings.TrimSpace(r.FromDate) == "" || strings.TrimSpace(r.ToDate) == "" {
			errs = append(errs, "fromDate and toDate are required")
		}
	case ReportAging:
		pt := strings.ToLower(strings.TrimSpace(r.PartyType))
		if pt != "vendor" && pt != "customer" {
			errs = append(errs, "partyType must be vendor or customer")
		}
		if strings.TrimSpace(r.AsOfDate) == "" {
			errs = append(errs, "asOfDate is required")
		}
	case ReportProjectCost:
		if strings.TrimSpace(r.ProjectID) == "" {
			errs = append(errs, "projectId is required")
		}
	default:
		errs = append(errs, "kind must be one of trial_balance, balance_sheet, profit_loss, cash_flow, aging, project_cost")
	}

	for _, raw := range []string{r.FromDate, r.ToDate, r.AsOfDate} {
		if strings.TrimSpace(raw) != "" && !isValidDate(raw) {
			errs = append(errs, "dates must be YYYY-MM-DD")
			break
		}
	}

	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}

	return nil
}

type TrialBalanceRow struct {
	AccountID      string `json:"accountId"`
	Code           string `json:"code"`
	Name           string `json:"name"`
	Type           string `json:"type"`
	TotalDebit     string `json:"totalDebit"`
	TotalCredit    string `json:"totalCredit"`
	ClosingBalance string `json:"closingBalance"`
}

type TrialBalanceResponse struct {
	Rows        []TrialBalanceRow `json:"rows"`
	TotalDebit  string            `json:"totalDebit"`
	TotalCredit string            `json:"totalCredit"`
	Balanced    bool              `json:"balanced"`
	FromDate    string            `json:"fromDate,omitempty"`
	ToDate      string            `json:"toDate,omitempty"`
}

type BalanceSheetLine struct {
	AccountID string `json:"accountId"`
	Code      string `json:"code"`
	Name      string `json:"name"`
	Balance   string `json:"balance"`
}

type BalanceSheetResponse struct {
	AsOfDate         string             `json:"asOfDate"`
	Assets           []BalanceSheetLine `json:"assets"`
	Liabilities      []BalanceSheetLine `json:"liabilities"`
	Equity           []BalanceSheetLine `json:"equity"`
	TotalAssets      string             `json:"totalAssets"`
	TotalLiabilities string             `json:"totalLiabilities"`
	TotalEquity      string             `json:"totalEquity"`
	Balanced         bool               `json:"balanced"`
}

type ProfitLossLine struct {
	AccountID string `json:"accountId"`
	Code      string `json:"code"`
	Name      string `json:"name"`
	Net       string `json:"net"`
}

type ProfitLossResponse struct {
	FromDate     string           `json:"fromDate"`
	ToDate       string           `json:"toDate"`
	Income       []ProfitLossLine `json:"income"`
	Expenses     []ProfitLossLine `json:"expenses"`
	TotalIncome  string           `json:"totalIncome"`
	TotalExpense string           `json:"totalExpense"`
	NetProfit    string           `json:"netProfit"`
}

type CashFlowBucket struct {
	Inflow  string `json:"inflow"`
	Outflow string `json:"outflow"`
	Net     string `json:"net"`
}

type CashFlowResponse struct {
	FromDate    string         `json:"fromDate"`
	ToDate      string         `json:"toDate"`
	Operating   CashFlowBucket `json:"operating"`
	Investing   CashFlowBucket `json:"investing"`
	Financing   CashFlowBucket `json:"financing"`
	NetCashFlow string         `json:"netCashFlow"`
}

type AgingRow struct {
	PartyID       string `json:"partyId"`
	Bucket0To30   string `json:"bucket0To30"`
	Bucket31To60  string `json:"bucket31To60"`
	Bucket61To90  string `json:"bucket61To90"`
	Bucket91To120 string `json:"bucket91To120"`
	BucketOver120 string `json:"bucketOver120"`
	Total         string `json:"total"`
}

type AgingResponse struct {
	PartyType        string     `json:"partyType"`
	AsOfDate         string     `json:"asOfDate"`
	AgingData        []AgingRow `json:"agingData"`
	TotalOutstanding string     `json:"totalOutstanding"`
}

type ProjectCostHeadRow struct {
	CostHead   string `json:"costHead"`
	Amount     string `json:"amount"`
	Cumulative string `json:"cumulative"`
}

type ProjectCostResponse struct {
	ProjectID     string               `json:"projectId"`
	CostByHead    []ProjectCostHeadRow `json:"costByHead"`
	TotalCost     string               `json:"totalCost"`
	Budget        string               `json:"budget"`
	CommittedCost string               `json:"committedCost"`
	Variance      string               `json:"variance"`
}

// Report is the union returned by the tagged dispatch; exactly one section is
// populated, matching the request kind.
type Report struct {
	Kind         ReportKind            `json:"kind"`
	TrialBalance *TrialBalanceResponse `json:"trialBalance,omitempty"`
	BalanceSheet *BalanceSheetResponse `json:"balanceSheet,omitempty"`
	ProfitLoss   *ProfitLossResponse   `json:"profitLoss,omitempty"`
	CashFlow     *CashFlowResponse     `json:"cashFlow,omitempty"`
	Aging        *AgingResponse        `json:"aging,omitempty"`
	ProjectCost  *ProjectCostResponse  `json:"projectCost,omitempty"`
}
