package models

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

type CreateCostCenterRequest struct {
	Code        string          `json:"code"`
	Name        string          `json:"name"`
	Type        string          `json:"type,omitempty"`
	ParentID    string          `json:"parentId,omitempty"`
	ProjectID   string          `json:"projectId,omitempty"`
	Budget      decimal.Decimal `json:"budget"`
	Description string          `json:"description,omitempty"`
}

func (r CreateCostCenterRequest) Validate() error {
	var errs []string

	if strings.TrimSpace(r.Code) == "" {
		errs = append(errs, "code is required")
	}
	if strings.TrimSpace(r.Name) == "" {
		errs = append(errs, "name is required")
	}
	if r.Budget.IsNegative() {
		errs = append(errs, "budget cannot be negative")
	}

	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}

	return nil
}

type UpdateCostCenterRequest struct {
	Name          *string          `json:"name,omitempty"`
	Type          *string          `json:"type,omitempty"`
	Budget        *decimal.Decimal `json:"budget,omitempty"`
	CommittedCost *decimal.Decimal `json:"committedCost,omitempty"`
	Description   *string          `json:"description,omitempty"`
	Active        *bool            `json:"active,omitempty"`
}

type AllocateCostRequest struct {
	CostCenterID string          `json:"costCenterId"`
	Amount       decimal.Decimal `json:"amount"`
	Operation    string          `json:"operation"`
}

func (r AllocateCostRequest) Validate() error {
	var errs []string

	if strings.TrimSpace(r.CostCenterID) == "" {
		errs = append(errs, "costCenterId is required")
	}
	if !r.Amount.IsPositive() {
		errs = append(errs, "amount must be positive")
	}

	op := strings.ToLower(strings.TrimSpace(r.Operation))
	if op != "add" && op != "subtract" {
		errs = append(errs, "operation must be add or subtract")
	}

	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}

	return nil
}

type CostCenterResponse struct {
	ID            string `json:"id"`
	Code          string `json:"code"`
	Name          string `json:"name"`
	Type          string `json:"type,omitempty"`
	ParentID      string `json:"parentId,omitempty"`
	ProjectID     string `json:"projectId,omitempty"`
	Level         int    `json:"level"`
	Budget        string `json:"budget"`
	ActualCost    string `json:"actualCost"`
	CommittedCost string `json:"committedCost"`
	Active        bool   `json:"active"`
	CreatedAt     string `json:"createdAt"`
	UpdatedAt     string `json:"updatedAt"`
}

type CostCenterNodeResponse struct {
	CostCenterResponse
	Children []CostCenterNodeResponse `json:"children"`
}

type CapitalizeWIPRequest struct {
	ProjectID string          `json:"projectId"`
	CostHead  string          `json:"costHead"`
	Amount    decimal.Decimal `json:"amount"`
}

func (r CapitalizeWIPRequest) Validate() error {
	var errs []string

	if strings.TrimSpace(r.ProjectID) == "" {
		errs = append(errs, "projectId is required")
	}
	if strings.TrimSpace(r.CostHead) == "" {
		errs = append(errs, "costHead is required")
	}
	if !r.Amount.IsPositive() {
		errs = append(errs, "amount must be positive")
	}

	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}

	return nil
}

type CapitalizeWIPResponse struct {
	ProjectID string `json:"projectId"`
	CostHead  string `json:"costHead"`
	Amount    string `json:"amount"`
}

type BudgetAnalysisRequest struct {
	CostCenterID string `json:"costCenterId"`
	FromDate     string `json:"fromDate,omitempty"`
	ToDate       string `json:"toDate,omitempty"`
}

func (r BudgetAnalysisRequest) Validate() error {
	var errs []string

	if strings.TrimSpace(r.CostCenterID) == "" {
		errs = append(errs, "costCenterId is required")
	}
	if strings.TrimSpace(r.FromDate) != "" && !isValidDate(r.FromDate) {
		errs = append(errs, "fromDate must be YYYY-MM-DD")
	}
	if strings.TrimSpace(r.ToDate) != "" && !isValidDate(r.ToDate) {
		errs = append(errs, "toDate must be YYYY-MM-DD")
	}

	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}

	return nil
}

type BudgetAnalysisResponse struct {
	CostCenterID       string            `json:"costCenterId"`
	Code               string            `json:"code"`
	Budget             string            `json:"budget"`
	ActualCost         string            `json:"actualCost"`
	CommittedCost      string            `json:"committedCost"`
	Variance           string            `json:"variance"`
	UtilizationPercent string            `json:"utilizationPercent"`
	Status             string            `json:"status"`
	CostByHead         map[string]string `json:"costByHead"`
}
