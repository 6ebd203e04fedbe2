package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// CostOperation names the direction of a manual cost allocation.
type CostOperation string

const (
	CostOperationAdd      CostOperation = "add"
	CostOperationSubtract CostOperation = "subtract"
)

type CostCenter struct {
	ID            string
	Code          string
	Name          string
	Type          string
	ParentID      string
	ProjectID     string
	Level         int
	Budget        decimal.Decimal
	ActualCost    decimal.Decimal
	CommittedCost decimal.Decimal
	Description   string
	Active        bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Variance is the budget left after actual and committed cost.
func (c CostCenter) Variance() decimal.Decimal {
	return c.Budget.Sub(c.ActualCost).Sub(c.CommittedCost)
}

// UtilizationPercent reports spend against budget, zero when no budget is
// set.
func (c CostCenter) UtilizationPercent() decimal.Decimal {
	if c.Budget.IsZero() {
		return decimal.Zero
	}
	return c.ActualCost.Div(c.Budget).Mul(decimal.NewFromInt(100)).Round(2)
}

// CostCenterNode is one node of the cost center tree.
type CostCenterNode struct {
	CostCenter CostCenter
	Children   []*CostCenterNode
}

// BuildCostCenterTree assembles the parent-to-children hierarchy in a single
// pass. Centers whose parent is missing from the input become roots.
func BuildCostCenterTree(centers []CostCenter) []*CostCenterNode {
	index := make(map[string]*CostCenterNode, len(centers))
	for i := range centers {
		index[centers[i].ID] = &CostCenterNode{CostCenter: centers[i]}
	}

	roots := make([]*CostCenterNode, 0)
	for i := range centers {
		node := index[centers[i].ID]
		if centers[i].ParentID == "" {
			roots = append(roots, node)
			continue
		}
		parent, ok := index[centers[i].ParentID]
		if !ok {
			roots = append(roots, node)
			continue
		}
		parent.Children = append(parent.Children, node)
	}

	return roots
}
