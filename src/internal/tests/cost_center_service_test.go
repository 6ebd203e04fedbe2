package services_test

import (
	"context"
	"testing"

	"github.com/PrinceDayani/RayERP-sub004/src/internal/usecase/models"
)

func TestCostCenterServiceAllocateSubtractClampsAtZero(t *testing.T) {
	e := newEnv(t)

	center := e.createCostCenter(t, models.CreateCostCenterRequest{
		Code: "CC-01", Name: "Site Office", Budget: dec(t, "5000"),
	})

	addResp, err := e.costCenters.AllocateCost(context.Background(), "tester", models.AllocateCostRequest{
		CostCenterID: center.ID,
		Amount:       dec(t, "100"),
		Operation:    "add",
	})
	if err != nil {
		t.Fatalf("allocate add: %v", err)
	}
	if addResp.Data.ActualCost != "100.00" {
		t.Fatalf("expected actual cost 100.00, got %s", addResp.Data.ActualCost)
	}

	subResp, err := e.costCenters.AllocateCost(context.Background(), "tester", models.AllocateCostRequest{
		CostCenterID: center.ID,
		Amount:       dec(t, "250"),
		Operation:    "subtract",
	})
	if err != nil {
		t.Fatalf("allocate subtract: %v", err)
	}
	if subResp.Data.ActualCost != "0.00" {
		t.Errorf("expected actual cost clamped at 0.00, got %s", subResp.Data.ActualCost)
	}
}

func TestCostCenterServiceAllocateRejectsNonPositiveAmount(t *testing.T) {
	e := newEnv(t)

	center := e.createCostCenter(t, models.CreateCostCenterRequest{
		Code: "CC-01", Name: "Site Office", Budget: dec(t, "5000"),
	})

	_, err := e.costCenters.AllocateCost(context.Background(), "tester", models.AllocateCostRequest{
		CostCenterID: center.ID,
		Amount:       dec(t, "0"),
		Operation:    "add",
	})
	if err == nil {
		t.Fatal("expected validation error for zero amount")
	}
}

func TestCostCenterServiceHierarchy(t *testing.T) {
	e := newEnv(t)

	parent := e.createCostCenter(t, models.CreateCostCenterRequest{
		Code: "CC-01", Name: "Head Office",
	})
	child := e.createCostCenter(t, models.CreateCostCenterRequest{
		Code: "CC-02", Name: "Regional Office", ParentID: parent.ID,
	})
	if child.Level != 1 {
		t.Fatalf("expected child level 1, got %d", child.Level)
	}

	resp, err := e.costCenters.GetHierarchy(context.Background())
	if err != nil {
		t.Fatalf("get hierarchy: %v", err)
	}

	nodes := *resp.Data
	if len(nodes) != 1 {
		t.Fatalf("expected 1 root node, got %d", len(nodes))
	}
	if len(nodes[0].Children) != 1 || nodes[0].Children[0].Code != "CC-02" {
		t.Errorf("expected CC-02 nested under CC-01")
	}
}

func TestCostCenterServiceCapitalizeWIP(t *testing.T) {
	e := newEnv(t)
	e.createFiscalYear(t, "2025-26", "2025-04-01", "2026-03-31")

	cash := e.createAccount(t, models.CreateAccountRequest{
		Code: "1001", Name: "Cash", Type: "asset", SubType: "Cash",
	})
	wip := e.createAccount(t, models.CreateAccountRequest{
		Code: "1501", Name: "Work in Progress", Type: "asset",
	})

	wipLine := line(wip.ID, "2500", "")
	wipLine.ProjectID = "PRJ-9"
	wipLine.CostHead = "material"

	entry := e.createEntry(t, models.CreateJournalEntryRequest{
		Date:      "2025-06-10",
		ProjectID: "PRJ-9",
		Lines: []models.JournalLineRequest{
			wipLine,
			line(cash.ID, "", "2500"),
		},
	})
	e.postEntry(t, entry.ID)

	resp, err := e.costCenters.CapitalizeWIP(context.Background(), "tester", models.CapitalizeWIPRequest{
		ProjectID: "PRJ-9",
		CostHead:  "material",
		Amount:    dec(t, "2500"),
	})
	if err != nil {
		t.Fatalf("capitalize wip: %v", err)
	}
	if resp.Data.Amount != "2500.00" {
		t.Errorf("expected capitalized amount 2500.00, got %s", resp.Data.Amount)
	}

	// A second capitalization finds no open rows.
	_, err = e.costCenters.CapitalizeWIP(context.Background(), "tester", models.CapitalizeWIPRequest{
		ProjectID: "PRJ-9",
		CostHead:  "material",
		Amount:    dec(t, "2500"),
	})
	if err == nil {
		t.Fatal("expected error when no open rows remain")
	}
}

func TestCostCenterServicePostingAllocatesActualCost(t *testing.T) {
	e := newEnv(t)
	e.createFiscalYear(t, "2025-26", "2025-04-01", "2026-03-31")

	center := e.createCostCenter(t, models.CreateCostCenterRequest{
		Code: "CC-01", Name: "Bridge Project", ProjectID: "PRJ-7", Budget: dec(t, "10000"),
	})
	cash := e.createAccount(t, models.CreateAccountRequest{
		Code: "1001", Name: "Cash", Type: "asset", SubType: "Cash",
	})
	siteCost := e.createAccount(t, models.CreateAccountRequest{
		Code: "5001", Name: "Site Cost", Type: "expense",
	})

	costLine := line(siteCost.ID, "1500", "")
	costLine.CostCenterID = center.ID
	costLine.ProjectID = "PRJ-7"
	costLine.CostHead = "labour"

	entry := e.createEntry(t, models.CreateJournalEntryRequest{
		Date:      "2025-06-15",
		ProjectID: "PRJ-7",
		Lines: []models.JournalLineRequest{
			costLine,
			line(cash.ID, "", "1500"),
		},
	})
	e.postEntry(t, entry.ID)

	analysis, err := e.costCenters.GetBudgetAnalysis(context.Background(), models.BudgetAnalysisRequest{
		CostCenterID: center.ID,
	})
	if err != nil {
		t.Fatalf("budget analysis: %v", err)
	}
	if analysis.Data.ActualCost != "1500.00" {
		t.Errorf("expected actual cost 1500.00, got %s", analysis.Data.ActualCost)
	}
	if analysis.Data.Variance != "8500.00" {
		t.Errorf("expected variance 8500.00, got %s", analysis.Data.Variance)
	}
	if analysis.Data.CostByHead["labour"] != "1500.00" {
		t.Errorf("expected labour cost 1500.00, got %s", analysis.Data.CostByHead["labour"])
	}
	if analysis.Data.Status != "under_budget" {
		t.Errorf("expected under_budget status, got %s", analysis.Data.Status)
	}
}
