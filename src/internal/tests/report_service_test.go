package services_test

import (
	"context"
	"testing"

	"github.com/PrinceDayani/RayERP-sub004/src/internal/usecase/models"
)

func TestReportServiceAgingBucketsOverdueVendorBill(t *testing.T) {
	e := newEnv(t)
	e.createFiscalYear(t, "2025-26", "2025-04-01", "2026-03-31")

	expense := e.createAccount(t, models.CreateAccountRequest{
		Code: "5001", Name: "Site Expenses", Type: "expense",
	})
	payable := e.createAccount(t, models.CreateAccountRequest{
		Code: "2001", Name: "Accounts Payable", Type: "liability",
	})

	// Due 45 days before the report cut-off, so it lands in the 31-60 bucket.
	creditLine := line(payable.ID, "", "200")
	creditLine.PartyType = "vendor"
	creditLine.PartyID = "V-100"
	creditLine.DueDate = "2025-06-01"

	entry := e.createEntry(t, models.CreateJournalEntryRequest{
		Date:        "2025-05-20",
		Description: "vendor bill",
		Lines: []models.JournalLineRequest{
			line(expense.ID, "200", ""),
			creditLine,
		},
	})
	e.postEntry(t, entry.ID)

	resp, err := e.reports.Generate(context.Background(), models.ReportRequest{
		Kind:      models.ReportAging,
		PartyType: "vendor",
		AsOfDate:  "2025-07-16",
	})
	if err != nil {
		t.Fatalf("generate aging report: %v", err)
	}

	aging := resp.Data.Aging
	if aging == nil {
		t.Fatal("expected aging section in report")
	}
	if len(aging.AgingData) != 1 {
		t.Fatalf("expected 1 aging row, got %d", len(aging.AgingData))
	}

	row := aging.AgingData[0]
	if row.PartyID != "V-100" {
		t.Errorf("expected party V-100, got %s", row.PartyID)
	}
	if row.Bucket31To60 != "200.00" {
		t.Errorf("expected 200.00 in the 31-60 bucket, got %s", row.Bucket31To60)
	}
	if row.Bucket0To30 != "0.00" || row.Bucket61To90 != "0.00" {
		t.Errorf("expected amount only in the 31-60 bucket: %+v", row)
	}
	if aging.TotalOutstanding != "200.00" {
		t.Errorf("expected total outstanding 200.00, got %s", aging.TotalOutstanding)
	}
}

func TestReportServiceBalanceSheetEquationHolds(t *testing.T) {
	e := newEnv(t)
	e.createFiscalYear(t, "2025-26", "2025-04-01", "2026-03-31")

	cash := e.createAccount(t, models.CreateAccountRequest{
		Code: "1001", Name: "Cash", Type: "asset", SubType: "Cash",
	})
	capital := e.createAccount(t, models.CreateAccountRequest{
		Code: "3001", Name: "Owner Capital", Type: "equity",
	})
	materials := e.createAccount(t, models.CreateAccountRequest{
		Code: "5001", Name: "Material Expense", Type: "expense",
	})

	funding := e.createEntry(t, models.CreateJournalEntryRequest{
		Date: "2025-04-10",
		Lines: []models.JournalLineRequest{
			line(cash.ID, "10000", ""),
			line(capital.ID, "", "10000"),
		},
	})
	e.postEntry(t, funding.ID)

	purchase := e.createEntry(t, models.CreateJournalEntryRequest{
		Date: "2025-05-05",
		Lines: []models.JournalLineRequest{
			line(materials.ID, "3000", ""),
			line(cash.ID, "", "3000"),
		},
	})
	e.postEntry(t, purchase.ID)

	resp, err := e.reports.Generate(context.Background(), models.ReportRequest{
		Kind:     models.ReportBalanceSheet,
		AsOfDate: "2025-06-30",
	})
	if err != nil {
		t.Fatalf("generate balance sheet: %v", err)
	}

	sheet := resp.Data.BalanceSheet
	if sheet == nil {
		t.Fatal("expected balance sheet section in report")
	}
	if sheet.TotalAssets != "7000.00" {
		t.Errorf("expected total assets 7000.00, got %s", sheet.TotalAssets)
	}
	if !sheet.Balanced {
		t.Errorf("expected assets = liabilities + equity, got assets %s liabilities %s equity %s",
			sheet.TotalAssets, sheet.TotalLiabilities, sheet.TotalEquity)
	}
}

func TestReportServiceTrialBalanceBalances(t *testing.T) {
	e := newEnv(t)
	e.createFiscalYear(t, "2025-26", "2025-04-01", "2026-03-31")

	cash := e.createAccount(t, models.CreateAccountRequest{
		Code: "1001", Name: "Cash", Type: "asset", SubType: "Cash",
	})
	sales := e.createAccount(t, models.CreateAccountRequest{
		Code: "4001", Name: "Sales", Type: "income",
	})

	entry := e.createEntry(t, models.CreateJournalEntryRequest{
		Date: "2025-06-15",
		Lines: []models.JournalLineRequest{
			line(cash.ID, "1200", ""),
			line(sales.ID, "", "1200"),
		},
	})
	e.postEntry(t, entry.ID)

	resp, err := e.reports.Generate(context.Background(), models.ReportRequest{Kind: models.ReportTrialBalance})
	if err != nil {
		t.Fatalf("generate trial balance: %v", err)
	}

	tb := resp.Data.TrialBalance
	if tb == nil {
		t.Fatal("expected trial balance section in report")
	}
	if !tb.Balanced {
		t.Errorf("expected balanced trial balance, debit %s credit %s", tb.TotalDebit, tb.TotalCredit)
	}
	if tb.TotalDebit != "1200.00" || tb.TotalCredit != "1200.00" {
		t.Errorf("expected totals 1200.00/1200.00, got %s/%s", tb.TotalDebit, tb.TotalCredit)
	}
	if len(tb.Rows) != 2 {
		t.Errorf("expected 2 rows, got %d", len(tb.Rows))
	}
}

func TestReportServiceProfitLoss(t *testing.T) {
	e := newEnv(t)
	e.createFiscalYear(t, "2025-26", "2025-04-01", "2026-03-31")

	cash := e.createAccount(t, models.CreateAccountRequest{
		Code: "1001", Name: "Cash", Type: "asset", SubType: "Cash",
	})
	sales := e.createAccount(t, models.CreateAccountRequest{
		Code: "4001", Name: "Sales", Type: "income",
	})
	wages := e.createAccount(t, models.CreateAccountRequest{
		Code: "5001", Name: "Wages", Type: "expense",
	})

	revenue := e.createEntry(t, models.CreateJournalEntryRequest{
		Date: "2025-06-10",
		Lines: []models.JournalLineRequest{
			line(cash.ID, "5000", ""),
			line(sales.ID, "", "5000"),
		},
	})
	e.postEntry(t, revenue.ID)

	payroll := e.createEntry(t, models.CreateJournalEntryRequest{
		Date: "2025-06-25",
		Lines: []models.JournalLineRequest{
			line(wages.ID, "1800", ""),
			line(cash.ID, "", "1800"),
		},
	})
	e.postEntry(t, payroll.ID)

	resp, err := e.reports.Generate(context.Background(), models.ReportRequest{
		Kind:     models.ReportProfitLoss,
		FromDate: "2025-06-01",
		ToDate:   "2025-06-30",
	})
	if err != nil {
		t.Fatalf("generate profit and loss: %v", err)
	}

	pl := resp.Data.ProfitLoss
	if pl == nil {
		t.Fatal("expected profit and loss section in report")
	}
	if pl.TotalIncome != "5000.00" {
		t.Errorf("expected total income 5000.00, got %s", pl.TotalIncome)
	}
	if pl.TotalExpense != "1800.00" {
		t.Errorf("expected total expense 1800.00, got %s", pl.TotalExpense)
	}
	if pl.NetProfit != "3200.00" {
		t.Errorf("expected net profit 3200.00, got %s", pl.NetProfit)
	}
}

func TestReportServiceCashFlowBucketsRowsByAccount(t *testing.T) {
	e := newEnv(t)
	e.createFiscalYear(t, "2025-26", "2025-04-01", "2026-03-31")

	bank := e.createAccount(t, models.CreateAccountRequest{
		Code: "1002", Name: "Bank", Type: "asset", SubType: "Bank",
	})
	sales := e.createAccount(t, models.CreateAccountRequest{
		Code: "4001", Name: "Sales", Type: "income",
	})
	loan := e.createAccount(t, models.CreateAccountRequest{
		Code: "2501", Name: "Term Loan", Type: "liability", Category: "financing",
	})

	sale := e.createEntry(t, models.CreateJournalEntryRequest{
		Date: "2025-06-05",
		Lines: []models.JournalLineRequest{
			line(bank.ID, "4000", ""),
			line(sales.ID, "", "4000"),
		},
	})
	e.postEntry(t, sale.ID)

	drawdown := e.createEntry(t, models.CreateJournalEntryRequest{
		Date: "2025-06-12",
		Lines: []models.JournalLineRequest{
			line(bank.ID, "6000", ""),
			line(loan.ID, "", "6000"),
		},
	})
	e.postEntry(t, drawdown.ID)

	resp, err := e.reports.Generate(context.Background(), models.ReportRequest{
		Kind:     models.ReportCashFlow,
		FromDate: "2025-06-01",
		ToDate:   "2025-06-30",
	})
	if err != nil {
		t.Fatalf("generate cash flow: %v", err)
	}

	cf := resp.Data.CashFlow
	if cf == nil {
		t.Fatal("expected cash flow section in report")
	}
	// Bank rows land in operating: debits of 4000 and 6000 are outflows.
	// The sales credit is an operating inflow.
	if cf.Operating.Inflow != "4000.00" {
		t.Errorf("expected operating inflow 4000.00, got %s", cf.Operating.Inflow)
	}
	if cf.Operating.Outflow != "10000.00" {
		t.Errorf("expected operating outflow 10000.00, got %s", cf.Operating.Outflow)
	}
	// The loan credit goes to financing via the account's explicit category.
	if cf.Financing.Inflow != "6000.00" {
		t.Errorf("expected financing inflow 6000.00, got %s", cf.Financing.Inflow)
	}
	// Balanced entries net to zero across all buckets.
	if cf.NetCashFlow != "0.00" {
		t.Errorf("expected net cash flow 0.00, got %s", cf.NetCashFlow)
	}
}

func TestReportServiceCashFlowSaleNetsToZeroWithinOperating(t *testing.T) {
	e := newEnv(t)
	e.createFiscalYear(t, "2025-26", "2025-04-01", "2026-03-31")

	bank := e.createAccount(t, models.CreateAccountRequest{
		Code: "1002", Name: "Bank", Type: "asset", SubType: "Bank",
	})
	sales := e.createAccount(t, models.CreateAccountRequest{
		Code: "4001", Name: "Sales", Type: "income",
	})

	sale := e.createEntry(t, models.CreateJournalEntryRequest{
		Date: "2025-06-05",
		Lines: []models.JournalLineRequest{
			line(bank.ID, "4000", ""),
			line(sales.ID, "", "4000"),
		},
	})
	e.postEntry(t, sale.ID)

	resp, err := e.reports.Generate(context.Background(), models.ReportRequest{
		Kind:     models.ReportCashFlow,
		FromDate: "2025-06-01",
		ToDate:   "2025-06-30",
	})
	if err != nil {
		t.Fatalf("generate cash flow: %v", err)
	}

	cf := resp.Data.CashFlow
	if cf == nil {
		t.Fatal("expected cash flow section in report")
	}
	if cf.Operating.Inflow != "4000.00" || cf.Operating.Outflow != "4000.00" {
		t.Errorf("expected operating inflow and outflow of 4000.00, got inflow %s outflow %s",
			cf.Operating.Inflow, cf.Operating.Outflow)
	}
	if cf.Operating.Net != "0.00" {
		t.Errorf("expected operating net 0.00, got %s", cf.Operating.Net)
	}
	if cf.NetCashFlow != "0.00" {
		t.Errorf("expected net cash flow 0.00, got %s", cf.NetCashFlow)
	}
}

func TestReportServiceProjectCostAggregatesByHead(t *testing.T) {
	e := newEnv(t)
	e.createFiscalYear(t, "2025-26", "2025-04-01", "2026-03-31")

	cash := e.createAccount(t, models.CreateAccountRequest{
		Code: "1001", Name: "Cash", Type: "asset", SubType: "Cash",
	})
	siteCost := e.createAccount(t, models.CreateAccountRequest{
		Code: "5001", Name: "Site Cost", Type: "expense",
	})
	e.createCostCenter(t, models.CreateCostCenterRequest{
		Code: "CC-01", Name: "Bridge Project", ProjectID: "PRJ-7",
		Budget: dec(t, "10000"),
	})

	materialLine := line(siteCost.ID, "2500", "")
	materialLine.ProjectID = "PRJ-7"
	materialLine.CostHead = "material"

	entry := e.createEntry(t, models.CreateJournalEntryRequest{
		Date:      "2025-06-15",
		ProjectID: "PRJ-7",
		Lines: []models.JournalLineRequest{
			materialLine,
			line(cash.ID, "", "2500"),
		},
	})
	e.postEntry(t, entry.ID)

	resp, err := e.reports.Generate(context.Background(), models.ReportRequest{
		Kind:      models.ReportProjectCost,
		ProjectID: "PRJ-7",
	})
	if err != nil {
		t.Fatalf("generate project cost report: %v", err)
	}

	pc := resp.Data.ProjectCost
	if pc == nil {
		t.Fatal("expected project cost section in report")
	}
	if pc.TotalCost != "2500.00" {
		t.Errorf("expected total cost 2500.00, got %s", pc.TotalCost)
	}
	if len(pc.CostByHead) != 1 || pc.CostByHead[0].CostHead != "material" {
		t.Fatalf("expected one material cost head row, got %+v", pc.CostByHead)
	}
	if pc.Variance != "7500.00" {
		t.Errorf("expected variance 7500.00, got %s", pc.Variance)
	}
}

func TestReportServiceRejectsUnknownKind(t *testing.T) {
	e := newEnv(t)

	if _, err := e.reports.Generate(context.Background(), models.ReportRequest{Kind: "ledger_dump"}); err == nil {
		t.Fatal("expected validation error for unknown report kind")
	}
}
