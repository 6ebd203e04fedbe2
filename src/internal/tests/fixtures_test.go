package services_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/PrinceDayani/RayERP-sub004/src/internal/adapter/audit"
	"github.com/PrinceDayani/RayERP-sub004/src/internal/adapter/repository/memory"
	"github.com/PrinceDayani/RayERP-sub004/src/internal/usecase/models"
	"github.com/PrinceDayani/RayERP-sub004/src/internal/usecase/services"
)

type env struct {
	store       *memory.Store
	sink        *audit.MemorySink
	accounts    *services.ChartOfAccountsService
	costCenters *services.CostCenterService
	journal     *services.JournalService
	reports     *services.ReportService
	fiscalYears *services.FiscalYearService
}

func newEnv(t *testing.T) *env {
	t.Helper()

	store := memory.NewStore()
	sink := audit.NewMemorySink()
	tolerance := decimal.RequireFromString("0.01")

	return &env{
		store: store,
		sink:  sink,
		accounts: services.NewChartOfAccountsService(
			store.Accounts(),
			store.Ledger(),
			sink,
			"INR",
		),
		costCenters: services.NewCostCenterService(
			store.CostCenters(),
			store.WIP(),
			sink,
		),
		journal: services.NewJournalService(
			store.Journal(),
			store.Accounts(),
			store.CostCenters(),
			store.FiscalYears(),
			store.Ledger(),
			sink,
			tolerance,
		),
		reports: services.NewReportService(
			store.Accounts(),
			store.Ledger(),
			store.Subsidiary(),
			store.WIP(),
			store.CostCenters(),
			tolerance,
		),
		fiscalYears: services.NewFiscalYearService(
			store.FiscalYears(),
			sink,
		),
	}
}

func (e *env) createAccount(t *testing.T, req models.CreateAccountRequest) models.AccountResponse {
	t.Helper()

	resp, err := e.accounts.CreateAccount(context.Background(), "tester", req)
	if err != nil {
		t.Fatalf("create account %s: %v", req.Code, err)
	}
	return *resp.Data
}

func (e *env) createFiscalYear(t *testing.T, year, start, end string) models.FiscalYearResponse {
	t.Helper()

	resp, err := e.fiscalYears.CreateYear(context.Background(), "tester", models.CreateFiscalYearRequest{
		Year:      year,
		StartDate: start,
		EndDate:   end,
	})
	if err != nil {
		t.Fatalf("create fiscal year %s: %v", year, err)
	}
	return *resp.Data
}

func (e *env) createCostCenter(t *testing.T, req models.CreateCostCenterRequest) models.CostCenterResponse {
	t.Helper()

	resp, err := e.costCenters.CreateCostCenter(context.Background(), "tester", req)
	if err != nil {
		t.Fatalf("create cost center %s: %v", req.Code, err)
	}
	return *resp.Data
}

func (e *env) createEntry(t *testing.T, req models.CreateJournalEntryRequest) models.JournalEntryResponse {
	t.Helper()

	resp, err := e.journal.CreateEntry(context.Background(), "tester", req)
	if err != nil {
		t.Fatalf("create journal entry: %v", err)
	}
	return *resp.Data
}

func (e *env) postEntry(t *testing.T, id string) models.PostJournalEntryResponse {
	t.Helper()

	resp, err := e.journal.PostEntry(context.Background(), "tester", id)
	if err != nil {
		t.Fatalf("post journal entry %s: %v", id, err)
	}
	return *resp.Data
}

func dec(t *testing.T, value string) decimal.Decimal {
	t.Helper()

	d, err := decimal.NewFromString(value)
	if err != nil {
		t.Fatalf("parse decimal %q: %v", value, err)
	}
	return d
}

func line(accountID, debit, credit string) models.JournalLineRequest {
	req := models.JournalLineRequest{AccountID: accountID}
	if debit != "" {
		req.Debit = decimal.RequireFromString(debit)
	}
	if credit != "" {
		req.Credit = decimal.RequireFromString(credit)
	}
	return req
}
