package services_test

import (
	"context"
	"testing"

	"github.com/PrinceDayani/RayERP-sub004/src/internal/domain"
	"github.com/PrinceDayani/RayERP-sub004/src/internal/usecase/models"
)

func TestChartOfAccountsServiceCreateRejectsDuplicateCode(t *testing.T) {
	e := newEnv(t)

	e.createAccount(t, models.CreateAccountRequest{
		Code: "1001", Name: "Cash", Type: "asset",
	})

	_, err := e.accounts.CreateAccount(context.Background(), "tester", models.CreateAccountRequest{
		Code: "1001", Name: "Cash Again", Type: "asset",
	})
	if err != domain.ErrDuplicateCode {
		t.Fatalf("expected ErrDuplicateCode, got %v", err)
	}
}

func TestChartOfAccountsServiceCreateRejectsMissingParent(t *testing.T) {
	e := newEnv(t)

	_, err := e.accounts.CreateAccount(context.Background(), "tester", models.CreateAccountRequest{
		Code: "1001", Name: "Cash", Type: "asset", ParentID: "no-such-id",
	})
	if err != domain.ErrParentNotFound {
		t.Fatalf("expected ErrParentNotFound, got %v", err)
	}
}

func TestChartOfAccountsServiceHierarchyLevels(t *testing.T) {
	e := newEnv(t)

	root := e.createAccount(t, models.CreateAccountRequest{
		Code: "1000", Name: "Current Assets", Type: "asset",
	})
	child := e.createAccount(t, models.CreateAccountRequest{
		Code: "1001", Name: "Cash", Type: "asset", ParentID: root.ID,
	})
	if child.Level != 1 {
		t.Fatalf("expected child level 1, got %d", child.Level)
	}

	resp, err := e.accounts.GetHierarchy(context.Background())
	if err != nil {
		t.Fatalf("get hierarchy: %v", err)
	}
	if resp.Data.Total != 2 {
		t.Errorf("expected 2 accounts in hierarchy, got %d", resp.Data.Total)
	}
	if len(resp.Data.Accounts) != 1 {
		t.Fatalf("expected 1 root account, got %d", len(resp.Data.Accounts))
	}
	if len(resp.Data.Accounts[0].Children) != 1 || resp.Data.Accounts[0].Children[0].Code != "1001" {
		t.Errorf("expected 1001 nested under 1000")
	}
}

func TestChartOfAccountsServiceDefaultsCurrency(t *testing.T) {
	e := newEnv(t)

	account := e.createAccount(t, models.CreateAccountRequest{
		Code: "1001", Name: "Cash", Type: "asset",
	})
	if account.Currency != "INR" {
		t.Errorf("expected default currency INR, got %s", account.Currency)
	}
}

func TestChartOfAccountsServicePeriodBalance(t *testing.T) {
	e := newEnv(t)
	e.createFiscalYear(t, "2025-26", "2025-04-01", "2026-03-31")

	cash := e.createAccount(t, models.CreateAccountRequest{
		Code: "1001", Name: "Cash", Type: "asset", SubType: "Cash",
	})
	sales := e.createAccount(t, models.CreateAccountRequest{
		Code: "4001", Name: "Sales", Type: "income",
	})

	april := e.createEntry(t, models.CreateJournalEntryRequest{
		Date: "2025-04-10",
		Lines: []models.JournalLineRequest{
			line(cash.ID, "1000", ""),
			line(sales.ID, "", "1000"),
		},
	})
	e.postEntry(t, april.ID)

	june := e.createEntry(t, models.CreateJournalEntryRequest{
		Date: "2025-06-10",
		Lines: []models.JournalLineRequest{
			line(cash.ID, "400", ""),
			line(sales.ID, "", "400"),
		},
	})
	e.postEntry(t, june.ID)

	resp, err := e.accounts.GetBalance(context.Background(), cash.ID, "2025-06-01", "2025-06-30")
	if err != nil {
		t.Fatalf("get balance: %v", err)
	}
	if resp.Data.OpeningBalance != "1000.00" {
		t.Errorf("expected opening balance 1000.00, got %s", resp.Data.OpeningBalance)
	}
	if resp.Data.ClosingBalance != "1400.00" {
		t.Errorf("expected closing balance 1400.00, got %s", resp.Data.ClosingBalance)
	}
	if resp.Data.TotalDebit != "400.00" {
		t.Errorf("expected period debit 400.00, got %s", resp.Data.TotalDebit)
	}
}

func TestChartOfAccountsServiceLedgerRunningBalances(t *testing.T) {
	e := newEnv(t)
	e.createFiscalYear(t, "2025-26", "2025-04-01", "2026-03-31")

	cash := e.createAccount(t, models.CreateAccountRequest{
		Code: "1001", Name: "Cash", Type: "asset", SubType: "Cash",
	})
	sales := e.createAccount(t, models.CreateAccountRequest{
		Code: "4001", Name: "Sales", Type: "income",
	})

	first := e.createEntry(t, models.CreateJournalEntryRequest{
		Date: "2025-04-10",
		Lines: []models.JournalLineRequest{
			line(cash.ID, "1000", ""),
			line(sales.ID, "", "1000"),
		},
	})
	e.postEntry(t, first.ID)

	second := e.createEntry(t, models.CreateJournalEntryRequest{
		Date: "2025-04-20",
		Lines: []models.JournalLineRequest{
			line(cash.ID, "250", ""),
			line(sales.ID, "", "250"),
		},
	})
	e.postEntry(t, second.ID)

	resp, err := e.accounts.GetLedger(context.Background(), cash.ID, "", "")
	if err != nil {
		t.Fatalf("get ledger: %v", err)
	}
	rows := resp.Data.Rows
	if len(rows) != 2 {
		t.Fatalf("expected 2 ledger rows, got %d", len(rows))
	}
	if rows[0].RunningBalance != "1000.00" {
		t.Errorf("expected first running balance 1000.00, got %s", rows[0].RunningBalance)
	}
	if rows[1].RunningBalance != "1250.00" {
		t.Errorf("expected second running balance 1250.00, got %s", rows[1].RunningBalance)
	}
}

func TestChartOfAccountsServiceListByProjectCode(t *testing.T) {
	e := newEnv(t)

	e.createAccount(t, models.CreateAccountRequest{
		Code: "1001", Name: "Cash", Type: "asset", ProjectCodes: []string{"PRJ-7"},
	})
	e.createAccount(t, models.CreateAccountRequest{
		Code: "1002", Name: "Bank", Type: "asset",
	})

	resp, err := e.accounts.GetByProjectCode(context.Background(), "PRJ-7")
	if err != nil {
		t.Fatalf("get by project code: %v", err)
	}
	accounts := *resp.Data
	if len(accounts) != 1 || accounts[0].Code != "1001" {
		t.Errorf("expected only account 1001 tagged PRJ-7, got %+v", accounts)
	}
}

func TestChartOfAccountsServiceInactiveAccountRejectedInEntry(t *testing.T) {
	e := newEnv(t)
	e.createFiscalYear(t, "2025-26", "2025-04-01", "2026-03-31")

	cash := e.createAccount(t, models.CreateAccountRequest{
		Code: "1001", Name: "Cash", Type: "asset", SubType: "Cash",
	})
	sales := e.createAccount(t, models.CreateAccountRequest{
		Code: "4001", Name: "Sales", Type: "income",
	})

	inactive := false
	if _, err := e.accounts.UpdateAccount(context.Background(), "tester", sales.ID, models.UpdateAccountRequest{
		Active: &inactive,
	}); err != nil {
		t.Fatalf("deactivate account: %v", err)
	}

	_, err := e.journal.CreateEntry(context.Background(), "tester", models.CreateJournalEntryRequest{
		Date: "2025-06-15",
		Lines: []models.JournalLineRequest{
			line(cash.ID, "100", ""),
			line(sales.ID, "", "100"),
		},
	})
	if err == nil {
		t.Fatal("expected validation error for inactive account")
	}
}
