package services_test

import (
	"context"
	"testing"

	"github.com/PrinceDayani/RayERP-sub004/src/internal/domain"
	"github.com/PrinceDayani/RayERP-sub004/src/internal/usecase/models"
)

func TestFiscalYearServiceCloseCarriesForwardAndOpensNext(t *testing.T) {
	e := newEnv(t)
	year := e.createFiscalYear(t, "2025-26", "2025-04-01", "2026-03-31")

	cash := e.createAccount(t, models.CreateAccountRequest{
		Code: "1001", Name: "Cash", Type: "asset", SubType: "Cash",
	})
	sales := e.createAccount(t, models.CreateAccountRequest{
		Code: "4001", Name: "Sales", Type: "income",
	})

	entry := e.createEntry(t, models.CreateJournalEntryRequest{
		Date: "2025-09-30",
		Lines: []models.JournalLineRequest{
			line(cash.ID, "2500", ""),
			line(sales.ID, "", "2500"),
		},
	})
	e.postEntry(t, entry.ID)

	resp, err := e.fiscalYears.CloseYear(context.Background(), "cfo", year.ID)
	if err != nil {
		t.Fatalf("close fiscal year: %v", err)
	}

	closed := resp.Data.ClosedYear
	if closed.Status != "CLOSED" {
		t.Errorf("expected CLOSED status, got %s", closed.Status)
	}
	if closed.ClosedBy != "cfo" {
		t.Errorf("expected closedBy cfo, got %s", closed.ClosedBy)
	}
	if len(closed.OpeningBalances) != 2 {
		t.Fatalf("expected 2 carried-forward balances, got %d", len(closed.OpeningBalances))
	}

	next := resp.Data.NextYear
	if next.Status != "OPEN" {
		t.Errorf("expected next year OPEN, got %s", next.Status)
	}
	if next.StartDate != "2026-04-01" {
		t.Errorf("expected next year to start 2026-04-01, got %s", next.StartDate)
	}
	if next.EndDate != "2027-03-31" {
		t.Errorf("expected next year to end 2027-03-31, got %s", next.EndDate)
	}
	if len(next.OpeningBalances) != len(closed.OpeningBalances) {
		t.Errorf("expected next year to inherit carry-forward balances")
	}
}

func TestFiscalYearServiceDoubleCloseConflicts(t *testing.T) {
	e := newEnv(t)
	year := e.createFiscalYear(t, "2025-26", "2025-04-01", "2026-03-31")

	if _, err := e.fiscalYears.CloseYear(context.Background(), "cfo", year.ID); err != nil {
		t.Fatalf("first close: %v", err)
	}

	if _, err := e.fiscalYears.CloseYear(context.Background(), "cfo", year.ID); err != domain.ErrConflict {
		t.Fatalf("expected ErrConflict on second close, got %v", err)
	}
}

func TestFiscalYearServicePostingIntoClosedYearRejected(t *testing.T) {
	e := newEnv(t)
	year := e.createFiscalYear(t, "2024-25", "2024-04-01", "2025-03-31")

	cash := e.createAccount(t, models.CreateAccountRequest{
		Code: "1001", Name: "Cash", Type: "asset", SubType: "Cash",
	})
	sales := e.createAccount(t, models.CreateAccountRequest{
		Code: "4001", Name: "Sales", Type: "income",
	})

	entry := e.createEntry(t, models.CreateJournalEntryRequest{
		Date: "2024-09-30",
		Lines: []models.JournalLineRequest{
			line(cash.ID, "100", ""),
			line(sales.ID, "", "100"),
		},
	})

	if _, err := e.fiscalYears.CloseYear(context.Background(), "cfo", year.ID); err != nil {
		t.Fatalf("close fiscal year: %v", err)
	}

	if _, err := e.journal.PostEntry(context.Background(), "tester", entry.ID); err != domain.ErrYearClosed {
		t.Fatalf("expected ErrYearClosed when posting into closed year, got %v", err)
	}
}

func TestFiscalYearServiceOverlapRejected(t *testing.T) {
	e := newEnv(t)
	e.createFiscalYear(t, "2025-26", "2025-04-01", "2026-03-31")

	_, err := e.fiscalYears.CreateYear(context.Background(), "tester", models.CreateFiscalYearRequest{
		Year:      "2025-calendar",
		StartDate: "2025-01-01",
		EndDate:   "2025-12-31",
	})
	if err != domain.ErrConflict {
		t.Fatalf("expected ErrConflict for overlapping year, got %v", err)
	}
}
