package services_test

import (
	"context"
	"strings"
	"sync"
	"testing"

	"github.com/PrinceDayani/RayERP-sub004/src/internal/domain"
	"github.com/PrinceDayani/RayERP-sub004/src/internal/usecase/models"
)

func TestJournalServicePostUpdatesBothSides(t *testing.T) {
	e := newEnv(t)
	e.createFiscalYear(t, "2025-26", "2025-04-01", "2026-03-31")

	cash := e.createAccount(t, models.CreateAccountRequest{
		Code: "1001", Name: "Cash", Type: "asset", SubType: "Cash",
	})
	sales := e.createAccount(t, models.CreateAccountRequest{
		Code: "4001", Name: "Sales", Type: "income",
	})

	entry := e.createEntry(t, models.CreateJournalEntryRequest{
		Date:        "2025-06-15",
		Description: "cash sale",
		Lines: []models.JournalLineRequest{
			line(cash.ID, "1000", ""),
			line(sales.ID, "", "1000"),
		},
	})
	if entry.Status != "DRAFT" {
		t.Fatalf("expected DRAFT status, got %s", entry.Status)
	}
	if !strings.HasPrefix(entry.EntryNumber, "JE") {
		t.Fatalf("expected JE-prefixed entry number, got %s", entry.EntryNumber)
	}

	posted := e.postEntry(t, entry.ID)
	if posted.PostedLineCount != 2 {
		t.Fatalf("expected 2 posted lines, got %d", posted.PostedLineCount)
	}

	balances := map[string]string{}
	for _, balance := range posted.UpdatedBalances {
		balances[balance.AccountID] = balance.Balance
	}
	if balances[cash.ID] != "1000.00" {
		t.Errorf("expected cash balance 1000.00, got %s", balances[cash.ID])
	}
	if balances[sales.ID] != "1000.00" {
		t.Errorf("expected sales balance 1000.00, got %s", balances[sales.ID])
	}
}

func TestJournalServiceUnbalancedEntryRejectedWithoutSideEffects(t *testing.T) {
	e := newEnv(t)
	e.createFiscalYear(t, "2025-26", "2025-04-01", "2026-03-31")

	cash := e.createAccount(t, models.CreateAccountRequest{
		Code: "1001", Name: "Cash", Type: "asset", SubType: "Cash",
	})
	sales := e.createAccount(t, models.CreateAccountRequest{
		Code: "4001", Name: "Sales", Type: "income",
	})

	_, err := e.journal.CreateEntry(context.Background(), "tester", models.CreateJournalEntryRequest{
		Date: "2025-06-15",
		Lines: []models.JournalLineRequest{
			line(cash.ID, "1000", ""),
			line(sales.ID, "", "900"),
		},
	})
	if err == nil {
		t.Fatal("expected validation error for unbalanced entry")
	}
	if !strings.Contains(err.Error(), "unbalanced") {
		t.Fatalf("expected unbalanced validation message, got %v", err)
	}

	balance, err := e.accounts.GetBalance(context.Background(), cash.ID, "", "")
	if err != nil {
		t.Fatalf("get balance: %v", err)
	}
	if balance.Data.ClosingBalance != "0.00" {
		t.Errorf("expected untouched cash balance 0.00, got %s", balance.Data.ClosingBalance)
	}
}

func TestJournalServiceRepostRejected(t *testing.T) {
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
			line(cash.ID, "500", ""),
			line(sales.ID, "", "500"),
		},
	})
	e.postEntry(t, entry.ID)

	if _, err := e.journal.PostEntry(context.Background(), "tester", entry.ID); err != domain.ErrEntryPosted {
		t.Fatalf("expected ErrEntryPosted on re-post, got %v", err)
	}

	balance, err := e.accounts.GetBalance(context.Background(), cash.ID, "", "")
	if err != nil {
		t.Fatalf("get balance: %v", err)
	}
	if balance.Data.ClosingBalance != "500.00" {
		t.Errorf("expected cash balance 500.00 after single post, got %s", balance.Data.ClosingBalance)
	}
}

func TestJournalServiceUpdateAndDeleteDraftOnly(t *testing.T) {
	e := newEnv(t)
	e.createFiscalYear(t, "2025-26", "2025-04-01", "2026-03-31")

	cash := e.createAccount(t, models.CreateAccountRequest{
		Code: "1001", Name: "Cash", Type: "asset", SubType: "Cash",
	})
	sales := e.createAccount(t, models.CreateAccountRequest{
		Code: "4001", Name: "Sales", Type: "income",
	})

	req := models.CreateJournalEntryRequest{
		Date: "2025-06-15",
		Lines: []models.JournalLineRequest{
			line(cash.ID, "500", ""),
			line(sales.ID, "", "500"),
		},
	}
	entry := e.createEntry(t, req)
	e.postEntry(t, entry.ID)

	if _, err := e.journal.UpdateEntry(context.Background(), "tester", entry.ID, req); err != domain.ErrEntryPosted {
		t.Errorf("expected ErrEntryPosted on update of posted entry, got %v", err)
	}
	if _, err := e.journal.DeleteEntry(context.Background(), "tester", entry.ID); err != domain.ErrEntryPosted {
		t.Errorf("expected ErrEntryPosted on delete of posted entry, got %v", err)
	}
}

func TestJournalServiceConcurrentPostingsSerializeOnOneAccount(t *testing.T) {
	e := newEnv(t)
	e.createFiscalYear(t, "2025-26", "2025-04-01", "2026-03-31")

	cash := e.createAccount(t, models.CreateAccountRequest{
		Code: "1001", Name: "Cash", Type: "asset", SubType: "Cash",
	})
	sales := e.createAccount(t, models.CreateAccountRequest{
		Code: "4001", Name: "Sales", Type: "income",
	})

	const postings = 20
	ids := make([]string, 0, postings)
	for i := 0; i < postings; i++ {
		entry := e.createEntry(t, models.CreateJournalEntryRequest{
			Date: "2025-06-15",
			Lines: []models.JournalLineRequest{
				line(cash.ID, "100", ""),
				line(sales.ID, "", "100"),
			},
		})
		ids = append(ids, entry.ID)
	}

	var wg sync.WaitGroup
	errs := make(chan error, postings)
	for _, id := range ids {
		wg.Add(1)
		go func(id string) {
			defer wg.Done()
			if _, err := e.journal.PostEntry(context.Background(), "tester", id); err != nil {
				errs <- err
			}
		}(id)
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Fatalf("concurrent post: %v", err)
	}

	balance, err := e.accounts.GetBalance(context.Background(), cash.ID, "", "")
	if err != nil {
		t.Fatalf("get balance: %v", err)
	}
	if balance.Data.ClosingBalance != "2000.00" {
		t.Errorf("expected cash balance 2000.00 after %d postings, got %s", postings, balance.Data.ClosingBalance)
	}

	ledger, err := e.accounts.GetLedger(context.Background(), cash.ID, "", "")
	if err != nil {
		t.Fatalf("get ledger: %v", err)
	}
	if len(ledger.Data.Rows) != postings {
		t.Fatalf("expected %d ledger rows, got %d", postings, len(ledger.Data.Rows))
	}
	previous := dec(t, "0")
	for i, row := range ledger.Data.Rows {
		delta := dec(t, row.Debit).Sub(dec(t, row.Credit))
		want := previous.Add(delta)
		running := dec(t, row.RunningBalance)
		if !running.Equal(want) {
			t.Fatalf("row %d: running balance %s, expected %s", i, row.RunningBalance, want.StringFixed(2))
		}
		previous = running
	}
}

func TestJournalServiceReverseFlipsLinesAndMarksSource(t *testing.T) {
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
			line(cash.ID, "750", ""),
			line(sales.ID, "", "750"),
		},
	})
	e.postEntry(t, entry.ID)

	resp, err := e.journal.ReverseEntry(context.Background(), "tester", entry.ID, "2025-06-20")
	if err != nil {
		t.Fatalf("reverse entry: %v", err)
	}
	if resp.Data.ReversalEntryID == "" {
		t.Fatal("expected reversal entry id")
	}

	source, err := e.journal.GetEntry(context.Background(), entry.ID)
	if err != nil {
		t.Fatalf("get source entry: %v", err)
	}
	if source.Data.Status != "REVERSED" {
		t.Errorf("expected source status REVERSED, got %s", source.Data.Status)
	}
	if source.Data.ReversalEntryID != resp.Data.ReversalEntryID {
		t.Errorf("expected source to reference reversal entry")
	}

	balance, err := e.accounts.GetBalance(context.Background(), cash.ID, "", "")
	if err != nil {
		t.Fatalf("get balance: %v", err)
	}
	if balance.Data.ClosingBalance != "0.00" {
		t.Errorf("expected cash balance back to 0.00, got %s", balance.Data.ClosingBalance)
	}
}

func TestJournalServiceFailedReversalLeavesNoDraft(t *testing.T) {
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
			line(cash.ID, "750", ""),
			line(sales.ID, "", "750"),
		},
	})
	e.postEntry(t, entry.ID)

	// A reversal dated outside any fiscal year fails at posting time.
	_, err := e.journal.ReverseEntry(context.Background(), "tester", entry.ID, "2027-06-20")
	if err == nil {
		t.Fatal("expected error for reversal date outside any fiscal year")
	}

	source, err := e.journal.GetEntry(context.Background(), entry.ID)
	if err != nil {
		t.Fatalf("get source entry: %v", err)
	}
	if source.Data.Status != "POSTED" {
		t.Errorf("expected source to stay POSTED, got %s", source.Data.Status)
	}

	drafts, err := e.journal.ListEntries(context.Background(), models.ListJournalEntriesRequest{Status: "DRAFT"})
	if err != nil {
		t.Fatalf("list draft entries: %v", err)
	}
	if len(*drafts.Data) != 0 {
		t.Errorf("expected no orphan draft after failed reversal, got %d", len(*drafts.Data))
	}
}

func TestJournalServiceRejectsDateOutsideOpenYear(t *testing.T) {
	e := newEnv(t)
	e.createFiscalYear(t, "2025-26", "2025-04-01", "2026-03-31")

	cash := e.createAccount(t, models.CreateAccountRequest{
		Code: "1001", Name: "Cash", Type: "asset", SubType: "Cash",
	})
	sales := e.createAccount(t, models.CreateAccountRequest{
		Code: "4001", Name: "Sales", Type: "income",
	})

	_, err := e.journal.CreateEntry(context.Background(), "tester", models.CreateJournalEntryRequest{
		Date: "2024-06-15",
		Lines: []models.JournalLineRequest{
			line(cash.ID, "100", ""),
			line(sales.ID, "", "100"),
		},
	})
	if err == nil {
		t.Fatal("expected validation error for date outside any fiscal year")
	}
}

func TestJournalServiceBulkPostTallies(t *testing.T) {
	e := newEnv(t)
	e.createFiscalYear(t, "2025-26", "2025-04-01", "2026-03-31")

	cash := e.createAccount(t, models.CreateAccountRequest{
		Code: "1001", Name: "Cash", Type: "asset", SubType: "Cash",
	})
	sales := e.createAccount(t, models.CreateAccountRequest{
		Code: "4001", Name: "Sales", Type: "income",
	})

	first := e.createEntry(t, models.CreateJournalEntryRequest{
		Date: "2025-06-15",
		Lines: []models.JournalLineRequest{
			line(cash.ID, "100", ""),
			line(sales.ID, "", "100"),
		},
	})
	second := e.createEntry(t, models.CreateJournalEntryRequest{
		Date: "2025-06-16",
		Lines: []models.JournalLineRequest{
			line(cash.ID, "200", ""),
			line(sales.ID, "", "200"),
		},
	})
	e.postEntry(t, second.ID)

	resp, err := e.journal.BulkPost(context.Background(), "tester", []string{first.ID, second.ID, "missing-id"})
	if err != nil {
		t.Fatalf("bulk post: %v", err)
	}
	if resp.Data.Posted != 1 {
		t.Errorf("expected 1 posted, got %d", resp.Data.Posted)
	}
	if resp.Data.Failed != 2 {
		t.Errorf("expected 2 failed, got %d", resp.Data.Failed)
	}
	if len(resp.Data.Results) != 3 {
		t.Fatalf("expected 3 results, got %d", len(resp.Data.Results))
	}
}
