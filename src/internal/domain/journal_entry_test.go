package domain_test

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/PrinceDayani/RayERP-sub004/src/internal/domain"
)

func TestJournalEntryBalancedWithinTolerance(t *testing.T) {
	tolerance := decimal.RequireFromString("0.01")

	entry := domain.JournalEntry{
		Lines: []domain.JournalLine{
			{Debit: decimal.RequireFromString("100.00")},
			{Credit: decimal.RequireFromString("99.995")},
		},
	}
	if !entry.Balanced(tolerance) {
		t.Error("expected entry within tolerance to be balanced")
	}

	entry.Lines[1].Credit = decimal.RequireFromString("99.90")
	if entry.Balanced(tolerance) {
		t.Error("expected entry outside tolerance to be unbalanced")
	}
}

func TestCostHeadValid(t *testing.T) {
	if !domain.CostHeadSubcontractor.Valid() {
		t.Error("expected subcontractor to be a valid cost head")
	}
	if domain.CostHead("travel").Valid() {
		t.Error("expected unknown cost head to be invalid")
	}
}
