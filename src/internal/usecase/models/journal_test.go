package models_test

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/PrinceDayani/RayERP-sub004/src/internal/usecase/models"
)

func TestCreateJournalEntryRequestValidate(t *testing.T) {
	valid := models.CreateJournalEntryRequest{
		Date: "2025-06-15",
		Lines: []models.JournalLineRequest{
			{AccountID: "a", Debit: decimal.NewFromInt(100)},
			{AccountID: "b", Credit: decimal.NewFromInt(100)},
		},
	}
	if err := valid.Validate(); err != nil {
		t.Fatalf("expected valid request, got %v", err)
	}

	cases := []struct {
		name    string
		mutate  func(*models.CreateJournalEntryRequest)
		message string
	}{
		{
			name:    "missing date",
			mutate:  func(r *models.CreateJournalEntryRequest) { r.Date = "" },
			message: "date is required",
		},
		{
			name:    "bad date format",
			mutate:  func(r *models.CreateJournalEntryRequest) { r.Date = "15/06/2025" },
			message: "date must be YYYY-MM-DD",
		},
		{
			name:    "single line",
			mutate:  func(r *models.CreateJournalEntryRequest) { r.Lines = r.Lines[:1] },
			message: "at least 2 lines",
		},
		{
			name: "both sides set",
			mutate: func(r *models.CreateJournalEntryRequest) {
				r.Lines[0].Credit = decimal.NewFromInt(50)
			},
			message: "exactly one of debit or credit",
		},
		{
			name: "cost head without project",
			mutate: func(r *models.CreateJournalEntryRequest) {
				r.Lines[0].CostHead = "material"
			},
			message: "costHead requires projectId",
		},
		{
			name: "party type without party id",
			mutate: func(r *models.CreateJournalEntryRequest) {
				r.Lines[0].PartyType = "vendor"
			},
			message: "partyType requires partyId",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := valid
			req.Lines = append([]models.JournalLineRequest(nil), valid.Lines...)
			tc.mutate(&req)

			err := req.Validate()
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(err.Error(), tc.message) {
				t.Fatalf("expected message containing %q, got %q", tc.message, err.Error())
			}
		})
	}
}
