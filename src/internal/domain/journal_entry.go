package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type JournalStatus string

const (
	JournalStatusDraft    JournalStatus = "DRAFT"
	JournalStatusPosted   JournalStatus = "POSTED"
	JournalStatusReversed JournalStatus = "REVERSED"
)

type PartyType string

const (
	PartyTypeVendor   PartyType = "vendor"
	PartyTypeCustomer PartyType = "customer"
	PartyTypeEmployee PartyType = "employee"
)

type CostHead string

const (
	CostHeadMaterial      CostHead = "material"
	CostHeadLabour        CostHead = "labour"
	CostHeadEquipment     CostHead = "equipment"
	CostHeadSubcontractor CostHead = "subcontractor"
	CostHeadOverhead      CostHead = "overhead"
)

func (h CostHead) Valid() bool {
	switch h {
	case CostHeadMaterial, CostHeadLabour, CostHeadEquipment, CostHeadSubcontractor, CostHeadOverhead:
		return true
	}
	return false
}

type JournalLine struct {
	AccountID    string
	Debit        decimal.Decimal
	Credit       decimal.Decimal
	Description  string
	CostCenterID string
	ProjectID    string
	CostHead     CostHead
	PartyType    PartyType
	PartyID      string
	DueDate      *time.Time
}

type JournalEntry struct {
	ID              string
	EntryNumber     string
	Date            time.Time
	Reference       string
	Description     string
	Status          JournalStatus
	ProjectID       string
	Lines           []JournalLine
	CreatedBy       string
	PostedBy        string
	PostedAt        *time.Time
	ReversedBy      string
	ReversalEntryID string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func (e JournalEntry) TotalDebit() decimal.Decimal {
	total := decimal.Zero
	for _, line := range e.Lines {
		total = total.Add(line.Debit)
	}
	return total
}

func (e JournalEntry) TotalCredit() decimal.Decimal {
	total := decimal.Zero
	for _, line := range e.Lines {
		total = total.Add(line.Credit)
	}
	return total
}

// Balanced reports whether debits equal credits within the tolerance.
func (e JournalEntry) Balanced(tolerance decimal.Decimal) bool {
	return e.TotalDebit().Sub(e.TotalCredit()).Abs().LessThanOrEqual(tolerance)
}

type JournalFilter struct {
	Status    JournalStatus
	ProjectID string
	FromDate  *time.Time
	ToDate    *time.Time
	Limit     int
	Offset    int
}
