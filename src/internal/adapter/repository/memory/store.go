// Package memory implements the domain repositories over an in-process
// store. One RWMutex guards the whole dataset: postings take the write lock,
// report reads take the read lock, so a reader never observes a partially
// posted entry.
package memory

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/PrinceDayani/RayERP-sub004/src/internal/domain"
)

type Store struct {
	mu sync.RWMutex

	accounts    map[string]domain.Account
	costCenters map[string]domain.CostCenter
	entries     map[string]domain.JournalEntry
	ledgerRows  []domain.LedgerRow
	wipRows     []domain.WIPLedgerRow
	subsidiary  []domain.SubsidiaryEntry
	fiscalYears map[string]domain.FiscalYear

	entrySeq  int64
	ledgerSeq int64

	now func() time.Time
}

func NewStore() *Store {
	return &Store{
		accounts:    make(map[string]domain.Account),
		costCenters: make(map[string]domain.CostCenter),
		entries:     make(map[string]domain.JournalEntry),
		fiscalYears: make(map[string]domain.FiscalYear),
		now:         time.Now,
	}
}

func (s *Store) Accounts() *AccountRepository {
	return &AccountRepository{store: s}
}

func (s *Store) CostCenters() *CostCenterRepository {
	return &CostCenterRepository{store: s}
}

func (s *Store) Journal() *JournalRepository {
	return &JournalRepository{store: s}
}

func (s *Store) Ledger() *LedgerRepository {
	return &LedgerRepository{store: s}
}

func (s *Store) FiscalYears() *FiscalYearRepository {
	return &FiscalYearRepository{store: s}
}

func (s *Store) Subsidiary() *SubsidiaryRepository {
	return &SubsidiaryRepository{store: s}
}

func (s *Store) WIP() *WIPRepository {
	return &WIPRepository{store: s}
}

func newID() string {
	return uuid.NewString()
}
