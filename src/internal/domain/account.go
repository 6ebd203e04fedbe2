package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type AccountType string

const (
	AccountTypeAsset     AccountType = "asset"
	AccountTypeLiability AccountType = "liability"
	AccountTypeEquity    AccountType = "equity"
	AccountTypeIncome    AccountType = "income"
	AccountTypeExpense   AccountType = "expense"
)

func (t AccountType) Valid() bool {
	switch t {
	case AccountTypeAsset, AccountTypeLiability, AccountTypeEquity, AccountTypeIncome, AccountTypeExpense:
		return true
	}
	return false
}

// IncreasesOnDebit reports the natural balance side: asset and expense
// accounts grow on the debit side, the rest grow on the credit side.
func (t AccountType) IncreasesOnDebit() bool {
	return t == AccountTypeAsset || t == AccountTypeExpense
}

// SignedDelta folds a debit/credit pair into the account's natural sign.
func (t AccountType) SignedDelta(debit, credit decimal.Decimal) decimal.Decimal {
	if t.IncreasesOnDebit() {
		return debit.Sub(credit)
	}
	return credit.Sub(debit)
}

type Account struct {
	ID             string
	Code           string
	Name           string
	Type           AccountType
	SubType        string
	Category       string
	ParentID       string
	Level          int
	OpeningBalance decimal.Decimal
	Balance        decimal.Decimal
	Currency       string
	TaxCode        string
	ProjectCodes   []string
	Description    string
	Active         bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// AccountNode is one node of the chart-of-accounts tree.
type AccountNode struct {
	Account  Account
	Children []*AccountNode
}

// BuildAccountTree assembles the parent-to-children hierarchy in a single
// pass over the flat account list. Accounts whose parent is missing from the
// input are treated as roots.
func BuildAccountTree(accounts []Account) []*AccountNode {
	index := make(map[string]*AccountNode, len(accounts))
	for i := range accounts {
		index[accounts[i].ID] = &AccountNode{Account: accounts[i]}
	}

	roots := make([]*AccountNode, 0)
	for i := range accounts {
		node := index[accounts[i].ID]
		if accounts[i].ParentID == "" {
			roots = append(roots, node)
			continue
		}
		parent, ok := index[accounts[i].ParentID]
		if !ok {
			roots = append(roots, node)
			continue
		}
		parent.Children = append(parent.Children, node)
	}

	return roots
}

type AccountBalance struct {
	AccountID string
	Balance   decimal.Decimal
}
