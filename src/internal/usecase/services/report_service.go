package services

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/PrinceDayani/RayERP-sub004/src/internal/commons"
	"github.com/PrinceDayani/RayERP-sub004/src/internal/domain"
	"github.com/PrinceDayani/RayERP-sub004/src/internal/logger"
	"github.com/PrinceDayani/RayERP-sub004/src/internal/usecase/models"
)

// ReportService reads posted ledger data only. Reports never mutate state, so
// every aggregation runs against a consistent snapshot of the store.
type ReportService struct {
	accountRepo    domain.AccountRepository
	ledgerRepo     domain.LedgerRepository
	subsidiaryRepo domain.SubsidiaryRepository
	wipRepo        domain.WIPRepository
	costCenterRepo domain.CostCenterRepository
	tolerance      decimal.Decimal
}

func NewReportService(
	accountRepo domain.AccountRepository,
	ledgerRepo domain.LedgerRepository,
	subsidiaryRepo domain.SubsidiaryRepository,
	wipRepo domain.WIPRepository,
	costCenterRepo domain.CostCenterRepository,
	tolerance decimal.Decimal,
) *ReportService {
	if tolerance.IsZero() {
		tolerance = decimal.RequireFromString("0.01")
	}
	return &ReportService{
		accountRepo:    accountRepo,
		ledgerRepo:     ledgerRepo,
		subsidiaryRepo: subsidiaryRepo,
		wipRepo:        wipRepo,
		costCenterRepo: costCenterRepo,
		tolerance:      tolerance,
	}
}

// Generate dispatches the tagged request to the matching aggregation.
func (s *ReportService) Generate(ctx context.Context, req models.ReportRequest) (commons.Response[models.Report], error) {
	logger.Info("report generate request", logger.Fields{"kind": req.Kind})

	if err := req.Validate(); err != nil {
		logger.Error("report generate validation failed", err, logger.Fields{"kind": req.Kind})
		return commons.ErrorResponse[models.Report]("validation failed", err.Error()), err
	}

	from, err := models.ParseOptionalDate(req.FromDate)
	if err != nil {
		return commons.ErrorResponse[models.Report]("validation failed", err.Error()), err
	}
	to, err := models.ParseOptionalDate(req.ToDate)
	if err != nil {
		return commons.ErrorResponse[models.Report]("validation failed", err.Error()), err
	}
	asOf, err := models.ParseOptionalDate(req.AsOfDate)
	if err != nil {
		return commons.ErrorResponse[models.Report]("validation failed", err.Error()), err
	}

	projectID := strings.TrimSpace(req.ProjectID)
	report := models.Report{Kind: req.Kind}
	switch req.Kind {
	case models.ReportTrialBalance:
		report.TrialBalance, err = s.trialBalance(ctx, from, to, projectID)
	case models.ReportBalanceSheet:
		report.BalanceSheet, err = s.balanceSheet(ctx, *asOf, projectID)
	case models.ReportProfitLoss:
		report.ProfitLoss, err = s.profitLoss(ctx, *from, *to, projectID)
	case models.ReportCashFlow:
		report.CashFlow, err = s.cashFlow(ctx, *from, *to, projectID)
	case models.ReportAging:
		report.Aging, err = s.aging(ctx, domain.PartyType(strings.ToLower(strings.TrimSpace(req.PartyType))), *asOf)
	case models.ReportProjectCost:
		report.ProjectCost, err = s.projectCost(ctx, projectID, from, to)
	}
	if err != nil {
		logger.Error("report generate aggregation failed", err, logger.Fields{"kind": req.Kind})
		return commons.ErrorResponse[models.Report]("failed to generate report", "Unable to generate report right now"), err
	}

	logger.Info("report generate success", logger.Fields{"kind": req.Kind})
	return commons.SuccessResponse("report generated successfully", report), nil
}

func (s *ReportService) trialBalance(ctx context.Context, from, to *time.Time, projectID string) (*models.TrialBalanceResponse, error) {
	accounts, err := s.accountRepo.List(ctx, true)
	if err != nil {
		return nil, err
	}
	rows, err := s.ledgerRepo.Rows(ctx, domain.LedgerFilter{ProjectID: projectID})
	if err != nil {
		return nil, err
	}

	type accumulator struct {
		debit   decimal.Decimal
		credit  decimal.Decimal
		closing decimal.Decimal
	}
	index := indexAccounts(accounts)
	byAccount := make(map[string]*accumulator, len(accounts))
	for _, account := range accounts {
		byAccount[account.ID] = &accumulator{closing: account.OpeningBalance}
	}

	for _, row := range rows {
		acc, ok := byAccount[row.AccountID]
		if !ok {
			continue
		}
		delta := index[row.AccountID].Type.SignedDelta(row.Debit, row.Credit)
		if to != nil && row.Date.After(*to) {
			continue
		}
		acc.closing = acc.closing.Add(delta)
		if from != nil && row.Date.Before(*from) {
			continue
		}
		acc.debit = acc.debit.Add(row.Debit)
		acc.credit = acc.credit.Add(row.Credit)
	}

	out := &models.TrialBalanceResponse{Rows: make([]models.TrialBalanceRow, 0, len(accounts))}
	totalDebit := decimal.Zero
	totalCredit := decimal.Zero
	for _, account := range accounts {
		acc := byAccount[account.ID]
		if acc.debit.IsZero() && acc.credit.IsZero() && acc.closing.IsZero() {
			continue
		}
		out.Rows = append(out.Rows, models.TrialBalanceRow{
			AccountID:      account.ID,
			Code:           account.Code,
			Name:           account.Name,
			Type:           string(account.Type),
			TotalDebit:     money(acc.debit),
			TotalCredit:    money(acc.credit),
			ClosingBalance: money(acc.closing),
		})
		totalDebit = totalDebit.Add(acc.debit)
		totalCredit = totalCredit.Add(acc.credit)
	}
	sort.Slice(out.Rows, func(i, j int) bool { return out.Rows[i].Code < out.Rows[j].Code })

	out.TotalDebit = money(totalDebit)
	out.TotalCredit = money(totalCredit)
	out.Balanced = totalDebit.Sub(totalCredit).Abs().LessThanOrEqual(s.tolerance)
	if from != nil {
		out.FromDate = models.FormatDate(*from)
	}
	if to != nil {
		out.ToDate = models.FormatDate(*to)
	}
	return out, nil
}

// balanceSheet folds balances as of the cut-off date. Current period income
// and expense net into a synthetic equity line so the accounting equation
// holds before any year close.
func (s *ReportService) balanceSheet(ctx context.Context, asOf time.Time, projectID string) (*models.BalanceSheetResponse, error) {
	accounts, err := s.accountRepo.List(ctx, true)
	if err != nil {
		return nil, err
	}
	rows, err := s.ledgerRepo.Rows(ctx, domain.LedgerFilter{ToDate: &asOf, ProjectID: projectID})
	if err != nil {
		return nil, err
	}

	index := indexAccounts(accounts)
	balances := make(map[string]decimal.Decimal, len(accounts))
	for _, account := range accounts {
		balances[account.ID] = account.OpeningBalance
	}
	for _, row := range rows {
		account, ok := index[row.AccountID]
		if !ok {
			continue
		}
		balances[row.AccountID] = balances[row.AccountID].Add(account.Type.SignedDelta(row.Debit, row.Credit))
	}

	section := func(accountType domain.AccountType) ([]models.BalanceSheetLine, decimal.Decimal) {
		lines := make([]models.BalanceSheetLine, 0)
		total := decimal.Zero
		for _, account := range accounts {
			if account.Type != accountType {
				continue
			}
			balance := balances[account.ID]
			if balance.IsZero() {
				continue
			}
			lines = append(lines, models.BalanceSheetLine{
				AccountID: account.ID,
				Code:      account.Code,
				Name:      account.Name,
				Balance:   money(balance),
			})
			total = total.Add(balance)
		}
		sort.Slice(lines, func(i, j int) bool { return lines[i].Code < lines[j].Code })
		return lines, total
	}

	var (
		assets, liabilities, equity                []models.BalanceSheetLine
		totalAssets, totalLiabilities, totalEquity decimal.Decimal
		earnings                                   decimal.Decimal
	)
	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error {
		assets, totalAssets = section(domain.AccountTypeAsset)
		return nil
	})
	g.Go(func() error {
		liabilities, totalLiabilities = section(domain.AccountTypeLiability)
		return nil
	})
	g.Go(func() error {
		equity, totalEquity = section(domain.AccountTypeEquity)
		income := decimal.Zero
		expense := decimal.Zero
		for _, account := range accounts {
			switch account.Type {
			case domain.AccountTypeIncome:
				income = income.Add(balances[account.ID])
			case domain.AccountTypeExpense:
				expense = expense.Add(balances[account.ID])
			}
		}
		earnings = income.Sub(expense)
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if !earnings.IsZero() {
		equity = append(equity, models.BalanceSheetLine{
			Name:    "Current Period Earnings",
			Balance: money(earnings),
		})
		totalEquity = totalEquity.Add(earnings)
	}

	return &models.BalanceSheetResponse{
		AsOfDate:         models.FormatDate(asOf),
		Assets:           assets,
		Liabilities:      liabilities,
		Equity:           equity,
		TotalAssets:      money(totalAssets),
		TotalLiabilities: money(totalLiabilities),
		TotalEquity:      money(totalEquity),
		Balanced:         totalAssets.Sub(totalLiabilities.Add(totalEquity)).Abs().LessThanOrEqual(s.tolerance),
	}, nil
}

func (s *ReportService) profitLoss(ctx context.Context, from, to time.Time, projectID string) (*models.ProfitLossResponse, error) {
	accounts, err := s.accountRepo.List(ctx, true)
	if err != nil {
		return nil, err
	}
	rows, err := s.ledgerRepo.Rows(ctx, domain.LedgerFilter{FromDate: &from, ToDate: &to, ProjectID: projectID})
	if err != nil {
		return nil, err
	}

	index := indexAccounts(accounts)
	net := make(map[string]decimal.Decimal)
	for _, row := range rows {
		account, ok := index[row.AccountID]
		if !ok || (account.Type != domain.AccountTypeIncome && account.Type != domain.AccountTypeExpense) {
			continue
		}
		net[row.AccountID] = net[row.AccountID].Add(account.Type.SignedDelta(row.Debit, row.Credit))
	}

	out := &models.ProfitLossResponse{
		FromDate: models.FormatDate(from),
		ToDate:   models.FormatDate(to),
		Income:   make([]models.ProfitLossLine, 0),
		Expenses: make([]models.ProfitLossLine, 0),
	}
	totalIncome := decimal.Zero
	totalExpense := decimal.Zero
	for _, account := range accounts {
		amount, ok := net[account.ID]
		if !ok || amount.IsZero() {
			continue
		}
		line := models.ProfitLossLine{
			AccountID: account.ID,
			Code:      account.Code,
			Name:      account.Name,
			Net:       money(amount),
		}
		switch account.Type {
		case domain.AccountTypeIncome:
			out.Income = append(out.Income, line)
			totalIncome = totalIncome.Add(amount)
		case domain.AccountTypeExpense:
			out.Expenses = append(out.Expenses, line)
			totalExpense = totalExpense.Add(amount)
		}
	}
	sort.Slice(out.Income, func(i, j int) bool { return out.Income[i].Code < out.Income[j].Code })
	sort.Slice(out.Expenses, func(i, j int) bool { return out.Expenses[i].Code < out.Expenses[j].Code })

	out.TotalIncome = money(totalIncome)
	out.TotalExpense = money(totalExpense)
	out.NetProfit = money(totalIncome.Sub(totalExpense))
	return out, nil
}

// cashFlow buckets every ledger row by its own account: cash and bank
// accounts are operating, other assets are investing, liabilities and equity
// are financing, everything else is operating. An explicit
// investing/financing category on the account wins over the type rule. Credit
// is inflow, debit is outflow.
func (s *ReportService) cashFlow(ctx context.Context, from, to time.Time, projectID string) (*models.CashFlowResponse, error) {
	accounts, err := s.accountRepo.List(ctx, true)
	if err != nil {
		return nil, err
	}
	rows, err := s.ledgerRepo.Rows(ctx, domain.LedgerFilter{FromDate: &from, ToDate: &to, ProjectID: projectID})
	if err != nil {
		return nil, err
	}

	type bucket struct{ inflow, outflow decimal.Decimal }
	buckets := map[string]*bucket{
		"operating": {},
		"investing": {},
		"financing": {},
	}

	index := indexAccounts(accounts)
	for _, row := range rows {
		account, ok := index[row.AccountID]
		if !ok {
			continue
		}
		b := buckets[classifyCashFlow(account)]
		b.inflow = b.inflow.Add(row.Credit)
		b.outflow = b.outflow.Add(row.Debit)
	}

	toBucket := func(b *bucket) models.CashFlowBucket {
		return models.CashFlowBucket{
			Inflow:  money(b.inflow),
			Outflow: money(b.outflow),
			Net:     money(b.inflow.Sub(b.outflow)),
		}
	}
	net := decimal.Zero
	for _, b := range buckets {
		net = net.Add(b.inflow.Sub(b.outflow))
	}

	return &models.CashFlowResponse{
		FromDate:    models.FormatDate(from),
		ToDate:      models.FormatDate(to),
		Operating:   toBucket(buckets["operating"]),
		Investing:   toBucket(buckets["investing"]),
		Financing:   toBucket(buckets["financing"]),
		NetCashFlow: money(net),
	}, nil
}

func (s *ReportService) aging(ctx context.Context, partyType domain.PartyType, asOf time.Time) (*models.AgingResponse, error) {
	entries, err := s.subsidiaryRepo.ListOutstanding(ctx, partyType, asOf)
	if err != nil {
		return nil, err
	}

	type rowAcc struct {
		buckets [5]decimal.Decimal
		total   decimal.Decimal
	}
	byParty := make(map[string]*rowAcc)
	order := make([]string, 0)

	for _, entry := range entries {
		acc, ok := byParty[entry.PartyID]
		if !ok {
			acc = &rowAcc{}
			byParty[entry.PartyID] = acc
			order = append(order, entry.PartyID)
		}
		overdueDays := int(asOf.Sub(entry.DueDate).Hours() / 24)
		idx := 0
		switch {
		case overdueDays <= 30:
			idx = 0
		case overdueDays <= 60:
			idx = 1
		case overdueDays <= 90:
			idx = 2
		case overdueDays <= 120:
			idx = 3
		default:
			idx = 4
		}
		acc.buckets[idx] = acc.buckets[idx].Add(entry.Balance)
		acc.total = acc.total.Add(entry.Balance)
	}
	sort.Strings(order)

	out := &models.AgingResponse{
		PartyType: string(partyType),
		AsOfDate:  models.FormatDate(asOf),
		AgingData: make([]models.AgingRow, 0, len(order)),
	}
	totalOutstanding := decimal.Zero
	for _, partyID := range order {
		acc := byParty[partyID]
		out.AgingData = append(out.AgingData, models.AgingRow{
			PartyID:       partyID,
			Bucket0To30:   money(acc.buckets[0]),
			Bucket31To60:  money(acc.buckets[1]),
			Bucket61To90:  money(acc.buckets[2]),
			Bucket91To120: money(acc.buckets[3]),
			BucketOver120: money(acc.buckets[4]),
			Total:         money(acc.total),
		})
		totalOutstanding = totalOutstanding.Add(acc.total)
	}
	out.TotalOutstanding = money(totalOutstanding)
	return out, nil
}

func (s *ReportService) projectCost(ctx context.Context, projectID string, from, to *time.Time) (*models.ProjectCostResponse, error) {
	rows, err := s.wipRepo.List(ctx, projectID, from, to)
	if err != nil {
		return nil, err
	}

	type headAcc struct {
		amount     decimal.Decimal
		cumulative decimal.Decimal
	}
	byHead := make(map[domain.CostHead]*headAcc)
	order := make([]domain.CostHead, 0)
	totalCost := decimal.Zero

	for _, row := range rows {
		acc, ok := byHead[row.CostHead]
		if !ok {
			acc = &headAcc{}
			byHead[row.CostHead] = acc
			order = append(order, row.CostHead)
		}
		acc.amount = acc.amount.Add(row.Amount)
		acc.cumulative = row.CumulativeAmount
		totalCost = totalCost.Add(row.Amount)
	}
	sort.Slice(order, func(i, j int) bool { return order[i] < order[j] })

	out := &models.ProjectCostResponse{
		ProjectID:  projectID,
		CostByHead: make([]models.ProjectCostHeadRow, 0, len(order)),
		TotalCost:  money(totalCost),
	}
	for _, head := range order {
		acc := byHead[head]
		out.CostByHead = append(out.CostByHead, models.ProjectCostHeadRow{
			CostHead:   string(head),
			Amount:     money(acc.amount),
			Cumulative: money(acc.cumulative),
		})
	}

	budget := decimal.Zero
	committed := decimal.Zero
	centers, err := s.costCenterRepo.List(ctx, true)
	if err != nil {
		return nil, err
	}
	for _, center := range centers {
		if center.ProjectID == projectID {
			budget = budget.Add(center.Budget)
			committed = committed.Add(center.CommittedCost)
		}
	}
	out.Budget = money(budget)
	out.CommittedCost = money(committed)
	out.Variance = money(budget.Sub(totalCost).Sub(committed))
	return out, nil
}

func classifyCashFlow(account domain.Account) string {
	if isCashAccount(account) {
		return "operating"
	}
	if account.Category == "investing" || account.Category == "financing" {
		return account.Category
	}
	switch account.Type {
	case domain.AccountTypeAsset:
		return "investing"
	case domain.AccountTypeLiability, domain.AccountTypeEquity:
		return "financing"
	default:
		return "operating"
	}
}

func isCashAccount(account domain.Account) bool {
	if account.Type != domain.AccountTypeAsset {
		return false
	}
	subType := strings.ToLower(account.SubType)
	return subType == "cash" || subType == "bank"
}

func indexAccounts(accounts []domain.Account) map[string]domain.Account {
	index := make(map[string]domain.Account, len(accounts))
	for _, account := range accounts {
		index[account.ID] = account
	}
	return index
}
