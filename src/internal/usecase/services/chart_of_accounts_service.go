package services

import (
	"context"
	"errors"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/PrinceDayani/RayERP-sub004/src/internal/commons"
	"github.com/PrinceDayani/RayERP-sub004/src/internal/domain"
	"github.com/PrinceDayani/RayERP-sub004/src/internal/logger"
	"github.com/PrinceDayani/RayERP-sub004/src/internal/usecase/models"
)

type ChartOfAccountsService struct {
	accountRepo     domain.AccountRepository
	ledgerRepo      domain.LedgerRepository
	audit           domain.AuditSink
	defaultCurrency string
}

func NewChartOfAccountsService(
	accountRepo domain.AccountRepository,
	ledgerRepo domain.LedgerRepository,
	audit domain.AuditSink,
	defaultCurrency string,
) *ChartOfAccountsService {
	return &ChartOfAccountsService{
		accountRepo:     accountRepo,
		ledgerRepo:      ledgerRepo,
		audit:           audit,
		defaultCurrency: strings.ToUpper(strings.TrimSpace(defaultCurrency)),
	}
}

func (s *ChartOfAccountsService) CreateAccount(ctx context.Context, actor string, req models.CreateAccountRequest) (commons.Response[models.AccountResponse], error) {
	logger.Info("chart of accounts create account request", logger.Fields{
		"payload": logger.SanitizePayload(req),
	})

	if err := req.Validate(); err != nil {
		logger.Error("chart of accounts create account validation failed", err, nil)
		recordAudit(ctx, s.audit, actor, "account.create", "account", "", false, map[string]any{"code": req.Code})
		return commons.ErrorResponse[models.AccountResponse]("validation failed", err.Error()), err
	}

	code := strings.TrimSpace(req.Code)
	if _, err := s.accountRepo.GetByCode(ctx, code); err == nil {
		err := domain.ErrDuplicateCode
		recordAudit(ctx, s.audit, actor, "account.create", "account", "", false, map[string]any{"code": code})
		return commons.ErrorResponse[models.AccountResponse]("validation failed", "account code already exists"), err
	} else if !errors.Is(err, domain.ErrRecordNotFound) {
		logger.Error("chart of accounts create account code lookup failed", err, logger.Fields{"code": code})
		return commons.ErrorResponse[models.AccountResponse]("failed to create account", "Unable to create account right now"), err
	}

	level := 0
	parentID := strings.TrimSpace(req.ParentID)
	if parentID != "" {
		parent, err := s.accountRepo.GetByID(ctx, parentID)
		if err != nil {
			if errors.Is(err, domain.ErrRecordNotFound) {
				recordAudit(ctx, s.audit, actor, "account.create", "account", "", false, map[string]any{"code": code})
				return commons.ErrorResponse[models.AccountResponse]("validation failed", "parent account not found"), domain.ErrParentNotFound
			}
			logger.Error("chart of accounts create account parent lookup failed", err, logger.Fields{"parentId": parentID})
			return commons.ErrorResponse[models.AccountResponse]("failed to create account", "Unable to create account right now"), err
		}
		level = parent.Level + 1
	}

	currency := strings.ToUpper(strings.TrimSpace(req.Currency))
	if currency == "" {
		currency = s.defaultCurrency
	}

	account := domain.Account{
		Code:           code,
		Name:           strings.TrimSpace(req.Name),
		Type:           domain.AccountType(strings.ToLower(strings.TrimSpace(req.Type))),
		SubType:        strings.TrimSpace(req.SubType),
		Category:       strings.ToLower(strings.TrimSpace(req.Category)),
		ParentID:       parentID,
		Level:          level,
		OpeningBalance: req.OpeningBalance,
		Balance:        req.OpeningBalance,
		Currency:       currency,
		TaxCode:        strings.TrimSpace(req.TaxCode),
		ProjectCodes:   req.ProjectCodes,
		Description:    strings.TrimSpace(req.Description),
		Active:         true,
	}

	created, err := s.accountRepo.Create(ctx, account)
	if err != nil {
		logger.Error("chart of accounts create account repository failed", err, logger.Fields{"code": code})
		recordAudit(ctx, s.audit, actor, "account.create", "account", "", false, map[string]any{"code": code})
		if errors.Is(err, domain.ErrDuplicateCode) {
			return commons.ErrorResponse[models.AccountResponse]("validation failed", "account code already exists"), err
		}
		return commons.ErrorResponse[models.AccountResponse]("failed to create account", "Unable to create account right now"), err
	}

	recordAudit(ctx, s.audit, actor, "account.create", "account", created.ID, true, map[string]any{"code": created.Code})
	logger.Info("chart of accounts create account success", logger.Fields{
		"accountId": created.ID,
		"code":      created.Code,
		"level":     created.Level,
	})

	return commons.SuccessResponse("account created successfully", toAccountResponse(created)), nil
}

func (s *ChartOfAccountsService) UpdateAccount(ctx context.Context, actor, id string, req models.UpdateAccountRequest) (commons.Response[models.AccountResponse], error) {
	logger.Info("chart of accounts update account request", logger.Fields{"accountId": id})

	account, err := s.accountRepo.GetByID(ctx, strings.TrimSpace(id))
	if err != nil {
		recordAudit(ctx, s.audit, actor, "account.update", "account", id, false, nil)
		if errors.Is(err, domain.ErrRecordNotFound) {
			return commons.ErrorResponse[models.AccountResponse]("Account not found"), err
		}
		logger.Error("chart of accounts update account lookup failed", err, logger.Fields{"accountId": id})
		return commons.ErrorResponse[models.AccountResponse]("failed to update account", "Unable to update account right now"), err
	}

	if req.Name != nil {
		account.Name = strings.TrimSpace(*req.Name)
	}
	if req.SubType != nil {
		account.SubType = strings.TrimSpace(*req.SubType)
	}
	if req.Category != nil {
		account.Category = strings.ToLower(strings.TrimSpace(*req.Category))
	}
	if req.TaxCode != nil {
		account.TaxCode = strings.TrimSpace(*req.TaxCode)
	}
	if req.ProjectCodes != nil {
		account.ProjectCodes = *req.ProjectCodes
	}
	if req.Description != nil {
		account.Description = strings.TrimSpace(*req.Description)
	}
	if req.Active != nil {
		account.Active = *req.Active
	}

	updated, err := s.accountRepo.Update(ctx, account)
	if err != nil {
		logger.Error("chart of accounts update account repository failed", err, logger.Fields{"accountId": id})
		recordAudit(ctx, s.audit, actor, "account.update", "account", id, false, nil)
		return commons.ErrorResponse[models.AccountResponse]("failed to update account", "Unable to update account right now"), err
	}

	recordAudit(ctx, s.audit, actor, "account.update", "account", updated.ID, true, nil)
	return commons.SuccessResponse("account updated successfully", toAccountResponse(updated)), nil
}

// GetHierarchy builds the parent-to-children tree in a single pass over all
// active accounts.
func (s *ChartOfAccountsService) GetHierarchy(ctx context.Context) (commons.Response[models.AccountHierarchyResponse], error) {
	accounts, err := s.accountRepo.List(ctx, false)
	if err != nil {
		logger.Error("chart of accounts hierarchy list failed", err, nil)
		return commons.ErrorResponse[models.AccountHierarchyResponse]("failed to fetch hierarchy", "Unable to fetch accounts right now"), err
	}

	roots := domain.BuildAccountTree(accounts)
	nodes := make([]models.AccountNodeResponse, 0, len(roots))
	for _, root := range roots {
		nodes = append(nodes, toAccountNodeResponse(root))
	}

	return commons.SuccessResponse("account hierarchy fetched successfully", models.AccountHierarchyResponse{
		Accounts: nodes,
		Total:    len(accounts),
	}), nil
}

func (s *ChartOfAccountsService) GetByProjectCode(ctx context.Context, projectCode string) (commons.Response[[]models.AccountResponse], error) {
	projectCode = strings.TrimSpace(projectCode)
	if projectCode == "" {
		err := errors.New("projectCode is required")
		return commons.ErrorResponse[[]models.AccountResponse]("validation failed", err.Error()), err
	}

	accounts, err := s.accountRepo.ListByProjectCode(ctx, projectCode)
	if err != nil {
		logger.Error("chart of accounts project code lookup failed", err, logger.Fields{"projectCode": projectCode})
		return commons.ErrorResponse[[]models.AccountResponse]("failed to fetch accounts", "Unable to fetch accounts right now"), err
	}

	out := make([]models.AccountResponse, 0, len(accounts))
	for _, account := range accounts {
		out = append(out, toAccountResponse(account))
	}

	return commons.SuccessResponse("accounts fetched successfully", out), nil
}

// GetBalance folds the account's ledger rows into an opening and closing
// balance for the requested period. Open-ended ranges are allowed.
func (s *ChartOfAccountsService) GetBalance(ctx context.Context, id, fromDate, toDate string) (commons.Response[models.PeriodBalanceResponse], error) {
	account, err := s.accountRepo.GetByID(ctx, strings.TrimSpace(id))
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			return commons.ErrorResponse[models.PeriodBalanceResponse]("Account not found"), err
		}
		logger.Error("chart of accounts get balance lookup failed", err, logger.Fields{"accountId": id})
		return commons.ErrorResponse[models.PeriodBalanceResponse]("failed to fetch balance", "Unable to fetch balance right now"), err
	}

	from, err := models.ParseOptionalDate(fromDate)
	if err != nil {
		return commons.ErrorResponse[models.PeriodBalanceResponse]("validation failed", err.Error()), err
	}
	to, err := models.ParseOptionalDate(toDate)
	if err != nil {
		return commons.ErrorResponse[models.PeriodBalanceResponse]("validation failed", err.Error()), err
	}

	rows, err := s.ledgerRepo.Rows(ctx, domain.LedgerFilter{AccountID: account.ID})
	if err != nil {
		logger.Error("chart of accounts get balance ledger read failed", err, logger.Fields{"accountId": id})
		return commons.ErrorResponse[models.PeriodBalanceResponse]("failed to fetch balance", "Unable to fetch balance right now"), err
	}

	opening := account.OpeningBalance
	closing := account.OpeningBalance
	totalDebit := decimal.Zero
	totalCredit := decimal.Zero

	for _, row := range rows {
		delta := account.Type.SignedDelta(row.Debit, row.Credit)
		if from != nil && row.Date.Before(*from) {
			opening = opening.Add(delta)
			closing = closing.Add(delta)
			continue
		}
		if to != nil && row.Date.After(*to) {
			continue
		}
		closing = closing.Add(delta)
		totalDebit = totalDebit.Add(row.Debit)
		totalCredit = totalCredit.Add(row.Credit)
	}

	return commons.SuccessResponse("account balance fetched successfully", models.PeriodBalanceResponse{
		AccountID:      account.ID,
		Code:           account.Code,
		OpeningBalance: money(opening),
		ClosingBalance: money(closing),
		TotalDebit:     money(totalDebit),
		TotalCredit:    money(totalCredit),
		FromDate:       strings.TrimSpace(fromDate),
		ToDate:         strings.TrimSpace(toDate),
	}), nil
}

// GetLedger lists the account's posted rows with their running balances, in
// ledger order.
func (s *ChartOfAccountsService) GetLedger(ctx context.Context, id, fromDate, toDate string) (commons.Response[models.AccountLedgerResponse], error) {
	account, err := s.accountRepo.GetByID(ctx, strings.TrimSpace(id))
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			return commons.ErrorResponse[models.AccountLedgerResponse]("Account not found"), err
		}
		logger.Error("chart of accounts get ledger lookup failed", err, logger.Fields{"accountId": id})
		return commons.ErrorResponse[models.AccountLedgerResponse]("failed to fetch ledger", "Unable to fetch ledger right now"), err
	}

	from, err := models.ParseOptionalDate(fromDate)
	if err != nil {
		return commons.ErrorResponse[models.AccountLedgerResponse]("validation failed", err.Error()), err
	}
	to, err := models.ParseOptionalDate(toDate)
	if err != nil {
		return commons.ErrorResponse[models.AccountLedgerResponse]("validation failed", err.Error()), err
	}

	rows, err := s.ledgerRepo.Rows(ctx, domain.LedgerFilter{AccountID: account.ID, FromDate: from, ToDate: to})
	if err != nil {
		logger.Error("chart of accounts get ledger read failed", err, logger.Fields{"accountId": id})
		return commons.ErrorResponse[models.AccountLedgerResponse]("failed to fetch ledger", "Unable to fetch ledger right now"), err
	}

	out := models.AccountLedgerResponse{
		AccountID: account.ID,
		Code:      account.Code,
		Name:      account.Name,
		Rows:      make([]models.AccountLedgerRowResponse, 0, len(rows)),
		FromDate:  strings.TrimSpace(fromDate),
		ToDate:    strings.TrimSpace(toDate),
	}
	for _, row := range rows {
		out.Rows = append(out.Rows, models.AccountLedgerRowResponse{
			Date:           models.FormatDate(row.Date),
			JournalEntryID: row.JournalEntryID,
			Reference:      row.Reference,
			Description:    row.Description,
			Debit:          money(row.Debit),
			Credit:         money(row.Credit),
			RunningBalance: money(row.RunningBalance),
		})
	}

	return commons.SuccessResponse("account ledger fetched successfully", out), nil
}

func toAccountResponse(account domain.Account) models.AccountResponse {
	return models.AccountResponse{
		ID:             account.ID,
		Code:           account.Code,
		Name:           account.Name,
		Type:           string(account.Type),
		SubType:        account.SubType,
		Category:       account.Category,
		ParentID:       account.ParentID,
		Level:          account.Level,
		OpeningBalance: money(account.OpeningBalance),
		Balance:        money(account.Balance),
		Currency:       account.Currency,
		TaxCode:        account.TaxCode,
		ProjectCodes:   account.ProjectCodes,
		Active:         account.Active,
		CreatedAt:      formatTime(account.CreatedAt),
		UpdatedAt:      formatTime(account.UpdatedAt),
	}
}

func toAccountNodeResponse(node *domain.AccountNode) models.AccountNodeResponse {
	out := models.AccountNodeResponse{
		AccountResponse: toAccountResponse(node.Account),
		Children:        make([]models.AccountNodeResponse, 0, len(node.Children)),
	}
	for _, child := range node.Children {
		out.Children = append(out.Children, toAccountNodeResponse(child))
	}
	return out
}
