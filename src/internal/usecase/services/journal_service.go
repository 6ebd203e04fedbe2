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

type JournalService struct {
	journalRepo    domain.JournalRepository
	accountRepo    domain.AccountRepository
	costCenterRepo domain.CostCenterRepository
	fiscalYearRepo domain.FiscalYearRepository
	ledgerRepo     domain.LedgerRepository
	audit          domain.AuditSink
	tolerance      decimal.Decimal
}

func NewJournalService(
	journalRepo domain.JournalRepository,
	accountRepo domain.AccountRepository,
	costCenterRepo domain.CostCenterRepository,
	fiscalYearRepo domain.FiscalYearRepository,
	ledgerRepo domain.LedgerRepository,
	audit domain.AuditSink,
	tolerance decimal.Decimal,
) *JournalService {
	if tolerance.IsZero() {
		tolerance = decimal.RequireFromString("0.01")
	}
	return &JournalService{
		journalRepo:    journalRepo,
		accountRepo:    accountRepo,
		costCenterRepo: costCenterRepo,
		fiscalYearRepo: fiscalYearRepo,
		ledgerRepo:     ledgerRepo,
		audit:          audit,
		tolerance:      tolerance,
	}
}

func (s *JournalService) CreateEntry(ctx context.Context, actor string, req models.CreateJournalEntryRequest) (commons.Response[models.JournalEntryResponse], error) {
	logger.Info("journal create entry request", logger.Fields{
		"date":      req.Date,
		"reference": req.Reference,
		"lineCount": len(req.Lines),
	})

	entry, err := s.buildEntry(ctx, req)
	if err != nil {
		logger.Error("journal create entry validation failed", err, nil)
		recordAudit(ctx, s.audit, actor, "journal.create", "journalEntry", "", false, map[string]any{"reference": req.Reference})
		return commons.ErrorResponse[models.JournalEntryResponse]("validation failed", err.Error()), err
	}

	entryNumber, err := s.journalRepo.NextEntryNumber(ctx)
	if err != nil {
		logger.Error("journal create entry number generation failed", err, nil)
		return commons.ErrorResponse[models.JournalEntryResponse]("failed to create journal entry", "Unable to create journal entry right now"), err
	}
	entry.EntryNumber = entryNumber
	entry.Status = domain.JournalStatusDraft
	entry.CreatedBy = actor

	created, err := s.journalRepo.Create(ctx, entry)
	if err != nil {
		logger.Error("journal create entry repository failed", err, logger.Fields{"entryNumber": entryNumber})
		recordAudit(ctx, s.audit, actor, "journal.create", "journalEntry", "", false, map[string]any{"entryNumber": entryNumber})
		return commons.ErrorResponse[models.JournalEntryResponse]("failed to create journal entry", "Unable to create journal entry right now"), err
	}

	recordAudit(ctx, s.audit, actor, "journal.create", "journalEntry", created.ID, true, map[string]any{"entryNumber": created.EntryNumber})
	logger.Info("journal create entry success", logger.Fields{
		"entryId":     created.ID,
		"entryNumber": created.EntryNumber,
	})

	return commons.SuccessResponse("journal entry created successfully", toJournalEntryResponse(created)), nil
}

func (s *JournalService) UpdateEntry(ctx context.Context, actor, id string, req models.CreateJournalEntryRequest) (commons.Response[models.JournalEntryResponse], error) {
	logger.Info("journal update entry request", logger.Fields{"entryId": id})

	current, err := s.journalRepo.GetByID(ctx, strings.TrimSpace(id))
	if err != nil {
		recordAudit(ctx, s.audit, actor, "journal.update", "journalEntry", id, false, nil)
		if errors.Is(err, domain.ErrRecordNotFound) {
			return commons.ErrorResponse[models.JournalEntryResponse]("Journal entry not found"), err
		}
		logger.Error("journal update entry lookup failed", err, logger.Fields{"entryId": id})
		return commons.ErrorResponse[models.JournalEntryResponse]("failed to update journal entry", "Unable to update journal entry right now"), err
	}
	if current.Status != domain.JournalStatusDraft {
		recordAudit(ctx, s.audit, actor, "journal.update", "journalEntry", id, false, nil)
		return commons.ErrorResponse[models.JournalEntryResponse]("Journal entry already posted"), domain.ErrEntryPosted
	}

	entry, err := s.buildEntry(ctx, req)
	if err != nil {
		recordAudit(ctx, s.audit, actor, "journal.update", "journalEntry", id, false, nil)
		return commons.ErrorResponse[models.JournalEntryResponse]("validation failed", err.Error()), err
	}
	entry.ID = current.ID
	entry.EntryNumber = current.EntryNumber
	entry.Status = current.Status
	entry.CreatedBy = current.CreatedBy

	updated, err := s.journalRepo.Update(ctx, entry)
	if err != nil {
		recordAudit(ctx, s.audit, actor, "journal.update", "journalEntry", id, false, nil)
		if errors.Is(err, domain.ErrEntryPosted) {
			return commons.ErrorResponse[models.JournalEntryResponse]("Journal entry already posted"), err
		}
		logger.Error("journal update entry repository failed", err, logger.Fields{"entryId": id})
		return commons.ErrorResponse[models.JournalEntryResponse]("failed to update journal entry", "Unable to update journal entry right now"), err
	}

	recordAudit(ctx, s.audit, actor, "journal.update", "journalEntry", updated.ID, true, nil)
	return commons.SuccessResponse("journal entry updated successfully", toJournalEntryResponse(updated)), nil
}

func (s *JournalService) DeleteEntry(ctx context.Context, actor, id string) (commons.Response[struct{}], error) {
	logger.Info("journal delete entry request", logger.Fields{"entryId": id})

	err := s.journalRepo.Delete(ctx, strings.TrimSpace(id))
	if err != nil {
		recordAudit(ctx, s.audit, actor, "journal.delete", "journalEntry", id, false, nil)
		if errors.Is(err, domain.ErrRecordNotFound) {
			return commons.ErrorResponse[struct{}]("Journal entry not found"), err
		}
		if errors.Is(err, domain.ErrEntryPosted) {
			return commons.ErrorResponse[struct{}]("Journal entry already posted"), err
		}
		logger.Error("journal delete entry repository failed", err, logger.Fields{"entryId": id})
		return commons.ErrorResponse[struct{}]("failed to delete journal entry", "Unable to delete journal entry right now"), err
	}

	recordAudit(ctx, s.audit, actor, "journal.delete", "journalEntry", id, true, nil)
	return commons.SuccessResponse("journal entry deleted successfully", struct{}{}), nil
}

func (s *JournalService) GetEntry(ctx context.Context, id string) (commons.Response[models.JournalEntryResponse], error) {
	entry, err := s.journalRepo.GetByID(ctx, strings.TrimSpace(id))
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			return commons.ErrorResponse[models.JournalEntryResponse]("Journal entry not found"), err
		}
		logger.Error("journal get entry failed", err, logger.Fields{"entryId": id})
		return commons.ErrorResponse[models.JournalEntryResponse]("failed to fetch journal entry", "Unable to fetch journal entry right now"), err
	}
	return commons.SuccessResponse("journal entry fetched successfully", toJournalEntryResponse(entry)), nil
}

func (s *JournalService) ListEntries(ctx context.Context, req models.ListJournalEntriesRequest) (commons.Response[[]models.JournalEntryResponse], error) {
	from, err := models.ParseOptionalDate(req.FromDate)
	if err != nil {
		return commons.ErrorResponse[[]models.JournalEntryResponse]("validation failed", err.Error()), err
	}
	to, err := models.ParseOptionalDate(req.ToDate)
	if err != nil {
		return commons.ErrorResponse[[]models.JournalEntryResponse]("validation failed", err.Error()), err
	}

	entries, err := s.journalRepo.List(ctx, domain.JournalFilter{
		Status:    domain.JournalStatus(strings.ToUpper(strings.TrimSpace(req.Status))),
		ProjectID: strings.TrimSpace(req.ProjectID),
		FromDate:  from,
		ToDate:    to,
		Limit:     req.Limit,
		Offset:    req.Offset,
	})
	if err != nil {
		logger.Error("journal list entries failed", err, nil)
		return commons.ErrorResponse[[]models.JournalEntryResponse]("failed to fetch journal entries", "Unable to fetch journal entries right now"), err
	}

	out := make([]models.JournalEntryResponse, 0, len(entries))
	for _, entry := range entries {
		out = append(out, toJournalEntryResponse(entry))
	}
	return commons.SuccessResponse("journal entries fetched successfully", out), nil
}

// PostEntry commits a DRAFT entry into the ledger. All lines land atomically;
// re-posting an already-POSTED entry is rejected with no balance effect.
func (s *JournalService) PostEntry(ctx context.Context, actor, id string) (commons.Response[models.PostJournalEntryResponse], error) {
	logger.Info("journal post entry request", logger.Fields{"entryId": id})

	entry, err := s.journalRepo.GetByID(ctx, strings.TrimSpace(id))
	if err != nil {
		recordAudit(ctx, s.audit, actor, "journal.post", "journalEntry", id, false, nil)
		if errors.Is(err, domain.ErrRecordNotFound) {
			return commons.ErrorResponse[models.PostJournalEntryResponse]("Journal entry not found"), err
		}
		logger.Error("journal post entry lookup failed", err, logger.Fields{"entryId": id})
		return commons.ErrorResponse[models.PostJournalEntryResponse]("failed to post journal entry", "Unable to post journal entry right now"), err
	}
	if entry.Status != domain.JournalStatusDraft {
		recordAudit(ctx, s.audit, actor, "journal.post", "journalEntry", id, false, map[string]any{"status": entry.Status})
		return commons.ErrorResponse[models.PostJournalEntryResponse]("Journal entry already posted"), domain.ErrEntryPosted
	}

	posting, err := s.buildPosting(ctx, entry, actor, "")
	if err != nil {
		recordAudit(ctx, s.audit, actor, "journal.post", "journalEntry", id, false, nil)
		return commons.ErrorResponse[models.PostJournalEntryResponse]("validation failed", err.Error()), err
	}

	result, err := s.ledgerRepo.AppendPosting(ctx, posting)
	if err != nil {
		recordAudit(ctx, s.audit, actor, "journal.post", "journalEntry", id, false, nil)
		switch {
		case errors.Is(err, domain.ErrEntryPosted):
			return commons.ErrorResponse[models.PostJournalEntryResponse]("Journal entry already posted"), err
		case errors.Is(err, domain.ErrYearClosed), errors.Is(err, domain.ErrNoOpenYear):
			return commons.ErrorResponse[models.PostJournalEntryResponse]("validation failed", err.Error()), err
		case errors.Is(err, domain.ErrRecordNotFound):
			return commons.ErrorResponse[models.PostJournalEntryResponse]("validation failed", "entry references a missing or inactive record"), err
		}
		logger.Error("journal post entry ledger append failed", err, logger.Fields{"entryId": id})
		return commons.ErrorResponse[models.PostJournalEntryResponse]("failed to post journal entry", "Unable to post journal entry right now"), err
	}

	recordAudit(ctx, s.audit, actor, "journal.post", "journalEntry", entry.ID, true, map[string]any{
		"entryNumber":     entry.EntryNumber,
		"postedLineCount": result.PostedLineCount,
	})
	logger.Info("journal post entry success", logger.Fields{
		"entryId":         entry.ID,
		"entryNumber":     entry.EntryNumber,
		"postedLineCount": result.PostedLineCount,
	})

	balances := make([]models.UpdatedBalanceResponse, 0, len(result.UpdatedBalances))
	for _, balance := range result.UpdatedBalances {
		balances = append(balances, models.UpdatedBalanceResponse{
			AccountID: balance.AccountID,
			Balance:   money(balance.Balance),
		})
	}

	return commons.SuccessResponse("journal entry posted successfully", models.PostJournalEntryResponse{
		ID:              entry.ID,
		EntryNumber:     entry.EntryNumber,
		Status:          string(domain.JournalStatusPosted),
		PostedLineCount: result.PostedLineCount,
		UpdatedBalances: balances,
	}), nil
}

// ReverseEntry creates a new entry with every line's debit and credit
// swapped, posts it, and marks the source entry REVERSED in the same atomic
// unit.
func (s *JournalService) ReverseEntry(ctx context.Context, actor, id, date string) (commons.Response[models.ReverseJournalEntryResponse], error) {
	logger.Info("journal reverse entry request", logger.Fields{"entryId": id, "date": date})

	source, err := s.journalRepo.GetByID(ctx, strings.TrimSpace(id))
	if err != nil {
		recordAudit(ctx, s.audit, actor, "journal.reverse", "journalEntry", id, false, nil)
		if errors.Is(err, domain.ErrRecordNotFound) {
			return commons.ErrorResponse[models.ReverseJournalEntryResponse]("Journal entry not found"), err
		}
		logger.Error("journal reverse entry lookup failed", err, logger.Fields{"entryId": id})
		return commons.ErrorResponse[models.ReverseJournalEntryResponse]("failed to reverse journal entry", "Unable to reverse journal entry right now"), err
	}
	if source.Status != domain.JournalStatusPosted {
		recordAudit(ctx, s.audit, actor, "journal.reverse", "journalEntry", id, false, map[string]any{"status": source.Status})
		return commons.ErrorResponse[models.ReverseJournalEntryResponse]("Only posted entries can be reversed"), domain.ErrConflict
	}

	reversalDate := source.Date
	if strings.TrimSpace(date) != "" {
		parsed, err := models.ParseDate(date)
		if err != nil {
			return commons.ErrorResponse[models.ReverseJournalEntryResponse]("validation failed", err.Error()), err
		}
		reversalDate = parsed
	}

	lines := make([]domain.JournalLine, 0, len(source.Lines))
	for _, line := range source.Lines {
		flipped := line
		flipped.Debit = line.Credit
		flipped.Credit = line.Debit
		lines = append(lines, flipped)
	}

	entryNumber, err := s.journalRepo.NextEntryNumber(ctx)
	if err != nil {
		logger.Error("journal reverse entry number generation failed", err, nil)
		return commons.ErrorResponse[models.ReverseJournalEntryResponse]("failed to reverse journal entry", "Unable to reverse journal entry right now"), err
	}

	reversal := domain.JournalEntry{
		EntryNumber: entryNumber,
		Date:        reversalDate,
		Reference:   source.EntryNumber,
		Description: "Reversal of " + source.EntryNumber,
		Status:      domain.JournalStatusDraft,
		ProjectID:   source.ProjectID,
		Lines:       lines,
		CreatedBy:   actor,
	}

	created, err := s.journalRepo.Create(ctx, reversal)
	if err != nil {
		logger.Error("journal reverse entry create failed", err, logger.Fields{"sourceEntryId": source.ID})
		recordAudit(ctx, s.audit, actor, "journal.reverse", "journalEntry", id, false, nil)
		return commons.ErrorResponse[models.ReverseJournalEntryResponse]("failed to reverse journal entry", "Unable to reverse journal entry right now"), err
	}

	posting, err := s.buildPosting(ctx, created, actor, source.ID)
	if err != nil {
		s.discardDraft(ctx, created.ID)
		recordAudit(ctx, s.audit, actor, "journal.reverse", "journalEntry", id, false, nil)
		return commons.ErrorResponse[models.ReverseJournalEntryResponse]("validation failed", err.Error()), err
	}

	if _, err := s.ledgerRepo.AppendPosting(ctx, posting); err != nil {
		s.discardDraft(ctx, created.ID)
		recordAudit(ctx, s.audit, actor, "journal.reverse", "journalEntry", id, false, nil)
		if errors.Is(err, domain.ErrYearClosed) || errors.Is(err, domain.ErrNoOpenYear) {
			return commons.ErrorResponse[models.ReverseJournalEntryResponse]("validation failed", err.Error()), err
		}
		logger.Error("journal reverse entry ledger append failed", err, logger.Fields{"entryId": created.ID})
		return commons.ErrorResponse[models.ReverseJournalEntryResponse]("failed to reverse journal entry", "Unable to reverse journal entry right now"), err
	}

	recordAudit(ctx, s.audit, actor, "journal.reverse", "journalEntry", source.ID, true, map[string]any{
		"reversalEntryId": created.ID,
	})

	return commons.SuccessResponse("journal entry reversed successfully", models.ReverseJournalEntryResponse{
		SourceEntryID:   source.ID,
		ReversalEntryID: created.ID,
		ReversalNumber:  created.EntryNumber,
	}), nil
}

// discardDraft removes a reversal draft left behind when its posting fails,
// so a failed reversal leaves no orphan entry.
func (s *JournalService) discardDraft(ctx context.Context, id string) {
	if err := s.journalRepo.Delete(ctx, id); err != nil {
		logger.Error("journal discard reversal draft failed", err, logger.Fields{"entryId": id})
	}
}

// BulkPost posts entries one by one and reports a per-item tally rather than
// aborting on the first failure.
func (s *JournalService) BulkPost(ctx context.Context, actor string, ids []string) (commons.Response[models.BulkPostResponse], error) {
	logger.Info("journal bulk post request", logger.Fields{"count": len(ids)})

	out := models.BulkPostResponse{Results: make([]models.BulkPostItemResult, 0, len(ids))}
	for _, id := range ids {
		_, err := s.PostEntry(ctx, actor, id)
		item := models.BulkPostItemResult{ID: id, Success: err == nil}
		if err != nil {
			item.Error = err.Error()
			out.Failed++
		} else {
			out.Posted++
		}
		out.Results = append(out.Results, item)
	}

	return commons.SuccessResponse("bulk post completed", out), nil
}

// buildEntry validates the request against the registry, cost centers and
// fiscal calendar, returning the assembled draft entry.
func (s *JournalService) buildEntry(ctx context.Context, req models.CreateJournalEntryRequest) (domain.JournalEntry, error) {
	if err := req.Validate(); err != nil {
		return domain.JournalEntry{}, err
	}

	date, err := models.ParseDate(req.Date)
	if err != nil {
		return domain.JournalEntry{}, err
	}

	verr := &domain.ValidationError{}

	year, err := s.fiscalYearRepo.FindByDate(ctx, date)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			verr.Add("no fiscal year covers %s", req.Date)
		} else {
			return domain.JournalEntry{}, err
		}
	} else if year.Status != domain.FiscalYearOpen {
		verr.Add("fiscal year %s is closed", year.Year)
	}

	totalDebit := decimal.Zero
	totalCredit := decimal.Zero
	lines := make([]domain.JournalLine, 0, len(req.Lines))

	for i, lineReq := range req.Lines {
		account, err := s.accountRepo.GetByID(ctx, strings.TrimSpace(lineReq.AccountID))
		if err != nil {
			if errors.Is(err, domain.ErrRecordNotFound) {
				verr.Add("line %d: account %s not found", i+1, lineReq.AccountID)
				continue
			}
			return domain.JournalEntry{}, err
		}
		if !account.Active {
			verr.Add("line %d: account %s is inactive", i+1, account.Code)
		}

		line := domain.JournalLine{
			AccountID:    account.ID,
			Debit:        lineReq.Debit,
			Credit:       lineReq.Credit,
			Description:  strings.TrimSpace(lineReq.Description),
			CostCenterID: strings.TrimSpace(lineReq.CostCenterID),
			ProjectID:    strings.TrimSpace(lineReq.ProjectID),
			PartyType:    domain.PartyType(strings.ToLower(strings.TrimSpace(lineReq.PartyType))),
			PartyID:      strings.TrimSpace(lineReq.PartyID),
		}

		if head := strings.ToLower(strings.TrimSpace(lineReq.CostHead)); head != "" {
			costHead := domain.CostHead(head)
			if !costHead.Valid() {
				verr.Add("line %d: unknown cost head %q", i+1, head)
			}
			line.CostHead = costHead
		}

		if line.CostCenterID != "" {
			center, err := s.costCenterRepo.GetByID(ctx, line.CostCenterID)
			if err != nil {
				if errors.Is(err, domain.ErrRecordNotFound) {
					verr.Add("line %d: cost center %s not found", i+1, line.CostCenterID)
				} else {
					return domain.JournalEntry{}, err
				}
			} else if !center.Active {
				verr.Add("line %d: cost center %s is inactive", i+1, center.Code)
			}
		}

		if strings.TrimSpace(lineReq.DueDate) != "" {
			dueDate, err := models.ParseDate(lineReq.DueDate)
			if err != nil {
				verr.Add("line %d: %s", i+1, err.Error())
			} else {
				line.DueDate = &dueDate
			}
		}

		totalDebit = totalDebit.Add(lineReq.Debit)
		totalCredit = totalCredit.Add(lineReq.Credit)
		lines = append(lines, line)
	}

	if totalDebit.Sub(totalCredit).Abs().GreaterThan(s.tolerance) {
		verr.Add("unbalanced: debits (%s) != credits (%s)", totalDebit.StringFixed(2), totalCredit.StringFixed(2))
	}

	if err := verr.OrNil(); err != nil {
		return domain.JournalEntry{}, err
	}

	return domain.JournalEntry{
		Date:        date,
		Reference:   strings.TrimSpace(req.Reference),
		Description: strings.TrimSpace(req.Description),
		ProjectID:   strings.TrimSpace(req.ProjectID),
		Lines:       lines,
	}, nil
}

// buildPosting derives the atomic posting unit for an entry: signed deltas
// per the account's natural side, cost center allocations, WIP accumulation
// and subsidiary rows.
func (s *JournalService) buildPosting(ctx context.Context, entry domain.JournalEntry, actor, markReverse string) (domain.Posting, error) {
	posting := domain.Posting{
		EntryID:     entry.ID,
		PostedBy:    actor,
		Date:        entry.Date,
		MarkReverse: markReverse,
	}

	for _, line := range entry.Lines {
		account, err := s.accountRepo.GetByID(ctx, line.AccountID)
		if err != nil {
			return domain.Posting{}, err
		}

		posting.Rows = append(posting.Rows, domain.PostingRow{
			AccountID:    account.ID,
			Delta:        account.Type.SignedDelta(line.Debit, line.Credit),
			Debit:        line.Debit,
			Credit:       line.Credit,
			Description:  line.Description,
			Reference:    entry.Reference,
			CostCenterID: line.CostCenterID,
			ProjectID:    line.ProjectID,
		})

		if line.CostCenterID != "" {
			posting.CostDeltas = append(posting.CostDeltas, domain.CostCenterDelta{
				CostCenterID: line.CostCenterID,
				Delta:        line.Debit.Sub(line.Credit),
			})
		}

		if line.ProjectID != "" && line.CostHead.Valid() {
			posting.WIPItems = append(posting.WIPItems, domain.WIPItem{
				ProjectID: line.ProjectID,
				CostHead:  line.CostHead,
				Amount:    line.Debit.Sub(line.Credit),
			})
		}

		if line.PartyType != "" && line.PartyID != "" {
			dueDate := entry.Date
			if line.DueDate != nil {
				dueDate = *line.DueDate
			}
			posting.Subsidiary = append(posting.Subsidiary, domain.SubsidiaryEntry{
				PartyType: line.PartyType,
				PartyID:   line.PartyID,
				AccountID: account.ID,
				Date:      entry.Date,
				DueDate:   dueDate,
				Debit:     line.Debit,
				Credit:    line.Credit,
				Balance:   account.Type.SignedDelta(line.Debit, line.Credit),
			})
		}
	}

	return posting, nil
}

func toJournalEntryResponse(entry domain.JournalEntry) models.JournalEntryResponse {
	lines := make([]models.JournalLineResponse, 0, len(entry.Lines))
	for _, line := range entry.Lines {
		lineResp := models.JournalLineResponse{
			AccountID:    line.AccountID,
			Debit:        money(line.Debit),
			Credit:       money(line.Credit),
			Description:  line.Description,
			CostCenterID: line.CostCenterID,
			ProjectID:    line.ProjectID,
			CostHead:     string(line.CostHead),
			PartyType:    string(line.PartyType),
			PartyID:      line.PartyID,
		}
		if line.DueDate != nil {
			lineResp.DueDate = models.FormatDate(*line.DueDate)
		}
		lines = append(lines, lineResp)
	}

	resp := models.JournalEntryResponse{
		ID:              entry.ID,
		EntryNumber:     entry.EntryNumber,
		Date:            models.FormatDate(entry.Date),
		Reference:       entry.Reference,
		Description:     entry.Description,
		Status:          string(entry.Status),
		ProjectID:       entry.ProjectID,
		Lines:           lines,
		TotalDebit:      money(entry.TotalDebit()),
		TotalCredit:     money(entry.TotalCredit()),
		CreatedBy:       entry.CreatedBy,
		PostedBy:        entry.PostedBy,
		PostedAt:        formatTimePtr(entry.PostedAt),
		ReversalEntryID: entry.ReversalEntryID,
		CreatedAt:       formatTime(entry.CreatedAt),
		UpdatedAt:       formatTime(entry.UpdatedAt),
	}

	return resp
}
