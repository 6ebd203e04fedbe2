package services

import (
	"context"
	"errors"
	"strings"

	"github.com/PrinceDayani/RayERP-sub004/src/internal/commons"
	"github.com/PrinceDayani/RayERP-sub004/src/internal/domain"
	"github.com/PrinceDayani/RayERP-sub004/src/internal/logger"
	"github.com/PrinceDayani/RayERP-sub004/src/internal/usecase/models"
)

type FiscalYearService struct {
	fiscalYearRepo domain.FiscalYearRepository
	audit          domain.AuditSink
}

func NewFiscalYearService(fiscalYearRepo domain.FiscalYearRepository, audit domain.AuditSink) *FiscalYearService {
	return &FiscalYearService{
		fiscalYearRepo: fiscalYearRepo,
		audit:          audit,
	}
}

func (s *FiscalYearService) CreateYear(ctx context.Context, actor string, req models.CreateFiscalYearRequest) (commons.Response[models.FiscalYearResponse], error) {
	logger.Info("fiscal year create request", logger.Fields{
		"year":      req.Year,
		"startDate": req.StartDate,
		"endDate":   req.EndDate,
	})

	if err := req.Validate(); err != nil {
		logger.Error("fiscal year create validation failed", err, nil)
		recordAudit(ctx, s.audit, actor, "fiscalYear.create", "fiscalYear", "", false, map[string]any{"year": req.Year})
		return commons.ErrorResponse[models.FiscalYearResponse]("validation failed", err.Error()), err
	}

	start, err := models.ParseDate(req.StartDate)
	if err != nil {
		return commons.ErrorResponse[models.FiscalYearResponse]("validation failed", err.Error()), err
	}
	end, err := models.ParseDate(req.EndDate)
	if err != nil {
		return commons.ErrorResponse[models.FiscalYearResponse]("validation failed", err.Error()), err
	}

	created, err := s.fiscalYearRepo.Create(ctx, domain.FiscalYear{
		Year:      strings.TrimSpace(req.Year),
		StartDate: start,
		EndDate:   end,
		Status:    domain.FiscalYearOpen,
	})
	if err != nil {
		recordAudit(ctx, s.audit, actor, "fiscalYear.create", "fiscalYear", "", false, map[string]any{"year": req.Year})
		if errors.Is(err, domain.ErrConflict) {
			return commons.ErrorResponse[models.FiscalYearResponse]("validation failed", "fiscal year overlaps an existing year"), err
		}
		if errors.Is(err, domain.ErrDuplicateCode) {
			return commons.ErrorResponse[models.FiscalYearResponse]("validation failed", "fiscal year label already exists"), err
		}
		logger.Error("fiscal year create repository failed", err, logger.Fields{"year": req.Year})
		return commons.ErrorResponse[models.FiscalYearResponse]("failed to create fiscal year", "Unable to create fiscal year right now"), err
	}

	recordAudit(ctx, s.audit, actor, "fiscalYear.create", "fiscalYear", created.ID, true, map[string]any{"year": created.Year})
	logger.Info("fiscal year create success", logger.Fields{
		"fiscalYearId": created.ID,
		"year":         created.Year,
	})

	return commons.SuccessResponse("fiscal year created successfully", toFiscalYearResponse(created)), nil
}

func (s *FiscalYearService) ListYears(ctx context.Context) (commons.Response[[]models.FiscalYearResponse], error) {
	years, err := s.fiscalYearRepo.List(ctx)
	if err != nil {
		logger.Error("fiscal year list failed", err, nil)
		return commons.ErrorResponse[[]models.FiscalYearResponse]("failed to fetch fiscal years", "Unable to fetch fiscal years right now"), err
	}

	out := make([]models.FiscalYearResponse, 0, len(years))
	for _, year := range years {
		out = append(out, toFiscalYearResponse(year))
	}
	return commons.SuccessResponse("fiscal years fetched successfully", out), nil
}

func (s *FiscalYearService) GetYear(ctx context.Context, id string) (commons.Response[models.FiscalYearResponse], error) {
	year, err := s.fiscalYearRepo.GetByID(ctx, strings.TrimSpace(id))
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			return commons.ErrorResponse[models.FiscalYearResponse]("Fiscal year not found"), err
		}
		logger.Error("fiscal year get failed", err, logger.Fields{"fiscalYearId": id})
		return commons.ErrorResponse[models.FiscalYearResponse]("failed to fetch fiscal year", "Unable to fetch fiscal year right now"), err
	}
	return commons.SuccessResponse("fiscal year fetched successfully", toFiscalYearResponse(year)), nil
}

// CloseYear flips the year to CLOSED, carries non-zero balances forward and
// opens the following year. The transition is one-way.
func (s *FiscalYearService) CloseYear(ctx context.Context, actor, id string) (commons.Response[models.CloseFiscalYearResponse], error) {
	logger.Info("fiscal year close request", logger.Fields{"fiscalYearId": id})

	closed, next, err := s.fiscalYearRepo.Close(ctx, strings.TrimSpace(id), actor)
	if err != nil {
		recordAudit(ctx, s.audit, actor, "fiscalYear.close", "fiscalYear", id, false, nil)
		if errors.Is(err, domain.ErrRecordNotFound) {
			return commons.ErrorResponse[models.CloseFiscalYearResponse]("Fiscal year not found"), err
		}
		if errors.Is(err, domain.ErrConflict) {
			return commons.ErrorResponse[models.CloseFiscalYearResponse]("Fiscal year already closed"), err
		}
		logger.Error("fiscal year close failed", err, logger.Fields{"fiscalYearId": id})
		return commons.ErrorResponse[models.CloseFiscalYearResponse]("failed to close fiscal year", "Unable to close fiscal year right now"), err
	}

	recordAudit(ctx, s.audit, actor, "fiscalYear.close", "fiscalYear", closed.ID, true, map[string]any{
		"year":           closed.Year,
		"nextYearId":     next.ID,
		"carriedForward": len(closed.OpeningBalances),
	})
	logger.Info("fiscal year close success", logger.Fields{
		"fiscalYearId": closed.ID,
		"year":         closed.Year,
		"nextYearId":   next.ID,
	})

	return commons.SuccessResponse("fiscal year closed successfully", models.CloseFiscalYearResponse{
		ClosedYear: toFiscalYearResponse(closed),
		NextYear:   toFiscalYearResponse(next),
	}), nil
}

func toFiscalYearResponse(year domain.FiscalYear) models.FiscalYearResponse {
	balances := make([]models.OpeningBalanceResponse, 0, len(year.OpeningBalances))
	for _, balance := range year.OpeningBalances {
		balances = append(balances, models.OpeningBalanceResponse{
			AccountID: balance.AccountID,
			Balance:   money(balance.Balance),
		})
	}

	return models.FiscalYearResponse{
		ID:              year.ID,
		Year:            year.Year,
		StartDate:       models.FormatDate(year.StartDate),
		EndDate:         models.FormatDate(year.EndDate),
		Status:          string(year.Status),
		ClosedBy:        year.ClosedBy,
		ClosedAt:        formatTimePtr(year.ClosedAt),
		OpeningBalances: balances,
	}
}
