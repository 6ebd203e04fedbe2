package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/PrinceDayani/RayERP-sub004/src/internal/commons"
	"github.com/PrinceDayani/RayERP-sub004/src/internal/domain"
	"github.com/PrinceDayani/RayERP-sub004/src/internal/logger"
	"github.com/PrinceDayani/RayERP-sub004/src/internal/usecase/models"
)

type CostCenterService struct {
	costCenterRepo domain.CostCenterRepository
	wipRepo        domain.WIPRepository
	audit          domain.AuditSink
}

func NewCostCenterService(
	costCenterRepo domain.CostCenterRepository,
	wipRepo domain.WIPRepository,
	audit domain.AuditSink,
) *CostCenterService {
	return &CostCenterService{
		costCenterRepo: costCenterRepo,
		wipRepo:        wipRepo,
		audit:          audit,
	}
}

func (s *CostCenterService) CreateCostCenter(ctx context.Context, actor string, req models.CreateCostCenterRequest) (commons.Response[models.CostCenterResponse], error) {
	logger.Info("cost center create request", logger.Fields{
		"payload": logger.SanitizePayload(req),
	})

	if err := req.Validate(); err != nil {
		logger.Error("cost center create validation failed", err, nil)
		recordAudit(ctx, s.audit, actor, "costCenter.create", "costCenter", "", false, map[string]any{"code": req.Code})
		return commons.ErrorResponse[models.CostCenterResponse]("validation failed", err.Error()), err
	}

	code := strings.TrimSpace(req.Code)
	if _, err := s.costCenterRepo.GetByCode(ctx, code); err == nil {
		err := domain.ErrDuplicateCode
		recordAudit(ctx, s.audit, actor, "costCenter.create", "costCenter", "", false, map[string]any{"code": code})
		return commons.ErrorResponse[models.CostCenterResponse]("validation failed", "cost center code already exists"), err
	} else if !errors.Is(err, domain.ErrRecordNotFound) {
		logger.Error("cost center create code lookup failed", err, logger.Fields{"code": code})
		return commons.ErrorResponse[models.CostCenterResponse]("failed to create cost center", "Unable to create cost center right now"), err
	}

	level := 0
	parentID := strings.TrimSpace(req.ParentID)
	if parentID != "" {
		parent, err := s.costCenterRepo.GetByID(ctx, parentID)
		if err != nil {
			if errors.Is(err, domain.ErrRecordNotFound) {
				recordAudit(ctx, s.audit, actor, "costCenter.create", "costCenter", "", false, map[string]any{"code": code})
				return commons.ErrorResponse[models.CostCenterResponse]("validation failed", "parent cost center not found"), domain.ErrParentNotFound
			}
			logger.Error("cost center create parent lookup failed", err, logger.Fields{"parentId": parentID})
			return commons.ErrorResponse[models.CostCenterResponse]("failed to create cost center", "Unable to create cost center right now"), err
		}
		level = parent.Level + 1
	}

	center := domain.CostCenter{
		Code:          code,
		Name:          strings.TrimSpace(req.Name),
		Type:          strings.TrimSpace(req.Type),
		ParentID:      parentID,
		ProjectID:     strings.TrimSpace(req.ProjectID),
		Level:         level,
		Budget:        req.Budget,
		ActualCost:    decimal.Zero,
		CommittedCost: decimal.Zero,
		Description:   strings.TrimSpace(req.Description),
		Active:        true,
	}

	created, err := s.costCenterRepo.Create(ctx, center)
	if err != nil {
		logger.Error("cost center create repository failed", err, logger.Fields{"code": code})
		recordAudit(ctx, s.audit, actor, "costCenter.create", "costCenter", "", false, map[string]any{"code": code})
		if errors.Is(err, domain.ErrDuplicateCode) {
			return commons.ErrorResponse[models.CostCenterResponse]("validation failed", "cost center code already exists"), err
		}
		return commons.ErrorResponse[models.CostCenterResponse]("failed to create cost center", "Unable to create cost center right now"), err
	}

	recordAudit(ctx, s.audit, actor, "costCenter.create", "costCenter", created.ID, true, map[string]any{"code": created.Code})
	logger.Info("cost center create success", logger.Fields{
		"costCenterId": created.ID,
		"code":         created.Code,
	})

	return commons.SuccessResponse("cost center created successfully", toCostCenterResponse(created)), nil
}

func (s *CostCenterService) UpdateCostCenter(ctx context.Context, actor, id string, req models.UpdateCostCenterRequest) (commons.Response[models.CostCenterResponse], error) {
	logger.Info("cost center update request", logger.Fields{"costCenterId": id})

	center, err := s.costCenterRepo.GetByID(ctx, strings.TrimSpace(id))
	if err != nil {
		recordAudit(ctx, s.audit, actor, "costCenter.update", "costCenter", id, false, nil)
		if errors.Is(err, domain.ErrRecordNotFound) {
			return commons.ErrorResponse[models.CostCenterResponse]("Cost center not found"), err
		}
		logger.Error("cost center update lookup failed", err, logger.Fields{"costCenterId": id})
		return commons.ErrorResponse[models.CostCenterResponse]("failed to update cost center", "Unable to update cost center right now"), err
	}

	if req.Name != nil {
		center.Name = strings.TrimSpace(*req.Name)
	}
	if req.Type != nil {
		center.Type = strings.TrimSpace(*req.Type)
	}
	if req.Budget != nil {
		if req.Budget.IsNegative() {
			err := errors.New("budget cannot be negative")
			return commons.ErrorResponse[models.CostCenterResponse]("validation failed", err.Error()), err
		}
		center.Budget = *req.Budget
	}
	if req.CommittedCost != nil {
		if req.CommittedCost.IsNegative() {
			err := errors.New("committedCost cannot be negative")
			return commons.ErrorResponse[models.CostCenterResponse]("validation failed", err.Error()), err
		}
		center.CommittedCost = *req.CommittedCost
	}
	if req.Description != nil {
		center.Description = strings.TrimSpace(*req.Description)
	}
	if req.Active != nil {
		center.Active = *req.Active
	}

	updated, err := s.costCenterRepo.Update(ctx, center)
	if err != nil {
		logger.Error("cost center update repository failed", err, logger.Fields{"costCenterId": id})
		recordAudit(ctx, s.audit, actor, "costCenter.update", "costCenter", id, false, nil)
		return commons.ErrorResponse[models.CostCenterResponse]("failed to update cost center", "Unable to update cost center right now"), err
	}

	recordAudit(ctx, s.audit, actor, "costCenter.update", "costCenter", updated.ID, true, nil)
	return commons.SuccessResponse("cost center updated successfully", toCostCenterResponse(updated)), nil
}

func (s *CostCenterService) GetHierarchy(ctx context.Context) (commons.Response[[]models.CostCenterNodeResponse], error) {
	centers, err := s.costCenterRepo.List(ctx, false)
	if err != nil {
		logger.Error("cost center hierarchy list failed", err, nil)
		return commons.ErrorResponse[[]models.CostCenterNodeResponse]("failed to fetch hierarchy", "Unable to fetch cost centers right now"), err
	}

	roots := domain.BuildCostCenterTree(centers)
	nodes := make([]models.CostCenterNodeResponse, 0, len(roots))
	for _, root := range roots {
		nodes = append(nodes, toCostCenterNodeResponse(root))
	}

	return commons.SuccessResponse("cost center hierarchy fetched successfully", nodes), nil
}

// AllocateCost applies a manual adjustment to actualCost. Subtracting below
// zero clamps at zero.
func (s *CostCenterService) AllocateCost(ctx context.Context, actor string, req models.AllocateCostRequest) (commons.Response[models.CostCenterResponse], error) {
	logger.Info("cost center allocate cost request", logger.Fields{
		"costCenterId": req.CostCenterID,
		"amount":       req.Amount,
		"operation":    req.Operation,
	})

	if err := req.Validate(); err != nil {
		logger.Error("cost center allocate cost validation failed", err, nil)
		recordAudit(ctx, s.audit, actor, "costCenter.allocate", "costCenter", req.CostCenterID, false, nil)
		return commons.ErrorResponse[models.CostCenterResponse]("validation failed", err.Error()), err
	}

	delta := req.Amount
	if domain.CostOperation(strings.ToLower(strings.TrimSpace(req.Operation))) == domain.CostOperationSubtract {
		delta = delta.Neg()
	}

	updated, err := s.costCenterRepo.AdjustActualCost(ctx, strings.TrimSpace(req.CostCenterID), delta)
	if err != nil {
		recordAudit(ctx, s.audit, actor, "costCenter.allocate", "costCenter", req.CostCenterID, false, nil)
		if errors.Is(err, domain.ErrRecordNotFound) {
			return commons.ErrorResponse[models.CostCenterResponse]("Cost center not found"), err
		}
		logger.Error("cost center allocate cost repository failed", err, logger.Fields{"costCenterId": req.CostCenterID})
		return commons.ErrorResponse[models.CostCenterResponse]("failed to allocate cost", "Unable to allocate cost right now"), err
	}

	recordAudit(ctx, s.audit, actor, "costCenter.allocate", "costCenter", updated.ID, true, map[string]any{
		"amount":    req.Amount.StringFixed(2),
		"operation": req.Operation,
	})

	return commons.SuccessResponse("cost allocated successfully", toCostCenterResponse(updated)), nil
}

// GetBudgetAnalysis aggregates actual cost by cost head from the WIP store
// and derives variance and utilization against the budget.
func (s *CostCenterService) GetBudgetAnalysis(ctx context.Context, req models.BudgetAnalysisRequest) (commons.Response[models.BudgetAnalysisResponse], error) {
	if err := req.Validate(); err != nil {
		return commons.ErrorResponse[models.BudgetAnalysisResponse]("validation failed", err.Error()), err
	}

	center, err := s.costCenterRepo.GetByID(ctx, strings.TrimSpace(req.CostCenterID))
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			return commons.ErrorResponse[models.BudgetAnalysisResponse]("Cost center not found"), err
		}
		logger.Error("cost center budget analysis lookup failed", err, logger.Fields{"costCenterId": req.CostCenterID})
		return commons.ErrorResponse[models.BudgetAnalysisResponse]("failed to fetch budget analysis", "Unable to fetch budget analysis right now"), err
	}

	from, _ := models.ParseOptionalDate(req.FromDate)
	to, _ := models.ParseOptionalDate(req.ToDate)

	costByHead := make(map[string]string)
	if center.ProjectID != "" {
		rows, err := s.wipRepo.List(ctx, center.ProjectID, from, to)
		if err != nil {
			logger.Error("cost center budget analysis wip read failed", err, logger.Fields{"projectId": center.ProjectID})
			return commons.ErrorResponse[models.BudgetAnalysisResponse]("failed to fetch budget analysis", "Unable to fetch budget analysis right now"), err
		}
		totals := make(map[domain.CostHead]decimal.Decimal)
		for _, row := range rows {
			totals[row.CostHead] = totals[row.CostHead].Add(row.Amount)
		}
		for head, amount := range totals {
			costByHead[string(head)] = money(amount)
		}
	}

	return commons.SuccessResponse("budget analysis fetched successfully", models.BudgetAnalysisResponse{
		CostCenterID:       center.ID,
		Code:               center.Code,
		Budget:             money(center.Budget),
		ActualCost:         money(center.ActualCost),
		CommittedCost:      money(center.CommittedCost),
		Variance:           money(center.Variance()),
		UtilizationPercent: center.UtilizationPercent().StringFixed(2),
		Status:             varianceStatus(center),
		CostByHead:         costByHead,
	}), nil
}

// CapitalizeWIP closes out the open WIP rows for a project cost head,
// recording the capitalized amount on each.
func (s *CostCenterService) CapitalizeWIP(ctx context.Context, actor string, req models.CapitalizeWIPRequest) (commons.Response[models.CapitalizeWIPResponse], error) {
	logger.Info("cost center capitalize wip request", logger.Fields{
		"projectId": req.ProjectID,
		"costHead":  req.CostHead,
	})

	if err := req.Validate(); err != nil {
		logger.Error("cost center capitalize wip validation failed", err, nil)
		return commons.ErrorResponse[models.CapitalizeWIPResponse]("validation failed", err.Error()), err
	}

	costHead := domain.CostHead(strings.ToLower(strings.TrimSpace(req.CostHead)))
	if !costHead.Valid() {
		err := errors.New("unknown cost head")
		return commons.ErrorResponse[models.CapitalizeWIPResponse]("validation failed", err.Error()), err
	}

	projectID := strings.TrimSpace(req.ProjectID)
	if err := s.wipRepo.Capitalize(ctx, projectID, costHead, req.Amount, time.Now().UTC()); err != nil {
		recordAudit(ctx, s.audit, actor, "wip.capitalize", "wip", projectID, false, nil)
		if errors.Is(err, domain.ErrRecordNotFound) {
			return commons.ErrorResponse[models.CapitalizeWIPResponse]("No open WIP rows for project and cost head"), err
		}
		logger.Error("cost center capitalize wip failed", err, logger.Fields{"projectId": projectID})
		return commons.ErrorResponse[models.CapitalizeWIPResponse]("failed to capitalize wip", "Unable to capitalize WIP right now"), err
	}

	recordAudit(ctx, s.audit, actor, "wip.capitalize", "wip", projectID, true, map[string]any{
		"costHead": string(costHead),
		"amount":   req.Amount.StringFixed(2),
	})

	return commons.SuccessResponse("wip capitalized successfully", models.CapitalizeWIPResponse{
		ProjectID: projectID,
		CostHead:  string(costHead),
		Amount:    money(req.Amount),
	}), nil
}

// varianceStatus classifies budget health at a ±10% variance threshold. The
// thresholds are a reporting convention, not a ledger invariant.
func varianceStatus(center domain.CostCenter) string {
	if center.Budget.IsZero() {
		return "on_track"
	}
	variancePercent := center.Variance().Div(center.Budget).Mul(decimal.NewFromInt(100))
	switch {
	case variancePercent.LessThan(decimal.NewFromInt(-10)):
		return "over_budget"
	case variancePercent.GreaterThan(decimal.NewFromInt(10)):
		return "under_budget"
	default:
		return "on_track"
	}
}

func toCostCenterResponse(center domain.CostCenter) models.CostCenterResponse {
	return models.CostCenterResponse{
		ID:            center.ID,
		Code:          center.Code,
		Name:          center.Name,
		Type:          center.Type,
		ParentID:      center.ParentID,
		ProjectID:     center.ProjectID,
		Level:         center.Level,
		Budget:        money(center.Budget),
		ActualCost:    money(center.ActualCost),
		CommittedCost: money(center.CommittedCost),
		Active:        center.Active,
		CreatedAt:     formatTime(center.CreatedAt),
		UpdatedAt:     formatTime(center.UpdatedAt),
	}
}

func toCostCenterNodeResponse(node *domain.CostCenterNode) models.CostCenterNodeResponse {
	out := models.CostCenterNodeResponse{
		CostCenterResponse: toCostCenterResponse(node.CostCenter),
		Children:           make([]models.CostCenterNodeResponse, 0, len(node.Children)),
	}
	for _, child := range node.Children {
		out.Children = append(out.Children, toCostCenterNodeResponse(child))
	}
	return out
}
