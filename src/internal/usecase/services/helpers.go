package services

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/PrinceDayani/RayERP-sub004/src/internal/domain"
)

func money(d decimal.Decimal) string {
	return d.StringFixed(2)
}

func formatTime(t time.Time) string {
	return t.Format(time.RFC3339)
}

func formatTimePtr(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(time.RFC3339)
}

func recordAudit(ctx context.Context, sink domain.AuditSink, actor, action, entityType, entityID string, success bool, detail map[string]any) {
	if sink == nil {
		return
	}
	sink.Record(ctx, domain.AuditRecord{
		Actor:      actor,
		Action:     action,
		EntityType: entityType,
		EntityID:   entityID,
		Detail:     detail,
		Success:    success,
		At:         time.Now().UTC(),
	})
}
