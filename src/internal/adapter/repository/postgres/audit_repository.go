package postgres

import (
	"context"
	"database/sql"
	"encoding/json"

	"github.com/PrinceDayani/RayERP-sub004/src/internal/domain"
	"github.com/PrinceDayani/RayERP-sub004/src/internal/logger"
)

// AuditRepository persists audit records. Failures are logged and swallowed
// so a broken audit trail never blocks the business operation.
type AuditRepository struct {
	db *sql.DB
}

func NewAuditRepository(db *sql.DB) *AuditRepository {
	return &AuditRepository{db: db}
}

func (r *AuditRepository) Record(ctx context.Context, record domain.AuditRecord) {
	detail, err := json.Marshal(record.Detail)
	if err != nil {
		logger.Error("audit repository marshal detail failed", err, logger.Fields{"action": record.Action})
		detail = []byte("{}")
	}

	const query = `
INSERT INTO audit_logs (actor, action, entity_type, entity_id, detail, success, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)`

	if _, err := r.db.ExecContext(
		ctx,
		query,
		record.Actor,
		record.Action,
		record.EntityType,
		record.EntityID,
		detail,
		record.Success,
		record.At,
	); err != nil {
		logger.Error("audit repository insert failed", err, logger.Fields{
			"action":     record.Action,
			"entityType": record.EntityType,
		})
	}
}
