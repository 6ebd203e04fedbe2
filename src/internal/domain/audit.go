package domain

import (
	"context"
	"time"
)

type AuditRecord struct {
	Actor      string
	Action     string
	EntityType string
	EntityID   string
	Detail     map[string]any
	Success    bool
	At         time.Time
}

// AuditSink receives one record per mutating operation. Implementations are
// supplied by the caller; a logging sink ships with this module.
type AuditSink interface {
	Record(ctx context.Context, record AuditRecord)
}
