// Package audit ships the default audit sink implementations. Callers with
// their own audit pipeline implement domain.AuditSink instead.
package audit

import (
	"context"
	"sync"

	"github.com/PrinceDayani/RayERP-sub004/src/internal/domain"
	"github.com/PrinceDayani/RayERP-sub004/src/internal/logger"
)

// LogSink writes one structured log line per audit record.
type LogSink struct{}

func NewLogSink() *LogSink {
	return &LogSink{}
}

func (s *LogSink) Record(ctx context.Context, record domain.AuditRecord) {
	logger.Info("audit", logger.Fields{
		"actor":      record.Actor,
		"action":     record.Action,
		"entityType": record.EntityType,
		"entityId":   record.EntityID,
		"success":    record.Success,
		"detail":     record.Detail,
		"at":         record.At,
	})
}

// MemorySink collects records for inspection in tests.
type MemorySink struct {
	mu      sync.Mutex
	records []domain.AuditRecord
}

func NewMemorySink() *MemorySink {
	return &MemorySink{}
}

func (s *MemorySink) Record(ctx context.Context, record domain.AuditRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = append(s.records, record)
}

func (s *MemorySink) Records() []domain.AuditRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.AuditRecord, len(s.records))
	copy(out, s.records)
	return out
}
