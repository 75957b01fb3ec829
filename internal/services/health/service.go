// Package health reports process liveness and dependency status.
package health

import (
	"context"
	"database/sql"
	"time"
)

// Service encapsulates health-related checks.
type Service struct {
	db *sql.DB
}

// NewService constructs a new health service. db may be nil when running on
// the in-memory repo.
func NewService(db *sql.DB) *Service {
	return &Service{db: db}
}

// Status returns the health payload: overall liveness plus the storage mode.
func (s *Service) Status(ctx context.Context) map[string]any {
	payload := map[string]any{"ok": true, "storage": "memory"}
	if s.db == nil {
		return payload
	}
	payload["storage"] = "postgres"
	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := s.db.PingContext(pingCtx); err != nil {
		payload["ok"] = false
		payload["storage_error"] = err.Error()
	}
	return payload
}
