package models

import (
	"time"

	"github.com/google/uuid"
)

type AuditLog struct {
	ID         uuid.UUID `json:"id"`
	SessionID  string    `json:"session_id,omitempty"`
	ActorType  string    `json:"actor_type"` // admin/system/worker
	Action     string    `json:"action"`
	EntityType string    `json:"entity_type"` // plan/month/offer/collateral/timeline
	EntityID   string    `json:"entity_id,omitempty"`
	Meta       any       `json:"meta,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}
