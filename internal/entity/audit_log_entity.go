package entity

import (
	"time"

	"github.com/google/uuid"
)

// AuditLog records an administrative mutation (who did what to which record).
type AuditLog struct {
	Id        uuid.UUID
	Actor     string
	Action    string
	Target    string
	Details   map[string]interface{}
	CreatedAt time.Time
}
