package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type AuditLog struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Actor     string    `gorm:"index"`
	Action    string
	Target    string
	Details   datatypes.JSON
	CreatedAt time.Time `gorm:"index"`
}

func (AuditLog) TableName() string { return "audit_logs" }
