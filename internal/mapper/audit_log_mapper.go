package mapper

import (
	"encoding/json"

	"nursing-assistant-be/internal/entity"
	"nursing-assistant-be/internal/model"

	"gorm.io/datatypes"
)

type AuditLogMapper struct{}

func NewAuditLogMapper() *AuditLogMapper { return &AuditLogMapper{} }

func (m *AuditLogMapper) ToEntity(r *model.AuditLog) *entity.AuditLog {
	details := map[string]interface{}{}
	if len(r.Details) > 0 {
		// Unparseable details are kept as an empty map rather than failing a read.
		_ = json.Unmarshal(r.Details, &details)
	}
	return &entity.AuditLog{
		Id:        r.Id,
		Actor:     r.Actor,
		Action:    r.Action,
		Target:    r.Target,
		Details:   details,
		CreatedAt: r.CreatedAt,
	}
}

func (m *AuditLogMapper) ToModel(e *entity.AuditLog) *model.AuditLog {
	var details datatypes.JSON
	if e.Details != nil {
		if raw, err := json.Marshal(e.Details); err == nil {
			details = raw
		}
	}
	return &model.AuditLog{
		Id:        e.Id,
		Actor:     e.Actor,
		Action:    e.Action,
		Target:    e.Target,
		Details:   details,
		CreatedAt: e.CreatedAt,
	}
}
