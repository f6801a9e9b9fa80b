package contract

import (
	"context"

	"nursing-assistant-be/internal/entity"
	"nursing-assistant-be/internal/repository/specification"
)

type AuditLogRepository interface {
	Create(ctx context.Context, log *entity.AuditLog) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.AuditLog, error)
}
