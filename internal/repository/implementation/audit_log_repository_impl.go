package implementation

import (
	"context"

	"nursing-assistant-be/internal/entity"
	"nursing-assistant-be/internal/mapper"
	"nursing-assistant-be/internal/model"
	"nursing-assistant-be/internal/repository/contract"
	"nursing-assistant-be/internal/repository/specification"

	"gorm.io/gorm"
)

type AuditLogRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.AuditLogMapper
}

func NewAuditLogRepository(db *gorm.DB) contract.AuditLogRepository {
	return &AuditLogRepositoryImpl{
		db:     db,
		mapper: mapper.NewAuditLogMapper(),
	}
}

func (r *AuditLogRepositoryImpl) Create(ctx context.Context, log *entity.AuditLog) error {
	return r.db.WithContext(ctx).Create(r.mapper.ToModel(log)).Error
}

func (r *AuditLogRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.AuditLog, error) {
	var models []*model.AuditLog
	query := r.db.WithContext(ctx)
	for _, spec := range specs {
		query = spec.Apply(query)
	}
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	logs := make([]*entity.AuditLog, len(models))
	for i, m := range models {
		logs[i] = r.mapper.ToEntity(m)
	}
	return logs, nil
}
