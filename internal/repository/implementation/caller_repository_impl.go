package implementation

import (
	"context"
	"errors"

	"nursing-assistant-be/internal/entity"
	"nursing-assistant-be/internal/mapper"
	"nursing-assistant-be/internal/model"
	"nursing-assistant-be/internal/repository/contract"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CallerRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.CallerMapper
}

func NewCallerRepository(db *gorm.DB) contract.CallerRepository {
	return &CallerRepositoryImpl{
		db:     db,
		mapper: mapper.NewCallerMapper(),
	}
}

func (r *CallerRepositoryImpl) FindByExternalId(ctx context.Context, externalId string) (*entity.Caller, error) {
	var m model.Caller
	err := r.db.WithContext(ctx).Where("external_id = ?", externalId).First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *CallerRepositoryImpl) Upsert(ctx context.Context, caller *entity.Caller) error {
	m := r.mapper.ToModel(caller)
	// Latest registration overwrites name/department; role stays staff.
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "external_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"display_name", "department", "role", "updated_at"}),
	}).Create(m).Error
	if err != nil {
		return err
	}
	*caller = *r.mapper.ToEntity(m)
	return nil
}
