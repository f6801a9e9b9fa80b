package unitofwork

import (
	"context"
	"fmt"

	"nursing-assistant-be/internal/constant"
	"nursing-assistant-be/internal/repository/contract"
	"nursing-assistant-be/internal/repository/implementation"

	"gorm.io/gorm"
)

type UnitOfWorkImpl struct {
	db *gorm.DB
	tx *gorm.DB
}

func NewUnitOfWork(db *gorm.DB) UnitOfWork {
	return &UnitOfWorkImpl{db: db}
}

func (u *UnitOfWorkImpl) getDB() *gorm.DB {
	if u.tx != nil {
		return u.tx
	}
	return u.db
}

func (u *UnitOfWorkImpl) Begin(ctx context.Context) error {
	if u.tx != nil {
		return fmt.Errorf("transaction already started")
	}
	u.tx = u.db.WithContext(ctx).Begin()
	return u.tx.Error
}

func (u *UnitOfWorkImpl) Commit() error {
	if u.tx == nil {
		return fmt.Errorf("no transaction to commit")
	}
	err := u.tx.Commit().Error
	u.tx = nil
	return err
}

func (u *UnitOfWorkImpl) Rollback() error {
	if u.tx == nil {
		return fmt.Errorf("no transaction to rollback")
	}
	err := u.tx.Rollback().Error
	u.tx = nil
	return err
}

func (u *UnitOfWorkImpl) RecordRepository(category constant.Category) contract.RecordRepository {
	db := u.getDB()
	switch category {
	case constant.CategoryTraining:
		return implementation.NewTrainingRepository(db)
	case constant.CategoryMeeting:
		return implementation.NewMeetingRepository(db)
	case constant.CategoryProject:
		return implementation.NewProjectRepository(db)
	case constant.CategoryUnit:
		return implementation.NewOrgUnitRepository(db)
	case constant.CategoryJob:
		return implementation.NewJobPostingRepository(db)
	case constant.CategoryNews:
		return implementation.NewNewsRepository(db)
	default:
		return nil
	}
}

func (u *UnitOfWorkImpl) CallerRepository() contract.CallerRepository {
	return implementation.NewCallerRepository(u.getDB())
}

func (u *UnitOfWorkImpl) DocumentEmbeddingRepository() contract.DocumentEmbeddingRepository {
	return implementation.NewDocumentEmbeddingRepository(u.getDB())
}

func (u *UnitOfWorkImpl) AuditLogRepository() contract.AuditLogRepository {
	return implementation.NewAuditLogRepository(u.getDB())
}
