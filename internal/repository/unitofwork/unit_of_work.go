package unitofwork

import (
	"context"

	"nursing-assistant-be/internal/constant"
	"nursing-assistant-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	// RecordRepository returns the relational collection bound to a category.
	// Returns nil for an unknown category.
	RecordRepository(category constant.Category) contract.RecordRepository

	CallerRepository() contract.CallerRepository
	DocumentEmbeddingRepository() contract.DocumentEmbeddingRepository
	AuditLogRepository() contract.AuditLogRepository
}
