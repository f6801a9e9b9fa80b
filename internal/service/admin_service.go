package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"nursing-assistant-be/internal/constant"
	"nursing-assistant-be/internal/dto"
	"nursing-assistant-be/internal/entity"
	"nursing-assistant-be/internal/pkg/logger"
	"nursing-assistant-be/internal/repository/specification"
	"nursing-assistant-be/internal/repository/unitofwork"
	"nursing-assistant-be/pkg/events"
	pkgNats "nursing-assistant-be/pkg/nats"

	"github.com/google/uuid"
)

type IAdminService interface {
	CreateRecord(ctx context.Context, category constant.Category, record entity.Record, actor string) error
	UpdateRecord(ctx context.Context, category constant.Category, record entity.Record, actor string) error
	DeleteRecord(ctx context.Context, category constant.Category, id uuid.UUID, actor string) error
	ListRecords(ctx context.Context, category constant.Category, limit, offset int) ([]*dto.RecordSummaryResponse, error)

	IngestDocument(ctx context.Context, req *dto.IngestDocumentRequest, actor string) (*dto.IngestDocumentResponse, error)
	ListDocuments(ctx context.Context, limit, offset int) ([]*dto.DocumentSummaryResponse, error)
	DeleteDocument(ctx context.Context, id uuid.UUID, actor string) error

	ListAuditLogs(ctx context.Context, limit, offset int) ([]*dto.AuditLogResponse, error)
}

type adminService struct {
	uowFactory       unitofwork.RepositoryFactory
	publisherService IPublisherService
	natsPub          *pkgNats.Publisher
	logger           logger.ILogger
}

func NewAdminService(
	uowFactory unitofwork.RepositoryFactory,
	publisherService IPublisherService,
	natsPub *pkgNats.Publisher,
	log logger.ILogger,
) IAdminService {
	return &adminService{
		uowFactory:       uowFactory,
		publisherService: publisherService,
		natsPub:          natsPub,
		logger:           log,
	}
}

func (s *adminService) CreateRecord(ctx context.Context, category constant.Category, record entity.Record, actor string) error {
	return s.mutateRecord(ctx, category, actor, "RECORD_CREATED", record.RecordTitle(), func(uow unitofwork.UnitOfWork) error {
		return uow.RecordRepository(category).Create(ctx, record)
	})
}

func (s *adminService) UpdateRecord(ctx context.Context, category constant.Category, record entity.Record, actor string) error {
	return s.mutateRecord(ctx, category, actor, "RECORD_UPDATED", record.RecordTitle(), func(uow unitofwork.UnitOfWork) error {
		return uow.RecordRepository(category).Update(ctx, record)
	})
}

func (s *adminService) DeleteRecord(ctx context.Context, category constant.Category, id uuid.UUID, actor string) error {
	return s.mutateRecord(ctx, category, actor, "RECORD_DELETED", id.String(), func(uow unitofwork.UnitOfWork) error {
		return uow.RecordRepository(category).Delete(ctx, id)
	})
}

// mutateRecord wraps one mutation plus its audit row in a transaction, then
// emits the bus event after commit so consumers never see uncommitted state.
func (s *adminService) mutateRecord(
	ctx context.Context,
	category constant.Category,
	actor, action, target string,
	mutate func(uow unitofwork.UnitOfWork) error,
) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if uow.RecordRepository(category) == nil {
		return fmt.Errorf("unknown category: %s", category)
	}

	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback()

	if err := mutate(uow); err != nil {
		return err
	}

	details := map[string]interface{}{"category": string(category)}
	if err := uow.AuditLogRepository().Create(ctx, &entity.AuditLog{
		Id:        uuid.New(),
		Actor:     actor,
		Action:    action,
		Target:    target,
		Details:   details,
		CreatedAt: time.Now(),
	}); err != nil {
		return err
	}

	if err := uow.Commit(); err != nil {
		return err
	}

	s.publishEvent(ctx, action, actor, target, details)
	return nil
}

func (s *adminService) ListRecords(ctx context.Context, category constant.Category, limit, offset int) ([]*dto.RecordSummaryResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	repo := uow.RecordRepository(category)
	if repo == nil {
		return nil, fmt.Errorf("unknown category: %s", category)
	}

	if limit <= 0 {
		limit = 20
	}
	records, err := repo.FindLatest(ctx, specification.Pagination{Limit: limit, Offset: offset})
	if err != nil {
		return nil, err
	}

	result := make([]*dto.RecordSummaryResponse, 0, len(records))
	for _, r := range records {
		result = append(result, &dto.RecordSummaryResponse{
			Id:     r.RecordId(),
			Title:  r.RecordTitle(),
			Fields: r.RecordFields(),
		})
	}
	return result, nil
}

// IngestDocument hands the document to the embedding worker. The write to the
// vector store happens asynchronously; the audit row is written immediately.
func (s *adminService) IngestDocument(ctx context.Context, req *dto.IngestDocumentRequest, actor string) (*dto.IngestDocumentResponse, error) {
	id := uuid.New()

	namespace := req.Namespace
	if namespace == "" {
		namespace = "documents"
	}
	access := req.Access
	if access == "" {
		access = constant.VisibilityPublic
	}

	msg := dto.EmbedDocumentMessage{
		Id:        id,
		Namespace: namespace,
		Title:     req.Title,
		Content:   req.Content,
		Access:    access,
	}
	msgJson, err := json.Marshal(msg)
	if err != nil {
		return nil, err
	}
	if err := s.publisherService.Publish(ctx, msgJson); err != nil {
		return nil, fmt.Errorf("failed to queue document for embedding: %w", err)
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	details := map[string]interface{}{"namespace": namespace, "access": access}
	if err := uow.AuditLogRepository().Create(ctx, &entity.AuditLog{
		Id:        uuid.New(),
		Actor:     actor,
		Action:    "DOCUMENT_INGESTED",
		Target:    req.Title,
		Details:   details,
		CreatedAt: time.Now(),
	}); err != nil {
		s.logger.Warn("admin-service", "failed to write audit log", map[string]interface{}{
			"error": err.Error(),
		})
	}

	s.publishEvent(ctx, "DOCUMENT_INGESTED", actor, req.Title, details)
	return &dto.IngestDocumentResponse{Id: id}, nil
}

func (s *adminService) ListDocuments(ctx context.Context, limit, offset int) ([]*dto.DocumentSummaryResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	if limit <= 0 {
		limit = 20
	}
	docs, err := uow.DocumentEmbeddingRepository().FindAll(ctx,
		specification.OrderBy{Field: "created_at", Desc: true},
		specification.Pagination{Limit: limit, Offset: offset},
	)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.DocumentSummaryResponse, 0, len(docs))
	for _, doc := range docs {
		result = append(result, &dto.DocumentSummaryResponse{
			Id:        doc.Id,
			Namespace: doc.Namespace,
			Title:     doc.Title,
			Access:    doc.Access,
			CreatedAt: doc.CreatedAt,
		})
	}
	return result, nil
}

func (s *adminService) DeleteDocument(ctx context.Context, id uuid.UUID, actor string) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback()

	if err := uow.DocumentEmbeddingRepository().Delete(ctx, id); err != nil {
		return err
	}
	if err := uow.AuditLogRepository().Create(ctx, &entity.AuditLog{
		Id:        uuid.New(),
		Actor:     actor,
		Action:    "DOCUMENT_DELETED",
		Target:    id.String(),
		CreatedAt: time.Now(),
	}); err != nil {
		return err
	}
	if err := uow.Commit(); err != nil {
		return err
	}

	s.publishEvent(ctx, "DOCUMENT_DELETED", actor, id.String(), nil)
	return nil
}

func (s *adminService) ListAuditLogs(ctx context.Context, limit, offset int) ([]*dto.AuditLogResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	if limit <= 0 {
		limit = 50
	}
	logs, err := uow.AuditLogRepository().FindAll(ctx,
		specification.OrderBy{Field: "created_at", Desc: true},
		specification.Pagination{Limit: limit, Offset: offset},
	)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.AuditLogResponse, 0, len(logs))
	for _, l := range logs {
		result = append(result, &dto.AuditLogResponse{
			Id:        l.Id,
			Actor:     l.Actor,
			Action:    l.Action,
			Target:    l.Target,
			Details:   l.Details,
			CreatedAt: l.CreatedAt,
		})
	}
	return result, nil
}

func (s *adminService) publishEvent(ctx context.Context, eventType, actor, target string, details map[string]interface{}) {
	if err := s.natsPub.Publish(ctx, events.NewAdminEvent(eventType, actor, target, details)); err != nil {
		s.logger.Warn("admin-service", "failed to publish event", map[string]interface{}{
			"event": eventType,
			"error": err.Error(),
		})
	}
}
