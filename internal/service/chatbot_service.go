package service

import (
	"context"
	"sync"

	"nursing-assistant-be/internal/constant"
	"nursing-assistant-be/internal/dto"
	"nursing-assistant-be/internal/pkg/logger"
	"nursing-assistant-be/internal/repository/unitofwork"
	"nursing-assistant-be/pkg/rag/classify"
	"nursing-assistant-be/pkg/rag/compose"
	"nursing-assistant-be/pkg/rag/generate"
	"nursing-assistant-be/pkg/rag/relational"
	"nursing-assistant-be/pkg/rag/safety"
	"nursing-assistant-be/pkg/rag/vector"
)

type IChatbotService interface {
	// Ask runs the full pipeline for one query and always resolves to a
	// reply. Retrieval and generation failures degrade to fixed messages;
	// the error return covers caller resolution only.
	Ask(ctx context.Context, query, externalId string) (*dto.SendChatResponse, error)
}

type chatbotService struct {
	uowFactory          unitofwork.RepositoryFactory
	identityService     IIdentityService
	safetyFilter        *safety.Filter
	classifier          *classify.Classifier
	relationalRetriever *relational.Retriever
	vectorRetriever     *vector.Retriever
	generator           *generate.Generator
	logger              logger.ILogger
}

func NewChatbotService(
	uowFactory unitofwork.RepositoryFactory,
	identityService IIdentityService,
	safetyFilter *safety.Filter,
	classifier *classify.Classifier,
	relationalRetriever *relational.Retriever,
	vectorRetriever *vector.Retriever,
	generator *generate.Generator,
	log logger.ILogger,
) IChatbotService {
	return &chatbotService{
		uowFactory:          uowFactory,
		identityService:     identityService,
		safetyFilter:        safetyFilter,
		classifier:          classifier,
		relationalRetriever: relationalRetriever,
		vectorRetriever:     vectorRetriever,
		generator:           generator,
		logger:              log,
	}
}

func (s *chatbotService) Ask(ctx context.Context, query, externalId string) (*dto.SendChatResponse, error) {
	caller, err := s.identityService.Resolve(ctx, externalId)
	if err != nil {
		// An unreachable caller store must not take the chat down; the
		// query proceeds with guest visibility.
		s.logger.Warn("chatbot-service", "caller resolution failed, assuming guest", map[string]interface{}{
			"external_id": externalId,
			"error":       err.Error(),
		})
		caller = nil
	}

	role := constant.RoleGuest
	displayName := ""
	if caller != nil {
		role = caller.Role
		displayName = caller.DisplayName
	}

	// Safety gate first: a blocked query triggers no retrieval and no
	// generation at all.
	if s.safetyFilter.Blocked(query) {
		s.logger.Info("chatbot-service", "query blocked by safety filter", map[string]interface{}{
			"role": role,
		})
		return &dto.SendChatResponse{
			Reply:   constant.ChatRefusalMessage,
			Role:    role,
			Blocked: true,
		}, nil
	}

	categories := s.classifier.Classify(query)

	// The two retrieval paths are independent; run them concurrently, each
	// on its own unit of work.
	var (
		wg             sync.WaitGroup
		relationalText string
		results        []relational.CategoryResult
		vectorText     string
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		uow := s.uowFactory.NewUnitOfWork(ctx)
		relationalText, results = s.relationalRetriever.Fetch(ctx, uow, query, role, categories)
	}()
	go func() {
		defer wg.Done()
		uow := s.uowFactory.NewUnitOfWork(ctx)
		vectorText = s.vectorRetriever.Fetch(ctx, uow, query, role)
	}()
	wg.Wait()

	categoryNames := make([]string, 0, len(categories))
	for _, cat := range categories {
		categoryNames = append(categoryNames, string(cat))
	}
	usedFallback := false
	for _, r := range results {
		if r.Fallback {
			usedFallback = true
			break
		}
	}

	// Nothing retrieved means nothing to ground an answer on; skip the LLM
	// and return the fixed no-data reply.
	if compose.Empty(vectorText, relationalText) {
		return &dto.SendChatResponse{
			Reply:      constant.ChatNoDataMessage,
			Role:       role,
			Categories: categoryNames,
		}, nil
	}

	contextBlob := compose.Compose(role, displayName, vectorText, relationalText)
	reply := s.generator.Generate(ctx, contextBlob, query)

	return &dto.SendChatResponse{
		Reply:      reply,
		Role:       role,
		Categories: categoryNames,
		Fallback:   usedFallback,
	}, nil
}
