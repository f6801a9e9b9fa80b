package service

import (
	"context"
	"encoding/json"
	"time"

	"nursing-assistant-be/internal/dto"
	"nursing-assistant-be/internal/entity"
	"nursing-assistant-be/internal/pkg/logger"
	"nursing-assistant-be/internal/repository/unitofwork"
	"nursing-assistant-be/pkg/embedding"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

// consumerService is the embedding worker: it takes ingested documents off
// the bus, generates their vectors, and writes them into the store. Embedding
// failures Nack for redelivery; malformed payloads Ack to stop the retry loop.
type consumerService struct {
	pubSub            *gochannel.GoChannel
	topicName         string
	uowFactory        unitofwork.RepositoryFactory
	embeddingProvider embedding.EmbeddingProvider
	logger            logger.ILogger
}

func NewConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	uowFactory unitofwork.RepositoryFactory,
	embeddingProvider embedding.EmbeddingProvider,
	log logger.ILogger,
) IConsumerService {
	return &consumerService{
		pubSub:            pubSub,
		topicName:         topicName,
		uowFactory:        uowFactory,
		embeddingProvider: embeddingProvider,
		logger:            log,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (cs *consumerService) processMessage(ctx context.Context, msg *message.Message) {
	var payload dto.EmbedDocumentMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		cs.logger.Error("consumer-service", "failed to unmarshal message", map[string]interface{}{
			"error": err.Error(),
		})
		msg.Ack()
		return
	}

	cs.logger.Info("consumer-service", "embedding document", map[string]interface{}{
		"document_id": payload.Id.String(),
		"namespace":   payload.Namespace,
	})

	res, err := cs.embeddingProvider.Generate(ctx, payload.Title+"\n"+payload.Content, "retrieval_document")
	if err != nil {
		cs.logger.Error("consumer-service", "embedding generation failed", map[string]interface{}{
			"document_id": payload.Id.String(),
			"error":       err.Error(),
		})
		msg.Nack()
		return
	}

	uow := cs.uowFactory.NewUnitOfWork(ctx)
	err = uow.DocumentEmbeddingRepository().Create(ctx, &entity.DocumentEmbedding{
		Id:             payload.Id,
		Namespace:      payload.Namespace,
		Title:          payload.Title,
		Content:        payload.Content,
		Access:         payload.Access,
		EmbeddingValue: res.Embedding.Values,
		CreatedAt:      time.Now(),
	})
	if err != nil {
		cs.logger.Error("consumer-service", "failed to store embedding", map[string]interface{}{
			"document_id": payload.Id.String(),
			"error":       err.Error(),
		})
		msg.Nack()
		return
	}

	cs.logger.Info("consumer-service", "document embedded", map[string]interface{}{
		"document_id": payload.Id.String(),
	})
	msg.Ack()
}
