package service

import (
	"context"
	"strings"
	"time"

	"nursing-assistant-be/internal/constant"
	"nursing-assistant-be/internal/dto"
	"nursing-assistant-be/internal/pkg/logger"
	"nursing-assistant-be/pkg/line"

	"github.com/redis/go-redis/v9"
)

// dedupTTL bounds how long a webhook event id is remembered. LINE redelivers
// within minutes, so an hour is plenty.
const dedupTTL = time.Hour

type IWebhookService interface {
	HandleEvents(ctx context.Context, req *dto.WebhookRequest) error
}

type webhookService struct {
	chatbotService  IChatbotService
	identityService IIdentityService
	lineClient      *line.Client
	rdb             *redis.Client
	logger          logger.ILogger
}

func NewWebhookService(
	chatbotService IChatbotService,
	identityService IIdentityService,
	lineClient *line.Client,
	rdb *redis.Client,
	log logger.ILogger,
) IWebhookService {
	return &webhookService{
		chatbotService:  chatbotService,
		identityService: identityService,
		lineClient:      lineClient,
		rdb:             rdb,
		logger:          log,
	}
}

func (s *webhookService) HandleEvents(ctx context.Context, req *dto.WebhookRequest) error {
	for _, event := range req.Events {
		if event.Type != "message" || event.Message.Type != "text" {
			continue
		}
		if s.alreadyHandled(ctx, event.WebhookEventId) {
			s.logger.Info("webhook-service", "skipping duplicate event", map[string]interface{}{
				"event_id":   event.WebhookEventId,
				"redelivery": event.DeliveryContext.IsRedelivery,
			})
			continue
		}

		s.handleTextMessage(ctx, event)
	}
	return nil
}

// alreadyHandled marks the event id in Redis and reports whether it was
// already there. Without Redis, dedup is skipped and redeliveries are
// answered twice, which is harmless.
func (s *webhookService) alreadyHandled(ctx context.Context, eventId string) bool {
	if s.rdb == nil || eventId == "" {
		return false
	}
	ok, err := s.rdb.SetNX(ctx, "line:event:"+eventId, 1, dedupTTL).Result()
	if err != nil {
		s.logger.Warn("webhook-service", "dedup check failed", map[string]interface{}{
			"event_id": eventId,
			"error":    err.Error(),
		})
		return false
	}
	return !ok
}

func (s *webhookService) handleTextMessage(ctx context.Context, event dto.WebhookEvent) {
	text := strings.TrimSpace(event.Message.Text)
	userId := event.Source.UserId

	var reply string
	if strings.HasPrefix(text, constant.RegisterCommandPrefix) {
		reply = s.handleRegistration(ctx, userId, text)
	} else {
		res, err := s.chatbotService.Ask(ctx, text, userId)
		if err != nil {
			s.logger.Error("webhook-service", "chat pipeline failed", map[string]interface{}{
				"error": err.Error(),
			})
			reply = constant.ChatApologyMessage
		} else {
			reply = res.Reply
		}
	}

	if err := s.lineClient.ReplyText(ctx, event.ReplyToken, reply); err != nil {
		s.logger.Error("webhook-service", "failed to send reply", map[string]interface{}{
			"error": err.Error(),
		})
	}
}

// handleRegistration parses "ลงทะเบียน <ชื่อ> <หน่วยงาน>". Name and department
// are both required; anything after the second token joins the department.
func (s *webhookService) handleRegistration(ctx context.Context, userId, text string) string {
	parts := strings.Fields(strings.TrimPrefix(text, constant.RegisterCommandPrefix))
	if len(parts) < 2 {
		return "รูปแบบ: " + constant.RegisterCommandPrefix + " <ชื่อ> <หน่วยงาน>"
	}

	displayName := parts[0]
	department := strings.Join(parts[1:], " ")

	if _, err := s.identityService.Register(ctx, userId, displayName, department); err != nil {
		s.logger.Error("webhook-service", "registration failed", map[string]interface{}{
			"error": err.Error(),
		})
		return constant.ChatApologyMessage
	}
	return constant.RegisterSuccessMessage
}
