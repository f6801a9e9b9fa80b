package controller

import (
	"encoding/json"

	"nursing-assistant-be/internal/config"
	"nursing-assistant-be/internal/dto"
	"nursing-assistant-be/internal/pkg/logger"
	"nursing-assistant-be/internal/service"
	"nursing-assistant-be/pkg/line"

	"github.com/gofiber/fiber/v2"
)

type IWebhookController interface {
	RegisterRoutes(r fiber.Router)
	HandleLineWebhook(ctx *fiber.Ctx) error
}

type webhookController struct {
	service service.IWebhookService
	cfg     *config.LineConfig
	logger  logger.ILogger
}

func NewWebhookController(service service.IWebhookService, cfg *config.LineConfig, log logger.ILogger) IWebhookController {
	return &webhookController{
		service: service,
		cfg:     cfg,
		logger:  log,
	}
}

func (c *webhookController) RegisterRoutes(r fiber.Router) {
	r.Post("/line/webhook", c.HandleLineWebhook)
}

// HandleLineWebhook verifies the platform signature over the raw body before
// any parsing. LINE expects a fast 200; handler failures are logged, never
// surfaced, so the platform does not retry storms at us.
func (c *webhookController) HandleLineWebhook(ctx *fiber.Ctx) error {
	body := ctx.Body()
	signature := ctx.Get("X-Line-Signature")

	if !line.VerifySignature(c.cfg.ChannelSecret, body, signature) {
		c.logger.Warn("webhook-controller", "rejected webhook with bad signature", nil)
		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"success": false,
			"code":    401,
			"message": "Invalid signature",
		})
	}

	var req dto.WebhookRequest
	if err := json.Unmarshal(body, &req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"code":    400,
			"message": "Invalid payload",
		})
	}

	if err := c.service.HandleEvents(ctx.Context(), &req); err != nil {
		c.logger.Error("webhook-controller", "event handling failed", map[string]interface{}{
			"error": err.Error(),
		})
	}

	return ctx.SendStatus(fiber.StatusOK)
}
