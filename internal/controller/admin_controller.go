package controller

import (
	"fmt"

	"nursing-assistant-be/internal/constant"
	"nursing-assistant-be/internal/dto"
	"nursing-assistant-be/internal/entity"
	"nursing-assistant-be/internal/pkg/serverutils"
	"nursing-assistant-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IAdminController interface {
	RegisterRoutes(r fiber.Router)
}

type adminController struct {
	service service.IAdminService
}

func NewAdminController(service service.IAdminService) IAdminController {
	return &adminController{service: service}
}

func (c *adminController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/admin", serverutils.JwtMiddleware)

	h.Get("/records/:category", c.ListRecords)
	h.Post("/records/:category", c.CreateRecord)
	h.Put("/records/:category/:id", c.UpdateRecord)
	h.Delete("/records/:category/:id", c.DeleteRecord)

	h.Get("/documents", c.ListDocuments)
	h.Post("/documents", c.IngestDocument)
	h.Delete("/documents/:id", c.DeleteDocument)

	h.Get("/audit-logs", c.ListAuditLogs)
}

func (c *adminController) actor(ctx *fiber.Ctx) string {
	if email, ok := ctx.Locals("admin_email").(string); ok {
		return email
	}
	return "unknown"
}

// parseRecordBody binds the category-specific payload and projects it into
// the category's entity. New records get a fresh id; updates reuse theirs.
func parseRecordBody(ctx *fiber.Ctx, category constant.Category, id uuid.UUID) (entity.Record, error) {
	bind := func(req interface{}) error {
		if err := ctx.BodyParser(req); err != nil {
			return fmt.Errorf("invalid request body")
		}
		return serverutils.ValidateRequest(req)
	}

	switch category {
	case constant.CategoryTraining:
		var req dto.TrainingRequest
		if err := bind(&req); err != nil {
			return nil, err
		}
		return req.ToEntity(id), nil
	case constant.CategoryMeeting:
		var req dto.MeetingRequest
		if err := bind(&req); err != nil {
			return nil, err
		}
		return req.ToEntity(id), nil
	case constant.CategoryProject:
		var req dto.ProjectRequest
		if err := bind(&req); err != nil {
			return nil, err
		}
		return req.ToEntity(id), nil
	case constant.CategoryUnit:
		var req dto.OrgUnitRequest
		if err := bind(&req); err != nil {
			return nil, err
		}
		return req.ToEntity(id), nil
	case constant.CategoryJob:
		var req dto.JobPostingRequest
		if err := bind(&req); err != nil {
			return nil, err
		}
		return req.ToEntity(id), nil
	case constant.CategoryNews:
		var req dto.NewsRequest
		if err := bind(&req); err != nil {
			return nil, err
		}
		return req.ToEntity(id), nil
	default:
		return nil, fmt.Errorf("unknown category: %s", category)
	}
}

func (c *adminController) CreateRecord(ctx *fiber.Ctx) error {
	category := constant.Category(ctx.Params("category"))
	record, err := parseRecordBody(ctx, category, uuid.New())
	if err != nil {
		return badRequest(ctx, err)
	}

	if err := c.service.CreateRecord(ctx.Context(), category, record, c.actor(ctx)); err != nil {
		return badRequest(ctx, err)
	}
	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"code":    201,
		"message": "Record created",
		"data":    fiber.Map{"id": record.RecordId()},
	})
}

func (c *adminController) UpdateRecord(ctx *fiber.Ctx) error {
	category := constant.Category(ctx.Params("category"))
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return badRequest(ctx, fmt.Errorf("invalid record id"))
	}

	record, err := parseRecordBody(ctx, category, id)
	if err != nil {
		return badRequest(ctx, err)
	}

	if err := c.service.UpdateRecord(ctx.Context(), category, record, c.actor(ctx)); err != nil {
		return badRequest(ctx, err)
	}
	return ctx.JSON(fiber.Map{
		"success": true,
		"code":    200,
		"message": "Record updated",
		"data":    nil,
	})
}

func (c *adminController) DeleteRecord(ctx *fiber.Ctx) error {
	category := constant.Category(ctx.Params("category"))
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return badRequest(ctx, fmt.Errorf("invalid record id"))
	}

	if err := c.service.DeleteRecord(ctx.Context(), category, id, c.actor(ctx)); err != nil {
		return badRequest(ctx, err)
	}
	return ctx.JSON(fiber.Map{
		"success": true,
		"code":    200,
		"message": "Record deleted",
		"data":    nil,
	})
}

func (c *adminController) ListRecords(ctx *fiber.Ctx) error {
	category := constant.Category(ctx.Params("category"))
	limit := ctx.QueryInt("limit", 20)
	offset := ctx.QueryInt("offset", 0)

	res, err := c.service.ListRecords(ctx.Context(), category, limit, offset)
	if err != nil {
		return badRequest(ctx, err)
	}
	return ctx.JSON(fiber.Map{
		"success": true,
		"code":    200,
		"message": "OK",
		"data":    res,
	})
}

func (c *adminController) IngestDocument(ctx *fiber.Ctx) error {
	var req dto.IngestDocumentRequest
	if err := ctx.BodyParser(&req); err != nil {
		return badRequest(ctx, fmt.Errorf("invalid request body"))
	}
	if err := serverutils.ValidateRequest(&req); err != nil {
		return badRequest(ctx, err)
	}

	res, err := c.service.IngestDocument(ctx.Context(), &req, c.actor(ctx))
	if err != nil {
		return badRequest(ctx, err)
	}
	return ctx.Status(fiber.StatusAccepted).JSON(fiber.Map{
		"success": true,
		"code":    202,
		"message": "Document queued for embedding",
		"data":    res,
	})
}

func (c *adminController) ListDocuments(ctx *fiber.Ctx) error {
	limit := ctx.QueryInt("limit", 20)
	offset := ctx.QueryInt("offset", 0)

	res, err := c.service.ListDocuments(ctx.Context(), limit, offset)
	if err != nil {
		return badRequest(ctx, err)
	}
	return ctx.JSON(fiber.Map{
		"success": true,
		"code":    200,
		"message": "OK",
		"data":    res,
	})
}

func (c *adminController) DeleteDocument(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return badRequest(ctx, fmt.Errorf("invalid document id"))
	}

	if err := c.service.DeleteDocument(ctx.Context(), id, c.actor(ctx)); err != nil {
		return badRequest(ctx, err)
	}
	return ctx.JSON(fiber.Map{
		"success": true,
		"code":    200,
		"message": "Document deleted",
		"data":    nil,
	})
}

func (c *adminController) ListAuditLogs(ctx *fiber.Ctx) error {
	limit := ctx.QueryInt("limit", 50)
	offset := ctx.QueryInt("offset", 0)

	res, err := c.service.ListAuditLogs(ctx.Context(), limit, offset)
	if err != nil {
		return badRequest(ctx, err)
	}
	return ctx.JSON(fiber.Map{
		"success": true,
		"code":    200,
		"message": "OK",
		"data":    res,
	})
}

func badRequest(ctx *fiber.Ctx, err error) error {
	return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"success": false,
		"code":    400,
		"message": err.Error(),
	})
}
