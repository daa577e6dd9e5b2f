package delivery

import (
	"github.com/gofiber/fiber/v2"

	"recruitment/config"
	"recruitment/domain"
)

type inboxHandler struct {
	uc domain.InboxUseCase
}

func NewInboxHandler(app *fiber.App, useCase domain.InboxUseCase) {
	handler := &inboxHandler{
		uc: useCase,
	}

	route := app.Group("/inbox")
	route.Post("/", handler.Create)
	route.Get("/user/:userId", handler.ListByUser)
	route.Delete("/:id", handler.Archive)
}

func (ih *inboxHandler) Create(c *fiber.Ctx) error {
	var req domain.CreateUserNotificationRequest
	if err := config.StrictJSON.Unmarshal(c.Body(), &req); err != nil {
		return failure(c, domain.BadRequest("Invalid request body", map[string]any{"error": err.Error()}), "CreateUserNotification")
	}

	data, err := ih.uc.Create(c.Context(), &req)
	if err != nil {
		return failure(c, err, "CreateUserNotification")
	}

	config.PrintLogInfo(c, fiber.StatusCreated, "CreateUserNotification")
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success":      true,
		"notification": data,
	})
}

func (ih *inboxHandler) ListByUser(c *fiber.Ctx) error {
	userID, err := c.ParamsInt("userId")
	if err != nil {
		return failure(c, domain.BadRequest("Invalid user id", nil), "ListUserNotifications")
	}

	datas, err := ih.uc.ListByUser(c.Context(), userID)
	if err != nil {
		return failure(c, err, "ListUserNotifications")
	}

	config.PrintLogInfo(c, fiber.StatusOK, "ListUserNotifications")
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success":       true,
		"notifications": datas,
	})
}

func (ih *inboxHandler) Archive(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return failure(c, domain.BadRequest("Invalid notification id", nil), "ArchiveUserNotification")
	}

	data, err := ih.uc.Archive(c.Context(), id)
	if err != nil {
		return failure(c, err, "ArchiveUserNotification")
	}

	config.PrintLogInfo(c, fiber.StatusOK, "ArchiveUserNotification")
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success":      true,
		"notification": data,
	})
}

func failure(c *fiber.Ctx, err error, functionName string) error {
	appErr := domain.AsAppError(err)
	config.PrintLogInfo(c, appErr.Code, functionName)
	return c.Status(appErr.Code).JSON(fiber.Map{
		"success": false,
		"error":   appErr.Message,
		"details": appErr.Details,
	})
}
