package delivery

import (
	"net/url"

	"github.com/gofiber/fiber/v2"

	"recruitment/config"
	"recruitment/domain"
	"recruitment/services/notification/usecase"
)

type notificationHandler struct {
	uc domain.NotificationUseCase
}

func NewNotificationHandler(app *fiber.App, useCase domain.NotificationUseCase) {
	handler := &notificationHandler{
		uc: useCase,
	}

	route := app.Group("/notification")
	route.Post("/add", handler.AddCompleteNotification)
	route.Get("/view", handler.ViewNotifications)
	route.Get("/getById/:id", handler.GetNotificationByID)
	route.Put("/edit/:id", handler.EditNotification)
	route.Patch("/approve/:id", handler.ApproveNotification)
	route.Delete("/delete/:id", handler.ArchiveNotification)
	route.Patch("/unarchive/:id", handler.UnarchiveNotification)
	route.Get("/home", handler.GetHomePageNotifications)
	route.Get("/category/:category", handler.GetNotificationsByCategory)
}

func (nh *notificationHandler) AddCompleteNotification(c *fiber.Ctx) error {
	var payload domain.NotificationPayload
	if err := config.StrictJSON.Unmarshal(c.Body(), &payload); err != nil {
		return failure(c, domain.BadRequest("Invalid request body", map[string]any{"error": err.Error()}), "AddCompleteNotification")
	}

	res, err := nh.uc.AddCompleteNotification(c.Context(), &payload)
	if err != nil {
		return failure(c, err, "AddCompleteNotification")
	}

	config.PrintLogInfo(c, fiber.StatusOK, "AddCompleteNotification")
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"data":    res,
	})
}

func (nh *notificationHandler) ViewNotifications(c *fiber.Ctx) error {
	datas, err := nh.uc.ViewNotifications(c.Context())
	if err != nil {
		return failure(c, err, "ViewNotifications")
	}

	config.PrintLogInfo(c, fiber.StatusOK, "ViewNotifications")
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success":       true,
		"notifications": datas,
	})
}

func (nh *notificationHandler) GetNotificationByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return failure(c, domain.BadRequest("Invalid notification id", nil), "GetNotificationByID")
	}

	data, err := nh.uc.GetNotificationByID(c.Context(), id)
	if err != nil {
		return failure(c, err, "GetNotificationByID")
	}

	config.PrintLogInfo(c, fiber.StatusOK, "GetNotificationByID")
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success":      true,
		"notification": data,
	})
}

func (nh *notificationHandler) EditNotification(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return failure(c, domain.BadRequest("Invalid notification id", nil), "EditNotification")
	}

	var payload domain.NotificationPayload
	if err := config.StrictJSON.Unmarshal(c.Body(), &payload); err != nil {
		return failure(c, domain.BadRequest("Invalid request body", map[string]any{"error": err.Error()}), "EditNotification")
	}

	data, err := nh.uc.EditNotification(c.Context(), id, &payload)
	if err != nil {
		return failure(c, err, "EditNotification")
	}

	config.PrintLogInfo(c, fiber.StatusOK, "EditNotification")
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success":      true,
		"notification": data,
	})
}

func (nh *notificationHandler) ApproveNotification(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return failure(c, domain.BadRequest("Invalid notification id", nil), "ApproveNotification")
	}

	// An empty body approves as the default reviewer.
	var payload domain.ApprovePayload
	if len(c.Body()) > 0 {
		if err := config.StrictJSON.Unmarshal(c.Body(), &payload); err != nil {
			return failure(c, domain.BadRequest("Invalid request body", map[string]any{"error": err.Error()}), "ApproveNotification")
		}
	}

	data, err := nh.uc.ApproveNotification(c.Context(), id, payload.ApprovedBy, payload.VerifiedBy)
	if err != nil {
		return failure(c, err, "ApproveNotification")
	}

	config.PrintLogInfo(c, fiber.StatusOK, "ApproveNotification")
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success":      true,
		"notification": data,
	})
}

func (nh *notificationHandler) ArchiveNotification(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return failure(c, domain.BadRequest("Invalid notification id", nil), "ArchiveNotification")
	}

	data, err := nh.uc.ArchiveNotification(c.Context(), id)
	if err != nil {
		return failure(c, err, "ArchiveNotification")
	}

	config.PrintLogInfo(c, fiber.StatusOK, "ArchiveNotification")
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success":      true,
		"notification": data,
	})
}

func (nh *notificationHandler) UnarchiveNotification(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return failure(c, domain.BadRequest("Invalid notification id", nil), "UnarchiveNotification")
	}

	data, err := nh.uc.UnarchiveNotification(c.Context(), id)
	if err != nil {
		return failure(c, err, "UnarchiveNotification")
	}

	config.PrintLogInfo(c, fiber.StatusOK, "UnarchiveNotification")
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success":      true,
		"notification": data,
	})
}

func (nh *notificationHandler) GetHomePageNotifications(c *fiber.Ctx) error {
	data, err := nh.uc.GetHomePageNotifications(c.Context())
	if err != nil {
		return failure(c, err, "GetHomePageNotifications")
	}

	config.PrintLogInfo(c, fiber.StatusOK, "GetHomePageNotifications")
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"data":    data,
	})
}

func (nh *notificationHandler) GetNotificationsByCategory(c *fiber.Ctx) error {
	category, err := url.PathUnescape(c.Params("category"))
	if err != nil {
		return failure(c, domain.BadRequest("Invalid category", nil), "GetNotificationsByCategory")
	}

	page := c.QueryInt("page", usecase.DefaultPage)
	limit := c.QueryInt("limit", usecase.DefaultLimit)

	res, err := nh.uc.GetNotificationsByCategory(c.Context(), category, page, limit)
	if err != nil {
		return failure(c, err, "GetNotificationsByCategory")
	}

	config.PrintLogInfo(c, fiber.StatusOK, "GetNotificationsByCategory")
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"data":    res.Data,
		"total":   res.Total,
		"page":    res.Page,
		"hasMore": res.HasMore,
	})
}

func failure(c *fiber.Ctx, err error, functionName string) error {
	appErr := domain.AsAppError(err)
	if appErr.Code >= fiber.StatusInternalServerError {
		config.LogErrorLocation("notification.go", functionName, err, appErr.Message, config.NewRequestMeta(c, nil))
	}

	config.PrintLogInfo(c, appErr.Code, functionName)
	return c.Status(appErr.Code).JSON(fiber.Map{
		"success": false,
		"error":   appErr.Message,
		"details": appErr.Details,
	})
}
