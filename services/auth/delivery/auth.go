package delivery

import (
	"bytes"

	"github.com/gofiber/fiber/v2"

	"recruitment/config"
	"recruitment/domain"
)

type authHandler struct {
	uc domain.AuthUseCase
}

func NewAuthHandler(app *fiber.App, useCase domain.AuthUseCase) {
	handler := &authHandler{
		uc: useCase,
	}

	route := app.Group("/auth")
	route.Post("/register", handler.RegisterUser)
}

func (ah *authHandler) RegisterUser(c *fiber.Ctx) error {
	// An empty body falls through to the required-field check.
	var req domain.RegisterRequest
	if body := bytes.TrimSpace(c.Body()); len(body) > 0 {
		if err := config.StrictJSON.Unmarshal(body, &req); err != nil {
			return ah.failure(c, domain.BadRequest("Invalid request body", nil), req.Email)
		}
	}

	if _, err := ah.uc.RegisterUser(c.Context(), &req); err != nil {
		return ah.failure(c, err, req.Email)
	}

	ok := true
	config.PrintLogInfo(c, fiber.StatusOK, "RegisterUser")
	return c.Status(fiber.StatusOK).JSON(domain.RegisterResponse{
		Status:  fiber.StatusOK,
		Message: "Success",
		Data:    domain.SignUpResponse{Success: &ok},
	})
}

// failure echoes the email the error was raised for, falling back to the request's.
func (ah *authHandler) failure(c *fiber.Ctx, err error, email string) error {
	appErr := domain.AsAppError(err)
	if e, ok := appErr.Details["email"].(string); ok && e != "" {
		email = e
	}

	message := appErr.Message
	if message == "" {
		message = "Registration failed"
	}

	config.PrintLogInfo(c, appErr.Code, "RegisterUser")
	return c.Status(appErr.Code).JSON(domain.RegisterResponse{
		Status:  appErr.Code,
		Message: message,
		Data:    domain.SignUpResponse{Failure: &domain.SignUpFailure{Email: email}},
	})
}
