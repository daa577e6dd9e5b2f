package main

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"recruitment/config"
)

// pinger is satisfied by *sql.DB.
type pinger interface {
	PingContext(ctx context.Context) error
}

func registerRootRoutes(app *fiber.App, db *gorm.DB) {
	app.Get("/", welcome)
	app.Get("/health", health(func() (pinger, error) {
		return db.DB()
	}))
}

func welcome(c *fiber.Ctx) error {
	config.PrintLogInfo(c, fiber.StatusOK, "Welcome")
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Welcome to the recruitment notification API",
	})
}

func health(conn func() (pinger, error)) fiber.Handler {
	return func(c *fiber.Ctx) error {
		p, err := conn()
		if err == nil {
			err = p.PingContext(c.Context())
		}
		if err != nil {
			config.PrintLogInfo(c, fiber.StatusServiceUnavailable, "Health")
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
				"success":  false,
				"database": "down",
				"error":    err.Error(),
			})
		}

		config.PrintLogInfo(c, fiber.StatusOK, "Health")
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"success":  true,
			"database": "up",
		})
	}
}
