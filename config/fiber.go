package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
)

// StrictJSON rejects unknown keys so typos in a payload never pass silently.
var StrictJSON = sonic.Config{
	DisallowUnknownFields: true,
}.Froze()

func GetFiberListenAddress() string {
	return fmt.Sprintf("%s:%s", GetFiberHttpHost(), GetFiberHttpPort())
}

func GetFiberConfig() fiber.Config {
	return fiber.Config{
		DisableStartupMessage: false,
		JSONEncoder:           sonic.Marshal,
		JSONDecoder:           sonic.Unmarshal,
		Prefork:               false,
		ServerHeader:          GetAppName(),
		AppName:               GetAppName(),
		ReadTimeout:           time.Second * 60,
		CaseSensitive:         true,
		ErrorHandler:          fiberErrorHandler,
	}
}

func fiberErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	var fe *fiber.Error
	if errors.As(err, &fe) {
		code = fe.Code
	}

	PrintLogInfo(c, code, "ErrorHandler")
	return c.Status(code).JSON(fiber.Map{
		"success": false,
		"error":   err.Error(),
	})
}

func GetAppName() string {
	return getEnv("APP_NAME", "RECRUITMENT")
}

func GetFiberHttpHost() string {
	return getEnv("HTTP_HOST", "0.0.0.0")
}

func GetFiberHttpPort() string {
	return getEnv("HTTP_PORT", "8000")
}
