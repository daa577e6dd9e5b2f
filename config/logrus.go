package config

import (
	"errors"
	"net/http"
	"os"
	"runtime/debug"
	"sync"
	"time"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"recruitment/domain"
)

var (
	logrusInstance *logrus.Logger
	logrusOnce     sync.Once
)

func GetLogrusInstance() *logrus.Logger {
	logrusOnce.Do(func() {
		logrusInstance = logrus.New()
		logrusInstance.SetFormatter(&logrus.JSONFormatter{})
		logrusInstance.SetOutput(os.Stdout)

		level, err := logrus.ParseLevel(getEnv("LOG_LEVEL", "info"))
		if err != nil {
			level = logrus.InfoLevel
		}
		logrusInstance.SetLevel(level)
	})
	return logrusInstance
}

const (
	green  = "\033[32m" // Green for 200 OK
	yellow = "\033[33m" // Yellow for 300 series
	red    = "\033[31m" // Red for 400 and 500 series
	reset  = "\033[0m"  // Reset to default color
)

func PrintLogInfo(c *fiber.Ctx, statusCode int, functionName string) {
	var logColor string

	switch {
	case statusCode >= 200 && statusCode < 300:
		logColor = green
	case statusCode >= 300 && statusCode < 400:
		logColor = yellow
	case statusCode >= 400:
		logColor = red
	default:
		logColor = reset
	}

	GetLogrusInstance().WithFields(logrus.Fields{
		"function":   functionName,
		"method":     c.Method(),
		"path":       c.OriginalURL(),
		"status":     statusCode,
		"request_id": requestID(c),
	}).Infof("(%s) => Status: %s[%d] - %s%s", functionName, logColor, statusCode, http.StatusText(statusCode), reset)
}

// RequestMeta is the request context attached to an error record.
type RequestMeta struct {
	URL     string            `json:"url,omitempty"`
	IP      string            `json:"ip,omitempty"`
	Body    any               `json:"body,omitempty"`
	Headers map[string]string `json:"headers,omitempty"`
	Params  map[string]string `json:"params,omitempty"`
	Other   any               `json:"other,omitempty"`
}

var redactedHeaders = map[string]bool{
	fiber.HeaderAuthorization: true,
	fiber.HeaderCookie:        true,
}

func NewRequestMeta(c *fiber.Ctx, body any) RequestMeta {
	headers := make(map[string]string)
	for k, v := range c.GetReqHeaders() {
		if redactedHeaders[k] || len(v) == 0 {
			continue
		}
		headers[k] = v[0]
	}

	return RequestMeta{
		URL:     c.OriginalURL(),
		IP:      c.IP(),
		Body:    body,
		Headers: headers,
		Params:  c.AllParams(),
	}
}

// LogErrorLocation writes one structured record describing where and why a failure happened.
func LogErrorLocation(fileName, method string, err error, message string, meta RequestMeta) {
	now := time.Now().UTC()

	params, mErr := sonic.MarshalString(struct {
		Body    any               `json:"body,omitempty"`
		Headers map[string]string `json:"headers,omitempty"`
		Params  map[string]string `json:"params,omitempty"`
		Other   any               `json:"other,omitempty"`
	}{meta.Body, meta.Headers, meta.Params, meta.Other})
	if mErr != nil {
		params = mErr.Error()
	}

	fields := logrus.Fields{
		"date":     now.Format("2006-01-02T15:04:05"),
		"Time":     now.UnixMilli(),
		"fileName": fileName,
		"method":   method,
		"message":  message,
		"trace":    string(debug.Stack()),
		"url":      meta.URL,
		"ip":       meta.IP,
		"params":   params,
	}

	var appErr *domain.AppError
	if errors.As(err, &appErr) {
		fields["errorCode"] = appErr.Code
		fields["errorName"] = string(appErr.Kind)
	}
	var provErr *domain.ProviderError
	if errors.As(err, &provErr) {
		fields["errorName"] = provErr.Name
	}

	GetLogrusInstance().WithFields(fields).WithError(err).Error(message)
}

func requestID(c *fiber.Ctx) string {
	if id, ok := c.Locals("requestid").(string); ok {
		return id
	}
	return c.Get(fiber.HeaderXRequestID)
}
