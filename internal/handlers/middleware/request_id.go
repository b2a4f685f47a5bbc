package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/rafabene/hyperlocal-backend/internal/domain/ports"
	"github.com/rafabene/hyperlocal-backend/internal/infrastructure/logging"
)

const (
	// RequestIDHeader propaga o id da requisição
	RequestIDHeader = "X-Request-ID"
	// RequestIDContextKey guarda o id da requisição no contexto do Gin
	RequestIDContextKey = "request_id"
	// LoggerContextKey guarda o logger da requisição (com request_id)
	LoggerContextKey = "logger"
)

// RequestLogger atribui um request id, anexa um logger com esse id ao contexto
// e registra o acesso ao final da requisição.
func RequestLogger(logger ports.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		requestID := c.GetHeader(RequestIDHeader)
		if _, err := uuid.Parse(requestID); err != nil {
			requestID = uuid.NewString()
		}
		c.Set(RequestIDContextKey, requestID)
		c.Header(RequestIDHeader, requestID)

		reqLogger := logger.With("request_id", requestID)
		c.Set(LoggerContextKey, reqLogger)

		c.Next()

		status := c.Writer.Status()
		args := []any{
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", status,
			"latency_ms", time.Since(start).Milliseconds(),
			"client_ip", c.ClientIP(),
		}
		switch {
		case status >= 500:
			reqLogger.Error("request completed", args...)
		case status >= 400:
			reqLogger.Warn("request completed", args...)
		default:
			reqLogger.Info("request completed", args...)
		}
	}
}

// LoggerFrom retorna o logger da requisição, ou um logger descartável
func LoggerFrom(c *gin.Context) ports.Logger {
	if value, ok := c.Get(LoggerContextKey); ok {
		if logger, ok := value.(ports.Logger); ok {
			return logger
		}
	}
	return logging.Discard()
}
