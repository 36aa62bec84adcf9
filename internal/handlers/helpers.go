package handlers

import (
	apperrors "flywise-backend/internal/errors"
	"flywise-backend/pkg/logger"

	"github.com/gin-gonic/gin"
)

// respondError maps an error to its HTTP status and writes the flat
// {"error": ...} shape clients expect. Internal failures show the endpoint's
// fallback message; technical details go to the log only.
func respondError(c *gin.Context, err error, fallbackMsg string) {
	appErr := apperrors.MapError(err)

	logger.GlobalLogger.Errorf("Request failed: path=%s, method=%s, client_ip=%s, code=%s, error=%s",
		c.Request.URL.Path,
		c.Request.Method,
		c.ClientIP(),
		appErr.Code,
		appErr.TechnicalMessage)

	userMsg := appErr.UserMessage
	if appErr.Code == apperrors.ErrCodeInternalError && fallbackMsg != "" {
		userMsg = fallbackMsg
	}
	c.JSON(appErr.HTTPStatus, gin.H{"error": userMsg})
}
