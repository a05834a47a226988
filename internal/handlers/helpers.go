package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "fintrack/internal/errors"
	"fintrack/internal/logger"
)

// respondWithError writes a failure as a short plain-text body. Every
// failure this API produces is a 400; the AppError carries the exact text.
// Internal causes are logged, never sent to the client.
func respondWithError(c *gin.Context, err error) {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		if appErr.Internal != nil {
			logger.Get().Errorw("request failed",
				"code", appErr.Code,
				"internal", appErr.Internal.Error(),
				"path", c.Request.URL.Path,
			)
		}
		c.String(appErr.StatusCode, appErr.Message)
		return
	}

	logger.Get().Errorw("unexpected error",
		"error", err.Error(),
		"path", c.Request.URL.Path,
		"method", c.Request.Method,
	)
	c.String(http.StatusBadRequest, apperrors.ErrInvalidInput.Message)
}

// routeError folds any failure into the route's fixed client-facing text,
// keeping the original error as the logged internal cause.
func routeError(err error, message string) error {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		return apperrors.WithMessage(appErr, message)
	}
	return apperrors.WithMessage(apperrors.Wrap(apperrors.ErrQueryFailed, err), message)
}
