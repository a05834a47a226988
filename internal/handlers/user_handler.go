package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "fintrack/internal/errors"
	"fintrack/internal/pagination"
	"fintrack/internal/store"
)

// UserHandler handles user listing.
type UserHandler struct {
	store store.Store
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(st store.Store) *UserHandler {
	return &UserHandler{store: st}
}

// ListUsers returns a page of registered users. Password hashes are never
// serialized.
// @Summary     List users
// @Description Get a paginated list of registered users
// @Tags        users
// @Produce     json
// @Param       page      query int false "Page number (default 1)"
// @Param       page_size query int false "Items per page (default 20, max 100)"
// @Success     200 {object} pagination.PageResponse[models.User]
// @Failure     400 {string} string "Invalid input"
// @Router      /users [get]
func (h *UserHandler) ListUsers(c *gin.Context) {
	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		respondWithError(c, apperrors.Wrap(apperrors.ErrInvalidInput, err))
		return
	}

	result, err := h.store.ListUsers(page)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}
