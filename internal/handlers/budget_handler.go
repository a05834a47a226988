package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fintrack/internal/store"
)

// BudgetHandler handles budget creation.
type BudgetHandler struct {
	store store.Store
}

// NewBudgetHandler creates a new BudgetHandler.
func NewBudgetHandler(st store.Store) *BudgetHandler {
	return &BudgetHandler{store: st}
}

// SetBudgetRequest represents the set-budget payload.
type SetBudgetRequest struct {
	UserID   uint    `json:"userId"`
	Category string  `json:"category"`
	Amount   float64 `json:"amount"`
	Month    int     `json:"month"`
	Year     int     `json:"year"`
}

// SetBudget handles creating a budget row. There is no upsert: calling this
// twice for the same (user, category, month, year) creates two rows.
// @Summary     Set a budget
// @Description Create a monthly category budget for a user
// @Tags        budgets
// @Accept      json
// @Produce     json
// @Param       request body SetBudgetRequest true "Budget details"
// @Success     201 {object} models.Budget "Inserted row"
// @Failure     400 {string} string "Error setting budget"
// @Router      /budgets [post]
func (h *BudgetHandler) SetBudget(c *gin.Context) {
	var req SetBudgetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, routeError(err, "Error setting budget"))
		return
	}

	budget, err := h.store.InsertBudget(req.UserID, req.Category, req.Amount, req.Month, req.Year)
	if err != nil {
		respondWithError(c, routeError(err, "Error setting budget"))
		return
	}

	c.JSON(http.StatusCreated, budget)
}
