package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fintrack/internal/store"
)

// TransactionHandler handles transaction recording.
type TransactionHandler struct {
	store store.Store
}

// NewTransactionHandler creates a new TransactionHandler.
func NewTransactionHandler(st store.Store) *TransactionHandler {
	return &TransactionHandler{store: st}
}

// AddTransactionRequest represents the add-transaction payload. The caller
// supplies its own userId; no token is checked on this route. Amount sign
// and type values are not validated here; whatever the store accepts goes
// in as-is.
type AddTransactionRequest struct {
	UserID   uint    `json:"userId"`
	Amount   float64 `json:"amount"`
	Category string  `json:"category"`
	Type     string  `json:"type"`
}

// AddTransaction handles recording a transaction.
// @Summary     Add a transaction
// @Description Record a financial transaction for a user
// @Tags        transactions
// @Accept      json
// @Produce     json
// @Param       request body AddTransactionRequest true "Transaction details"
// @Success     201 {object} models.Transaction "Inserted row"
// @Failure     400 {string} string "Error adding transaction"
// @Router      /transactions [post]
func (h *TransactionHandler) AddTransaction(c *gin.Context) {
	var req AddTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, routeError(err, "Error adding transaction"))
		return
	}

	tx, err := h.store.InsertTransaction(req.UserID, req.Amount, req.Category, req.Type)
	if err != nil {
		respondWithError(c, routeError(err, "Error adding transaction"))
		return
	}

	c.JSON(http.StatusCreated, tx)
}
