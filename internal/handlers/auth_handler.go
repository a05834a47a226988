package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"fintrack/internal/auth"
	apperrors "fintrack/internal/errors"
	"fintrack/internal/logger"
	"fintrack/internal/store"
)

// AuthHandler handles registration, login, and token refresh.
type AuthHandler struct {
	store  store.Store
	hasher *auth.Hasher
	tokens *auth.TokenIssuer
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(st store.Store, hasher *auth.Hasher, tokens *auth.TokenIssuer) *AuthHandler {
	return &AuthHandler{store: st, hasher: hasher, tokens: tokens}
}

// RegisterRequest represents the registration request payload. Fields are
// deliberately unconstrained beyond JSON shape; the store's constraints and
// the hasher's empty-password check are the only gatekeepers.
type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest represents the login request payload.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RefreshRequest represents the token refresh payload.
type RefreshRequest struct {
	Token string `json:"token"`
}

// TokenResponse carries an issued token.
type TokenResponse struct {
	Token string `json:"token"`
}

// Register handles user registration.
// @Summary     Register a new user
// @Description Register a new user with email and password
// @Tags        auth
// @Accept      json
// @Produce     plain
// @Param       request body RegisterRequest true "User credentials"
// @Success     201 {string} string "User created"
// @Failure     400 {string} string "Error creating user"
// @Router      /register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, routeError(err, "Error creating user"))
		return
	}

	hash, err := h.hasher.Hash(req.Password)
	if err != nil {
		respondWithError(c, routeError(err, "Error creating user"))
		return
	}

	user, err := h.store.InsertUser(req.Email, hash)
	if err != nil {
		respondWithError(c, routeError(err, "Error creating user"))
		return
	}

	logger.Get().Infow("user registered", "user_id", user.ID)
	c.String(http.StatusCreated, "User created")
}

// Login handles user login.
// @Summary     Login
// @Description Authenticate a user and issue a token
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       request body LoginRequest true "User credentials"
// @Success     200 {object} TokenResponse
// @Failure     400 {string} string "Invalid credentials"
// @Router      /login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, routeError(err, "Error logging in"))
		return
	}

	// Unknown email and wrong password must stay indistinguishable: both
	// respond with the same sentinel. A store fault is not a credential
	// failure and gets the route's generic error instead.
	user, err := h.store.FindUserByEmail(req.Email)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			respondWithError(c, apperrors.ErrInvalidCredentials)
			return
		}
		respondWithError(c, routeError(err, "Error logging in"))
		return
	}

	if !h.hasher.Verify(req.Password, user.Password) {
		respondWithError(c, apperrors.ErrInvalidCredentials)
		return
	}

	token, err := h.tokens.Issue(user.ID)
	if err != nil {
		respondWithError(c, routeError(err, "Error logging in"))
		return
	}

	logger.Get().Infow("user logged in", "user_id", user.ID)
	c.JSON(http.StatusOK, TokenResponse{Token: token})
}

// Refresh exchanges a still-valid token for a fresh one.
// @Summary     Refresh token
// @Description Exchange a valid token for a newly issued one
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       request body RefreshRequest true "Current token"
// @Success     200 {object} TokenResponse
// @Failure     400 {string} string "Invalid token"
// @Router      /refresh [post]
func (h *AuthHandler) Refresh(c *gin.Context) {
	var req RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, routeError(err, "Invalid token"))
		return
	}

	userID, err := h.tokens.Verify(req.Token)
	if err != nil {
		respondWithError(c, routeError(err, "Invalid token"))
		return
	}

	token, err := h.tokens.Issue(userID)
	if err != nil {
		respondWithError(c, routeError(err, "Invalid token"))
		return
	}

	c.JSON(http.StatusOK, TokenResponse{Token: token})
}
