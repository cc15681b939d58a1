package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"bucky/internal/auth"
	"bucky/internal/errors"
	"bucky/internal/service"
)

// AuthHandler handles user and token endpoints.
type AuthHandler struct {
	users  service.UserService
	tokens *auth.TokenService
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(users service.UserService, tokens *auth.TokenService) *AuthHandler {
	return &AuthHandler{
		users:  users,
		tokens: tokens,
	}
}

// UserRequest is the user payload schema. Username and password are both
// required on input; the password is write-only and never echoed back.
type UserRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// TokenResponse carries a freshly issued auth token.
type TokenResponse struct {
	Token      string `json:"token"`
	Expiration int    `json:"expiration"`
}

// Register godoc
// @Summary Register a new user
// @Tags auth
// @Accept json
// @Produce json
// @Param request body UserRequest true "Registration data"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Failure 422 {object} map[string][]string
// @Failure 500 {object} errors.ErrorResponse
// @Router /auth/users/ [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req UserRequest
	if ok, err := decodePayload(c, &req); !ok {
		return err
	}

	user, err := h.users.Register(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		return respondError(c, err, "Failed to create")
	}

	return c.JSON(http.StatusCreated, map[string]interface{}{
		"message": "User registered",
		"user":    user,
	})
}

// GetUser godoc
// @Summary Get user by id
// @Tags auth
// @Produce json
// @Security BasicAuth
// @Param id path int true "User ID"
// @Success 200 {object} model.User
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /auth/users/{id} [get]
func (h *AuthHandler) GetUser(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	user, err := h.users.Get(c.Request().Context(), id)
	if err != nil {
		return respondError(c, err, "")
	}

	return c.JSON(http.StatusOK, user)
}

// ChangePassword godoc
// @Summary Change own password
// @Tags auth
// @Accept json
// @Produce json
// @Security BasicAuth
// @Param id path int true "User ID"
// @Param request body UserRequest true "User payload"
// @Success 200 {object} model.User
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 422 {object} map[string][]string
// @Router /auth/users/{id} [patch]
func (h *AuthHandler) ChangePassword(c echo.Context) error {
	identity, err := requestIdentity(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req UserRequest
	if ok, err := decodePayload(c, &req); !ok {
		return err
	}

	user, err := h.users.ChangePassword(c.Request().Context(), identity.UserID, id, req.Password)
	if err != nil {
		return respondError(c, err, "Failed to patch")
	}

	return c.JSON(http.StatusOK, user)
}

// GetToken godoc
// @Summary Issue an auth token
// @Tags auth
// @Produce json
// @Security BasicAuth
// @Success 200 {object} TokenResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /auth/get_token/ [get]
func (h *AuthHandler) GetToken(c echo.Context) error {
	identity, err := requestIdentity(c)
	if err != nil {
		return err
	}

	// A token cannot be exchanged for a new token.
	if identity.TokenUsed {
		return c.JSON(http.StatusUnauthorized, errors.ErrorResponse{
			Message: "Invalid credentials",
		})
	}

	token, err := h.tokens.Issue(identity.UserID)
	if err != nil {
		return respondError(c, err, "Failed to issue token")
	}

	return c.JSON(http.StatusOK, TokenResponse{
		Token:      token,
		Expiration: int(h.tokens.TTL().Seconds()),
	})
}
