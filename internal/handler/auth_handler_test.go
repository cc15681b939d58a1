package handler

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"bucky/internal/auth"
	"bucky/internal/errors"
	"bucky/internal/model"
)

func TestAuthHandler_Register_Created(t *testing.T) {
	e := newTestEcho()
	users := new(MockUserService)
	h := NewAuthHandler(users, auth.NewTokenService("test-secret", time.Hour))

	users.On("Register", mock.Anything, "arny", "passy").Return(&model.User{ID: 1, Username: "arny"}, nil)

	c, rec := newTestContext(e, http.MethodPost, "/api/v1.0/auth/users/", `{"username":"arny","password":"passy"}`)
	require.NoError(t, h.Register(c))

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), "User registered")
	assert.Contains(t, rec.Body.String(), `"username":"arny"`)
	assert.NotContains(t, rec.Body.String(), "password")
}

func TestAuthHandler_Register_NoBody(t *testing.T) {
	e := newTestEcho()
	users := new(MockUserService)
	h := NewAuthHandler(users, auth.NewTokenService("test-secret", time.Hour))

	c, rec := newTestContext(e, http.MethodPost, "/api/v1.0/auth/users/", "")
	require.NoError(t, h.Register(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "No input data provided")
	users.AssertNotCalled(t, "Register", mock.Anything, mock.Anything, mock.Anything)
}

func TestAuthHandler_Register_MissingFields(t *testing.T) {
	e := newTestEcho()
	users := new(MockUserService)
	h := NewAuthHandler(users, auth.NewTokenService("test-secret", time.Hour))

	c, rec := newTestContext(e, http.MethodPost, "/api/v1.0/auth/users/", `{"username":"arny"}`)
	require.NoError(t, h.Register(c))

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	var fields map[string][]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &fields))
	assert.Equal(t, []string{"Missing data for required field."}, fields["password"])
	users.AssertNotCalled(t, "Register", mock.Anything, mock.Anything, mock.Anything)
}

func TestAuthHandler_Register_Duplicate(t *testing.T) {
	e := newTestEcho()
	users := new(MockUserService)
	h := NewAuthHandler(users, auth.NewTokenService("test-secret", time.Hour))

	users.On("Register", mock.Anything, "arny", "passy").Return(nil, errors.ErrUserExists)

	c, rec := newTestContext(e, http.MethodPost, "/api/v1.0/auth/users/", `{"username":"arny","password":"passy"}`)
	require.NoError(t, h.Register(c))

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), "This username already exist")
}

func TestAuthHandler_GetToken(t *testing.T) {
	e := newTestEcho()
	users := new(MockUserService)
	tokens := auth.NewTokenService("test-secret", time.Hour)
	h := NewAuthHandler(users, tokens)

	c, rec := newTestContext(e, http.MethodGet, "/api/v1.0/auth/get_token/", "")
	auth.SetIdentity(c, auth.Identity{UserID: 1, TokenUsed: false})
	require.NoError(t, h.GetToken(c))

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp TokenResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 3600, resp.Expiration)

	userID, err := tokens.Verify(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, uint(1), userID)
}

// A token cannot be exchanged for a new token.
func TestAuthHandler_GetToken_TokenCredentialsRejected(t *testing.T) {
	e := newTestEcho()
	users := new(MockUserService)
	h := NewAuthHandler(users, auth.NewTokenService("test-secret", time.Hour))

	c, rec := newTestContext(e, http.MethodGet, "/api/v1.0/auth/get_token/", "")
	auth.SetIdentity(c, auth.Identity{UserID: 1, TokenUsed: true})
	require.NoError(t, h.GetToken(c))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid credentials")
}

func TestAuthHandler_ChangePassword_Forbidden(t *testing.T) {
	e := newTestEcho()
	users := new(MockUserService)
	h := NewAuthHandler(users, auth.NewTokenService("test-secret", time.Hour))

	users.On("ChangePassword", mock.Anything, uint(2), uint(1), "newpass").Return(nil, errors.ErrForbidden)

	c, rec := newTestContext(e, http.MethodPatch, "/api/v1.0/auth/users/1", `{"username":"arny","password":"newpass"}`)
	c.SetPath("/api/v1.0/auth/users/:id")
	c.SetParamNames("id")
	c.SetParamValues("1")
	auth.SetIdentity(c, auth.Identity{UserID: 2})
	require.NoError(t, h.ChangePassword(c))

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Contains(t, rec.Body.String(), "Forbidden")
}
