package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"bucky/internal/auth"
	"bucky/internal/errors"
)

// decodePayload binds and validates the request payload. It responds with
// 400 when no body was provided and 422 with per-field messages when schema
// validation fails, and reports whether the caller may proceed.
func decodePayload(c echo.Context, req interface{}) (bool, error) {
	if c.Request().ContentLength == 0 {
		return false, c.JSON(http.StatusBadRequest, errors.ErrorResponse{
			Message: "No input data provided",
		})
	}
	if err := c.Bind(req); err != nil {
		return false, c.JSON(http.StatusBadRequest, errors.ErrorResponse{
			Message: "No input data provided",
		})
	}
	if err := c.Validate(req); err != nil {
		return false, c.JSON(http.StatusUnprocessableEntity, errors.ValidationMessages(err))
	}
	return true, nil
}

// respondError translates a domain error into its HTTP response. failMsg
// replaces the generic message on persistence failures so the caller sees
// which operation failed.
func respondError(c echo.Context, err error, failMsg string) error {
	httpErr := errors.MapErrorToHTTP(err)
	body := httpErr.ToErrorResponse()
	if httpErr.StatusCode == http.StatusInternalServerError && failMsg != "" {
		body.Message = failMsg
	}
	return c.JSON(httpErr.StatusCode, body)
}

// requestIdentity returns the identity resolved by the auth middleware.
// Handlers are only reachable through the guard, so a missing identity is
// rejected outright.
func requestIdentity(c echo.Context) (auth.Identity, error) {
	identity, ok := auth.CurrentIdentity(c)
	if !ok {
		return auth.Identity{}, echo.NewHTTPError(http.StatusUnauthorized, "unauthenticated")
	}
	return identity, nil
}

// pathID parses a numeric path parameter.
func pathID(c echo.Context, name string) (uint, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	return uint(id), nil
}
