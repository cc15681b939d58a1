package auth

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"golang.org/x/crypto/bcrypt"

	"bucky/internal/repository"
)

const identityKey = "identity"

// Challenge is the WWW-Authenticate value sent on every rejected request.
const Challenge = `xBasic realm="Access to the bucky"`

// Identity is the request-scoped identity resolved by the credential
// verifier. TokenUsed records whether the request authenticated with a
// token instead of a password.
type Identity struct {
	UserID    uint
	TokenUsed bool
}

// CurrentIdentity returns the identity stored on the context by Middleware.
func CurrentIdentity(c echo.Context) (Identity, bool) {
	id, ok := c.Get(identityKey).(Identity)
	return id, ok
}

// SetIdentity stores the resolved identity on the request context.
func SetIdentity(c echo.Context, identity Identity) {
	c.Set(identityKey, identity)
}

// Middleware guards protected routes. Credentials travel in the basic-auth
// header; the username slot may carry either a username or an auth token
// with an empty password. On success the resolved identity is stored on the
// context, on failure the request is rejected with one canonical 401
// response regardless of the cause.
func Middleware(users repository.UserRepository, tokens *TokenService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			principal, secret, ok := c.Request().BasicAuth()
			if !ok || principal == "" {
				// impossible to verify
				return reject(c)
			}

			if secret == "" {
				// principal carries a token
				userID, err := tokens.Verify(principal)
				if err != nil {
					return reject(c)
				}
				if _, err := users.FindByID(c.Request().Context(), userID); err != nil {
					return reject(c)
				}
				SetIdentity(c, Identity{UserID: userID, TokenUsed: true})
				return next(c)
			}

			user, err := users.FindByUsername(c.Request().Context(), principal)
			if err != nil {
				return reject(c)
			}
			if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(secret)) != nil {
				return reject(c)
			}
			SetIdentity(c, Identity{UserID: user.ID, TokenUsed: false})
			return next(c)
		}
	}
}

func reject(c echo.Context) error {
	c.Response().Header().Set(echo.HeaderWWWAuthenticate, Challenge)
	return c.JSON(http.StatusUnauthorized, map[string]string{
		"message": "Unauthorized access",
	})
}
