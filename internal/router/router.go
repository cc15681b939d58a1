package router

import (
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"bucky/internal/handler"
)

// Register wires routes and middleware. authGuard protects every route that
// requires an authenticated user.
func Register(
	e *echo.Echo,
	authGuard echo.MiddlewareFunc,
	authHandler *handler.AuthHandler,
	bucketListHandler *handler.BucketListHandler,
	taskHandler *handler.TaskHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	e.Validator = NewCustomValidator()

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api/v1.0")

	// Public routes
	api.POST("/auth/users/", authHandler.Register)

	// Secured routes
	secured := api.Group("", authGuard)

	secured.GET("/auth/users/:id", authHandler.GetUser)
	secured.PATCH("/auth/users/:id", authHandler.ChangePassword)
	secured.GET("/auth/get_token/", authHandler.GetToken)

	secured.GET("/bucketlists/", bucketListHandler.List)
	secured.POST("/bucketlists/", bucketListHandler.Create)
	secured.GET("/bucketlists/:id", bucketListHandler.Get)
	secured.PATCH("/bucketlists/:id", bucketListHandler.Update)
	secured.DELETE("/bucketlists/:id", bucketListHandler.Delete)

	secured.GET("/bucketlists/:id/tasks/", taskHandler.List)
	secured.POST("/bucketlists/:id/tasks/", taskHandler.Create)
	secured.PATCH("/bucketlists/:id/tasks/:task_id", taskHandler.Update)
	secured.DELETE("/bucketlists/:id/tasks/:task_id", taskHandler.Delete)
}

// CustomValidator wraps validator for Echo, reporting offending fields by
// their JSON names.
type CustomValidator struct {
	validator *validator.Validate
}

// NewCustomValidator builds the request payload validator.
func NewCustomValidator() *CustomValidator {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return &CustomValidator{validator: v}
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
