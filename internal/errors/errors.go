package errors

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
)

var (
	// ErrUserNotFound is returned when a user is not found.
	ErrUserNotFound = errors.New("User does not exist")
	// ErrUserExists is returned when registering a username that is taken.
	ErrUserExists = errors.New("This username already exist")
	// ErrBucketListNotFound is returned when a bucket list lookup misses.
	// Cross-owner access collapses to this same error.
	ErrBucketListNotFound = errors.New("Bucket-list not found")
	// ErrBucketListExists is returned when the owner already has a bucket
	// list with the same name.
	ErrBucketListExists = errors.New("Bucket-list already exists")
	// ErrTaskNotFound is returned when a task lookup misses.
	ErrTaskNotFound = errors.New("Task does not exist")
	// ErrTaskBucketListNotFound is returned when the parent bucket list of
	// a task operation is absent or owned by someone else.
	ErrTaskBucketListNotFound = errors.New("This bucket-list does not exist")
	// ErrTaskExists is returned when the bucket list already has a task
	// with the same description.
	ErrTaskExists = errors.New("This task already exists")
	// ErrNoTasks is returned when a bucket list has no tasks to list.
	ErrNoTasks = errors.New("No tasks found")
	// ErrForbidden is returned when a user tries to change another
	// user's details.
	ErrForbidden = errors.New("Forbidden")
	// ErrInvalidCredentials is returned when credentials cannot be
	// verified. All credential failures collapse to this one error.
	ErrInvalidCredentials = errors.New("Invalid credentials")
)

// ErrorResponse represents a standardized error response body.
type ErrorResponse struct {
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
	Detail     string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message, detail string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
		Detail:     detail,
	}
}

// ToErrorResponse converts an HTTPError to ErrorResponse.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{
		Message: e.Message,
		Error:   e.Detail,
	}
}

// MapErrorToHTTP maps domain errors to HTTP errors.
func MapErrorToHTTP(err error) *HTTPError {
	switch {
	case errors.Is(err, ErrUserNotFound),
		errors.Is(err, ErrBucketListNotFound),
		errors.Is(err, ErrTaskNotFound),
		errors.Is(err, ErrTaskBucketListNotFound),
		errors.Is(err, ErrNoTasks):
		return NewHTTPError(http.StatusNotFound, err.Error(), "")
	case errors.Is(err, ErrUserExists),
		errors.Is(err, ErrBucketListExists),
		errors.Is(err, ErrTaskExists):
		return NewHTTPError(http.StatusConflict, err.Error(), "")
	case errors.Is(err, ErrForbidden):
		return NewHTTPError(http.StatusForbidden, err.Error(), "")
	case errors.Is(err, ErrInvalidCredentials):
		return NewHTTPError(http.StatusUnauthorized, err.Error(), "")
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error", err.Error())
	}
}

// ValidationMessages turns a validator error into a per-field message map
// suitable for a 422 response body.
func ValidationMessages(err error) map[string][]string {
	fields := map[string][]string{}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		fields["_schema"] = []string{err.Error()}
		return fields
	}
	for _, fe := range verrs {
		msg := "Invalid value."
		if fe.Tag() == "required" {
			msg = "Missing data for required field."
		}
		fields[fe.Field()] = append(fields[fe.Field()], msg)
	}
	return fields
}
