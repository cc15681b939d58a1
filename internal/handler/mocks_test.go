package handler

import (
	"context"
	"io"
	"net/http/httptest"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/mock"

	"bucky/internal/model"
)

// MockUserService is a mock implementation of service.UserService.
type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) Register(ctx context.Context, username, password string) (*model.User, error) {
	args := m.Called(ctx, username, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserService) Get(ctx context.Context, id uint) (*model.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserService) ChangePassword(ctx context.Context, currentUserID, targetUserID uint, password string) (*model.User, error) {
	args := m.Called(ctx, currentUserID, targetUserID, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

// MockBucketListService is a mock implementation of service.BucketListService.
type MockBucketListService struct {
	mock.Mock
}

func (m *MockBucketListService) Create(ctx context.Context, ownerID uint, name string) (*model.BucketList, error) {
	args := m.Called(ctx, ownerID, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.BucketList), args.Error(1)
}

func (m *MockBucketListService) List(ctx context.Context, ownerID uint, nameFilter string, page int) ([]model.BucketList, int64, error) {
	args := m.Called(ctx, ownerID, nameFilter, page)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]model.BucketList), args.Get(1).(int64), args.Error(2)
}

func (m *MockBucketListService) Get(ctx context.Context, ownerID, id uint) (*model.BucketList, error) {
	args := m.Called(ctx, ownerID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.BucketList), args.Error(1)
}

func (m *MockBucketListService) Rename(ctx context.Context, ownerID, id uint, name string) (*model.BucketList, error) {
	args := m.Called(ctx, ownerID, id, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.BucketList), args.Error(1)
}

func (m *MockBucketListService) Delete(ctx context.Context, ownerID, id uint) error {
	args := m.Called(ctx, ownerID, id)
	return args.Error(0)
}

// MockTaskService is a mock implementation of service.TaskService.
type MockTaskService struct {
	mock.Mock
}

func (m *MockTaskService) List(ctx context.Context, ownerID, bucketListID uint) ([]model.Task, error) {
	args := m.Called(ctx, ownerID, bucketListID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Task), args.Error(1)
}

func (m *MockTaskService) Create(ctx context.Context, ownerID, bucketListID uint, description string) (*model.Task, error) {
	args := m.Called(ctx, ownerID, bucketListID, description)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Task), args.Error(1)
}

func (m *MockTaskService) Update(ctx context.Context, ownerID, bucketListID, taskID uint, description string) (*model.Task, error) {
	args := m.Called(ctx, ownerID, bucketListID, taskID, description)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Task), args.Error(1)
}

func (m *MockTaskService) Delete(ctx context.Context, ownerID, bucketListID, taskID uint) error {
	args := m.Called(ctx, ownerID, bucketListID, taskID)
	return args.Error(0)
}

type testValidator struct {
	validator *validator.Validate
}

func (tv *testValidator) Validate(i interface{}) error {
	return tv.validator.Struct(i)
}

// newTestEcho builds an Echo instance with the same json-name validation
// the router installs.
func newTestEcho() *echo.Echo {
	e := echo.New()
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	e.Validator = &testValidator{validator: v}
	return e
}

// newTestContext builds a request context; an empty body sends no payload
// at all.
func newTestContext(e *echo.Echo, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}
