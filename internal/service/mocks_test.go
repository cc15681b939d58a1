package service

import (
	"context"

	"github.com/stretchr/testify/mock"

	"bucky/internal/model"
)

// MockUserRepository is a mock implementation of repository.UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uint) (*model.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) FindByIDWithBucketLists(ctx context.Context, id uint) (*model.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) Save(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

// MockBucketListRepository is a mock implementation of
// repository.BucketListRepository.
type MockBucketListRepository struct {
	mock.Mock
}

func (m *MockBucketListRepository) Create(ctx context.Context, bucketList *model.BucketList) error {
	args := m.Called(ctx, bucketList)
	return args.Error(0)
}

func (m *MockBucketListRepository) Save(ctx context.Context, bucketList *model.BucketList) error {
	args := m.Called(ctx, bucketList)
	return args.Error(0)
}

func (m *MockBucketListRepository) FindByIDAndOwner(ctx context.Context, id, ownerID uint) (*model.BucketList, error) {
	args := m.Called(ctx, id, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.BucketList), args.Error(1)
}

func (m *MockBucketListRepository) FindByNameAndOwner(ctx context.Context, name string, ownerID uint) (*model.BucketList, error) {
	args := m.Called(ctx, name, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.BucketList), args.Error(1)
}

func (m *MockBucketListRepository) ListByOwner(ctx context.Context, ownerID uint, nameFilter string, offset, limit int) ([]model.BucketList, error) {
	args := m.Called(ctx, ownerID, nameFilter, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.BucketList), args.Error(1)
}

func (m *MockBucketListRepository) CountByOwner(ctx context.Context, ownerID uint, nameFilter string) (int64, error) {
	args := m.Called(ctx, ownerID, nameFilter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockBucketListRepository) DeleteWithTasks(ctx context.Context, bucketList *model.BucketList) error {
	args := m.Called(ctx, bucketList)
	return args.Error(0)
}

// MockTaskRepository is a mock implementation of repository.TaskRepository.
type MockTaskRepository struct {
	mock.Mock
}

func (m *MockTaskRepository) Create(ctx context.Context, task *model.Task) error {
	args := m.Called(ctx, task)
	return args.Error(0)
}

func (m *MockTaskRepository) Save(ctx context.Context, task *model.Task) error {
	args := m.Called(ctx, task)
	return args.Error(0)
}

func (m *MockTaskRepository) FindByIDInBucketList(ctx context.Context, id, bucketListID, ownerID uint) (*model.Task, error) {
	args := m.Called(ctx, id, bucketListID, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Task), args.Error(1)
}

func (m *MockTaskRepository) FindByDescription(ctx context.Context, bucketListID uint, description string) (*model.Task, error) {
	args := m.Called(ctx, bucketListID, description)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Task), args.Error(1)
}

func (m *MockTaskRepository) ListByBucketList(ctx context.Context, bucketListID, ownerID uint) ([]model.Task, error) {
	args := m.Called(ctx, bucketListID, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Task), args.Error(1)
}

func (m *MockTaskRepository) Delete(ctx context.Context, task *model.Task) error {
	args := m.Called(ctx, task)
	return args.Error(0)
}
