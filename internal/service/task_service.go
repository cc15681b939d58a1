package service

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"bucky/internal/errors"
	"bucky/internal/model"
	"bucky/internal/repository"
)

// TaskService handles task operations inside a user's bucket lists. The
// parent bucket list is always resolved owner-scoped before anything else.
type TaskService interface {
	List(ctx context.Context, ownerID, bucketListID uint) ([]model.Task, error)
	Create(ctx context.Context, ownerID, bucketListID uint, description string) (*model.Task, error)
	Update(ctx context.Context, ownerID, bucketListID, taskID uint, description string) (*model.Task, error)
	Delete(ctx context.Context, ownerID, bucketListID, taskID uint) error
}

type taskService struct {
	bucketLists repository.BucketListRepository
	tasks       repository.TaskRepository
}

// NewTaskService creates a new task service.
func NewTaskService(bucketLists repository.BucketListRepository, tasks repository.TaskRepository) TaskService {
	return &taskService{
		bucketLists: bucketLists,
		tasks:       tasks,
	}
}

// List returns all tasks of one of the owner's bucket lists.
func (s *taskService) List(ctx context.Context, ownerID, bucketListID uint) ([]model.Task, error) {
	if err := s.checkBucketList(ctx, ownerID, bucketListID); err != nil {
		return nil, err
	}

	tasks, err := s.tasks.ListByBucketList(ctx, bucketListID, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	if len(tasks) == 0 {
		return nil, errors.ErrNoTasks
	}

	return tasks, nil
}

// Create adds a task to one of the owner's bucket lists. The parent list is
// verified first; only then is the description checked for duplicates.
func (s *taskService) Create(ctx context.Context, ownerID, bucketListID uint, description string) (*model.Task, error) {
	if err := s.checkBucketList(ctx, ownerID, bucketListID); err != nil {
		return nil, err
	}

	if err := s.checkDuplicateDescription(ctx, bucketListID, description, 0); err != nil {
		return nil, err
	}

	task := &model.Task{
		Description:  description,
		UserID:       ownerID,
		BucketListID: bucketListID,
	}
	if err := s.tasks.Create(ctx, task); err != nil {
		return nil, fmt.Errorf("create task: %w", err)
	}

	return task, nil
}

// Update changes a task's description, keeping the per-bucket-list
// uniqueness rule.
func (s *taskService) Update(ctx context.Context, ownerID, bucketListID, taskID uint, description string) (*model.Task, error) {
	task, err := s.findTask(ctx, ownerID, bucketListID, taskID)
	if err != nil {
		return nil, err
	}

	if err := s.checkDuplicateDescription(ctx, bucketListID, description, taskID); err != nil {
		return nil, err
	}

	task.Description = description
	if err := s.tasks.Save(ctx, task); err != nil {
		return nil, fmt.Errorf("save task: %w", err)
	}

	return task, nil
}

// Delete removes a task from one of the owner's bucket lists.
func (s *taskService) Delete(ctx context.Context, ownerID, bucketListID, taskID uint) error {
	task, err := s.findTask(ctx, ownerID, bucketListID, taskID)
	if err != nil {
		return err
	}

	if err := s.tasks.Delete(ctx, task); err != nil {
		return fmt.Errorf("delete task: %w", err)
	}

	return nil
}

func (s *taskService) findTask(ctx context.Context, ownerID, bucketListID, taskID uint) (*model.Task, error) {
	task, err := s.tasks.FindByIDInBucketList(ctx, taskID, bucketListID, ownerID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrTaskNotFound
		}
		return nil, fmt.Errorf("find task: %w", err)
	}
	return task, nil
}

func (s *taskService) checkBucketList(ctx context.Context, ownerID, bucketListID uint) error {
	if _, err := s.bucketLists.FindByIDAndOwner(ctx, bucketListID, ownerID); err != nil {
		if err == gorm.ErrRecordNotFound {
			return errors.ErrTaskBucketListNotFound
		}
		return fmt.Errorf("find bucket list: %w", err)
	}
	return nil
}

func (s *taskService) checkDuplicateDescription(ctx context.Context, bucketListID uint, description string, excludeID uint) error {
	existing, err := s.tasks.FindByDescription(ctx, bucketListID, description)
	if err == nil && existing != nil && existing.ID != excludeID {
		return errors.ErrTaskExists
	}
	if err != nil && err != gorm.ErrRecordNotFound {
		return fmt.Errorf("check task existence: %w", err)
	}
	return nil
}
