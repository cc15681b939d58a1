package repository

import (
	"context"

	"gorm.io/gorm"

	"bucky/internal/model"
)

// TaskRepository defines task persistence operations. Lookups are scoped to
// both the parent bucket list and the owning user.
type TaskRepository interface {
	Create(ctx context.Context, task *model.Task) error
	Save(ctx context.Context, task *model.Task) error
	FindByIDInBucketList(ctx context.Context, id, bucketListID, ownerID uint) (*model.Task, error)
	FindByDescription(ctx context.Context, bucketListID uint, description string) (*model.Task, error)
	ListByBucketList(ctx context.Context, bucketListID, ownerID uint) ([]model.Task, error)
	Delete(ctx context.Context, task *model.Task) error
}

type taskRepository struct {
	db *gorm.DB
}

// NewTaskRepository builds a GORM-backed task repository.
func NewTaskRepository(db *gorm.DB) TaskRepository {
	return &taskRepository{db: db}
}

func (r *taskRepository) Create(ctx context.Context, task *model.Task) error {
	return r.db.WithContext(ctx).Create(task).Error
}

func (r *taskRepository) Save(ctx context.Context, task *model.Task) error {
	return r.db.WithContext(ctx).Save(task).Error
}

func (r *taskRepository) FindByIDInBucketList(ctx context.Context, id, bucketListID, ownerID uint) (*model.Task, error) {
	var task model.Task
	err := r.db.WithContext(ctx).
		Where("id = ? AND bucketlist_id = ? AND user_id = ?", id, bucketListID, ownerID).
		First(&task).Error
	if err != nil {
		return nil, err
	}
	return &task, nil
}

func (r *taskRepository) FindByDescription(ctx context.Context, bucketListID uint, description string) (*model.Task, error) {
	var task model.Task
	err := r.db.WithContext(ctx).
		Where("bucketlist_id = ? AND description = ?", bucketListID, description).
		First(&task).Error
	if err != nil {
		return nil, err
	}
	return &task, nil
}

func (r *taskRepository) ListByBucketList(ctx context.Context, bucketListID, ownerID uint) ([]model.Task, error) {
	var tasks []model.Task
	err := r.db.WithContext(ctx).
		Where("bucketlist_id = ? AND user_id = ?", bucketListID, ownerID).
		Order("id").
		Find(&tasks).Error
	if err != nil {
		return nil, err
	}
	return tasks, nil
}

func (r *taskRepository) Delete(ctx context.Context, task *model.Task) error {
	return r.db.WithContext(ctx).Delete(task).Error
}
