package repository

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"bucky/internal/model"
)

// BucketListRepository defines bucket list persistence operations. Every
// lookup is owner-scoped: the owner id is part of the query filter, never
// an after-the-fact check.
type BucketListRepository interface {
	Create(ctx context.Context, bucketList *model.BucketList) error
	Save(ctx context.Context, bucketList *model.BucketList) error
	FindByIDAndOwner(ctx context.Context, id, ownerID uint) (*model.BucketList, error)
	FindByNameAndOwner(ctx context.Context, name string, ownerID uint) (*model.BucketList, error)
	ListByOwner(ctx context.Context, ownerID uint, nameFilter string, offset, limit int) ([]model.BucketList, error)
	CountByOwner(ctx context.Context, ownerID uint, nameFilter string) (int64, error)
	DeleteWithTasks(ctx context.Context, bucketList *model.BucketList) error
}

type bucketListRepository struct {
	db *gorm.DB
}

// NewBucketListRepository builds a GORM-backed bucket list repository.
func NewBucketListRepository(db *gorm.DB) BucketListRepository {
	return &bucketListRepository{db: db}
}

func (r *bucketListRepository) Create(ctx context.Context, bucketList *model.BucketList) error {
	return r.db.WithContext(ctx).Create(bucketList).Error
}

func (r *bucketListRepository) Save(ctx context.Context, bucketList *model.BucketList) error {
	return r.db.WithContext(ctx).Save(bucketList).Error
}

func (r *bucketListRepository) FindByIDAndOwner(ctx context.Context, id, ownerID uint) (*model.BucketList, error) {
	var bucketList model.BucketList
	err := r.db.WithContext(ctx).Preload("Tasks").
		Where("id = ? AND user_id = ?", id, ownerID).
		First(&bucketList).Error
	if err != nil {
		return nil, err
	}
	return &bucketList, nil
}

func (r *bucketListRepository) FindByNameAndOwner(ctx context.Context, name string, ownerID uint) (*model.BucketList, error) {
	var bucketList model.BucketList
	err := r.db.WithContext(ctx).
		Where("name = ? AND user_id = ?", name, ownerID).
		First(&bucketList).Error
	if err != nil {
		return nil, err
	}
	return &bucketList, nil
}

func (r *bucketListRepository) ListByOwner(ctx context.Context, ownerID uint, nameFilter string, offset, limit int) ([]model.BucketList, error) {
	var bucketLists []model.BucketList
	query := r.ownerQuery(ctx, ownerID, nameFilter)
	if err := query.Preload("Tasks").Order("id").Offset(offset).Limit(limit).Find(&bucketLists).Error; err != nil {
		return nil, err
	}
	return bucketLists, nil
}

func (r *bucketListRepository) CountByOwner(ctx context.Context, ownerID uint, nameFilter string) (int64, error) {
	var total int64
	if err := r.ownerQuery(ctx, ownerID, nameFilter).Model(&model.BucketList{}).Count(&total).Error; err != nil {
		return 0, err
	}
	return total, nil
}

// DeleteWithTasks removes a bucket list and its tasks in one transaction so
// no orphan tasks survive a partial failure.
func (r *bucketListRepository) DeleteWithTasks(ctx context.Context, bucketList *model.BucketList) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("bucketlist_id = ?", bucketList.ID).Delete(&model.Task{}).Error; err != nil {
			return err
		}
		return tx.Delete(bucketList).Error
	})
}

func (r *bucketListRepository) ownerQuery(ctx context.Context, ownerID uint, nameFilter string) *gorm.DB {
	query := r.db.WithContext(ctx).Where("user_id = ?", ownerID)
	if nameFilter != "" {
		query = query.Where("LOWER(name) LIKE ?", "%"+escapeLike(strings.ToLower(nameFilter))+"%")
	}
	return query
}

// escapeLike neutralizes LIKE wildcards in user-supplied filter text.
func escapeLike(s string) string {
	replacer := strings.NewReplacer(`\`, `\\`, "%", `\%`, "_", `\_`)
	return replacer.Replace(s)
}
