package service

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"bucky/internal/errors"
	"bucky/internal/model"
	"bucky/internal/pagination"
	"bucky/internal/repository"
)

// BucketListService handles bucket list operations for their owner. Every
// lookup is owner-scoped, so cross-owner access surfaces as not-found.
type BucketListService interface {
	Create(ctx context.Context, ownerID uint, name string) (*model.BucketList, error)
	List(ctx context.Context, ownerID uint, nameFilter string, page int) (items []model.BucketList, total int64, err error)
	Get(ctx context.Context, ownerID, id uint) (*model.BucketList, error)
	Rename(ctx context.Context, ownerID, id uint, name string) (*model.BucketList, error)
	Delete(ctx context.Context, ownerID, id uint) error
}

type bucketListService struct {
	bucketLists repository.BucketListRepository
	perPage     int
}

// NewBucketListService creates a new bucket list service. perPage sets the
// page size for List.
func NewBucketListService(bucketLists repository.BucketListRepository, perPage int) BucketListService {
	return &bucketListService{
		bucketLists: bucketLists,
		perPage:     perPage,
	}
}

// Create adds a bucket list for the owner. Names are unique per owner.
func (s *bucketListService) Create(ctx context.Context, ownerID uint, name string) (*model.BucketList, error) {
	if err := s.checkDuplicateName(ctx, ownerID, name, 0); err != nil {
		return nil, err
	}

	bucketList := &model.BucketList{
		Name:   name,
		UserID: ownerID,
	}
	if err := s.bucketLists.Create(ctx, bucketList); err != nil {
		return nil, fmt.Errorf("create bucket list: %w", err)
	}

	return bucketList, nil
}

// List returns one page of the owner's bucket lists, optionally narrowed by
// a case-insensitive substring filter on name, plus the total match count.
// Pages past the end return an empty slice without error.
func (s *bucketListService) List(ctx context.Context, ownerID uint, nameFilter string, page int) ([]model.BucketList, int64, error) {
	offset, limit := pagination.Window(page, s.perPage)
	items, err := s.bucketLists.ListByOwner(ctx, ownerID, nameFilter, offset, limit)
	if err != nil {
		return nil, 0, fmt.Errorf("list bucket lists: %w", err)
	}

	total, err := s.bucketLists.CountByOwner(ctx, ownerID, nameFilter)
	if err != nil {
		return nil, 0, fmt.Errorf("count bucket lists: %w", err)
	}

	return items, total, nil
}

// Get fetches one of the owner's bucket lists with its tasks.
func (s *bucketListService) Get(ctx context.Context, ownerID, id uint) (*model.BucketList, error) {
	bucketList, err := s.bucketLists.FindByIDAndOwner(ctx, id, ownerID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrBucketListNotFound
		}
		return nil, fmt.Errorf("find bucket list: %w", err)
	}
	return bucketList, nil
}

// Rename changes a bucket list's name, keeping the per-owner uniqueness rule.
func (s *bucketListService) Rename(ctx context.Context, ownerID, id uint, name string) (*model.BucketList, error) {
	bucketList, err := s.Get(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}

	if err := s.checkDuplicateName(ctx, ownerID, name, id); err != nil {
		return nil, err
	}

	bucketList.Name = name
	if err := s.bucketLists.Save(ctx, bucketList); err != nil {
		return nil, fmt.Errorf("save bucket list: %w", err)
	}

	return bucketList, nil
}

// Delete removes a bucket list together with its tasks.
func (s *bucketListService) Delete(ctx context.Context, ownerID, id uint) error {
	bucketList, err := s.Get(ctx, ownerID, id)
	if err != nil {
		return err
	}

	if err := s.bucketLists.DeleteWithTasks(ctx, bucketList); err != nil {
		return fmt.Errorf("delete bucket list: %w", err)
	}

	return nil
}

// checkDuplicateName enforces per-owner name uniqueness. excludeID skips the
// record being renamed.
func (s *bucketListService) checkDuplicateName(ctx context.Context, ownerID uint, name string, excludeID uint) error {
	existing, err := s.bucketLists.FindByNameAndOwner(ctx, name, ownerID)
	if err == nil && existing != nil && existing.ID != excludeID {
		return errors.ErrBucketListExists
	}
	if err != nil && err != gorm.ErrRecordNotFound {
		return fmt.Errorf("check bucket list existence: %w", err)
	}
	return nil
}
