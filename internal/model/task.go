package model

import "time"

// Task represents a single task inside a bucket list. It always belongs to
// exactly one bucket list and the user that owns that bucket list.
// Description uniqueness is scoped per bucket list.
type Task struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Description  string    `json:"description" gorm:"size:64;not null;uniqueIndex:idx_task_bucketlist_description"`
	UserID       uint      `json:"-" gorm:"not null;index"`
	BucketListID uint      `json:"-" gorm:"column:bucketlist_id;not null;index;uniqueIndex:idx_task_bucketlist_description"`
	CreatedAt    time.Time `json:"-"`
	UpdatedAt    time.Time `json:"-"`
}
