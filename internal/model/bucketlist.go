package model

import "time"

// BucketList represents a named collection of tasks owned by one user.
// Name uniqueness is scoped per owner, not globally.
type BucketList struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"size:64;not null;uniqueIndex:idx_bucketlist_owner_name"`
	UserID    uint      `json:"-" gorm:"not null;index;uniqueIndex:idx_bucketlist_owner_name"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`

	// Relations
	Tasks []Task `json:"tasks,omitempty" gorm:"foreignKey:BucketListID"`
}
