package model

import "time"

// User represents an authenticated user in the system.
// Bucket lists and tasks reference their owning user by id.
type User struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Username     string    `json:"username" gorm:"uniqueIndex;size:64;not null"`
	PasswordHash string    `json:"-" gorm:"size:128;not null"` // Never expose in JSON
	CreatedAt    time.Time `json:"-"`
	UpdatedAt    time.Time `json:"-"`

	// Relations
	BucketLists []BucketList `json:"bucketlists,omitempty" gorm:"foreignKey:UserID"`
	Tasks       []Task       `json:"-" gorm:"foreignKey:UserID"`
}
