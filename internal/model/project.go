package model

import "time"

// Project represents a task container owned by exactly one user.
// Ownership never transfers; deleting a project cascades to its tasks
// at the storage layer.
type Project struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Title       string    `json:"title" gorm:"size:255;not null"`
	Description *string   `json:"description" gorm:"size:255"`
	UserID      uint      `json:"userId" gorm:"not null;index"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`

	// FK constraint only; never preloaded or exposed.
	User User `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}
