package model

import (
	"strings"
	"time"
)

// Status is the closed set of task states.
type Status string

const (
	StatusPending    Status = "Pending"
	StatusInProgress Status = "InProgress"
	StatusCompleted  Status = "Completed"
)

// ParseStatus parses external input case-insensitively against the
// known states. Unknown values are rejected, never coerced.
func ParseStatus(s string) (Status, bool) {
	for _, known := range []Status{StatusPending, StatusInProgress, StatusCompleted} {
		if strings.EqualFold(s, string(known)) {
			return known, true
		}
	}
	return "", false
}

// Task represents a unit of work inside a project. Every task operation
// is authorized through the chain task -> project -> user.
type Task struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Title       string    `json:"title" gorm:"size:255;not null"`
	Description *string   `json:"description" gorm:"size:255"`
	Status      Status    `json:"status" gorm:"size:20;not null;default:'Pending'"`
	DueDate     time.Time `json:"dueDate" gorm:"not null"`
	ProjectID   uint      `json:"projectId" gorm:"not null;index"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`

	// FK constraint only; never preloaded or exposed.
	Project Project `json:"-" gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE"`
}
