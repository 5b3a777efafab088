package models

import (
	"time"

	"gorm.io/gorm"
)

type TaskStatus string

const (
	TaskStatusTodo       TaskStatus = "TODO"
	TaskStatusInProgress TaskStatus = "IN_PROGRESS"
	TaskStatusDone       TaskStatus = "DONE"
)

// Valid reports whether s is one of the known task statuses.
func (s TaskStatus) Valid() bool {
	switch s {
	case TaskStatusTodo, TaskStatusInProgress, TaskStatusDone:
		return true
	}
	return false
}

type Task struct {
	ID           uint64         `gorm:"primarykey" json:"id"`
	Title        string         `gorm:"not null" json:"title"`
	Description  string         `gorm:"type:text" json:"description"`
	Status       TaskStatus     `gorm:"type:varchar(20);not null;default:'TODO'" json:"status"`
	AssignedToID uint64         `gorm:"not null;index" json:"assigned_to_id"`
	CreatorID    uint64         `gorm:"not null;index" json:"creator_id"`
	Version      uint64         `gorm:"not null;default:1" json:"version"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`

	// Relations
	Creator    User `gorm:"foreignKey:CreatorID" json:"creator,omitempty"`
	AssignedTo User `gorm:"foreignKey:AssignedToID" json:"assigned_to,omitempty"`
}
