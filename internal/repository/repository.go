package repository

import (
	"github.com/mehedihasansabbir220/task-manager/internal/models"
	"github.com/mehedihasansabbir220/task-manager/internal/utils"
)

// UserRepository defines the interface for user data access
type UserRepository interface {
	// Create creates a new user
	Create(user *models.User) error

	// FindByID finds a user by ID
	FindByID(id uint64) (*models.User, error)

	// FindByEmail finds a user by email
	FindByEmail(email string) (*models.User, error)
}

// TaskRepository defines the interface for task data access
type TaskRepository interface {
	// Create creates a new task
	Create(task *models.Task) error

	// FindByID finds a task by ID with relations preloaded
	FindByID(id uint64) (*models.Task, error)

	// ListByAssignee retrieves the tasks assigned to a user, paginated
	ListByAssignee(userID uint64, params utils.PaginationParams) ([]models.Task, int64, error)

	// UpdateStatus sets the status of a task conditionally on its version.
	// Returns ErrVersionConflict if the task changed since it was read.
	UpdateStatus(task *models.Task, status models.TaskStatus) error

	// Delete soft deletes a task
	Delete(id uint64) error
}
