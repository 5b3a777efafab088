package repository

import (
	"errors"

	"github.com/mehedihasansabbir220/task-manager/internal/database"
	"github.com/mehedihasansabbir220/task-manager/internal/models"
	"github.com/mehedihasansabbir220/task-manager/internal/utils"
	"gorm.io/gorm"
)

// ErrVersionConflict is returned when a conditional update loses a race with
// a concurrent writer.
var ErrVersionConflict = errors.New("task repository: task was modified concurrently")

// GormTaskRepository is a GORM implementation of TaskRepository
type GormTaskRepository struct {
	db *gorm.DB
}

// NewTaskRepository creates a new TaskRepository
func NewTaskRepository(db *gorm.DB) TaskRepository {
	return &GormTaskRepository{db: db}
}

// Create creates a new task
func (r *GormTaskRepository) Create(task *models.Task) error {
	return r.db.Create(task).Error
}

// FindByID finds a task by ID with creator and assignee preloaded
func (r *GormTaskRepository) FindByID(id uint64) (*models.Task, error) {
	var task models.Task
	if err := r.db.
		Preload("Creator").
		Preload("AssignedTo").
		First(&task, id).Error; err != nil {
		return nil, err
	}
	return &task, nil
}

// ListByAssignee retrieves the tasks assigned to a user, newest first
func (r *GormTaskRepository) ListByAssignee(userID uint64, params utils.PaginationParams) ([]models.Task, int64, error) {
	var total int64
	if err := r.db.Model(&models.Task{}).
		Where("assigned_to_id = ?", userID).
		Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var tasks []models.Task
	if err := r.db.
		Where("assigned_to_id = ?", userID).
		Preload("Creator").
		Preload("AssignedTo").
		Order("created_at DESC").
		Scopes(database.Paginate(params)).
		Find(&tasks).Error; err != nil {
		return nil, 0, err
	}

	return tasks, total, nil
}

// UpdateStatus performs a conditional write: the row is only updated when its
// version still matches the one the caller read. A lost race surfaces as
// ErrVersionConflict instead of silently overwriting.
func (r *GormTaskRepository) UpdateStatus(task *models.Task, status models.TaskStatus) error {
	result := r.db.Model(&models.Task{}).
		Where("id = ? AND version = ?", task.ID, task.Version).
		Updates(map[string]interface{}{
			"status":  status,
			"version": task.Version + 1,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrVersionConflict
	}

	task.Status = status
	task.Version++
	return nil
}

// Delete soft deletes a task
func (r *GormTaskRepository) Delete(id uint64) error {
	return r.db.Delete(&models.Task{}, id).Error
}
