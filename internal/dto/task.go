package dto

import (
	"time"

	"github.com/mehedihasansabbir220/task-manager/internal/models"
)

// TaskDTO represents a task in API responses
type TaskDTO struct {
	ID           uint64            `json:"id"`
	Title        string            `json:"title"`
	Description  string            `json:"description"`
	Status       models.TaskStatus `json:"status"`
	AssignedToID uint64            `json:"assigned_to_id"`
	CreatorID    uint64            `json:"creator_id"`
	Version      uint64            `json:"version"`
	CreatedAt    time.Time         `json:"created_at"`
	UpdatedAt    time.Time         `json:"updated_at"`
	AssignedTo   *UserDTO          `json:"assigned_to,omitempty"`
	Creator      *UserDTO          `json:"creator,omitempty"`
}

// ToTaskDTO converts a Task model to TaskDTO
func ToTaskDTO(task models.Task) TaskDTO {
	dto := TaskDTO{
		ID:           task.ID,
		Title:        task.Title,
		Description:  task.Description,
		Status:       task.Status,
		AssignedToID: task.AssignedToID,
		CreatorID:    task.CreatorID,
		Version:      task.Version,
		CreatedAt:    task.CreatedAt,
		UpdatedAt:    task.UpdatedAt,
	}

	// Include relations if preloaded
	if task.AssignedTo.ID != 0 {
		assignee := ToUserDTO(task.AssignedTo)
		dto.AssignedTo = &assignee
	}
	if task.Creator.ID != 0 {
		creator := ToUserDTO(task.Creator)
		dto.Creator = &creator
	}

	return dto
}

// ToTaskDTOs converts a slice of tasks
func ToTaskDTOs(tasks []models.Task) []TaskDTO {
	items := make([]TaskDTO, len(tasks))
	for i, task := range tasks {
		items[i] = ToTaskDTO(task)
	}
	return items
}
