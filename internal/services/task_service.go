package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/mehedihasansabbir220/task-manager/internal/models"
	"github.com/mehedihasansabbir220/task-manager/internal/repository"
	"github.com/mehedihasansabbir220/task-manager/internal/utils"
	"gorm.io/gorm"
)

var (
	// ErrTaskForbidden covers both a missing task and an unauthorized one, so
	// callers cannot probe which task IDs exist.
	ErrTaskForbidden    = errors.New("task does not exist or is not accessible")
	ErrTaskConflict     = errors.New("task was modified concurrently")
	ErrTitleRequired    = errors.New("title is required")
	ErrInvalidStatus    = errors.New("invalid task status")
	ErrInvalidAssignee  = errors.New("assigned user does not exist")
	ErrFailedToSaveTask = errors.New("failed to save task")
)

// TaskService handles task business logic and per-task access control.
type TaskService struct {
	taskRepo repository.TaskRepository
	userRepo repository.UserRepository
}

// NewTaskService creates a new TaskService
func NewTaskService(taskRepo repository.TaskRepository, userRepo repository.UserRepository) *TaskService {
	return &TaskService{
		taskRepo: taskRepo,
		userRepo: userRepo,
	}
}

// CreateTaskInput represents input for creating a task. CreatorID is always
// the authenticated user, never client input.
type CreateTaskInput struct {
	Title        string
	Description  string
	AssignedToID uint64
	CreatorID    uint64
}

// Create creates a task owned by the authenticated user. When no assignee is
// given the creator assigns the task to themselves.
func (s *TaskService) Create(input CreateTaskInput) (*models.Task, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, ErrTitleRequired
	}

	assignedTo := input.AssignedToID
	if assignedTo == 0 {
		assignedTo = input.CreatorID
	}

	if _, err := s.userRepo.FindByID(assignedTo); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidAssignee
		}
		return nil, fmt.Errorf("failed to check assignee: %w", err)
	}

	task := &models.Task{
		Title:        title,
		Description:  input.Description,
		Status:       models.TaskStatusTodo,
		AssignedToID: assignedTo,
		CreatorID:    input.CreatorID,
	}

	if err := s.taskRepo.Create(task); err != nil {
		return nil, ErrFailedToSaveTask
	}

	created, err := s.taskRepo.FindByID(task.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to reload task: %w", err)
	}
	return created, nil
}

// ListAssigned returns the tasks assigned to the authenticated user.
func (s *TaskService) ListAssigned(userID uint64, params utils.PaginationParams) ([]models.Task, int64, error) {
	tasks, total, err := s.taskRepo.ListByAssignee(userID, params)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list tasks: %w", err)
	}
	return tasks, total, nil
}

// UpdateStatus changes the status of a task. Only the assignee may report
// progress; a missing task is indistinguishable from someone else's task.
func (s *TaskService) UpdateStatus(taskID, userID uint64, status models.TaskStatus) (*models.Task, error) {
	if !status.Valid() {
		return nil, ErrInvalidStatus
	}

	task, err := s.taskRepo.FindByID(taskID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTaskForbidden
		}
		return nil, fmt.Errorf("failed to find task: %w", err)
	}

	if task.AssignedToID != userID {
		return nil, ErrTaskForbidden
	}

	if err := s.taskRepo.UpdateStatus(task, status); err != nil {
		if errors.Is(err, repository.ErrVersionConflict) {
			return nil, ErrTaskConflict
		}
		return nil, ErrFailedToSaveTask
	}

	return task, nil
}

// Delete removes a task. Only its creator may delete it; a missing task is
// indistinguishable from someone else's task.
func (s *TaskService) Delete(taskID, userID uint64) error {
	task, err := s.taskRepo.FindByID(taskID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrTaskForbidden
		}
		return fmt.Errorf("failed to find task: %w", err)
	}

	if task.CreatorID != userID {
		return ErrTaskForbidden
	}

	if err := s.taskRepo.Delete(task.ID); err != nil {
		return ErrFailedToSaveTask
	}

	return nil
}
