package service

import (
	"context"
	"strings"
	"time"

	"github.com/jiraclone/taskboard-backend/internal/tasks/domain"
)

// Store is the slice of task persistence the service needs.
type Store interface {
	CreateTask(ctx context.Context, uid string, t domain.Task) (string, error)
	AppendProjectTask(ctx context.Context, uid, projectID, taskID string) error
	ListOwned(ctx context.Context, uid string) ([]domain.Task, error)
}

// TaskService handles ad-hoc task assignment and per-account task listings.
type TaskService struct {
	store Store
	now   func() time.Time
}

func NewTaskService(store Store) *TaskService {
	return &TaskService{store: store, now: time.Now}
}

// Assign creates a task under the target account and links its id into that
// account's copy of the project. Validation runs before any write. A link
// failure after the task write surfaces as a *domain.LinkError; the orphaned
// task stays.
func (s *TaskService) Assign(ctx context.Context, projectID, targetUID, taskName string) (*domain.Task, error) {
	taskName = strings.TrimSpace(taskName)
	if taskName == "" {
		return nil, &domain.ValidationError{Field: "taskName"}
	}
	if strings.TrimSpace(targetUID) == "" {
		return nil, &domain.ValidationError{Field: "userId"}
	}
	if strings.TrimSpace(projectID) == "" {
		return nil, &domain.ValidationError{Field: "projectId"}
	}

	t := domain.Task{
		TaskName:  taskName,
		ProjectID: projectID,
		CreatedAt: s.now().UTC(),
	}

	id, err := s.store.CreateTask(ctx, targetUID, t)
	if err != nil {
		return nil, err
	}
	t.ID = id

	if err := s.store.AppendProjectTask(ctx, targetUID, projectID, id); err != nil {
		return &t, &domain.LinkError{TaskID: id, Err: err}
	}

	return &t, nil
}

// ListOwned returns the viewer's tasks for the dashboard.
func (s *TaskService) ListOwned(ctx context.Context, uid string) ([]domain.Task, error) {
	return s.store.ListOwned(ctx, uid)
}
