package repository

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"github.com/jiraclone/taskboard-backend/internal/tasks/domain"
)

const (
	usersCollection        = "users"
	userTasksCollection    = "tasks"
	userProjectsCollection = "projects"
)

// TaskRepository persists task documents under users/{uid}/tasks and links
// them into the per-account project registry.
type TaskRepository struct {
	fs *firestore.Client
}

func NewTaskRepository(fs *firestore.Client) *TaskRepository {
	return &TaskRepository{fs: fs}
}

// CreateTask adds the task document under the target account's task registry
// and returns the generated id.
func (r *TaskRepository) CreateTask(ctx context.Context, uid string, t domain.Task) (string, error) {
	col := r.fs.Collection(usersCollection).Doc(uid).Collection(userTasksCollection)
	ref, _, err := col.Add(ctx, t)
	if err != nil {
		return "", fmt.Errorf("create task for %s: %w", uid, err)
	}
	return ref.ID, nil
}

// AppendProjectTask links a task id into the target account's copy of the
// project. ArrayUnion makes the append atomic on the server, so two
// concurrent assignments both land, and the merge Set materializes the
// document when the target account has no copy of the project yet.
func (r *TaskRepository) AppendProjectTask(ctx context.Context, uid, projectID, taskID string) error {
	ref := r.fs.Collection(usersCollection).Doc(uid).Collection(userProjectsCollection).Doc(projectID)
	_, err := ref.Set(ctx, map[string]interface{}{
		"tasks": firestore.ArrayUnion(taskID),
	}, firestore.MergeAll)
	if err != nil {
		return fmt.Errorf("link task %s to project %s: %w", taskID, projectID, err)
	}
	return nil
}

// ListOwned returns the account's task registry for the dashboard.
func (r *TaskRepository) ListOwned(ctx context.Context, uid string) ([]domain.Task, error) {
	iter := r.fs.Collection(usersCollection).Doc(uid).Collection(userTasksCollection).Documents(ctx)
	defer iter.Stop()

	out := make([]domain.Task, 0, 16)
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("list tasks for %s: %w", uid, err)
		}

		var t domain.Task
		if err := snap.DataTo(&t); err != nil {
			return nil, fmt.Errorf("decode task %s: %w", snap.Ref.ID, err)
		}
		t.ID = snap.Ref.ID
		out = append(out, t)
	}
	return out, nil
}
