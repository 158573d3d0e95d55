package domain

import (
	"errors"
	"fmt"
	"time"
)

var ErrNotFound = errors.New("task not found")

// ValidationError flags an empty required field before any write happens.
type ValidationError struct {
	Field string
}

func (e *ValidationError) Error() string {
	return e.Field + " is required"
}

// LinkError reports the assignment's partial-failure state: the task
// document was created but linking it into the project's task-reference
// list failed. The orphaned task stays; there is no retry.
type LinkError struct {
	TaskID string
	Err    error
}

func (e *LinkError) Error() string {
	return fmt.Sprintf("task %s created but project link failed: %v", e.TaskID, e.Err)
}

func (e *LinkError) Unwrap() error { return e.Err }

// Task is a task document under users/{uid}/tasks. The document body carries
// no id field; the id lives on the document reference.
type Task struct {
	ID        string    `firestore:"-" json:"id"`
	TaskName  string    `firestore:"taskName" json:"taskName"`
	ProjectID string    `firestore:"projectId" json:"projectId"`
	CreatedAt time.Time `firestore:"createdAt" json:"createdAt"`
}
