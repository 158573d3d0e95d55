package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jiraclone/taskboard-backend/internal/tasks/domain"
)

type fakeStore struct {
	nextID     int
	tasks      map[string]map[string]domain.Task // uid -> task id -> task
	links      map[string][]string               // uid/project -> task ids
	failCreate error
	failLink   error
	creates    int
	linkCalls  int
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		tasks: make(map[string]map[string]domain.Task),
		links: make(map[string][]string),
	}
}

func (f *fakeStore) CreateTask(_ context.Context, uid string, t domain.Task) (string, error) {
	f.creates++
	if f.failCreate != nil {
		return "", f.failCreate
	}
	f.nextID++
	id := fmt.Sprintf("T%d", f.nextID)
	if f.tasks[uid] == nil {
		f.tasks[uid] = make(map[string]domain.Task)
	}
	f.tasks[uid][id] = t
	return id, nil
}

func (f *fakeStore) AppendProjectTask(_ context.Context, uid, projectID, taskID string) error {
	f.linkCalls++
	if f.failLink != nil {
		return f.failLink
	}
	key := uid + "/" + projectID
	f.links[key] = append(f.links[key], taskID)
	return nil
}

func (f *fakeStore) ListOwned(_ context.Context, uid string) ([]domain.Task, error) {
	out := make([]domain.Task, 0, len(f.tasks[uid]))
	for id, t := range f.tasks[uid] {
		t.ID = id
		out = append(out, t)
	}
	return out, nil
}

func TestAssign_CreatesTaskAndLinksIt(t *testing.T) {
	store := newFakeStore()
	svc := NewTaskService(store)
	svc.now = func() time.Time { return time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC) }

	task, err := svc.Assign(context.Background(), "P1", "U2", "T1")
	require.NoError(t, err)
	require.NotNil(t, task)

	t.Run("exactly one task under the target account", func(t *testing.T) {
		require.Len(t, store.tasks["U2"], 1)
		stored := store.tasks["U2"][task.ID]
		assert.Equal(t, "T1", stored.TaskName)
		assert.Equal(t, "P1", stored.ProjectID)
		assert.False(t, stored.CreatedAt.IsZero())
	})

	t.Run("reference list grows by the new id", func(t *testing.T) {
		assert.Equal(t, []string{task.ID}, store.links["U2/P1"])
	})
}

func TestAssign_AppendsWithoutReplacing(t *testing.T) {
	store := newFakeStore()
	svc := NewTaskService(store)

	first, err := svc.Assign(context.Background(), "P1", "U2", "first")
	require.NoError(t, err)
	second, err := svc.Assign(context.Background(), "P1", "U2", "second")
	require.NoError(t, err)

	assert.Equal(t, []string{first.ID, second.ID}, store.links["U2/P1"],
		"pre-existing references must be preserved")
}

func TestAssign_ValidationProducesZeroWrites(t *testing.T) {
	cases := []struct {
		name      string
		projectID string
		targetUID string
		taskName  string
		field     string
	}{
		{"empty task name", "P1", "U2", "", "taskName"},
		{"whitespace task name", "P1", "U2", "   ", "taskName"},
		{"empty target user", "P1", "", "T1", "userId"},
		{"empty project id", "", "U2", "T1", "projectId"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			store := newFakeStore()
			svc := NewTaskService(store)

			_, err := svc.Assign(context.Background(), tc.projectID, tc.targetUID, tc.taskName)

			var vErr *domain.ValidationError
			require.True(t, errors.As(err, &vErr))
			assert.Equal(t, tc.field, vErr.Field)
			assert.Zero(t, store.creates, "no writes on validation failure")
			assert.Zero(t, store.linkCalls)
		})
	}
}

func TestAssign_LinkFailureLeavesOrphanTask(t *testing.T) {
	store := newFakeStore()
	store.failLink = errors.New("boom")
	svc := NewTaskService(store)

	task, err := svc.Assign(context.Background(), "P1", "U2", "T1")
	require.Error(t, err)
	require.NotNil(t, task, "the created task is reported despite the link failure")

	var lErr *domain.LinkError
	require.True(t, errors.As(err, &lErr))
	assert.Equal(t, task.ID, lErr.TaskID)

	// The orphan stays; nothing rolls it back.
	assert.Len(t, store.tasks["U2"], 1)
	assert.Empty(t, store.links["U2/P1"])
}
