package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jiraclone/taskboard-backend/internal/projects/domain"
)

func TestMirrorWrite_OwnerFailureStopsBeforeGlobal(t *testing.T) {
	store := newFakeStore()
	store.failOwner = errors.New("boom")

	m := NewMirrorWrite(store, "U1", domain.Project{ID: "P1"})
	err := m.Run(context.Background())

	var mErr *MirrorError
	require.True(t, errors.As(err, &mErr))
	assert.Equal(t, StepOwnerRegistry, mErr.Step)
	assert.Zero(t, store.globalPuts, "global write must not run after owner write fails")
	assert.False(t, m.Done())
}

func TestMirrorWrite_ResumeSkipsCompletedStep(t *testing.T) {
	store := newFakeStore()
	store.failGlobal = errors.New("boom")

	m := NewMirrorWrite(store, "U1", domain.Project{ID: "P1"})
	err := m.Run(context.Background())

	var mErr *MirrorError
	require.True(t, errors.As(err, &mErr))
	assert.Equal(t, StepGlobalRegistry, mErr.Step)
	require.Equal(t, 1, store.ownerPuts)

	// Clear the fault and resume: only the global write runs again.
	store.failGlobal = nil
	require.NoError(t, m.Run(context.Background()))
	assert.Equal(t, 1, store.ownerPuts, "owner write must not repeat on resume")
	assert.Equal(t, 2, store.globalPuts)
	assert.True(t, m.Done())
	assert.Contains(t, store.global, "P1")
}

func TestMirrorError_Unwrap(t *testing.T) {
	cause := errors.New("cause")
	err := &MirrorError{Step: StepOwnerRegistry, Err: cause}
	assert.ErrorIs(t, err, cause)
}
