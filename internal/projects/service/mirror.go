package service

import (
	"context"
	"fmt"

	"github.com/jiraclone/taskboard-backend/internal/projects/domain"
)

// MirrorStep names one of the two registry writes of a project creation.
type MirrorStep string

const (
	StepOwnerRegistry  MirrorStep = "owner registry"
	StepGlobalRegistry MirrorStep = "global registry"
)

// MirrorError reports which registry write of the dual write failed. The
// other copy, if already written, stays committed.
type MirrorError struct {
	Step MirrorStep
	Err  error
}

func (e *MirrorError) Error() string {
	return fmt.Sprintf("%s write failed: %v", e.Step, e.Err)
}

func (e *MirrorError) Unwrap() error { return e.Err }

// MirrorWrite is the project dual write reified as a two-step operation.
// Run executes the owner-registry write then the global-registry write, in
// the same order the web client did; steps that already succeeded are
// skipped, so a failed write can be resumed from where it stopped. There is
// no compensating action: a write that landed stays landed.
type MirrorWrite struct {
	store   Store
	project domain.Project
	owner   string

	ownerDone  bool
	globalDone bool
}

func NewMirrorWrite(store Store, ownerUID string, p domain.Project) *MirrorWrite {
	return &MirrorWrite{store: store, project: p, owner: ownerUID}
}

// Run executes the remaining steps. On failure the returned error is a
// *MirrorError naming the step; call Run again to resume from it.
func (m *MirrorWrite) Run(ctx context.Context) error {
	if !m.ownerDone {
		if err := m.store.PutOwnerProject(ctx, m.owner, m.project); err != nil {
			return &MirrorError{Step: StepOwnerRegistry, Err: err}
		}
		m.ownerDone = true
	}

	if !m.globalDone {
		if err := m.store.PutGlobalProject(ctx, m.project); err != nil {
			return &MirrorError{Step: StepGlobalRegistry, Err: err}
		}
		m.globalDone = true
	}

	return nil
}

// Done reports whether both registry writes have landed.
func (m *MirrorWrite) Done() bool {
	return m.ownerDone && m.globalDone
}
