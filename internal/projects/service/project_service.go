package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jiraclone/taskboard-backend/internal/projects/domain"
)

// Store is the slice of project persistence the service needs.
type Store interface {
	NewID() string
	PutOwnerProject(ctx context.Context, uid string, p domain.Project) error
	PutGlobalProject(ctx context.Context, p domain.Project) error
	ListGlobal(ctx context.Context) ([]domain.Project, error)
	ListOwned(ctx context.Context, uid string) ([]domain.Project, error)
	OwnedProjectIDs(ctx context.Context, uid string) (map[string]bool, error)
}

// ProjectService handles project creation, the directory listing and
// ownership determination.
type ProjectService struct {
	store Store
	now   func() time.Time
}

func NewProjectService(store Store) *ProjectService {
	return &ProjectService{store: store, now: time.Now}
}

// Create allocates a fresh id from the global registry, builds the record
// around it, and mirrors it into the owner's registry and the global
// registry under that same id. A partial failure is returned as a
// *MirrorError; the copy that landed stays.
func (s *ProjectService) Create(ctx context.Context, owner domain.Owner, name, description string) (*domain.Project, error) {
	if owner.UID == "" {
		return nil, fmt.Errorf("owner uid required")
	}
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("name required")
	}

	p := domain.Project{
		ID:          s.store.NewID(),
		Name:        strings.TrimSpace(name),
		Description: description,
		CreatedAt:   s.now().UTC(),
		OwnerID:     owner.UID,
		OwnerEmail:  owner.Email,
		TaskIDs:     []string{},
	}

	mirror := NewMirrorWrite(s.store, owner.UID, p)
	if err := mirror.Run(ctx); err != nil {
		return &p, err
	}

	return &p, nil
}

// ListAll returns the global project directory.
func (s *ProjectService) ListAll(ctx context.Context) ([]domain.Project, error) {
	return s.store.ListGlobal(ctx)
}

// ListOwned returns the viewer's own project registry.
func (s *ProjectService) ListOwned(ctx context.Context, uid string) ([]domain.Project, error) {
	return s.store.ListOwned(ctx, uid)
}

// Ownership classifies the given projects for a viewer, returning the set of
// project ids the viewer owns. See ownership.go for the strategy.
func (s *ProjectService) Ownership(ctx context.Context, viewerUID string, projects []domain.Project) (map[string]bool, error) {
	var registry map[string]bool

	// The registry read is only needed when legacy records (no userId field)
	// are present.
	for i := range projects {
		if projects[i].OwnerID == "" {
			ids, err := s.store.OwnedProjectIDs(ctx, viewerUID)
			if err != nil {
				return nil, err
			}
			registry = ids
			break
		}
	}

	return ComputeOwnership(viewerUID, projects, registry), nil
}
