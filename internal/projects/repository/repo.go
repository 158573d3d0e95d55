package repository

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"github.com/jiraclone/taskboard-backend/internal/projects/domain"
)

const (
	allProjectsCollection  = "AllProjects"
	usersCollection        = "users"
	userProjectsCollection = "projects"
)

// ProjectRepository persists project documents in the two registries: the
// global AllProjects collection and the per-owner users/{uid}/projects
// subcollection.
type ProjectRepository struct {
	fs *firestore.Client
}

func NewProjectRepository(fs *firestore.Client) *ProjectRepository {
	return &ProjectRepository{fs: fs}
}

// NewID allocates a fresh document id from the global registry without
// writing a body. Both registry writes reuse it, which is what keeps the two
// copies addressable as the same project.
func (r *ProjectRepository) NewID() string {
	return r.fs.Collection(allProjectsCollection).NewDoc().ID
}

// PutOwnerProject writes the project record into the owner's registry under
// the project's pre-allocated id.
func (r *ProjectRepository) PutOwnerProject(ctx context.Context, uid string, p domain.Project) error {
	ref := r.fs.Collection(usersCollection).Doc(uid).Collection(userProjectsCollection).Doc(p.ID)
	if _, err := ref.Set(ctx, p); err != nil {
		return fmt.Errorf("write owner project %s: %w", p.ID, err)
	}
	return nil
}

// PutGlobalProject writes the identical record into the global registry.
func (r *ProjectRepository) PutGlobalProject(ctx context.Context, p domain.Project) error {
	if _, err := r.fs.Collection(allProjectsCollection).Doc(p.ID).Set(ctx, p); err != nil {
		return fmt.Errorf("write global project %s: %w", p.ID, err)
	}
	return nil
}

// ListGlobal returns every project in the global registry, in the backing
// store's insertion order. An empty registry yields an empty slice.
func (r *ProjectRepository) ListGlobal(ctx context.Context) ([]domain.Project, error) {
	return r.listProjects(r.fs.Collection(allProjectsCollection).Documents(ctx))
}

// ListOwned returns the viewer's per-account project registry.
func (r *ProjectRepository) ListOwned(ctx context.Context, uid string) ([]domain.Project, error) {
	col := r.fs.Collection(usersCollection).Doc(uid).Collection(userProjectsCollection)
	return r.listProjects(col.Documents(ctx))
}

// OwnedProjectIDs returns the set of project ids in the viewer's registry,
// for the legacy ownership fallback.
func (r *ProjectRepository) OwnedProjectIDs(ctx context.Context, uid string) (map[string]bool, error) {
	col := r.fs.Collection(usersCollection).Doc(uid).Collection(userProjectsCollection)
	iter := col.DocumentRefs(ctx)

	ids := make(map[string]bool)
	for {
		ref, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("list owned project ids: %w", err)
		}
		ids[ref.ID] = true
	}
	return ids, nil
}

func (r *ProjectRepository) listProjects(iter *firestore.DocumentIterator) ([]domain.Project, error) {
	defer iter.Stop()

	out := make([]domain.Project, 0, 16)
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("list projects: %w", err)
		}

		var p domain.Project
		if err := snap.DataTo(&p); err != nil {
			return nil, fmt.Errorf("decode project %s: %w", snap.Ref.ID, err)
		}
		if p.ID == "" {
			p.ID = snap.Ref.ID
		}
		p.ApplyReadDefaults()
		out = append(out, p)
	}
	return out, nil
}
