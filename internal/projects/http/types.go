package http

import (
	"github.com/jiraclone/taskboard-backend/internal/projects/domain"
	"github.com/jiraclone/taskboard-backend/internal/projects/service"
)

type Handler struct {
	projects *service.ProjectService
}

func New(projects *service.ProjectService) *Handler {
	return &Handler{projects: projects}
}

type createReq struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// directoryEntry is a project as seen in the global listing, with the
// per-viewer ownership flag that drives the edit affordance.
type directoryEntry struct {
	domain.Project
	CreatedAtLabel string `json:"createdAtLabel"`
	Mine           bool   `json:"mine"`
}

// ownedEntry is a project as seen on the owner's dashboard. Legacy records
// without a creation timestamp render the fixed unknown marker instead of a
// raw zero time.
type ownedEntry struct {
	domain.Project
	CreatedAtLabel string `json:"createdAtLabel"`
}
