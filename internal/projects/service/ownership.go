package service

import "github.com/jiraclone/taskboard-backend/internal/projects/domain"

// ComputeOwnership returns the set of project ids the viewer owns.
//
// The canonical strategy is direct comparison of the project's owner id
// against the viewer's uid. Records written by older versions of the system
// may lack the owner field entirely; for those, membership of the project id
// in the viewer's per-account registry decides. The fallback never overrides
// a populated owner field: a viewer who did not create a project is not its
// owner just because a copy sits in their registry.
func ComputeOwnership(viewerUID string, projects []domain.Project, registryIDs map[string]bool) map[string]bool {
	owned := make(map[string]bool)
	if viewerUID == "" {
		return owned
	}

	for i := range projects {
		p := &projects[i]
		switch {
		case p.OwnerID != "":
			if p.OwnerID == viewerUID {
				owned[p.ID] = true
			}
		case registryIDs[p.ID]:
			// legacy record: no owner field, registry membership decides
			owned[p.ID] = true
		}
	}
	return owned
}
