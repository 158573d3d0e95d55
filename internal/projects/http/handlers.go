package http

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/jiraclone/taskboard-backend/internal/auth"
	"github.com/jiraclone/taskboard-backend/internal/projects/domain"
	"github.com/jiraclone/taskboard-backend/internal/projects/service"
)

func (h *Handler) Register(rg *gin.RouterGroup) {
	rg.GET("/projects", h.listAll)
	rg.POST("/projects", h.create)
	rg.GET("/me/projects", h.listOwned)
}

// listAll serves the global project directory with per-viewer ownership
// flags.
func (h *Handler) listAll(c *gin.Context) {
	viewerUID := auth.UserFirebaseUID(c)

	projects, err := h.projects.ListAll(c.Request.Context())
	if err != nil {
		log.Printf("list projects: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": "failed to list projects"})
		return
	}

	owned, err := h.projects.Ownership(c.Request.Context(), viewerUID, projects)
	if err != nil {
		log.Printf("ownership for %s: %v", viewerUID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": "failed to determine ownership"})
		return
	}

	entries := make([]directoryEntry, 0, len(projects))
	for _, p := range projects {
		entries = append(entries, directoryEntry{
			Project:        p,
			CreatedAtLabel: p.CreatedAtLabel(),
			Mine:           owned[p.ID],
		})
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "projects": entries})
}

func (h *Handler) create(c *gin.Context) {
	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Name) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid body"})
		return
	}

	owner := domain.Owner{
		UID:   auth.UserFirebaseUID(c),
		Email: auth.UserEmail(c),
	}

	p, err := h.projects.Create(c.Request.Context(), owner, req.Name, req.Description)
	if err != nil {
		var mErr *service.MirrorError
		if errors.As(err, &mErr) {
			// One registry write landed, the other didn't. There is no
			// compensation; report the partial state.
			log.Printf("create project %s: %v", p.ID, mErr)
			c.JSON(http.StatusInternalServerError, gin.H{
				"ok":      false,
				"error":   "project partially created: " + string(mErr.Step) + " write failed",
				"project": p,
			})
			return
		}
		log.Printf("create project for %s: %v", owner.UID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": "failed to create project"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"ok": true, "project": p})
}

func (h *Handler) listOwned(c *gin.Context) {
	uid := auth.UserFirebaseUID(c)

	items, err := h.projects.ListOwned(c.Request.Context(), uid)
	if err != nil {
		log.Printf("list owned projects %s: %v", uid, err)
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": "failed to list projects"})
		return
	}

	entries := make([]ownedEntry, 0, len(items))
	for _, p := range items {
		entries = append(entries, ownedEntry{
			Project:        p,
			CreatedAtLabel: p.CreatedAtLabel(),
		})
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "projects": entries})
}
