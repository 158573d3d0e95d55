package http

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jiraclone/taskboard-backend/internal/auth"
	"github.com/jiraclone/taskboard-backend/internal/tasks/domain"
	"github.com/jiraclone/taskboard-backend/internal/tasks/service"
)

type Handler struct {
	tasks *service.TaskService
}

func New(tasks *service.TaskService) *Handler {
	return &Handler{tasks: tasks}
}

func (h *Handler) Register(rg *gin.RouterGroup) {
	rg.POST("/projects/:id/tasks", h.assign)
	rg.GET("/me/tasks", h.listOwned)
}

type assignReq struct {
	TaskName string `json:"taskName"`
	UserID   string `json:"userId"`
}

// assign creates a task under the selected account and links it into that
// account's copy of the project.
func (h *Handler) assign(c *gin.Context) {
	projectID := c.Param("id")

	var req assignReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid body"})
		return
	}

	t, err := h.tasks.Assign(c.Request.Context(), projectID, req.UserID, req.TaskName)
	if err != nil {
		var vErr *domain.ValidationError
		var lErr *domain.LinkError
		switch {
		case errors.As(err, &vErr):
			c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": vErr.Error()})
		case errors.As(err, &lErr):
			// The task document exists; only the back-reference is missing.
			log.Printf("assign task on %s: %v", projectID, lErr)
			c.JSON(http.StatusInternalServerError, gin.H{
				"ok":    false,
				"error": "task created but project link failed",
				"task":  t,
			})
		default:
			log.Printf("assign task on %s: %v", projectID, err)
			c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": "failed to add task"})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{"ok": true, "task": t})
}

func (h *Handler) listOwned(c *gin.Context) {
	uid := auth.UserFirebaseUID(c)

	items, err := h.tasks.ListOwned(c.Request.Context(), uid)
	if err != nil {
		log.Printf("list tasks %s: %v", uid, err)
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": "failed to list tasks"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "tasks": items})
}
