package http

import "github.com/gin-gonic/gin"

// RegisterPublic mounts the credential endpoints (no session required).
func (h *Handler) RegisterPublic(rg *gin.RouterGroup) {
	rg.POST("/signup", h.SignUp)
	rg.POST("/login", h.Login)
}

// RegisterProtected mounts the session-gated endpoints.
func (h *Handler) RegisterProtected(rg *gin.RouterGroup) {
	rg.GET("/auth/profile", h.GetProfile)
	rg.GET("/users", h.ListAccounts)
}
