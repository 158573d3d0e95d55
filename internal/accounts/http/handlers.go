package http

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jiraclone/taskboard-backend/internal/accounts/domain"
	"github.com/jiraclone/taskboard-backend/internal/auth"
)

// SignUp creates the auth account plus its profile document and points the
// caller at the login flow.
func (h *Handler) SignUp(c *gin.Context) {
	var req domain.SignUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid body"})
		return
	}

	uid, err := h.accounts.SignUp(c.Request.Context(), req)
	if err != nil {
		var vErr *domain.ValidationError
		switch {
		case errors.As(err, &vErr):
			c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": vErr.Error()})
		case errors.Is(err, domain.ErrEmailExists):
			c.JSON(http.StatusConflict, gin.H{"ok": false, "error": "email already exists"})
		case uid != "":
			// Auth account exists but the profile write failed. The partial
			// state is permanent; report it rather than pretend signup failed
			// outright.
			log.Printf("signup: profile write failed for %s: %v", uid, err)
			c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "uid": uid, "error": "account created but profile write failed"})
		default:
			log.Printf("signup failed: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": "signup failed"})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{"ok": true, "uid": uid, "next": "/login"})
}

// Login authenticates and returns the session plus the stored profile.
func (h *Handler) Login(c *gin.Context) {
	var req loginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid body"})
		return
	}

	sess, profile, err := h.accounts.SignIn(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		var vErr *domain.ValidationError
		switch {
		case errors.As(err, &vErr):
			c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": vErr.Error()})
		case errors.Is(err, domain.ErrInvalidCredentials):
			c.JSON(http.StatusUnauthorized, gin.H{"ok": false, "error": "invalid email or password"})
		case errors.Is(err, domain.ErrProfileNotFound):
			c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": "account has no profile"})
		default:
			log.Printf("login failed: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": "login failed"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "session": sess, "profile": profile})
}

// GetProfile returns the current user's profile.
func (h *Handler) GetProfile(c *gin.Context) {
	uid := auth.UserFirebaseUID(c)
	if uid == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"ok": false, "error": "user not authenticated"})
		return
	}

	profile, err := h.accounts.Profile(c.Request.Context(), uid)
	if err != nil {
		if errors.Is(err, domain.ErrProfileNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": "account has no profile"})
			return
		}
		log.Printf("get profile %s: %v", uid, err)
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": "failed to load profile"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "profile": profile})
}

// ListAccounts returns the account directory for the assignment dialog.
func (h *Handler) ListAccounts(c *gin.Context) {
	accounts, err := h.accounts.ListAccounts(c.Request.Context())
	if err != nil {
		log.Printf("list accounts: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": "failed to list users"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "users": accounts})
}
