package bootstrap

import (
	"strings"
	"time"

	"cloud.google.com/go/firestore"
	fbauth "firebase.google.com/go/v4/auth"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"golang.org/x/time/rate"

	accounthttp "github.com/jiraclone/taskboard-backend/internal/accounts/http"
	accountrepo "github.com/jiraclone/taskboard-backend/internal/accounts/repository"
	accountservice "github.com/jiraclone/taskboard-backend/internal/accounts/service"
	httpapi "github.com/jiraclone/taskboard-backend/internal/api/http"
	authmw "github.com/jiraclone/taskboard-backend/internal/auth/middleware"
	"github.com/jiraclone/taskboard-backend/internal/middleware"
	projecthttp "github.com/jiraclone/taskboard-backend/internal/projects/http"
	projectrepo "github.com/jiraclone/taskboard-backend/internal/projects/repository"
	projectservice "github.com/jiraclone/taskboard-backend/internal/projects/service"
	taskhttp "github.com/jiraclone/taskboard-backend/internal/tasks/http"
	taskrepo "github.com/jiraclone/taskboard-backend/internal/tasks/repository"
	taskservice "github.com/jiraclone/taskboard-backend/internal/tasks/service"
)

type RouterDeps struct {
	ServiceName      string
	Version          string
	CORSAllowOrigins string
	Auth             *fbauth.Client
	Firestore        *firestore.Client
	Redis            *redis.Client
	WebAPIKey        string
}

// Services bundles the wired service layer so main can hand pieces of it to
// background jobs.
type Services struct {
	Accounts *accountservice.AccountService
}

func BuildRouter(dep RouterDeps) (*gin.Engine, *Services) {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     splitOrigins(dep.CORSAllowOrigins),
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type", "X-Request-Id"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	healthHandler := httpapi.NewHealthHandler(dep.ServiceName, dep.Version, dep.Firestore, dep.Redis)
	healthHandler.RegisterRoutes(r)

	profileRepo := accountrepo.NewProfileRepository(dep.Firestore)

	// No Redis means no directory cache; the service falls back to direct
	// Firestore reads.
	var directoryCache accountservice.DirectoryCache
	if dep.Redis != nil {
		directoryCache = accountrepo.NewDirectoryCache(dep.Redis)
	}

	signInClient := accountservice.NewIdentityToolkitClient(dep.WebAPIKey)
	accountSvc := accountservice.NewAccountService(dep.Auth, profileRepo, directoryCache, signInClient)

	projectRepo := projectrepo.NewProjectRepository(dep.Firestore)
	projectSvc := projectservice.NewProjectService(projectRepo)

	taskRepo := taskrepo.NewTaskRepository(dep.Firestore)
	taskSvc := taskservice.NewTaskService(taskRepo)

	api := r.Group("/api/v1")
	api.Use(middleware.RequestIDMiddleware())

	accountHandler := accounthttp.New(accountSvc)

	// Credential endpoints are public but rate limited per client.
	authLimiter := middleware.NewRateLimiter(rate.Every(time.Second), 5)
	authGroup := api.Group("/auth")
	authGroup.Use(authLimiter.Middleware())
	accountHandler.RegisterPublic(authGroup)

	protected := api.Group("")
	protected.Use(authmw.FirebaseAuthMiddleware(dep.Auth))

	accountHandler.RegisterProtected(protected)
	projecthttp.New(projectSvc).Register(protected)
	taskhttp.New(taskSvc).Register(protected)

	return r, &Services{Accounts: accountSvc}
}

func splitOrigins(origins string) []string {
	parts := strings.Split(origins, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
