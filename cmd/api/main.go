package main

import (
	"context"
	"log"

	"github.com/jiraclone/taskboard-backend/config"
	accountcron "github.com/jiraclone/taskboard-backend/internal/accounts/cron"
	"github.com/jiraclone/taskboard-backend/internal/bootstrap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	bootstrap.SetGinMode(cfg.App.Environment)

	ctx := context.Background()

	fb, err := bootstrap.InitializeFirebase(ctx, &cfg.Firebase)
	if err != nil {
		log.Fatalf("firebase: %v", err)
	}
	defer fb.Firestore.Close()

	rdb, err := bootstrap.OpenRedis(ctx, bootstrap.RedisOptionsFromConfig(&cfg.Redis))
	if err != nil {
		// The directory cache is an optimization; the app serves without it.
		log.Printf("redis unavailable, directory cache disabled: %v", err)
		rdb = nil
	}

	r, services := bootstrap.BuildRouter(bootstrap.RouterDeps{
		ServiceName:      "taskboard-backend",
		Version:          cfg.App.Version,
		CORSAllowOrigins: cfg.Server.CORSAllowOrigins,
		Auth:             fb.Auth,
		Firestore:        fb.Firestore,
		Redis:            rdb,
		WebAPIKey:        cfg.Firebase.WebAPIKey,
	})

	if rdb != nil {
		accountcron.NewRefresher(services.Accounts, "").Start()
	}

	log.Printf("listening on :%s", cfg.Server.Port)
	if err := r.Run(":" + cfg.Server.Port); err != nil {
		log.Fatalf("server: %v", err)
	}
}
