package cronjob

import (
	"context"
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/jiraclone/taskboard-backend/internal/accounts/service"
)

// Refresher keeps the account directory cache warm on a schedule so the
// assignment dialog rarely pays a cold Firestore read.
type Refresher struct {
	accounts *service.AccountService
	spec     string
}

func NewRefresher(accounts *service.AccountService, spec string) *Refresher {
	if spec == "" {
		spec = "0 */5 * * * *" // every 5 minutes
	}
	return &Refresher{accounts: accounts, spec: spec}
}

// Start registers the refresh job and starts the scheduler.
func (r *Refresher) Start() {
	c := cron.New(cron.WithSeconds())

	_, err := c.AddFunc(r.spec, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := r.accounts.RefreshDirectory(ctx); err != nil {
			log.Printf("directory refresh failed: %v", err)
			return
		}
		log.Println("directory cache refreshed")
	})
	if err != nil {
		log.Printf("Failed to create cron job: %v", err)
		return
	}

	log.Printf("Cron scheduler started (directory refresh: %q)", r.spec)
	c.Start()
}
