package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/Elxixau/TaskStatus-Manager/config"
	"github.com/Elxixau/TaskStatus-Manager/internal/bootstrap"
	"github.com/Elxixau/TaskStatus-Manager/internal/mirror"
	"github.com/Elxixau/TaskStatus-Manager/internal/projects/repository"
	"github.com/Elxixau/TaskStatus-Manager/internal/store"
)

// syncworker mirrors the external tabular store into the owned projects
// table on a cron schedule.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	if cfg.Store.BaseURL == "" {
		log.Fatal("STORE_BASE_URL is required for the sync worker")
	}

	ctx := context.Background()

	pool, err := bootstrap.OpenDB(ctx, bootstrap.DBOptionsFromConfig(cfg))
	if err != nil {
		log.Fatalf("db: %v", err)
	}
	defer pool.Close()

	m := mirror.New(store.NewClient(cfg.Store.BaseURL), repository.New(pool))
	sched := mirror.NewScheduler(m, cfg.Sync.Schedule)
	if err := sched.Start(); err != nil {
		log.Fatalf("scheduler: %v", err)
	}
	defer sched.Stop()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop
	log.Println("[info] operation=shutdown message=sync worker stopping")
}
