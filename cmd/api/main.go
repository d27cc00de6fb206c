package main

import (
	"context"
	"log"

	"github.com/Elxixau/TaskStatus-Manager/config"
	"github.com/Elxixau/TaskStatus-Manager/internal/bootstrap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	bootstrap.SetGinMode(cfg.App.Environment)

	ctx := context.Background()

	pool, err := bootstrap.OpenDB(ctx, bootstrap.DBOptionsFromConfig(cfg))
	if err != nil {
		log.Fatalf("db: %v", err)
	}
	defer pool.Close()

	rdb, err := bootstrap.OpenRedis(ctx, cfg.Redis)
	if err != nil {
		log.Fatalf("redis: %v", err)
	}
	if rdb != nil {
		defer rdb.Close()
	}

	r := bootstrap.BuildRouter(bootstrap.RouterDeps{
		ServiceName: "project-tracker",
		Version:     cfg.App.Version,
		DB:          pool,
		Redis:       rdb,
	})

	log.Printf("[info] operation=startup message=listening port=%s env=%s", cfg.Server.Port, cfg.App.Environment)
	if err := r.Run(":" + cfg.Server.Port); err != nil {
		log.Fatalf("server: %v", err)
	}
}
