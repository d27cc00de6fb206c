package bootstrap

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	httpapi "github.com/Elxixau/TaskStatus-Manager/internal/api/http"
	"github.com/Elxixau/TaskStatus-Manager/internal/api/http/middleware"
	projecthttp "github.com/Elxixau/TaskStatus-Manager/internal/projects/http"
	"github.com/Elxixau/TaskStatus-Manager/internal/projects/repository"
	"github.com/Elxixau/TaskStatus-Manager/internal/store"
)

type RouterDeps struct {
	ServiceName string
	Version     string
	DB          *pgxpool.Pool
	Redis       *redis.Client
}

func BuildRouter(dep RouterDeps) *gin.Engine {
	r := gin.Default()

	// The table UI is served from a different origin.
	r.Use(cors.Default())
	r.Use(middleware.RequestIDMiddleware())

	healthHandler := httpapi.NewHealthHandler(dep.ServiceName, dep.Version, dep.DB).WithCache(dep.Redis)
	healthHandler.RegisterRoutes(r)

	repo := repository.New(dep.DB)

	var recordStore projecthttp.RecordStore = repo
	if dep.Redis != nil {
		recordStore = store.NewCachedStore(repo, dep.Redis)
	}

	api := r.Group("/api")
	projecthttp.New(recordStore).Register(api.Group("/projects"))

	return r
}

func SetGinMode(env string) {
	if env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
}
