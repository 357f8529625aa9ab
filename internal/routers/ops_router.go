package routers

import (
	"net/http"
	"os"
	"path/filepath"
	"time"

	log "github.com/sirupsen/logrus"

	"rotorhub/configs/controller"
	"rotorhub/configs/domain"
	"rotorhub/configs/service"
	"rotorhub/internal/handlers"
	"rotorhub/internal/metrics"
	"rotorhub/internal/middleware"
)

// OpsRouter serves the operational surface: health, metrics and the live view
// of the application config.
func OpsRouter() http.Handler {
	config := domain.Config{}
	currentDir, err := os.Getwd()
	if err != nil {
		log.Fatalf("Failed to setup config: %v", err)
	}
	configService := service.ConfigService{
		Config:   &config,
		Location: filepath.Join(currentDir, "config.yaml"),
	}
	go configService.Watch(time.Second * 3)
	c := controller.Controller{
		Config: &config,
	}

	middlewareStackForOps := middleware.CreateStack(middleware.Recovery, middleware.CheckCORS,
		middleware.AddCorrelationID, middleware.AddHeaders, middleware.Logging)
	middlewareStackForMetrics := middleware.CreateStack(middleware.Recovery, middleware.AddCorrelationID, middleware.Logging)

	opsRouter := http.NewServeMux()
	rc := middlewareStackForOps(c.ReadConfig())
	hc := middlewareStackForOps(handlers.HealthCheckHandler())
	opsRouter.Handle("GET /config/{serviceName}", rc)
	opsRouter.Handle("GET /health", hc)
	opsRouter.Handle("GET /metrics", middlewareStackForMetrics(metrics.Handler()))
	return opsRouter
}
