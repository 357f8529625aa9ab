package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	log "github.com/sirupsen/logrus"

	"rotorhub/internal/routers"
	env "rotorhub/internal/secret"
)

func main() {
	envManager, err := env.NewManager()
	if err != nil {
		log.Fatalf("Failed to load environment: %v", err)
	}

	flightRouter := routers.FlightRouter()
	flightServer := &http.Server{
		Addr:    fmt.Sprintf(":%d", *envManager.Port),
		Handler: flightRouter,
	}

	opsRouter := routers.OpsRouter()
	opsServer := &http.Server{
		Addr:    fmt.Sprintf(":%d", *envManager.OpsPort),
		Handler: opsRouter,
	}

	go func() {
		flightServer.SetKeepAlivesEnabled(true)
		log.Infof("Starting HTTP Server on port %d for flight schedules", *envManager.Port)
		if err := flightServer.ListenAndServe(); err != http.ErrServerClosed {
			log.Error("Server Error: ", err)
		}
	}()
	go func() {
		log.Infof("Starting HTTP Server on port %d for ops endpoints", *envManager.OpsPort)
		if err := opsServer.ListenAndServe(); err != http.ErrServerClosed {
			log.Error("Server Error: ", err)
		}
	}()

	//Listen for SIGINT/ SIGTERM signal to trigger shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	log.Info("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	// Wait for all active requests to complete
	_ = flightServer.Shutdown(ctx)
	_ = opsServer.Shutdown(ctx)

	log.Info("Server gracefully stopped")
}
