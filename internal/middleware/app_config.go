package middleware

import (
	"context"
	"net/http"
	"os"
	"path/filepath"

	log "github.com/sirupsen/logrus"

	"rotorhub/configs/controller"
	"rotorhub/configs/domain"
	"rotorhub/internal/exceptions"
)

type configContextKey string

// FlightAppConfig carries the merged registry section for the flight service.
const FlightAppConfig configContextKey = "appConfig"

const flightServiceSection = "service.registry.flights"

func GetAppConfig(next http.Handler) http.Handler {
	fn := func(w http.ResponseWriter, r *http.Request) {
		config := domain.Config{}
		currentDir, err := os.Getwd()
		if err != nil {
			log.Errorf("Failed to setup config: %v", err)
			exceptions.InternalErrorHandler(w, err)
			return
		}
		data, err := os.ReadFile(filepath.Join(currentDir, "config.yaml"))
		if err != nil {
			exceptions.InternalErrorHandler(w, err)
			return
		}
		err = config.SetFromBytes(data)
		if err != nil {
			exceptions.InternalErrorHandler(w, err)
			return
		}
		c := controller.Controller{
			Config: &config,
		}
		result, err := c.Config.Get(flightServiceSection)
		if err != nil {
			exceptions.InternalErrorHandler(w, err)
			return
		}
		ctx := context.WithValue(r.Context(), FlightAppConfig, result)
		r = r.WithContext(ctx)

		next.ServeHTTP(w, r)
	}
	return http.HandlerFunc(fn)
}
