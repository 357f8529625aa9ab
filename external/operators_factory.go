package external

import (
	"fmt"
	"net/http"
	"time"

	log "github.com/sirupsen/logrus"

	"rotorhub/external/interfaces"
	"rotorhub/internal/schema"
	env "rotorhub/internal/secret"
)

type OperatorConfig struct {
	Name          string
	BaseURL       string
	Method        string
	CacheDuration time.Duration
	CacheKey      string
	BaseSchema    interfaces.FlightProvider
}

// Factory for creating flight services
type FlightServiceFactory struct {
	configs map[schema.OperatorCode]OperatorConfig
}

func NewFlightServiceFactory(e *env.Manager) *FlightServiceFactory {
	return &FlightServiceFactory{
		configs: map[schema.OperatorCode]OperatorConfig{
			schema.BHL: {
				Name:          "Bristow",
				BaseURL:       *e.BhlURL,
				Method:        http.MethodGet,
				CacheDuration: 2 * time.Minute,
				CacheKey:      "bhl flights",
				BaseSchema:    &BhlFlightResponse{},
			},
			schema.NHV: {
				Name:          "NHV",
				BaseURL:       *e.NhvURL,
				Method:        http.MethodGet,
				CacheDuration: 2 * time.Minute,
				CacheKey:      "nhv flights",
				BaseSchema:    &NhvFlightResponse{},
			},
			schema.CHC: {
				Name:          "CHC",
				BaseURL:       *e.ChcURL,
				Method:        http.MethodPost,
				CacheDuration: 2 * time.Minute,
				CacheKey:      "chc flights",
				BaseSchema:    &ChcFlightResponse{},
			},

			// Add more operators here
		},
	}
}

func (f *FlightServiceFactory) CreateFlightService(operator schema.OperatorCode) (interfaces.Flight, error) {
	config, exists := f.configs[operator]
	if !exists {
		log.Errorf("unsupported operator: %s", operator)
		return nil, fmt.Errorf("unsupported operator: %s", operator)
	}

	flightConfig := interfaces.FlightConfig{
		FlightURL:    config.BaseURL,
		Method:       config.Method,
		FlightExpiry: config.CacheDuration,
		Namespace:    config.CacheKey,
	}

	genericFlightService := &interfaces.FlightService{FlightConfig: flightConfig, FlightProvider: config.BaseSchema}
	return genericFlightService, nil
}
