package routers

import (
	"net/http"
	"time"

	"rotorhub/external"
	"rotorhub/internal/database"
	"rotorhub/internal/handlers"
	httpclient "rotorhub/internal/http"
	"rotorhub/internal/middleware"
	env "rotorhub/internal/secret"
	"rotorhub/internal/store"
)

func FlightRouter() http.Handler {
	envManager, err := env.NewManager()
	if err != nil {
		panic(err)
	}
	operatorConfig := external.NewFlightServiceFactory(envManager)
	redisSettings := database.RedisSettings{
		DB:         envManager.RedisDb,
		DBUser:     envManager.RedisUser,
		DBPassword: envManager.RedisPw,
		Host:       envManager.RedisHost,
		Port:       envManager.RedisPort,
		Protocol:   envManager.RedisPrtl,
	}
	redis, err := database.NewRedisConnection(redisSettings)
	if err != nil {
		panic(err)
	}
	//We cant change any connection pool config without restarting the server so we have to change them by request if necessary.
	httpClient := httpclient.CreateHttpClientInstance(redis, httpclient.WithCtxTimeout(7*time.Second),
		httpclient.WithMaxIdleConns(100), httpclient.WithMaxConnsPerHost(100), httpclient.WithMaxIdleConnsPerHost(100),
		httpclient.WithIdleConnTimeout(90), httpclient.WithDisableKeepAlives(false))
	pinnedStore := store.NewPinnedStore(redis)

	middlewareStackForFlights := middleware.CreateStack(middleware.Recovery, middleware.CheckCORS,
		middleware.AddCorrelationID, middleware.AddHeaders, middleware.GetAppConfig,
		middleware.ScheduleQueryValidation, middleware.RecordMetrics, middleware.Logging)
	middlewareStackForPinned := middleware.CreateStack(middleware.Recovery, middleware.CheckCORS,
		middleware.AddCorrelationID, middleware.AddHeaders, middleware.PinnedQueryValidation,
		middleware.RecordMetrics, middleware.Logging)
	middlewareStackForhc := middleware.CreateStack(middleware.Recovery, middleware.AddCorrelationID,
		middleware.AddHeaders, middleware.Logging)

	router := http.NewServeMux()
	//HealthCheck
	hc := middlewareStackForhc(handlers.HealthCheckHandler())
	//Aggregated daily schedule
	fh := middlewareStackForFlights(handlers.FlightScheduleHandler(httpClient, envManager, operatorConfig, redis))
	//Pinned flights
	pg := middlewareStackForPinned(handlers.PinnedFlightsGetHandler(pinnedStore))
	pp := middlewareStackForPinned(handlers.PinnedFlightsPutHandler(pinnedStore))
	router.Handle("GET /schedule/flights", fh)
	router.Handle("GET /schedule/flights/pinned", pg)
	router.Handle("PUT /schedule/flights/pinned", pp)
	router.Handle("GET /health", hc)
	return router
}
