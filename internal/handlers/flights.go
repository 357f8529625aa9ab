package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"rotorhub/internal/database"
	"rotorhub/internal/exceptions"
	httpclient "rotorhub/internal/http"
	"rotorhub/internal/middleware"
	"rotorhub/internal/schema"
	env "rotorhub/internal/secret"
)

const dayLayout = "2006-01-02"

func FlightScheduleHandler(client *httpclient.HttpClient, env *env.Manager,
	factory ServiceFactory, rr database.RedisRepository) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithCancel(r.Context())
		defer cancel()
		queryParams, _ := r.Context().Value(middleware.ScheduleQueryParamsKey).(schema.ScheduleQuery)

		aggregator := NewFlightAggregator(ctx, client, env, factory, &queryParams)
		day := queryParams.Day()
		flights, err := aggregator.GetAllFlights(day)
		if err != nil {
			var dateRange *exceptions.DateRangeError
			if errors.As(err, &dateRange) {
				exceptions.DateRangeErrorHandler(w, dateRange)
				return
			}
			exceptions.InternalErrorHandler(w, err)
			return
		}

		response := schema.ScheduleResponse{
			Date:    day.Format(dayLayout),
			Count:   len(flights),
			Flights: flights,
		}
		responseJSON, err := json.Marshal(&response)
		if err != nil {
			exceptions.InternalErrorHandler(w, err)
			return
		}
		_, _ = w.Write(responseJSON)
		go rr.Set(r.URL.String())
	})
}
