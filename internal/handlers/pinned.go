package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"rotorhub/internal/exceptions"
	"rotorhub/internal/middleware"
	"rotorhub/internal/schema"
	"rotorhub/internal/store"
)

func PinnedFlightsGetHandler(pinned *store.PinnedStore) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		queryParams, _ := r.Context().Value(middleware.PinnedQueryParamsKey).(schema.PinnedQuery)
		flights := pinned.Load(queryParams.Owner)
		responseJSON, err := json.Marshal(flights)
		if err != nil {
			exceptions.InternalErrorHandler(w, err)
			return
		}
		_, _ = w.Write(responseJSON)
	})
}

func PinnedFlightsPutHandler(pinned *store.PinnedStore) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		queryParams, _ := r.Context().Value(middleware.PinnedQueryParamsKey).(schema.PinnedQuery)

		var flights []*schema.CommonFlight
		if err := json.NewDecoder(r.Body).Decode(&flights); err != nil {
			badBody := fmt.Errorf("pinned flights body is not a flight list: %s", err)
			exceptions.RequestErrorHandler(w, badBody)
			return
		}
		if err := pinned.Save(queryParams.Owner, flights); err != nil {
			exceptions.InternalErrorHandler(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	})
}
