package middleware

import (
	"context"
	"fmt"
	"net/http"
	"reflect"

	"github.com/go-playground/validator/v10"
	log "github.com/sirupsen/logrus"

	"rotorhub/internal/exceptions"
	"rotorhub/internal/schema"
)

type queryContextKey string

const (
	ScheduleQueryParamsKey queryContextKey = "scheduleQueryParams"
	PinnedQueryParamsKey   queryContextKey = "pinnedQueryParams"
)

// allowedParams creates a map of valid JSON field tags for a given struct.
func allowedParams(schemaStruct interface{}) map[string]struct{} {
	val := reflect.ValueOf(schemaStruct)
	jsonTags := make(map[string]struct{}, val.Type().NumField())
	for i := 0; i < val.Type().NumField(); i++ {
		if tag := val.Type().Field(i).Tag.Get("json"); tag != "" {
			jsonTags[tag] = struct{}{}
		}
	}
	return jsonTags
}

// validateQueryParams checks if query parameters are allowed for a given schema.
func validateQueryParams(w http.ResponseWriter, query map[string][]string, schemaStruct interface{}) bool {
	allowed := allowedParams(schemaStruct)
	for param := range query {
		if _, ok := allowed[param]; !ok {
			err := fmt.Errorf("invalid parameter: %s", param)
			log.Error(err)
			exceptions.RequestErrorHandler(w, err)
			return false
		}
	}
	return true
}

// validateStruct validates a struct and returns formatted error if validation fails.
func validateStruct(w http.ResponseWriter, params interface{}) bool {
	if err := schema.RequestValidate.Struct(params); err != nil {
		for _, e := range err.(validator.ValidationErrors) {
			invalidQuery := fmt.Errorf("invalid field value in '%s': %v", e.Field(), e.Value())
			exceptions.RequestErrorHandler(w, invalidQuery)
			return false
		}
	}
	return true
}

// ScheduleQueryValidation validates query parameters for flight schedule requests.
func ScheduleQueryValidation(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()
		if !validateQueryParams(w, query, schema.ScheduleQuery{}) {
			return
		}

		// Initialize active operators
		activeOperatorCodes := make([]schema.OperatorCode, 0, 4)
		operatorConfig, ok := r.Context().Value(FlightAppConfig).(map[string]interface{})["activeOperators"].(map[string]interface{})
		if !ok {
			err := fmt.Errorf("invalid flight service configuration")
			log.Error(err)
			exceptions.RequestErrorHandler(w, err)
			return
		}

		// Process operator parameters
		if operatorList := query["operator"]; len(operatorList) > 0 {
			for _, operatorCode := range operatorList {
				if active, ok := operatorConfig[operatorCode].(bool); !ok || !active {
					err := fmt.Errorf("inactive or invalid operator: %s", operatorCode)
					log.Error(err)
					exceptions.RequestErrorHandler(w, err)
					return
				}
				activeOperatorCodes = append(activeOperatorCodes, schema.OperatorCode(operatorCode))
			}
		} else {
			for operatorCode := range operatorConfig {
				if active, ok := operatorConfig[operatorCode].(bool); ok && active {
					activeOperatorCodes = append(activeOperatorCodes, schema.OperatorCode(operatorCode))
				}
			}
		}

		requestParams := schema.ScheduleQuery{
			Date:     query.Get("date"),
			Operator: activeOperatorCodes,
		}

		if !validateStruct(w, requestParams) {
			return
		}

		ctx := context.WithValue(r.Context(), ScheduleQueryParamsKey, requestParams)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// PinnedQueryValidation validates query parameters for pinned flight requests.
func PinnedQueryValidation(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()
		if !validateQueryParams(w, query, schema.PinnedQuery{}) {
			return
		}

		requestParams := schema.PinnedQuery{
			Owner: query.Get("owner"),
		}

		if !validateStruct(w, requestParams) {
			return
		}

		ctx := context.WithValue(r.Context(), PinnedQueryParamsKey, requestParams)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
