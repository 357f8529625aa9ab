package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rotorhub/internal/schema"
)

func appConfigContext(r *http.Request) *http.Request {
	registry := map[string]interface{}{
		"activeOperators": map[string]interface{}{
			"BHL": true,
			"NHV": true,
			"CHC": true,
			"OHS": false,
		},
	}
	return r.WithContext(context.WithValue(r.Context(), FlightAppConfig, registry))
}

func captureScheduleQuery(t *testing.T, target string) (*httptest.ResponseRecorder, *schema.ScheduleQuery) {
	t.Helper()
	var captured *schema.ScheduleQuery
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		params, _ := r.Context().Value(ScheduleQueryParamsKey).(schema.ScheduleQuery)
		captured = &params
		w.WriteHeader(http.StatusOK)
	})

	req := appConfigContext(httptest.NewRequest(http.MethodGet, target, nil))
	rec := httptest.NewRecorder()
	ScheduleQueryValidation(next).ServeHTTP(rec, req)
	return rec, captured
}

func TestScheduleQueryValidationDefaultsToActiveOperators(t *testing.T) {
	rec, captured := captureScheduleQuery(t, "/schedule/flights")
	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, captured)
	assert.ElementsMatch(t, []schema.OperatorCode{schema.BHL, schema.NHV, schema.CHC}, captured.Operator,
		"inactive operators never reach the aggregator")
}

func TestScheduleQueryValidationAcceptsExplicitOperators(t *testing.T) {
	rec, captured := captureScheduleQuery(t, "/schedule/flights?operator=BHL&operator=CHC&date=2025-03-14")
	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, captured)
	assert.Equal(t, []schema.OperatorCode{schema.BHL, schema.CHC}, captured.Operator)
	assert.Equal(t, "2025-03-14", captured.Date)
}

func TestScheduleQueryValidationRejectsInactiveOperator(t *testing.T) {
	rec, captured := captureScheduleQuery(t, "/schedule/flights?operator=OHS")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Nil(t, captured)
}

func TestScheduleQueryValidationRejectsUnknownParameter(t *testing.T) {
	rec, captured := captureScheduleQuery(t, "/schedule/flights?tail=G-ABCD")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Nil(t, captured)
}

func TestScheduleQueryValidationRejectsBadDate(t *testing.T) {
	rec, captured := captureScheduleQuery(t, "/schedule/flights?date=14-03-2025")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Nil(t, captured)
}

func TestPinnedQueryValidationRequiresOwner(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) })

	req := httptest.NewRequest(http.MethodGet, "/schedule/flights/pinned", nil)
	rec := httptest.NewRecorder()
	PinnedQueryValidation(next).ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	req = httptest.NewRequest(http.MethodGet, "/schedule/flights/pinned?owner=device-1", nil)
	rec = httptest.NewRecorder()
	PinnedQueryValidation(next).ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestCreateStackOrder(t *testing.T) {
	var order []string
	tag := func(name string) Middleware {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				order = append(order, name)
				next.ServeHTTP(w, r)
			})
		}
	}

	stack := CreateStack(tag("outer"), tag("inner"))
	stack(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})).
		ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, []string{"outer", "inner"}, order)
}
