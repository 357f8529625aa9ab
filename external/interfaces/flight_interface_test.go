package interfaces

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	httpclient "rotorhub/internal/http"
	"rotorhub/internal/schema"
	env "rotorhub/internal/secret"
)

type noopRepo struct{}

func (noopRepo) Get(namespace, key string) ([]byte, bool)                            { return nil, false }
func (noopRepo) AddToChannel(namespace, key string, value []byte, ttl time.Duration) {}
func (noopRepo) Set(watchKey string) error                                           { return nil }
func (noopRepo) FetchBlob(namespace, key string) ([]byte, bool)                      { return nil, false }
func (noopRepo) StoreBlob(namespace, key string, value []byte, ttl time.Duration) error {
	return nil
}

// pagingProvider plans one GET per entry in pages and records what it got back.
type pagingProvider struct {
	plans    []HeaderParams
	received [][]byte
}

func (p *pagingProvider) RequestPlans(args *FlightArgs) []HeaderParams { return p.plans }

func (p *pagingProvider) GenerateFlights(pages [][]byte, day time.Time) ([]*schema.CommonFlight, error) {
	p.received = pages
	return []*schema.CommonFlight{}, nil
}

func TestFlightServiceDeliversPagesInPlanOrder(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("page for " + r.URL.Query().Get("page")))
	}))
	defer server.Close()

	provider := &pagingProvider{plans: []HeaderParams{
		{Headers: map[string]string{}, Params: map[string]string{"page": "first"}},
		{Headers: map[string]string{}, Params: map[string]string{"page": "second"}},
	}}
	service := &FlightService{
		FlightConfig: FlightConfig{
			FlightURL:    server.URL,
			Method:       http.MethodGet,
			FlightExpiry: time.Minute,
			Namespace:    "test flights",
		},
		FlightProvider: provider,
	}

	client := httpclient.CreateHttpClientInstance(noopRepo{})
	_, err := service.FetchFlights(context.Background(), client, &env.Manager{}, time.Now())
	require.NoError(t, err)
	require.Len(t, provider.received, 2)
	assert.Equal(t, "page for first", string(provider.received[0]))
	assert.Equal(t, "page for second", string(provider.received[1]))
}

func TestFlightServiceFailsWhenAnyPageFails(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("page") == "second" {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		_, _ = w.Write([]byte("ok"))
	}))
	defer server.Close()

	provider := &pagingProvider{plans: []HeaderParams{
		{Headers: map[string]string{}, Params: map[string]string{"page": "first"}},
		{Headers: map[string]string{}, Params: map[string]string{"page": "second"}},
	}}
	service := &FlightService{
		FlightConfig: FlightConfig{
			FlightURL:    server.URL,
			Method:       http.MethodGet,
			FlightExpiry: time.Minute,
			Namespace:    "test flights",
		},
		FlightProvider: provider,
	}

	client := httpclient.CreateHttpClientInstance(noopRepo{})
	_, err := service.FetchFlights(context.Background(), client, &env.Manager{}, time.Now())
	assert.Error(t, err, "a provider cannot join against a missing page")
}
